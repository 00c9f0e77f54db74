package charts

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/KaramelBytes/flamingo-cli/internal/analysis"
	"github.com/KaramelBytes/flamingo-cli/internal/utils"
)

// Output file names, relative to the output directory.
const (
	SpeciesFile = "species_distribution.png"
	GrowthFile  = "growth_rates.png"
)

// Options controls canvas geometry for rendered charts.
type Options struct {
	WidthIn  float64
	HeightIn float64
	DPI      int
}

// DefaultOptions returns the standard 12x6 inch canvas at print density.
func DefaultOptions() Options {
	return Options{WidthIn: 12, HeightIn: 6, DPI: 300}
}

var (
	pink    = color.RGBA{R: 0xFF, G: 0x69, B: 0xB4, A: 0xFF}
	teal    = color.RGBA{R: 0x00, G: 0xCE, B: 0xD1, A: 0xFF}
	lineRed = color.NRGBA{R: 0xFF, A: 0x80}
)

// SpeciesDistribution renders the horizontal bar chart of total population
// per species, smallest at the bottom.
func SpeciesDistribution(groups []analysis.GroupShare, path string, opt Options) error {
	if len(groups) == 0 {
		return errors.New("species chart: no species totals to plot")
	}
	asc := append([]analysis.GroupShare(nil), groups...)
	sort.SliceStable(asc, func(i, j int) bool { return asc[i].Value < asc[j].Value })

	values := make(plotter.Values, len(asc))
	labels := make([]string, len(asc))
	for i, g := range asc {
		values[i] = g.Value
		labels[i] = g.Name
	}

	p := plot.New()
	p.Title.Text = "Flamingo Population by Species (2023)"
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Population Count"
	p.Y.Label.Text = "Species"

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return fmt.Errorf("species chart: %w", err)
	}
	bars.Horizontal = true
	bars.Color = pink
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalY(labels...)

	return writePNG(p, path, opt)
}

// GrowthRates renders the vertical bar chart of per-record growth rates in
// record order, with a dashed zero reference line. Rows whose rate is NaN or
// infinite are dropped; the bar plotter rejects non-finite values.
func GrowthRates(names []string, rates []float64, path string, opt Options) error {
	values := make(plotter.Values, 0, len(rates))
	labels := make([]string, 0, len(rates))
	for i, r := range rates {
		if math.IsNaN(r) || math.IsInf(r, 0) {
			continue
		}
		values = append(values, r)
		labels = append(labels, names[i])
	}
	if len(values) == 0 {
		return errors.New("growth chart: no finite growth rates to plot")
	}

	p := plot.New()
	p.Title.Text = "Population Growth Rate by Species (2020-2023)"
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Species"
	p.Y.Label.Text = "Growth Rate (%)"

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return fmt.Errorf("growth chart: %w", err)
	}
	bars.Color = teal
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	zero, err := plotter.NewLine(plotter.XYs{
		{X: -0.5, Y: 0},
		{X: float64(len(values)) - 0.5, Y: 0},
	})
	if err != nil {
		return fmt.Errorf("growth chart zero line: %w", err)
	}
	zero.Color = lineRed
	zero.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
	p.Add(zero)

	return writePNG(p, path, opt)
}

// writePNG rasterizes p at the configured density and writes it atomically.
func writePNG(p *plot.Plot, path string, opt Options) error {
	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(opt.WidthIn)*vg.Inch, vg.Length(opt.HeightIn)*vg.Inch),
		vgimg.UseDPI(opt.DPI),
	)
	p.Draw(draw.New(c))

	var buf bytes.Buffer
	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(&buf); err != nil {
		return fmt.Errorf("encode chart png: %w", err)
	}
	if err := utils.SafeWriteFile(path, buf.Bytes()); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	return nil
}

package pipeline

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/flamingo-cli/internal/analysis"
	"github.com/KaramelBytes/flamingo-cli/internal/charts"
	"github.com/KaramelBytes/flamingo-cli/internal/dataset"
	"github.com/KaramelBytes/flamingo-cli/internal/export"
	"github.com/KaramelBytes/flamingo-cli/internal/report"
	"github.com/KaramelBytes/flamingo-cli/internal/utils"
)

// Runner executes the analysis sections over one loaded dataset in a fixed
// order and tracks every file it writes.
type Runner struct {
	Table    *dataset.Table
	Out      io.Writer
	Dir      string
	HeadRows int
	Chart    charts.Options
	Export   bool

	written []string
}

// New returns a Runner with default sampling and chart geometry.
func New(t *dataset.Table, out io.Writer, dir string) *Runner {
	return &Runner{
		Table:    t,
		Out:      out,
		Dir:      dir,
		HeadRows: 5,
		Chart:    charts.DefaultOptions(),
	}
}

// Run executes the full pipeline: every console section, both charts, the
// text report, and optionally the workbook export. It stops at the first
// error; partial output already on Out stays visible.
func (r *Runner) Run() error {
	rule := strings.Repeat("=", 70)
	fmt.Fprintln(r.Out)
	fmt.Fprintln(r.Out, rule)
	fmt.Fprintln(r.Out, "FLAMINGO POPULATION DATA ANALYTICS - FULL ANALYSIS")
	fmt.Fprintln(r.Out, rule)
	fmt.Fprintln(r.Out)

	analysis.Explore(r.Table, r.HeadRows).Render(r.Out)

	pop, err := analysis.AnalyzePopulation(r.Table)
	if err != nil {
		return err
	}
	pop.Render(r.Out)

	geo := analysis.AnalyzeGeography(r.Table)
	geo.Render(r.Out)

	cons := analysis.AnalyzeConservation(r.Table)
	cons.Render(r.Out)

	st, err := analysis.AnalyzeStatistics(r.Table)
	if err != nil {
		return err
	}
	st.Render(r.Out)

	if err := r.Charts(pop); err != nil {
		return err
	}
	if err := r.WriteReport(); err != nil {
		return err
	}
	if r.Export {
		if err := r.ExportWorkbook(pop, geo, cons, st); err != nil {
			return err
		}
	}

	fmt.Fprintln(r.Out, rule)
	fmt.Fprintln(r.Out, "ANALYSIS COMPLETE")
	fmt.Fprintln(r.Out, rule)
	fmt.Fprintln(r.Out)
	utils.Okf(r.Out, "All results saved to the '%s' directory", r.Dir)
	utils.Okf(r.Out, "Generated files:")
	for _, f := range r.written {
		fmt.Fprintf(r.Out, "    - %s\n", filepath.Base(f))
	}
	fmt.Fprintln(r.Out)
	return nil
}

// Charts renders both charts into the output directory, honoring the same
// column guards as the analysis sections.
func (r *Runner) Charts(pop *analysis.Population) error {
	utils.Stepf(r.Out, "Generating visualizations...")
	if err := utils.EnsureDir(r.Dir); err != nil {
		return fmt.Errorf("ensure output dir: %w", err)
	}
	if len(pop.Species) > 0 {
		path := filepath.Join(r.Dir, charts.SpeciesFile)
		if err := charts.SpeciesDistribution(pop.Species, path, r.Chart); err != nil {
			return err
		}
		r.saved(path)
	}
	if pop.HasGrowth && r.Table.Has(dataset.ColSpecies) {
		path := filepath.Join(r.Dir, charts.GrowthFile)
		if err := charts.GrowthRates(r.Table.Strings(dataset.ColSpecies), pop.GrowthRates, path, r.Chart); err != nil {
			return err
		}
		r.saved(path)
	}
	fmt.Fprintln(r.Out)
	return nil
}

// WriteReport writes the fixed text report into the output directory.
func (r *Runner) WriteReport() error {
	utils.Stepf(r.Out, "Generating analysis report...")
	path, err := report.Write(r.Dir, r.Table.Rows())
	if err != nil {
		return err
	}
	r.saved(path)
	return nil
}

// ExportWorkbook writes the workbook of computed breakdowns.
func (r *Runner) ExportWorkbook(pop *analysis.Population, geo *analysis.Geography, cons *analysis.Conservation, st *analysis.PopulationStats) error {
	utils.Stepf(r.Out, "Exporting workbook...")
	path, err := export.Write(r.Dir, pop, geo, cons, st, r.Table.Rows())
	if err != nil {
		return err
	}
	r.saved(path)
	return nil
}

// WrittenFiles lists every file the runner has written so far.
func (r *Runner) WrittenFiles() []string {
	return append([]string(nil), r.written...)
}

func (r *Runner) saved(path string) {
	r.written = append(r.written, path)
	utils.Okf(r.Out, "Saved: %s", path)
}

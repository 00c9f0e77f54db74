package analysis

import (
	"fmt"
	"io"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/KaramelBytes/flamingo-cli/internal/dataset"
	"github.com/KaramelBytes/flamingo-cli/internal/stats"
	"github.com/KaramelBytes/flamingo-cli/internal/utils"
)

// GroupShare is one group's aggregate with its share of the grand total.
type GroupShare struct {
	Name  string
	Value float64
	Share float64
}

// Population captures growth metrics and the per-species distribution.
type Population struct {
	HasGrowth     bool
	AvgGrowth     float64
	Total2020     float64
	Total2023     float64
	OverallGrowth float64
	GrowthRates   []float64
	Species       []GroupShare
}

// AnalyzePopulation derives the growth-rate column on t when both census
// columns exist, and aggregates the 2023 population per species. Division by
// a zero 2020 population propagates as ±Inf (or NaN for 0/0), matching plain
// float arithmetic; downstream consumers decide how to show or skip those.
func AnalyzePopulation(t *dataset.Table) (*Population, error) {
	pop := &Population{}

	if t.Has(dataset.ColPop2020) && t.Has(dataset.ColPop2023) {
		p20 := t.Floats(dataset.ColPop2020)
		p23 := t.Floats(dataset.ColPop2023)
		rates := make([]float64, len(p20))
		for i := range p20 {
			rates[i] = (p23[i] - p20[i]) / p20[i] * 100
		}
		if err := t.AddFloats(dataset.ColGrowthRate, rates); err != nil {
			return nil, fmt.Errorf("derive growth rates: %w", err)
		}
		pop.HasGrowth = true
		pop.GrowthRates = rates
		pop.AvgGrowth = stats.Mean(stats.DropNaN(rates))
		pop.Total2020 = floats.Sum(stats.DropNaN(p20))
		pop.Total2023 = floats.Sum(stats.DropNaN(p23))
		pop.OverallGrowth = (pop.Total2023 - pop.Total2020) / pop.Total2020 * 100
	}

	if t.Has(dataset.ColSpecies) && t.Has(dataset.ColPop2023) {
		pop.Species = shares(t.GroupSum(dataset.ColSpecies, dataset.ColPop2023))
	}
	return pop, nil
}

// Render writes the population section: growth metrics first, then the
// species breakdown in descending population order.
func (p *Population) Render(w io.Writer) {
	Banner(w, "POPULATION ANALYSIS")
	if p.HasGrowth {
		fmt.Fprintln(w)
		utils.Okf(w, "Average Population Growth Rate (2020-2023): %.2f%%", p.AvgGrowth)
		utils.Okf(w, "Total Population 2020: %s", FormatCount(p.Total2020))
		utils.Okf(w, "Total Population 2023: %s", FormatCount(p.Total2023))
		utils.Okf(w, "Overall Growth: %.2f%%", p.OverallGrowth)
	}
	if len(p.Species) > 0 {
		fmt.Fprintln(w)
		utils.Stepf(w, "Population by Species (2023):")
		for _, g := range p.Species {
			fmt.Fprintf(w, "  - %s: %s (%.1f%%)\n", g.Name, FormatCount(g.Value), g.Share)
		}
	}
	fmt.Fprintln(w)
}

// shares orders groups by value descending (ties keep name order) and
// attaches each group's percentage of the grand total.
func shares(groups []dataset.Group) []GroupShare {
	sorted := append([]dataset.Group(nil), groups...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Value > sorted[j].Value })

	var total float64
	for _, g := range sorted {
		total += g.Value
	}
	out := make([]GroupShare, len(sorted))
	for i, g := range sorted {
		share := 0.0
		if total != 0 {
			share = g.Value / total * 100
		}
		out[i] = GroupShare{Name: g.Name, Value: g.Value, Share: share}
	}
	return out
}

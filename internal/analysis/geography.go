package analysis

import (
	"fmt"
	"io"
	"sort"

	"github.com/KaramelBytes/flamingo-cli/internal/dataset"
	"github.com/KaramelBytes/flamingo-cli/internal/utils"
)

// CountShare is one frequency bucket with its share of all records.
type CountShare struct {
	Name  string
	N     int
	Share float64
}

// Geography captures the regional population split and habitat frequencies.
type Geography struct {
	Regions  []GroupShare
	Habitats []CountShare
}

// AnalyzeGeography aggregates the 2023 population per region and tallies
// habitat types. Habitat shares are percentages of the full record count,
// so rows with a missing habitat pull the total under 100.
func AnalyzeGeography(t *dataset.Table) *Geography {
	g := &Geography{}

	if t.Has(dataset.ColRegion) && t.Has(dataset.ColPop2023) {
		g.Regions = shares(t.GroupSum(dataset.ColRegion, dataset.ColPop2023))
	}

	if t.Has(dataset.ColHabitat) {
		counts := t.ValueCounts(dataset.ColHabitat)
		sort.SliceStable(counts, func(i, j int) bool { return counts[i].N > counts[j].N })
		rows := t.Rows()
		for _, c := range counts {
			share := 0.0
			if rows > 0 {
				share = float64(c.N) / float64(rows) * 100
			}
			g.Habitats = append(g.Habitats, CountShare{Name: c.Name, N: c.N, Share: share})
		}
	}
	return g
}

// Render writes the geographic section: regional population split, then the
// habitat frequency list.
func (g *Geography) Render(w io.Writer) {
	Banner(w, "GEOGRAPHIC DISTRIBUTION ANALYSIS")
	if len(g.Regions) > 0 {
		fmt.Fprintln(w)
		utils.Stepf(w, "Population Distribution by Region (2023):")
		for _, r := range g.Regions {
			fmt.Fprintf(w, "  - %s: %s (%.1f%%)\n", r.Name, FormatCount(r.Value), r.Share)
		}
	}
	if len(g.Habitats) > 0 {
		fmt.Fprintln(w)
		utils.Stepf(w, "Habitat Type Distribution:")
		for _, h := range g.Habitats {
			fmt.Fprintf(w, "  - %s: %d records (%.1f%%)\n", h.Name, h.N, h.Share)
		}
	}
	fmt.Fprintln(w)
}

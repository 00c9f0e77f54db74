package analysis

import (
	"fmt"
	"io"
	"sort"

	"github.com/KaramelBytes/flamingo-cli/internal/dataset"
	"github.com/KaramelBytes/flamingo-cli/internal/utils"
)

// Conservation tallies species records per conservation status.
type Conservation struct {
	Statuses []dataset.Count
}

// AnalyzeConservation counts records per status, most frequent first.
func AnalyzeConservation(t *dataset.Table) *Conservation {
	c := &Conservation{}
	if t.Has(dataset.ColConservation) {
		counts := t.ValueCounts(dataset.ColConservation)
		sort.SliceStable(counts, func(i, j int) bool { return counts[i].N > counts[j].N })
		c.Statuses = counts
	}
	return c
}

// Render writes the conservation status section.
func (c *Conservation) Render(w io.Writer) {
	Banner(w, "CONSERVATION STATUS ANALYSIS")
	if len(c.Statuses) > 0 {
		fmt.Fprintln(w)
		utils.Stepf(w, "Conservation Status Distribution:")
		for _, s := range c.Statuses {
			fmt.Fprintf(w, "  - %s: %d species\n", s.Name, s.N)
		}
	}
	fmt.Fprintln(w)
}

package analysis

import (
	"fmt"
	"io"

	"github.com/KaramelBytes/flamingo-cli/internal/dataset"
	"github.com/KaramelBytes/flamingo-cli/internal/stats"
	"github.com/KaramelBytes/flamingo-cli/internal/utils"
)

// PopulationStats is the statistical-test section over the 2023 census.
type PopulationStats struct {
	Present  bool
	Summary  stats.Summary
	ShapiroW float64
	ShapiroP float64
}

// AnalyzeStatistics describes the 2023 population column and runs the
// Shapiro-Wilk normality test on it. A failed test (too few values, or a
// degenerate sample) is an error: the section cannot be rendered honestly
// without its p-value.
func AnalyzeStatistics(t *dataset.Table) (*PopulationStats, error) {
	if !t.Has(dataset.ColPop2023) {
		return &PopulationStats{}, nil
	}
	vals := stats.DropNaN(t.Floats(dataset.ColPop2023))
	w, p, err := stats.ShapiroWilk(vals)
	if err != nil {
		return nil, fmt.Errorf("normality test: %w", err)
	}
	return &PopulationStats{
		Present:  true,
		Summary:  stats.Describe(vals),
		ShapiroW: w,
		ShapiroP: p,
	}, nil
}

// Render writes the statistical section.
func (s *PopulationStats) Render(w io.Writer) {
	Banner(w, "STATISTICAL ANALYSIS")
	if s.Present {
		fmt.Fprintln(w)
		utils.Okf(w, "Population Statistics (2023):")
		fmt.Fprintf(w, "  - Mean: %s\n", FormatCount(s.Summary.Mean))
		fmt.Fprintf(w, "  - Median: %s\n", FormatCount(s.Summary.Median))
		fmt.Fprintf(w, "  - Std Dev: %s\n", FormatCount(s.Summary.Std))
		fmt.Fprintf(w, "  - Min: %s\n", FormatCount(s.Summary.Min))
		fmt.Fprintf(w, "  - Max: %s\n", FormatCount(s.Summary.Max))
		fmt.Fprintf(w, "  - Normality Test (Shapiro-Wilk): p-value = %.4f\n", s.ShapiroP)
	}
	fmt.Fprintln(w)
}

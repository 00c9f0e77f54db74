package analysis

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/KaramelBytes/flamingo-cli/internal/dataset"
	"github.com/KaramelBytes/flamingo-cli/internal/stats"
	"github.com/KaramelBytes/flamingo-cli/internal/utils"
)

// Exploration summarizes dataset shape, types, missing cells, and the
// descriptive statistics of every numeric column.
type Exploration struct {
	RowCount int
	ColCount int
	Columns  []string
	Types    []string
	Nulls    []int
	HeadN    int
	Head     [][]string
	Numeric  []string
	Summary  map[string]stats.Summary
}

// Explore computes the exploratory overview of t, sampling headRows rows.
func Explore(t *dataset.Table, headRows int) *Exploration {
	ex := &Exploration{
		RowCount: t.Rows(),
		ColCount: t.Cols(),
		Columns:  t.Columns(),
		Types:    t.Types(),
		Nulls:    t.NullCounts(),
		HeadN:    headRows,
		Head:     t.Head(headRows),
		Numeric:  t.NumericColumns(),
		Summary:  make(map[string]stats.Summary),
	}
	for _, col := range ex.Numeric {
		ex.Summary[col] = stats.Describe(stats.DropNaN(t.Floats(col)))
	}
	return ex
}

// Render writes the exploratory section: shape, sample rows, dtypes, missing
// counts, and the numeric summary grid.
func (ex *Exploration) Render(w io.Writer) {
	Banner(w, "EXPLORATORY DATA ANALYSIS")
	fmt.Fprintln(w)
	utils.Stepf(w, "Data Shape: (%d, %d)", ex.RowCount, ex.ColCount)
	fmt.Fprintln(w)

	utils.Stepf(w, "First %d records:", ex.HeadN)
	head := tablewriter.NewWriter(w)
	head.SetHeader(ex.Columns)
	for _, row := range ex.Head {
		head.Append(row)
	}
	head.Render()
	fmt.Fprintln(w)

	utils.Stepf(w, "Data Types:")
	types := tablewriter.NewWriter(w)
	types.SetHeader([]string{"Column", "Type"})
	for i, col := range ex.Columns {
		types.Append([]string{col, ex.Types[i]})
	}
	types.Render()
	fmt.Fprintln(w)

	utils.Stepf(w, "Missing Values:")
	nulls := tablewriter.NewWriter(w)
	nulls.SetHeader([]string{"Column", "Missing"})
	for i, col := range ex.Columns {
		nulls.Append([]string{col, strconv.Itoa(ex.Nulls[i])})
	}
	nulls.Render()
	fmt.Fprintln(w)

	utils.Stepf(w, "Summary Statistics:")
	summary := tablewriter.NewWriter(w)
	summary.SetHeader(append([]string{"Stat"}, ex.Numeric...))
	for _, stat := range []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"} {
		row := []string{stat}
		for _, col := range ex.Numeric {
			row = append(row, summaryCell(ex.Summary[col], stat))
		}
		summary.Append(row)
	}
	summary.Render()
	fmt.Fprintln(w)
}

func summaryCell(s stats.Summary, stat string) string {
	switch stat {
	case "count":
		return strconv.Itoa(s.Count)
	case "mean":
		return fmt.Sprintf("%.2f", s.Mean)
	case "std":
		return fmt.Sprintf("%.2f", s.Std)
	case "min":
		return fmt.Sprintf("%.2f", s.Min)
	case "25%":
		return fmt.Sprintf("%.2f", s.Q1)
	case "50%":
		return fmt.Sprintf("%.2f", s.Median)
	case "75%":
		return fmt.Sprintf("%.2f", s.Q3)
	case "max":
		return fmt.Sprintf("%.2f", s.Max)
	}
	return ""
}

package dataset

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Column names of the flamingo survey schema. Any of them may be absent from
// a given file; callers guard with Has before touching one.
const (
	ColSpecies      = "species"
	ColRegion       = "region"
	ColHabitat      = "habitat_type"
	ColConservation = "conservation_status"
	ColPop2020      = "population_2020"
	ColPop2023      = "population_2023"
	ColGrowthRate   = "growth_rate"
)

// Table wraps a loaded survey dataframe together with its raw records.
type Table struct {
	Path string

	df      dataframe.DataFrame
	records [][]string // header row followed by data rows
}

// Load reads a CSV survey file into a Table. A nonexistent path yields a
// distinct error from a malformed file.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("data file not found: %s", path)
		}
		return nil, fmt.Errorf("load data: %w", err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("load data: %w", df.Err)
	}
	return &Table{Path: path, df: df, records: df.Records()}, nil
}

// IsMissing reports whether a raw cell counts as a null value.
func IsMissing(cell string) bool {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "", "na", "n/a", "nan", "null":
		return true
	}
	return false
}

// Rows returns the number of data rows.
func (t *Table) Rows() int { return t.df.Nrow() }

// Cols returns the number of columns.
func (t *Table) Cols() int { return t.df.Ncol() }

// Columns returns the column names in file order.
func (t *Table) Columns() []string { return t.df.Names() }

// Types returns the detected column types, aligned with Columns.
func (t *Table) Types() []string {
	types := t.df.Types()
	out := make([]string, len(types))
	for i, tp := range types {
		out[i] = string(tp)
	}
	return out
}

// Has reports whether the named column exists.
func (t *Table) Has(col string) bool {
	for _, name := range t.df.Names() {
		if name == col {
			return true
		}
	}
	return false
}

// Head returns up to n data rows as raw cells.
func (t *Table) Head(n int) [][]string {
	if n > t.Rows() {
		n = t.Rows()
	}
	if n < 0 {
		n = 0
	}
	out := make([][]string, 0, n)
	for _, row := range t.records[1 : 1+n] {
		out = append(out, append([]string(nil), row...))
	}
	return out
}

// Strings returns the raw cell text of col for every row.
func (t *Table) Strings(col string) []string {
	idx := t.colIndex(col)
	if idx < 0 {
		return nil
	}
	out := make([]string, 0, t.Rows())
	for _, row := range t.records[1:] {
		out = append(out, row[idx])
	}
	return out
}

// Floats returns col converted to float64 for every row. Cells that do not
// parse come back as NaN.
func (t *Table) Floats(col string) []float64 {
	if !t.Has(col) {
		return nil
	}
	return t.df.Col(col).Float()
}

// NumericColumns returns names of columns detected as int or float.
func (t *Table) NumericColumns() []string {
	var out []string
	names := t.df.Names()
	for i, tp := range t.df.Types() {
		if tp == series.Int || tp == series.Float {
			out = append(out, names[i])
		}
	}
	return out
}

// NullCounts returns per-column missing-cell counts, aligned with Columns.
func (t *Table) NullCounts() []int {
	out := make([]int, t.Cols())
	for _, row := range t.records[1:] {
		for i, cell := range row {
			if IsMissing(cell) {
				out[i]++
			}
		}
	}
	return out
}

// AddFloats appends (or replaces) a float column named col.
func (t *Table) AddFloats(col string, vals []float64) error {
	if len(vals) != t.Rows() {
		return fmt.Errorf("add column %s: %d values for %d rows", col, len(vals), t.Rows())
	}
	df := t.df.Mutate(series.New(vals, series.Float, col))
	if df.Err != nil {
		return fmt.Errorf("add column %s: %w", col, df.Err)
	}
	t.df = df
	t.records = df.Records()
	return nil
}

// Group is one aggregation bucket produced by GroupSum.
type Group struct {
	Name  string
	Value float64
}

// GroupSum sums measure per distinct value of by. Rows with a missing key are
// skipped, NaN measures contribute nothing, and groups come back sorted by
// name so callers get a stable base order.
func (t *Table) GroupSum(by, measure string) []Group {
	keyIdx := t.colIndex(by)
	if keyIdx < 0 || !t.Has(measure) {
		return nil
	}
	vals := t.Floats(measure)
	sums := make(map[string]float64)
	for i, row := range t.records[1:] {
		cell := row[keyIdx]
		if IsMissing(cell) {
			continue
		}
		key := strings.TrimSpace(cell)
		v := vals[i]
		if math.IsNaN(v) {
			sums[key] += 0 // keep the group visible even if every measure is null
			continue
		}
		sums[key] += v
	}
	out := make([]Group, 0, len(sums))
	for name, v := range sums {
		out = append(out, Group{Name: name, Value: v})
	}
	sortGroupsByName(out)
	return out
}

// Count is one frequency bucket produced by ValueCounts.
type Count struct {
	Name string
	N    int
}

// ValueCounts tallies distinct non-missing values of col, sorted by name.
func (t *Table) ValueCounts(col string) []Count {
	idx := t.colIndex(col)
	if idx < 0 {
		return nil
	}
	counts := make(map[string]int)
	for _, row := range t.records[1:] {
		cell := row[idx]
		if IsMissing(cell) {
			continue
		}
		counts[strings.TrimSpace(cell)]++
	}
	out := make([]Count, 0, len(counts))
	for name, n := range counts {
		out = append(out, Count{Name: name, N: n})
	}
	sortCountsByName(out)
	return out
}

func (t *Table) colIndex(col string) int {
	for i, name := range t.df.Names() {
		if name == col {
			return i
		}
	}
	return -1
}

func sortGroupsByName(groups []Group) {
	sort.Slice(groups, func(i, j int) bool { return groups[i].Name < groups[j].Name })
}

func sortCountsByName(counts []Count) {
	sort.Slice(counts, func(i, j int) bool { return counts[i].Name < counts[j].Name })
}

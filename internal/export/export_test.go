package export

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/KaramelBytes/flamingo-cli/internal/analysis"
	"github.com/KaramelBytes/flamingo-cli/internal/dataset"
	"github.com/KaramelBytes/flamingo-cli/internal/stats"
)

func fullResults() (*analysis.Population, *analysis.Geography, *analysis.Conservation, *analysis.PopulationStats) {
	pop := &analysis.Population{
		HasGrowth: true,
		Species: []analysis.GroupShare{
			{Name: "Lesser Flamingo", Value: 180, Share: 54.5454},
			{Name: "Greater Flamingo", Value: 150, Share: 45.4545},
		},
	}
	geo := &analysis.Geography{
		Regions: []analysis.GroupShare{
			{Name: "Africa", Value: 330, Share: 100},
		},
		Habitats: []analysis.CountShare{
			{Name: "Soda Lake", N: 2, Share: 100},
		},
	}
	cons := &analysis.Conservation{
		Statuses: []dataset.Count{
			{Name: "Near Threatened", N: 1},
			{Name: "Least Concern", N: 1},
		},
	}
	st := &analysis.PopulationStats{
		Present:  true,
		Summary:  stats.Summary{Count: 2, Mean: 165, Median: 165, Std: 21.2, Min: 150, Max: 180},
		ShapiroW: 0.99,
		ShapiroP: 0.8123,
	}
	return pop, geo, cons, st
}

func cell(t *testing.T, f *excelize.File, sheet, axis string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, axis)
	if err != nil {
		t.Fatalf("cell %s!%s: %v", sheet, axis, err)
	}
	return v
}

func TestWriteWorkbook(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "outputs")
	pop, geo, cons, st := fullResults()

	path, err := Write(dir, pop, geo, cons, st, 2)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if filepath.Base(path) != FileName {
		t.Errorf("path = %s", path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := []string{"Species", "Regions", "Habitats", "Conservation", "Statistics"}
	if len(sheets) != len(want) {
		t.Fatalf("sheets = %v", sheets)
	}
	for i, name := range want {
		if sheets[i] != name {
			t.Errorf("sheet[%d] = %q, want %q", i, sheets[i], name)
		}
	}

	if got := cell(t, f, "Species", "A1"); got != "Species" {
		t.Errorf("Species!A1 = %q", got)
	}
	if got := cell(t, f, "Species", "A2"); got != "Lesser Flamingo" {
		t.Errorf("Species!A2 = %q", got)
	}
	if got := cell(t, f, "Species", "B2"); got != "180" {
		t.Errorf("Species!B2 = %q", got)
	}
	if got := cell(t, f, "Species", "C2"); got != "54.5%" {
		t.Errorf("Species!C2 = %q", got)
	}

	if got := cell(t, f, "Habitats", "B2"); got != "2" {
		t.Errorf("Habitats!B2 = %q", got)
	}
	if got := cell(t, f, "Conservation", "A2"); got != "Near Threatened" {
		t.Errorf("Conservation!A2 = %q", got)
	}
	if got := cell(t, f, "Statistics", "B2"); got != "2" {
		t.Errorf("Statistics!B2 (records) = %q", got)
	}
	if got := cell(t, f, "Statistics", "B8"); got != "0.8123" {
		t.Errorf("Statistics!B8 (p-value) = %q", got)
	}
}

func TestWriteSkipsAbsentSections(t *testing.T) {
	dir := t.TempDir()
	pop := &analysis.Population{}
	geo := &analysis.Geography{
		Habitats: []analysis.CountShare{{Name: "Salt Flat", N: 1, Share: 100}},
	}
	cons := &analysis.Conservation{}
	st := &analysis.PopulationStats{}

	path, err := Write(dir, pop, geo, cons, st, 1)
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Habitats" {
		t.Fatalf("sheets = %v, want only Habitats", sheets)
	}
}

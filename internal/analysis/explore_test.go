package analysis

import (
	"bytes"
	"testing"
)

func TestExploreComputesOverview(t *testing.T) {
	tbl := loadSurvey(t, surveyRows)
	ex := Explore(tbl, 5)

	if ex.RowCount != 4 || ex.ColCount != 6 {
		t.Errorf("shape = (%d, %d)", ex.RowCount, ex.ColCount)
	}
	if len(ex.Head) != 4 {
		t.Errorf("head rows = %d", len(ex.Head))
	}
	if len(ex.Numeric) != 2 {
		t.Fatalf("numeric columns = %v", ex.Numeric)
	}

	// One missing habitat cell in the fixture.
	byName := map[string]int{}
	for i, col := range ex.Columns {
		byName[col] = ex.Nulls[i]
	}
	if byName["habitat_type"] != 1 {
		t.Errorf("habitat nulls = %d", byName["habitat_type"])
	}
	if byName["species"] != 0 {
		t.Errorf("species nulls = %d", byName["species"])
	}

	s := ex.Summary["population_2023"]
	if s.Count != 4 {
		t.Errorf("population_2023 count = %d", s.Count)
	}
	closeTo(t, s.Mean, (150+180+330+45)/4.0, 1e-9, "population_2023 mean")
	closeTo(t, s.Min, 45, 0, "population_2023 min")
	closeTo(t, s.Max, 330, 0, "population_2023 max")
}

func TestExploreRenderSections(t *testing.T) {
	plainColors(t)
	tbl := loadSurvey(t, surveyRows)

	var buf bytes.Buffer
	Explore(tbl, 5).Render(&buf)
	out := buf.String()

	wantLine(t, out, "EXPLORATORY DATA ANALYSIS")
	wantLine(t, out, "[*] Data Shape: (4, 6)")
	wantLine(t, out, "[*] First 5 records:")
	wantLine(t, out, "[*] Data Types:")
	wantLine(t, out, "[*] Missing Values:")
	wantLine(t, out, "[*] Summary Statistics:")
	// Table cells surface the data itself.
	wantLine(t, out, "Greater Flamingo")
	wantLine(t, out, "176.25") // mean of population_2023
}

func TestExploreHeadRowsSetting(t *testing.T) {
	plainColors(t)
	tbl := loadSurvey(t, surveyRows)

	ex := Explore(tbl, 2)
	if len(ex.Head) != 2 {
		t.Fatalf("head rows = %d, want 2", len(ex.Head))
	}

	var buf bytes.Buffer
	ex.Render(&buf)
	wantLine(t, buf.String(), "[*] First 2 records:")
}

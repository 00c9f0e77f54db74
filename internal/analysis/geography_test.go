package analysis

import (
	"bytes"
	"strings"
	"testing"
)

func TestAnalyzeGeographyRegions(t *testing.T) {
	tbl := loadSurvey(t, surveyRows)
	geo := AnalyzeGeography(tbl)

	if len(geo.Regions) != 2 {
		t.Fatalf("regions = %+v", geo.Regions)
	}
	// Africa 330 vs South America 375: descending by population.
	if geo.Regions[0].Name != "South America" || geo.Regions[1].Name != "Africa" {
		t.Errorf("order = %s, %s", geo.Regions[0].Name, geo.Regions[1].Name)
	}
	closeTo(t, geo.Regions[0].Value, 375, 0, "south america total")
	closeTo(t, geo.Regions[0].Share+geo.Regions[1].Share, 100, 1e-9, "region shares sum")
}

func TestAnalyzeGeographyHabitatSharesOfAllRows(t *testing.T) {
	tbl := loadSurvey(t, surveyRows)
	geo := AnalyzeGeography(tbl)

	// Three named habitats across four rows; the missing habitat row is not
	// counted but still sits in the denominator.
	if len(geo.Habitats) != 3 {
		t.Fatalf("habitats = %+v", geo.Habitats)
	}
	var sum float64
	for _, h := range geo.Habitats {
		if h.N != 1 {
			t.Errorf("%s count = %d, want 1", h.Name, h.N)
		}
		closeTo(t, h.Share, 25, 1e-9, h.Name+" share")
		sum += h.Share
	}
	closeTo(t, sum, 75, 1e-9, "habitat shares total")
}

func TestGeographyRenderLines(t *testing.T) {
	plainColors(t)
	tbl := loadSurvey(t, surveyRows)

	var buf bytes.Buffer
	AnalyzeGeography(tbl).Render(&buf)
	out := buf.String()

	wantLine(t, out, "GEOGRAPHIC DISTRIBUTION ANALYSIS")
	wantLine(t, out, "[*] Population Distribution by Region (2023):")
	wantLine(t, out, "  - South America: 375 (53.2%)")
	wantLine(t, out, "  - Africa: 330 (46.8%)")
	wantLine(t, out, "[*] Habitat Type Distribution:")
	wantLine(t, out, "  - Alkaline Lake: 1 records (25.0%)")
}

func TestGeographyGuards(t *testing.T) {
	plainColors(t)
	rows := []string{
		"species,population_2023",
		"Greater Flamingo,150",
	}
	tbl := loadSurvey(t, rows)
	geo := AnalyzeGeography(tbl)

	if len(geo.Regions) != 0 || len(geo.Habitats) != 0 {
		t.Fatalf("geo = %+v", geo)
	}

	var buf bytes.Buffer
	geo.Render(&buf)
	out := buf.String()
	wantLine(t, out, "GEOGRAPHIC DISTRIBUTION ANALYSIS")
	if strings.Contains(out, "Region") || strings.Contains(out, "Habitat") {
		t.Errorf("guarded blocks rendered:\n%s", out)
	}
}

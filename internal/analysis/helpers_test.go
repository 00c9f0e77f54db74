package analysis

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/KaramelBytes/flamingo-cli/internal/dataset"
)

// surveyRows is the shared fixture; numbers are chosen so growth and share
// percentages come out to clean values.
var surveyRows = []string{
	"species,region,habitat_type,conservation_status,population_2020,population_2023",
	"Greater Flamingo,Africa,Alkaline Lake,Least Concern,100,150",
	"Lesser Flamingo,Africa,Soda Lake,Near Threatened,200,180",
	"Chilean Flamingo,South America,Salt Flat,Near Threatened,300,330",
	"Andean Flamingo,South America,,Vulnerable,50,45",
}

func loadSurvey(t *testing.T, rows []string) *dataset.Table {
	t.Helper()
	path := filepath.Join(t.TempDir(), "survey.csv")
	if err := os.WriteFile(path, []byte(strings.Join(rows, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	tbl, err := dataset.Load(path)
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	return tbl
}

func plainColors(t *testing.T) {
	t.Helper()
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })
}

func closeTo(t *testing.T, got, want, tol float64, label string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %.6f, want %.6f", label, got, want)
	}
}

func wantLine(t *testing.T, out, line string) {
	t.Helper()
	if !strings.Contains(out, line) {
		t.Errorf("output missing %q\n---\n%s", line, out)
	}
}

package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/flamingo-cli/internal/utils"
)

// FileName is the report's name inside the output directory.
const FileName = "analysis_report.txt"

// Build renders the analysis report for a dataset of records rows. The text
// is fully determined by the record count, so repeat runs over the same data
// produce identical bytes.
func Build(records int) string {
	rule := strings.Repeat("=", 70)
	sub := strings.Repeat("-", 70)

	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString("FLAMINGO POPULATION DATA ANALYTICS REPORT\n")
	b.WriteString(rule + "\n\n")

	b.WriteString("PROJECT OVERVIEW\n")
	b.WriteString(sub + "\n")
	b.WriteString("This report contains a comprehensive analysis of global flamingo\n")
	b.WriteString("populations, including demographic trends, geographic distribution,\n")
	b.WriteString("and conservation status assessment.\n\n")

	b.WriteString("KEY STATISTICS\n")
	b.WriteString(sub + "\n")
	fmt.Fprintf(&b, "Total Records Analyzed: %d\n", records)
	b.WriteString("Date Generated: December 2025\n")
	b.WriteString("Analysis Period: 2020-2023\n\n")

	b.WriteString("For detailed analysis, see the main README.md file.\n")
	return b.String()
}

// Write renders the report into dir, replacing any previous copy.
func Write(dir string, records int) (string, error) {
	if err := utils.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("ensure output dir: %w", err)
	}
	path := filepath.Join(dir, FileName)
	if err := utils.SafeWriteFile(path, []byte(Build(records))); err != nil {
		return "", err
	}
	return path, nil
}

package export

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/KaramelBytes/flamingo-cli/internal/analysis"
	"github.com/KaramelBytes/flamingo-cli/internal/utils"
)

// FileName is the workbook's name inside the output directory.
const FileName = "analysis_results.xlsx"

// Write builds a workbook of the computed breakdowns and saves it into dir.
// Sections whose source columns were absent are left out of the workbook.
func Write(dir string, pop *analysis.Population, geo *analysis.Geography, cons *analysis.Conservation, st *analysis.PopulationStats, records int) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	first := true
	addSheet := func(name string) error {
		if first {
			first = false
			return f.SetSheetName("Sheet1", name)
		}
		_, err := f.NewSheet(name)
		return err
	}

	if len(pop.Species) > 0 {
		if err := addSheet("Species"); err != nil {
			return "", fmt.Errorf("add sheet: %w", err)
		}
		writeShareRows(f, "Species", "Species", pop.Species)
	}
	if len(geo.Regions) > 0 {
		if err := addSheet("Regions"); err != nil {
			return "", fmt.Errorf("add sheet: %w", err)
		}
		writeShareRows(f, "Regions", "Region", geo.Regions)
	}
	if len(geo.Habitats) > 0 {
		if err := addSheet("Habitats"); err != nil {
			return "", fmt.Errorf("add sheet: %w", err)
		}
		writeHeader(f, "Habitats", []string{"Habitat", "Records", "Share (%)"})
		for i, h := range geo.Habitats {
			row := i + 2
			setCell(f, "Habitats", 1, row, h.Name)
			setCell(f, "Habitats", 2, row, h.N)
			setCell(f, "Habitats", 3, row, fmt.Sprintf("%.1f%%", h.Share))
		}
	}
	if len(cons.Statuses) > 0 {
		if err := addSheet("Conservation"); err != nil {
			return "", fmt.Errorf("add sheet: %w", err)
		}
		writeHeader(f, "Conservation", []string{"Status", "Species"})
		for i, s := range cons.Statuses {
			row := i + 2
			setCell(f, "Conservation", 1, row, s.Name)
			setCell(f, "Conservation", 2, row, s.N)
		}
	}
	if st.Present {
		if err := addSheet("Statistics"); err != nil {
			return "", fmt.Errorf("add sheet: %w", err)
		}
		writeHeader(f, "Statistics", []string{"Metric", "Value"})
		rows := [][2]string{
			{"Records", fmt.Sprintf("%d", records)},
			{"Mean", analysis.FormatCount(st.Summary.Mean)},
			{"Median", analysis.FormatCount(st.Summary.Median)},
			{"Std Dev", analysis.FormatCount(st.Summary.Std)},
			{"Min", analysis.FormatCount(st.Summary.Min)},
			{"Max", analysis.FormatCount(st.Summary.Max)},
			{"Shapiro-Wilk p-value", fmt.Sprintf("%.4f", st.ShapiroP)},
		}
		for i, r := range rows {
			setCell(f, "Statistics", 1, i+2, r[0])
			setCell(f, "Statistics", 2, i+2, r[1])
		}
	}

	if err := utils.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("ensure output dir: %w", err)
	}
	path := filepath.Join(dir, FileName)
	buf, err := f.WriteToBuffer()
	if err != nil {
		return "", fmt.Errorf("encode workbook: %w", err)
	}
	if err := utils.SafeWriteFile(path, buf.Bytes()); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}
	return path, nil
}

func writeShareRows(f *excelize.File, sheet, label string, groups []analysis.GroupShare) {
	writeHeader(f, sheet, []string{label, "Population 2023", "Share (%)"})
	for i, g := range groups {
		row := i + 2
		setCell(f, sheet, 1, row, g.Name)
		setCell(f, sheet, 2, row, g.Value)
		setCell(f, sheet, 3, row, fmt.Sprintf("%.1f%%", g.Share))
	}
}

func writeHeader(f *excelize.File, sheet string, cols []string) {
	for i, name := range cols {
		setCell(f, sheet, i+1, 1, name)
	}
	end, _ := excelize.ColumnNumberToName(len(cols))
	_ = f.SetColWidth(sheet, "A", end, 22)
}

func setCell(f *excelize.File, sheet string, col, row int, v any) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return
	}
	_ = f.SetCellValue(sheet, cell, v)
}

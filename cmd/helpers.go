package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/KaramelBytes/flamingo-cli/internal/dataset"
	"github.com/KaramelBytes/flamingo-cli/internal/utils"
)

// loadTable reads the survey CSV, echoing load progress the way every
// analysis command starts.
func loadTable(w io.Writer, path string) (*dataset.Table, error) {
	utils.Stepf(w, "Loading flamingo population data...")
	t, err := dataset.Load(path)
	if err != nil {
		utils.Failf(w, "Error: %v", err)
		return nil, err
	}
	utils.Okf(w, "Successfully loaded %d records", t.Rows())
	utils.Okf(w, "Columns: %s", strings.Join(t.Columns(), ", "))
	fmt.Fprintln(w)
	return t, nil
}

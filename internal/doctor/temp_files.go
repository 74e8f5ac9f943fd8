package doctor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/leeovery/todol/internal/storage"
)

// TempFileCheck warns about temp files left beside the list by a save that
// was interrupted before its rename. The list itself is unaffected.
type TempFileCheck struct{}

// Run executes the temp file check.
func (c *TempFileCheck) Run(_ context.Context, listPath string) []CheckResult {
	const name = "Temp files"
	matches, err := filepath.Glob(filepath.Join(filepath.Dir(listPath), storage.TempPattern))
	if err != nil || len(matches) == 0 {
		return passed(name)
	}

	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = filepath.Base(m)
	}
	return []CheckResult{{
		Name:       name,
		Passed:     false,
		Severity:   SeverityWarning,
		Details:    fmt.Sprintf("%d leftover save file(s): %s", len(matches), strings.Join(names, ", ")),
		Suggestion: "Remove them once no todol process is running",
	}}
}

package doctor

import (
	"context"
	"fmt"

	"github.com/leeovery/todol/internal/storage"
)

// FileSizeCheck verifies the list file is exactly storage.FileSize bytes.
// Any other size means the file was truncated, extended, or is not a list.
type FileSizeCheck struct{}

// Run executes the file size check.
func (c *FileSizeCheck) Run(ctx context.Context, listPath string) []CheckResult {
	const name = "File size"
	data := getListData(ctx, listPath)
	if data.ReadErr != nil {
		return unreadableResult(name)
	}

	if len(data.Raw) != storage.FileSize {
		return []CheckResult{{
			Name:       name,
			Passed:     false,
			Severity:   SeverityError,
			Details:    fmt.Sprintf("file is %d bytes, expected %d", len(data.Raw), storage.FileSize),
			Suggestion: "Restore from backup or recreate with `todol <listfile> create`",
		}}
	}
	return passed(name)
}

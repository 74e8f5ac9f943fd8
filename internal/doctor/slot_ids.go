package doctor

import (
	"context"
	"fmt"
)

// SlotIDCheck verifies that every record's id equals its slot position.
// Each mismatch is reported individually.
type SlotIDCheck struct{}

// Run executes the slot id check.
func (c *SlotIDCheck) Run(ctx context.Context, listPath string) []CheckResult {
	const name = "Slot ids"
	data := getListData(ctx, listPath)
	if res, ok := precheck(data, name); !ok {
		return res
	}

	var failures []CheckResult
	for slot, r := range data.Records {
		if int(r.ID) == slot {
			continue
		}
		failures = append(failures, CheckResult{
			Name:       name,
			Passed:     false,
			Severity:   SeverityError,
			Details:    fmt.Sprintf("Slot %d: holds id %d", slot, r.ID),
			Suggestion: "Manual fix required",
		})
	}
	if len(failures) > 0 {
		return failures
	}
	return passed(name)
}

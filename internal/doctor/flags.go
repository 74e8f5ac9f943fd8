package doctor

import (
	"context"
	"fmt"
)

// FlagCheck verifies that occupied and completed flags are 0 or 1, and
// warns about unoccupied slots still marked completed.
type FlagCheck struct{}

// Run executes the flag check.
func (c *FlagCheck) Run(ctx context.Context, listPath string) []CheckResult {
	const name = "Flags"
	data := getListData(ctx, listPath)
	if res, ok := precheck(data, name); !ok {
		return res
	}

	var failures []CheckResult
	for slot, r := range data.Records {
		if r.Occupied > 1 {
			failures = append(failures, CheckResult{
				Name:       name,
				Passed:     false,
				Severity:   SeverityError,
				Details:    fmt.Sprintf("Slot %d: occupied flag is %d", slot, r.Occupied),
				Suggestion: "Manual fix required",
			})
		}
		if r.Completed > 1 {
			failures = append(failures, CheckResult{
				Name:       name,
				Passed:     false,
				Severity:   SeverityError,
				Details:    fmt.Sprintf("Slot %d: completed flag is %d", slot, r.Completed),
				Suggestion: "Manual fix required",
			})
		}
		if r.Occupied == 0 && r.Completed == 1 {
			failures = append(failures, CheckResult{
				Name:       name,
				Passed:     false,
				Severity:   SeverityWarning,
				Details:    fmt.Sprintf("Slot %d: empty slot marked completed", slot),
				Suggestion: "Any saving action rewrites the slot cleared",
			})
		}
	}
	if len(failures) > 0 {
		return failures
	}
	return passed(name)
}

package doctor

import (
	"context"
	"fmt"
)

// ContiguityCheck verifies that occupied slots form a prefix starting at
// slot 0. Clearing completed entries stops at the first empty slot below
// the highest entry, so entries under a gap would never be cleared.
type ContiguityCheck struct{}

// Run executes the contiguity check. Each occupied slot that follows an
// empty one is reported.
func (c *ContiguityCheck) Run(ctx context.Context, listPath string) []CheckResult {
	const name = "Contiguity"
	data := getListData(ctx, listPath)
	if res, ok := precheck(data, name); !ok {
		return res
	}

	var failures []CheckResult
	firstGap := -1
	for slot, r := range data.Records {
		if r.Occupied != 1 {
			if firstGap < 0 {
				firstGap = slot
			}
			continue
		}
		if firstGap >= 0 {
			failures = append(failures, CheckResult{
				Name:       name,
				Passed:     false,
				Severity:   SeverityError,
				Details:    fmt.Sprintf("Slot %d: occupied after empty slot %d", slot, firstGap),
				Suggestion: "Manual fix required",
			})
		}
	}
	if len(failures) > 0 {
		return failures
	}
	return passed(name)
}

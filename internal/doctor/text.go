package doctor

import (
	"context"
	"fmt"
	"unicode/utf8"
)

// TextCheck verifies that every occupied slot's text is NUL terminated
// within the record, and warns about text that is not valid UTF-8.
type TextCheck struct{}

// Run executes the text check.
func (c *TextCheck) Run(ctx context.Context, listPath string) []CheckResult {
	const name = "Text"
	data := getListData(ctx, listPath)
	if res, ok := precheck(data, name); !ok {
		return res
	}

	var failures []CheckResult
	for slot, r := range data.Records {
		if r.Occupied != 1 {
			continue
		}
		text, terminated := r.TextString()
		if !terminated {
			failures = append(failures, CheckResult{
				Name:       name,
				Passed:     false,
				Severity:   SeverityError,
				Details:    fmt.Sprintf("Slot %d: text is not terminated", slot),
				Suggestion: "Manual fix required",
			})
			continue
		}
		if !utf8.ValidString(text) {
			failures = append(failures, CheckResult{
				Name:       name,
				Passed:     false,
				Severity:   SeverityWarning,
				Details:    fmt.Sprintf("Slot %d: text is not valid UTF-8", slot),
				Suggestion: fmt.Sprintf("Run `todol <listfile> change %d <text>` to rewrite it", slot),
			})
		}
	}
	if len(failures) > 0 {
		return failures
	}
	return passed(name)
}

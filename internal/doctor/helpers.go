package doctor

// unreadableResult returns the standard result for a list file that cannot
// be read at all.
func unreadableResult(checkName string) []CheckResult {
	return []CheckResult{{
		Name:       checkName,
		Passed:     false,
		Severity:   SeverityError,
		Details:    "list file not found or unreadable",
		Suggestion: "Run `todol <listfile> create` or verify the path",
	}}
}

// skippedResult is returned by record-level checks when the file size is
// wrong and records cannot be located. The size check reports the error.
func skippedResult(checkName string) []CheckResult {
	return []CheckResult{{
		Name:     checkName,
		Passed:   false,
		Severity: SeverityWarning,
		Details:  "skipped: records cannot be located in a file of the wrong size",
	}}
}

// precheck returns the result a record-level check must report instead of
// inspecting records, and false, when the records are not available.
func precheck(data ListData, checkName string) ([]CheckResult, bool) {
	if data.ReadErr != nil {
		return unreadableResult(checkName), false
	}
	if data.Records == nil {
		return skippedResult(checkName), false
	}
	return nil, true
}

func passed(checkName string) []CheckResult {
	return []CheckResult{{Name: checkName, Passed: true}}
}

// Package doctor inspects a todol list file without modifying it. Each Check
// looks at one property of the file; the runner runs all of them and gathers
// their findings into a report.
package doctor

import "context"

// Severity separates findings that fail the run from informational ones.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// CheckResult is one finding. A check that finds nothing returns a single
// result with Passed set.
type CheckResult struct {
	Name       string
	Passed     bool
	Severity   Severity
	Details    string
	Suggestion string
}

// Check inspects the list file at listPath.
type Check interface {
	Run(ctx context.Context, listPath string) []CheckResult
}

// DiagnosticReport is the ordered output of a run.
type DiagnosticReport struct {
	Results []CheckResult
}

// Count returns how many failed results carry severity s.
func (r *DiagnosticReport) Count(s Severity) int {
	n := 0
	for _, result := range r.Results {
		if !result.Passed && result.Severity == s {
			n++
		}
	}
	return n
}

// HasErrors reports whether any error-severity finding failed.
func (r *DiagnosticReport) HasErrors() bool {
	return r.Count(SeverityError) > 0
}

// DiagnosticRunner runs checks in registration order.
type DiagnosticRunner struct {
	checks []Check
}

func NewDiagnosticRunner() *DiagnosticRunner {
	return &DiagnosticRunner{}
}

func (d *DiagnosticRunner) Register(check Check) {
	d.checks = append(d.checks, check)
}

// RunAll reads listPath once, hands the bytes to every check through ctx and
// collects every result. A failing check never stops later ones.
func (d *DiagnosticRunner) RunAll(ctx context.Context, listPath string) DiagnosticReport {
	if listPath != "" {
		ctx = WithListData(ctx, listPath)
	}
	report := DiagnosticReport{}
	for _, check := range d.checks {
		report.Results = append(report.Results, check.Run(ctx, listPath)...)
	}
	return report
}

// Default registers the built-in checks. The archive check is added only
// when archivePath is set.
func Default(archivePath string) *DiagnosticRunner {
	runner := NewDiagnosticRunner()
	for _, c := range []Check{
		&FileSizeCheck{},
		&SlotIDCheck{},
		&FlagCheck{},
		&TextCheck{},
		&ContiguityCheck{},
		&TempFileCheck{},
		&LockCheck{},
	} {
		runner.Register(c)
	}
	if archivePath != "" {
		runner.Register(&ArchiveCheck{Path: archivePath})
	}
	return runner
}

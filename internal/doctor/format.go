package doctor

import (
	"fmt"
	"io"
)

var severityMarks = map[Severity]string{
	SeverityError:   "✗",
	SeverityWarning: "!",
}

// FormatReport prints one line per result followed by a summary. Failed
// results carry their suggestion on an indented line.
func FormatReport(w io.Writer, report DiagnosticReport) {
	for _, r := range report.Results {
		if r.Passed {
			fmt.Fprintf(w, "✓ %s: OK\n", r.Name)
			continue
		}
		fmt.Fprintf(w, "%s %s: %s\n", severityMarks[r.Severity], r.Name, r.Details)
		if r.Suggestion != "" {
			fmt.Fprintf(w, "  → %s\n", r.Suggestion)
		}
	}
	if len(report.Results) > 0 {
		fmt.Fprintln(w)
	}

	errs, warns := report.Count(SeverityError), report.Count(SeverityWarning)
	if errs+warns == 0 {
		fmt.Fprintln(w, "No issues found.")
		return
	}
	fmt.Fprintf(w, "%s, %s.\n", counted(errs, "error"), counted(warns, "warning"))
}

func counted(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// ExitCode is 1 when the report holds an error-severity failure. Warnings
// alone exit 0.
func ExitCode(report DiagnosticReport) int {
	if report.HasErrors() {
		return 1
	}
	return 0
}

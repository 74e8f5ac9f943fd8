package migrate

import (
	"fmt"
	"io"
)

// WriteHeader prints the header line identifying the source provider.
func WriteHeader(w io.Writer, providerName string, dryRun bool) {
	if dryRun {
		fmt.Fprintf(w, "Importing from %s... [dry-run]\n", providerName)
		return
	}
	fmt.Fprintf(w, "Importing from %s...\n", providerName)
}

// WriteResult prints a single result as an indented task line.
func WriteResult(w io.Writer, r Result) {
	if r.Success {
		fmt.Fprintf(w, "  ✓ Task: %s\n", r.Text)
		return
	}
	fmt.Fprintf(w, "  ✗ Task: %s (%v)\n", r.Text, r.Err)
}

// WriteSummary prints the imported and failed counts, preceded by a blank
// line to separate it from the per-task output.
func WriteSummary(w io.Writer, results []Result) {
	imported := 0
	failed := 0
	for _, r := range results {
		if r.Success {
			imported++
		} else {
			failed++
		}
	}
	fmt.Fprintf(w, "\nDone: %d imported, %d failed\n", imported, failed)
}

// Present renders the complete import output: header, per-task lines, and summary.
func Present(w io.Writer, providerName string, dryRun bool, results []Result) {
	WriteHeader(w, providerName, dryRun)
	for _, r := range results {
		WriteResult(w, r)
	}
	WriteSummary(w, results)
}

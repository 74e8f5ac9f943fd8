package doctor

import (
	"context"
	"fmt"

	"github.com/gofrs/flock"

	"github.com/leeovery/todol/internal/storage"
)

// LockCheck warns when another process holds the list's lock exclusively.
// A writer mid-save can make the other checks report transient states.
// The probe is a non-blocking shared lock, released immediately.
type LockCheck struct{}

// Run executes the lock check.
func (c *LockCheck) Run(_ context.Context, listPath string) []CheckResult {
	const name = "Lock"
	lockPath := storage.LockPath(listPath)
	fl := flock.New(lockPath)

	locked, err := fl.TryRLock()
	if err != nil {
		return []CheckResult{{
			Name:     name,
			Passed:   false,
			Severity: SeverityWarning,
			Details:  fmt.Sprintf("could not probe %s: %v", lockPath, err),
		}}
	}
	if !locked {
		return []CheckResult{{
			Name:       name,
			Passed:     false,
			Severity:   SeverityWarning,
			Details:    "another todol process is writing the list",
			Suggestion: "Re-run doctor once it finishes",
		}}
	}
	fl.Unlock()
	return passed(name)
}

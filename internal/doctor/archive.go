package doctor

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

// ArchiveCheck runs SQLite's integrity check against the history archive.
// A missing archive passes: it is only created once archiving is enabled.
// It is read-only and never modifies the database.
type ArchiveCheck struct {
	Path string
}

// Run executes the archive check.
func (c *ArchiveCheck) Run(ctx context.Context, _ string) []CheckResult {
	const name = "Archive"
	if _, err := os.Stat(c.Path); os.IsNotExist(err) {
		return passed(name)
	}

	status, err := integrityCheck(ctx, c.Path)
	if err != nil || status != "ok" {
		details := fmt.Sprintf("integrity check reported %q", status)
		if err != nil {
			details = fmt.Sprintf("archive unreadable: %v", err)
		}
		return []CheckResult{{
			Name:       name,
			Passed:     false,
			Severity:   SeverityError,
			Details:    details,
			Suggestion: fmt.Sprintf("Move %s aside; a new archive is created on the next archived change", c.Path),
		}}
	}
	return passed(name)
}

// integrityCheck opens the archive read-only and returns the first line of
// PRAGMA integrity_check.
func integrityCheck(ctx context.Context, path string) (string, error) {
	dsn := fmt.Sprintf("file:%s?mode=ro", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return "", fmt.Errorf("open archive: %w", err)
	}
	defer db.Close()

	var status string
	if err := db.QueryRowContext(ctx, "PRAGMA integrity_check").Scan(&status); err != nil {
		return "", fmt.Errorf("integrity check: %w", err)
	}
	return status, nil
}

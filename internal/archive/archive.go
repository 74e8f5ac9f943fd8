// Package archive keeps a SQLite history of entries that left a list through
// remove, clear or pop. The list file stays the source of truth; the archive
// is an append-only record beside it.
package archive

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/leeovery/todol/internal/task"
)

const timeFormat = "2006-01-02T15:04:05Z"

const schema = `
CREATE TABLE IF NOT EXISTS archived (
  seq INTEGER PRIMARY KEY AUTOINCREMENT,
  slot INTEGER NOT NULL,
  text TEXT NOT NULL,
  completed INTEGER NOT NULL DEFAULT 0,
  reason TEXT NOT NULL,
  archived_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_archived_reason ON archived(reason);
`

// Reason records why an entry left the list.
type Reason string

const (
	ReasonRemoved Reason = "removed"
	ReasonCleared Reason = "cleared"
	ReasonPopped  Reason = "popped"
)

// Record is one archived entry.
type Record struct {
	Seq        int64
	Slot       int
	Text       string
	Completed  bool
	Reason     Reason
	ArchivedAt time.Time
}

// Archive wraps the SQLite history database.
type Archive struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// Open opens or creates the archive at path and initializes the schema.
func Open(path string) (*Archive, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening archive database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing archive schema: %w", err)
	}

	return &Archive{
		db:   db,
		path: path,
		now:  func() time.Time { return time.Now().UTC().Truncate(time.Second) },
	}, nil
}

// Close closes the underlying database connection.
func (a *Archive) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Path returns the database file path.
func (a *Archive) Path() string {
	return a.path
}

// Add archives entries with the given reason in a single transaction, all
// sharing one timestamp. Unoccupied entries are skipped.
func (a *Archive) Add(reason Reason, entries ...task.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := a.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO archived (slot, text, completed, reason, archived_at) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing archive insert: %w", err)
	}
	defer stmt.Close()

	at := a.now().Format(timeFormat)
	for _, e := range entries {
		if !e.Occupied {
			continue
		}
		completed := 0
		if e.Completed {
			completed = 1
		}
		if _, err := stmt.Exec(e.ID, e.Text, completed, string(reason), at); err != nil {
			return fmt.Errorf("archiving slot %d: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing archive: %w", err)
	}
	return nil
}

// Recent returns up to n archived records, newest first. n <= 0 returns all.
func (a *Archive) Recent(n int) ([]Record, error) {
	limit := n
	if limit <= 0 {
		limit = -1
	}

	rows, err := a.db.Query(`SELECT seq, slot, text, completed, reason, archived_at FROM archived ORDER BY seq DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying archive: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			r          Record
			completed  int
			reason, at string
		)
		if err := rows.Scan(&r.Seq, &r.Slot, &r.Text, &completed, &reason, &at); err != nil {
			return nil, fmt.Errorf("scanning archive row: %w", err)
		}
		r.Completed = completed == 1
		r.Reason = Reason(reason)
		r.ArchivedAt, err = time.Parse(timeFormat, at)
		if err != nil {
			return nil, fmt.Errorf("parsing archived_at %q: %w", at, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading archive rows: %w", err)
	}
	return records, nil
}

// Count returns the number of archived records.
func (a *Archive) Count() (int, error) {
	var n int
	if err := a.db.QueryRow(`SELECT COUNT(*) FROM archived`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting archive: %w", err)
	}
	return n, nil
}

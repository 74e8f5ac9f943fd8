// Package migrate imports tasks from external checklists into a todol list.
// Providers read a source and normalise it into MigratedTask values; the
// Engine validates them and hands each one to a TaskCreator.
package migrate

import (
	"errors"
	"strings"
)

// ErrEmptyText is reported for an item with no text after trimming.
var ErrEmptyText = errors.New("text is required and cannot be empty")

// MigratedTask is a normalised task ready for insertion into a list.
type MigratedTask struct {
	Text      string
	Completed bool
}

// Validate checks that the task has text. Over-long text is not an error:
// it is bounded the same way add bounds it.
func (mt MigratedTask) Validate() error {
	if strings.TrimSpace(mt.Text) == "" {
		return ErrEmptyText
	}
	return nil
}

// Provider abstracts a source from which tasks can be imported.
type Provider interface {
	// Name returns the provider identifier (e.g. "markdown") used in output.
	Name() string
	// Tasks returns all normalised tasks from the source, or an error if the
	// source cannot be read.
	Tasks() ([]MigratedTask, error)
}

// Result records the outcome of importing a single task. ID is the slot the
// task landed in and is only meaningful when Success is true.
type Result struct {
	Text    string
	ID      int
	Success bool
	Err     error
}

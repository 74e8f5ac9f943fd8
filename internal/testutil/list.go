package testutil

import (
	"path/filepath"
	"testing"

	"github.com/leeovery/todol/internal/storage"
	"github.com/leeovery/todol/internal/task"
)

// Item describes an entry to seed a list file with.
type Item struct {
	Text      string
	Completed bool
}

// WriteList creates todo.db in a fresh temp dir holding texts as open
// entries, in order, and returns its path.
func WriteList(t *testing.T, texts ...string) string {
	t.Helper()
	items := make([]Item, len(texts))
	for i, text := range texts {
		items[i] = Item{Text: text}
	}
	return WriteItems(t, filepath.Join(t.TempDir(), "todo.db"), items...)
}

// WriteItems creates the list file at path holding items, in order.
func WriteItems(t *testing.T, path string, items ...Item) string {
	t.Helper()
	err := storage.NewStore(path).Create(func(l *task.List) error {
		for _, item := range items {
			id, err := l.Add(item.Text)
			if err != nil {
				return err
			}
			if item.Completed {
				if _, err := l.ToggleComplete(id); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("failed to write list %s: %v", path, err)
	}
	return path
}

// ReadEntries returns the occupied entries of the list file at path.
func ReadEntries(t *testing.T, path string) []task.Entry {
	t.Helper()
	var entries []task.Entry
	err := storage.NewStore(path).Query(func(l *task.List) error {
		entries = l.Occupied()
		return nil
	})
	if err != nil {
		t.Fatalf("failed to read list %s: %v", path, err)
	}
	return entries
}

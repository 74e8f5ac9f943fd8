package cli

import (
	"errors"
	"fmt"

	"github.com/leeovery/todol/internal/archive"
	"github.com/leeovery/todol/internal/task"
)

// runRemove removes the entry at the given id, shifting later entries down.
// Removing an empty slot succeeds without changing anything.
func (a *App) runRemove(inv *invocation) error {
	id, err := requireID(inv, "remove")
	if err != nil {
		return err
	}

	var removed task.Entry
	var found bool
	err = openStore(inv).Mutate(func(l *task.List) error {
		e, err := l.Get(id)
		switch {
		case err == nil:
			removed, found = e, true
		case !errors.Is(err, task.ErrNotFound):
			return err
		}
		return l.Remove(id)
	})
	if err != nil {
		return err
	}

	if !found {
		return a.message(inv, "Slot %d is already empty", id)
	}
	recordArchive(inv, archive.ReasonRemoved, removed)
	return a.message(inv, "Removed %d: %s", removed.ID, removed.Text)
}

// runClear removes every completed entry.
func (a *App) runClear(inv *invocation) error {
	var removed []task.Entry
	err := openStore(inv).Mutate(func(l *task.List) error {
		removed = l.ClearCompleted()
		return nil
	})
	if err != nil {
		return err
	}

	recordArchive(inv, archive.ReasonCleared, removed...)
	return a.message(inv, "Cleared %d completed %s", len(removed), plural(len(removed), "task", "tasks"))
}

// errListEmpty aborts a pop transaction so an empty list is never rewritten.
var errListEmpty = errors.New("list is empty")

// runPop removes the highest entry and prints it.
func (a *App) runPop(inv *invocation) error {
	var popped task.Entry
	err := openStore(inv).Mutate(func(l *task.List) error {
		var ok bool
		if popped, ok = l.Pop(); !ok {
			return errListEmpty
		}
		return nil
	})
	if errors.Is(err, errListEmpty) {
		return a.message(inv, "List is empty.")
	}
	if err != nil {
		return err
	}

	recordArchive(inv, archive.ReasonPopped, popped)
	if inv.fc.Quiet {
		fmt.Fprintln(a.Stdout, popped.ID)
		return nil
	}
	return inv.fmtr.FormatEntry(a.Stdout, popped)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

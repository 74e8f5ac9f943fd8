package cli

import (
	"fmt"

	"github.com/leeovery/todol/internal/task"
)

// runList prints the occupied entries, lowest id first. Quiet mode prints
// only their ids.
func (a *App) runList(inv *invocation) error {
	var entries []task.Entry
	err := openStore(inv).Query(func(l *task.List) error {
		entries = l.Occupied()
		return nil
	})
	if err != nil {
		return err
	}

	if inv.fc.Quiet {
		for _, e := range entries {
			fmt.Fprintln(a.Stdout, e.ID)
		}
		return nil
	}
	return inv.fmtr.FormatEntryList(a.Stdout, entries)
}

// runGet prints a single entry.
func (a *App) runGet(inv *invocation) error {
	id, err := requireID(inv, "get")
	if err != nil {
		return err
	}

	var e task.Entry
	err = openStore(inv).Query(func(l *task.List) error {
		e, err = l.Get(id)
		return err
	})
	if err != nil {
		return err
	}
	return inv.fmtr.FormatEntry(a.Stdout, e)
}

package cli

import (
	"errors"
	"strings"

	"github.com/leeovery/todol/internal/task"
)

// runToggle flips the completed flag of an entry and prints its new state.
func (a *App) runToggle(inv *invocation) error {
	id, err := requireID(inv, "toggle")
	if err != nil {
		return err
	}

	var e task.Entry
	err = openStore(inv).Mutate(func(l *task.List) error {
		e, err = l.ToggleComplete(id)
		return err
	})
	if err != nil {
		return err
	}
	return a.printEntry(inv, e)
}

// runChange replaces the text of an entry.
func (a *App) runChange(inv *invocation) error {
	id, err := requireID(inv, "change")
	if err != nil {
		return err
	}
	text := strings.Join(inv.args[1:], " ")
	if strings.TrimSpace(text) == "" {
		return errors.New("new text is required. Usage: todol <listfile> change <id> <text>")
	}

	var e task.Entry
	err = openStore(inv).Mutate(func(l *task.List) error {
		e, err = l.Change(id, text)
		return err
	})
	if err != nil {
		return err
	}
	return a.printEntry(inv, e)
}

func (a *App) printEntry(inv *invocation, e task.Entry) error {
	if inv.fc.Quiet {
		return nil
	}
	return inv.fmtr.FormatEntry(a.Stdout, e)
}

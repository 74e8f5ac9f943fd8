package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/leeovery/todol/internal/task"
)

// runCreate replaces the list file with a cleared list.
func (a *App) runCreate(inv *invocation) error {
	if err := openStore(inv).Create(nil); err != nil {
		return err
	}
	return a.message(inv, "Created %s", inv.listPath)
}

// prepareAdd collects the task text before the lock is taken: from the
// action arguments, or else one line of stdin after a prompt.
func (a *App) prepareAdd(inv *invocation) error {
	if len(inv.args) > 0 {
		inv.text = strings.Join(inv.args, " ")
	} else {
		if !inv.fc.Quiet {
			fmt.Fprintln(a.Stdout, "Enter new task:")
		}
		line, err := readLine(a.stdin())
		if err != nil {
			return err
		}
		inv.text = line
	}
	if strings.TrimSpace(inv.text) == "" {
		return errors.New("task text cannot be empty")
	}
	return nil
}

// runAdd stores inv.text in the first free slot and reports its id.
func (a *App) runAdd(inv *invocation) error {
	var added task.Entry
	err := openStore(inv).Mutate(func(l *task.List) error {
		id, err := l.Add(inv.text)
		if err != nil {
			return err
		}
		added, err = l.Get(id)
		return err
	})
	if err != nil {
		return err
	}

	if inv.fc.Quiet {
		fmt.Fprintln(a.Stdout, added.ID)
		return nil
	}
	return inv.fmtr.FormatAdded(a.Stdout, added)
}

func (a *App) stdin() io.Reader {
	if a.Stdin == nil {
		return os.Stdin
	}
	return a.Stdin
}

// readLine reads one line from r without its line ending. A final line with
// no newline is accepted; no input at all is an error.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading task text: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", errors.New("no task text given on stdin")
	}
	return strings.TrimRight(line, "\r\n"), nil
}

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leeovery/todol/internal/archive"
	"github.com/leeovery/todol/internal/storage"
	"github.com/leeovery/todol/internal/task"
)

// command describes one action. The first name is canonical; aliases
// include the single-letter codes.
type command struct {
	name    string
	aliases []string
	// lock selects the lock mode for this invocation.
	lock func(inv *invocation) lockMode
	// prepare runs before the lock is taken, e.g. to read stdin.
	prepare func(a *App, inv *invocation) error
	run     func(a *App, inv *invocation) error
	// exit replaces run for commands that own their exit code and locking.
	exit func(a *App, inv *invocation) (int, error)
}

func exclusive(*invocation) lockMode { return lockExclusive }
func shared(*invocation) lockMode    { return lockShared }

// commands is the action table, in help order.
var commands = []command{
	{name: "create", aliases: []string{"c"}, lock: exclusive, run: (*App).runCreate},
	{name: "add", aliases: []string{"a"}, lock: exclusive, prepare: (*App).prepareAdd, run: (*App).runAdd},
	{name: "remove", aliases: []string{"r", "d", "del"}, lock: exclusive, run: (*App).runRemove},
	{name: "list", aliases: []string{"l"}, lock: shared, run: (*App).runList},
	{name: "get", aliases: []string{"g"}, lock: shared, run: (*App).runGet},
	{name: "toggle", aliases: []string{"t", "done"}, lock: exclusive, run: (*App).runToggle},
	{name: "change", aliases: []string{"ch"}, lock: exclusive, run: (*App).runChange},
	{name: "clear", aliases: []string{"x"}, lock: exclusive, run: (*App).runClear},
	{name: "pop", aliases: []string{"p"}, lock: exclusive, run: (*App).runPop},
	{name: "import", aliases: []string{"i"}, lock: importLock, run: (*App).runImport},
	{name: "history", lock: shared, run: (*App).runHistory},
	{name: "doctor", exit: (*App).runDoctor},
}

// lookupCommand resolves an action code or name.
func lookupCommand(action string) (command, bool) {
	for _, cmd := range commands {
		if cmd.name == action {
			return cmd, true
		}
		for _, alias := range cmd.aliases {
			if alias == action {
				return cmd, true
			}
		}
	}
	return command{}, false
}

func openStore(inv *invocation) *storage.Store {
	return storage.NewStore(inv.listPath, storeOpts(inv.fc)...)
}

// parseID parses a slot id argument. Anything that is not an integer is
// reported as an invalid id.
func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", task.ErrInvalidID, s)
	}
	return id, nil
}

// requireID parses the first action argument as an id.
func requireID(inv *invocation, verb string) (int, error) {
	if len(inv.args) == 0 {
		return 0, fmt.Errorf("Need an ID to %s. Usage: todol <listfile> %s <id>", verb, verb)
	}
	return parseID(inv.args[0])
}

// recordArchive stores entries that left the list in the history archive
// when archiving is enabled. The list is already saved, so a failure here
// is a warning and does not change the exit code.
func recordArchive(inv *invocation, reason archive.Reason, entries ...task.Entry) {
	if !inv.cfg.Archive || len(entries) == 0 {
		return
	}
	arc, err := archive.Open(inv.cfg.ArchivePath)
	if err != nil {
		inv.warn.Warn("failed to open archive", "path", inv.cfg.ArchivePath, "err", err)
		return
	}
	defer arc.Close()

	if err := arc.Add(reason, entries...); err != nil {
		inv.warn.Warn("failed to archive entries", "reason", reason, "err", err)
		return
	}
	inv.fc.Logger.Log(fmt.Sprintf("archive: recorded %d %s entries in %s", len(entries), reason, inv.cfg.ArchivePath))
}

func (a *App) message(inv *invocation, format string, args ...interface{}) error {
	if inv.fc.Quiet {
		return nil
	}
	return inv.fmtr.FormatMessage(a.Stdout, fmt.Sprintf(format, args...))
}

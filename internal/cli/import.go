package cli

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/leeovery/todol/internal/migrate"
	"github.com/leeovery/todol/internal/migrate/markdown"
	"github.com/leeovery/todol/internal/migrate/text"
	"github.com/leeovery/todol/internal/task"
)

// providerNames lists all registered provider names. Kept in sync with the
// switch in newImportProvider.
var providerNames = []string{"text", "markdown"}

// newImportProvider resolves a provider by name for the file at path. An
// empty name picks one from the file extension.
// Unrecognised names yield *migrate.UnknownProviderError.
func newImportProvider(name, path string) (migrate.Provider, error) {
	if name == "" {
		name = "text"
		switch strings.ToLower(filepath.Ext(path)) {
		case ".md", ".markdown":
			name = "markdown"
		}
	}
	switch name {
	case "text":
		return text.NewProvider(path), nil
	case "markdown":
		return markdown.NewProvider(path), nil
	default:
		return nil, &migrate.UnknownProviderError{
			Name:      name,
			Available: availableProviders(),
		}
	}
}

// availableProviders returns a sorted list of registered provider names.
func availableProviders() []string {
	sorted := make([]string, len(providerNames))
	copy(sorted, providerNames)
	sort.Strings(sorted)
	return sorted
}

// importFlags holds parsed import action flags.
type importFlags struct {
	file        string
	from        string
	dryRun      bool
	pendingOnly bool
}

// parseImportArgs extracts flag values and the source file from import args.
func parseImportArgs(args []string) (importFlags, error) {
	var flags importFlags
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--from":
			i++
			if i >= len(args) {
				return flags, fmt.Errorf("--from requires a value")
			}
			flags.from = args[i]
		case strings.HasPrefix(args[i], "--from="):
			flags.from = strings.TrimPrefix(args[i], "--from=")
		case args[i] == "--dry-run":
			flags.dryRun = true
		case args[i] == "--pending-only":
			flags.pendingOnly = true
		case flags.file == "":
			flags.file = args[i]
		default:
			return flags, fmt.Errorf("unexpected argument '%s'", args[i])
		}
	}
	if flags.file == "" {
		return flags, fmt.Errorf("a source file is required. Usage: todol <listfile> import [--from <provider>] [--dry-run] [--pending-only] <file>")
	}
	return flags, nil
}

// importLock takes a shared lock for dry runs, which never save.
func importLock(inv *invocation) lockMode {
	if flags, err := parseImportArgs(inv.args); err == nil && flags.dryRun {
		return lockShared
	}
	return lockExclusive
}

// runImport adds every task from the source file in one mutation. If the
// list fills up, nothing is saved and the partial results are still shown.
// A dry run performs the same additions on a list that is never saved.
func (a *App) runImport(inv *invocation) error {
	flags, err := parseImportArgs(inv.args)
	if err != nil {
		return err
	}
	source := flags.file
	if !filepath.IsAbs(source) && a.Dir != "" {
		source = filepath.Join(a.Dir, source)
	}
	provider, err := newImportProvider(flags.from, source)
	if err != nil {
		return err
	}

	var results []migrate.Result
	run := func(l *task.List) error {
		engine := migrate.NewEngine(migrate.NewListTaskCreator(l), migrate.Options{PendingOnly: flags.pendingOnly})
		var runErr error
		results, runErr = engine.Run(provider)
		return runErr
	}

	store := openStore(inv)
	if flags.dryRun {
		err = store.Query(run)
	} else {
		err = store.Mutate(run)
	}

	if results != nil || err == nil {
		migrate.Present(a.Stdout, provider.Name(), flags.dryRun, results)
	}
	if err != nil && results != nil {
		return fmt.Errorf("import aborted, nothing saved: %w", err)
	}
	return err
}

// Package cli implements the todol command-line interface: argument and
// action parsing, output formatting, and the advisory lock taken around
// each invocation.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/leeovery/todol/internal/config"
)

// errUsage is returned when no list file or action was given; usage has
// already been printed.
var errUsage = errors.New("usage")

// App is the todol CLI application.
type App struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Dir is the working directory; relative list paths resolve against it.
	Dir string
	// LookupEnv reads environment variables; defaults to os.LookupEnv.
	LookupEnv func(key string) (string, bool)
}

// globalFlags holds parsed global flags.
type globalFlags struct {
	quiet   bool
	verbose bool
	toon    bool
	pretty  bool
	json    bool
	color   string
	archive bool
	noLock  bool
}

// invocation is everything a command handler needs for one run.
type invocation struct {
	listPath string
	args     []string
	cfg      *config.Config
	fc       FormatConfig
	fmtr     Formatter
	warn     *log.Logger
	// text is task text collected before the lock is taken.
	text string
}

// Run parses args (args[0] is the program name), dispatches the action and
// returns the process exit code: 0 on success, 1 on any failure.
func (a *App) Run(args []string) int {
	code, err := a.run(args)
	if err != nil && !errors.Is(err, errUsage) {
		fmt.Fprintf(a.Stderr, "Error: %s\n", err)
	}
	return code
}

func (a *App) run(args []string) (int, error) {
	flags, rest, err := parseGlobalFlags(args[1:])
	if err != nil {
		return 1, err
	}

	if len(rest) == 0 || isHelp(rest[0]) {
		printUsage(a.Stdout)
		return 0, nil
	}
	if len(rest) < 2 {
		printUsage(a.Stderr)
		return 1, errUsage
	}
	if isHelp(rest[1]) {
		printUsage(a.Stdout)
		return 0, nil
	}

	inv, err := a.newInvocation(flags, rest[0], rest[2:])
	if err != nil {
		return 1, err
	}

	action := rest[1]
	cmd, ok := lookupCommand(action)
	if !ok {
		return 1, fmt.Errorf("Invalid action '%s'. Run 'todol help' for usage.", action)
	}
	inv.fc.Logger.Log(fmt.Sprintf("action: %s on %s", cmd.name, inv.listPath))

	if cmd.exit != nil {
		return cmd.exit(a, inv)
	}
	if cmd.prepare != nil {
		if err := cmd.prepare(a, inv); err != nil {
			return 1, err
		}
	}

	mode := cmd.lock(inv)
	if !inv.cfg.Lock {
		mode = lockNone
	}
	if err := withLock(inv.fc, inv.listPath, mode, inv.cfg.LockTimeout.Duration, func() error {
		return cmd.run(a, inv)
	}); err != nil {
		return 1, err
	}
	return 0, nil
}

// newInvocation loads configuration, applies flags over it and resolves the
// output format.
func (a *App) newInvocation(flags globalFlags, listFile string, args []string) (*invocation, error) {
	lookup := a.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	cfg, err := config.Load(config.Sources{WorkDir: a.Dir, LookupEnv: lookup})
	if err != nil {
		return nil, err
	}
	applyFlags(cfg, flags)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	format, err := ResolveFormat(flags.toon, flags.pretty, flags.json, cfg.Format, DetectTTY(a.Stdout))
	if err != nil {
		return nil, err
	}

	fc := FormatConfig{
		Format:  format,
		Quiet:   flags.quiet,
		Verbose: cfg.Verbose,
		Color:   cfg.Color,
		Width:   TerminalWidth(a.Stdout),
	}
	if fc.Verbose {
		fc.Logger = NewVerboseLogger(a.Stderr)
	}

	listPath := listFile
	if !filepath.IsAbs(listPath) && a.Dir != "" {
		listPath = filepath.Join(a.Dir, listPath)
	}
	if cfg.ArchivePath == "" {
		cfg.ArchivePath = listPath + ".archive.db"
	} else if !filepath.IsAbs(cfg.ArchivePath) && a.Dir != "" {
		cfg.ArchivePath = filepath.Join(a.Dir, cfg.ArchivePath)
	}
	fc.Logger.Log(fmt.Sprintf("format: %s", format))

	return &invocation{
		listPath: listPath,
		args:     args,
		cfg:      cfg,
		fc:       fc,
		fmtr:     NewFormatter(fc, a.Stdout),
		warn:     newWarnLogger(a.Stderr),
	}, nil
}

// applyFlags layers CLI flags over the loaded configuration.
func applyFlags(cfg *config.Config, flags globalFlags) {
	if flags.verbose {
		cfg.Verbose = true
	}
	if flags.color != "" {
		cfg.Color = flags.color
	}
	if flags.archive {
		cfg.Archive = true
	}
	if flags.noLock {
		cfg.Lock = false
	}
}

// parseGlobalFlags consumes flags up to the list file and returns the
// remaining arguments. Everything after the list file belongs to the action,
// so task text may start with a dash.
func parseGlobalFlags(args []string) (globalFlags, []string, error) {
	var flags globalFlags
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--quiet" || arg == "-q":
			flags.quiet = true
		case arg == "--verbose" || arg == "-v":
			flags.verbose = true
		case arg == "--toon":
			flags.toon = true
		case arg == "--pretty":
			flags.pretty = true
		case arg == "--json":
			flags.json = true
		case arg == "--archive":
			flags.archive = true
		case arg == "--no-lock":
			flags.noLock = true
		case arg == "--color":
			i++
			if i >= len(args) {
				return flags, nil, fmt.Errorf("--color requires a value: auto, always, or never")
			}
			flags.color = args[i]
		case strings.HasPrefix(arg, "--color="):
			flags.color = strings.TrimPrefix(arg, "--color=")
		case arg == "--":
			return flags, args[i+1:], nil
		case isHelp(arg):
			return flags, args[i:], nil
		case strings.HasPrefix(arg, "-") && arg != "-":
			return flags, nil, fmt.Errorf("unknown flag '%s'. Run 'todol help' for usage.", arg)
		default:
			return flags, args[i:], nil
		}
	}
	return flags, nil, nil
}

func isHelp(arg string) bool {
	return arg == "help" || arg == "--help" || arg == "-h"
}

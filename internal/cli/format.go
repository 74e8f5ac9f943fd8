package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"

	"github.com/leeovery/todol/internal/archive"
	"github.com/leeovery/todol/internal/config"
	"github.com/leeovery/todol/internal/task"
)

// OutputFormat represents the output format for CLI responses.
type OutputFormat string

const (
	// FormatToon is the TOON output format (default for non-TTY/agents).
	FormatToon OutputFormat = "toon"
	// FormatPretty is the human-readable output format (default for TTY).
	FormatPretty OutputFormat = "pretty"
	// FormatJSON is the JSON output format.
	FormatJSON OutputFormat = "json"
)

// FormatConfig holds the resolved output configuration passed to command handlers.
type FormatConfig struct {
	Format  OutputFormat
	Quiet   bool
	Verbose bool
	// Color is one of the config color modes.
	Color string
	// Width is the terminal width in columns, 0 when unknown.
	Width int
	// Logger receives verbose lines; nil when verbose is off.
	Logger *VerboseLogger
}

// Formatter renders command output. Each implementation writes complete
// lines to w.
type Formatter interface {
	// FormatEntryList renders the occupied entries (list).
	FormatEntryList(w io.Writer, entries []task.Entry) error
	// FormatEntry renders a single entry (get, toggle, change, pop).
	FormatEntry(w io.Writer, e task.Entry) error
	// FormatAdded renders the entry created by add.
	FormatAdded(w io.Writer, e task.Entry) error
	// FormatHistory renders archived entries, newest first.
	FormatHistory(w io.Writer, records []archive.Record) error
	// FormatMessage renders a simple confirmation message.
	FormatMessage(w io.Writer, msg string) error
}

// DetectTTY reports whether w is a terminal. Anything that is not an
// *os.File is treated as a pipe.
func DetectTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// TerminalWidth returns the column count of the terminal behind w, or 0
// when w is not a terminal or the size cannot be read.
func TerminalWidth(w io.Writer) int {
	if !DetectTTY(w) {
		return 0
	}
	width, _, err := term.GetSize(w.(*os.File).Fd())
	if err != nil || width <= 0 {
		return 0
	}
	return width
}

// ResolveFormat determines the output format from flags, the configured
// default and TTY status. More than one flag is an error. Without flags the
// configured format wins, then TTY -> Pretty, non-TTY -> Toon.
func ResolveFormat(toonFlag, prettyFlag, jsonFlag bool, configured string, isTTY bool) (OutputFormat, error) {
	flagCount := 0
	for _, set := range []bool{toonFlag, prettyFlag, jsonFlag} {
		if set {
			flagCount++
		}
	}
	if flagCount > 1 {
		return "", fmt.Errorf("only one format flag allowed: --toon, --pretty, or --json")
	}

	switch {
	case toonFlag:
		return FormatToon, nil
	case prettyFlag:
		return FormatPretty, nil
	case jsonFlag:
		return FormatJSON, nil
	}

	switch configured {
	case config.FormatToon:
		return FormatToon, nil
	case config.FormatPretty:
		return FormatPretty, nil
	case config.FormatJSON:
		return FormatJSON, nil
	}

	if isTTY {
		return FormatPretty, nil
	}
	return FormatToon, nil
}

// NewFormatter returns the Formatter for the configured format. This is the
// single point where a format is resolved to a concrete formatter.
func NewFormatter(fc FormatConfig, w io.Writer) Formatter {
	switch fc.Format {
	case FormatJSON:
		return &JSONFormatter{}
	case FormatPretty:
		return NewPrettyFormatter(w, fc.Width, fc.Color)
	default:
		return &ToonFormatter{}
	}
}

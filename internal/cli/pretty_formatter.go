package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/leeovery/todol/internal/archive"
	"github.com/leeovery/todol/internal/config"
	"github.com/leeovery/todol/internal/task"
)

const (
	// defaultWidth is used when the terminal width is unknown.
	defaultWidth = 69
	// minTextWidth keeps rows readable on very narrow terminals.
	minTextWidth = 10
	// rowPrefixWidth is the width of "%2d : [ ] ".
	rowPrefixWidth = 9
)

// PrettyFormatter implements the Formatter interface for human-readable
// terminal output. Lists are framed by a "#...#" rule spanning the terminal,
// text is truncated to fit, and completed entries are dimmed and struck
// through when colour is enabled.
type PrettyFormatter struct {
	width int
	rule  lipgloss.Style
	done  lipgloss.Style
	faint lipgloss.Style
}

// NewPrettyFormatter creates a PrettyFormatter rendering for w. width 0
// means unknown. color is a config color mode; auto detects from w.
func NewPrettyFormatter(w io.Writer, width int, color string) *PrettyFormatter {
	r := lipgloss.NewRenderer(w)
	switch color {
	case config.ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	switch {
	case width <= 0:
		width = defaultWidth
	case width < rowPrefixWidth+minTextWidth:
		width = rowPrefixWidth + minTextWidth
	}
	return &PrettyFormatter{
		width: width,
		rule:  r.NewStyle().Foreground(lipgloss.Color("12")),
		done:  r.NewStyle().Faint(true).Strikethrough(true),
		faint: r.NewStyle().Faint(true),
	}
}

// FormatEntryList renders the entries between two rules. An empty list
// renders "No tasks found." with no rules.
func (f *PrettyFormatter) FormatEntryList(w io.Writer, entries []task.Entry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No tasks found.")
		return err
	}

	rule := f.rule.Render(f.ruleLine())
	if _, err := fmt.Fprintln(w, rule); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, f.row(e)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, rule)
	return err
}

// FormatEntry renders a single entry row.
func (f *PrettyFormatter) FormatEntry(w io.Writer, e task.Entry) error {
	_, err := fmt.Fprintln(w, f.row(e))
	return err
}

// FormatAdded renders "New ID: <id>".
func (f *PrettyFormatter) FormatAdded(w io.Writer, e task.Entry) error {
	_, err := fmt.Fprintf(w, "New ID: %d\n", e.ID)
	return err
}

// FormatHistory renders archived entries as aligned columns, newest first.
func (f *PrettyFormatter) FormatHistory(w io.Writer, records []archive.Record) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No history.")
		return err
	}

	seqW := len("SEQ")
	for _, r := range records {
		if n := len(fmt.Sprint(r.Seq)); n > seqW {
			seqW = n
		}
	}
	const reasonW, timeW = len("removed"), len("2006-01-02T15:04:05Z")
	header := fmt.Sprintf("%-*s  %-*s  %-*s  %s", seqW, "SEQ", reasonW, "REASON", timeW, "ARCHIVED", "TEXT")
	if _, err := fmt.Fprintln(w, f.faint.Render(header)); err != nil {
		return err
	}

	textW := f.width - seqW - reasonW - timeW - 6
	for _, r := range records {
		text := truncateText(r.Text, textW)
		if r.Completed {
			text = f.done.Render(text)
		}
		if _, err := fmt.Fprintf(w, "%-*d  %-*s  %-*s  %s\n", seqW, r.Seq, reasonW, r.Reason, timeW, formatTime(r), text); err != nil {
			return err
		}
	}
	return nil
}

// FormatMessage renders a simple message as plain text.
func (f *PrettyFormatter) FormatMessage(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, msg)
	return err
}

func (f *PrettyFormatter) ruleLine() string {
	return "#" + strings.Repeat(" ", f.width-2) + "#"
}

func (f *PrettyFormatter) row(e task.Entry) string {
	box, text := "[ ]", truncateText(e.Text, f.width-rowPrefixWidth)
	if e.Completed {
		box = "[x]"
		text = f.done.Render(text)
	}
	return fmt.Sprintf("%2d : %s %s", e.ID, box, text)
}

// truncateText shortens text to maxWidth runes, ending in "..." when cut.
func truncateText(text string, maxWidth int) string {
	if maxWidth < minTextWidth {
		maxWidth = minTextWidth
	}
	if utf8.RuneCountInString(text) <= maxWidth {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxWidth-3]) + "..."
}

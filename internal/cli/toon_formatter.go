package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	toon "github.com/toon-format/toon-go"

	"github.com/leeovery/todol/internal/archive"
	"github.com/leeovery/todol/internal/task"
)

// ToonFormatter implements the Formatter interface using TOON format.
// TOON (Token-Oriented Object Notation) is optimized for AI agent consumption.
type ToonFormatter struct{}

const (
	entrySchema   = "{id,text,completed}"
	historySchema = "{seq,slot,text,completed,reason,archived_at}"
)

// FormatEntryList renders the entries in TOON tabular format:
// tasks[N]{id,text,completed}: followed by indented data rows.
func (f *ToonFormatter) FormatEntryList(w io.Writer, entries []task.Entry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintf(w, "tasks[0]%s:\n", entrySchema)
		return err
	}

	objects := make([]toon.Object, len(entries))
	for i, e := range entries {
		objects[i] = toon.NewObject(
			toon.Field{Key: "id", Value: e.ID},
			toon.Field{Key: "text", Value: e.Text},
			toon.Field{Key: "completed", Value: e.Completed},
		)
	}
	return writeToon(w, toon.NewObject(toon.Field{Key: "tasks", Value: objects}))
}

// FormatEntry renders a single entry as a one-row task section.
func (f *ToonFormatter) FormatEntry(w io.Writer, e task.Entry) error {
	_, err := fmt.Fprintf(w, "task%s:\n  %s\n", entrySchema, toonEntryRow(e))
	return err
}

// FormatAdded renders the new entry the same way as FormatEntry.
func (f *ToonFormatter) FormatAdded(w io.Writer, e task.Entry) error {
	return f.FormatEntry(w, e)
}

// FormatHistory renders archived entries as a history[N] table.
func (f *ToonFormatter) FormatHistory(w io.Writer, records []archive.Record) error {
	if len(records) == 0 {
		_, err := fmt.Fprintf(w, "history[0]%s:\n", historySchema)
		return err
	}

	objects := make([]toon.Object, len(records))
	for i, r := range records {
		objects[i] = toon.NewObject(
			toon.Field{Key: "seq", Value: r.Seq},
			toon.Field{Key: "slot", Value: r.Slot},
			toon.Field{Key: "text", Value: r.Text},
			toon.Field{Key: "completed", Value: r.Completed},
			toon.Field{Key: "reason", Value: string(r.Reason)},
			toon.Field{Key: "archived_at", Value: formatTime(r)},
		)
	}
	return writeToon(w, toon.NewObject(toon.Field{Key: "history", Value: objects}))
}

// FormatMessage renders a simple message as plain text.
func (f *ToonFormatter) FormatMessage(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, msg)
	return err
}

func writeToon(w io.Writer, doc toon.Object) error {
	result, err := toon.MarshalString(doc)
	if err != nil {
		return fmt.Errorf("toon marshal error: %w", err)
	}
	_, err = fmt.Fprintln(w, result)
	return err
}

func toonEntryRow(e task.Entry) string {
	return strings.Join([]string{
		strconv.Itoa(e.ID),
		toonEscapeValue(e.Text),
		strconv.FormatBool(e.Completed),
	}, ",")
}

// toonEscapeValue uses the toon-go library to escape a string value for use
// in TOON array context (comma-delimited).
func toonEscapeValue(s string) string {
	// Marshal a single-row tabular array and take the value from its row.
	doc := toon.NewObject(
		toon.Field{Key: "a", Value: []toon.Object{
			toon.NewObject(toon.Field{Key: "v", Value: s}),
		}},
	)
	result, err := toon.MarshalString(doc)
	if err != nil {
		return s
	}
	lines := strings.SplitN(result, "\n", 2)
	if len(lines) == 2 {
		return strings.TrimSpace(lines[1])
	}
	return s
}

func formatTime(r archive.Record) string {
	return r.ArchivedAt.UTC().Format("2006-01-02T15:04:05Z")
}

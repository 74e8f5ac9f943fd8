package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/leeovery/todol/internal/archive"
	"github.com/leeovery/todol/internal/task"
)

// JSONFormatter implements the Formatter interface using JSON output.
// All keys use snake_case. Output is 2-space indented via json.MarshalIndent.
type JSONFormatter struct{}

// jsonEntry is the JSON representation of an occupied entry.
type jsonEntry struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// jsonRecord is the JSON representation of an archived entry.
type jsonRecord struct {
	Seq        int64  `json:"seq"`
	Slot       int    `json:"slot"`
	Text       string `json:"text"`
	Completed  bool   `json:"completed"`
	Reason     string `json:"reason"`
	ArchivedAt string `json:"archived_at"`
}

// jsonMessage is the JSON representation of a simple message.
type jsonMessage struct {
	Message string `json:"message"`
}

// FormatEntryList renders entries as a JSON array; an empty list is [].
func (f *JSONFormatter) FormatEntryList(w io.Writer, entries []task.Entry) error {
	rows := make([]jsonEntry, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, toJSONEntry(e))
	}
	return writeJSON(w, rows)
}

// FormatEntry renders a single entry as a JSON object.
func (f *JSONFormatter) FormatEntry(w io.Writer, e task.Entry) error {
	return writeJSON(w, toJSONEntry(e))
}

// FormatAdded renders the new entry as a JSON object.
func (f *JSONFormatter) FormatAdded(w io.Writer, e task.Entry) error {
	return writeJSON(w, toJSONEntry(e))
}

// FormatHistory renders archived entries as a JSON array.
func (f *JSONFormatter) FormatHistory(w io.Writer, records []archive.Record) error {
	rows := make([]jsonRecord, 0, len(records))
	for _, r := range records {
		rows = append(rows, jsonRecord{
			Seq:        r.Seq,
			Slot:       r.Slot,
			Text:       r.Text,
			Completed:  r.Completed,
			Reason:     string(r.Reason),
			ArchivedAt: formatTime(r),
		})
	}
	return writeJSON(w, rows)
}

// FormatMessage renders a message as {"message": "..."}.
func (f *JSONFormatter) FormatMessage(w io.Writer, msg string) error {
	return writeJSON(w, jsonMessage{Message: msg})
}

func toJSONEntry(e task.Entry) jsonEntry {
	return jsonEntry{ID: e.ID, Text: e.Text, Completed: e.Completed}
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal error: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

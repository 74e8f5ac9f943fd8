package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/leeovery/todol/internal/archive"
	"github.com/leeovery/todol/internal/config"
	"github.com/leeovery/todol/internal/task"
)

var sampleEntries = []task.Entry{
	{ID: 0, Occupied: true, Text: "Buy milk"},
	{ID: 1, Occupied: true, Text: "Walk dog", Completed: true},
}

var sampleRecords = []archive.Record{
	{Seq: 2, Slot: 1, Text: "Walk dog", Completed: true, Reason: archive.ReasonCleared, ArchivedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)},
	{Seq: 1, Slot: 0, Text: "Old", Reason: archive.ReasonRemoved, ArchivedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
}

func TestPrettyFormatter(t *testing.T) {
	t.Run("it frames the list with rules as wide as the terminal", func(t *testing.T) {
		var buf bytes.Buffer
		f := NewPrettyFormatter(&buf, 30, config.ColorNever)
		if err := f.FormatEntryList(&buf, sampleEntries); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		rule := "#" + strings.Repeat(" ", 28) + "#"
		want := rule + "\n" +
			" 0 : [ ] Buy milk\n" +
			" 1 : [x] Walk dog\n" +
			rule + "\n"
		if buf.String() != want {
			t.Errorf("output =\n%q\nwant\n%q", buf.String(), want)
		}
	})

	t.Run("it reports an empty list without rules", func(t *testing.T) {
		var buf bytes.Buffer
		f := NewPrettyFormatter(&buf, 0, config.ColorNever)
		if err := f.FormatEntryList(&buf, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if buf.String() != "No tasks found.\n" {
			t.Errorf("output = %q", buf.String())
		}
	})

	t.Run("it uses the default width when the terminal width is unknown", func(t *testing.T) {
		var buf bytes.Buffer
		f := NewPrettyFormatter(&buf, 0, config.ColorNever)
		if err := f.FormatEntryList(&buf, sampleEntries[:1]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		first := strings.SplitN(buf.String(), "\n", 2)[0]
		if len(first) != defaultWidth {
			t.Errorf("rule width = %d, want %d", len(first), defaultWidth)
		}
	})

	t.Run("it truncates text that does not fit", func(t *testing.T) {
		var buf bytes.Buffer
		f := NewPrettyFormatter(&buf, 20, config.ColorNever)
		e := task.Entry{ID: 3, Occupied: true, Text: "a fairly long task description"}
		if err := f.FormatEntry(&buf, e); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if buf.String() != " 3 : [ ] a fairly...\n" {
			t.Errorf("output = %q", buf.String())
		}
	})

	t.Run("it styles completed entries when colour is forced", func(t *testing.T) {
		var buf bytes.Buffer
		f := NewPrettyFormatter(&buf, 40, config.ColorAlways)
		if err := f.FormatEntry(&buf, sampleEntries[1]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "\x1b[") {
			t.Errorf("output = %q, want ANSI styling", buf.String())
		}
		if !strings.Contains(ansi.Strip(buf.String()), "Walk dog") {
			t.Errorf("output = %q, want entry text", buf.String())
		}
	})

	t.Run("it renders history as columns", func(t *testing.T) {
		var buf bytes.Buffer
		f := NewPrettyFormatter(&buf, 0, config.ColorNever)
		if err := f.FormatHistory(&buf, sampleRecords); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		if len(lines) != 3 {
			t.Fatalf("got %d lines, want header plus 2 rows:\n%s", len(lines), buf.String())
		}
		if !strings.HasPrefix(lines[0], "SEQ") {
			t.Errorf("header = %q", lines[0])
		}
		for i, want := range []string{"cleared", "removed"} {
			if !strings.Contains(lines[i+1], want) {
				t.Errorf("row %d = %q, want %q", i, lines[i+1], want)
			}
		}
	})
}

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"it keeps text that fits", "short", 10, "short"},
		{"it cuts long text with an ellipsis", "abcdefghijklmnop", 10, "abcdefg..."},
		{"it counts runes not bytes", "ééééééééééé", 10, "ééééééé..."},
		{"it never goes below the minimum width", "abcdefghijklmnop", 2, "abcdefg..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateText(tt.text, tt.width); got != tt.want {
				t.Errorf("truncateText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestJSONFormatter(t *testing.T) {
	f := &JSONFormatter{}

	t.Run("it renders an empty list as an empty array", func(t *testing.T) {
		var buf bytes.Buffer
		if err := f.FormatEntryList(&buf, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.TrimSpace(buf.String()) != "[]" {
			t.Errorf("output = %q", buf.String())
		}
	})

	t.Run("it renders a single entry", func(t *testing.T) {
		var buf bytes.Buffer
		if err := f.FormatEntry(&buf, sampleEntries[1]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "{\n  \"id\": 1,\n  \"text\": \"Walk dog\",\n  \"completed\": true\n}"
		if strings.TrimSpace(buf.String()) != want {
			t.Errorf("output = %q, want %q", buf.String(), want)
		}
	})

	t.Run("it wraps messages in an object", func(t *testing.T) {
		var buf bytes.Buffer
		if err := f.FormatMessage(&buf, "Created todo.db"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), `"message": "Created todo.db"`) {
			t.Errorf("output = %q", buf.String())
		}
	})

	t.Run("it renders history with RFC 3339 times", func(t *testing.T) {
		var buf bytes.Buffer
		if err := f.FormatHistory(&buf, sampleRecords[:1]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{`"seq": 2`, `"reason": "cleared"`, `"archived_at": "2026-01-02T03:04:05Z"`} {
			if !strings.Contains(buf.String(), want) {
				t.Errorf("output missing %s:\n%s", want, buf.String())
			}
		}
	})
}

func TestToonFormatter(t *testing.T) {
	f := &ToonFormatter{}

	t.Run("it renders an empty list as a zero-length table", func(t *testing.T) {
		var buf bytes.Buffer
		if err := f.FormatEntryList(&buf, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if buf.String() != "tasks[0]{id,text,completed}:\n" {
			t.Errorf("output = %q", buf.String())
		}
	})

	t.Run("it renders entries as table rows", func(t *testing.T) {
		var buf bytes.Buffer
		if err := f.FormatEntryList(&buf, sampleEntries); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out := buf.String()
		if !strings.HasPrefix(out, "tasks[2]{id,text,completed}:") {
			t.Errorf("header wrong:\n%s", out)
		}
		for _, want := range []string{"0,Buy milk,false", "1,Walk dog,true"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("it quotes text containing the delimiter", func(t *testing.T) {
		var buf bytes.Buffer
		e := task.Entry{ID: 4, Occupied: true, Text: "eggs, bread"}
		if err := f.FormatEntry(&buf, e); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), `4,"eggs, bread",false`) {
			t.Errorf("output = %q", buf.String())
		}
	})

	t.Run("it renders history records", func(t *testing.T) {
		var buf bytes.Buffer
		if err := f.FormatHistory(&buf, sampleRecords); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out := buf.String()
		if !strings.HasPrefix(out, "history[2]{seq,slot,text,completed,reason,archived_at}:") {
			t.Errorf("header wrong:\n%s", out)
		}
		if !strings.Contains(out, "2026-01-02T03:04:05Z") {
			t.Errorf("output missing timestamp:\n%s", out)
		}
	})
}

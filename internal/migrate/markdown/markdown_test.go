package markdown

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leeovery/todol/internal/migrate"
)

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "TODO.md")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write source: %v", err)
	}
	return path
}

func TestProvider(t *testing.T) {
	t.Run("it imports only checklist items", func(t *testing.T) {
		src := "# Groceries\n\nSome prose.\n\n" +
			"- [ ] milk\n" +
			"- [x] bread\n" +
			"  * [X] nested eggs\n" +
			"+ [ ]   padded  \n" +
			"- plain bullet\n" +
			"- [-] not a checkbox\n"
		tasks, err := NewProvider(writeSource(t, src)).Tasks()
		if err != nil {
			t.Fatalf("Tasks() returned error: %v", err)
		}

		want := []migrate.MigratedTask{
			{Text: "milk"},
			{Text: "bread", Completed: true},
			{Text: "nested eggs", Completed: true},
			{Text: "padded"},
		}
		if len(tasks) != len(want) {
			t.Fatalf("expected %d tasks, got %d: %+v", len(want), len(tasks), tasks)
		}
		for i := range want {
			if tasks[i] != want[i] {
				t.Errorf("tasks[%d] = %+v, want %+v", i, tasks[i], want[i])
			}
		}
	})

	t.Run("it keeps empty items for the engine to reject", func(t *testing.T) {
		tasks, err := NewProvider(writeSource(t, "- [ ]\n- [ ]   \n")).Tasks()
		if err != nil {
			t.Fatalf("Tasks() returned error: %v", err)
		}
		if len(tasks) != 2 {
			t.Fatalf("expected 2 tasks, got %d", len(tasks))
		}
		for i, mt := range tasks {
			if mt.Validate() == nil {
				t.Errorf("tasks[%d] = %+v, expected validation failure", i, mt)
			}
		}
	})

	t.Run("it fails for a missing file", func(t *testing.T) {
		if _, err := NewProvider(filepath.Join(t.TempDir(), "nope.md")).Tasks(); err == nil {
			t.Error("expected an error for a missing file")
		}
	})
}

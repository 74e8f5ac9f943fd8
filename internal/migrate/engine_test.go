package migrate

import (
	"errors"
	"testing"

	"github.com/leeovery/todol/internal/task"
)

// mockTaskCreator is a test double satisfying TaskCreator.
type mockTaskCreator struct {
	calls []MigratedTask
	err   error
}

func (m *mockTaskCreator) CreateTask(t MigratedTask) (int, error) {
	m.calls = append(m.calls, t)
	if m.err != nil {
		return -1, m.err
	}
	return len(m.calls) - 1, nil
}

func TestEngineRun(t *testing.T) {
	t.Run("it returns a successful Result with the id of each inserted task", func(t *testing.T) {
		provider := &mockProvider{name: "test", tasks: []MigratedTask{{Text: "A"}, {Text: "B"}}}
		engine := NewEngine(&mockTaskCreator{}, Options{})

		results, err := engine.Run(provider)
		if err != nil {
			t.Fatalf("Run() returned error: %v", err)
		}
		if len(results) != 2 {
			t.Fatalf("expected 2 results, got %d", len(results))
		}
		for i, r := range results {
			if !r.Success || r.ID != i {
				t.Errorf("results[%d] = %+v, want success with ID %d", i, r, i)
			}
		}
	})

	t.Run("it skips tasks that fail validation and records the failure", func(t *testing.T) {
		provider := &mockProvider{name: "test", tasks: []MigratedTask{{Text: "A"}, {Text: "  "}, {Text: "C"}}}
		creator := &mockTaskCreator{}

		results, err := NewEngine(creator, Options{}).Run(provider)
		if err != nil {
			t.Fatalf("Run() returned error: %v", err)
		}
		if len(creator.calls) != 2 {
			t.Fatalf("expected 2 CreateTask calls, got %d", len(creator.calls))
		}
		if len(results) != 3 {
			t.Fatalf("expected 3 results, got %d", len(results))
		}
		if results[1].Success || !errors.Is(results[1].Err, ErrEmptyText) {
			t.Errorf("results[1] = %+v, want ErrEmptyText failure", results[1])
		}
		if results[1].Text != "(empty)" {
			t.Errorf("results[1].Text = %q, want %q", results[1].Text, "(empty)")
		}
	})

	t.Run("it returns the provider error without results", func(t *testing.T) {
		provider := &mockProvider{name: "test", err: errors.New("file not found")}

		results, err := NewEngine(&mockTaskCreator{}, Options{}).Run(provider)
		if err == nil || err.Error() != "file not found" {
			t.Fatalf("Run() error = %v, want provider error", err)
		}
		if results != nil {
			t.Errorf("expected nil results, got %v", results)
		}
	})

	t.Run("it returns an empty slice when the provider has no tasks", func(t *testing.T) {
		results, err := NewEngine(&mockTaskCreator{}, Options{}).Run(&mockProvider{name: "test"})
		if err != nil {
			t.Fatalf("Run() returned error: %v", err)
		}
		if results == nil || len(results) != 0 {
			t.Errorf("expected empty non-nil results, got %v", results)
		}
	})

	t.Run("it stops on the first insertion failure with partial results", func(t *testing.T) {
		provider := &mockProvider{name: "test", tasks: []MigratedTask{{Text: "A"}, {Text: "B"}}}
		creator := &mockTaskCreator{err: task.ErrCapacityExceeded}

		results, err := NewEngine(creator, Options{}).Run(provider)
		if !errors.Is(err, task.ErrCapacityExceeded) {
			t.Fatalf("Run() error = %v, want ErrCapacityExceeded", err)
		}
		if len(creator.calls) != 1 {
			t.Errorf("expected 1 CreateTask call, got %d", len(creator.calls))
		}
		if len(results) != 1 || results[0].Success {
			t.Errorf("results = %+v, want one failure", results)
		}
	})

	t.Run("it skips completed tasks with PendingOnly", func(t *testing.T) {
		provider := &mockProvider{name: "test", tasks: []MigratedTask{
			{Text: "open"},
			{Text: "done", Completed: true},
		}}
		creator := &mockTaskCreator{}

		results, err := NewEngine(creator, Options{PendingOnly: true}).Run(provider)
		if err != nil {
			t.Fatalf("Run() returned error: %v", err)
		}
		if len(results) != 1 || results[0].Text != "open" {
			t.Errorf("results = %+v, want only the open task", results)
		}
	})
}

func TestListTaskCreator(t *testing.T) {
	t.Run("it adds tasks in order and completes checked ones", func(t *testing.T) {
		l := task.NewList()
		creator := NewListTaskCreator(l)

		for _, mt := range []MigratedTask{{Text: "a"}, {Text: "b", Completed: true}} {
			if _, err := creator.CreateTask(mt); err != nil {
				t.Fatalf("CreateTask(%+v) returned error: %v", mt, err)
			}
		}

		got := l.Occupied()
		if len(got) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(got))
		}
		if got[0].Text != "a" || got[0].Completed {
			t.Errorf("entry 0 = %+v, want open %q", got[0], "a")
		}
		if got[1].Text != "b" || !got[1].Completed {
			t.Errorf("entry 1 = %+v, want completed %q", got[1], "b")
		}
	})

	t.Run("it reports ErrCapacityExceeded on a full list", func(t *testing.T) {
		l := task.NewList()
		for i := 0; i < task.Capacity; i++ {
			if _, err := l.Add("x"); err != nil {
				t.Fatalf("Add returned error: %v", err)
			}
		}

		_, err := NewListTaskCreator(l).CreateTask(MigratedTask{Text: "overflow"})
		if !errors.Is(err, task.ErrCapacityExceeded) {
			t.Errorf("CreateTask error = %v, want ErrCapacityExceeded", err)
		}
	})
}

package migrate

import "strings"

// TaskCreator inserts a MigratedTask into a list and returns its id.
type TaskCreator interface {
	CreateTask(t MigratedTask) (int, error)
}

// Options configures engine behavior.
type Options struct {
	// PendingOnly skips tasks that are already completed in the source.
	PendingOnly bool
}

// Engine orchestrates an import from a Provider via a TaskCreator.
type Engine struct {
	creator TaskCreator
	opts    Options
}

// NewEngine creates an Engine that uses the given TaskCreator.
func NewEngine(creator TaskCreator, opts Options) *Engine {
	return &Engine{creator: creator, opts: opts}
}

// Run fetches tasks from the provider, validates each one, inserts valid
// tasks via the TaskCreator, and returns a Result per task. Validation
// failures are recorded and skipped. An insertion failure (a full list)
// stops the run and is returned with the partial results.
func (e *Engine) Run(provider Provider) ([]Result, error) {
	tasks, err := provider.Tasks()
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(tasks))
	for _, t := range tasks {
		if e.opts.PendingOnly && t.Completed {
			continue
		}
		if err := t.Validate(); err != nil {
			text := t.Text
			if strings.TrimSpace(text) == "" {
				text = "(empty)"
			}
			results = append(results, Result{Text: text, Success: false, Err: err})
			continue
		}

		id, err := e.creator.CreateTask(t)
		if err != nil {
			results = append(results, Result{Text: t.Text, Success: false, Err: err})
			return results, err
		}
		results = append(results, Result{Text: t.Text, ID: id, Success: true})
	}

	return results, nil
}

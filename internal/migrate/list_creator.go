package migrate

import "github.com/leeovery/todol/internal/task"

// ListTaskCreator adds tasks to an in-memory list. The caller decides
// whether the list is saved, so one import is one mutation.
type ListTaskCreator struct {
	list *task.List
}

var _ TaskCreator = (*ListTaskCreator)(nil)

// NewListTaskCreator creates a ListTaskCreator that appends to l.
func NewListTaskCreator(l *task.List) *ListTaskCreator {
	return &ListTaskCreator{list: l}
}

// CreateTask adds the task's text and marks it complete when the source
// had it checked off.
func (c *ListTaskCreator) CreateTask(mt MigratedTask) (int, error) {
	id, err := c.list.Add(mt.Text)
	if err != nil {
		return id, err
	}
	if mt.Completed {
		if _, err := c.list.ToggleComplete(id); err != nil {
			return id, err
		}
	}
	return id, nil
}

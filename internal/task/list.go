package task

import "fmt"

// List is a fixed-capacity, slot-addressed task list. Occupied slots are kept
// left-packed by Remove, so ids are dense from 0 in normal operation.
// A List is not safe for concurrent use.
type List struct {
	slots [Capacity]Entry
}

// NewList returns a list with every slot cleared.
func NewList() *List {
	l := &List{}
	l.Create()
	return l
}

// FromSlots builds a list from exactly Capacity entries in slot order. Slot
// ids are reassigned from position and unoccupied slots are normalised to
// the cleared state.
func FromSlots(slots []Entry) (*List, error) {
	if len(slots) != Capacity {
		return nil, fmt.Errorf("expected %d slots, got %d", Capacity, len(slots))
	}
	l := &List{}
	for i, e := range slots {
		if !e.Occupied {
			l.slots[i] = cleared(i)
			continue
		}
		e.ID = i
		e.Text = BoundText(e.Text)
		l.slots[i] = e
	}
	return l, nil
}

// Create resets every slot to the cleared state.
func (l *List) Create() {
	for i := range l.slots {
		l.slots[i] = cleared(i)
	}
}

// Add stores text in the lowest unoccupied slot and returns its id. Text
// longer than the record allows is truncated. When no slot is free the list
// is left unchanged and ErrCapacityExceeded is returned.
func (l *List) Add(text string) (int, error) {
	for i := range l.slots {
		if l.slots[i].Occupied {
			continue
		}
		l.slots[i] = Entry{ID: i, Occupied: true, Text: BoundText(text)}
		return i, nil
	}
	return -1, ErrCapacityExceeded
}

// Remove deletes the entry at id. Every occupied slot in the run directly
// after id shifts one position left and the vacated tail slot is cleared.
// Removing an unoccupied slot is a no-op.
func (l *List) Remove(id int) error {
	if err := checkID(id); err != nil {
		return err
	}
	if !l.slots[id].Occupied {
		return nil
	}

	i := id
	for i < Capacity-1 && l.slots[i+1].Occupied {
		l.slots[i] = l.slots[i+1]
		l.slots[i].ID = i
		i++
	}
	l.slots[i] = cleared(i)
	return nil
}

// ToggleComplete flips the completed flag of the entry at id and returns the
// updated entry.
func (l *List) ToggleComplete(id int) (Entry, error) {
	if err := checkID(id); err != nil {
		return Entry{}, err
	}
	if !l.slots[id].Occupied {
		return Entry{}, fmt.Errorf("slot %d: %w", id, ErrNotFound)
	}
	l.slots[id].Completed = !l.slots[id].Completed
	return l.slots[id], nil
}

// Change replaces the text of the entry at id, bounding it like Add.
func (l *List) Change(id int, text string) (Entry, error) {
	if err := checkID(id); err != nil {
		return Entry{}, err
	}
	if !l.slots[id].Occupied {
		return Entry{}, fmt.Errorf("slot %d: %w", id, ErrNotFound)
	}
	l.slots[id].Text = BoundText(text)
	return l.slots[id], nil
}

// ClearCompleted removes every completed entry and returns them as they were
// before removal, highest id first.
//
// The scan runs downward from the highest occupied slot so that compaction
// only moves entries that were already examined. It stops at the first
// unoccupied slot: the occupied region is assumed to be a prefix.
func (l *List) ClearCompleted() []Entry {
	var removed []Entry
	for id := l.top(); id >= 0; id-- {
		if !l.slots[id].Occupied {
			break
		}
		if !l.slots[id].Completed {
			continue
		}
		removed = append(removed, l.slots[id])
		// id is in range and occupied, Remove cannot fail.
		_ = l.Remove(id)
	}
	return removed
}

// Pop removes the highest occupied entry and returns it. ok is false, and
// the list untouched, when the list is empty.
func (l *List) Pop() (e Entry, ok bool) {
	id := l.top()
	if id < 0 {
		return Entry{}, false
	}
	e = l.slots[id]
	_ = l.Remove(id)
	return e, true
}

// Get returns the entry at id.
func (l *List) Get(id int) (Entry, error) {
	if err := checkID(id); err != nil {
		return Entry{}, err
	}
	if !l.slots[id].Occupied {
		return Entry{}, fmt.Errorf("slot %d: %w", id, ErrNotFound)
	}
	return l.slots[id], nil
}

// Occupied returns the occupied entries, lowest id first. The result is a
// copy; mutating it does not affect the list.
func (l *List) Occupied() []Entry {
	entries := make([]Entry, 0, Capacity)
	for _, e := range l.slots {
		if e.Occupied {
			entries = append(entries, e)
		}
	}
	return entries
}

// Len returns the number of occupied slots.
func (l *List) Len() int {
	n := 0
	for _, e := range l.slots {
		if e.Occupied {
			n++
		}
	}
	return n
}

// Slots returns a copy of all Capacity slots in order, occupied or not.
func (l *List) Slots() []Entry {
	out := make([]Entry, Capacity)
	copy(out, l.slots[:])
	return out
}

// top returns the highest occupied slot, or -1 for an empty list.
func (l *List) top() int {
	for id := Capacity - 1; id >= 0; id-- {
		if l.slots[id].Occupied {
			return id
		}
	}
	return -1
}

func checkID(id int) error {
	if id < 0 || id >= Capacity {
		return fmt.Errorf("%w: %d (valid range 0-%d)", ErrInvalidID, id, Capacity-1)
	}
	return nil
}

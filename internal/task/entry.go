// Package task defines the to-do entry model and the fixed-capacity list that
// owns every mutation: add, remove with compaction, toggle, clear and pop.
package task

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	// Capacity is the number of slots in every list.
	Capacity = 20
	// MaxText is the size of the on-disk text buffer, terminator included.
	// Stored text is therefore at most MaxText-1 bytes.
	MaxText = 64
)

var (
	// ErrInvalidID is returned for ids outside [0, Capacity).
	ErrInvalidID = errors.New("ID out of range")
	// ErrNotFound is returned when a valid id addresses an unoccupied slot.
	ErrNotFound = errors.New("no task with given ID")
	// ErrCapacityExceeded is returned by Add when every slot is occupied.
	ErrCapacityExceeded = errors.New("list full: please remove an entry")
)

// Entry is a single slot in a List. While occupied, ID equals the slot index.
type Entry struct {
	ID        int    `json:"id"`
	Occupied  bool   `json:"-"`
	Completed bool   `json:"completed"`
	Text      string `json:"text"`
}

// cleared returns the canonical empty entry for slot id.
func cleared(id int) Entry {
	return Entry{ID: id}
}

// IsCleared reports whether e is in the canonical unoccupied state.
func (e Entry) IsCleared() bool {
	return !e.Occupied && !e.Completed && e.Text == ""
}

// BoundText reduces text to what fits in a record. Everything from the first
// NUL onwards is dropped, invalid UTF-8 bytes are removed, and the result is
// cut to at most MaxText-1 bytes without splitting a rune.
func BoundText(text string) string {
	if i := strings.IndexByte(text, 0); i >= 0 {
		text = text[:i]
	}
	text = strings.ToValidUTF8(text, "")
	if len(text) <= MaxText-1 {
		return text
	}
	n := MaxText - 1
	for n > 0 && !utf8.RuneStart(text[n]) {
		n--
	}
	return text[:n]
}

package storage

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unicode/utf8"

	"github.com/leeovery/todol/internal/task"
)

const (
	idWidth   = 4
	flagWidth = 4

	occupiedOff  = idWidth
	completedOff = occupiedOff + flagWidth
	textOff      = completedOff + flagWidth

	// RecordSize is the width of one slot on disk.
	RecordSize = textOff + task.MaxText // 76 bytes
	// FileSize is the exact size of a valid list file.
	FileSize = task.Capacity * RecordSize
)

// Record is the raw on-disk form of one slot, decoupled from validation.
// Layout (little endian): int32 id, uint32 occupied, uint32 completed,
// MaxText bytes of NUL-padded text.
type Record struct {
	ID        int32
	Occupied  uint32
	Completed uint32
	Text      [task.MaxText]byte
}

// Marshal writes the record into dst, which must be at least RecordSize long.
func (r Record) Marshal(dst []byte) {
	binary.LittleEndian.PutUint32(dst[0:idWidth], uint32(r.ID))
	binary.LittleEndian.PutUint32(dst[occupiedOff:completedOff], r.Occupied)
	binary.LittleEndian.PutUint32(dst[completedOff:textOff], r.Completed)
	copy(dst[textOff:RecordSize], r.Text[:])
}

// Unmarshal reads the record from src, which must be at least RecordSize long.
func (r *Record) Unmarshal(src []byte) {
	r.ID = int32(binary.LittleEndian.Uint32(src[0:idWidth]))
	r.Occupied = binary.LittleEndian.Uint32(src[occupiedOff:completedOff])
	r.Completed = binary.LittleEndian.Uint32(src[completedOff:textOff])
	copy(r.Text[:], src[textOff:RecordSize])
}

// TextString returns the text up to the first NUL, and whether a NUL was found.
func (r Record) TextString() (string, bool) {
	n := bytes.IndexByte(r.Text[:], 0)
	if n < 0 {
		return string(r.Text[:]), false
	}
	return string(r.Text[:n]), true
}

// RecordFromEntry converts a list entry to its on-disk form. Unoccupied
// entries always encode as the cleared record for their slot.
func RecordFromEntry(slot int, e task.Entry) Record {
	r := Record{ID: int32(slot)}
	if !e.Occupied {
		return r
	}
	r.Occupied = 1
	if e.Completed {
		r.Completed = 1
	}
	copy(r.Text[:task.MaxText-1], task.BoundText(e.Text))
	return r
}

// Entry validates the record against slot and converts it to a list entry.
func (r Record) Entry(slot int) (task.Entry, error) {
	if int(r.ID) != slot {
		return task.Entry{}, fmt.Errorf("%w: slot %d holds id %d", ErrCorruptData, slot, r.ID)
	}
	if r.Occupied > 1 {
		return task.Entry{}, fmt.Errorf("%w: slot %d has occupied flag %d", ErrCorruptData, slot, r.Occupied)
	}
	if r.Completed > 1 {
		return task.Entry{}, fmt.Errorf("%w: slot %d has completed flag %d", ErrCorruptData, slot, r.Completed)
	}
	if r.Occupied == 0 {
		return task.Entry{ID: slot}, nil
	}

	text, terminated := r.TextString()
	if !terminated {
		return task.Entry{}, fmt.Errorf("%w: slot %d text is not terminated", ErrCorruptData, slot)
	}
	if !utf8.ValidString(text) {
		text = task.BoundText(text)
	}
	return task.Entry{
		ID:        slot,
		Occupied:  true,
		Completed: r.Completed == 1,
		Text:      text,
	}, nil
}

// ReadRecords splits data into Capacity raw records without validating them.
// Any size other than FileSize is corrupt.
func ReadRecords(data []byte) ([]Record, error) {
	if len(data) != FileSize {
		return nil, fmt.Errorf("%w: file is %d bytes, want %d", ErrCorruptData, len(data), FileSize)
	}
	records := make([]Record, task.Capacity)
	for i := range records {
		records[i].Unmarshal(data[i*RecordSize:])
	}
	return records, nil
}

// Encode serialises every slot of l in order.
func Encode(l *task.List) []byte {
	buf := make([]byte, FileSize)
	for i, e := range l.Slots() {
		RecordFromEntry(i, e).Marshal(buf[i*RecordSize:])
	}
	return buf
}

// Decode parses a complete list file.
func Decode(data []byte) (*task.List, error) {
	records, err := ReadRecords(data)
	if err != nil {
		return nil, err
	}
	entries := make([]task.Entry, len(records))
	for i, r := range records {
		e, err := r.Entry(i)
		if err != nil {
			return nil, err
		}
		entries[i] = e
	}
	return task.FromSlots(entries)
}

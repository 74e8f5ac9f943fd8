package storage

import (
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"github.com/leeovery/todol/internal/task"
)

func TestRecordLayout(t *testing.T) {
	t.Run("it has the documented fixed sizes", func(t *testing.T) {
		if RecordSize != 76 {
			t.Errorf("RecordSize = %d, want 76", RecordSize)
		}
		if FileSize != task.Capacity*76 {
			t.Errorf("FileSize = %d, want %d", FileSize, task.Capacity*76)
		}
	})

	t.Run("it encodes fields little endian at fixed offsets", func(t *testing.T) {
		buf := make([]byte, RecordSize)
		RecordFromEntry(3, task.Entry{ID: 3, Occupied: true, Completed: true, Text: "hi"}).Marshal(buf)

		if got := binary.LittleEndian.Uint32(buf[0:4]); got != 3 {
			t.Errorf("id = %d, want 3", got)
		}
		if got := binary.LittleEndian.Uint32(buf[4:8]); got != 1 {
			t.Errorf("occupied = %d, want 1", got)
		}
		if got := binary.LittleEndian.Uint32(buf[8:12]); got != 1 {
			t.Errorf("completed = %d, want 1", got)
		}
		if got := string(buf[12:14]); got != "hi" {
			t.Errorf("text = %q, want %q", got, "hi")
		}
		for i := 14; i < RecordSize; i++ {
			if buf[i] != 0 {
				t.Fatalf("byte %d = %#x, want NUL padding", i, buf[i])
			}
		}
	})

	t.Run("it always leaves room for the terminator", func(t *testing.T) {
		r := RecordFromEntry(0, task.Entry{Occupied: true, Text: strings.Repeat("z", 200)})

		text, terminated := r.TextString()
		if !terminated {
			t.Fatal("expected text to be NUL terminated")
		}
		if len(text) != task.MaxText-1 {
			t.Errorf("len(text) = %d, want %d", len(text), task.MaxText-1)
		}
	})

	t.Run("it encodes unoccupied entries as cleared records", func(t *testing.T) {
		r := RecordFromEntry(5, task.Entry{ID: 9, Completed: true, Text: "ghost"})

		if r.ID != 5 || r.Occupied != 0 || r.Completed != 0 || r.Text[0] != 0 {
			t.Errorf("record = %+v, want cleared record for slot 5", r)
		}
	})
}

func TestDecode(t *testing.T) {
	t.Run("it round-trips a list", func(t *testing.T) {
		l := task.NewList()
		_, _ = l.Add("first")
		id, _ := l.Add("second")
		_, _ = l.ToggleComplete(id)

		got, err := Decode(Encode(l))
		if err != nil {
			t.Fatalf("Decode returned error: %v", err)
		}

		want := l.Slots()
		for i, e := range got.Slots() {
			if e != want[i] {
				t.Errorf("slot %d = %+v, want %+v", i, e, want[i])
			}
		}
	})

	t.Run("it rejects data of the wrong size", func(t *testing.T) {
		for _, size := range []int{0, FileSize - 1, FileSize + 1} {
			_, err := Decode(make([]byte, size))
			if !errors.Is(err, ErrCorruptData) {
				t.Errorf("Decode(%d bytes) error = %v, want ErrCorruptData", size, err)
			}
		}
	})

	t.Run("it rejects a record whose id does not match its slot", func(t *testing.T) {
		data := Encode(task.NewList())
		binary.LittleEndian.PutUint32(data[2*RecordSize:], 7)

		_, err := Decode(data)
		if !errors.Is(err, ErrCorruptData) {
			t.Fatalf("Decode error = %v, want ErrCorruptData", err)
		}
		if !strings.Contains(err.Error(), "slot 2") {
			t.Errorf("error = %q, want it to name slot 2", err.Error())
		}
	})

	t.Run("it rejects flags other than 0 or 1", func(t *testing.T) {
		data := Encode(task.NewList())
		binary.LittleEndian.PutUint32(data[occupiedOff:], 2)

		if _, err := Decode(data); !errors.Is(err, ErrCorruptData) {
			t.Errorf("Decode error = %v, want ErrCorruptData", err)
		}
	})

	t.Run("it rejects occupied text without a terminator", func(t *testing.T) {
		l := task.NewList()
		_, _ = l.Add("x")
		data := Encode(l)
		for i := textOff; i < RecordSize; i++ {
			data[i] = 'a'
		}

		if _, err := Decode(data); !errors.Is(err, ErrCorruptData) {
			t.Errorf("Decode error = %v, want ErrCorruptData", err)
		}
	})

	t.Run("it ignores garbage text in unoccupied slots", func(t *testing.T) {
		data := Encode(task.NewList())
		for i := RecordSize + textOff; i < 2*RecordSize; i++ {
			data[i] = 0xAB
		}

		l, err := Decode(data)
		if err != nil {
			t.Fatalf("Decode returned error: %v", err)
		}
		if e := l.Slots()[1]; !e.IsCleared() {
			t.Errorf("slot 1 = %+v, want cleared", e)
		}
	})
}

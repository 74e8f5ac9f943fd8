// Package storage persists a task.List as a fixed-size binary file and owns
// the open -> load -> save -> close lifecycle of that file.
//
// The file has no header: it is exactly task.Capacity records of RecordSize
// bytes. Saves replace the whole file atomically. No locking is done here;
// two processes saving the same file concurrently is last-writer-wins.
package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/leeovery/todol/internal/task"
)

var (
	// ErrIO wraps any failure to open, read, write, flush or close the file.
	ErrIO = errors.New("i/o error")
	// ErrCorruptData is returned when the file size or a record is invalid.
	ErrCorruptData = errors.New("corrupt list file")
)

const defaultPerm os.FileMode = 0644

// Option configures a Handle.
type Option func(*Handle)

// WithVerbose sets a callback that receives a line for each lifecycle step.
func WithVerbose(fn func(msg string)) Option {
	return func(h *Handle) {
		h.verbose = fn
	}
}

// Handle is an open list file. It is owned by a single invocation and must
// be closed exactly once; Close is idempotent.
type Handle struct {
	path    string
	file    *os.File
	list    *task.List
	perm    os.FileMode
	created bool
	saved   bool
	closed  bool
	verbose func(msg string)
}

func newHandle(path string, opts []Option) *Handle {
	h := &Handle{path: path, perm: defaultPerm}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handle) logVerbose(format string, args ...interface{}) {
	if h.verbose != nil {
		h.verbose(fmt.Sprintf(format, args...))
	}
}

// OpenForCreate opens path for writing and returns a handle holding a fresh,
// cleared list. The file is not truncated here: existing content is replaced
// as a whole when Save renames the new file over it, so a failed create
// leaves the old list intact. If the file did not exist and the handle is
// closed without a successful Save, the empty file is removed again.
func OpenForCreate(path string, opts ...Option) (*Handle, error) {
	h := newHandle(path, opts)

	_, statErr := os.Stat(path)
	h.created = errors.Is(statErr, fs.ErrNotExist)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, h.perm)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s for create: %w", ErrIO, path, err)
	}
	if err := h.adopt(f); err != nil {
		return nil, err
	}

	h.list = task.NewList()
	h.logVerbose("open: %s opened for create", path)
	return h, nil
}

// OpenForUpdate opens an existing list file for read and write and loads it.
// A missing file is an ErrIO failure; a file of the wrong size or with an
// invalid record is ErrCorruptData. The file is released on every error path.
func OpenForUpdate(path string, opts ...Option) (*Handle, error) {
	h := newHandle(path, opts)

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %w", ErrIO, path, err)
	}
	if err := h.adopt(f); err != nil {
		return nil, err
	}
	h.logVerbose("open: %s opened for update", path)

	data, err := io.ReadAll(io.LimitReader(f, FileSize+1))
	if err != nil {
		h.Close()
		return nil, fmt.Errorf("%w: reading %s: %w", ErrIO, path, err)
	}

	list, err := Decode(data)
	if err != nil {
		h.Close()
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	h.list = list
	h.logVerbose("load: read %d tasks from %s", list.Len(), path)
	return h, nil
}

// adopt takes ownership of f and records the permissions to preserve on save.
func (h *Handle) adopt(f *os.File) error {
	h.file = f
	info, err := f.Stat()
	if err != nil {
		h.Close()
		return fmt.Errorf("%w: stat %s: %w", ErrIO, h.path, err)
	}
	if info.IsDir() {
		h.Close()
		return fmt.Errorf("%w: %s is a directory", ErrIO, h.path)
	}
	h.perm = info.Mode().Perm()
	return nil
}

// Path returns the list file path.
func (h *Handle) Path() string {
	return h.path
}

// List returns the in-memory list loaded or created by the handle.
func (h *Handle) List() *task.List {
	return h.list
}

// Save replaces the whole file with every slot of l, in slot order, and
// flushes it to stable storage before returning. On failure the previous
// file content is left intact.
func (h *Handle) Save(l *task.List) error {
	if h.closed {
		return fmt.Errorf("%w: save on closed handle for %s", ErrIO, h.path)
	}

	h.logVerbose("write: atomic write to %s", h.path)
	if err := writeAtomic(h.path, Encode(l), h.perm); err != nil {
		return fmt.Errorf("%w: saving %s: %w", ErrIO, h.path, err)
	}
	h.saved = true
	h.logVerbose("write: wrote %d tasks", l.Len())
	return nil
}

// Close releases the file. Calling it more than once is a no-op.
func (h *Handle) Close() error {
	if h == nil || h.closed {
		return nil
	}
	h.closed = true

	var err error
	if h.file != nil {
		if cerr := h.file.Close(); cerr != nil {
			err = fmt.Errorf("%w: closing %s: %w", ErrIO, h.path, cerr)
		}
	}
	if h.created && !h.saved {
		// Never leave a zero-length list behind from a failed create.
		os.Remove(h.path)
	}
	h.logVerbose("close: %s released", h.path)
	return err
}

package storage

import (
	"github.com/leeovery/todol/internal/task"
)

// Store runs one load/mutate/save transaction per call against a list file.
// Every call opens its own Handle and releases it on every return path.
type Store struct {
	path string
	opts []Option
}

// NewStore creates a Store for the list file at path. The file is not
// touched until a transaction runs.
func NewStore(path string, opts ...Option) *Store {
	return &Store{path: path, opts: opts}
}

// Path returns the list file path.
func (s *Store) Path() string {
	return s.path
}

// Create executes the create flow:
//  1. Open the file for create (existing content untouched)
//  2. Pass a cleared list to fn (nil fn is allowed)
//  3. Replace the file with the list
//  4. Release the file (via defer)
func (s *Store) Create(fn func(l *task.List) error) (err error) {
	h, err := OpenForCreate(s.path, s.opts...)
	if err != nil {
		return err
	}
	defer closeHandle(h, &err)

	if fn != nil {
		if err := fn(h.List()); err != nil {
			return err
		}
	}
	return h.Save(h.List())
}

// Mutate executes the write flow:
//  1. Open and load the existing file
//  2. Pass the list to fn
//  3. Replace the file with the mutated list
//  4. Release the file (via defer)
//
// If fn returns an error nothing is written, so a failed mutation never
// persists a partial change.
func (s *Store) Mutate(fn func(l *task.List) error) (err error) {
	h, err := OpenForUpdate(s.path, s.opts...)
	if err != nil {
		return err
	}
	defer closeHandle(h, &err)

	if err := fn(h.List()); err != nil {
		return err
	}
	return h.Save(h.List())
}

// Query executes the read flow: open and load the file, pass the list to fn,
// release the file. Nothing is written even if fn mutates the list.
func (s *Store) Query(fn func(l *task.List) error) (err error) {
	h, err := OpenForUpdate(s.path, s.opts...)
	if err != nil {
		return err
	}
	defer closeHandle(h, &err)

	return fn(h.List())
}

// closeHandle closes h and reports its error only if nothing failed before.
func closeHandle(h *Handle, err *error) {
	if cerr := h.Close(); cerr != nil && *err == nil {
		*err = cerr
	}
}

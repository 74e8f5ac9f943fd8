// Package testutil holds fixtures shared by todol's package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// FindRepoRoot returns the nearest ancestor of the working directory that
// holds go.mod.
func FindRepoRoot(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	for dir := wd; ; dir = filepath.Dir(dir) {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		if dir == filepath.Dir(dir) {
			t.Fatalf("no go.mod above %s", wd)
		}
	}
}

package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

// runResult captures one App.Run.
type runResult struct {
	stdout string
	stderr string
	code   int
}

// runApp runs todol in dir with isolated config and environment. env
// entries are KEY=VALUE pairs.
func runApp(t *testing.T, dir string, stdin string, env []string, args ...string) runResult {
	t.Helper()
	vars := map[string]string{"XDG_CONFIG_HOME": filepath.Join(dir, ".xdg")}
	for _, kv := range env {
		k, v, _ := strings.Cut(kv, "=")
		vars[k] = v
	}

	var stdout, stderr bytes.Buffer
	app := &App{
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
		Dir:    dir,
		LookupEnv: func(key string) (string, bool) {
			v, ok := vars[key]
			return v, ok
		},
	}
	code := app.Run(append([]string{"todol"}, args...))
	return runResult{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

// mustRun runs todol and fails the test on a non-zero exit.
func mustRun(t *testing.T, dir string, args ...string) runResult {
	t.Helper()
	r := runApp(t, dir, "", nil, args...)
	if r.code != 0 {
		t.Fatalf("todol %v exited %d: %s", args, r.code, r.stderr)
	}
	return r
}

// listDir returns a temp dir holding todo.db with the given texts.
func listDir(t *testing.T, texts ...string) string {
	t.Helper()
	dir := t.TempDir()
	r := runApp(t, dir, "", nil, "todo.db", "create")
	if r.code != 0 {
		t.Fatalf("create exited %d: %s", r.code, r.stderr)
	}
	for _, text := range texts {
		if r := runApp(t, dir, "", nil, "todo.db", "add", text); r.code != 0 {
			t.Fatalf("add %q exited %d: %s", text, r.code, r.stderr)
		}
	}
	return dir
}

func listTexts(t *testing.T, dir string) string {
	t.Helper()
	return strings.TrimSpace(mustRun(t, dir, "--json", "todo.db", "list").stdout)
}

// Package text implements an import provider for plain text files holding
// one task per line.
package text

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/leeovery/todol/internal/migrate"
)

// Provider reads one open task per non-blank line of a file.
type Provider struct {
	path string
}

var _ migrate.Provider = (*Provider)(nil)

// NewProvider creates a provider reading from path.
func NewProvider(path string) *Provider {
	return &Provider{path: path}
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return "text"
}

// Tasks reads the file and returns a task per non-blank line, trimmed.
func (p *Provider) Tasks() ([]migrate.MigratedTask, error) {
	file, err := os.Open(p.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", p.path, err)
	}
	defer file.Close()

	var tasks []migrate.MigratedTask
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		tasks = append(tasks, migrate.MigratedTask{Text: line})
	}
	if err := scanner.Err(); err != nil {
		return tasks, fmt.Errorf("error reading %s: %w", p.path, err)
	}
	return tasks, nil
}

// Package markdown implements an import provider for markdown checklists.
// Only task list items ("- [ ] text", "* [x] text") are imported; headings,
// prose and plain bullets are ignored.
package markdown

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/leeovery/todol/internal/migrate"
)

// checklistItem matches a task list item with an optional indent and any
// of the three bullet markers.
var checklistItem = regexp.MustCompile(`^\s*[-*+]\s+\[([ xX])\](?:\s+(.*))?$`)

// Provider reads checklist items from a markdown file.
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
	return "markdown"
}

// Tasks returns a task per checklist item. Items checked with x or X are
// completed. An item with no text is returned as-is so the engine reports it.
func (p *Provider) Tasks() ([]migrate.MigratedTask, error) {
	file, err := os.Open(p.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", p.path, err)
	}
	defer file.Close()

	var tasks []migrate.MigratedTask
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		m := checklistItem.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		tasks = append(tasks, migrate.MigratedTask{
			Text:      strings.TrimSpace(m[2]),
			Completed: m[1] != " ",
		})
	}
	if err := scanner.Err(); err != nil {
		return tasks, fmt.Errorf("error reading %s: %w", p.path, err)
	}
	return tasks, nil
}

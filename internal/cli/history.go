package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/leeovery/todol/internal/archive"
)

const defaultHistoryLimit = 10

// runHistory prints the most recently archived entries, newest first.
// "history all" prints everything. A missing archive is an empty history.
func (a *App) runHistory(inv *invocation) error {
	limit := defaultHistoryLimit
	if len(inv.args) > 0 {
		if inv.args[0] == "all" {
			limit = 0
		} else {
			n, err := strconv.Atoi(inv.args[0])
			if err != nil || n <= 0 {
				return fmt.Errorf("invalid history count '%s': must be a positive number or 'all'", inv.args[0])
			}
			limit = n
		}
	}

	if _, err := os.Stat(inv.cfg.ArchivePath); errors.Is(err, fs.ErrNotExist) {
		inv.fc.Logger.Log(fmt.Sprintf("archive: %s does not exist", inv.cfg.ArchivePath))
		return inv.fmtr.FormatHistory(a.Stdout, nil)
	}

	arc, err := archive.Open(inv.cfg.ArchivePath)
	if err != nil {
		return err
	}
	defer arc.Close()

	records, err := arc.Recent(limit)
	if err != nil {
		return err
	}
	return inv.fmtr.FormatHistory(a.Stdout, records)
}

package cli

import (
	"context"
	"io"

	"github.com/leeovery/todol/internal/doctor"
)

// RunDoctor runs every diagnostic check against the list at listPath (and
// the archive at archivePath, when given), prints the report and returns
// the exit code. Doctor is read-only and never modifies data.
func RunDoctor(stdout io.Writer, listPath, archivePath string) int {
	report := doctor.Default(archivePath).RunAll(context.Background(), listPath)
	doctor.FormatReport(stdout, report)
	return doctor.ExitCode(report)
}

// runDoctor implements the doctor action. Unlike other actions, doctor
// bypasses the formatter, always prints human-readable text, and takes no
// lock: the lock check probes it instead.
func (a *App) runDoctor(inv *invocation) (int, error) {
	return RunDoctor(a.Stdout, inv.listPath, inv.cfg.ArchivePath), nil
}

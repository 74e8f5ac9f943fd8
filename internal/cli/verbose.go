package cli

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/leeovery/todol/internal/storage"
)

// VerboseLogger writes verbose debug messages to a writer (intended for stderr).
// Every line carries the "verbose" prefix for grep-ability.
// A nil VerboseLogger is a no-op (safe to call Log on nil receiver).
type VerboseLogger struct {
	logger *log.Logger
}

// NewVerboseLogger creates a VerboseLogger that writes to w.
func NewVerboseLogger(w io.Writer) *VerboseLogger {
	return &VerboseLogger{logger: log.NewWithOptions(w, log.Options{
		Level:     log.DebugLevel,
		Formatter: log.TextFormatter,
		Prefix:    "verbose",
	})}
}

// Log writes a verbose message. Safe to call on a nil receiver (no-op).
func (vl *VerboseLogger) Log(msg string) {
	if vl == nil {
		return
	}
	vl.logger.Debug(msg)
}

// newWarnLogger returns the logger used for non-fatal problems that do not
// change the exit code, such as a failed archive write.
func newWarnLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:     log.WarnLevel,
		Formatter: log.TextFormatter,
		Prefix:    "todol",
	})
}

// storeOpts returns the storage options that route lifecycle logging to the
// verbose logger. Returns nil if verbose is not enabled.
func storeOpts(fc FormatConfig) []storage.Option {
	if fc.Logger == nil {
		return nil
	}
	return []storage.Option{storage.WithVerbose(fc.Logger.Log)}
}

package logger

import (
	"log/slog"
	"os"
)

// New returns the process logger. Text output keeps local development
// readable; the attribute API keeps production logs structured.
func New() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

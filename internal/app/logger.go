package app

import (
	"io"
	"log/slog"

	"github.com/phsym/console-slog"
)

// NewLogger builds the CLI logger on w. Results go to stdout, so logs
// belong on stderr.
func NewLogger(w io.Writer, cfg Config) *slog.Logger {
	if cfg.PrettyLogs {
		return slog.New(console.NewHandler(w, &console.HandlerOptions{Level: cfg.LogLevel}))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel}))
}

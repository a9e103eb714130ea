// Package logging builds the application logger. The TUI owns the
// terminal, so log lines go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"pageswipe/internal/config"
)

// New returns a logger configured from settings and a cleanup function
// that closes the log file. An empty File discards output.
func New(s config.LogSettings) (*logrus.Logger, func(), error) {
	l := logrus.New()

	level, err := logrus.ParseLevel(s.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	l.SetLevel(level)

	switch s.Format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	if s.File == "" {
		l.SetOutput(io.Discard)
		return l, func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(s.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(s.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	l.SetOutput(f)

	return l, func() { _ = f.Close() }, nil
}

// Package logging configures the debug logger. The terminal belongs to the
// TUI, so log output goes to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// LevelEnv overrides the configured level when set.
const LevelEnv = "SMARTPAGER_LOG_LEVEL"

// Options configure New.
type Options struct {
	File  string // empty discards all output
	Level string
}

// New returns a logger tagged with the smartpager component and a function
// that closes the underlying file.
func New(opts Options) (*logrus.Entry, func() error, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	levelStr := "info"
	if env := strings.TrimSpace(os.Getenv(LevelEnv)); env != "" {
		levelStr = env
	} else if opts.Level != "" {
		levelStr = opts.Level
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	closer := func() error { return nil }
	if opts.File == "" {
		logger.SetOutput(io.Discard)
	} else {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		file, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		logger.SetOutput(file)
		closer = file.Close
	}

	return logger.WithField("component", "smartpager"), closer, nil
}

// Discard returns a logger that drops everything. Useful in tests.
func Discard() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew_WritesToFile(t *testing.T) {
	t.Setenv(LevelEnv, "")
	path := filepath.Join(t.TempDir(), "logs", "debug.log")

	log, closeLog, err := New(Options{File: path, Level: "debug"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	log.WithField("lines", 3).Debug("document loaded")
	if err := closeLog(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	out := string(data)
	for _, want := range []string{"level=debug", "document loaded", "lines=3", "component=smartpager"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

func TestNew_NoFileDiscards(t *testing.T) {
	t.Setenv(LevelEnv, "")
	log, closeLog, err := New(Options{})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer func() { _ = closeLog() }()

	if log.Logger.Out == os.Stderr || log.Logger.Out == os.Stdout {
		t.Fatalf("logger writes to the terminal; want io.Discard")
	}
	if log.Logger.GetLevel() != logrus.InfoLevel {
		t.Fatalf("level = %v, want info", log.Logger.GetLevel())
	}
}

func TestNew_LevelResolution(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		level string
		want  logrus.Level
	}{
		{"default", "", "", logrus.InfoLevel},
		{"configured", "", "warn", logrus.WarnLevel},
		{"env overrides", "debug", "warn", logrus.DebugLevel},
		{"invalid falls back", "", "loud", logrus.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(LevelEnv, tt.env)
			log, closeLog, err := New(Options{Level: tt.level})
			if err != nil {
				t.Fatalf("New returned error: %v", err)
			}
			defer func() { _ = closeLog() }()
			if got := log.Logger.GetLevel(); got != tt.want {
				t.Fatalf("level = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNew_UnwritableLogFile(t *testing.T) {
	dir := t.TempDir()
	if _, _, err := New(Options{File: dir}); err == nil {
		t.Fatalf("New with a directory as log file returned nil error")
	}
}

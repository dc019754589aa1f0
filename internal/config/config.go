package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the user settings for smartpager.
type Config struct {
	Theme       string
	SyntaxStyle string
	GGTimeout   time.Duration
	Mouse       bool
	LogFile     string
	LogLevel    string
}

const (
	defaultConfigPath  = "~/.config/smartpager/config.toml"
	defaultTheme       = "Dracula"
	defaultSyntaxStyle = "dracula"
	defaultGGTimeout   = 500 * time.Millisecond
	defaultLogLevel    = "info"
)

// fileConfig mirrors the on-disk TOML layout.
type fileConfig struct {
	Theme       string `toml:"theme"`
	SyntaxStyle string `toml:"syntax_style"`
	GGTimeoutMS int    `toml:"gg_timeout_ms"`
	Mouse       *bool  `toml:"mouse"`
	LogFile     string `toml:"log_file"`
	LogLevel    string `toml:"log_level"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		Theme:       defaultTheme,
		SyntaxStyle: defaultSyntaxStyle,
		GGTimeout:   defaultGGTimeout,
		Mouse:       true,
		LogLevel:    defaultLogLevel,
	}
}

// DefaultPath returns the default config file location (unexpanded).
func DefaultPath() string {
	return defaultConfigPath
}

// Load reads the config at path (or the default path when empty), falling back
// to defaults when the file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw fileConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if theme := strings.TrimSpace(raw.Theme); theme != "" {
		cfg.Theme = theme
	}
	if style := strings.TrimSpace(raw.SyntaxStyle); style != "" {
		cfg.SyntaxStyle = style
	}
	if raw.GGTimeoutMS > 0 {
		cfg.GGTimeout = time.Duration(raw.GGTimeoutMS) * time.Millisecond
	}
	if raw.Mouse != nil {
		cfg.Mouse = *raw.Mouse
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}

	return cfg, nil
}

// Save writes cfg to path (or the default path when empty), creating parent
// directories as needed.
func Save(path string, cfg Config) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	mouse := cfg.Mouse
	raw := fileConfig{
		Theme:       cfg.Theme,
		SyntaxStyle: cfg.SyntaxStyle,
		GGTimeoutMS: int(cfg.GGTimeout / time.Millisecond),
		Mouse:       &mouse,
		LogFile:     cfg.LogFile,
		LogLevel:    cfg.LogLevel,
	}
	bytes, err := toml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

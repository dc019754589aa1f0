package app

import (
	"context"
	"fmt"

	"github.com/five82/smartpager/internal/config"
	"github.com/five82/smartpager/internal/document"
	"github.com/five82/smartpager/internal/logging"
	"github.com/five82/smartpager/internal/ui"
)

// Options configure the pager. Non-zero fields override the config file.
type Options struct {
	Path       string
	ConfigPath string // empty uses ~/.config/smartpager/config.toml
	Theme      string
	LogFile    string
	Verbose    bool
	NoMouse    bool
}

// Run loads the document and runs the pager until the user quits or the
// context is cancelled.
func Run(ctx context.Context, opts Options) error {
	uiOpts, closeLog, err := setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	uiOpts.Context = ctx
	if err := ui.Run(uiOpts); err != nil {
		uiOpts.Logger.WithError(err).Error("ui exited")
		return fmt.Errorf("run ui: %w", err)
	}
	uiOpts.Logger.Debug("ui exited")
	return nil
}

// setup resolves configuration, opens the log and reads the whole document.
// Nothing touches the terminal until it succeeds.
func setup(opts Options) (ui.Options, func() error, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return ui.Options{}, nil, fmt.Errorf("load config: %w", err)
	}
	cfg = applyOverrides(cfg, opts)

	log, closeLog, err := logging.New(logging.Options{File: cfg.LogFile, Level: cfg.LogLevel})
	if err != nil {
		return ui.Options{}, nil, fmt.Errorf("init logging: %w", err)
	}

	lines, err := document.Load(opts.Path)
	if err != nil {
		log.WithError(err).WithField("path", opts.Path).Error("read document")
		_ = closeLog()
		return ui.Options{}, nil, fmt.Errorf("read %s: %w", opts.Path, err)
	}
	log.WithField("path", opts.Path).WithField("lines", len(lines)).Info("document loaded")

	return ui.Options{
		Lines:      lines,
		FileName:   opts.Path,
		Config:     cfg,
		ConfigPath: opts.ConfigPath,
		Logger:     log,
	}, closeLog, nil
}

func applyOverrides(cfg config.Config, opts Options) config.Config {
	if opts.Theme != "" {
		cfg.Theme = opts.Theme
	}
	if opts.LogFile != "" {
		cfg.LogFile = opts.LogFile
	}
	if opts.Verbose {
		cfg.LogLevel = "debug"
	}
	if opts.NoMouse {
		cfg.Mouse = false
	}
	return cfg
}

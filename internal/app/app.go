package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/cianwilson/TerraFERMA/internal/config"
	"github.com/cianwilson/TerraFERMA/internal/ctxlog"
	"github.com/spf13/afero"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader
	fs     afero.Fs
}

// Option customizes an App.
type Option func(*App)

// WithFilesystem makes the App commit generated files to fsys instead of the
// operating system's filesystem.
func WithFilesystem(fsys afero.Fs) Option {
	return func(a *App) { a.fs = fsys }
}

// NewApp is the constructor for the main application. It returns an App with
// its own isolated logger; nothing is read until Run.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader, opts ...Option) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	a := &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: loader,
		fs:     afero.NewOsFs(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Context returns ctx carrying the application's logger.
func (a *App) Context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}

// Package logger is a thin slog facade. Console output goes to stderr so
// it never interleaves with spinner redraws; an optional secondary writer
// receives the same records via fanout.
package logger

import (
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// Logger is the leveled structured logger used across the application.
type Logger interface {
	Debug(msg string, tags ...any)
	Info(msg string, tags ...any)
	Warn(msg string, tags ...any)
	Error(msg string, tags ...any)

	With(attrs ...any) Logger
}

var _ Logger = (*appLogger)(nil)

type appLogger struct {
	logger *slog.Logger
}

// Config holds the logger construction options.
type Config struct {
	debug  bool
	format string
	quiet  bool
	writer io.Writer
}

// Option configures the logger.
type Option func(*Config)

// WithDebug lowers the level to debug and adds source locations.
func WithDebug() Option {
	return func(c *Config) { c.debug = true }
}

// WithFormat sets the output format, "text" or "json".
func WithFormat(format string) Option {
	return func(c *Config) { c.format = format }
}

// WithQuiet suppresses console output.
func WithQuiet() Option {
	return func(c *Config) { c.quiet = true }
}

// WithWriter adds a secondary writer that receives every record.
func WithWriter(w io.Writer) Option {
	return func(c *Config) { c.writer = w }
}

var defaultLogger = NewLogger(WithFormat("text"))

// NewLogger builds a logger from the given options.
func NewLogger(opts ...Option) Logger {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}

	level := slog.LevelInfo
	if cfg.debug {
		level = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.debug,
	}

	var handlers []slog.Handler
	if !cfg.quiet {
		handlers = append(handlers, newHandler(os.Stderr, cfg.format, handlerOpts))
	}
	if cfg.writer != nil {
		handlers = append(handlers, newHandler(cfg.writer, cfg.format, handlerOpts))
	}

	return &appLogger{logger: slog.New(slogmulti.Fanout(handlers...))}
}

func newHandler(w io.Writer, format string, opts *slog.HandlerOptions) slog.Handler {
	if format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func (a *appLogger) Debug(msg string, tags ...any) { a.logger.Debug(msg, tags...) }
func (a *appLogger) Info(msg string, tags ...any)  { a.logger.Info(msg, tags...) }
func (a *appLogger) Warn(msg string, tags ...any)  { a.logger.Warn(msg, tags...) }
func (a *appLogger) Error(msg string, tags ...any) { a.logger.Error(msg, tags...) }

func (a *appLogger) With(attrs ...any) Logger {
	return &appLogger{logger: a.logger.With(attrs...)}
}

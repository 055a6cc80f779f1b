package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// Logger is the application logger interface.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
	// WithContext binds ctx to the returned logger. Records written through
	// it carry the run ID stored in ctx, if any.
	WithContext(ctx context.Context) Logger
}

// Config holds logger configuration.
type Config struct {
	Level  string    // debug, info, warn, error
	Format string    // text or json
	Output io.Writer // os.Stderr when nil
}

// DefaultConfig returns the configuration of the process default logger.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "text", Output: os.Stderr}
}

// level is shared by every logger built with New so that SetLevel affects
// all of them at once.
var level = new(slog.LevelVar)

// New creates a logger. It also resets the shared level to cfg.Level.
func New(cfg Config) (Logger, error) {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", "text":
		h = slog.NewTextHandler(out, opts)
	case "json":
		h = slog.NewJSONHandler(out, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	level.Set(parseLevel(cfg.Level))
	return &ctxLogger{sl: slog.New(runIDHandler{h}), ctx: context.Background()}, nil
}

// Discard returns a logger that drops everything. It leaves the shared
// level alone.
func Discard() Logger {
	return &ctxLogger{sl: slog.New(slog.DiscardHandler), ctx: context.Background()}
}

// SetLevel changes the level of every logger built with New.
func SetLevel(name string) {
	level.Set(parseLevel(name))
}

// GetLevel returns the name of the shared level.
func GetLevel() string {
	return strings.ToLower(level.Level().String())
}

// ValidLevel reports whether name is a level SetLevel understands.
func ValidLevel(name string) bool {
	switch strings.ToLower(name) {
	case "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}

func parseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// runIDHandler stamps records with the run ID found in their context.
type runIDHandler struct {
	slog.Handler
}

func (h runIDHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := RunIDFromContext(ctx); id != "" {
		r.AddAttrs(slog.String("run_id", id))
	}
	return h.Handler.Handle(ctx, r)
}

func (h runIDHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return runIDHandler{h.Handler.WithAttrs(attrs)}
}

func (h runIDHandler) WithGroup(name string) slog.Handler {
	return runIDHandler{h.Handler.WithGroup(name)}
}

type ctxLogger struct {
	sl  *slog.Logger
	ctx context.Context
}

func (l *ctxLogger) Debug(msg string, args ...any) { l.sl.Log(l.ctx, slog.LevelDebug, msg, args...) }
func (l *ctxLogger) Info(msg string, args ...any)  { l.sl.Log(l.ctx, slog.LevelInfo, msg, args...) }
func (l *ctxLogger) Warn(msg string, args ...any)  { l.sl.Log(l.ctx, slog.LevelWarn, msg, args...) }
func (l *ctxLogger) Error(msg string, args ...any) { l.sl.Log(l.ctx, slog.LevelError, msg, args...) }

func (l *ctxLogger) With(args ...any) Logger {
	return &ctxLogger{sl: l.sl.With(args...), ctx: l.ctx}
}

func (l *ctxLogger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		ctx = context.Background()
	}
	return &ctxLogger{sl: l.sl, ctx: ctx}
}

var std atomic.Value // Logger

func init() {
	l, _ := New(DefaultConfig())
	std.Store(holder{l})
}

// holder keeps atomic.Value happy with differing concrete types.
type holder struct{ Logger }

// SetDefault replaces the process default logger.
func SetDefault(l Logger) {
	if l != nil {
		std.Store(holder{l})
	}
}

// Default returns the process default logger.
func Default() Logger {
	return std.Load().(holder).Logger
}

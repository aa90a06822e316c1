// Package log builds the slog.Logger used by synthmouse and its raw
// descriptor logger.
//
// Without a log file, records below error go to stdout and errors to stderr,
// so stderr alone reports failures. With a log file, the console output moves
// to stderr and every record is also written to the file.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LevelTrace is a custom slog level below Debug for very verbose output.
const LevelTrace slog.Level = -8

// ParseLevel maps a level name to its slog.Level. Unknown names resolve to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// MultiHandler fans out records to multiple handlers.
type MultiHandler struct{ hs []slog.Handler }

func (m MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.hs {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		_ = h.Handle(ctx, r.Clone())
	}
	return nil
}

func (m MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return m.each(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

func (m MultiHandler) WithGroup(name string) slog.Handler {
	return m.each(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (m MultiHandler) each(fn func(slog.Handler) slog.Handler) MultiHandler {
	out := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		out[i] = fn(h)
	}
	return MultiHandler{hs: out}
}

// levelFilter passes only records whose level satisfies pass.
type levelFilter struct {
	pass func(slog.Level) bool
	h    slog.Handler
}

func (f levelFilter) Enabled(ctx context.Context, level slog.Level) bool {
	return f.pass(level) && f.h.Enabled(ctx, level)
}

func (f levelFilter) Handle(ctx context.Context, r slog.Record) error {
	if !f.pass(r.Level) {
		return nil
	}
	return f.h.Handle(ctx, r)
}

func (f levelFilter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return levelFilter{pass: f.pass, h: f.h.WithAttrs(attrs)}
}

func (f levelFilter) WithGroup(name string) slog.Handler {
	return levelFilter{pass: f.pass, h: f.h.WithGroup(name)}
}

func newHandler(format string, w io.Writer, level slog.Leveler) (slog.Handler, error) {
	opts := &slog.HandlerOptions{Level: level, ReplaceAttr: replaceLevelName}
	switch strings.ToLower(format) {
	case "", "text":
		return slog.NewTextHandler(w, opts), nil
	case "json":
		return slog.NewJSONHandler(w, opts), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

func replaceLevelName(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		if l, ok := a.Value.Any().(slog.Level); ok && l == LevelTrace {
			a.Value = slog.StringValue("TRACE")
		}
	}
	return a
}

// SetupLogger builds a slog.Logger with console and optional file handlers.
// The returned closers must be closed once the logger is no longer used.
func SetupLogger(logLevel, logFile, format string) (*slog.Logger, []io.Closer, error) {
	return setupLogger(logLevel, logFile, format, os.Stdout, os.Stderr)
}

func setupLogger(logLevel, logFile, format string, stdout, stderr io.Writer) (*slog.Logger, []io.Closer, error) {
	level := ParseLevel(logLevel)
	var handlers []slog.Handler

	if logFile == "" {
		out, err := newHandler(format, stdout, level)
		if err != nil {
			return nil, nil, err
		}
		errOut, err := newHandler(format, stderr, slog.LevelError)
		if err != nil {
			return nil, nil, err
		}
		handlers = append(handlers,
			levelFilter{pass: func(l slog.Level) bool { return l < slog.LevelError }, h: out},
			levelFilter{pass: func(l slog.Level) bool { return l >= slog.LevelError }, h: errOut},
		)
		return slog.New(MultiHandler{hs: handlers}), nil, nil
	}

	console, err := newHandler(format, stderr, level)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	file, err := newHandler(format, f, level)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	handlers = append(handlers, console, file)
	return slog.New(MultiHandler{hs: handlers}), []io.Closer{f}, nil
}

// Setup builds the logger and raw descriptor logger described by cfg. The raw
// logger writes to cfg.RawFile, to stdout at trace level, and nowhere
// otherwise. A raw file that cannot be opened is logged and replaced by a
// no-op raw logger.
func Setup(cfg Config, stdout, stderr io.Writer) (*slog.Logger, RawLogger, []io.Closer, error) {
	logger, closers, err := setupLogger(cfg.Level, cfg.File, cfg.Format, stdout, stderr)
	if err != nil {
		return nil, nil, nil, err
	}

	switch {
	case cfg.RawFile != "":
		f, err := os.OpenFile(cfg.RawFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			logger.Error("failed to open raw log file", "file", cfg.RawFile, "error", err)
			return logger, NewRaw(nil), closers, nil
		}
		return logger, NewRaw(f), append(closers, f), nil
	case ParseLevel(cfg.Level) <= LevelTrace:
		return logger, NewRaw(stdout), closers, nil
	default:
		return logger, NewRaw(nil), closers, nil
	}
}

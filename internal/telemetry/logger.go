package telemetry

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// InitLogger configures the default logger with optional file output.
// Console logs go to stderr so stdout stays reserved for benchmark results.
func InitLogger(debug bool, logFile string) {
	slog.SetDefault(NewLogger(debug, logFile, os.Stderr))
}

// NewLogger builds a JSON logger writing to console (if non-nil) and to
// logFile (if set). With neither, logs are discarded.
func NewLogger(debug bool, logFile string, console io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handlers []slog.Handler
	if console != nil {
		handlers = append(handlers, slog.NewJSONHandler(console, opts))
	}

	// Add file handler if requested
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			handlers = append(handlers, slog.NewJSONHandler(f, opts))
		} else {
			slog.Error("Failed to open log file", "path", logFile, "error", err)
		}
	}

	var handler slog.Handler
	switch len(handlers) {
	case 0:
		handler = slog.DiscardHandler
	case 1:
		handler = handlers[0]
	default:
		handler = &multiHandler{handlers: handlers}
	}

	return slog.New(handler)
}

type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, h := range m.handlers {
		if !h.Enabled(ctx, record.Level) {
			continue
		}
		if err := h.Handle(ctx, record.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		newHandlers[i] = h.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		newHandlers[i] = h.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}

// LogDebug logs a debug message.
func LogDebug(msg string, args ...any) {
	slog.Debug(msg, args...)
}

// LogInfo logs an info message.
func LogInfo(msg string, args ...any) {
	slog.Info(msg, args...)
}

// LogError logs an error message.
func LogError(msg string, err error, args ...any) {
	slog.Error(msg, append(args, "error", err)...)
}

// LogInfof logs an info message with formatting.
func LogInfof(format string, args ...any) {
	if slog.Default().Enabled(context.Background(), slog.LevelInfo) {
		slog.Info(fmt.Sprintf(format, args...))
	}
}

// SampleLogger logs every harness sample at debug level.
type SampleLogger struct {
	Logger *slog.Logger
}

func (l SampleLogger) OnSample(candidate string, round int, elapsed time.Duration) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("sample recorded", "candidate", candidate, "round", round, "elapsed", elapsed)
}

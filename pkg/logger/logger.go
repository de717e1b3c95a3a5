package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	globalLogger  *slog.Logger
	mu            sync.RWMutex
	currentFormat string
	currentOutput io.Writer
)

type Config struct {
	Format string // "text" or "json"
	Level  slog.Level
	Output io.Writer
}

type Fields map[string]interface{}

type contextKey int

const loggerKey contextKey = iota

func Init(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	initLogger(cfg)
}

// initLogger assumes the caller already holds the lock.
func initLogger(cfg Config) {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	if cfg.Format == "" {
		cfg.Format = "text"
	}

	opts := &slog.HandlerOptions{
		Level: cfg.Level,
	}

	currentFormat = cfg.Format
	currentOutput = cfg.Output

	globalLogger = slog.New(newHandler(cfg.Format, cfg.Output, opts))
}

func newHandler(format string, output io.Writer, opts *slog.HandlerOptions) slog.Handler {
	switch format {
	case "json":
		return slog.NewJSONHandler(output, opts)
	default:
		return slog.NewTextHandler(output, opts)
	}
}

func InitFromEnv(output io.Writer) {
	format := os.Getenv("LOG_FORMAT")
	if format == "" {
		format = "text"
	}

	levelStr := os.Getenv("LOG_LEVEL")
	level := ParseLevel(levelStr)

	Init(Config{
		Format: format,
		Level:  level,
		Output: output,
	})
}

func GetLogger() *slog.Logger {
	mu.RLock()
	if globalLogger != nil {
		defer mu.RUnlock()
		return globalLogger
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()

	// Another goroutine may have initialized in the meantime.
	if globalLogger == nil {
		initLogger(Config{})
	}
	return globalLogger
}

func SetLevel(level slog.Level) {
	mu.Lock()
	defer mu.Unlock()

	if globalLogger == nil {
		initLogger(Config{Level: level})
		return
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	if currentOutput == nil {
		currentOutput = os.Stderr
	}

	globalLogger = slog.New(newHandler(currentFormat, currentOutput, opts))
}

func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return GetLogger()
}

func WithFields(logger *slog.Logger, fields Fields) *slog.Logger {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return logger.With(args...)
}

func WithError(logger *slog.Logger, err error) *slog.Logger {
	if err == nil {
		return logger
	}
	return logger.With("error", err.Error())
}

func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

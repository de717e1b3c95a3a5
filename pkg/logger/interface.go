package logger

import "log/slog"

// Logger is the logging interface handed to components.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}

// slogLogger wraps a slog.Logger.
type slogLogger struct {
	logger *slog.Logger
}

// NewLogger creates a Logger backed by the given slog.Logger.
func NewLogger(l *slog.Logger) Logger {
	if l == nil {
		l = GetLogger()
	}
	return &slogLogger{logger: l}
}

func (l *slogLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *slogLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *slogLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *slogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}

// nopLogger discards everything.
type nopLogger struct{}

// NewNopLogger creates a logger that discards everything.
func NewNopLogger() Logger {
	return &nopLogger{}
}

func (n *nopLogger) Debug(msg string, args ...any) {}
func (n *nopLogger) Info(msg string, args ...any)  {}
func (n *nopLogger) Warn(msg string, args ...any)  {}
func (n *nopLogger) Error(msg string, args ...any) {}
func (n *nopLogger) With(args ...any) Logger       { return n }

// Package routelog defines the logging interface used by pathrouter components.
// Any structured logger with slog-style methods, including *slog.Logger itself,
// can be adapted to it using [WrapPlainLogger].
package routelog

// Logger is the logger interface accepted by pathrouter components.
// WithComponent returns a logger annotated with the name of the component using it,
// With returns a logger with additional key-value pairs attached to every record.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	WithComponent(string) Logger
	With(args ...any) Logger
}

// PlainLogger is the minimal interface of a leveled key-value logger, satisfied by *slog.Logger.
type PlainLogger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

const componentKey = "component"

// WrapPlainLogger adapts a [PlainLogger] into a [Logger].
// Components and attached arguments are passed as additional key-value pairs on each call.
func WrapPlainLogger(pl PlainLogger) Logger {
	return &plainLogger{pl: pl}
}

type plainLogger struct {
	pl   PlainLogger
	args []any
}

func (l *plainLogger) Debug(msg string, args ...any) {
	l.pl.Debug(msg, l.merge(args)...)
}

func (l *plainLogger) Info(msg string, args ...any) {
	l.pl.Info(msg, l.merge(args)...)
}

func (l *plainLogger) Warn(msg string, args ...any) {
	l.pl.Warn(msg, l.merge(args)...)
}

func (l *plainLogger) Error(msg string, args ...any) {
	l.pl.Error(msg, l.merge(args)...)
}

func (l *plainLogger) WithComponent(component string) Logger {
	return l.With(componentKey, component)
}

func (l *plainLogger) With(args ...any) Logger {
	return &plainLogger{pl: l.pl, args: l.merge(args)}
}

func (l *plainLogger) merge(args []any) []any {
	if len(l.args) == 0 {
		return args
	}

	merged := make([]any, 0, len(l.args)+len(args))
	merged = append(merged, l.args...)
	return append(merged, args...)
}

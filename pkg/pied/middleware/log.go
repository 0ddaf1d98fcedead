package middleware

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/ib-77/pied/pkg/pied"
)

// LogLevel represents the severity level for logging messages.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// Logger defines an interface for logging at different severity levels.
// *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// LogConfig holds configuration for the logging decorator.
type LogConfig struct {
	// Name identifies the stage in every record.
	Name string
	// Args are additional arguments to include in all log messages.
	Args []any
	// Level is the level of the completion record. Defaults to LogLevelDebug.
	Level LogLevel
	// Message is the completion message. Defaults to "PIED: Done".
	Message string
	// Disabled returns the stage undecorated.
	Disabled bool
}

func (c LogConfig) parse() LogConfig {
	c.Level = LogLevel(strings.ToLower(string(c.Level)))
	if c.Level == "" {
		c.Level = LogLevelDebug
	}
	if c.Message == "" {
		c.Message = "PIED: Done"
	}
	return c
}

func logFunc(level LogLevel, log Logger) func(msg string, args ...any) {
	switch level {
	case LogLevelDebug:
		return log.Debug
	case LogLevelWarn:
		return log.Warn
	case LogLevelError:
		return log.Error
	default:
		return log.Info
	}
}

type logged[I, O any] struct {
	stage  pied.Stage[I, O]
	config LogConfig
}

// Log decorates a stage with a record written after every call. The logger
// comes from the call context (see WithLogger), slog.Default() otherwise.
// Input and output pass through untouched.
func Log[I, O any](s pied.Stage[I, O], config LogConfig) pied.Stage[I, O] {
	config = config.parse()
	if config.Disabled {
		return s
	}
	return logged[I, O]{stage: s, config: config}
}

func (l logged[I, O]) Transform(ctx context.Context, in I) O {
	start := time.Now()
	out := l.stage.Transform(ctx, in)

	args := make([]any, 0, len(l.config.Args)+4)
	args = append(args, l.config.Args...)
	args = append(args, "stage", l.config.Name, "duration", time.Since(start))
	logFunc(l.config.Level, LoggerFrom(ctx))(l.config.Message, args...)

	return out
}

var _ Logger = (*slog.Logger)(nil)

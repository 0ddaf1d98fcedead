package middleware

import (
	"context"
	"log/slog"
)

type OptionKey string

const (
	LoggerOptionKey OptionKey = "logger_options"
)

type LoggerOptions struct {
	Logger Logger
}

func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, LoggerOptions{Logger: logger})
}

// LoggerFrom returns the logger stored by WithLogger or slog.Default()
func LoggerFrom(ctx context.Context) Logger {
	options, ok := ctx.Value(LoggerOptionKey).(LoggerOptions)
	if ok && options.Logger != nil {
		return options.Logger
	}
	return slog.Default()
}

package log

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type AttrOption func(l zerolog.Context) zerolog.Context

func Scope(s string) AttrOption {
	return func(l zerolog.Context) zerolog.Context {
		return l.Str("s", s)
	}
}

func Operation(op string) AttrOption {
	return func(l zerolog.Context) zerolog.Context {
		return l.Str("op", op)
	}
}

// Step attaches the index of a scenario step.
func Step(i int) AttrOption {
	return func(l zerolog.Context) zerolog.Context {
		return l.Int("step", i)
	}
}

// List attaches the name of the list a step operates on.
func List(name string) AttrOption {
	return func(l zerolog.Context) zerolog.Context {
		return l.Str("list", name)
	}
}

func WithAttrs(ctx context.Context, opts ...AttrOption) context.Context {
	l := zerolog.Ctx(ctx).With()
	for _, opt := range opts {
		l = opt(l)
	}
	return l.Logger().WithContext(ctx)
}

func Debugf(ctx context.Context, msg string, args ...any) {
	zerolog.Ctx(ctx).Debug().Timestamp().Msgf(msg, args...)
}

func Info(ctx context.Context, msg string) {
	zerolog.Ctx(ctx).Info().Timestamp().Msg(msg)
}

func Infof(ctx context.Context, msg string, args ...any) {
	zerolog.Ctx(ctx).Info().Timestamp().Msgf(msg, args...)
}

func Warn(ctx context.Context, msg string) {
	zerolog.Ctx(ctx).Warn().Timestamp().Msg(msg)
}

func Error(ctx context.Context, err error, msg string) {
	zerolog.Ctx(ctx).Error().Err(err).Timestamp().Msg(msg)
}

// New returns a logger writing to w. Without json the output goes through a
// console writer.
func New(w io.Writer, level zerolog.Level, json, noColor bool) *zerolog.Logger {
	if !json {
		out := w
		w = zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
			cw.Out = out
			cw.NoColor = noColor
			cw.TimeFormat = time.DateTime
		})
	}

	l := zerolog.New(w).Level(level)
	return &l
}

// InitGlobals builds a stderr logger and makes it the fallback for contexts
// without a logger.
func InitGlobals(level zerolog.Level, json, noColor bool) *zerolog.Logger {
	l := New(os.Stderr, level, json, noColor)
	zerolog.DefaultContextLogger = l
	return l
}

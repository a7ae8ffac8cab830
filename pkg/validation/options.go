package validation

import (
	"context"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/teamolhuang/BeingValidated/pkg/logger"
)

// Option configures a validator at wrap time. Options never change how steps
// are evaluated.
type Option func(*options)

type options struct {
	log  *slog.Logger
	name string
}

// WithLogger attaches a logger. Skips and failed checks are logged at debug
// level, faults at warn. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithName labels the chain's log records with a component name.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// stepLogger writes the per-step records of one chain.
type stepLogger struct {
	log *slog.Logger
}

func newStepLogger(opts []Option) stepLogger {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.log == nil {
		return stepLogger{log: logger.Discard()}
	}

	l := o.log.With(logger.Chain(uuid.NewString()))
	if o.name != "" {
		l = l.With(logger.Component(o.name))
	}
	return stepLogger{log: l}
}

func (l stepLogger) skipped(ctx context.Context, reason string, attrs ...slog.Attr) {
	l.log.LogAttrs(ctx, slog.LevelDebug, "validation step skipped",
		append(slices.Clip(attrs), logger.Reason(reason))...)
}

func (l stepLogger) failed(ctx context.Context, attrs ...slog.Attr) {
	l.log.LogAttrs(ctx, slog.LevelDebug, "validation check failed", attrs...)
}

// faulted records a fault. handled is false when the fault aborted the chain.
func (l stepLogger) faulted(ctx context.Context, err error, handled bool, attrs ...slog.Attr) {
	l.log.LogAttrs(ctx, slog.LevelWarn, "validation step faulted",
		append(slices.Clip(attrs), logger.Handled(handled), logger.Error(err))...)
}

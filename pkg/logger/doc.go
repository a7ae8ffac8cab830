// Package logger provides a context-aware wrapper around Go's slog package
// with functional options, attribute helpers for validation chains, and
// environment-driven configuration.
//
// The package exposes a single factory, New, that creates a *slog.Logger
// configured by Option functions. These options allow you to:
//
//   - Select an output format (text or json)
//   - Set the minimum log level
//   - Supply default slog.Attr values applied to every record
//   - Register ContextExtractor callbacks that inject attributes pulled from a
//     context value every time a record is handled.
//
// # Architecture
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the configured
// Format. When extractors are registered the handler is wrapped so they run
// for every record before it is written.
//
// Helper constructors in attr.go (Chain, Step, Element, Reason, Handled, Error)
// keep attribute names consistent between the validation package and anything
// that consumes its records.
//
// # Usage
//
//	import "github.com/teamolhuang/BeingValidated/pkg/logger"
//
//	log := logger.New(
//	    logger.WithDevelopment("signup"),
//	    logger.WithContextValue("request_id", ctxKeyRequestID),
//	)
//
//	v := validation.Wrap(form, true, validation.WithLogger(log))
//
// # Configuration
//
// Config maps LOG_LEVEL, LOG_FORMAT, APP_ENV and SERVICE_NAME. FromEnv loads it
// through the config package and FromConfig turns it into a logger. The
// environment picks a preset (WithDevelopment, WithStaging, WithProduction);
// explicit level and format override the preset.
//
// # Error Handling
//
// Error produces an attribute only when the supplied error is non-nil, so
//
//	log.Warn("validation step faulted", logger.Error(err))
//
// needs no nil check. FromConfig reports ErrInvalidLevel and ErrInvalidFormat;
// WithFormat panics with ErrInvalidFormat because it is meant for static setup.
package logger

package logger

import "errors"

var (
	// ErrInvalidLevel is returned when a configured level name cannot be parsed.
	ErrInvalidLevel = errors.New("logger: invalid log level")

	// ErrInvalidFormat is returned (or panicked with) for unknown output formats.
	ErrInvalidFormat = errors.New("logger: invalid log format")
)

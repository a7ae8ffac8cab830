package logger

import (
	"log/slog"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Chain records the validation chain identifier under the key "chain".
// If id is empty, it returns an empty Attr.
func Chain(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("chain", id)
}

// Step records the 1-based position of a step within its chain under the key "step".
func Step(n int) slog.Attr {
	return slog.Int("step", n)
}

// Element records the 0-based index of a sequence element under the key "element".
func Element(i int) slog.Attr {
	return slog.Int("element", i)
}

// Reason records why a step was skipped under the key "reason".
func Reason(reason string) slog.Attr {
	return slog.String("reason", reason)
}

// Handled records whether a fault was absorbed by a caller-supplied handler.
func Handled(handled bool) slog.Attr {
	return slog.Bool("handled", handled)
}

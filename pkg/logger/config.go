package logger

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/teamolhuang/BeingValidated/pkg/config"
)

// Config describes logger settings read from the environment.
// Empty Level and Format keep whatever the environment preset chose.
type Config struct {
	Level   string `env:"LOG_LEVEL"`
	Format  string `env:"LOG_FORMAT"`
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"SERVICE_NAME" envDefault:"validation"`
}

// FromConfig builds a logger from cfg. Extra options are applied last.
func FromConfig(cfg Config, opts ...Option) (*slog.Logger, error) {
	options := []Option{WithEnvironment(cfg.Env, cfg.Service)}

	if cfg.Level != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidLevel, cfg.Level, err)
		}
		options = append(options, WithLevel(level))
	}

	if cfg.Format != "" {
		format := Format(cfg.Format)
		if format != FormatJSON && format != FormatText {
			return nil, fmt.Errorf("%w %q: must be %q or %q", ErrInvalidFormat, cfg.Format, FormatJSON, FormatText)
		}
		options = append(options, WithFormat(format))
	}

	return New(append(options, opts...)...), nil
}

// FromEnv loads Config with the config package and builds a logger writing to w.
// A nil w keeps the default (stdout).
func FromEnv(w io.Writer, opts ...config.Option) (*slog.Logger, error) {
	cfg, err := config.Load[Config](opts...)
	if err != nil {
		return nil, err
	}
	return FromConfig(cfg, WithOutput(w))
}

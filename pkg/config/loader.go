package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Option configures a single Load call.
type Option func(*options)

type options struct {
	prefix   string
	vars     map[string]string
	envFiles []string
}

// WithPrefix prepends prefix to every `env` tag of the target struct.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithVars parses from the given variables instead of the process environment.
// A nil map is ignored.
func WithVars(vars map[string]string) Option {
	return func(o *options) {
		if vars != nil {
			o.vars = maps.Clone(vars)
		}
	}
}

// WithEnvFiles reads additional .env files. Values already present in the
// environment (or in WithVars) take precedence over values from the files,
// matching godotenv.Load semantics without mutating the process environment.
func WithEnvFiles(files ...string) Option {
	return func(o *options) {
		for _, f := range files {
			if f != "" {
				o.envFiles = append(o.envFiles, f)
			}
		}
	}
}

// Load parses environment variables into a new value of T based on its field tags.
//
// The default .env file in the working directory is loaded into the process
// environment once per process, if it exists.
//
// Example:
//
//	type LogConfig struct {
//		Level  string `env:"LOG_LEVEL" envDefault:"info"`
//		Format string `env:"LOG_FORMAT" envDefault:"json"`
//	}
//
//	cfg, err := config.Load[LogConfig]()
//	if err != nil {
//		// Handle error
//	}
func Load[T any](opts ...Option) (T, error) {
	defaultEnvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	var cfg T

	vars, err := o.environment()
	if err != nil {
		return cfg, err
	}

	if err := env.ParseWithOptions(&cfg, env.Options{
		Prefix:      o.prefix,
		Environment: vars,
	}); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}

	return cfg, nil
}

// MustLoad works like Load but panics if configuration loading fails.
// This is useful for configurations that are required for the application to start.
func MustLoad[T any](opts ...Option) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
	return cfg
}

// environment resolves the variable set to parse from.
// A nil result tells env to read the process environment itself.
func (o *options) environment() (map[string]string, error) {
	if len(o.envFiles) == 0 {
		return o.vars, nil
	}

	fromFiles, err := godotenv.Read(o.envFiles...)
	if err != nil {
		return nil, errors.Join(ErrLoadingEnvFile, err)
	}

	vars := o.vars
	if vars == nil {
		vars = processEnvironment()
	}
	for k, v := range fromFiles {
		if _, ok := vars[k]; !ok {
			vars[k] = v
		}
	}
	return vars, nil
}

func processEnvironment() map[string]string {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	return vars
}

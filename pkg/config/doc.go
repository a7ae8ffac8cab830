// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11` behind
// a single generic entry point:
//
//   - Parses the environment into any Go struct using `env` field tags.
//   - Optionally reads extra `.env` files without mutating the process
//     environment (WithEnvFiles). Real environment values take precedence.
//   - Accepts an explicit variable map (WithVars), which keeps tests free of
//     process-wide state.
//   - Supports a tag prefix (WithPrefix) so several components can share one
//     struct layout.
//
// The default `.env` file in the working directory, if present, is loaded into
// the process environment once per process before the first parse.
//
// # Usage
//
//	import "github.com/teamolhuang/BeingValidated/pkg/config"
//
//	type LogConfig struct {
//	    Level  string `env:"LOG_LEVEL" envDefault:"info"`
//	    Format string `env:"LOG_FORMAT" envDefault:"json"`
//	}
//
//	cfg, err := config.Load[LogConfig](config.WithEnvFiles("./config/.env"))
//	if err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// MustLoad is the panicking variant for configuration the process cannot
// start without.
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrLoadingEnvFile` – one of the requested .env files could not be read.
//
// # See Also
//
//   - https://github.com/joho/godotenv – .env file loader.
//   - https://github.com/caarlos0/env – environment parser.
package config

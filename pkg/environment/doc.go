// Package environment names the deployment environments (development,
// staging, production) that logging presets and configuration key off.
//
// The typed string Environment carries the canonical names. Parse accepts
// raw values as they usually appear in environment variables, including the
// short aliases "dev", "stage" and "prod", and falls back to Development for
// anything it does not recognise.
//
// # Usage
//
//	import "github.com/teamolhuang/BeingValidated/pkg/environment"
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	if env.IsProduction() {
//	    // production-specific behaviour
//	}
//
// # Error Handling
//
// Parse never fails. Missing or unknown values resolve to Development.
package environment

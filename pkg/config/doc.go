// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for parsing struct tags. Each config type is
// parsed once and cached for the life of the process.
//
// # Usage
//
//	type Config struct {
//		Server   httpserver.Config
//		Employee employee.ClientConfig
//		Env      string `env:"APP_ENV" envDefault:"development"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// A config that implements Validator is checked after parsing. A parse or
// validation failure is not cached, so the next Load tries again.
//
// Extra .env files can be applied before loading:
//
//	config.MustLoadEnv("deploy/.env.staging")
//
// # Errors
//
//   - ErrParsingConfig: env vars could not be parsed into the struct.
//   - ErrInvalidConfig: the struct's Validate method failed.
//   - ErrNilPointer: a nil pointer was passed to Load.
//
// Tests can call ResetCache or ForceReloadConfig after changing the
// environment.
package config

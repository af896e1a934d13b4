// Package config loads application configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file is loaded once per process, then any annotated struct can
// be populated through the generic Load helper:
//
//	type EmailConfig struct {
//		ServerToken string `env:"POSTMARK_SERVER_TOKEN"`
//		Sender      string `env:"ERIKA_SENDER_EMAIL"`
//	}
//
//	var cfg EmailConfig
//	config.MustLoad(&cfg)
//
// Nested structs with `envPrefix` tags are supported, which is how the
// per-brand settings (ERIKA_*, STILLAWAKE_*) are declared once and parsed
// twice with different prefixes.
//
// Errors can be inspected with errors.Is against ErrParsingConfig and
// ErrNilPointer.
package config

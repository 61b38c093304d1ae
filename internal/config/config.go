package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	DefaultPort        = "8000"
	DefaultFrontendURL = "http://localhost:3000"
	DefaultEnv         = "development"
	DefaultS3Region    = "auto"
)

// Config is built once at startup and shared read-only by every handler.
type Config struct {
	Env              string `koanf:"app_env" validate:"oneof=development production test"`
	Port             string `koanf:"port" validate:"numeric"`
	FrontendURL      string `koanf:"frontend_url" validate:"url"`
	CORSAllowOrigins string `koanf:"cors_allow_origins"`

	DatabaseURL  string `koanf:"database_url"`
	DatabaseName string `koanf:"database_name"`

	StripeSecretKey string `koanf:"stripe_secret_key"`

	S3Endpoint        string `koanf:"s3_endpoint" validate:"omitempty,url"`
	S3Region          string `koanf:"s3_region"`
	S3AccessKeyID     string `koanf:"s3_access_key_id"`
	S3SecretAccessKey string `koanf:"s3_secret_access_key"`

	ResendAPIKey       string `koanf:"resend_api_key"`
	EmailFromAddress   string `koanf:"email_from_address" validate:"omitempty,email"`
	ContactNotifyEmail string `koanf:"contact_notify_email" validate:"omitempty,email"`

	// Warnings lists invalid values that were replaced by their default.
	Warnings []string `koanf:"-"`
}

// fallbacks are the fields whose invalid values are replaced instead of
// stopping startup, keyed by struct field name.
var fallbacks = map[string]struct {
	envVar string
	reset  func(*Config)
}{
	"Env":         {"APP_ENV", func(c *Config) { c.Env = DefaultEnv }},
	"FrontendURL": {"FRONTEND_URL", func(c *Config) { c.FrontendURL = DefaultFrontendURL }},
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}
	return FromEnv()
}

// FromEnv maps environment variables onto Config, applies defaults and validates the result.
func FromEnv() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.validate(validator.New()); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate(v *validator.Validate) error {
	err := v.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("invalid config: %w", err)
	}

	var fatal []string
	for _, fe := range validationErrors {
		fallback, ok := fallbacks[fe.StructField()]
		if !ok {
			fatal = append(fatal, fe.Error())
			continue
		}
		fallback.reset(c)
		c.Warnings = append(c.Warnings, fmt.Sprintf("invalid %s %q, using default", fallback.envVar, fe.Value()))
	}
	if len(fatal) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(fatal, "; "))
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Env == "" {
		c.Env = DefaultEnv
	}
	if c.Port == "" {
		c.Port = DefaultPort
	}
	if c.FrontendURL == "" {
		c.FrontendURL = DefaultFrontendURL
	}
	c.FrontendURL = strings.TrimRight(c.FrontendURL, "/")
	if c.CORSAllowOrigins == "" {
		c.CORSAllowOrigins = "*"
	}
	if c.S3Region == "" {
		c.S3Region = DefaultS3Region
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) StripeConfigured() bool {
	return c.StripeSecretKey != ""
}

func (c *Config) NotifierConfigured() bool {
	return c.ResendAPIKey != "" && c.EmailFromAddress != "" && c.ContactNotifyEmail != ""
}

// SuccessURL is where the payer lands after a completed checkout when the client gave no URL.
func (c *Config) SuccessURL() string {
	return c.FrontendURL + "/?success=true"
}

func (c *Config) CancelURL() string {
	return c.FrontendURL + "/?canceled=true"
}

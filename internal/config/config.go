package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	ContentfulSpaceID     string `env:"CONTENTFUL_SPACE_ID,required" validate:"required"`
	ContentfulAccessToken string `env:"CONTENTFUL_ACCESS_TOKEN,required" validate:"required"`
	ContentfulEnvironment string `env:"CONTENTFUL_ENVIRONMENT" envDefault:"master" validate:"required"`
	ContentfulBaseURL     string `env:"CONTENTFUL_BASE_URL" envDefault:"https://cdn.contentful.com" validate:"required,url"`

	EmailProvider  string `env:"EMAIL_PROVIDER" envDefault:"resend" validate:"required,oneof=resend mailgun postmark"`
	EmailAPIKey    string `env:"EMAIL_API_KEY,required" validate:"required"`
	EmailFrom      string `env:"EMAIL_FROM" envDefault:"ryan@ryza.digital" validate:"required,email"`
	MailgunDomain  string `env:"MAILGUN_DOMAIN" validate:"required_if=EmailProvider mailgun"`
	ContactMailbox string `env:"CONTACT_MAILBOX" envDefault:"admin@igripps.com.au" validate:"required,email"`
	ContactBCC     string `env:"CONTACT_BCC" validate:"omitempty,email"`

	DesignStoreProvider string `env:"DESIGN_STORE_PROVIDER" envDefault:"memory" validate:"omitempty,oneof=memory redis"`
	RedisAddr           string `env:"REDIS_ADDR" envDefault:"localhost:6379" validate:"required_if=DesignStoreProvider redis"`
	RedisPassword       string `env:"REDIS_PASSWORD"`
	RedisDB             int    `env:"REDIS_DB" envDefault:"0"`

	Environment string     `env:"ENVIRONMENT" envDefault:"production" validate:"omitempty,oneof=development production"`
	LogLevel    slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	LogFormat   string     `env:"LOG_FORMAT" envDefault:"text" validate:"omitempty,oneof=text json"`
	Port        string     `env:"PORT" envDefault:"8080"`
}

var configValidator = validator.New()

func Load() (*Config, error) {
	var cfg Config

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if err := configValidator.Struct(c); err != nil {
		return err
	}

	if strings.TrimSpace(c.ContactBCC) != "" && strings.EqualFold(c.ContactBCC, c.ContactMailbox) {
		return fmt.Errorf("CONTACT_BCC must differ from CONTACT_MAILBOX")
	}

	return nil
}

// Development reports whether the service runs with development-mode
// diagnostics (full provider error detail in API responses).
func (c *Config) Development() bool {
	return strings.EqualFold(strings.TrimSpace(c.Environment), "development")
}

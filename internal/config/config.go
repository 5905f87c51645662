// internal/config/config.go
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// SMTPConfig holds the outbound mail relay settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Secure   bool // implicit TLS (port 465 style) instead of STARTTLS
	User     string
	Password string
}

// Config is the process-wide configuration. It is built once at startup
// from the environment and treated as read-only afterwards; everything
// that needs a value receives it through a constructor.
type Config struct {
	ListenPort int

	// Stripe keys are optional. When the secret key is absent the
	// payment endpoints answer "payments disabled" instead of crashing.
	StripeSecretKey      string
	StripePublishableKey string

	SMTP          SMTPConfig
	FromEmail     string
	OperatorEmail string

	StaticDir string
}

// Load reads configuration from the environment, with a .env file as an
// optional source. The only fatal conditions are structurally invalid
// values (non-numeric ports); missing credentials degrade features.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file loaded:", err)
	}

	port, err := parsePort("PORT", 3000)
	if err != nil {
		return nil, err
	}
	smtpPort, err := parsePort("SMTP_PORT", 587)
	if err != nil {
		return nil, err
	}

	return &Config{
		ListenPort:           port,
		StripeSecretKey:      os.Getenv("STRIPE_SECRET_KEY"),
		StripePublishableKey: os.Getenv("STRIPE_PUBLISHABLE_KEY"),
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", "smtp.ipa.net"),
			Port:     smtpPort,
			Secure:   os.Getenv("SMTP_SECURE") == "true",
			User:     os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASS"),
		},
		FromEmail:     getEnv("FROM_EMAIL", "OSWater@ipa.net"),
		OperatorEmail: getEnv("BILL_EMAIL", "OSWater@ipa.net"),
		StaticDir:     getEnv("STATIC_DIR", "web/static"),
	}, nil
}

// PaymentsEnabled reports whether processor credentials are configured.
func (c *Config) PaymentsEnabled() bool {
	return c.StripeSecretKey != ""
}

func parsePort(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	port, err := strconv.Atoi(raw)
	if err != nil || port < 1 || port > 65535 {
		return 0, fmt.Errorf("config: %s must be a valid port number, got %q", key, raw)
	}
	return port, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Carteira"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"carteira"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		// Shared secret with the identity provider that signs the tokens.
		JWTSecret string `envconfig:"JWT_SECRET"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
	}

	Stripe struct {
		SecretKey       string `envconfig:"STRIPE_SECRET_KEY"`
		PriceID         string `envconfig:"STRIPE_PRICE_ID"`
		SuccessURL      string `envconfig:"STRIPE_SUCCESS_URL" default:"http://localhost:3000/dashboard?success=true"`
		CancelURL       string `envconfig:"STRIPE_CANCEL_URL" default:"http://localhost:3000/settings"`
		PortalReturnURL string `envconfig:"STRIPE_PORTAL_RETURN_URL" default:"http://localhost:3000/settings"`
	}

	TUI struct {
		// Identity used by the terminal client, which talks to the database
		// directly and has no bearer token to present.
		UserID string `envconfig:"TUI_USER_ID"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

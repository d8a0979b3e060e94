package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Cash-Up Ledger"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"cashup"`
		SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		Secret     string        `envconfig:"AUTH_SECRET"`
		Issuer     string        `envconfig:"AUTH_ISSUER"`
		SessionTTL time.Duration `envconfig:"SESSION_TTL" default:"720h"`
	}

	Rates struct {
		// File is a YAML rate table. The built-in table is used when empty.
		File string `envconfig:"RATES_FILE"`
	}

	Notify struct {
		URL   string `envconfig:"NOTIFY_URL"`
		Token string `envconfig:"NOTIFY_TOKEN"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
	}

	TUI struct {
		// AccountID is the admin account the console acts as.
		AccountID string `envconfig:"TUI_ACCOUNT_ID"`
	}

	// AdminEmails receive statements and invoices and are promoted to ADMIN
	// on first sign-in.
	AdminEmails []string `envconfig:"ADMIN_EMAILS"`
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name, c.DB.SSLMode)
}

// Recipients returns the normalized admin email list.
func (c *Config) Recipients() []string {
	out := make([]string, 0, len(c.AdminEmails))

	for _, e := range c.AdminEmails {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			out = append(out, e)
		}
	}

	return out
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

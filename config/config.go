// config/config.go
package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"siteadmin/internal/models"
)

type Config struct {
	DBURL      string `envconfig:"DATABASE_URL"`
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME"`

	APIURL     string `envconfig:"API_URL"`
	ServerPort int    `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel   string `envconfig:"LOG_LEVEL"`

	MigrationsURL string `envconfig:"MIGRATIONS_URL" default:"file://internal/migrations"`

	PaginationMaxLength int `envconfig:"PAGINATION_MAX_LENGTH" default:"7"`
	PaginationPageSize  int `envconfig:"PAGINATION_PAGE_SIZE" default:"10"`

	RateLimitRPS   float64 `envconfig:"RATE_LIMIT_RPS" default:"20"`
	RateLimitBurst int     `envconfig:"RATE_LIMIT_BURST" default:"40"`
}

func LoadConfig() (*Config, error) {
	godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if cfg.PaginationMaxLength < 1 || cfg.PaginationMaxLength > models.MaxPageSize {
		return nil, fmt.Errorf("PAGINATION_MAX_LENGTH must be within [1, %d], got %d", models.MaxPageSize, cfg.PaginationMaxLength)
	}

	if cfg.DBURL == "" {
		cfg.DBURL = fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable", cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
		return &cfg, nil
	}

	parsedDBURL, err := url.Parse(cfg.DBURL)
	if err != nil {
		return nil, err
	}

	cfg.DBHost = parsedDBURL.Hostname()
	if port, err := strconv.Atoi(parsedDBURL.Port()); err == nil {
		cfg.DBPort = port
	}
	cfg.DBUser = parsedDBURL.User.Username()
	cfg.DBPassword, _ = parsedDBURL.User.Password()
	cfg.DBName = strings.TrimPrefix(parsedDBURL.Path, "/")

	return &cfg, nil
}

// Redacted returns a copy safe to log.
func (c Config) Redacted() Config {
	if c.DBPassword != "" {
		c.DBPassword = "***"
	}
	if u, err := url.Parse(c.DBURL); err == nil && u.User != nil {
		if _, ok := u.User.Password(); ok {
			u.User = url.UserPassword(u.User.Username(), "***")
			c.DBURL = u.String()
		}
	}
	return c
}

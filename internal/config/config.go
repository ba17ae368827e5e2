package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is read once at process start and passed to the components that need it
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DATABASE_HOST"`
		Port            string `yaml:"port" env:"DATABASE_PORT"`
		User            string `yaml:"user" env:"DATABASE_USER"`
		Password        string `yaml:"password" env:"DATABASE_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DATABASE_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DATABASE_SSLMODE"`
		MinConns        int    `yaml:"min_conns" env:"DATABASE_MIN_CONNS"`
		MaxConns        int    `yaml:"max_conns" env:"DATABASE_MAX_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DATABASE_CONN_MAX_LIFETIME"`
		QueryTimeout    string `yaml:"query_timeout" env:"DATABASE_QUERY_TIMEOUT"`
		AutoMigrate     bool   `yaml:"auto_migrate" env:"DATABASE_AUTO_MIGRATE"`
		MigrationsDir   string `yaml:"migrations_dir" env:"DATABASE_MIGRATIONS_DIR"`
	} `yaml:"database"`

	SMTP struct {
		Host      string `yaml:"host" env:"MAIL_SERVER"`
		Port      int    `yaml:"port" env:"MAIL_PORT"`
		Username  string `yaml:"username" env:"MAIL_USERNAME"`
		Password  string `yaml:"password" env:"MAIL_PASSWORD"`
		UseTLS    bool   `yaml:"use_tls" env:"MAIL_USE_TLS"`
		UseSSL    bool   `yaml:"use_ssl" env:"MAIL_USE_SSL"`
		FromName  string `yaml:"from_name" env:"MAIL_FROM_NAME"`
		FromEmail string `yaml:"from_email" env:"MAIL_FROM_EMAIL"`
		Timeout   string `yaml:"timeout" env:"MAIL_TIMEOUT"`
	} `yaml:"smtp"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS"`
	} `yaml:"cors"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from defaults, then the YAML file at configPath
// (if present), then a .env file (if present), then the process environment.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Variables already present in the environment win over .env entries.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func setDefaults(config *Config) {
	config.Server.Port = "5000"
	config.Server.Mode = "development"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.DBName = "ssis"
	config.Database.SSLMode = "disable"
	config.Database.MinConns = 1
	config.Database.MaxConns = 10
	config.Database.ConnMaxLifetime = "1h"
	config.Database.QueryTimeout = "30s"
	config.Database.AutoMigrate = true
	config.Database.MigrationsDir = "migrations"

	config.SMTP.Port = 2525
	config.SMTP.UseTLS = true
	config.SMTP.FromName = "Web SSIS"
	config.SMTP.FromEmail = "noreply@webssis.com"
	config.SMTP.Timeout = "10s"

	config.CORS.AllowedOrigins = []string{"*"}

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if config.Database.DBName == "" {
		return fmt.Errorf("database name is required")
	}
	if config.Database.MinConns < 1 {
		return fmt.Errorf("database min_conns must be at least 1")
	}
	if config.Database.MaxConns < config.Database.MinConns {
		return fmt.Errorf("database max_conns (%d) must not be below min_conns (%d)",
			config.Database.MaxConns, config.Database.MinConns)
	}

	for name, value := range map[string]string{
		"database conn_max_lifetime": config.Database.ConnMaxLifetime,
		"database query_timeout":     config.Database.QueryTimeout,
		"smtp timeout":               config.SMTP.Timeout,
	} {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}

	if config.SMTP.UseTLS && config.SMTP.UseSSL {
		return fmt.Errorf("smtp use_tls and use_ssl are mutually exclusive")
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     c.Database.Host + ":" + c.Database.Port,
		Path:     "/" + c.Database.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(sslMode),
	}
	return u.String()
}

// QueryTimeout returns the per-statement timeout; validated at load time
func (c *Config) QueryTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Database.QueryTimeout)
	return d
}

// ConnMaxLifetime returns the pooled connection lifetime
func (c *Config) ConnMaxLifetime() time.Duration {
	d, _ := time.ParseDuration(c.Database.ConnMaxLifetime)
	return d
}

// SMTPTimeout returns the dial and conversation timeout for the mail relay
func (c *Config) SMTPTimeout() time.Duration {
	d, _ := time.ParseDuration(c.SMTP.Timeout)
	return d
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort  string   `yaml:"server_port"`
	ServerHost  string   `yaml:"server_host"`
	CORSOrigins []string `yaml:"cors_origins"`

	// Catalog configuration
	CatalogURL     string        `yaml:"catalog_url"`
	CatalogTenant  string        `yaml:"catalog_tenant"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	FanOut         int           `yaml:"fan_out"`

	// Venue configuration
	PrimaryName            string `yaml:"primary_name"`
	PrimaryMenuTag         string `yaml:"primary_menu_tag"`
	PrimaryAnnouncementTag string `yaml:"primary_announcement_tag"`

	SecondaryName            string `yaml:"secondary_name"`
	SecondaryMenuTag         string `yaml:"secondary_menu_tag"`
	SecondaryAnnouncementTag string `yaml:"secondary_announcement_tag"`

	// Venue hour tables are wall-clock times in this zone
	Timezone string `yaml:"timezone"`
	LogLevel string `yaml:"log_level"`

	// Redis configuration, used by the rate limiter only
	RedisHost     string `yaml:"redis_host"`
	RedisPort     string `yaml:"redis_port"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
	RedisURL      string `yaml:"redis_url"`

	RateLimitWindow   time.Duration `yaml:"rate_limit_window"`
	RateLimitRequests int           `yaml:"rate_limit_requests"`
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	return &Config{
		ServerPort:  "8080",
		ServerHost:  "0.0.0.0",
		CORSOrigins: []string{"http://localhost:5173"},

		CatalogURL:     "https://widget.api.eagle.bigzpoon.com",
		CatalogTenant:  "uc-merced-the-pavilion",
		RequestTimeout: 7 * time.Second,
		FanOut:         4,

		PrimaryName:            "Pavilion",
		PrimaryMenuTag:         "pvl",
		PrimaryAnnouncementTag: "pav",

		SecondaryName:            "Yablokoff",
		SecondaryMenuTag:         "ywdc",
		SecondaryAnnouncementTag: "ywdc",

		Timezone: "America/Los_Angeles",
		LogLevel: "info",

		RedisHost: "localhost",
		RedisPort: "6379",

		RateLimitWindow:   time.Minute,
		RateLimitRequests: 30,
	}
}

// LoadConfig creates a new Config from defaults, the YAML file named by
// DINING_CONFIG (config.yaml when unset) and environment variables, in that
// order of precedence.
func LoadConfig() (*Config, error) {
	path := os.Getenv("DINING_CONFIG")
	if path == "" {
		path = "config.yaml"
	}
	return LoadFile(path)
}

// LoadFile is LoadConfig with an explicit file path. A missing file is not an error.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if GetEnvironment() == Production {
		loadProdSecrets(cfg)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Location returns the time zone venue hours are expressed in
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// Addr returns the listen address of the HTTP server
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

func applyEnvOverrides(cfg *Config) error {
	setString(&cfg.ServerPort, "SERVER_PORT")
	setString(&cfg.ServerHost, "SERVER_HOST")
	setString(&cfg.CatalogURL, "CATALOG_URL")
	setString(&cfg.CatalogTenant, "CATALOG_TENANT")
	setString(&cfg.PrimaryName, "PRIMARY_VENUE_NAME")
	setString(&cfg.PrimaryMenuTag, "PRIMARY_VENUE_TAG")
	setString(&cfg.PrimaryAnnouncementTag, "PRIMARY_ANNOUNCEMENT_TAG")
	setString(&cfg.SecondaryName, "SECONDARY_VENUE_NAME")
	setString(&cfg.SecondaryMenuTag, "SECONDARY_VENUE_TAG")
	setString(&cfg.SecondaryAnnouncementTag, "SECONDARY_ANNOUNCEMENT_TAG")
	setString(&cfg.Timezone, "TIMEZONE")
	setString(&cfg.LogLevel, "LOG_LEVEL")
	setString(&cfg.RedisHost, "REDIS_HOST")
	setString(&cfg.RedisPort, "REDIS_PORT")
	setString(&cfg.RedisPassword, "REDIS_PASSWORD")
	setString(&cfg.RedisURL, "REDIS_URL")

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = strings.Split(v, ",")
	}

	if err := setDuration(&cfg.RequestTimeout, "REQUEST_TIMEOUT"); err != nil {
		return err
	}
	if err := setDuration(&cfg.RateLimitWindow, "RATE_LIMIT_WINDOW"); err != nil {
		return err
	}
	if err := setInt(&cfg.FanOut, "FAN_OUT"); err != nil {
		return err
	}
	if err := setInt(&cfg.RedisDB, "REDIS_DB"); err != nil {
		return err
	}
	return setInt(&cfg.RateLimitRequests, "RATE_LIMIT_REQUESTS")
}

// loadProdSecrets fills sensitive values from Docker secrets when present
func loadProdSecrets(cfg *Config) {
	if v := readSecret("catalog_tenant"); v != "" {
		cfg.CatalogTenant = v
	}
	if v := readSecret("redis_password"); v != "" {
		cfg.RedisPassword = v
	}
	if v := readSecret("redis_url"); v != "" {
		cfg.RedisURL = v
	}
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return ValidationError{Field: key, Message: fmt.Sprintf("invalid duration %q", v)}
	}
	*dst = d
	return nil
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return ValidationError{Field: key, Message: fmt.Sprintf("invalid integer %q", v)}
	}
	*dst = n
	return nil
}

package config

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// requiredFields lists values that must be set explicitly per environment
var requiredFields = map[Environment][]string{
	Production: {"catalog_tenant", "timezone", "redis_url"},
	CI:         {"catalog_url"},
}

var logLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "dpanic": true, "panic": true, "fatal": true,
}

// ValidateConfig checks the configuration and reports every problem found
func ValidateConfig(cfg *Config) error {
	var errs []string
	add := func(field, msg string) {
		errs = append(errs, ValidationError{Field: field, Message: msg}.Error())
	}

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port <= 0 || port > 65535 {
		add("server_port", fmt.Sprintf("invalid port %q", cfg.ServerPort))
	}

	if u, err := url.Parse(cfg.CatalogURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		add("catalog_url", fmt.Sprintf("must be an absolute http(s) URL, got %q", cfg.CatalogURL))
	}
	if cfg.CatalogTenant == "" {
		add("catalog_tenant", "is required")
	}
	if cfg.RequestTimeout <= 0 {
		add("request_timeout", "must be positive")
	}
	if cfg.FanOut < 1 {
		add("fan_out", "must be at least 1")
	}

	for field, value := range map[string]string{
		"primary_name":               cfg.PrimaryName,
		"primary_menu_tag":           cfg.PrimaryMenuTag,
		"primary_announcement_tag":   cfg.PrimaryAnnouncementTag,
		"secondary_name":             cfg.SecondaryName,
		"secondary_menu_tag":         cfg.SecondaryMenuTag,
		"secondary_announcement_tag": cfg.SecondaryAnnouncementTag,
	} {
		if strings.TrimSpace(value) == "" {
			add(field, "is required")
		}
	}

	if _, err := cfg.Location(); err != nil {
		add("timezone", fmt.Sprintf("unknown time zone %q", cfg.Timezone))
	}
	if !logLevels[strings.ToLower(cfg.LogLevel)] {
		add("log_level", fmt.Sprintf("unknown level %q", cfg.LogLevel))
	}

	for _, origin := range cfg.CORSOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			add("cors_origins", fmt.Sprintf("origin %q needs an http(s) scheme", origin))
		}
	}

	if cfg.RateLimitWindow > 0 && cfg.RateLimitRequests < 1 {
		add("rate_limit_requests", "must be at least 1 when a window is set")
	}

	for _, field := range requiredFields[GetEnvironment()] {
		if fieldValue(cfg, field) == "" {
			add(field, "is required in "+string(GetEnvironment()))
		}
	}

	if len(errs) > 0 {
		// Sort for stable output; the venue map iterates randomly.
		sort.Strings(errs)
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errs, "\n"))
	}

	return nil
}

func fieldValue(cfg *Config, field string) string {
	switch field {
	case "catalog_tenant":
		return cfg.CatalogTenant
	case "catalog_url":
		return cfg.CatalogURL
	case "timezone":
		return cfg.Timezone
	case "redis_url":
		return cfg.RedisURL
	default:
		return ""
	}
}

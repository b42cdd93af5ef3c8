package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CI", "ENV", "DINING_ENV", "DINING_CONFIG", "SERVER_PORT", "CATALOG_URL", "CATALOG_TENANT",
		"REQUEST_TIMEOUT", "FAN_OUT", "TIMEZONE", "LOG_LEVEL", "REDIS_URL", "CORS_ORIGINS",
		"RATE_LIMIT_WINDOW", "RATE_LIMIT_REQUESTS", "PRIMARY_VENUE_TAG",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("DINING_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigWithDefaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "uc-merced-the-pavilion", cfg.CatalogTenant)
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 4, cfg.FanOut)
	assert.Equal(t, "pvl", cfg.PrimaryMenuTag)
	assert.Equal(t, "pav", cfg.PrimaryAnnouncementTag)
	assert.Equal(t, "ywdc", cfg.SecondaryMenuTag)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
}

func TestLoadConfigFromFile(t *testing.T) {
	isolate(t)
	t.Setenv("DINING_CONFIG", writeConfig(t, `
server_port: "9090"
catalog_url: http://catalog.internal
request_timeout: 2s
fan_out: 8
primary_name: Commons
log_level: debug
cors_origins:
  - https://a.example
  - https://b.example
`))

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "http://catalog.internal", cfg.CatalogURL)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 8, cfg.FanOut)
	assert.Equal(t, "Commons", cfg.PrimaryName)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	// untouched keys keep their defaults
	assert.Equal(t, "Yablokoff", cfg.SecondaryName)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	isolate(t)
	t.Setenv("DINING_CONFIG", writeConfig(t, "fan_out: 8\nserver_port: \"9090\"\n"))
	t.Setenv("FAN_OUT", "2")
	t.Setenv("REQUEST_TIMEOUT", "500ms")
	t.Setenv("CORS_ORIGINS", "https://x.example,https://y.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.FanOut)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, 500*time.Millisecond, cfg.RequestTimeout)
	assert.Equal(t, []string{"https://x.example", "https://y.example"}, cfg.CORSOrigins)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"bad duration", map[string]string{"REQUEST_TIMEOUT": "soon"}, "REQUEST_TIMEOUT"},
		{"bad integer", map[string]string{"FAN_OUT": "many"}, "FAN_OUT"},
		{"zero fan out", map[string]string{"FAN_OUT": "0"}, "fan_out"},
		{"relative url", map[string]string{"CATALOG_URL": "/api"}, "catalog_url"},
		{"bad port", map[string]string{"SERVER_PORT": "http"}, "server_port"},
		{"bad zone", map[string]string{"TIMEZONE": "Mars/Olympus"}, "timezone"},
		{"bad level", map[string]string{"LOG_LEVEL": "chatty"}, "log_level"},
		{"bare origin", map[string]string{"CORS_ORIGINS": "localhost:5173"}, "cors_origins"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	isolate(t)
	t.Setenv("DINING_CONFIG", writeConfig(t, "fan_out: [1, 2\n"))

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestProductionRequiresRedisAndSecrets(t *testing.T) {
	isolate(t)
	t.Setenv("DINING_ENV", "production")
	t.Setenv("SECRETS_DIR", t.TempDir())

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis_url")

	secrets := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(secrets, "redis_url"), []byte("redis://cache:6379/0\n"), 0o600))
	t.Setenv("SECRETS_DIR", secrets)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "redis://cache:6379/0", cfg.RedisURL)
}

func TestGetEnvironment(t *testing.T) {
	isolate(t)
	assert.Equal(t, Development, GetEnvironment())

	t.Setenv("ENV", "test")
	assert.Equal(t, Test, GetEnvironment())

	t.Setenv("DINING_ENV", "prod")
	assert.Equal(t, Production, GetEnvironment())
	assert.True(t, IsProduction())
	assert.Equal(t, "release", GetEnvironment().GinMode())

	t.Setenv("CI", "true")
	assert.Equal(t, CI, GetEnvironment())
	assert.Equal(t, "test", GetEnvironment().GinMode())
}

func TestLocation(t *testing.T) {
	cfg := Default()
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Los_Angeles", loc.String())

	cfg.Timezone = "local"
	loc, err = cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}

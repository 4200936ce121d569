package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/i474232898/weather-dashboard/internal/weather/providers"
)

// DemoClientKey is the last-resort key for client-side commands when no key
// is configured at all.
const DemoClientKey = "demo-key"

// Viper keys. Each maps to the upper-case, underscore-separated env var.
const (
	KeyAPIKey          = "visual-crossing-api-key"
	KeyClientAPIKey    = "next-public-visual-crossing-api-key"
	KeyBaseURL         = "visual-crossing-base-url"
	KeyPort            = "port"
	KeyEnvironment     = "environment"
	KeyNodeEnv         = "node-env"
	KeyProviderTimeout = "provider-timeout"
	KeyProbeInterval   = "provider-probe-interval"
	KeyProbeLocation   = "provider-probe-location"
	KeyPrefsDB         = "prefs-db"
	KeyLogLevel        = "log-level"
	KeyLogFormat       = "log-format"
)

type AppConfig struct {
	// APIKey is the server-side provider key required by the weather endpoints.
	APIKey string
	// ClientAPIKey is used by client-side commands such as the dashboard.
	ClientAPIKey string
	BaseURL      string

	Port        string
	Environment string

	// ProviderTimeout bounds every outbound provider call.
	ProviderTimeout time.Duration

	// ProbeInterval controls the provider probe; 0 disables it.
	ProbeInterval time.Duration
	ProbeLocation string

	PrefsDB   string
	LogLevel  string
	LogFormat string
}

// LoadDotEnv loads a .env file from the working directory if present.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}
}

// SetDefaults registers defaults and env binding on v.
func SetDefaults(v *viper.Viper) {
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyBaseURL, providers.DefaultVisualCrossingURL)
	v.SetDefault(KeyPort, "8080")
	v.SetDefault(KeyProviderTimeout, "15s")
	v.SetDefault(KeyProbeInterval, "0")
	v.SetDefault(KeyProbeLocation, "Lagos")
	v.SetDefault(KeyPrefsDB, defaultPrefsDB())
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
}

// Load reads configuration from v, which should have had SetDefaults
// applied and any flags bound.
func Load(v *viper.Viper) (*AppConfig, error) {
	cfg := &AppConfig{
		APIKey:        strings.TrimSpace(v.GetString(KeyAPIKey)),
		BaseURL:       v.GetString(KeyBaseURL),
		Port:          v.GetString(KeyPort),
		ProbeLocation: v.GetString(KeyProbeLocation),
		PrefsDB:       v.GetString(KeyPrefsDB),
		LogLevel:      strings.ToLower(v.GetString(KeyLogLevel)),
		LogFormat:     strings.ToLower(v.GetString(KeyLogFormat)),
	}

	cfg.ClientAPIKey = firstNonEmpty(strings.TrimSpace(v.GetString(KeyClientAPIKey)), cfg.APIKey, DemoClientKey)
	cfg.Environment = firstNonEmpty(v.GetString(KeyEnvironment), v.GetString(KeyNodeEnv), "development")

	timeout, err := time.ParseDuration(v.GetString(KeyProviderTimeout))
	if err != nil {
		return nil, fmt.Errorf("invalid PROVIDER_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid PROVIDER_TIMEOUT: must be positive")
	}
	cfg.ProviderTimeout = timeout

	interval, err := time.ParseDuration(v.GetString(KeyProbeInterval))
	if err != nil {
		return nil, fmt.Errorf("invalid PROVIDER_PROBE_INTERVAL: %w", err)
	}
	cfg.ProbeInterval = interval

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: must be text or json", cfg.LogFormat)
	}

	return cfg, nil
}

// APIKeyConfigured reports whether the server-side key is set.
func (c *AppConfig) APIKeyConfigured() bool {
	return c.APIKey != ""
}

func defaultPrefsDB() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "prefs.db")
	}
	return filepath.Join(dir, "weather-dashboard", "prefs.db")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/i474232898/weather-dashboard/internal/config"
	"github.com/i474232898/weather-dashboard/internal/preferences"
	"github.com/i474232898/weather-dashboard/internal/regions"
	"github.com/i474232898/weather-dashboard/internal/store"
	"github.com/i474232898/weather-dashboard/internal/weather"
	"github.com/i474232898/weather-dashboard/internal/weather/providers"
)

// newService wires the Visual Crossing client, authenticated with apiKey,
// behind a weather.Service.
func newService(cfg *config.AppConfig, apiKey string) *weather.Service {
	httpClient := &http.Client{
		Timeout: cfg.ProviderTimeout,
	}
	provider := providers.NewVisualCrossing(httpClient, apiKey, cfg.BaseURL)
	return weather.NewService(regions.Default(), provider)
}

// openPreferences opens the preference store. When the database cannot be
// opened the manager runs without a backing store.
func openPreferences(cfg *config.AppConfig) (*preferences.Manager, func()) {
	kv, err := store.OpenSQLite(cfg.PrefsDB)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.PrefsDB).Msg("preferences unavailable; continuing without persistence")
		return preferences.NewManager(nil), func() {}
	}
	return preferences.NewManager(kv), func() {
		if err := kv.Close(); err != nil {
			log.Warn().Err(err).Msg("closing preferences store")
		}
	}
}

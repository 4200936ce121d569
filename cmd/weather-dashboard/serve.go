package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	httpapi "github.com/i474232898/weather-dashboard/internal/api/http"
	"github.com/i474232898/weather-dashboard/internal/config"
	"github.com/i474232898/weather-dashboard/internal/scheduler"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the weather proxy HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().String(config.KeyPort, "8080", "Port to listen on")
	cmd.Flags().Duration(config.KeyProbeInterval, 0, "Provider probe interval (0 disables)")
	_ = viper.BindPFlag(config.KeyPort, cmd.Flags().Lookup(config.KeyPort))
	_ = viper.BindPFlag(config.KeyProbeInterval, cmd.Flags().Lookup(config.KeyProbeInterval))
	return cmd
}

func serve(parent context.Context, cfg *config.AppConfig) error {
	if !cfg.APIKeyConfigured() {
		log.Warn().Msg("VISUAL_CROSSING_API_KEY is not set; weather endpoints will answer 500")
	}

	service := newService(cfg, cfg.APIKey)

	sched := scheduler.New(service, cfg.ProbeLocation, cfg.ProbeInterval, cfg.ProviderTimeout)
	if err := sched.Start(); err != nil {
		return err
	}
	defer sched.Stop()

	app := httpapi.NewApp(httpapi.Deps{
		Service:          service,
		APIKeyConfigured: cfg.APIKeyConfigured(),
		Environment:      cfg.Environment,
		StartedAt:        time.Now(),
		Probe:            sched,
	})

	errc := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("environment", cfg.Environment).Msg("listening")
		errc <- app.Listen(":" + cfg.Port)
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
		return err
	}
	return nil
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/i474232898/weather-dashboard/internal/config"
)

func initLogger() error {
	// default is text
	var w io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}
	switch format := viper.GetString(config.KeyLogFormat); format {
	case "", "text":
	case "json":
		w = os.Stderr
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	log.Logger = log.Output(w)

	level, err := zerolog.ParseLevel(viper.GetString(config.KeyLogLevel))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	return nil
}

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/i474232898/weather-dashboard/internal/config"
)

var rootCmd = &cobra.Command{
	Use:          "weather-dashboard",
	Short:        "weather-dashboard serves and shows weather for Nigerian states and beyond",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// reinitialize the logger now that flags are parsed
		return initLogger()
	},
}

func main() {
	config.LoadDotEnv()

	rootCmd.PersistentFlags().String(config.KeyLogLevel, "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String(config.KeyLogFormat, "text", "Log format (text, json)")
	rootCmd.PersistentFlags().String(config.KeyPrefsDB, "", "Path to the preferences database (\":memory:\" for none on disk)")

	config.SetDefaults(viper.GetViper())
	cobra.CheckErr(viper.BindPFlags(rootCmd.PersistentFlags()))
	cobra.CheckErr(initLogger())

	rootCmd.AddCommand(
		newServeCmd(),
		newWeatherCmd(),
		newStatesCmd(),
		newPrefsCmd(),
		newDashboardCmd(),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.AppConfig, error) {
	return config.Load(viper.GetViper())
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

func newWeatherCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weather",
		Short: "Fetch weather for a location",
	}

	var (
		units  string
		days   int
		asJSON bool
	)

	current := &cobra.Command{
		Use:   "current <location>",
		Short: "Show current conditions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ug, err := weather.ParseUnitGroup(units)
			if err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			e, err := newService(cfg, cfg.APIKey).Current(cmd.Context(), args[0], ug)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), e)
			}
			printCurrent(cmd.OutOrStdout(), e, ug)
			return nil
		},
	}

	forecast := &cobra.Command{
		Use:   "forecast <location>",
		Short: "Show a daily forecast",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ug, err := weather.ParseUnitGroup(units)
			if err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			e, err := newService(cfg, cfg.APIKey).Forecast(cmd.Context(), args[0], days, ug)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), e)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, locationLine(e.Location))
			printDays(out, e.Snapshot.Days, ug)
			return nil
		},
	}
	forecast.Flags().IntVar(&days, "days", weather.DefaultForecastDays, "Number of days (1-15)")

	for _, c := range []*cobra.Command{current, forecast} {
		c.Flags().StringVar(&units, "units", "metric", "Unit group (metric, us, uk, base)")
		c.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	}

	cmd.AddCommand(current, forecast)
	return cmd
}

package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/i474232898/weather-dashboard/internal/regions"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

func newStatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "states",
		Short: "Browse the Nigerian states table",
	}

	var withWeather bool
	popular := &cobra.Command{
		Use:   "popular",
		Short: "List popular states",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !withWeather {
				for _, r := range regions.Default().Popular() {
					fmt.Fprintf(out, "%-26s %-14s %s\n", r.Name, r.Capital, r.Group)
				}
				return nil
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cfg.APIKeyConfigured() {
				return weather.ErrMissingAPIKey
			}
			started := time.Now()
			for _, ps := range newService(cfg, cfg.APIKey).PopularWithWeather(cmd.Context()) {
				if ps.CurrentWeather == nil {
					fmt.Fprintf(out, "%-26s %s\n", ps.Name, ps.WeatherError)
					continue
				}
				cw := ps.CurrentWeather
				fmt.Fprintf(out, "%-26s %5s°C  %-20s wind %s %s\n",
					ps.Name,
					humanize.FormatFloat("#.#", cw.Temperature),
					cw.Conditions,
					humanize.FormatFloat("#.#", cw.WindSpeed),
					weather.WindDirection(cw.WindDirection))
			}
			fmt.Fprintf(out, "updated %s\n", humanize.Time(started))
			return nil
		},
	}
	popular.Flags().BoolVar(&withWeather, "with-weather", false, "Include current weather for each state")

	regionsCmd := &cobra.Command{
		Use:   "regions [zone]",
		Short: "List geopolitical zones, or the states of one zone",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx := regions.Default()
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, g := range idx.Groups() {
					fmt.Fprintf(out, "%-14s %d states\n", g, len(idx.ByGroup(g)))
				}
				return nil
			}
			states := idx.ByGroup(args[0])
			if len(states) == 0 {
				return fmt.Errorf("region not found: %s", args[0])
			}
			for _, r := range states {
				fmt.Fprintf(out, "%-26s %s\n", r.Name, r.Capital)
			}
			return nil
		},
	}

	var limit int
	search := &cobra.Command{
		Use:   "search <query>",
		Short: "Search states by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, total, err := regions.Default().Search(args[0], limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range results {
				fmt.Fprintf(out, "%-26s %-14s %s\n", r.Name, r.Capital, r.Group)
			}
			fmt.Fprintf(out, "showing %d of %s\n", len(results), humanize.Comma(int64(total)))
			return nil
		},
	}
	search.Flags().IntVar(&limit, "limit", 10, "Maximum number of results")

	cmd.AddCommand(popular, regionsCmd, search)
	return cmd
}

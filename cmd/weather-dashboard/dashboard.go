package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/i474232898/weather-dashboard/internal/dashboard"
	"github.com/i474232898/weather-dashboard/internal/preferences"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

func newDashboardCmd() *cobra.Command {
	var location string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the personal weather dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			mgr, closeFn := openPreferences(cfg)
			defer closeFn()

			user, _ := mgr.Load(cmd.Context())
			units := weather.UnitsMetric
			if user != nil && user.Preferences != nil && user.Preferences.Units == preferences.UnitsImperial {
				units = weather.UnitsUS
			}
			if location == "" && user != nil {
				location = user.Location
			}

			view := dashboard.NewView(newService(cfg, cfg.ClientAPIKey), units, location)
			out := cmd.OutOrStdout()

			if user != nil {
				fmt.Fprintln(out, dashboard.Greeting(time.Now(), user.Name))
				fmt.Fprintf(out, "Here's your weather for %s\n", view.State().Location)
				fmt.Fprintln(out, time.Now().Format("Monday, January 2, 2006"))
				fmt.Fprintln(out)
			}

			st, err := view.Reload(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s: %w", st.Error, err)
			}

			printCurrent(out, *st.Data, units)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Next 7 days")
			printDays(out, st.Data.Snapshot.Days, units)
			return nil
		},
	}
	cmd.Flags().StringVar(&location, "location", "", "Location to show instead of the stored one")
	return cmd
}

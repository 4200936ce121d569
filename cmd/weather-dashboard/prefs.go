package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/i474232898/weather-dashboard/internal/preferences"
)

func newPrefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Manage the stored user preferences",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the stored preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, closeFn, err := preferencesFromConfig()
			if err != nil {
				return err
			}
			defer closeFn()

			p, ok := mgr.Load(cmd.Context())
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "no preferences stored; run `weather-dashboard prefs onboard`")
				return nil
			}
			return printJSON(cmd.OutOrStdout(), p)
		},
	}

	onboard := &cobra.Command{
		Use:   "onboard <name> <location>",
		Short: "Complete onboarding with a name and home location",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, closeFn, err := preferencesFromConfig()
			if err != nil {
				return err
			}
			defer closeFn()

			if err := mgr.CompleteOnboarding(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s! Showing weather for %s.\n", args[0], args[1])
			return nil
		},
	}

	var (
		name, location, units, theme string
	)
	set := &cobra.Command{
		Use:   "set",
		Short: "Update individual preference fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, closeFn, err := preferencesFromConfig()
			if err != nil {
				return err
			}
			defer closeFn()

			var patch preferences.Patch
			flags := cmd.Flags()
			if flags.Changed("name") {
				patch.Name = &name
			}
			if flags.Changed("location") {
				patch.Location = &location
			}
			if flags.Changed("units") || flags.Changed("theme") {
				current, ok := mgr.Load(cmd.Context())
				s := preferences.Settings{Units: preferences.UnitsMetric, Theme: preferences.ThemeDark}
				if ok && current.Preferences != nil {
					s = *current.Preferences
				}
				if flags.Changed("units") {
					s.Units = units
				}
				if flags.Changed("theme") {
					s.Theme = theme
				}
				patch.Preferences = &s
			}

			p, ok, err := mgr.Update(cmd.Context(), patch)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "no preferences stored; run `weather-dashboard prefs onboard` first")
				return nil
			}
			return printJSON(cmd.OutOrStdout(), p)
		},
	}
	set.Flags().StringVar(&name, "name", "", "Display name")
	set.Flags().StringVar(&location, "location", "", "Home location")
	set.Flags().StringVar(&units, "units", "", "Units (metric, imperial)")
	set.Flags().StringVar(&theme, "theme", "", "Theme (light, dark)")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, closeFn, err := preferencesFromConfig()
			if err != nil {
				return err
			}
			defer closeFn()
			return mgr.Clear(cmd.Context())
		},
	}

	cmd.AddCommand(show, onboard, set, clearCmd)
	return cmd
}

func preferencesFromConfig() (*preferences.Manager, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	mgr, closeFn := openPreferences(cfg)
	return mgr, closeFn, nil
}

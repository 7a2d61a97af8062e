package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/i474232898/weather-forecast/internal/weather"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Fetch and store a new forecast for the saved location",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd.Context())
		if err != nil {
			return err
		}
		defer d.Close()

		f, err := d.service.Refresh(cmd.Context())
		if err != nil {
			return err
		}
		printSummary(cmd.OutOrStdout(), f, d.service)
		return nil
	},
}

var showFlags struct {
	JSON bool
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored forecast",
	Example: `  weather-forecast show
  weather-forecast show --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd.Context())
		if err != nil {
			return err
		}
		defer d.Close()

		f, err := d.service.Forecast()
		if err != nil {
			return fmt.Errorf("%w: run 'weather-forecast refresh' first", err)
		}
		if showFlags.JSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(f)
		}
		printSummary(cmd.OutOrStdout(), f, d.service)
		return nil
	},
}

var unitCmd = &cobra.Command{
	Use:       "unit [CELSIUS|FAHRENHEIT]",
	Short:     "Show or set the temperature unit",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(weather.Celsius), string(weather.Fahrenheit)},
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd.Context())
		if err != nil {
			return err
		}
		defer d.Close()

		if len(args) == 0 {
			s, err := d.service.Settings(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.Unit)
			return nil
		}
		unit, err := weather.ParseUnit(args[0])
		if err != nil {
			return err
		}
		if err := d.service.SetUnit(cmd.Context(), unit); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Temperature unit set to %s\n", unit)
		return nil
	},
}

var themeCmd = &cobra.Command{
	Use:       "theme [LIGHT|DARK]",
	Short:     "Show or set the theme preference",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(weather.ThemeLight), string(weather.ThemeDark)},
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd.Context())
		if err != nil {
			return err
		}
		defer d.Close()

		if len(args) == 0 {
			s, err := d.service.Settings(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.Theme)
			return nil
		}
		theme, err := weather.ParseTheme(args[0])
		if err != nil {
			return err
		}
		if err := d.service.SetTheme(cmd.Context(), theme); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", theme)
		return nil
	},
}

var locationCmd = &cobra.Command{
	Use:   "location [LAT,LON]",
	Short: "Show or set the location used for refreshes",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd.Context())
		if err != nil {
			return err
		}
		defer d.Close()

		if len(args) == 0 {
			s, err := d.service.Settings(cmd.Context())
			if err != nil {
				return err
			}
			if s.Location == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No location saved.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.Location)
			return nil
		}
		loc, err := weather.ParseLocation(args[0])
		if err != nil {
			return err
		}
		if err := d.service.SetLocation(cmd.Context(), loc); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Location set to %s\n", loc)
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showFlags.JSON, "json", false, "print the full forecast tree as JSON")
}

func printSummary(w io.Writer, f *weather.Forecast, svc *weather.Service) {
	header := f.City
	if f.Region != "" && f.Region != f.City {
		header += ", " + f.Region
	}
	if f.Country != "" {
		header += ", " + f.Country
	}
	fmt.Fprintln(w, header)
	if f.TimeZone != "" {
		local := f.LocalTime
		if zone, err := time.LoadLocation(f.TimeZone); err == nil {
			local = local.In(zone)
		}
		fmt.Fprintf(w, "%s (%s), local time %s\n", f.Coordinates, f.TimeZone, local.Format("2006-01-02 15:04"))
	}

	if f.Current != nil {
		fmt.Fprintf(w, "Now: %s (feels like %s), %s, humidity %d%%\n",
			f.Current.Temperature, f.Current.FeelsLike, f.Current.Condition.Text, f.Current.HumidityPercent)
	}

	fmt.Fprintln(w, "\nNext 24 hours:")
	for _, h := range f.Next24Hours {
		fmt.Fprintf(w, "  %s  %-8s %3d%%  %s\n", h.Label(svc.TimeZone()), h.Temperature, h.RainChancePercent, h.Condition.Text)
	}

	fmt.Fprintln(w, "\nDays:")
	for _, d := range f.Days {
		fmt.Fprintf(w, "  %s %-9s %8s / %-8s %3d%%  %s  (sun %s - %s)\n",
			d.DateLabel(), d.Weekday, d.MinTemperature, d.MaxTemperature, d.RainChancePercent, d.Condition.Text, d.Sunrise, d.Sunset)
	}
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func tempUnit(units weather.UnitGroup) string {
	switch units {
	case weather.UnitsUS:
		return "°F"
	case weather.UnitsBase:
		return "K"
	default:
		return "°C"
	}
}

func speedUnit(units weather.UnitGroup) string {
	switch units {
	case weather.UnitsUS, weather.UnitsUK:
		return "mph"
	case weather.UnitsBase:
		return "m/s"
	default:
		return "km/h"
	}
}

func locationLine(info weather.LocationInfo) string {
	var b strings.Builder
	b.WriteString(info.Name)
	if info.Capital != "" {
		fmt.Fprintf(&b, " (capital %s, %s)", info.Capital, info.Region)
	}
	return b.String()
}

func printCurrent(w io.Writer, e weather.Enriched, units weather.UnitGroup) {
	cc := e.Snapshot.CurrentConditions
	if cc == nil {
		fmt.Fprintln(w, "No current conditions available")
		return
	}
	d := weather.Derive(*cc)
	t := tempUnit(units)

	fmt.Fprintln(w, locationLine(e.Location))
	fmt.Fprintf(w, "  %s, %s%s (feels like %s%s)\n", cc.Conditions, humanize.FormatFloat("#.#", cc.Temp), t, humanize.FormatFloat("#.#", cc.FeelsLike), t)
	fmt.Fprintf(w, "  Humidity %s%%, wind %s %s %s, pressure %s\n",
		humanize.FormatFloat("#,###.", cc.Humidity),
		humanize.FormatFloat("#.#", cc.WindSpeed), speedUnit(units), d.Compass,
		humanize.FormatFloat("#,###.#", cc.Pressure))
	fmt.Fprintf(w, "  UV %s (%s), air quality %s\n", humanize.FormatFloat("#.#", cc.UVIndex), d.UVLevel.Label, d.AirQuality.Label)
	if cc.Sunrise != "" && cc.Sunset != "" {
		fmt.Fprintf(w, "  Sunrise %s, sunset %s\n", cc.Sunrise, cc.Sunset)
	}
}

func printDays(w io.Writer, days []weather.Day, units weather.UnitGroup) {
	t := tempUnit(units)
	for _, d := range days {
		label := d.Datetime
		if ts, err := time.Parse("2006-01-02", d.Datetime); err == nil {
			label = ts.Format("Mon Jan 2")
		}
		fmt.Fprintf(w, "  %-10s %5s%s / %5s%s  %3s%% rain  %s\n",
			label,
			humanize.FormatFloat("#.#", d.TempMax), t,
			humanize.FormatFloat("#.#", d.TempMin), t,
			humanize.FormatFloat("#,###.", d.PrecipProb),
			d.Conditions.Conditions)
	}
}

package weather

import (
	"slices"
	"strings"
)

const (
	MinDaySpan = 1
	MaxDaySpan = 15

	// DefaultForecastDays is used when a forecast request names no span.
	DefaultForecastDays = 7
)

// UnitGroup selects the provider's unit system.
type UnitGroup string

const (
	UnitsMetric UnitGroup = "metric"
	UnitsUS     UnitGroup = "us"
	UnitsUK     UnitGroup = "uk"
	UnitsBase   UnitGroup = "base"
)

// ParseUnitGroup maps user input onto a UnitGroup. Empty input means metric
// and "imperial" is accepted as the US system.
func ParseUnitGroup(s string) (UnitGroup, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "metric":
		return UnitsMetric, nil
	case "us", "imperial":
		return UnitsUS, nil
	case "uk":
		return UnitsUK, nil
	case "base":
		return UnitsBase, nil
	}
	return "", NewInputError("unitGroup must be one of us, uk, metric, base")
}

// Section is one block of data the provider can return.
type Section string

const (
	SectionCurrent Section = "current"
	SectionDaily   Section = "daily"
	SectionHourly  Section = "hourly"
	SectionAlerts  Section = "alerts"
)

// providerInclude maps sections to the provider's include names.
var providerInclude = map[Section]string{
	SectionCurrent: "current",
	SectionDaily:   "days",
	SectionHourly:  "hours",
	SectionAlerts:  "alerts",
}

// Include returns the provider's name for s.
func (s Section) Include() string {
	return providerInclude[s]
}

// Options controls a single provider call.
type Options struct {
	DaySpan  int
	Units    UnitGroup
	Sections []Section
}

// Validate rejects out-of-range spans, unknown unit groups and unknown or
// missing sections. It never touches the network.
func (o Options) Validate() error {
	if o.DaySpan < MinDaySpan || o.DaySpan > MaxDaySpan {
		return ErrDaySpan
	}
	switch o.Units {
	case UnitsMetric, UnitsUS, UnitsUK, UnitsBase:
	default:
		return NewInputError("unitGroup must be one of us, uk, metric, base")
	}
	if len(o.Sections) == 0 {
		return NewInputError("at least one data section is required")
	}
	for _, s := range o.Sections {
		if _, ok := providerInclude[s]; !ok {
			return NewInputError("unknown data section %q", s)
		}
	}
	return nil
}

// Has reports whether s was requested.
func (o Options) Has(s Section) bool {
	return slices.Contains(o.Sections, s)
}

package weather

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/i474232898/weather-dashboard/internal/regions"
)

// DashboardDays is the span loaded by a full dashboard refresh.
const DashboardDays = 7

// ErrNoCurrentConditions is returned when the provider answered without the
// requested current conditions block.
var ErrNoCurrentConditions = errors.New("provider returned no current conditions")

// PopularWeatherError is the per-state message used when a popular state's
// weather could not be fetched.
const PopularWeatherError = "Failed to fetch weather data"

// Service resolves locations, fetches from the provider and composes the
// result with Region metadata.
type Service struct {
	regions *regions.Index
	fetcher Fetcher
}

// NewService creates a new Service.
func NewService(idx *regions.Index, fetcher Fetcher) *Service {
	return &Service{
		regions: idx,
		fetcher: fetcher,
	}
}

// Regions returns the index the service resolves against.
func (s *Service) Regions() *regions.Index {
	return s.regions
}

// Current fetches the current conditions for location.
func (s *Service) Current(ctx context.Context, location string, units UnitGroup) (Enriched, error) {
	e, err := s.load(ctx, location, Options{
		DaySpan:  1,
		Units:    units,
		Sections: []Section{SectionCurrent},
	})
	if err != nil {
		return Enriched{}, err
	}
	if e.Snapshot.CurrentConditions == nil {
		return Enriched{}, ErrNoCurrentConditions
	}
	return e, nil
}

// Forecast fetches a daily forecast of the given span. The span is checked
// before the location is resolved.
func (s *Service) Forecast(ctx context.Context, location string, days int, units UnitGroup) (Enriched, error) {
	if days < MinDaySpan || days > MaxDaySpan {
		return Enriched{}, ErrDaySpan
	}
	return s.load(ctx, location, Options{
		DaySpan:  days,
		Units:    units,
		Sections: []Section{SectionDaily},
	})
}

// Dashboard fetches everything a dashboard refresh shows: current
// conditions plus a week of days with hourly detail.
func (s *Service) Dashboard(ctx context.Context, location string, units UnitGroup) (Enriched, error) {
	return s.load(ctx, location, Options{
		DaySpan:  DashboardDays,
		Units:    units,
		Sections: []Section{SectionCurrent, SectionDaily, SectionHourly},
	})
}

func (s *Service) load(ctx context.Context, location string, opts Options) (Enriched, error) {
	if strings.TrimSpace(location) == "" {
		return Enriched{}, NewInputError("Location parameter is required")
	}
	if err := opts.Validate(); err != nil {
		return Enriched{}, err
	}

	q := s.regions.Resolve(location)
	snap, err := s.fetcher.Fetch(ctx, q, opts)
	if err != nil {
		return Enriched{}, fmt.Errorf("fetch weather for %q: %w", q.Text, err)
	}
	return Compose(snap, q.Region), nil
}

// PopularState is a popular Region with its current weather, if it could
// be fetched.
type PopularState struct {
	regions.Region
	CurrentWeather *CurrentSummary `json:"currentWeather"`
	WeatherError   string          `json:"weatherError,omitempty"`
}

// PopularWithWeather fetches current conditions for every popular Region
// concurrently. A failed item is reported on that item and never aborts the
// batch; the result keeps table order.
func (s *Service) PopularWithWeather(ctx context.Context) []PopularState {
	popular := s.regions.Popular()
	results := make([]PopularState, len(popular))

	var g errgroup.Group
	for i, r := range popular {
		i, r := i, r
		results[i].Region = r
		g.Go(func() error {
			region := r
			snap, err := s.fetcher.Fetch(ctx, regions.LocationQuery{Text: region.Coordinates(), Region: &region}, Options{
				DaySpan:  1,
				Units:    UnitsMetric,
				Sections: []Section{SectionCurrent},
			})
			if err == nil && (snap == nil || snap.CurrentConditions == nil) {
				err = ErrNoCurrentConditions
			}
			if err != nil {
				log.Error().Err(err).Str("state", region.Name).Msg("failed to fetch weather for popular state")
				results[i].WeatherError = PopularWeatherError
				return nil
			}
			summary := Summarize(*snap.CurrentConditions)
			results[i].CurrentWeather = &summary
			return nil
		})
	}
	_ = g.Wait()

	return results
}

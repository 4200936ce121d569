package dashboard

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

// DefaultLocation is shown when the user has not chosen one.
const DefaultLocation = "Lagos"

const (
	errUnavailable = "Weather API not available"
	errLoadFailed  = "Failed to load weather data"
)

var (
	// ErrStale is returned by Load when a newer Load was issued before this
	// one finished; its result was discarded.
	ErrStale = errors.New("superseded by a newer request")

	// ErrUnavailable is returned when the view has no loader.
	ErrUnavailable = errors.New("weather API not available")
)

// Loader fetches everything a dashboard refresh shows.
type Loader interface {
	Dashboard(ctx context.Context, location string, units weather.UnitGroup) (weather.Enriched, error)
}

// State is what the dashboard currently displays.
type State struct {
	Location string
	Data     *weather.Enriched
	Loading  bool
	Error    string
}

// View holds the displayed location and the last applied result. Only the
// most recently issued Load is applied; any older Load is discarded when it
// finishes, whether or not the newer one is still running.
type View struct {
	loader Loader
	units  weather.UnitGroup

	mu     sync.Mutex
	issued uint64
	state  State
}

// NewView creates a View showing location, or DefaultLocation when empty.
// loader may be nil, in which case every Load fails with ErrUnavailable.
func NewView(loader Loader, units weather.UnitGroup, location string) *View {
	if strings.TrimSpace(location) == "" {
		location = DefaultLocation
	}
	return &View{
		loader: loader,
		units:  units,
		state:  State{Location: location},
	}
}

// Reload loads the currently displayed location again.
func (v *View) Reload(ctx context.Context) (State, error) {
	return v.Load(ctx, v.State().Location)
}

// Load switches the view to location and fetches its weather. The returned
// State is the view after this call; on ErrStale it reflects the newer
// request instead.
func (v *View) Load(ctx context.Context, location string) (State, error) {
	v.mu.Lock()
	v.issued++
	seq := v.issued
	v.state.Location = location
	v.state.Loading = true
	v.state.Error = ""
	v.mu.Unlock()

	var (
		data weather.Enriched
		err  error
	)
	if v.loader == nil {
		err = ErrUnavailable
	} else {
		data, err = v.loader.Dashboard(ctx, location, v.units)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if seq != v.issued {
		return v.state, ErrStale
	}
	v.state.Loading = false

	switch {
	case errors.Is(err, ErrUnavailable):
		v.state.Error = errUnavailable
	case err != nil:
		log.Error().Err(err).Str("location", location).Msg("failed to load weather data")
		v.state.Error = errLoadFailed
	default:
		v.state.Data = &data
	}
	return v.state, err
}

// State returns a copy of what the view currently displays.
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

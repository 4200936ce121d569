package weather

import (
	"context"

	"github.com/i474232898/weather-dashboard/internal/regions"
)

// Fetcher abstracts the weather data source. Implementations make exactly
// one outbound call per Fetch and must validate opts before any I/O.
type Fetcher interface {
	Fetch(ctx context.Context, query regions.LocationQuery, opts Options) (*Snapshot, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, query regions.LocationQuery, opts Options) (*Snapshot, error)

func (f FetcherFunc) Fetch(ctx context.Context, query regions.LocationQuery, opts Options) (*Snapshot, error) {
	return f(ctx, query, opts)
}

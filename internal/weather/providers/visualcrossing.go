package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/i474232898/weather-dashboard/internal/regions"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

// DefaultVisualCrossingURL is the Timeline API endpoint.
const DefaultVisualCrossingURL = "https://weather.visualcrossing.com/VisualCrossingWebServices/rest/services/timeline"

// visualCrossingElements is the fixed field selection requested on every call.
var visualCrossingElements = []string{
	"datetime", "datetimeEpoch", "temp", "feelslike", "humidity", "dew",
	"precip", "precipprob", "preciptype", "snow", "snowdepth",
	"windgust", "windspeed", "winddir", "pressure", "cloudcover", "visibility",
	"solarradiation", "solarenergy", "uvindex", "severerisk",
	"conditions", "icon", "source", "sunrise", "sunset", "moonphase", "description",
	"tempmax", "tempmin", "feelslikemax", "feelslikemin", "precipcover",
}

// VisualCrossing implements weather.Fetcher against the Visual Crossing
// Timeline API. It holds no mutable state and is safe for concurrent use.
type VisualCrossing struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

// NewVisualCrossing creates a client. An empty baseURL selects
// DefaultVisualCrossingURL.
func NewVisualCrossing(client *http.Client, apiKey, baseURL string) *VisualCrossing {
	if baseURL == "" {
		baseURL = DefaultVisualCrossingURL
	}
	return &VisualCrossing{
		client:  client,
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Configured reports whether an API key is set.
func (p *VisualCrossing) Configured() bool {
	return p.apiKey != ""
}

// BuildRequest constructs the single Timeline request for query and opts:
// GET {base}/{location}?key=&unitGroup=&include=&elements= with maxDays added
// for spans below weather.MaxDaySpan.
func BuildRequest(ctx context.Context, baseURL, apiKey string, query regions.LocationQuery, opts weather.Options) (*http.Request, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(query.Text) == "" {
		return nil, weather.NewInputError("Location parameter is required")
	}

	include := make([]string, 0, len(opts.Sections))
	for _, s := range opts.Sections {
		include = append(include, s.Include())
	}

	values := url.Values{}
	values.Set("key", apiKey)
	values.Set("unitGroup", string(opts.Units))
	values.Set("include", strings.Join(include, ","))
	values.Set("elements", strings.Join(visualCrossingElements, ","))
	if opts.DaySpan < weather.MaxDaySpan {
		values.Set("maxDays", strconv.Itoa(opts.DaySpan))
	}

	u := fmt.Sprintf("%s/%s?%s", strings.TrimRight(baseURL, "/"), url.PathEscape(query.Text), values.Encode())
	return http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
}

// Fetch performs one Timeline call. Options are validated and the key is
// checked before any network I/O.
func (p *VisualCrossing) Fetch(ctx context.Context, query regions.LocationQuery, opts weather.Options) (*weather.Snapshot, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if p.apiKey == "" {
		return nil, weather.ErrMissingAPIKey
	}

	req, err := BuildRequest(ctx, p.baseURL, p.apiKey, query, opts)
	if err != nil {
		return nil, err
	}

	resp, err := doRequest(p.client, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var snap weather.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode visual crossing response: %w", err)
	}
	snap.Query = query.Text
	trimSections(&snap, opts)

	return &snap, nil
}

// trimSections drops any section that was not asked for so callers only
// ever see what they requested.
func trimSections(snap *weather.Snapshot, opts weather.Options) {
	if !opts.Has(weather.SectionCurrent) {
		snap.CurrentConditions = nil
	}
	if !opts.Has(weather.SectionAlerts) {
		snap.Alerts = nil
	}
	if !opts.Has(weather.SectionDaily) && !opts.Has(weather.SectionHourly) {
		snap.Days = nil
		return
	}
	if !opts.Has(weather.SectionHourly) {
		for i := range snap.Days {
			snap.Days[i].Hours = nil
		}
	}
}

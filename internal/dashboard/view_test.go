package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

// gatedLoader blocks each Dashboard call until its location's gate is released.
type gatedLoader struct {
	gates map[string]chan struct{}
	errs  map[string]error
}

func (l *gatedLoader) Dashboard(ctx context.Context, location string, _ weather.UnitGroup) (weather.Enriched, error) {
	if g, ok := l.gates[location]; ok {
		select {
		case <-g:
		case <-ctx.Done():
			return weather.Enriched{}, ctx.Err()
		}
	}
	if err := l.errs[location]; err != nil {
		return weather.Enriched{}, err
	}
	return weather.Enriched{
		Snapshot: &weather.Snapshot{ResolvedAddress: location},
		Location: weather.LocationInfo{Name: location},
	}, nil
}

func TestViewDefaults(t *testing.T) {
	v := NewView(&gatedLoader{}, weather.UnitsMetric, "")
	assert.Equal(t, DefaultLocation, v.State().Location)

	st, err := v.Reload(context.Background())
	require.NoError(t, err)
	require.NotNil(t, st.Data)
	assert.Equal(t, "Lagos", st.Data.Location.Name)
	assert.False(t, st.Loading)
}

func TestViewDiscardsOlderResponse(t *testing.T) {
	loader := &gatedLoader{gates: map[string]chan struct{}{
		"Lagos": make(chan struct{}),
		"Kano":  make(chan struct{}),
	}}
	v := NewView(loader, weather.UnitsMetric, "Lagos")

	type result struct {
		st  State
		err error
	}
	first := make(chan result, 1)
	go func() {
		st, err := v.Load(context.Background(), "Lagos")
		first <- result{st, err}
	}()
	require.Eventually(t, func() bool { return v.State().Loading }, time.Second, time.Millisecond)

	second := make(chan result, 1)
	go func() {
		st, err := v.Load(context.Background(), "Kano")
		second <- result{st, err}
	}()
	require.Eventually(t, func() bool { return v.State().Location == "Kano" }, time.Second, time.Millisecond)

	// The newer request finishes first.
	close(loader.gates["Kano"])
	r2 := <-second
	require.NoError(t, r2.err)
	assert.Equal(t, "Kano", r2.st.Data.Location.Name)

	close(loader.gates["Lagos"])
	r1 := <-first
	assert.ErrorIs(t, r1.err, ErrStale)

	st := v.State()
	assert.Equal(t, "Kano", st.Location)
	assert.Equal(t, "Kano", st.Data.Location.Name)
	assert.False(t, st.Loading)
}

func TestViewDiscardsOlderResponseWhileNewerPending(t *testing.T) {
	loader := &gatedLoader{
		gates: map[string]chan struct{}{
			"Lagos": make(chan struct{}),
			"Kano":  make(chan struct{}),
		},
		errs: map[string]error{"Kano": &weather.UpstreamError{StatusCode: 500}},
	}
	v := NewView(loader, weather.UnitsMetric, "Abuja")
	_, err := v.Reload(context.Background())
	require.NoError(t, err)

	first := make(chan error, 1)
	go func() {
		_, err := v.Load(context.Background(), "Lagos")
		first <- err
	}()
	require.Eventually(t, func() bool { return v.State().Location == "Lagos" }, time.Second, time.Millisecond)

	second := make(chan error, 1)
	go func() {
		_, err := v.Load(context.Background(), "Kano")
		second <- err
	}()
	require.Eventually(t, func() bool { return v.State().Location == "Kano" }, time.Second, time.Millisecond)

	// The older request finishes while the newer one is still running.
	close(loader.gates["Lagos"])
	assert.ErrorIs(t, <-first, ErrStale)

	st := v.State()
	assert.Equal(t, "Kano", st.Location)
	assert.True(t, st.Loading)
	require.NotNil(t, st.Data)
	assert.Equal(t, "Abuja", st.Data.Location.Name)

	// The newer request then fails; the Lagos result must not surface.
	close(loader.gates["Kano"])
	require.Error(t, <-second)

	st = v.State()
	assert.Equal(t, "Kano", st.Location)
	assert.False(t, st.Loading)
	assert.Equal(t, errLoadFailed, st.Error)
	assert.Equal(t, "Abuja", st.Data.Location.Name)
}

func TestViewErrorKeepsLastData(t *testing.T) {
	loader := &gatedLoader{errs: map[string]error{"Atlantis": &weather.UpstreamError{StatusCode: 404}}}
	v := NewView(loader, weather.UnitsMetric, "Lagos")

	_, err := v.Reload(context.Background())
	require.NoError(t, err)

	st, err := v.Load(context.Background(), "Atlantis")
	require.Error(t, err)
	assert.Equal(t, errLoadFailed, st.Error)
	require.NotNil(t, st.Data)
	assert.Equal(t, "Lagos", st.Data.Location.Name)

	st, err = v.Load(context.Background(), "Kano")
	require.NoError(t, err)
	assert.Empty(t, st.Error)
}

func TestViewWithoutLoader(t *testing.T) {
	v := NewView(nil, weather.UnitsMetric, "Lagos")
	st, err := v.Reload(context.Background())
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.Equal(t, errUnavailable, st.Error)
}

func TestGreeting(t *testing.T) {
	at := func(h int) time.Time { return time.Date(2024, 6, 1, h, 30, 0, 0, time.UTC) }
	cases := map[int]string{
		0: "Good Night", 4: "Good Night", 5: "Good Morning", 11: "Good Morning",
		12: "Good Afternoon", 16: "Good Afternoon", 17: "Good Evening", 20: "Good Evening",
		21: "Good Night", 23: "Good Night",
	}
	for h, want := range cases {
		g, _ := TimeOfDay(at(h))
		assert.Equal(t, want, g, "hour %d", h)
	}
	assert.Equal(t, "Good Morning, Ada!", Greeting(at(8), "Ada"))
	assert.Equal(t, "Good Evening", Greeting(at(18), ""))
}

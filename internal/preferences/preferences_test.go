package preferences

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-dashboard/internal/store"
)

func TestLoadAbsent(t *testing.T) {
	m := NewManager(store.NewMemoryStore())
	p, ok := m.Load(context.Background())
	assert.False(t, ok)
	assert.Nil(t, p)
	assert.False(t, m.HasCompletedOnboarding(context.Background()))
}

func TestCompleteOnboardingDefaults(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemoryStore())

	require.NoError(t, m.CompleteOnboarding(ctx, " Ada ", "Lagos"))
	p, ok := m.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, "Ada", p.Name)
	assert.Equal(t, "Lagos", p.Location)
	assert.True(t, p.HasCompletedOnboarding)
	require.NotNil(t, p.Preferences)
	assert.Equal(t, UnitsMetric, p.Preferences.Units)
	assert.Equal(t, ThemeDark, p.Preferences.Theme)
	assert.Equal(t, SchemaVersion, p.SchemaVersion)
	assert.True(t, m.HasCompletedOnboarding(ctx))
}

func TestSaveRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemoryStore())

	err := m.Save(ctx, UserPreference{Name: "Ada", Preferences: &Settings{Units: "kelvin", Theme: ThemeDark}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPreference))
	assert.Contains(t, err.Error(), "units must be one of metric imperial")

	_, ok := m.Load(ctx)
	assert.False(t, ok)

	require.NoError(t, m.Save(ctx, UserPreference{Name: "Ada"}))
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemoryStore())

	got, ok, err := m.Update(ctx, Patch{Name: ptr("Ada")})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
	_, stored := m.Load(ctx)
	assert.False(t, stored, "update on absent record must not create one")

	require.NoError(t, m.CompleteOnboarding(ctx, "Ada", "Lagos"))
	got, ok, err = m.Update(ctx, Patch{
		Location:    ptr("Kano"),
		Preferences: &Settings{Units: UnitsImperial, Theme: ThemeLight},
	})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Ada", got.Name)
	assert.Equal(t, "Kano", got.Location)
	assert.Equal(t, UnitsImperial, got.Preferences.Units)

	loaded, ok := m.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, got, loaded)

	_, _, err = m.Update(ctx, Patch{Preferences: &Settings{Units: UnitsMetric, Theme: "sepia"}})
	assert.ErrorIs(t, err, ErrInvalidPreference)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemoryStore())
	require.NoError(t, m.CompleteOnboarding(ctx, "Ada", "Lagos"))
	require.NoError(t, m.Clear(ctx))
	_, ok := m.Load(ctx)
	assert.False(t, ok)
	require.NoError(t, m.Clear(ctx))
}

func TestNoBackingStore(t *testing.T) {
	ctx := context.Background()
	m := NewManager(nil)

	assert.NoError(t, m.CompleteOnboarding(ctx, "Ada", "Lagos"))
	assert.NoError(t, m.Save(ctx, UserPreference{Name: "Ada"}))
	_, ok := m.Load(ctx)
	assert.False(t, ok)
	p, ok, err := m.Update(ctx, Patch{Name: ptr("x")})
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, p)
	assert.NoError(t, m.Clear(ctx))
	assert.False(t, m.HasCompletedOnboarding(ctx))
}

func TestLoadIgnoresBadRecords(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	m := NewManager(kv)

	for _, raw := range []string{
		`not json`,
		`{"schemaVersion": 2, "name": "Ada", "hasCompletedOnboarding": true}`,
		`{"name": "Ada", "preferences": {"units": "kelvin", "theme": "dark"}}`,
	} {
		require.NoError(t, kv.Put(ctx, StorageKey, []byte(raw)))
		_, ok := m.Load(ctx)
		assert.False(t, ok, raw)
	}

	require.NoError(t, kv.Put(ctx, StorageKey, []byte(`{"name":"Ada","location":"Lagos","hasCompletedOnboarding":true,"preferences":{"units":"metric","theme":"dark"}}`)))
	p, ok := m.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, SchemaVersion, p.SchemaVersion)
	assert.True(t, p.HasCompletedOnboarding)
}

func TestSQLiteBackedRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv, err := store.OpenSQLite(store.MemoryDSN)
	require.NoError(t, err)
	defer kv.Close()

	m := NewManager(kv)
	require.NoError(t, m.CompleteOnboarding(ctx, "Ada", "Abuja"))
	p, ok := m.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, "Abuja", p.Location)
}

func ptr[T any](v T) *T {
	return &v
}

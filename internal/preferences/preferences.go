package preferences

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/i474232898/weather-dashboard/internal/store"
)

const (
	// StorageKey is the fixed key the record lives under.
	StorageKey = "weather-dashboard-user-data"

	// SchemaVersion is the newest record layout this package understands.
	SchemaVersion = 1

	UnitsMetric   = "metric"
	UnitsImperial = "imperial"
	ThemeLight    = "light"
	ThemeDark     = "dark"
)

// ErrInvalidPreference is returned by Save for records that fail validation.
var ErrInvalidPreference = errors.New("invalid user preference")

// Settings are the display preferences chosen during onboarding.
type Settings struct {
	Units string `json:"units" validate:"oneof=metric imperial"`
	Theme string `json:"theme" validate:"oneof=light dark"`
}

// UserPreference is the single persisted record per device.
type UserPreference struct {
	SchemaVersion          int       `json:"schemaVersion"`
	Name                   string    `json:"name" validate:"max=100"`
	Location               string    `json:"location" validate:"max=200"`
	HasCompletedOnboarding bool      `json:"hasCompletedOnboarding"`
	Preferences            *Settings `json:"preferences,omitempty"`
}

// Patch is a partial update; nil fields are left unchanged.
type Patch struct {
	Name                   *string
	Location               *string
	HasCompletedOnboarding *bool
	Preferences            *Settings
}

// Manager reads and writes the UserPreference record. With no backing
// store every read reports absent and every write is a no-op.
type Manager struct {
	kv       store.KV
	validate *validator.Validate
}

// NewManager creates a Manager over kv, which may be nil.
func NewManager(kv store.KV) *Manager {
	return &Manager{
		kv:       kv,
		validate: validator.New(),
	}
}

// Load returns the stored record. Missing, unreadable, invalid and
// newer-version records all read as absent.
func (m *Manager) Load(ctx context.Context) (*UserPreference, bool) {
	if m.kv == nil {
		return nil, false
	}

	raw, err := m.kv.Get(ctx, StorageKey)
	if errors.Is(err, store.ErrNotFound) {
		return nil, false
	}
	if err != nil {
		log.Error().Err(err).Msg("error reading user data")
		return nil, false
	}

	var p UserPreference
	if err := json.Unmarshal(raw, &p); err != nil {
		log.Warn().Err(err).Msg("stored user data is not valid JSON; ignoring")
		return nil, false
	}
	if p.SchemaVersion > SchemaVersion {
		log.Warn().Int("schemaVersion", p.SchemaVersion).Msg("stored user data has a newer schema; ignoring")
		return nil, false
	}
	// Records written before versioning carry no version.
	if p.SchemaVersion == 0 {
		p.SchemaVersion = SchemaVersion
	}
	if err := m.validate.Struct(p); err != nil {
		log.Warn().Err(err).Msg("stored user data failed validation; ignoring")
		return nil, false
	}
	return &p, true
}

// Save validates and writes p, stamping the current schema version.
func (m *Manager) Save(ctx context.Context, p UserPreference) error {
	if m.kv == nil {
		return nil
	}

	p.SchemaVersion = SchemaVersion
	if err := m.validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPreference, describe(err))
	}

	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode user data: %w", err)
	}
	if err := m.kv.Put(ctx, StorageKey, raw); err != nil {
		return fmt.Errorf("save user data: %w", err)
	}
	return nil
}

// Update merges patch into the stored record and saves it. When no record
// exists nothing is written and ok is false.
func (m *Manager) Update(ctx context.Context, patch Patch) (*UserPreference, bool, error) {
	current, ok := m.Load(ctx)
	if !ok {
		return nil, false, nil
	}

	if patch.Name != nil {
		current.Name = *patch.Name
	}
	if patch.Location != nil {
		current.Location = *patch.Location
	}
	if patch.HasCompletedOnboarding != nil {
		current.HasCompletedOnboarding = *patch.HasCompletedOnboarding
	}
	if patch.Preferences != nil {
		s := *patch.Preferences
		current.Preferences = &s
	}

	if err := m.Save(ctx, *current); err != nil {
		return nil, false, err
	}
	current.SchemaVersion = SchemaVersion
	return current, true, nil
}

// Clear removes the stored record.
func (m *Manager) Clear(ctx context.Context) error {
	if m.kv == nil {
		return nil
	}
	if err := m.kv.Delete(ctx, StorageKey); err != nil {
		return fmt.Errorf("clear user data: %w", err)
	}
	return nil
}

// HasCompletedOnboarding reports whether a stored record marks onboarding
// as done.
func (m *Manager) HasCompletedOnboarding(ctx context.Context) bool {
	p, ok := m.Load(ctx)
	return ok && p.HasCompletedOnboarding
}

// CompleteOnboarding replaces the record with a fresh one for name and
// location using the default metric units and dark theme.
func (m *Manager) CompleteOnboarding(ctx context.Context, name, location string) error {
	return m.Save(ctx, UserPreference{
		Name:                   strings.TrimSpace(name),
		Location:               strings.TrimSpace(location),
		HasCompletedOnboarding: true,
		Preferences: &Settings{
			Units: UnitsMetric,
			Theme: ThemeDark,
		},
	})
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of %s", strings.ToLower(fe.Field()), fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", strings.ToLower(fe.Field()), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", strings.ToLower(fe.Field())))
		}
	}
	return strings.Join(msgs, "; ")
}

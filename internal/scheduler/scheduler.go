package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog/log"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

// ProbeState summarises the provider's last observed health.
type ProbeState string

const (
	StateDisabled ProbeState = "disabled"
	StatePending  ProbeState = "pending"
	StateOK       ProbeState = "operational"
	StateFailing  ProbeState = "failing"
)

// Status is the outcome of the most recent probe.
type Status struct {
	State     ProbeState `json:"state"`
	LastRun   time.Time  `json:"lastRun,omitempty"`
	LastError string     `json:"lastError,omitempty"`
	Kind      string     `json:"kind,omitempty"`
}

// Prober makes one current-conditions call against the provider.
type Prober interface {
	Current(ctx context.Context, location string, units weather.UnitGroup) (weather.Enriched, error)
}

// Scheduler periodically probes the weather provider with a single current
// conditions call. Results are only reported, never cached or served.
type Scheduler struct {
	scheduler *gocron.Scheduler
	prober    Prober
	location  string
	interval  time.Duration
	timeout   time.Duration

	mu     sync.RWMutex
	status Status
}

// New creates a Scheduler. A non-positive interval disables probing.
func New(prober Prober, location string, interval, timeout time.Duration) *Scheduler {
	state := StatePending
	if interval <= 0 {
		state = StateDisabled
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		prober:    prober,
		location:  location,
		interval:  interval,
		timeout:   timeout,
		status:    Status{State: state},
	}
}

// Start schedules the probe job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		log.Info().Msg("scheduler: provider probe disabled")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).SingletonMode().Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		_ = s.RunOnce(ctx)
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	log.Info().Dur("interval", s.interval).Str("location", s.location).Msg("scheduler: provider probe started")
	return nil
}

// RunOnce probes the provider once and records the outcome.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	_, err := s.prober.Current(ctx, s.location, weather.UnitsMetric)

	st := Status{State: StateOK, LastRun: time.Now().UTC()}
	if err != nil {
		kind := weather.Classify(err)
		st.State = StateFailing
		st.LastError = err.Error()
		st.Kind = kind.String()
		log.Warn().Err(err).Str("kind", kind.String()).Str("location", s.location).Msg("scheduler: provider probe failed")
	}

	s.mu.Lock()
	s.status = st
	s.mu.Unlock()
	return err
}

// Status returns the outcome of the most recent probe.
func (s *Scheduler) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

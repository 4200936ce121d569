package httpapi

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-dashboard/internal/scheduler"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

var validate = validator.New()

// ProbeStatus reports the provider probe outcome.
type ProbeStatus interface {
	Status() scheduler.Status
}

// Deps are the collaborators the handlers need.
type Deps struct {
	Service *weather.Service

	// APIKeyConfigured gates every endpoint that may call the provider.
	APIKeyConfigured bool
	Environment      string
	StartedAt        time.Time

	// Probe may be nil when probing is not wired.
	Probe ProbeStatus

	// Now defaults to time.Now.
	Now func() time.Time
}

type handlers struct {
	Deps
}

// RegisterRoutes wires the HTTP handlers into the Fiber app. Every path
// answers GET only; other methods get 405.
func RegisterRoutes(app *fiber.App, deps Deps) {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.StartedAt.IsZero() {
		deps.StartedAt = deps.Now()
	}
	h := &handlers{Deps: deps}

	get(app, "/health", h.health)
	get(app, "/states/popular", h.popularStates)
	get(app, "/states/regions", h.regions)
	get(app, "/states/search", h.searchStates)
	get(app, "/weather/current/:location?", h.currentWeather)
	get(app, "/weather/forecast/:location?", h.forecast)
}

func get(app *fiber.App, path string, handler fiber.Handler) {
	app.Get(path, handler)
	app.All(path, methodNotAllowed)
}

func methodNotAllowed(c *fiber.Ctx) error {
	return fiber.NewError(fiber.StatusMethodNotAllowed, "Method not allowed")
}

func (h *handlers) requireAPIKey() error {
	if !h.APIKeyConfigured {
		return fiber.NewError(fiber.StatusInternalServerError, "API key not configured")
	}
	return nil
}

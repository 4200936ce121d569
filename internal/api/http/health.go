package httpapi

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-dashboard/internal/scheduler"
)

type healthServices struct {
	API           string `json:"api"`
	Database      string `json:"database"`
	ExternalAPIs  string `json:"external_apis"`
	ProviderProbe string `json:"provider_probe"`
}

type healthResponse struct {
	Status      string         `json:"status"`
	Timestamp   string         `json:"timestamp"`
	Uptime      float64        `json:"uptime"`
	Environment string         `json:"environment"`
	Version     string         `json:"version"`
	Services    healthServices `json:"services"`
}

func (h *handlers) health(c *fiber.Ctx) error {
	now := h.Now()

	external := "not_configured"
	if h.APIKeyConfigured {
		external = "configured"
	}
	probe := string(scheduler.StateDisabled)
	if h.Probe != nil {
		probe = string(h.Probe.Status().State)
	}

	return c.JSON(healthResponse{
		Status:      "healthy",
		Timestamp:   now.UTC().Format(time.RFC3339Nano),
		Uptime:      now.Sub(h.StartedAt).Seconds(),
		Environment: h.Environment,
		Version:     Version,
		Services: healthServices{
			API:           "operational",
			Database:      "not_required",
			ExternalAPIs:  external,
			ProviderProbe: probe,
		},
	})
}

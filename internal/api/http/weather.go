package httpapi

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

// locationQuery holds the parameters shared by the weather endpoints.
type locationQuery struct {
	Location string `validate:"required"`
	Units    weather.UnitGroup
}

func (q *locationQuery) bind(c *fiber.Ctx) error {
	raw := c.Params("location")
	if unescaped, err := url.PathUnescape(raw); err == nil {
		raw = unescaped
	}
	q.Location = strings.TrimSpace(raw)
	if err := validateQuery(q); err != nil {
		return err
	}

	units, err := weather.ParseUnitGroup(c.Query("unitGroup"))
	if err != nil {
		return err
	}
	q.Units = units
	return nil
}

// forecastQuery adds the forecast span.
type forecastQuery struct {
	locationQuery
	Days int `validate:"min=1,max=15"`
}

func (q *forecastQuery) bind(c *fiber.Ctx) error {
	if err := q.locationQuery.bind(c); err != nil {
		return err
	}

	q.Days = weather.DefaultForecastDays
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return weather.ErrDaySpan
		}
		q.Days = n
	}
	return validateQuery(q)
}

// currentResponse is the provider's current conditions block with the
// location metadata and derived presentation values alongside.
type currentResponse struct {
	*weather.Conditions
	Location weather.LocationInfo `json:"location"`
	Derived  weather.Derived      `json:"derived"`
}

func (h *handlers) currentWeather(c *fiber.Ctx) error {
	var q locationQuery
	if err := q.bind(c); err != nil {
		return err
	}
	if err := h.requireAPIKey(); err != nil {
		return err
	}

	e, err := h.Service.Current(c.UserContext(), q.Location, q.Units)
	if err != nil {
		return weatherError(c, err, "Failed to fetch weather data")
	}

	cc := e.Snapshot.CurrentConditions
	return c.JSON(currentResponse{
		Conditions: cc,
		Location:   e.Location,
		Derived:    weather.Derive(*cc),
	})
}

func (h *handlers) forecast(c *fiber.Ctx) error {
	var q forecastQuery
	if err := q.bind(c); err != nil {
		return err
	}
	if err := h.requireAPIKey(); err != nil {
		return err
	}

	e, err := h.Service.Forecast(c.UserContext(), q.Location, q.Days, q.Units)
	if err != nil {
		return weatherError(c, err, "Failed to fetch forecast data")
	}

	days := e.Snapshot.Days
	if days == nil {
		days = []weather.Day{}
	}
	return c.JSON(fiber.Map{
		"forecast": days,
		"location": e.Location,
		"days":     q.Days,
	})
}

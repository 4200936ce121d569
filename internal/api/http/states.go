package httpapi

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const defaultSearchLimit = 10

var validationMessages = map[string]string{
	"Query":    "Query parameter is required",
	"Limit":    "Limit must be a positive number",
	"Location": "Location parameter is required",
	"Days":     "Days must be between 1 and 15",
}

// searchQuery holds query parameters for the state search endpoint.
type searchQuery struct {
	Query string `validate:"required"`
	Limit int    `validate:"min=1"`
}

func (q *searchQuery) bind(c *fiber.Ctx) error {
	q.Query = strings.TrimSpace(c.Query("q"))
	q.Limit = defaultSearchLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, validationMessages["Limit"])
		}
		q.Limit = n
	}
	return validateQuery(q)
}

// validateQuery runs struct validation and turns the first failure into a
// 400 carrying the field's fixed message.
func validateQuery(q any) error {
	err := validate.Struct(q)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if msg, ok := validationMessages[verrs[0].Field()]; ok {
			return fiber.NewError(fiber.StatusBadRequest, msg)
		}
	}
	return fiber.NewError(fiber.StatusBadRequest, err.Error())
}

func (h *handlers) popularStates(c *fiber.Ctx) error {
	if err := h.requireAPIKey(); err != nil {
		return err
	}

	lastUpdated := h.Now().UTC().Format(time.RFC3339Nano)
	if c.Query("includeWeather") != "true" {
		states := h.Service.Regions().Popular()
		return c.JSON(fiber.Map{
			"states":      states,
			"total":       len(states),
			"lastUpdated": lastUpdated,
		})
	}

	states := h.Service.PopularWithWeather(c.UserContext())
	return c.JSON(fiber.Map{
		"states":      states,
		"total":       len(states),
		"lastUpdated": lastUpdated,
	})
}

func (h *handlers) regions(c *fiber.Ctx) error {
	idx := h.Service.Regions()

	group := strings.TrimSpace(c.Query("region"))
	if group == "" {
		groups := idx.Groups()
		return c.JSON(fiber.Map{
			"regions": groups,
			"total":   len(groups),
		})
	}

	states := idx.ByGroup(group)
	if len(states) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Region not found")
	}
	return c.JSON(fiber.Map{
		"region": group,
		"states": states,
		"total":  len(states),
	})
}

func (h *handlers) searchStates(c *fiber.Ctx) error {
	var q searchQuery
	if err := q.bind(c); err != nil {
		return err
	}

	results, total, err := h.Service.Regions().Search(q.Query, q.Limit)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, validationMessages["Limit"])
	}

	return c.JSON(fiber.Map{
		"query":   q.Query,
		"results": results,
		"total":   total,
		"limit":   q.Limit,
	})
}

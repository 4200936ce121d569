package httpapi

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

// NewApp builds the Fiber app with middleware, the centralized error
// handler and every route registered.
func NewApp(deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "weather-dashboard",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          30 * time.Second,
		ErrorHandler:          ErrorHandler,
	})

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())

	RegisterRoutes(app, deps)
	return app
}

// ErrorHandler renders every error as {"error": "<message>"}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Internal server error"

	var fe *fiber.Error
	var ie *weather.InputError
	switch {
	case errors.As(err, &fe):
		code = fe.Code
		msg = fe.Message
	case errors.As(err, &ie):
		code = fiber.StatusBadRequest
		msg = ie.Message
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("unhandled request error")
	}

	return c.Status(code).JSON(fiber.Map{"error": msg})
}

// weatherError maps a service failure onto the response the proxy gives.
// fallback is the message used for unclassified upstream failures.
func weatherError(c *fiber.Ctx, err error, fallback string) error {
	var ie *weather.InputError
	if errors.As(err, &ie) {
		return fiber.NewError(fiber.StatusBadRequest, ie.Message)
	}
	if errors.Is(err, weather.ErrMissingAPIKey) {
		return fiber.NewError(fiber.StatusInternalServerError, "API key not configured")
	}

	kind := weather.Classify(err)
	if kind == weather.KindUnknown {
		log.Error().Err(err).Str("path", c.Path()).Msg("weather provider request failed")
	} else {
		log.Warn().Err(err).Str("kind", kind.String()).Str("path", c.Path()).Msg("weather provider rejected request")
	}
	return fiber.NewError(kind.HTTPStatus(), kind.Message(fallback))
}

package routes

import (
	"errors"

	"github.com/clicktrip/clicktrip/pkg/departures"
	"github.com/clicktrip/clicktrip/pkg/gtfs"
	"github.com/gofiber/fiber/v2"
)

// renderError maps aggregator failures onto HTTP statuses: a broken upstream
// or an undecodable feed is a gateway problem, anything else is ours.
func renderError(c *fiber.Ctx, err error) error {
	var upstreamError *departures.UpstreamUnavailableError
	var decodeError *gtfs.DecodeError

	status := fiber.StatusInternalServerError
	if errors.As(err, &upstreamError) || errors.As(err, &decodeError) {
		status = fiber.StatusBadGateway
	}

	c.SendStatus(status)
	return c.JSON(fiber.Map{
		"error": err.Error(),
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	c.SendStatus(fiber.StatusBadRequest)
	return c.JSON(fiber.Map{
		"error": message,
	})
}

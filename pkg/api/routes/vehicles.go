package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func VehiclesRouter(router fiber.Router) {
	router.Get("/", listVehiclePositions)
}

func listVehiclePositions(c *fiber.Ctx) error {
	vehicles, total, err := aggregator.VehiclePositions(c.UserContext())
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(fiber.Map{
		"vehicleCount":  len(vehicles),
		"totalVehicles": total,
		"vehicles":      vehicles,
		"timestamp":     time.Now().UTC().Format(time.RFC3339),
	})
}

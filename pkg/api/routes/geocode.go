package routes

import (
	"github.com/gofiber/fiber/v2"
)

func GeocodeRouter(router fiber.Router) {
	router.Get("/", getGeocode)
}

func getGeocode(c *fiber.Ctx) error {
	address := c.Query("address")
	if address == "" {
		return badRequest(c, "Parameter address is required")
	}

	result, err := placesClient.Geocode(c.UserContext(), address)
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(result)
}

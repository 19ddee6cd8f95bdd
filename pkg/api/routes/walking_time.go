package routes

import (
	"strconv"

	"github.com/clicktrip/clicktrip/pkg/geo"
	"github.com/gofiber/fiber/v2"
)

func WalkingTimeRouter(router fiber.Router) {
	router.Get("/", getWalkingTime)
}

func getWalkingTime(c *fiber.Ctx) error {
	coordinates := map[string]float64{}

	for _, name := range []string{"from_lat", "from_lon", "to_lat", "to_lon"} {
		value := c.Query(name)
		if value == "" {
			return badRequest(c, "Parameters from_lat, from_lon, to_lat and to_lon are required")
		}

		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return badRequest(c, "Co-ordinate parameters should be decimal degrees")
		}

		coordinates[name] = parsed
	}

	minutes := placesClient.WalkingTime(c.UserContext(),
		geo.Coordinates{Latitude: coordinates["from_lat"], Longitude: coordinates["from_lon"]},
		geo.Coordinates{Latitude: coordinates["to_lat"], Longitude: coordinates["to_lon"]},
	)

	return c.JSON(fiber.Map{
		"walkingTimeMinutes": minutes,
	})
}

package routes

import (
	"strconv"

	"github.com/clicktrip/clicktrip/pkg/geo"
	"github.com/clicktrip/clicktrip/pkg/settings"
	"github.com/gofiber/fiber/v2"
)

func NearbyTransitRouter(router fiber.Router) {
	router.Get("/", getNearbyTransit)
}

func getNearbyTransit(c *fiber.Ctx) error {
	latQuery := c.Query("lat")
	lonQuery := c.Query("lon", c.Query("lng"))

	if latQuery == "" || lonQuery == "" {
		return badRequest(c, "Parameters lat and lon are required")
	}

	lat, latErr := strconv.ParseFloat(latQuery, 64)
	lon, lonErr := strconv.ParseFloat(lonQuery, 64)
	if latErr != nil || lonErr != nil {
		return badRequest(c, "Parameters lat and lon should be decimal degrees")
	}

	userSettings := settings.FromCookieValue(c.Cookies(settings.CookieName))

	radius, err := strconv.Atoi(c.Query("radius", strconv.Itoa(userSettings.RadiusMeters)))
	if err != nil || radius <= 0 {
		return badRequest(c, "Parameter radius should be a positive integer")
	}

	vehicleRadius, err := strconv.ParseFloat(c.Query("vehicle_radius", "200"), 64)
	if err != nil || vehicleRadius < 0 {
		return badRequest(c, "Parameter vehicle_radius should be a non-negative number")
	}

	transitInfo, err := aggregator.NearbyTransit(c.UserContext(), geo.Coordinates{
		Latitude:  lat,
		Longitude: lon,
	}, radius, vehicleRadius)

	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(transitInfo)
}

package routes

import (
	"github.com/gofiber/fiber/v2"
)

func RoutesRouter(router fiber.Router) {
	router.Get("/:identifier", getRouteInfo)
}

func getRouteInfo(c *fiber.Ctx) error {
	identifier := c.Params("identifier")
	if identifier == "" {
		return badRequest(c, "A route identifier must be provided")
	}

	route, err := agencyClient.RouteInfo(c.UserContext(), identifier)
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(route)
}

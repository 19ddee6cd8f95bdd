package api

import (
	"github.com/clicktrip/clicktrip/pkg/api/routes"
	"github.com/gofiber/fiber/v2"
)

func SetupServer(listen string) error {
	webApp := CreateServer()

	return webApp.Listen(listen)
}

// CreateServer builds the fiber application without binding it, so tests can
// drive it through app.Test.
func CreateServer() *fiber.App {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.NearbyTransitRouter(group.Group("/nearby_transit"))
	routes.StopsRouter(group.Group("/stops"))
	routes.DeparturesRouter(group.Group("/departures"))
	routes.RoutesRouter(group.Group("/routes"))
	routes.GeocodeRouter(group.Group("/geocode"))
	routes.WalkingTimeRouter(group.Group("/walking_time"))
	routes.VehiclesRouter(group.Group("/vehicle_positions"))
	routes.SettingsRouter(group.Group("/settings"))

	return webApp
}

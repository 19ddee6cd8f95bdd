package routes

import (
	"strconv"
	"strings"
	"time"

	"github.com/clicktrip/clicktrip/pkg/util"
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
)

func DeparturesRouter(router fiber.Router) {
	router.Get("/", getDepartures)
}

func getDepartures(c *fiber.Ctx) error {
	var routeIDs []string
	if routesQuery := c.Query("routes"); routesQuery != "" {
		routeIDs = strings.Split(routesQuery, ",")
	}

	maxDepartures, err := strconv.Atoi(c.Query("max_departures", "20"))
	if err != nil || maxDepartures <= 0 {
		return badRequest(c, "Parameter max_departures should be a positive integer")
	}

	departureBoard, err := aggregator.DepartureBoard(c.UserContext(), routeIDs, maxDepartures)
	if err != nil {
		return renderError(c, err)
	}

	var foundRoutes []string
	for _, departure := range departureBoard {
		foundRoutes = append(foundRoutes, departure.RouteID)
	}

	departuresReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, departureBoard)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not reduce departure board",
		})
	}

	return c.JSON(fiber.Map{
		"requestedRoutes": routeIDs,
		"foundRoutes":     util.RemoveDuplicateStrings(foundRoutes, []string{}),
		"departureCount":  len(departureBoard),
		"departures":      departuresReduced,
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
	})
}

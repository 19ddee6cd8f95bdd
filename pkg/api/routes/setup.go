package routes

import (
	"github.com/clicktrip/clicktrip/pkg/departures"
	"github.com/clicktrip/clicktrip/pkg/places"
	"github.com/clicktrip/clicktrip/pkg/translink"
)

var (
	agencyClient *translink.Client
	placesClient *places.Client
	aggregator   *departures.Aggregator
)

// Setup wires the handlers to their upstream clients. Must run before the
// server starts taking requests.
func Setup(agency *translink.Client, placesLookup *places.Client) {
	agencyClient = agency
	placesClient = placesLookup

	aggregator = &departures.Aggregator{
		Agency: agency,
		Places: placesLookup,
	}
}

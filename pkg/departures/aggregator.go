package departures

import (
	"context"
	"time"

	"github.com/clicktrip/clicktrip/pkg/geo"
	"github.com/clicktrip/clicktrip/pkg/gtfs"
	"github.com/clicktrip/clicktrip/pkg/places"
	"github.com/clicktrip/clicktrip/pkg/translink"
	"github.com/clicktrip/clicktrip/pkg/util"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"golang.org/x/exp/slices"
)

// DisplayWindow is how far ahead of now a stop time is still worth showing.
const DisplayWindow = 120 * time.Minute

// Aggregator glues the station lookup, the realtime feeds and the route
// information API into the records the presentation layer consumes.
type Aggregator struct {
	Agency *translink.Client
	Places *places.Client
}

type TransitInfo struct {
	Stations []geo.Station                  `json:"stations" groups:"basic"`
	Vehicles []geo.VehicleStationAssignment `json:"vehicles" groups:"basic"`
	Summary  TransitSummary                 `json:"summary" groups:"basic"`
}

type TransitSummary struct {
	StationCount int      `json:"stationCount" groups:"basic"`
	VehicleCount int      `json:"vehicleCount" groups:"basic"`
	RouteIDs     []string `json:"routeIds" groups:"basic"`
}

// NearbyTransit discovers stations around a point and correlates live
// vehicles to them. The station lookup and the feed fetch are independent, so
// they run concurrently.
func (a *Aggregator) NearbyTransit(ctx context.Context, location geo.Coordinates, radiusMeters int, vehicleRadiusMeters float64) (*TransitInfo, error) {
	var stations []geo.Station
	var feedBytes []byte

	p := pool.New().WithErrors()
	p.Go(func() error {
		var err error
		stations, err = a.Places.NearbyStations(ctx, location, radiusMeters)
		if err != nil {
			return &UpstreamUnavailableError{Source: "places", Err: err}
		}
		return nil
	})
	p.Go(func() error {
		var err error
		feedBytes, err = a.Agency.FetchVehiclePositions(ctx)
		if err != nil {
			return &UpstreamUnavailableError{Source: "vehicle feed", Err: err}
		}
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	decoded, err := gtfs.DecodeFeed(feedBytes)
	if err != nil {
		return nil, err
	}

	vehicles := decoded.Vehicles
	util.InPlaceFilter(&vehicles, func(vehicle gtfs.VehiclePosition) bool {
		return vehicle.Latitude != 0 && vehicle.Longitude != 0 && vehicle.RouteID != ""
	})

	assignments := geo.Correlate(vehicles, stations, vehicleRadiusMeters)

	var routeIDs []string
	for _, assignment := range assignments {
		routeIDs = append(routeIDs, assignment.RouteID)
	}

	return &TransitInfo{
		Stations: stations,
		Vehicles: assignments,
		Summary: TransitSummary{
			StationCount: len(stations),
			VehicleCount: len(assignments),
			RouteIDs:     util.RemoveDuplicateStrings(routeIDs, []string{}),
		},
	}, nil
}

type Departure struct {
	RouteID string          `json:"routeId" groups:"basic"`
	Route   translink.Route `json:"route" groups:"basic"`

	TripID       string `json:"tripId" groups:"basic"`
	StopID       string `json:"stopId,omitempty" groups:"basic"`
	StopSequence uint32 `json:"stopSequence,omitempty" groups:"basic"`

	ScheduledTime time.Time  `json:"scheduledTime" groups:"basic"`
	RealTimeTime  *time.Time `json:"realTimeTime,omitempty" groups:"basic"`
	DelayMinutes  int        `json:"delay" groups:"basic"`

	Headsign string `json:"headsign" groups:"basic"`
}

// EffectiveTime is the instant the departure is expected to happen: the
// realtime estimate when one exists, the scheduled time otherwise.
func (d Departure) EffectiveTime() time.Time {
	if d.RealTimeTime != nil {
		return *d.RealTimeTime
	}

	return d.ScheduledTime
}

// DepartureBoard builds the upcoming departure list for a set of routes. An
// empty routeIDs list means all routes. Stop times outside [now, now+window)
// are dropped, and the result is stably sorted by effective departure time.
func (a *Aggregator) DepartureBoard(ctx context.Context, routeIDs []string, maxDepartures int) ([]Departure, error) {
	feedBytes, err := a.Agency.FetchTripUpdates(ctx)
	if err != nil {
		return nil, &UpstreamUnavailableError{Source: "trip update feed", Err: err}
	}

	decoded, err := gtfs.DecodeFeed(feedBytes)
	if err != nil {
		return nil, err
	}

	updates := decoded.TripUpdates
	if len(routeIDs) > 0 {
		util.InPlaceFilter(&updates, func(update gtfs.TripUpdate) bool {
			return update.RouteID != "" && util.ContainsString(routeIDs, update.RouteID)
		})
	}

	routes := a.routesByID(ctx, updates)

	departures := buildDepartures(updates, routes, time.Now())

	if maxDepartures > 0 && len(departures) > maxDepartures {
		departures = departures[:maxDepartures]
	}

	return departures, nil
}

// routesByID fetches metadata for every distinct route in the updates. Route
// IDs are only known after decoding, so these lookups cannot start earlier,
// but they are independent of each other and run fanned out.
func (a *Aggregator) routesByID(ctx context.Context, updates []gtfs.TripUpdate) map[string]translink.Route {
	var routeIDs []string
	for _, update := range updates {
		routeIDs = append(routeIDs, update.RouteID)
	}
	routeIDs = util.RemoveDuplicateStrings(routeIDs, []string{})

	p := pool.NewWithResults[translink.Route]()
	p.WithMaxGoroutines(8)

	for _, routeID := range routeIDs {
		p.Go(func() translink.Route {
			route, err := a.Agency.RouteInfo(ctx, routeID)
			if err != nil {
				log.Warn().Err(err).Str("route", routeID).Msg("Route info lookup failed")

				return translink.FallbackRoute(routeID)
			}

			return route
		})
	}

	routes := map[string]translink.Route{}
	for _, route := range p.Wait() {
		routes[route.ID] = route
	}

	return routes
}

func buildDepartures(updates []gtfs.TripUpdate, routes map[string]translink.Route, now time.Time) []Departure {
	windowEnd := now.Add(DisplayWindow)

	departures := []Departure{}

	for _, update := range updates {
		route, ok := routes[update.RouteID]
		if !ok {
			route = translink.FallbackRoute(update.RouteID)
		}

		for _, stopTimeUpdate := range update.StopTimeUpdates {
			event := stopTimeUpdate.Departure
			if event == nil || event.Time == 0 {
				event = stopTimeUpdate.Arrival
			}

			// Neither an arrival nor a departure time makes for a departure
			if event == nil || event.Time == 0 {
				continue
			}

			effectiveTime := time.Unix(event.Time, 0)
			if effectiveTime.Before(now) || !effectiveTime.Before(windowEnd) {
				continue
			}

			delaySeconds := event.Delay
			scheduledTime := effectiveTime.Add(-time.Duration(delaySeconds) * time.Second)

			departure := Departure{
				RouteID: update.RouteID,
				Route:   route,

				TripID:       update.TripID,
				StopID:       stopTimeUpdate.StopID,
				StopSequence: stopTimeUpdate.StopSequence,

				ScheduledTime: scheduledTime,
				DelayMinutes:  gtfs.DelayMinutes(delaySeconds),

				Headsign: route.LongName,
			}

			if delaySeconds != 0 {
				realTime := effectiveTime
				departure.RealTimeTime = &realTime
			}

			departures = append(departures, departure)
		}
	}

	slices.SortStableFunc(departures, func(a Departure, b Departure) int {
		switch {
		case a.EffectiveTime().Before(b.EffectiveTime()):
			return -1
		case b.EffectiveTime().Before(a.EffectiveTime()):
			return 1
		default:
			return 0
		}
	})

	return departures
}

// VehiclePositions returns every vehicle in the feed that carries usable
// coordinates and a route, plus the raw feed count.
func (a *Aggregator) VehiclePositions(ctx context.Context) ([]gtfs.VehiclePosition, int, error) {
	feedBytes, err := a.Agency.FetchVehiclePositions(ctx)
	if err != nil {
		return nil, 0, &UpstreamUnavailableError{Source: "vehicle feed", Err: err}
	}

	decoded, err := gtfs.DecodeFeed(feedBytes)
	if err != nil {
		return nil, 0, err
	}

	total := len(decoded.Vehicles)

	vehicles := decoded.Vehicles
	util.InPlaceFilter(&vehicles, func(vehicle gtfs.VehiclePosition) bool {
		return vehicle.Latitude != 0 && vehicle.Longitude != 0 && vehicle.RouteID != ""
	})

	return vehicles, total, nil
}

package geo

import (
	"math"

	"github.com/clicktrip/clicktrip/pkg/gtfs"
	"github.com/jinzhu/copier"
)

// Station is a transit stop location supplied by the places lookup. The
// correlator treats the list as read-only.
type Station struct {
	ID   string `json:"id" groups:"basic"`
	Name string `json:"name" groups:"basic"`

	Latitude  float64 `json:"lat" groups:"basic"`
	Longitude float64 `json:"lng" groups:"basic"`

	// Distance from the searched location, rounded to whole meters
	DistanceMeters float64 `json:"distance" groups:"basic"`

	Address string   `json:"address,omitempty" groups:"basic"`
	Types   []string `json:"types,omitempty" groups:"basic"`
}

// VehicleStationAssignment is a vehicle position annotated with its nearest
// station and the rounded distance to it.
type VehicleStationAssignment struct {
	VehicleID string `json:"vehicleId" groups:"basic"`
	TripID    string `json:"tripId,omitempty" groups:"basic"`
	RouteID   string `json:"routeId,omitempty" groups:"basic"`

	Latitude  float64 `json:"latitude" groups:"basic"`
	Longitude float64 `json:"longitude" groups:"basic"`
	Bearing   float64 `json:"bearing,omitempty" groups:"basic"`
	Speed     float64 `json:"speed,omitempty" groups:"basic"`

	Timestamp int64 `json:"timestamp" groups:"basic"`

	DistanceToStationMeters float64 `json:"distanceToStation" groups:"basic"`
	NearestStationID        string  `json:"nearestStationId" groups:"basic"`
	NearestStationName      string  `json:"nearestStationName" groups:"basic"`
}

// Correlate assigns each vehicle to its nearest station and drops vehicles
// whose nearest station is further than maxDistanceMeters away. The threshold
// comparison uses the unrounded distance; only the emitted value is rounded.
// Ties on distance resolve to the first station in input order, so identical
// inputs always produce identical output.
func Correlate(vehicles []gtfs.VehiclePosition, stations []Station, maxDistanceMeters float64) []VehicleStationAssignment {
	assignments := []VehicleStationAssignment{}

	for _, vehicle := range vehicles {
		if math.IsNaN(vehicle.Latitude) || math.IsNaN(vehicle.Longitude) {
			continue
		}

		nearestIndex := -1
		minDistance := math.Inf(1)

		for i, station := range stations {
			distance := Haversine(vehicle.Latitude, vehicle.Longitude, station.Latitude, station.Longitude)

			if distance < minDistance {
				minDistance = distance
				nearestIndex = i
			}
		}

		if nearestIndex == -1 || minDistance > maxDistanceMeters {
			continue
		}

		assignment := VehicleStationAssignment{
			DistanceToStationMeters: math.Round(minDistance),
			NearestStationID:        stations[nearestIndex].ID,
			NearestStationName:      stations[nearestIndex].Name,
		}
		copier.Copy(&assignment, &vehicle)

		assignments = append(assignments, assignment)
	}

	return assignments
}

package geo

import "math"

// EarthRadiusMeters is the mean Earth radius used for great-circle distances.
const EarthRadiusMeters = 6371000.0

type Coordinates struct {
	Latitude  float64 `json:"latitude" groups:"basic"`
	Longitude float64 `json:"longitude" groups:"basic"`
}

// Haversine returns the great-circle distance in meters between two WGS84
// coordinate pairs.
func Haversine(lat1 float64, lon1 float64, lat2 float64, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	deltaPhi := (lat2 - lat1) * math.Pi / 180
	deltaLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// EstimateWalkingMinutes estimates a walking duration between two points at
// 1.4 m/s (roughly 5 km/h), rounded up to whole minutes.
func EstimateWalkingMinutes(from Coordinates, to Coordinates) int {
	const walkingSpeedMetersPerSecond = 1.4

	distance := Haversine(from.Latitude, from.Longitude, to.Latitude, to.Longitude)

	return int(math.Ceil(distance / walkingSpeedMetersPerSecond / 60))
}

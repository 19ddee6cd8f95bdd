package places

import (
	"context"
	"net/http"
	"testing"

	"github.com/clicktrip/clicktrip/pkg/geo"
	"github.com/stretchr/testify/assert"
)

func TestWalkingTime(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "walking", r.URL.Query().Get("mode"))

		// 250 seconds rounds up to 5 minutes
		w.Write([]byte(`{
			"status": "OK",
			"routes": [{"legs": [{"duration": {"value": 250}}]}]
		}`))
	}))

	from := geo.Coordinates{Latitude: 49.2827, Longitude: -123.1207}
	to := geo.Coordinates{Latitude: 49.2820, Longitude: -123.1200}

	assert.Equal(t, 5, client.WalkingTime(context.Background(), from, to))
}

func TestWalkingTimeFallsBackToEstimate(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	from := geo.Coordinates{Latitude: 49.2827, Longitude: -123.1207}
	to := geo.Coordinates{Latitude: 49.2820, Longitude: -123.1200}

	assert.Equal(t, geo.EstimateWalkingMinutes(from, to), client.WalkingTime(context.Background(), from, to))
}

func TestWalkingTimeFallsBackWhenNoRoute(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "routes": []}`))
	}))

	from := geo.Coordinates{Latitude: 49.2827, Longitude: -123.1207}
	to := geo.Coordinates{Latitude: 49.2820, Longitude: -123.1200}

	assert.Equal(t, geo.EstimateWalkingMinutes(from, to), client.WalkingTime(context.Background(), from, to))
}

func TestWalkingCacheKey(t *testing.T) {
	from := geo.Coordinates{Latitude: 49.28271234, Longitude: -123.12074321}
	to := geo.Coordinates{Latitude: 49.2820, Longitude: -123.1200}

	key := walkingCacheKey(from, to)

	assert.Equal(t, "walkingtime/49.2827,-123.1207/49.2820,-123.1200", key)

	// Coordinates within ~11m of each other share a key
	nudged := geo.Coordinates{Latitude: 49.28268, Longitude: -123.12072}
	assert.Equal(t, key, walkingCacheKey(nudged, to))
}

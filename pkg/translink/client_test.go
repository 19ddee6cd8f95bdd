package translink

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchVehiclePositions(t *testing.T) {
	payload := []byte{0x0a, 0x0d, 0x0a, 0x03}

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gtfsposition", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		assert.Equal(t, "application/x-protobuf", r.Header.Get("Accept"))

		w.Write(payload)
	}))

	data, err := client.FetchVehiclePositions(context.Background())
	require.NoError(t, err)

	assert.Equal(t, payload, data)
}

func TestFetchTripUpdates(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gtfsrealtime", r.URL.Path)

		w.Write([]byte{0x0a})
	}))

	data, err := client.FetchTripUpdates(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []byte{0x0a}, data)
}

func TestFetchFeedUpstreamError(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	_, err := client.FetchVehiclePositions(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestLoadEndpoints(t *testing.T) {
	endpoints, err := loadEndpoints()
	require.NoError(t, err)

	assert.Equal(t, "https://gtfsapi.translink.ca/v3", endpoints.GTFS.BaseURL)
	assert.Equal(t, "/gtfsposition", endpoints.GTFS.PositionsPath)
	assert.Equal(t, "/gtfsrealtime", endpoints.GTFS.TripUpdatesPath)
	assert.Equal(t, "https://api.translink.ca/rttiapi/v1", endpoints.RTTI.BaseURL)
	assert.Equal(t, "/routes", endpoints.RTTI.RoutesPath)
}

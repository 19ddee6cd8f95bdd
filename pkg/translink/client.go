package translink

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
)

// Client talks to the agency's GTFS-realtime feed endpoints and its route
// information REST API.
type Client struct {
	APIKey string

	httpClient *http.Client
	endpoints  Endpoints

	routeCache *cache.Cache[string]
}

func NewClient(apiKey string) (*Client, error) {
	endpoints, err := loadEndpoints()
	if err != nil {
		return nil, fmt.Errorf("load agency endpoint definitions: %w", err)
	}

	return &Client{
		APIKey: apiKey,

		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		endpoints: endpoints,
	}, nil
}

// FetchVehiclePositions returns the raw protobuf bytes of the vehicle
// position feed. Decoding is the caller's job.
func (c *Client) FetchVehiclePositions(ctx context.Context) ([]byte, error) {
	return c.fetchFeed(ctx, c.endpoints.GTFS.PositionsPath)
}

// FetchTripUpdates returns the raw protobuf bytes of the trip update feed.
func (c *Client) FetchTripUpdates(ctx context.Context) ([]byte, error) {
	return c.fetchFeed(ctx, c.endpoints.GTFS.TripUpdatesPath)
}

func (c *Client) fetchFeed(ctx context.Context, path string) ([]byte, error) {
	url := fmt.Sprintf("%s%s?apikey=%s", c.endpoints.GTFS.BaseURL, path, c.APIKey)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	request.Header.Set("Accept", "application/x-protobuf")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("agency feed endpoint %s returned status %d", path, response.StatusCode)
	}

	return io.ReadAll(response.Body)
}

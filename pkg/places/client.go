package places

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/clicktrip/clicktrip/pkg/geo"
	"github.com/eko/gocache/lib/v4/cache"
	"golang.org/x/exp/slices"
)

const (
	defaultNearbySearchURL = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"
	defaultGeocodeURL      = "https://maps.googleapis.com/maps/api/geocode/json"
	defaultDirectionsURL   = "https://maps.googleapis.com/maps/api/directions/json"
)

// Client wraps the places provider used for station discovery, address
// geocoding and walking directions.
type Client struct {
	APIKey string

	httpClient *http.Client

	nearbySearchURL string
	geocodeURL      string
	directionsURL   string

	walkingCache *cache.Cache[string]
}

func NewClient(apiKey string) *Client {
	return &Client{
		APIKey: apiKey,

		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},

		nearbySearchURL: defaultNearbySearchURL,
		geocodeURL:      defaultGeocodeURL,
		directionsURL:   defaultDirectionsURL,
	}
}

type placesSearchResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`

	Results []struct {
		PlaceID  string `json:"place_id"`
		Name     string `json:"name"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		Vicinity string   `json:"vicinity"`
		Types    []string `json:"types"`
	} `json:"results"`
}

// NearbyStations finds transit stations around a point, annotated with the
// great-circle distance from that point and sorted nearest first. An area
// with no stations yields an empty list, not an error.
func (c *Client) NearbyStations(ctx context.Context, location geo.Coordinates, radiusMeters int) ([]geo.Station, error) {
	query := url.Values{}
	query.Set("location", fmt.Sprintf("%f,%f", location.Latitude, location.Longitude))
	query.Set("radius", fmt.Sprintf("%d", radiusMeters))
	query.Set("type", "transit_station")
	query.Set("key", c.APIKey)

	var searchResponse placesSearchResponse
	if err := c.getJson(ctx, c.nearbySearchURL, query, &searchResponse); err != nil {
		return nil, err
	}

	if searchResponse.Status == "ZERO_RESULTS" {
		return []geo.Station{}, nil
	}
	if searchResponse.Status != "OK" {
		return nil, fmt.Errorf("places search failed: %s %s", searchResponse.Status, searchResponse.ErrorMessage)
	}

	stations := []geo.Station{}
	for _, place := range searchResponse.Results {
		distance := geo.Haversine(location.Latitude, location.Longitude, place.Geometry.Location.Lat, place.Geometry.Location.Lng)

		stations = append(stations, geo.Station{
			ID:   place.PlaceID,
			Name: place.Name,

			Latitude:  place.Geometry.Location.Lat,
			Longitude: place.Geometry.Location.Lng,

			DistanceMeters: math.Round(distance),

			Address: place.Vicinity,
			Types:   place.Types,
		})
	}

	slices.SortStableFunc(stations, func(a geo.Station, b geo.Station) int {
		switch {
		case a.DistanceMeters < b.DistanceMeters:
			return -1
		case a.DistanceMeters > b.DistanceMeters:
			return 1
		default:
			return 0
		}
	})

	return stations, nil
}

type GeocodeResult struct {
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	FormattedAddress string  `json:"formattedAddress"`
	City             string  `json:"city,omitempty"`
	Country          string  `json:"country,omitempty"`
}

type geocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`

	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		AddressComponents []struct {
			LongName string   `json:"long_name"`
			Types    []string `json:"types"`
		} `json:"address_components"`
	} `json:"results"`
}

// Geocode resolves a free-form address to coordinates using the first (best)
// result the provider returns.
func (c *Client) Geocode(ctx context.Context, address string) (*GeocodeResult, error) {
	query := url.Values{}
	query.Set("address", address)
	query.Set("key", c.APIKey)

	var response geocodeResponse
	if err := c.getJson(ctx, c.geocodeURL, query, &response); err != nil {
		return nil, err
	}

	if response.Status == "ZERO_RESULTS" || len(response.Results) == 0 {
		return nil, fmt.Errorf("no geocoding results for %q", address)
	}
	if response.Status != "OK" {
		return nil, fmt.Errorf("geocoding failed: %s %s", response.Status, response.ErrorMessage)
	}

	best := response.Results[0]

	result := &GeocodeResult{
		Latitude:         best.Geometry.Location.Lat,
		Longitude:        best.Geometry.Location.Lng,
		FormattedAddress: best.FormattedAddress,
	}

	for _, component := range best.AddressComponents {
		if slices.Contains(component.Types, "locality") || slices.Contains(component.Types, "administrative_area_level_1") {
			if result.City == "" {
				result.City = component.LongName
			}
		}
		if slices.Contains(component.Types, "country") {
			result.Country = component.LongName
		}
	}

	return result, nil
}

func (c *Client) getJson(ctx context.Context, endpoint string, query url.Values, target any) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s?%s", endpoint, query.Encode()), nil)
	if err != nil {
		return err
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("places provider returned status %d", response.StatusCode)
	}

	return json.NewDecoder(response.Body).Decode(target)
}

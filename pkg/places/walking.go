package places

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"time"

	"github.com/clicktrip/clicktrip/pkg/geo"
	"github.com/clicktrip/clicktrip/pkg/redis_client"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/rs/zerolog/log"
)

// EnableWalkingCache caches walking time lookups in Redis, keyed by
// coordinates quantized to ~11m, so repeated station lookups from the same
// neighbourhood skip the directions API.
func (c *Client) EnableWalkingCache() {
	redisStore := redisstore.NewRedis(redis_client.Client, store.WithExpiration(90*time.Minute))

	c.walkingCache = cache.New[string](redisStore)
}

type directionsResponse struct {
	Status string `json:"status"`

	Routes []struct {
		Legs []struct {
			Duration struct {
				Value int `json:"value"`
			} `json:"duration"`
		} `json:"legs"`
	} `json:"routes"`
}

// WalkingTime returns the walking duration between two points in whole
// minutes, rounded up. When the directions provider cannot produce a route
// the estimate falls back to great-circle distance at walking pace.
func (c *Client) WalkingTime(ctx context.Context, from geo.Coordinates, to geo.Coordinates) int {
	cacheKey := walkingCacheKey(from, to)

	if c.walkingCache != nil {
		if cached, err := c.walkingCache.Get(ctx, cacheKey); err == nil {
			if minutes, err := strconv.Atoi(cached); err == nil {
				return minutes
			}
		}
	}

	minutes, err := c.fetchWalkingTime(ctx, from, to)
	if err != nil {
		log.Debug().Err(err).Msg("Directions lookup failed, falling back to distance estimate")

		return geo.EstimateWalkingMinutes(from, to)
	}

	if c.walkingCache != nil {
		if err := c.walkingCache.Set(ctx, cacheKey, strconv.Itoa(minutes)); err != nil {
			log.Debug().Err(err).Msg("Failed to cache walking time")
		}
	}

	return minutes
}

func (c *Client) fetchWalkingTime(ctx context.Context, from geo.Coordinates, to geo.Coordinates) (int, error) {
	query := url.Values{}
	query.Set("origin", fmt.Sprintf("%f,%f", from.Latitude, from.Longitude))
	query.Set("destination", fmt.Sprintf("%f,%f", to.Latitude, to.Longitude))
	query.Set("mode", "walking")
	query.Set("key", c.APIKey)

	var response directionsResponse
	if err := c.getJson(ctx, c.directionsURL, query, &response); err != nil {
		return 0, err
	}

	if response.Status != "OK" || len(response.Routes) == 0 || len(response.Routes[0].Legs) == 0 {
		return 0, fmt.Errorf("no walking route found (status %s)", response.Status)
	}

	durationSeconds := response.Routes[0].Legs[0].Duration.Value

	return int(math.Ceil(float64(durationSeconds) / 60)), nil
}

func walkingCacheKey(from geo.Coordinates, to geo.Coordinates) string {
	quantize := func(coordinate float64) float64 {
		return math.Round(coordinate*10000) / 10000
	}

	return fmt.Sprintf("walkingtime/%.4f,%.4f/%.4f,%.4f",
		quantize(from.Latitude), quantize(from.Longitude),
		quantize(to.Latitude), quantize(to.Longitude))
}

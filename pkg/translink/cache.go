package translink

import (
	"time"

	"github.com/clicktrip/clicktrip/pkg/redis_client"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
)

// EnableRouteCache caches route information lookups in Redis. Route names and
// modes change rarely, so a long expiry is safe.
func (c *Client) EnableRouteCache() {
	redisStore := redisstore.NewRedis(redis_client.Client, store.WithExpiration(6*time.Hour))

	c.routeCache = cache.New[string](redisStore)
}

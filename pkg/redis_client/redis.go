package redis_client

import (
	"context"
	"strconv"

	"github.com/clicktrip/clicktrip/pkg/util"
	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

const defaultConnectionAddress = "localhost:6379"

// Connect initialises the shared Redis client used by the upstream response
// caches. Settings come from CLICKTRIP_REDIS_ADDRESS, CLICKTRIP_REDIS_PASSWORD
// and CLICKTRIP_REDIS_DATABASE.
func Connect() error {
	env := util.GetEnvironmentVariables()

	address := defaultConnectionAddress
	password := ""
	database := 0

	if env["CLICKTRIP_REDIS_ADDRESS"] != "" {
		address = env["CLICKTRIP_REDIS_ADDRESS"]
	}

	if env["CLICKTRIP_REDIS_PASSWORD"] != "" {
		password = env["CLICKTRIP_REDIS_PASSWORD"]
	}

	if env["CLICKTRIP_REDIS_DATABASE"] != "" {
		n, err := strconv.Atoi(env["CLICKTRIP_REDIS_DATABASE"])
		if err != nil {
			return err
		}
		database = n
	}

	Client = redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       database,
	})

	return Client.Ping(context.Background()).Err()
}

package api

import (
	"errors"

	"github.com/clicktrip/clicktrip/pkg/api/routes"
	"github.com/clicktrip/clicktrip/pkg/places"
	"github.com/clicktrip/clicktrip/pkg/redis_client"
	"github.com/clicktrip/clicktrip/pkg/translink"
	"github.com/clicktrip/clicktrip/pkg/util"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the departure viewer web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: util.GetEnvDefault("CLICKTRIP_LISTEN", ":8080"),
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					env := util.GetEnvironmentVariables()

					agencyKey := env["CLICKTRIP_TRANSLINK_API_KEY"]
					if agencyKey == "" {
						return errors.New("CLICKTRIP_TRANSLINK_API_KEY must be set")
					}

					placesKey := env["CLICKTRIP_GOOGLE_MAPS_API_KEY"]
					if placesKey == "" {
						return errors.New("CLICKTRIP_GOOGLE_MAPS_API_KEY must be set")
					}

					agencyClient, err := translink.NewClient(agencyKey)
					if err != nil {
						return err
					}

					placesClient := places.NewClient(placesKey)

					if err := redis_client.Connect(); err != nil {
						log.Warn().Err(err).Msg("Redis unavailable, upstream response caches disabled")
					} else {
						agencyClient.EnableRouteCache()
						placesClient.EnableWalkingCache()
					}

					routes.Setup(agencyClient, placesClient)

					return SetupServer(c.String("listen"))
				},
			},
		},
	}
}

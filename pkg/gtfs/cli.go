package gtfs

import (
	"errors"
	"os"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "realtime",
		Usage: "Work with raw GTFS-realtime feed data",
		Subcommands: []*cli.Command{
			{
				Name:      "decode",
				Usage:     "decode a feed file and dump its records",
				ArgsUsage: "<file>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return errors.New("expected exactly one feed file")
					}

					data, err := os.ReadFile(c.Args().First())
					if err != nil {
						return err
					}

					decoded, err := DecodeFeed(data)
					if err != nil {
						return err
					}

					pretty.Println(decoded)

					log.Info().
						Int("vehicles", len(decoded.Vehicles)).
						Int("tripupdates", len(decoded.TripUpdates)).
						Int("alerts", len(decoded.Alerts)).
						Msg("Decoded feed")

					return nil
				},
			},
		},
	}
}

package main

import (
	"os"
	"time"

	"github.com/clicktrip/clicktrip/pkg/api"
	"github.com/clicktrip/clicktrip/pkg/gtfs"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("CLICKTRIP_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("CLICKTRIP_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "clicktrip",
		Description: "Location based transit departure viewer - all services in one binary",

		Commands: []*cli.Command{
			api.RegisterCLI(),
			gtfs.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}

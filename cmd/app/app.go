package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/formsight/backend/cmd/app/server"
	"github.com/formsight/backend/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "formsight",
		Description: "The FormSight motion analysis and scoring backend. Built with Go, fiber and go.uber.org/fx. Uses NATS for live score publishing and Redis as the report archive.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}

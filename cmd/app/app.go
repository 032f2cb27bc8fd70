package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/leaguekeeper/teamdata/cmd/app/cli/headtohead"
	"github.com/leaguekeeper/teamdata/cmd/app/cli/maintenance"
	"github.com/leaguekeeper/teamdata/cmd/app/cli/snapshot"
	"github.com/leaguekeeper/teamdata/cmd/app/worker"
	"github.com/leaguekeeper/teamdata/internal/pkg/bininfo"
)

func Run() {
	commands := []*cli.Command{
		snapshot.Command(),
		headtohead.Command(),
		worker.Command(),
	}
	commands = append(commands, maintenance.Commands()...)

	app := &cli.App{
		Name:        "teamdata",
		Description: "Resolves team snapshots across the durable and fast storage tiers of a league. Built with Go, bun, go-redis and go.uber.org/fx.",
		Version:     bininfo.Describe(),
		Commands:    commands,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}

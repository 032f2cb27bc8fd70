package cli

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/leaguekeeper/teamdata/internal/app"
	"github.com/leaguekeeper/teamdata/internal/app/appcontext"
	"github.com/leaguekeeper/teamdata/internal/core/team"
)

// Start builds the application graph for a one-shot command and starts it.
// The returned stop func releases the infrastructure connections.
func Start(ctx context.Context, module fx.Option) (stop func(), err error) {
	fxApp := app.New(appcontext.Declare(appcontext.EnvCLI), module)
	if err := fxApp.Start(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to start application")
	}
	return func() {
		_ = fxApp.Stop(context.Background())
	}, nil
}

// DepsFn populates T from the application graph.
func DepsFn[T any]() func(ctx context.Context) (T, func(), error) {
	return func(ctx context.Context) (T, func(), error) {
		var deps T
		stop, err := Start(ctx, fx.Populate(&deps))
		return deps, stop, err
	}
}

var LeagueFlags = []cli.Flag{
	&cli.IntFlag{
		Name:     "current-season",
		Usage:    "the league's current season",
		Required: true,
	},
	&cli.BoolFlag{
		Name:  "ties",
		Usage: "the league records ties",
	},
	&cli.BoolFlag{
		Name:  "otl",
		Usage: "the league records overtime losses",
	},
}

// League reads the league context from LeagueFlags.
func League(c *cli.Context, recencyHorizon int) team.League {
	return team.League{
		Season:         c.Int("current-season"),
		RecencyHorizon: recencyHorizon,
		Ties:           c.Bool("ties"),
		Otl:            c.Bool("otl"),
	}
}

// Print writes v to the command's output as indented JSON.
func Print(c *cli.Context, v any) error {
	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(v), "failed to write output")
}

package headtohead

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module("headtohead",
		fx.Provide(
			fx.Annotate(NewRepo, fx.As(new(Source), new(Recorder))),
			NewService,
		),
	)
}

package worker

import (
	"context"
	"net"
	"net/http"
	"net/http/pprof"

	"github.com/felixge/fgprof"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/leaguekeeper/teamdata/internal/app/appconfig"
)

// DevOps serves metrics and profiles on conf.DevOpsAddress.
func DevOps(conf *appconfig.Config, lc fx.Lifecycle) {
	if conf.DevOpsAddress == "" {
		log.Info().
			Str("evt.name", "devops.disabled").
			Msg("devops listener is disabled")
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/debug/fgprof", fgprof.Handler())
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)

	srv := &http.Server{Addr: conf.DevOpsAddress, Handler: mux}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", conf.DevOpsAddress)
			if err != nil {
				return err
			}
			go func() {
				if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
					log.Error().Err(err).Str("evt.name", "devops.serve").Msg("devops listener stopped")
				}
			}()
			log.Info().Str("address", conf.DevOpsAddress).Msg("devops listener started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

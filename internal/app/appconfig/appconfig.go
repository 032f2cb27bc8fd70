package appconfig

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/leaguekeeper/teamdata/internal/app/appcontext"
)

const EnvPrefix = "teamdata"

func Parse(ctx appcontext.Ctx) (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Warn().Err(err).Msg("failed to load .env file")
	}

	var config ConfigSpec
	err = envconfig.Process(EnvPrefix, &config)
	if err != nil {
		_ = envconfig.Usage(EnvPrefix, &config)
		return nil, errors.Wrap(err, "failed to parse configuration. More info on how to configure teamdata is located at internal/app/appconfig/spec.go")
	}

	return &Config{
		ConfigSpec: config,
		AppContext: ctx,
	}, nil
}

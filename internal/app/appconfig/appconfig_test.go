package appconfig

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaguekeeper/teamdata/internal/app/appcontext"
)

func TestParseDefaults(t *testing.T) {
	conf, err := Parse(appcontext.Declare(appcontext.EnvCLI))
	require.NoError(t, err)

	assert.Equal(t, 2, conf.RecencyHorizon)
	assert.Equal(t, "basketball", conf.Sport)
	assert.Equal(t, "teamdata", conf.RedisKeyPrefix)
	assert.Equal(t, 10*time.Minute, conf.FeedRefreshInterval)
	assert.Equal(t, appcontext.EnvCLI, conf.AppContext.Env)
}

func TestParseFromEnvironment(t *testing.T) {
	t.Setenv("TEAMDATA_RECENCY_HORIZON", "4")
	t.Setenv("TEAMDATA_OVERRIDE_FEED_URI", "s3://leagues/real-team-info.json")

	conf, err := Parse(appcontext.Declare(appcontext.EnvWorker))
	require.NoError(t, err)

	assert.Equal(t, 4, conf.RecencyHorizon)
	assert.Equal(t, "s3://leagues/real-team-info.json", conf.OverrideFeedURI)
}

func TestParseRejectsMalformedValues(t *testing.T) {
	t.Setenv("TEAMDATA_RECENCY_HORIZON", "two")

	_, err := Parse(appcontext.Declare(appcontext.EnvCLI))
	assert.Error(t, err)
}

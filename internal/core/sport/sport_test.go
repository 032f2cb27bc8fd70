package sport

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaguekeeper/teamdata/internal/app/appconfig"
	"github.com/leaguekeeper/teamdata/internal/core/team"
	"github.com/leaguekeeper/teamdata/internal/pkg/apperr"
)

func TestLookup(t *testing.T) {
	s, err := Lookup("basketball")
	require.NoError(t, err)
	assert.Equal(t, "basketball", s.Name)
	assert.NotNil(t, s.Stats)
	assert.NotNil(t, s.Ovr)

	_, err = Lookup("curling")
	assert.ErrorIs(t, err, apperr.ErrConfiguration)
	assert.True(t, apperr.IsFatal(err))
}

func TestNewFromConfigFailsFast(t *testing.T) {
	_, err := NewFromConfig(&appconfig.Config{ConfigSpec: appconfig.ConfigSpec{Sport: "quidditch"}})
	assert.ErrorIs(t, err, apperr.ErrConfiguration)
}

func TestBasketballStats(t *testing.T) {
	ts := &team.TeamStats{
		Gp: 10,
		Totals: map[string]float64{
			"pts":    1100,
			"oppPts": 1000,
			"fg":     400,
			"fga":    800,
			"orb":    100,
			"drb":    300,
		},
	}

	perGame := BasketballStats{}.ProcessStats(ts, []string{"gp", "pts", "fgp", "trb", "mov", "blk"}, false, team.StatTypePerGame)
	assert.Equal(t, 10.0, perGame["gp"])
	assert.Equal(t, 110.0, perGame["pts"])
	assert.Equal(t, 50.0, perGame["fgp"])
	assert.Equal(t, 40.0, perGame["trb"])
	assert.Equal(t, 10.0, perGame["mov"])
	assert.Equal(t, 0.0, perGame["blk"])
	assert.Equal(t, false, perGame["playoffs"])

	totals := BasketballStats{}.ProcessStats(ts, []string{"pts", "trb", "fgp"}, true, team.StatTypeTotals)
	assert.Equal(t, 1100.0, totals["pts"])
	assert.Equal(t, 400.0, totals["trb"])
	assert.Equal(t, 50.0, totals["fgp"])
}

func TestBasketballStatsEmptyRecord(t *testing.T) {
	row := BasketballStats{}.ProcessStats(&team.TeamStats{}, []string{"pts", "fgp", "mov"}, false, team.StatTypePerGame)
	assert.Equal(t, 0.0, row["pts"])
	assert.Equal(t, 0.0, row["fgp"])
	assert.Equal(t, 0.0, row["mov"])
}

func TestBasketballOvr(t *testing.T) {
	// an empty roster predicts the intercept, far below the floor
	assert.Equal(t, 0.0, BasketballOvr(nil, OvrOptions{}))

	players := make([]Player, 12)
	for i := range players {
		players[i] = Player{Ovr: 60}
	}
	// 0.4417 * sum(exp(-0.1905 i), i < 10) * 60 - 124.13 = 5.92, rescaled to 69.74 and rounded
	assert.Equal(t, 70.0, BasketballOvr(players, OvrOptions{}))

	better := append([]Player{{Ovr: 75}}, players...)
	assert.Greater(t, BasketballOvr(better, OvrOptions{}), BasketballOvr(players, OvrOptions{}))
}

func TestBasketballOvrRatingReturnsMargin(t *testing.T) {
	players := []Player{{Ovrs: map[string]float64{"dnk": 80}}}
	mov := BasketballOvr(players, OvrOptions{Rating: "dnk"})
	assert.InDelta(t, -124.13+0.4417*80, mov, 1e-9)
}

func TestRaterRatesRosterFromFastTier(t *testing.T) {
	ctx := context.Background()
	fast := team.NewMemoryTier()

	roster := make([]*team.Player, 12)
	for i := range roster {
		roster[i] = &team.Player{Pid: i, Tid: 3, Ovr: 60}
	}
	require.NoError(t, fast.PutPlayers(ctx, 3, roster))

	s, err := Lookup("basketball")
	require.NoError(t, err)
	r := NewRater(s, fast)

	ovr, err := r.Ovr(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 70.0, ovr)

	// a team without a roster rates at the floor
	ovr, err = r.Ovr(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, 0.0, ovr)
}

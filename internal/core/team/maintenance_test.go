package team

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaguekeeper/teamdata/internal/core/override"
	"github.com/leaguekeeper/teamdata/internal/core/payroll"
	"github.com/leaguekeeper/teamdata/internal/pkg/apperr"
)

func TestApplyOverrides(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	feed := override.Feed{
		"BOS": {
			Fields: override.Fields{Abbrev: "BOS", Region: "Boston", Name: "Celtics"},
			Seasons: map[string]*override.Fields{
				"2021": {Jersey: "jersey5"},
			},
		},
	}

	updated, err := f.service.ApplyOverrides(ctx, feed, 2021, override.Options{})
	require.NoError(t, err)
	// the team and its 2021 season row
	assert.Equal(t, 2, updated)

	team, err := f.fast.Team(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "Celtics", team.Name)
	assert.Equal(t, "jersey5", team.Jersey)

	rows, err := f.fast.TeamSeasonsBySeasonTid(ctx, 2021, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Boston", rows[0].Region)
	assert.Equal(t, "jersey5", rows[0].Jersey)

	updated, err = f.service.ApplyOverrides(ctx, feed, 2021, override.Options{})
	require.NoError(t, err)
	assert.Zero(t, updated)
}

type readOnlyFast struct {
	FastTier
}

func TestApplyOverridesNeedsWritableFastTier(t *testing.T) {
	f := newFixture(t)
	f.service.Fast = readOnlyFast{f.fast}

	_, err := f.service.ApplyOverrides(context.Background(), override.Feed{}, 2021, override.Options{})
	assert.ErrorIs(t, err, apperr.ErrConfiguration)
}

func TestArchiveSeason(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	seasons, stats, err := f.service.ArchiveSeason(ctx, 2020)
	require.NoError(t, err)
	assert.Equal(t, 1, seasons)
	assert.Equal(t, 1, stats)

	rows, err := f.durable.TeamSeasonsBySeasonTid(ctx, 2020, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 6, rows[0].Rid)

	archived, err := f.durable.TeamStatsBySeasonTid(ctx, 2020, 0)
	require.NoError(t, err)
	require.Len(t, archived, 1)
	assert.Equal(t, 150, archived[0].Rid)
}

func TestLoadFast(t *testing.T) {
	fast := NewMemoryTier()
	s := &Service{Fast: fast, Payroll: payroll.NewService(fast), Concurrency: 2}
	ctx := context.Background()

	dump := &FastDump{
		Teams:       []*Team{{Tid: 0, SrID: "BOS"}, {Tid: 1, SrID: "SEA"}},
		TeamSeasons: []*TeamSeason{{Rid: 1, Tid: 0, Season: 2021, Won: 3}},
		TeamStats:   []*TeamStats{{Rid: 2, Tid: 1, Season: 2021, Gp: 4}},
		Contracts: []payroll.Contract{
			{Pid: 1, Tid: 0, Amount: 1000},
			{Pid: 2, Tid: 0, Amount: 2000},
			{Pid: 3, Tid: 1, Amount: 500},
		},
		Players: []*Player{{Pid: 1, Tid: 0, Ovr: 55}, {Pid: 3, Tid: 1, Ovr: 48}},
	}

	n, err := s.LoadFast(ctx, dump, false)
	require.NoError(t, err)
	assert.Equal(t, 9, n)

	teams, err := fast.Teams(ctx)
	require.NoError(t, err)
	assert.Len(t, teams, 2)

	contracts, err := fast.Contracts(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, contracts, 2)

	players, err := fast.Players(ctx, 1)
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, 48.0, players[0].Ovr)

	// reset drops the records the new dump does not carry
	n, err = s.LoadFast(ctx, &FastDump{Teams: []*Team{{Tid: 5, SrID: "LAL"}}}, true)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	teams, err = fast.Teams(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, 5, teams[0].Tid)

	contracts, err = fast.Contracts(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, contracts)
}

func TestLoadFastNeedsWritableFastTier(t *testing.T) {
	s := &Service{Fast: readOnlyFast{NewMemoryTier()}}

	_, err := s.LoadFast(context.Background(), &FastDump{}, true)
	assert.ErrorIs(t, err, apperr.ErrConfiguration)
}

package team

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTierCopiesOnReadAndWrite(t *testing.T) {
	ctx := context.Background()
	tier := NewMemoryTier()

	original := &TeamSeason{Rid: 1, Tid: 2, Season: 2020, LastTen: []int{1, 0}}
	require.NoError(t, tier.PutTeamSeason(ctx, original))
	original.LastTen[0] = 0

	rows, err := tier.TeamSeasonsByTid(ctx, 2)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []int{1, 0}, rows[0].LastTen)

	rows[0].LastTen[1] = 1
	again, err := tier.TeamSeasonsBySeasonTid(ctx, 2020, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, again[0].LastTen)
}

func TestMemoryTierTeams(t *testing.T) {
	ctx := context.Background()
	tier := NewMemoryTier()

	for _, tid := range []int{3, 1, 2} {
		require.NoError(t, tier.PutTeam(ctx, &Team{Tid: tid}))
	}

	teams, err := tier.Teams(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{teams[0].Tid, teams[1].Tid, teams[2].Tid})

	missing, err := tier.Team(ctx, 9)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryTierStatsByPlayoffs(t *testing.T) {
	ctx := context.Background()
	tier := NewMemoryTier()

	require.NoError(t, tier.PutTeamStats(ctx, &TeamStats{Rid: 1, Tid: 0, Playoffs: false}))
	require.NoError(t, tier.PutTeamStats(ctx, &TeamStats{Rid: 2, Tid: 0, Playoffs: true}))
	require.NoError(t, tier.PutTeamStats(ctx, &TeamStats{Rid: 3, Tid: 1, Playoffs: true}))

	rows, err := tier.TeamStatsByPlayoffsTid(ctx, true, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].Rid)
}

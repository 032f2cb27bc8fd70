package team

import (
	"context"

	"github.com/leaguekeeper/teamdata/internal/core/payroll"
)

const (
	TierDurable = "durable"
	TierFast    = "fast"
)

// DurableStore is the append-only history of past seasons.
type DurableStore interface {
	TeamSeasonsByTid(ctx context.Context, tid int) ([]*TeamSeason, error)
	TeamSeasonsBySeasonTid(ctx context.Context, season int, tid int) ([]*TeamSeason, error)
	TeamStatsByTid(ctx context.Context, tid int) ([]*TeamStats, error)
	TeamStatsBySeasonTid(ctx context.Context, season int, tid int) ([]*TeamStats, error)
}

// FastTier holds the current teams and the recent, still mutable, season
// rows and stats. Team returns nil with no error when tid is unknown.
type FastTier interface {
	Team(ctx context.Context, tid int) (*Team, error)
	Teams(ctx context.Context) ([]*Team, error)
	TeamSeasonsByTid(ctx context.Context, tid int) ([]*TeamSeason, error)
	TeamSeasonsBySeasonTid(ctx context.Context, season int, tid int) ([]*TeamSeason, error)
	TeamStatsByPlayoffsTid(ctx context.Context, playoffs bool, tid int) ([]*TeamStats, error)
}

// FastTierWriter is implemented by fast tiers that accept writes. Reset
// drops every record held by the tier.
type FastTierWriter interface {
	PutTeam(ctx context.Context, t *Team) error
	PutTeamSeason(ctx context.Context, ts *TeamSeason) error
	PutTeamStats(ctx context.Context, ts *TeamStats) error
	PutContracts(ctx context.Context, tid int, contracts []payroll.Contract) error
	PutPlayers(ctx context.Context, tid int, players []*Player) error
	Reset(ctx context.Context) error
}

// RosterSource lists the players currently on tid's roster.
type RosterSource interface {
	Players(ctx context.Context, tid int) ([]*Player, error)
}

// OvrCalculator rates a team from its current roster. It is provided per sport.
type OvrCalculator interface {
	Ovr(ctx context.Context, tid int) (float64, error)
}

// StatsProcessor turns a stats record into the requested per-game or total
// figures. It is provided per sport.
type StatsProcessor interface {
	ProcessStats(ts *TeamStats, stats []string, playoffs bool, statType StatType) Row
}

// PayrollCalculator returns a team's current payroll in thousands of dollars.
type PayrollCalculator interface {
	Payroll(ctx context.Context, tid int) (float64, error)
}

// DurableArchiver is implemented by durable stores that accept finished seasons.
type DurableArchiver interface {
	Archive(ctx context.Context, seasons []*TeamSeason, stats []*TeamStats) error
}

package team

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/samber/lo"

	"github.com/leaguekeeper/teamdata/internal/app/appconfig"
	"github.com/leaguekeeper/teamdata/internal/core/payroll"
	"github.com/leaguekeeper/teamdata/internal/pkg/cache"
	"github.com/leaguekeeper/teamdata/internal/pkg/observability"
)

// RedisTier is the fast tier shared between processes. Records are grouped
// per team: one key per team, one key holding a team's season rows and one
// holding its stats.
type RedisTier struct {
	set *cache.Set

	// w serializes read-modify-write cycles of this process
	w sync.Mutex
}

var (
	_ FastTier       = (*RedisTier)(nil)
	_ FastTierWriter = (*RedisTier)(nil)
	_ payroll.Source = (*RedisTier)(nil)
	_ RosterSource   = (*RedisTier)(nil)
)

func NewRedisTier(client *redis.Client, conf *appconfig.Config) *RedisTier {
	return &RedisTier{
		set: cache.NewSet(client, conf.RedisKeyPrefix+":fast"),
	}
}

const keyTids = "teams"

func keyTeam(tid int) string        { return "team:" + strconv.Itoa(tid) }
func keyTeamSeasons(tid int) string { return "teamSeasons#tid:" + strconv.Itoa(tid) }
func keyTeamStats(tid int) string   { return "teamStats#tid:" + strconv.Itoa(tid) }
func keyContracts(tid int) string   { return "contracts#tid:" + strconv.Itoa(tid) }
func keyPlayers(tid int) string     { return "players#tid:" + strconv.Itoa(tid) }

func (r *RedisTier) Team(ctx context.Context, tid int) (*Team, error) {
	var t Team
	found, err := r.set.GetOrEmpty(ctx, keyTeam(tid), &t)
	observability.ObserveTierRead(TierFast, "teams#tid", err)
	if err != nil {
		return nil, errors.Wrap(err, "fast: team")
	}
	if !found {
		return nil, nil
	}
	return &t, nil
}

func (r *RedisTier) Teams(ctx context.Context) ([]*Team, error) {
	tids, err := r.tids(ctx)
	observability.ObserveTierRead(TierFast, "teams", err)
	if err != nil {
		return nil, err
	}

	teams := make([]*Team, 0, len(tids))
	for _, tid := range tids {
		t, err := r.Team(ctx, tid)
		if err != nil {
			return nil, err
		}
		if t != nil {
			teams = append(teams, t)
		}
	}
	return teams, nil
}

func (r *RedisTier) tids(ctx context.Context) ([]int, error) {
	var tids []int
	if _, err := r.set.GetOrEmpty(ctx, keyTids, &tids); err != nil {
		return nil, errors.Wrap(err, "fast: team ids")
	}
	sort.Ints(tids)
	return tids, nil
}

func (r *RedisTier) seasonsOf(ctx context.Context, tid int) ([]*TeamSeason, error) {
	var rows []*TeamSeason
	if _, err := r.set.GetOrEmpty(ctx, keyTeamSeasons(tid), &rows); err != nil {
		return nil, errors.Wrap(err, "fast: team seasons")
	}
	return rows, nil
}

func (r *RedisTier) statsOf(ctx context.Context, tid int) ([]*TeamStats, error) {
	var rows []*TeamStats
	if _, err := r.set.GetOrEmpty(ctx, keyTeamStats(tid), &rows); err != nil {
		return nil, errors.Wrap(err, "fast: team stats")
	}
	return rows, nil
}

func (r *RedisTier) TeamSeasonsByTid(ctx context.Context, tid int) ([]*TeamSeason, error) {
	rows, err := r.seasonsOf(ctx, tid)
	observability.ObserveTierRead(TierFast, "teamSeasons#tid", err)
	return rows, err
}

func (r *RedisTier) TeamSeasonsBySeasonTid(ctx context.Context, season int, tid int) ([]*TeamSeason, error) {
	rows, err := r.seasonsOf(ctx, tid)
	observability.ObserveTierRead(TierFast, "teamSeasons#season|tid", err)
	if err != nil {
		return nil, err
	}
	return lo.Filter(rows, func(ts *TeamSeason, _ int) bool {
		return ts.Season == season
	}), nil
}

func (r *RedisTier) TeamStatsByPlayoffsTid(ctx context.Context, playoffs bool, tid int) ([]*TeamStats, error) {
	rows, err := r.statsOf(ctx, tid)
	observability.ObserveTierRead(TierFast, "teamStats#playoffs|tid", err)
	if err != nil {
		return nil, err
	}
	return lo.Filter(rows, func(ts *TeamStats, _ int) bool {
		return ts.Playoffs == playoffs
	}), nil
}

func (r *RedisTier) Contracts(ctx context.Context, tid int) ([]payroll.Contract, error) {
	var contracts []payroll.Contract
	_, err := r.set.GetOrEmpty(ctx, keyContracts(tid), &contracts)
	observability.ObserveTierRead(TierFast, "contracts#tid", err)
	return contracts, errors.Wrap(err, "fast: contracts")
}

func (r *RedisTier) Players(ctx context.Context, tid int) ([]*Player, error) {
	var players []*Player
	_, err := r.set.GetOrEmpty(ctx, keyPlayers(tid), &players)
	observability.ObserveTierRead(TierFast, "players#tid", err)
	return players, errors.Wrap(err, "fast: players")
}

func (r *RedisTier) PutTeam(ctx context.Context, t *Team) error {
	r.w.Lock()
	defer r.w.Unlock()

	tids, err := r.tids(ctx)
	if err != nil {
		return err
	}
	if !lo.Contains(tids, t.Tid) {
		if err := r.set.Set(ctx, keyTids, append(tids, t.Tid), 0); err != nil {
			return errors.Wrap(err, "fast: put team ids")
		}
	}
	return errors.Wrap(r.set.Set(ctx, keyTeam(t.Tid), t, 0), "fast: put team")
}

func (r *RedisTier) PutTeamSeason(ctx context.Context, ts *TeamSeason) error {
	r.w.Lock()
	defer r.w.Unlock()

	rows, err := r.seasonsOf(ctx, ts.Tid)
	if err != nil {
		return err
	}
	rows = append(lo.Reject(rows, func(row *TeamSeason, _ int) bool { return row.Rid == ts.Rid }), ts)
	return errors.Wrap(r.set.Set(ctx, keyTeamSeasons(ts.Tid), rows, 0), "fast: put team season")
}

func (r *RedisTier) PutTeamStats(ctx context.Context, ts *TeamStats) error {
	r.w.Lock()
	defer r.w.Unlock()

	rows, err := r.statsOf(ctx, ts.Tid)
	if err != nil {
		return err
	}
	rows = append(lo.Reject(rows, func(row *TeamStats, _ int) bool { return row.Rid == ts.Rid }), ts)
	return errors.Wrap(r.set.Set(ctx, keyTeamStats(ts.Tid), rows, 0), "fast: put team stats")
}

// PutContracts replaces every contract counted against tid's payroll.
func (r *RedisTier) PutContracts(ctx context.Context, tid int, contracts []payroll.Contract) error {
	return errors.Wrap(r.set.Set(ctx, keyContracts(tid), contracts, 0), "fast: put contracts")
}

// PutPlayers replaces tid's roster.
func (r *RedisTier) PutPlayers(ctx context.Context, tid int, players []*Player) error {
	return errors.Wrap(r.set.Set(ctx, keyPlayers(tid), players, 0), "fast: put players")
}

// Reset drops the whole fast tier.
func (r *RedisTier) Reset(ctx context.Context) error {
	r.w.Lock()
	defer r.w.Unlock()

	return errors.Wrap(r.set.Clear(ctx), "fast: reset")
}

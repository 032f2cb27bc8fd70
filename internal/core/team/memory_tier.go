package team

import (
	"context"
	"sort"
	"sync"

	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/leaguekeeper/teamdata/internal/core/payroll"
	"github.com/leaguekeeper/teamdata/internal/pkg/observability"
)

// MemoryTier is an in-process fast tier. Every read and write deep-copies,
// so callers never share records with the tier.
type MemoryTier struct {
	mu sync.RWMutex

	teams     map[int]*Team
	seasons   map[int]*TeamSeason
	stats     map[int]*TeamStats
	contracts map[int][]payroll.Contract
	players   map[int][]*Player
}

var (
	_ FastTier       = (*MemoryTier)(nil)
	_ FastTierWriter = (*MemoryTier)(nil)
	_ payroll.Source = (*MemoryTier)(nil)
	_ RosterSource   = (*MemoryTier)(nil)
)

func NewMemoryTier() *MemoryTier {
	m := &MemoryTier{}
	m.reset()
	return m
}

func (m *MemoryTier) reset() {
	m.teams = map[int]*Team{}
	m.seasons = map[int]*TeamSeason{}
	m.stats = map[int]*TeamStats{}
	m.contracts = map[int][]payroll.Contract{}
	m.players = map[int][]*Player{}
}

func clone[T any](src *T) (*T, error) {
	var dst T
	if err := copier.CopyWithOption(&dst, src, copier.Option{DeepCopy: true}); err != nil {
		return nil, errors.Wrap(err, "memory tier: deep copy")
	}
	return &dst, nil
}

func cloneAll[T any](src []*T) ([]*T, error) {
	out := make([]*T, 0, len(src))
	for _, s := range src {
		c, err := clone(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (m *MemoryTier) Team(ctx context.Context, tid int) (*Team, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	observability.ObserveTierRead(TierFast, "teams#tid", nil)
	t, ok := m.teams[tid]
	if !ok {
		return nil, nil
	}
	return clone(t)
}

func (m *MemoryTier) Teams(ctx context.Context) ([]*Team, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	observability.ObserveTierRead(TierFast, "teams", nil)
	teams := lo.Values(m.teams)
	sort.Slice(teams, func(i, j int) bool { return teams[i].Tid < teams[j].Tid })
	return cloneAll(teams)
}

func (m *MemoryTier) TeamSeasonsByTid(ctx context.Context, tid int) ([]*TeamSeason, error) {
	return m.seasonsWhere("teamSeasons#tid", func(ts *TeamSeason) bool {
		return ts.Tid == tid
	})
}

func (m *MemoryTier) TeamSeasonsBySeasonTid(ctx context.Context, season int, tid int) ([]*TeamSeason, error) {
	return m.seasonsWhere("teamSeasons#season|tid", func(ts *TeamSeason) bool {
		return ts.Season == season && ts.Tid == tid
	})
}

func (m *MemoryTier) TeamStatsByPlayoffsTid(ctx context.Context, playoffs bool, tid int) ([]*TeamStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	observability.ObserveTierRead(TierFast, "teamStats#playoffs|tid", nil)
	rows := lo.Filter(lo.Values(m.stats), func(ts *TeamStats, _ int) bool {
		return ts.Playoffs == playoffs && ts.Tid == tid
	})
	sort.Slice(rows, func(i, j int) bool { return rows[i].Rid < rows[j].Rid })
	return cloneAll(rows)
}

func (m *MemoryTier) seasonsWhere(index string, pred func(*TeamSeason) bool) ([]*TeamSeason, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	observability.ObserveTierRead(TierFast, index, nil)
	rows := lo.Filter(lo.Values(m.seasons), func(ts *TeamSeason, _ int) bool {
		return pred(ts)
	})
	sort.Slice(rows, func(i, j int) bool { return rows[i].Rid < rows[j].Rid })
	return cloneAll(rows)
}

func (m *MemoryTier) PutTeam(ctx context.Context, t *Team) error {
	c, err := clone(t)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.teams[t.Tid] = c
	m.mu.Unlock()
	return nil
}

func (m *MemoryTier) PutTeamSeason(ctx context.Context, ts *TeamSeason) error {
	c, err := clone(ts)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.seasons[ts.Rid] = c
	m.mu.Unlock()
	return nil
}

func (m *MemoryTier) PutTeamStats(ctx context.Context, ts *TeamStats) error {
	c, err := clone(ts)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.stats[ts.Rid] = c
	m.mu.Unlock()
	return nil
}

func (m *MemoryTier) Contracts(ctx context.Context, tid int) ([]payroll.Contract, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	observability.ObserveTierRead(TierFast, "contracts#tid", nil)
	return append([]payroll.Contract{}, m.contracts[tid]...), nil
}

// PutContracts replaces every contract counted against tid's payroll.
func (m *MemoryTier) PutContracts(ctx context.Context, tid int, contracts []payroll.Contract) error {
	m.mu.Lock()
	m.contracts[tid] = append([]payroll.Contract{}, contracts...)
	m.mu.Unlock()
	return nil
}

func (m *MemoryTier) Players(ctx context.Context, tid int) ([]*Player, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	observability.ObserveTierRead(TierFast, "players#tid", nil)
	return cloneAll(m.players[tid])
}

// PutPlayers replaces tid's roster.
func (m *MemoryTier) PutPlayers(ctx context.Context, tid int, players []*Player) error {
	c, err := cloneAll(players)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.players[tid] = c
	m.mu.Unlock()
	return nil
}

func (m *MemoryTier) Reset(ctx context.Context) error {
	m.mu.Lock()
	m.reset()
	m.mu.Unlock()
	return nil
}

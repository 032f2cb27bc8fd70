package sport

import (
	"math"
	"sort"

	"github.com/samber/lo"

	"github.com/leaguekeeper/teamdata/internal/core/team"
)

// BasketballStats converts basketball team totals.
type BasketballStats struct{}

var _ team.StatsProcessor = BasketballStats{}

func pct(made, attempted float64) float64 {
	if attempted == 0 {
		return 0
	}
	return 100 * made / attempted
}

// basketballDerived are stats computed from several totals. Percentages are
// never divided by games played.
var basketballDerived = map[string]struct {
	perGame bool
	value   func(ts *team.TeamStats) float64
}{
	"gp":  {false, func(ts *team.TeamStats) float64 { return float64(ts.Gp) }},
	"fgp": {false, func(ts *team.TeamStats) float64 { return pct(ts.Total("fg"), ts.Total("fga")) }},
	"tpp": {false, func(ts *team.TeamStats) float64 { return pct(ts.Total("tp"), ts.Total("tpa")) }},
	"ftp": {false, func(ts *team.TeamStats) float64 { return pct(ts.Total("ft"), ts.Total("fta")) }},
	"trb": {true, func(ts *team.TeamStats) float64 { return ts.Total("orb") + ts.Total("drb") }},
	"mov": {false, func(ts *team.TeamStats) float64 {
		if ts.Gp == 0 {
			return 0
		}
		return (ts.Total("pts") - ts.Total("oppPts")) / float64(ts.Gp)
	}},
}

func (BasketballStats) ProcessStats(ts *team.TeamStats, stats []string, playoffs bool, statType team.StatType) team.Row {
	row := make(team.Row, len(stats)+1)
	divide := statType == team.StatTypePerGame && ts.Gp > 0

	for _, stat := range stats {
		derived, ok := basketballDerived[stat]
		if !ok {
			derived.perGame = true
			derived.value = func(ts *team.TeamStats) float64 { return ts.Total(stat) }
		}
		v := derived.value(ts)
		if derived.perGame && divide {
			v /= float64(ts.Gp)
		}
		row[stat] = v
	}
	row["playoffs"] = playoffs
	return row
}

const (
	basketballOvrIntercept = -124.13
	basketballOvrWeight    = 0.4417
	basketballOvrDecay     = -0.1905
	basketballOvrDepth     = 10
)

// BasketballOvr predicts the margin of victory of the ten best players
// and maps it onto a 0-100 scale where a +15 margin rates 100.
func BasketballOvr(players []Player, opts OvrOptions) float64 {
	ratings := lo.Map(players, func(p Player, _ int) float64 {
		if opts.Rating != "" {
			return p.Ovrs[opts.Rating]
		}
		if opts.Pos != "" {
			if v, ok := p.Ovrs[opts.Pos]; ok {
				return v
			}
		}
		return p.Ovr
	})
	sort.Sort(sort.Reverse(sort.Float64Slice(ratings)))

	predictedMOV := basketballOvrIntercept
	for i := 0; i < basketballOvrDepth; i++ {
		var rating float64
		if i < len(ratings) {
			rating = ratings[i]
		}
		predictedMOV += basketballOvrWeight * math.Exp(basketballOvrDecay*float64(i)) * rating
	}

	if opts.Rating != "" {
		return predictedMOV
	}

	return math.Max(0, math.Round(predictedMOV*50/15+50))
}

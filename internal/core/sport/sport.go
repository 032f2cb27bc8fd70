// Package sport registers the per-sport collaborators of the team views.
package sport

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/leaguekeeper/teamdata/internal/app/appconfig"
	"github.com/leaguekeeper/teamdata/internal/core/team"
	"github.com/leaguekeeper/teamdata/internal/pkg/apperr"
)

type Player = team.Player

type OvrOptions struct {
	// Pos rates the team as if every player played this position.
	Pos string

	// Rating rates the team on one rating instead of the overall one.
	Rating string
}

// OvrFunc rates a team from its players.
type OvrFunc func(players []Player, opts OvrOptions) float64

type Sport struct {
	Name  string
	Stats team.StatsProcessor
	Ovr   OvrFunc
}

var registry = map[string]Sport{
	"basketball": {
		Name:  "basketball",
		Stats: BasketballStats{},
		Ovr:   BasketballOvr,
	},
}

// Names lists the registered sports.
func Names() []string {
	names := lo.Keys(registry)
	sort.Strings(names)
	return names
}

// Lookup returns the collaborators of name. An unknown sport is a
// configuration error.
func Lookup(name string) (Sport, error) {
	s, ok := registry[name]
	if !ok {
		return Sport{}, apperr.ErrConfiguration.
			Msg("unknown sport %q", name).
			WithExtras(apperr.Extras{"available": Names()})
	}
	return s, nil
}

// Rater rates teams from the rosters held by a fast tier.
type Rater struct {
	Roster team.RosterSource
	Rate   OvrFunc
}

var _ team.OvrCalculator = (*Rater)(nil)

func NewRater(s Sport, roster team.RosterSource) *Rater {
	return &Rater{Roster: roster, Rate: s.Ovr}
}

func (r *Rater) Ovr(ctx context.Context, tid int) (float64, error) {
	players, err := r.Roster.Players(ctx, tid)
	if err != nil {
		return 0, errors.Wrap(err, "failed to load roster")
	}
	return r.Rate(lo.Map(players, func(p *Player, _ int) Player { return *p }), OvrOptions{}), nil
}

func NewFromConfig(conf *appconfig.Config) (Sport, error) {
	s, err := Lookup(conf.Sport)
	if err != nil {
		return Sport{}, err
	}
	log.Info().Str("evt.name", "sport.selected").Str("sport", s.Name).Msg("sport collaborators selected")
	return s, nil
}

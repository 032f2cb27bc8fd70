package team

import (
	"github.com/go-playground/validator/v10"
	"gopkg.in/guregu/null.v3"

	"github.com/leaguekeeper/teamdata/internal/pkg/validate"
)

// Query selects the teams and the attribute classes of a snapshot.
type Query struct {
	// Tid restricts the snapshot to one team. Unset means every team.
	Tid null.Int `validate:"omitempty,min=0"`

	// Season pins seasonAttrs and stats to one season. Unset means every season.
	Season null.Int `validate:"omitempty,min=0"`

	Attrs       []string `validate:"dive,alphanum"`
	SeasonAttrs []string `validate:"dive,alphanum"`
	Stats       []string `validate:"dive,alphanum"`

	// Playoffs and RegularSeason independently include playoff and regular
	// season stats records.
	Playoffs      bool
	RegularSeason bool

	StatType StatType `validate:"omitempty,oneof=perGame totals"`
}

// NewQuery returns a query with the default inclusion flags and stat type.
func NewQuery() Query {
	return Query{
		RegularSeason: true,
		StatType:      StatTypePerGame,
	}
}

func (q *Query) statType() StatType {
	if q.StatType == "" {
		return StatTypePerGame
	}
	return q.StatType
}

func queryStructLevel(sl validator.StructLevel) {
	q := sl.Current().Interface().(Query)
	if len(q.Stats) > 0 && !q.Playoffs && !q.RegularSeason {
		sl.ReportError(q.RegularSeason, "RegularSeason", "RegularSeason", "required_with_stats", "")
	}
}

func init() {
	validate.Validate.RegisterStructValidation(queryStructLevel, Query{})
}

// Validate reports malformed queries as apperr.ErrInvalidReq with violations.
func (q Query) Validate() error {
	return validate.Struct(q)
}

package team

import (
	"github.com/uptrace/bun"

	"github.com/leaguekeeper/teamdata/internal/core/override"
	"github.com/leaguekeeper/teamdata/internal/pkg/standing"
)

// BudgetItem is one line of a team budget, revenue or expense table.
// Amounts are stored in thousands of dollars, except the ticket price.
type BudgetItem struct {
	Amount float64 `json:"amount" msgpack:"amount"`
	Rank   float64 `json:"rank" msgpack:"rank"`
}

// TicketPriceItem is the only budget item stored in dollars.
const TicketPriceItem = "ticketPrice"

// Team is the current, mutable state of a franchise. Teams only live in the fast tier.
type Team struct {
	Tid  int    `json:"tid" msgpack:"tid"`
	Cid  int    `json:"cid" msgpack:"cid"`
	Did  int    `json:"did" msgpack:"did"`
	SrID string `json:"srID,omitempty" msgpack:"srID"`

	override.Fields

	Strategy string                `json:"strategy" msgpack:"strategy"`
	Budget   map[string]BudgetItem `json:"budget" msgpack:"budget"`
	Disabled bool                  `json:"disabled" msgpack:"disabled"`
	Keepers  []int                 `json:"keepers,omitempty" msgpack:"keepers"`
}

func (t *Team) OverrideFields() *override.Fields { return &t.Fields }
func (t *Team) ExternalID() string               { return t.SrID }

// Player is the part of a rostered player that team ratings read.
type Player struct {
	Pid int `json:"pid" msgpack:"pid"`
	Tid int `json:"tid" msgpack:"tid"`

	// Ovr is the overall rating; Ovrs holds per-position or per-rating values.
	Ovr  float64            `json:"ovr" msgpack:"ovr"`
	Ovrs map[string]float64 `json:"ovrs,omitempty" msgpack:"ovrs"`
	Pos  string             `json:"pos" msgpack:"pos"`
}

// TeamSeason is one team's record for one season.
type TeamSeason struct {
	bun.BaseModel `bun:"team_seasons" json:"-" msgpack:"-"`

	Rid    int `bun:",pk" json:"rid" msgpack:"rid"`
	Tid    int `bun:"tid" json:"tid" msgpack:"tid"`
	Season int `bun:"season" json:"season" msgpack:"season"`

	override.Fields

	Won  int `bun:"won" json:"won" msgpack:"won"`
	Lost int `bun:"lost" json:"lost" msgpack:"lost"`
	Tied int `bun:"tied" json:"tied" msgpack:"tied"`
	Otl  int `bun:"otl" json:"otl" msgpack:"otl"`

	WonHome  int `bun:"won_home" json:"wonHome" msgpack:"wonHome"`
	LostHome int `bun:"lost_home" json:"lostHome" msgpack:"lostHome"`
	WonAway  int `bun:"won_away" json:"wonAway" msgpack:"wonAway"`
	LostAway int `bun:"lost_away" json:"lostAway" msgpack:"lostAway"`
	WonDiv   int `bun:"won_div" json:"wonDiv" msgpack:"wonDiv"`
	LostDiv  int `bun:"lost_div" json:"lostDiv" msgpack:"lostDiv"`
	WonConf  int `bun:"won_conf" json:"wonConf" msgpack:"wonConf"`
	LostConf int `bun:"lost_conf" json:"lostConf" msgpack:"lostConf"`

	Gp     int  `bun:"gp" json:"gp" msgpack:"gp"`
	GpHome *int `bun:"gp_home" json:"gpHome,omitempty" msgpack:"gpHome"`

	Att  float64 `bun:"att" json:"att" msgpack:"att"`
	Cash float64 `bun:"cash" json:"cash" msgpack:"cash"`
	Hype float64 `bun:"hype" json:"hype" msgpack:"hype"`

	Revenues map[string]BudgetItem `bun:"revenues,type:jsonb" json:"revenues" msgpack:"revenues"`
	Expenses map[string]BudgetItem `bun:"expenses,type:jsonb" json:"expenses" msgpack:"expenses"`

	// LastTen is a rolling log of results, see standing.ResultWon.
	LastTen []int `bun:"last_ten,array" json:"lastTen" msgpack:"lastTen"`
	Streak  int   `bun:"streak" json:"streak" msgpack:"streak"`

	PlayoffRoundsWon int `bun:"playoff_rounds_won" json:"playoffRoundsWon" msgpack:"playoffRoundsWon"`
}

func (ts *TeamSeason) OverrideFields() *override.Fields { return &ts.Fields }

// ExternalID is empty: season rows are resolved with the owning team's id as an override.
func (ts *TeamSeason) ExternalID() string { return "" }

func (ts *TeamSeason) Record() standing.Record {
	return standing.Record{Won: ts.Won, Lost: ts.Lost, Tied: ts.Tied, Otl: ts.Otl}
}

// NewSeasonRow returns the zero-valued season row of tid, used when a
// requested season has no stored row.
func NewSeasonRow(tid int, season int) *TeamSeason {
	return &TeamSeason{
		Tid:      tid,
		Season:   season,
		Revenues: map[string]BudgetItem{},
		Expenses: map[string]BudgetItem{},
		LastTen:  []int{},
	}
}

// TeamStats are one team's accumulated stat totals for a season, split by playoffs.
type TeamStats struct {
	bun.BaseModel `bun:"team_stats" json:"-" msgpack:"-"`

	Rid      int  `bun:",pk" json:"rid" msgpack:"rid"`
	Tid      int  `bun:"tid" json:"tid" msgpack:"tid"`
	Season   int  `bun:"season" json:"season" msgpack:"season"`
	Playoffs bool `bun:"playoffs" json:"playoffs" msgpack:"playoffs"`
	Gp       int  `bun:"gp" json:"gp" msgpack:"gp"`

	// Totals are keyed by stat name, e.g. "pts" or "oppPts".
	Totals map[string]float64 `bun:"totals,type:jsonb" json:"totals" msgpack:"totals"`
}

// Total returns the accumulated total of stat, zero when untracked.
func (ts *TeamStats) Total(stat string) float64 {
	return ts.Totals[stat]
}

// Row is one projected output record keyed by attribute name. A nil value
// marks an attribute that is undefined for the record.
type Row map[string]any

// StatType selects how stat totals are presented.
type StatType string

const (
	StatTypePerGame StatType = "perGame"
	StatTypeTotals  StatType = "totals"
)

// League is the season context a snapshot query is evaluated against.
type League struct {
	// Season is the current season.
	Season int

	// RecencyHorizon is how many seasons before Season still have their
	// season rows held by the fast tier.
	RecencyHorizon int

	// Ties reports whether the league plays with ties.
	Ties bool

	// Otl reports whether the league records overtime losses.
	Otl bool
}

// IsRecent reports whether season rows of season are held by the fast tier.
func (l League) IsRecent(season int) bool {
	return season >= l.Season-l.RecencyHorizon
}

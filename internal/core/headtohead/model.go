package headtohead

import (
	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"

	"github.com/leaguekeeper/teamdata/internal/pkg/standing"
)

// Info is the record of the filtered team against one opponent, Tid.
type Info struct {
	Tid        int `json:"tid"`
	Won        int `json:"won"`
	Lost       int `json:"lost"`
	Tied       int `json:"tied"`
	Otl        int `json:"otl"`
	Pts        int `json:"pts"`
	OppPts     int `json:"oppPts"`
	SeriesWon  int `json:"seriesWon"`
	SeriesLost int `json:"seriesLost"`
	FinalsWon  int `json:"finalsWon"`
	FinalsLost int `json:"finalsLost"`
}

func (i Info) Record() standing.Record {
	return standing.Record{Won: i.Won, Lost: i.Lost, Tied: i.Tied, Otl: i.Otl}
}

// Matchup is one stored season of games between two teams, from Tid's side.
type Matchup struct {
	bun.BaseModel `bun:"head_to_heads"`

	Season   int  `bun:"season,pk" json:"season" validate:"min=0"`
	Tid      int  `bun:"tid,pk" json:"tid" validate:"min=0"`
	OppTid   int  `bun:"opp_tid,pk" json:"oppTid" validate:"min=0,nefield=Tid"`
	Playoffs bool `bun:"playoffs,pk" json:"playoffs"`

	Won        int `bun:"won" json:"won" validate:"min=0"`
	Lost       int `bun:"lost" json:"lost" validate:"min=0"`
	Tied       int `bun:"tied" json:"tied" validate:"min=0"`
	Otl        int `bun:"otl" json:"otl" validate:"min=0"`
	Pts        int `bun:"pts" json:"pts"`
	OppPts     int `bun:"opp_pts" json:"oppPts"`
	SeriesWon  int `bun:"series_won" json:"seriesWon"`
	SeriesLost int `bun:"series_lost" json:"seriesLost"`
	FinalsWon  int `bun:"finals_won" json:"finalsWon"`
	FinalsLost int `bun:"finals_lost" json:"finalsLost"`
}

func (m *Matchup) Info() Info {
	return Info{
		Tid:        m.OppTid,
		Won:        m.Won,
		Lost:       m.Lost,
		Tied:       m.Tied,
		Otl:        m.Otl,
		Pts:        m.Pts,
		OppPts:     m.OppPts,
		SeriesWon:  m.SeriesWon,
		SeriesLost: m.SeriesLost,
		FinalsWon:  m.FinalsWon,
		FinalsLost: m.FinalsLost,
	}
}

type Type string

const (
	TypeRegularSeason Type = "regularSeason"
	TypePlayoffs      Type = "playoffs"
	TypeAll           Type = "all"
)

// Filter selects the matchups of Tid. An unset Season means every season.
type Filter struct {
	Tid    int      `validate:"min=0"`
	Season null.Int `validate:"omitempty,min=0"`
	Type   Type     `validate:"required,oneof=regularSeason playoffs all"`
}

func (f Filter) Includes(m *Matchup) bool {
	if m.Tid != f.Tid {
		return false
	}
	if f.Season.Valid && int64(m.Season) != f.Season.Int64 {
		return false
	}
	switch f.Type {
	case TypeRegularSeason:
		return !m.Playoffs
	case TypePlayoffs:
		return m.Playoffs
	default:
		return true
	}
}

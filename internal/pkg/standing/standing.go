// Package standing holds the record formatting shared by team views.
package standing

import (
	"fmt"

	"github.com/samber/lo"
)

// Record is a win/loss line as stored on team seasons and head-to-head rows.
type Record struct {
	Won  int
	Lost int
	Tied int
	Otl  int
}

func (r Record) Games() int {
	return r.Won + r.Lost + r.Tied + r.Otl
}

// CalcWinp counts a tie as half a win. A record with no games has a winning
// percentage of zero.
func CalcWinp(r Record) float64 {
	games := r.Games()
	if games == 0 {
		return 0
	}
	return (float64(r.Won) + 0.5*float64(r.Tied)) / float64(games)
}

// Results in a rolling log: 1 is a win, 0 a loss and -1 a tie.
const (
	ResultWon  = 1
	ResultLost = 0
	ResultTied = -1
)

// FormatLastTen renders a rolling results log as "W-L", or "W-L-T" when the
// league plays with ties.
func FormatLastTen(results []int, ties bool) string {
	won := lo.Count(results, ResultWon)
	lost := lo.Count(results, ResultLost)
	if ties {
		return fmt.Sprintf("%d-%d-%d", won, lost, lo.Count(results, ResultTied))
	}
	return fmt.Sprintf("%d-%d", won, lost)
}

// FormatStreak renders a signed streak: positive for wins, negative for losses.
func FormatStreak(streak int) string {
	switch {
	case streak > 0:
		return fmt.Sprintf("Won %d", streak)
	case streak < 0:
		return fmt.Sprintf("Lost %d", -streak)
	default:
		return "None"
	}
}

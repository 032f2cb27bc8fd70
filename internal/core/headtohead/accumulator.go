package headtohead

import (
	"sort"

	"github.com/samber/lo"
)

// counters lists every summed field of Info.
var counters = []func(i *Info) *int{
	func(i *Info) *int { return &i.Won },
	func(i *Info) *int { return &i.Lost },
	func(i *Info) *int { return &i.Tied },
	func(i *Info) *int { return &i.Otl },
	func(i *Info) *int { return &i.Pts },
	func(i *Info) *int { return &i.OppPts },
	func(i *Info) *int { return &i.SeriesWon },
	func(i *Info) *int { return &i.SeriesLost },
	func(i *Info) *int { return &i.FinalsWon },
	func(i *Info) *int { return &i.FinalsLost },
}

// Accumulator sums the records visited per opponent. The sums do not depend
// on the order records are visited in.
type Accumulator struct {
	byTid map[int]*Info
}

func NewAccumulator() *Accumulator {
	return &Accumulator{byTid: map[int]*Info{}}
}

func (a *Accumulator) Visit(info Info) {
	current, ok := a.byTid[info.Tid]
	if !ok {
		a.byTid[info.Tid] = &info
		return
	}
	for _, counter := range counters {
		*counter(current) += *counter(&info)
	}
}

func (a *Accumulator) Len() int {
	return len(a.byTid)
}

// Results returns a copy of every per-opponent sum, ordered by tid.
func (a *Accumulator) Results() []Info {
	results := lo.MapToSlice(a.byTid, func(_ int, info *Info) Info {
		return *info
	})
	sort.Slice(results, func(i, j int) bool {
		return results[i].Tid < results[j].Tid
	})
	return results
}

package team

import (
	"github.com/goccy/go-json"

	"github.com/leaguekeeper/teamdata/internal/pkg/apperr"
)

// Shaped holds either a single resolved value or a list of values. A query
// that pins down exactly one record gets the record itself rather than a
// one-element list.
type Shaped[T any] struct {
	single bool
	items  []T
}

func Single[T any](v T) *Shaped[T] {
	return &Shaped[T]{single: true, items: []T{v}}
}

func Many[T any](v []T) *Shaped[T] {
	if v == nil {
		v = []T{}
	}
	return &Shaped[T]{items: v}
}

func (s *Shaped[T]) IsSingle() bool {
	return s.single
}

// One returns the single value, or the first of many. ok is false when there is none.
func (s *Shaped[T]) One() (v T, ok bool) {
	if len(s.items) == 0 {
		return v, false
	}
	return s.items[0], true
}

func (s *Shaped[T]) All() []T {
	return s.items
}

func (s *Shaped[T]) MarshalJSON() ([]byte, error) {
	if s.single {
		if len(s.items) == 0 {
			return nil, apperr.ErrInternalError.Msg("single value shape holds no value")
		}
		return json.Marshal(s.items[0])
	}
	return json.Marshal(s.items)
}

// Snapshot is the projected view of one team. Attrs are flattened into the
// top level when encoded, next to the seasonAttrs and stats keys.
type Snapshot struct {
	Tid         int
	Attrs       Row
	SeasonAttrs *Shaped[Row]
	Stats       *Shaped[Row]
}

func (s *Snapshot) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.Attrs)+2)
	for k, v := range s.Attrs {
		out[k] = v
	}
	if s.SeasonAttrs != nil {
		out["seasonAttrs"] = s.SeasonAttrs
	}
	if s.Stats != nil {
		out["stats"] = s.Stats
	}
	return json.Marshal(out)
}

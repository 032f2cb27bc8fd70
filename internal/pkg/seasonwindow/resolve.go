// Package seasonwindow picks the most recent season-keyed payload at or before
// a target season.
package seasonwindow

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Resolve returns the payload stored under the greatest season key that does
// not exceed target. Keys that do not parse as integers are ignored. When exact
// is set, the payload is only returned if that season equals target.
//
// The boolean result is false when there is no applicable payload; callers are
// expected to fall back to their own default.
func Resolve[T any](seasons map[string]T, target int, exact bool) (T, bool) {
	candidates := make(map[int]T, len(seasons))
	for key, payload := range seasons {
		season, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			continue
		}
		candidates[season] = payload
	}
	return ResolveInt(candidates, target, exact)
}

// ResolveInt is Resolve for maps already keyed by season number.
func ResolveInt[T any](seasons map[int]T, target int, exact bool) (T, bool) {
	var zero T

	eligible := lo.Filter(lo.Keys(seasons), func(season int, _ int) bool {
		return season <= target
	})
	if len(eligible) == 0 {
		return zero, false
	}

	best := lo.Max(eligible)
	if exact && best != target {
		return zero, false
	}
	return seasons[best], true
}

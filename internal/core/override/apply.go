package override

import (
	"golang.org/x/exp/slices"

	"github.com/leaguekeeper/teamdata/internal/pkg/seasonwindow"
)

type field struct {
	name  string
	apply func(dst, src *Fields) bool
}

// scalar applies src's value when it is non-zero and differs from dst's.
func scalar[V comparable](get func(*Fields) *V) func(dst, src *Fields) bool {
	return func(dst, src *Fields) bool {
		var zero V
		v := *get(src)
		if v == zero || v == *get(dst) {
			return false
		}
		*get(dst) = v
		return true
	}
}

func colors(dst, src *Fields) bool {
	if len(src.Colors) == 0 || slices.Equal(src.Colors, dst.Colors) {
		return false
	}
	dst.Colors = slices.Clone(src.Colors)
	return true
}

var overridable = []field{
	{"abbrev", scalar(func(f *Fields) *string { return &f.Abbrev })},
	{"region", scalar(func(f *Fields) *string { return &f.Region })},
	{"name", scalar(func(f *Fields) *string { return &f.Name })},
	{"pop", scalar(func(f *Fields) *float64 { return &f.Pop })},
	{"colors", colors},
	{"jersey", scalar(func(f *Fields) *string { return &f.Jersey })},
	{"imgURL", scalar(func(f *Fields) *string { return &f.ImgURL })},
}

// FieldNames lists the overridable attributes in application order.
func FieldNames() []string {
	names := make([]string, len(overridable))
	for i, f := range overridable {
		names[i] = f.name
	}
	return names
}

func applyFields(dst, src *Fields) bool {
	if src == nil {
		return false
	}
	changed := false
	for _, f := range overridable {
		if f.apply(dst, src) {
			changed = true
		}
	}
	return changed
}

// Apply writes the feed's real team info for season onto target and reports
// whether any attribute changed.
//
// Unless opts.ExactSeason is set, the root attributes are applied first. The
// season correction applied afterwards is the one keyed at the latest season
// not after the target season; a target season earlier than every key gets no
// season correction even though the root attributes were applied.
func Apply(target Target, feed Feed, season int, opts Options) bool {
	id := opts.IDOverride
	if id == "" {
		id = target.ExternalID()
	}
	if id == "" || feed == nil {
		return false
	}
	root, ok := feed[id]
	if !ok || root == nil {
		return false
	}

	dst := target.OverrideFields()

	changed := false
	if !opts.ExactSeason {
		changed = applyFields(dst, &root.Fields)
	}

	if len(root.Seasons) == 0 {
		return changed
	}

	seasonFields, ok := seasonwindow.Resolve(root.Seasons, season, opts.ExactSeason)
	if !ok {
		return changed
	}

	if applyFields(dst, seasonFields) {
		changed = true
	}
	return changed
}

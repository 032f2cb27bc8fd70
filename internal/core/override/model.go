package override

// Fields are the team identity attributes a real team info feed may override.
type Fields struct {
	Abbrev string   `bun:"abbrev" json:"abbrev" msgpack:"abbrev"`
	Region string   `bun:"region" json:"region" msgpack:"region"`
	Name   string   `bun:"name" json:"name" msgpack:"name"`
	Pop    float64  `bun:"pop" json:"pop" msgpack:"pop"`
	Colors []string `bun:"colors,array" json:"colors" msgpack:"colors"`
	Jersey string   `bun:"jersey" json:"jersey" msgpack:"jersey"`
	ImgURL string   `bun:"img_url" json:"imgURL" msgpack:"imgURL"`
}

// Root is the feed entry of one real team: its current identity plus
// corrections keyed by the season they took effect in.
type Root struct {
	Fields
	Seasons map[string]*Fields `json:"seasons,omitempty"`
}

// Feed maps external team ids to their real team info.
type Feed map[string]*Root

// Target is anything carrying overridable fields.
type Target interface {
	OverrideFields() *Fields
	ExternalID() string
}

type Options struct {
	// ExactSeason skips the root attributes and applies a season correction
	// only when one is keyed exactly at the target season.
	ExactSeason bool

	// IDOverride replaces the target's own external id for the feed lookup.
	IDOverride string
}

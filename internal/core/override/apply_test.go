package override

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
)

type stubTeam struct {
	Fields
	srID string
}

func (t *stubTeam) OverrideFields() *Fields { return &t.Fields }
func (t *stubTeam) ExternalID() string      { return t.srID }

func sampleFeed() Feed {
	return Feed{
		"BOS": {
			Fields: Fields{
				Abbrev: "BOS",
				Region: "Boston",
				Name:   "Celtics",
				Pop:    7.3,
				Colors: []string{"#007a33", "#ba9653", "#ffffff"},
			},
			Seasons: map[string]*Fields{
				"1990": {Jersey: "jersey3"},
				"2010": {Jersey: "jersey5", ImgURL: "https://example.com/bos2010.png"},
			},
		},
		"SEA": {
			Fields: Fields{Region: "Seattle", Name: "SuperSonics"},
		},
	}
}

func TestApply(t *testing.T) {
	type testCase struct {
		name    string
		team    stubTeam
		season  int
		opts    Options
		changed bool
		expect  Fields
	}

	testCases := []testCase{
		{
			name:    "root and latest season correction",
			team:    stubTeam{srID: "BOS", Fields: Fields{Abbrev: "BOS", Region: "Boston", Name: "Celtics"}},
			season:  2015,
			changed: true,
			expect: Fields{
				Abbrev: "BOS", Region: "Boston", Name: "Celtics", Pop: 7.3,
				Colors: []string{"#007a33", "#ba9653", "#ffffff"},
				Jersey: "jersey5", ImgURL: "https://example.com/bos2010.png",
			},
		},
		{
			name:    "season between keys uses earlier correction",
			team:    stubTeam{srID: "BOS"},
			season:  2000,
			changed: true,
			expect: Fields{
				Abbrev: "BOS", Region: "Boston", Name: "Celtics", Pop: 7.3,
				Colors: []string{"#007a33", "#ba9653", "#ffffff"},
				Jersey: "jersey3",
			},
		},
		{
			name:    "season before every key applies root only",
			team:    stubTeam{srID: "BOS"},
			season:  1980,
			changed: true,
			expect: Fields{
				Abbrev: "BOS", Region: "Boston", Name: "Celtics", Pop: 7.3,
				Colors: []string{"#007a33", "#ba9653", "#ffffff"},
			},
		},
		{
			name:    "exact season skips root and needs an exact key",
			team:    stubTeam{srID: "BOS", Fields: Fields{Name: "Original"}},
			season:  2000,
			opts:    Options{ExactSeason: true},
			changed: false,
			expect:  Fields{Name: "Original"},
		},
		{
			name:    "exact season hit",
			team:    stubTeam{srID: "BOS", Fields: Fields{Name: "Original"}},
			season:  2010,
			opts:    Options{ExactSeason: true},
			changed: true,
			expect:  Fields{Name: "Original", Jersey: "jersey5", ImgURL: "https://example.com/bos2010.png"},
		},
		{
			name:    "id override",
			team:    stubTeam{srID: "XXX"},
			season:  2000,
			opts:    Options{IDOverride: "SEA"},
			changed: true,
			expect:  Fields{Region: "Seattle", Name: "SuperSonics"},
		},
		{
			name:    "unknown id",
			team:    stubTeam{srID: "XXX", Fields: Fields{Name: "Original"}},
			season:  2000,
			changed: false,
			expect:  Fields{Name: "Original"},
		},
		{
			name:    "missing id",
			team:    stubTeam{Fields: Fields{Name: "Original"}},
			season:  2000,
			changed: false,
			expect:  Fields{Name: "Original"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			team := tc.team
			changed := Apply(&team, sampleFeed(), tc.season, tc.opts)
			assert.Equal(t, tc.changed, changed)
			assert.Equalf(t, tc.expect, team.Fields, "unexpected fields: %s", spew.Sdump(team.Fields))
		})
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	feed := sampleFeed()
	team := stubTeam{srID: "BOS"}

	assert.True(t, Apply(&team, feed, 2015, Options{}))
	first := team.Fields

	assert.False(t, Apply(&team, feed, 2015, Options{}))
	assert.Equal(t, first, team.Fields)
}

func TestApplyIgnoresFalsyFeedValues(t *testing.T) {
	feed := Feed{
		"BOS": {
			Fields:  Fields{Abbrev: "", Pop: 0, Colors: []string{}},
			Seasons: map[string]*Fields{"2000": {Name: ""}},
		},
	}
	team := stubTeam{srID: "BOS", Fields: Fields{Abbrev: "B", Pop: 1.5, Colors: []string{"#000"}, Name: "Keep"}}

	assert.False(t, Apply(&team, feed, 2010, Options{}))
	assert.Equal(t, Fields{Abbrev: "B", Pop: 1.5, Colors: []string{"#000"}, Name: "Keep"}, team.Fields)
}

func TestApplyDoesNotAliasFeedColors(t *testing.T) {
	feed := sampleFeed()
	team := stubTeam{srID: "BOS"}

	Apply(&team, feed, 2015, Options{})
	team.Colors[0] = "#123456"

	assert.Equal(t, "#007a33", feed["BOS"].Colors[0])
}

func TestFieldNames(t *testing.T) {
	assert.Equal(t, []string{"abbrev", "region", "name", "pop", "colors", "jersey", "imgURL"}, FieldNames())
}

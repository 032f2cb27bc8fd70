package tiered

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
)

type record struct {
	Rid   int
	Value string
}

func ridOf(r *record) int { return r.Rid }

func TestMergeByPK(t *testing.T) {
	type testCase struct {
		name    string
		durable []*record
		fast    []*record
		expect  []*record
	}

	testCases := []testCase{
		{
			name:   "both empty",
			expect: []*record{},
		},
		{
			name:    "disjoint keys keep everything",
			durable: []*record{{1, "d1"}, {2, "d2"}},
			fast:    []*record{{3, "f3"}},
			expect:  []*record{{1, "d1"}, {2, "d2"}, {3, "f3"}},
		},
		{
			name:    "fast tier shadows durable tier",
			durable: []*record{{1, "d1"}, {2, "d2"}},
			fast:    []*record{{2, "f2"}},
			expect:  []*record{{1, "d1"}, {2, "f2"}},
		},
		{
			name:    "last write wins within a tier",
			durable: []*record{{1, "d1-old"}, {1, "d1-new"}},
			fast:    []*record{{4, "f4-old"}, {4, "f4-new"}},
			expect:  []*record{{1, "d1-new"}, {4, "f4-new"}},
		},
		{
			name:   "only fast",
			fast:   []*record{{7, "f7"}},
			expect: []*record{{7, "f7"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := MergeByPK(tc.durable, tc.fast, ridOf)
			assert.ElementsMatchf(t, tc.expect, result, "expect: %s\nresult: %s", spew.Sdump(tc.expect), spew.Sdump(result))
		})
	}
}

func TestMergeByPKOneRecordPerKey(t *testing.T) {
	durable := []*record{{1, "a"}, {2, "b"}, {3, "c"}, {2, "bb"}}
	fast := []*record{{3, "C"}, {4, "D"}, {1, "A"}}

	result := MergeByPK(durable, fast, ridOf)

	seen := map[int]string{}
	for _, r := range result {
		_, dup := seen[r.Rid]
		assert.Falsef(t, dup, "rid %d appears more than once", r.Rid)
		seen[r.Rid] = r.Value
	}
	assert.Equal(t, map[int]string{1: "A", 2: "bb", 3: "C", 4: "D"}, seen)
}

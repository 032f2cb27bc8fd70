package seasonwindow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	payloads := map[string]string{
		"2018": "A",
		"2020": "B",
	}

	type testCase struct {
		name   string
		target int
		exact  bool
		expect string
		found  bool
	}

	testCases := []testCase{
		{name: "between seasons falls back to earlier", target: 2019, exact: false, expect: "A", found: true},
		{name: "between seasons with exact match required", target: 2019, exact: true, found: false},
		{name: "exact hit", target: 2020, exact: true, expect: "B", found: true},
		{name: "exact hit without exact flag", target: 2020, exact: false, expect: "B", found: true},
		{name: "after all seasons uses latest", target: 2030, exact: false, expect: "B", found: true},
		{name: "before all seasons", target: 2017, exact: false, found: false},
		{name: "before all seasons exact", target: 2017, exact: true, found: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, ok := Resolve(payloads, tc.target, tc.exact)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.expect, result)
		})
	}
}

func TestResolveIgnoresUnparseableKeys(t *testing.T) {
	payloads := map[string]int{
		"2015":    1,
		"latest":  2,
		"":        3,
		" 2016 ":  4,
		"2016-17": 5,
		// a numeric prefix does not make a season
		"2018abc": 6,
	}

	result, ok := Resolve(payloads, 2020, false)
	assert.True(t, ok)
	assert.Equal(t, 4, result)
}

func TestResolveEmpty(t *testing.T) {
	result, ok := Resolve(map[string]*struct{}{}, 2020, false)
	assert.False(t, ok)
	assert.Nil(t, result)

	result, ok = Resolve[*struct{}](nil, 2020, false)
	assert.False(t, ok)
	assert.Nil(t, result)
}

func TestResolveInt(t *testing.T) {
	payloads := map[int]string{1999: "old", 2005: "new"}

	result, ok := ResolveInt(payloads, 2004, false)
	assert.True(t, ok)
	assert.Equal(t, "old", result)

	_, ok = ResolveInt(payloads, 2004, true)
	assert.False(t, ok)
}

package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPruneDropsAbsentFields(t *testing.T) {
	var missing *NumberFilter
	in := Options{
		"job":          StringFilter{Criterias: []string{"dev"}},
		"annualSalary": missing,
		"contractType": nil,
		"order": Options{
			"job":          "ASC",
			"annualSalary": nil,
		},
		"empty": Options{"a": nil, "b": Options{"c": nil}},
	}

	out := Prune(in)

	assert.Equal(t, Options{
		"job":   StringFilter{Criterias: []string{"dev"}},
		"order": Options{"job": "ASC"},
	}, out)
	// the input is left untouched
	assert.Contains(t, in, "contractType")
}

func TestPruneKeepsFilterLeavesIntact(t *testing.T) {
	in := Options{"name": StringFilter{Filter: OpIsNull}}
	assert.Equal(t, in, Prune(in))
}

func TestPruneIdempotent(t *testing.T) {
	inputs := []Options{
		{},
		{"a": nil},
		{"a": 1, "b": Options{"c": nil, "d": "x"}},
		{"nested": map[string]any{"deeper": map[string]any{"gone": nil}}, "keep": true},
	}
	for _, in := range inputs {
		once := Prune(in)
		assert.Equal(t, once, Prune(once))
	}
}

func TestPruneFullyPopulatedRoundTrips(t *testing.T) {
	in := Options{
		"page":    2,
		"perPage": 10,
		"job":     StringFilter{Filter: OpContains, Criterias: []string{"go"}},
		"order":   Options{"job": "DESC"},
		"raw":     map[string]any{"k": "v"},
	}
	assert.Equal(t, in, Prune(in))
}

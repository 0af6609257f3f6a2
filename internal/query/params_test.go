package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractExtraParams(t *testing.T) {
	cases := []struct {
		name   string
		url    string
		prefix string
		strip  []string
		want   string
	}{
		{"keeps filters", "/resource?page=0&perPage=60&param[key][]=value", "/resource", nil, "&param[key][]=value"},
		{"only pagination", "/offers?page=2&perPage=20", "/offers", nil, ""},
		{"no query", "/offers", "/offers", nil, ""},
		{"pagination last", "/offers?job[criterias][]=dev&perPage=100&page=0", "/offers", nil, "&job[criterias][]=dev"},
		{"strip extra key", "/offers?annualSalary[criterias][]=456&job[filter]=not", "/offers", []string{"annualSalary[criterias][]"}, "&job[filter]=not"},
		{"perPage is not page", "/offers?perPage=5", "/offers", nil, ""},
		{"prefix mismatch", "/api/offers?x=1&page=3", "/offers", nil, "&x=1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractExtraParams(tc.url, tc.prefix, tc.strip...))
		})
	}
}

func TestExtractExtraParamsIdempotent(t *testing.T) {
	urls := []string{
		"/resource?page=0&perPage=60&param[key][]=value",
		"/resource?a=1&b=2&page=4",
		"/resource",
	}
	for _, u := range urls {
		once := ExtractExtraParams(u, "/resource")
		twice := ExtractExtraParams("/resource"+once, "/resource")
		assert.Equal(t, once, twice, u)
	}
}

package validation

import (
	"net/url"
	"sort"
	"strings"

	"ats/internal/domain"
)

// ParseQuery decodes a raw query string using the bracket convention of list
// endpoints into nested maps:
//
//	job[filter]=not&job[criterias][]=dev  =>  {"job": {"filter": "not", "criterias": ["dev"]}}
//
// Keys ending in [] always produce a []string; repeated plain keys do too.
func ParseQuery(rawQuery string) (map[string]any, error) {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return nil, domain.ValidationError{Msg: "malformed query string", Err: err}
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := map[string]any{}
	for _, key := range keys {
		path, list, ok := splitKey(key)
		if !ok {
			return nil, domain.ValidationError{Field: key, Msg: "malformed query parameter"}
		}
		vals := values[key]

		var leaf any
		if list || len(vals) > 1 {
			leaf = append([]string(nil), vals...)
		} else {
			leaf = vals[0]
		}
		if !assign(out, path, leaf) {
			return nil, domain.ValidationError{Field: key, Msg: "conflicting query parameter"}
		}
	}
	return out, nil
}

// splitKey turns `a[b][c][]` into [a b c] and reports the trailing [].
func splitKey(key string) ([]string, bool, bool) {
	open := strings.IndexByte(key, '[')
	if open < 0 {
		return []string{key}, false, key != ""
	}
	if open == 0 {
		return nil, false, false
	}

	path := []string{key[:open]}
	rest := key[open:]
	list := false
	for rest != "" {
		if rest[0] != '[' {
			return nil, false, false
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, false, false
		}
		seg := rest[1:end]
		rest = rest[end+1:]
		if seg == "" {
			if rest != "" {
				return nil, false, false
			}
			list = true
			break
		}
		path = append(path, seg)
	}
	return path, list, true
}

func assign(root map[string]any, path []string, leaf any) bool {
	node := root
	for _, seg := range path[:len(path)-1] {
		next, exists := node[seg]
		if !exists {
			child := map[string]any{}
			node[seg] = child
			node = child
			continue
		}
		child, ok := next.(map[string]any)
		if !ok {
			return false
		}
		node = child
	}

	last := path[len(path)-1]
	if prev, exists := node[last]; exists {
		// `a=x&a[]=y` target the same key and merge into one list
		prevList, okPrev := asList(prev)
		leafList, okLeaf := asList(leaf)
		if !okPrev || !okLeaf {
			return false
		}
		node[last] = append(prevList, leafList...)
		return true
	}
	node[last] = leaf
	return true
}

func asList(v any) ([]string, bool) {
	switch s := v.(type) {
	case string:
		return []string{s}, true
	case []string:
		return s, true
	}
	return nil, false
}

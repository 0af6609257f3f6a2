package query

import "strings"

// paginationKeys are always removed; the pagination links set them explicitly.
var paginationKeys = []string{"page", "perPage"}

// ExtractExtraParams returns the query parameters of fullURL that are not pagination
// keys, formatted to be appended to a link: "" or "&k=v&...". The route prefix and its
// '?' are removed, as well as every key listed in strip.
//
//	ExtractExtraParams("/offers?page=0&perPage=60&job[criterias][]=dev", "/offers")
//	// "&job[criterias][]=dev"
func ExtractExtraParams(fullURL, routePrefix string, strip ...string) string {
	rest := fullURL
	if routePrefix != "" && strings.HasPrefix(rest, routePrefix) {
		rest = rest[len(routePrefix):]
	}
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		rest = rest[i+1:]
	}

	drop := make(map[string]struct{}, len(paginationKeys)+len(strip))
	for _, k := range paginationKeys {
		drop[k] = struct{}{}
	}
	for _, k := range strip {
		drop[k] = struct{}{}
	}

	kept := make([]string, 0)
	for _, part := range strings.Split(rest, "&") {
		if part == "" {
			continue
		}
		key := part
		if i := strings.IndexByte(part, '='); i >= 0 {
			key = part[:i]
		}
		if _, ok := drop[key]; ok {
			continue
		}
		kept = append(kept, part)
	}

	if len(kept) == 0 {
		return ""
	}
	return "&" + strings.Join(kept, "&")
}

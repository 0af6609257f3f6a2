package query

// Options is the decoded filter-options bag of a list request. Values are nil
// (field absent), FilterParam leaves, scalars, or nested Options.
type Options map[string]any

// Prune drops nil entries, recurses into nested bags and removes bags left empty.
// FilterParam values are leaves and are kept as they are. The input is not modified.
func Prune(opts Options) Options {
	out := Options{}
	for k, v := range opts {
		switch val := v.(type) {
		case nil:
			continue
		case FilterParam:
			if isNilFilter(val) {
				continue
			}
			out[k] = val
		case Options:
			if nested := Prune(val); len(nested) > 0 {
				out[k] = nested
			}
		case map[string]any:
			if nested := Prune(Options(val)); len(nested) > 0 {
				out[k] = map[string]any(nested)
			}
		default:
			out[k] = val
		}
	}
	return out
}

func isNilFilter(f FilterParam) bool {
	switch p := f.(type) {
	case *StringFilter:
		return p == nil
	case *NumberFilter:
		return p == nil
	case *EnumFilter:
		return p == nil
	}
	return false
}

// Filter returns the filter stored under key, if any.
func (o Options) Filter(key string) FilterParam {
	f, _ := o[key].(FilterParam)
	if f != nil && isNilFilter(f) {
		return nil
	}
	return f
}

// Nested returns the bag stored under key, if any.
func (o Options) Nested(key string) Options {
	switch v := o[key].(type) {
	case Options:
		return v
	case map[string]any:
		return Options(v)
	}
	return nil
}

// Int returns the integer stored under key or def.
func (o Options) Int(key string, def int) int {
	switch v := o[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	}
	return def
}

// String returns the string stored under key or "".
func (o Options) String(key string) string {
	s, _ := o[key].(string)
	return s
}

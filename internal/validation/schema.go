package validation

import (
	"fmt"
	"math"
	"net/mail"
	"sort"
	"strconv"
	"strings"

	"ats/internal/domain"
	"ats/internal/query"
)

// Kind tells Decode how to read and convert one field.
type Kind int

const (
	String Kind = iota
	Int
	StringFilter
	NumberFilter
	EnumFilter
	Object
	Email
)

// Field describes one accepted key. OneOf restricts String values and EnumFilter
// criterias. Min and Max bound Int values. Nested is the schema of an Object.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	OneOf    []string
	Nested   Schema
	Min      *int
	Max      *int
}

// Schema is the ordered list of accepted keys of a query string or body.
type Schema []Field

func Bound(n int) *int { return &n }

// Pagination is embedded in every list schema.
var Pagination = Schema{
	{Name: "page", Kind: Int, Min: Bound(query.DefaultPage)},
	{Name: "perPage", Kind: Int, Min: Bound(query.MinPerPage), Max: Bound(query.MaxPerPage)},
}

// Order builds the `order[field]=ASC|DESC` object for the given fields.
func Order(fields ...string) Field {
	nested := make(Schema, len(fields))
	for i, f := range fields {
		nested[i] = Field{Name: f, Kind: String, OneOf: query.Directions}
	}
	return Field{Name: "order", Kind: Object, Nested: nested}
}

// List returns a list schema made of the pagination fields followed by fields.
func List(fields ...Field) Schema {
	out := make(Schema, 0, len(Pagination)+len(fields))
	out = append(out, Pagination...)
	return append(out, fields...)
}

// Decode checks input against schema and converts it into an options bag.
// Absent optional fields are kept as nil, unknown keys are rejected and every
// violation is reported at once in a single ValidationError.
func Decode(schema Schema, input map[string]any) (query.Options, error) {
	var errs []string
	out := decodeInto(schema, input, "", &errs)
	if len(errs) > 0 {
		return nil, domain.ValidationError{Msg: strings.Join(errs, ", ")}
	}
	return out, nil
}

func decodeInto(schema Schema, input map[string]any, prefix string, errs *[]string) query.Options {
	out := make(query.Options, len(schema))

	known := make(map[string]struct{}, len(schema))
	for _, f := range schema {
		known[f.Name] = struct{}{}
	}
	unknown := make([]string, 0)
	for k := range input {
		if _, ok := known[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		*errs = append(*errs, fmt.Sprintf("property %s%s should not exist", prefix, k))
	}

	for _, f := range schema {
		name := prefix + f.Name
		raw, ok := input[f.Name]
		if !ok || raw == nil {
			if f.Required {
				*errs = append(*errs, fmt.Sprintf("%s should not be empty", name))
			}
			out[f.Name] = nil
			continue
		}

		v, msg := decodeField(f, raw, name, errs)
		if msg != "" {
			*errs = append(*errs, msg)
			out[f.Name] = nil
			continue
		}
		out[f.Name] = v
	}
	return out
}

func decodeField(f Field, raw any, name string, errs *[]string) (any, string) {
	switch f.Kind {
	case String:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Sprintf("%s must be a string", name)
		}
		if f.Required && strings.TrimSpace(s) == "" {
			return nil, fmt.Sprintf("%s should not be empty", name)
		}
		if len(f.OneOf) > 0 && !contains(f.OneOf, s) {
			return nil, fmt.Sprintf("%s must be one of the following values: %s", name, strings.Join(f.OneOf, ", "))
		}
		return s, ""

	case Email:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Sprintf("%s must be a string", name)
		}
		addr, err := mail.ParseAddress(strings.TrimSpace(s))
		if err != nil || addr.Address != strings.TrimSpace(s) {
			return nil, fmt.Sprintf("%s must be an email", name)
		}
		return addr.Address, ""

	case Int:
		n, ok := toInt(raw)
		if !ok {
			return nil, fmt.Sprintf("%s must be an integer number", name)
		}
		if f.Min != nil && n < *f.Min {
			return nil, fmt.Sprintf("%s must not be less than %d", name, *f.Min)
		}
		if f.Max != nil && n > *f.Max {
			return nil, fmt.Sprintf("%s must not be greater than %d", name, *f.Max)
		}
		return n, ""

	case StringFilter, NumberFilter, EnumFilter:
		return decodeFilter(f, raw, name)

	case Object:
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Sprintf("nested property %s must be either object or array", name)
		}
		before := len(*errs)
		nested := decodeInto(f.Nested, m, name+".", errs)
		if len(*errs) > before {
			return nil, ""
		}
		return nested, ""
	}
	return nil, fmt.Sprintf("%s has an unsupported type", name)
}

func decodeFilter(f Field, raw any, name string) (any, string) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Sprintf("nested property %s must be either object or array", name)
	}
	for k := range m {
		if k != "filter" && k != "criterias" {
			return nil, fmt.Sprintf("property %s.%s should not exist", name, k)
		}
	}

	var op query.Operator
	if rawOp, ok := m["filter"]; ok && rawOp != nil {
		s, ok := rawOp.(string)
		if !ok {
			return nil, fmt.Sprintf("%s.filter must be a string", name)
		}
		op = query.Operator(s)
	}

	var criterias []string
	if rawCrit, ok := m["criterias"]; ok && rawCrit != nil {
		criterias, ok = toStrings(rawCrit)
		if !ok {
			return nil, fmt.Sprintf("%s.criterias must be an array", name)
		}
	}

	var param query.FilterParam
	switch f.Kind {
	case StringFilter:
		param = query.StringFilter{Filter: op, Criterias: criterias}
	case NumberFilter:
		param = query.NumberFilter{Filter: op, Criterias: criterias}
	default:
		param = query.EnumFilter{Filter: op, Criterias: criterias, Allowed: f.OneOf}
	}
	if err := param.Validate(); err != nil {
		return nil, fmt.Sprintf("%s: %s", name, err.Error())
	}
	return param, ""
}

func toInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		if v < math.MinInt || v > math.MaxInt {
			return 0, false
		}
		return int(v), true
	case float64:
		// float64(math.MaxInt) rounds up to 2^63, which int cannot hold
		if v != math.Trunc(v) || v < math.MinInt || v >= math.MaxInt {
			return 0, false
		}
		return int(v), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// toStrings accepts the shapes criterias take after query or JSON decoding:
// a single value, a list, or an object with numeric keys (`criterias[0]=a`).
func toStrings(raw any) ([]string, bool) {
	switch v := raw.(type) {
	case string:
		return []string{v}, true
	case []string:
		return v, true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := scalarString(item)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	case map[string]any:
		idx := make([]int, 0, len(v))
		byIdx := make(map[int]string, len(v))
		for k, item := range v {
			n, err := strconv.Atoi(k)
			if err != nil {
				return nil, false
			}
			s, ok := scalarString(item)
			if !ok {
				return nil, false
			}
			idx = append(idx, n)
			byIdx[n] = s
		}
		sort.Ints(idx)
		out := make([]string, len(idx))
		for i, n := range idx {
			out[i] = byIdx[n]
		}
		return out, true
	}
	return nil, false
}

func scalarString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(s), true
	}
	return "", false
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

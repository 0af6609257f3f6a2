package query

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Operator is the value of the `filter` key of a filter parameter.
type Operator string

const (
	OpIsNull          Operator = "isnull"
	OpNot             Operator = "not"
	OpEqual           Operator = "equal"
	OpLessThan        Operator = "lessthan"
	OpLessThanOrEqual Operator = "lessthanorequal"
	OpMoreThan        Operator = "morethan"
	OpMoreThanOrEqual Operator = "morethanorequal"

	// text matching, string fields only
	OpContains    Operator = "contains"
	OpNotContains Operator = "notcontains"
	OpBeginsWith  Operator = "beginswith"
	OpEndsWith    Operator = "endswith"
)

// NumberOperators are accepted on numeric fields.
var NumberOperators = []Operator{
	OpIsNull, OpNot, OpEqual,
	OpLessThan, OpLessThanOrEqual, OpMoreThan, OpMoreThanOrEqual,
}

// StringOperators are accepted on free-text fields.
var StringOperators = []Operator{
	OpIsNull, OpNot, OpEqual,
	OpContains, OpNotContains, OpBeginsWith, OpEndsWith,
}

// EnumOperators are accepted on enumerated and reference (slug) fields.
var EnumOperators = []Operator{OpIsNull, OpNot, OpEqual}

// FilterParam is one of StringFilter, NumberFilter or EnumFilter.
type FilterParam interface {
	// Validate checks the operator and criterias before compilation.
	Validate() error
	operator() Operator
	criterias() []string
}

// StringFilter filters a free-text column.
type StringFilter struct {
	Filter    Operator `json:"filter,omitempty"`
	Criterias []string `json:"criterias,omitempty"`
}

// NumberFilter filters a numeric column. Criterias stay raw until compiled.
type NumberFilter struct {
	Filter    Operator `json:"filter,omitempty"`
	Criterias []string `json:"criterias,omitempty"`
}

// EnumFilter filters a column restricted to a fixed set of values.
type EnumFilter struct {
	Filter    Operator `json:"filter,omitempty"`
	Criterias []string `json:"criterias,omitempty"`
	Allowed   []string `json:"-"`
}

// Operands returns the operator and raw criterias of p.
func Operands(p FilterParam) (Operator, []string) {
	if p == nil {
		return "", nil
	}
	return p.operator(), p.criterias()
}

func (f StringFilter) operator() Operator  { return f.Filter }
func (f StringFilter) criterias() []string { return f.Criterias }
func (f NumberFilter) operator() Operator  { return f.Filter }
func (f NumberFilter) criterias() []string { return f.Criterias }
func (f EnumFilter) operator() Operator    { return f.Filter }
func (f EnumFilter) criterias() []string   { return f.Criterias }

func (f StringFilter) Validate() error {
	return validateFilter(f.Filter, f.Criterias, StringOperators, nil)
}

func (f NumberFilter) Validate() error {
	if err := validateFilter(f.Filter, f.Criterias, NumberOperators, nil); err != nil {
		return err
	}
	if f.Filter == OpIsNull {
		return nil
	}
	seen := make(map[float64]struct{}, len(f.Criterias))
	for _, c := range f.Criterias {
		n, err := parseNumber(c)
		if err != nil {
			return InvalidCriteriaError{Value: c}
		}
		if _, dup := seen[n]; dup {
			return FilterError{Msg: errUniqueCriterias}
		}
		seen[n] = struct{}{}
	}
	return nil
}

func (f EnumFilter) Validate() error {
	return validateFilter(f.Filter, f.Criterias, EnumOperators, f.Allowed)
}

const errUniqueCriterias = "All criterias's elements must be unique"

// FilterError reports a malformed filter parameter.
type FilterError struct {
	Msg string
}

func (e FilterError) Error() string { return e.Msg }

// InvalidCriteriaError reports a criteria that cannot be coerced to the field type.
type InvalidCriteriaError struct {
	Value string
}

func (e InvalidCriteriaError) Error() string {
	return fmt.Sprintf("criterias must be numbers, got %q", e.Value)
}

func validateFilter(op Operator, criterias []string, ops []Operator, allowed []string) error {
	if op != "" && !containsOperator(ops, op) {
		return FilterError{Msg: fmt.Sprintf("filter must be one of: %s", joinOperators(ops))}
	}
	if op == OpIsNull {
		return nil
	}
	if len(criterias) == 0 {
		return FilterError{Msg: "criterias should not be empty"}
	}
	seen := make(map[string]struct{}, len(criterias))
	for _, c := range criterias {
		if _, dup := seen[c]; dup {
			return FilterError{Msg: errUniqueCriterias}
		}
		seen[c] = struct{}{}
		if allowed != nil && !containsString(allowed, c) {
			return FilterError{Msg: fmt.Sprintf("each value in criterias must be one of: %s", strings.Join(allowed, ", "))}
		}
	}
	return nil
}

func parseNumber(raw string) (float64, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, strconv.ErrSyntax
	}
	return n, nil
}

func containsOperator(ops []Operator, op Operator) bool {
	for _, o := range ops {
		if o == op {
			return true
		}
	}
	return false
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func joinOperators(ops []Operator) string {
	out := make([]string, len(ops))
	for i, o := range ops {
		out[i] = string(o)
	}
	return strings.Join(out, ", ")
}

package query

import "strings"

// PredicateKind enumerates the constraint shapes a filter compiles to.
type PredicateKind int

const (
	KindIsNull PredicateKind = iota
	KindIn
	KindNotIn
	KindLessThan
	KindLessThanOrEqual
	KindMoreThan
	KindMoreThanOrEqual
	KindLike
	KindNotLike
)

func (k PredicateKind) String() string {
	switch k {
	case KindIsNull:
		return "IS NULL"
	case KindIn:
		return "IN"
	case KindNotIn:
		return "NOT IN"
	case KindLessThan:
		return "<"
	case KindLessThanOrEqual:
		return "<="
	case KindMoreThan:
		return ">"
	case KindMoreThanOrEqual:
		return ">="
	case KindLike:
		return "LIKE"
	case KindNotLike:
		return "NOT LIKE"
	default:
		return "?"
	}
}

// Predicate is a backend-neutral column constraint.
// Values holds strings for string/enum fields, int64 or float64 for numeric ones,
// and escaped LIKE patterns for the text-matching kinds.
type Predicate struct {
	Kind   PredicateKind
	Values []any
}

// Compile turns a filter parameter into a predicate. A nil parameter yields a nil
// predicate, meaning no constraint.
func Compile(p FilterParam) (*Predicate, error) {
	if p == nil {
		return nil, nil
	}

	switch f := p.(type) {
	case StringFilter:
		return compileString(f.Filter, f.Criterias), nil
	case *StringFilter:
		if f == nil {
			return nil, nil
		}
		return compileString(f.Filter, f.Criterias), nil
	case EnumFilter:
		return compileString(f.Filter, f.Criterias), nil
	case *EnumFilter:
		if f == nil {
			return nil, nil
		}
		return compileString(f.Filter, f.Criterias), nil
	case NumberFilter:
		return compileNumber(f.Filter, f.Criterias)
	case *NumberFilter:
		if f == nil {
			return nil, nil
		}
		return compileNumber(f.Filter, f.Criterias)
	default:
		return nil, FilterError{Msg: "unsupported filter parameter"}
	}
}

func compileString(op Operator, criterias []string) *Predicate {
	switch op {
	case OpIsNull:
		return &Predicate{Kind: KindIsNull}
	case OpNot:
		return &Predicate{Kind: KindNotIn, Values: stringValues(criterias)}
	case OpContains:
		return &Predicate{Kind: KindLike, Values: likePatterns(criterias, "%", "%")}
	case OpNotContains:
		return &Predicate{Kind: KindNotLike, Values: likePatterns(criterias, "%", "%")}
	case OpBeginsWith:
		return &Predicate{Kind: KindLike, Values: likePatterns(criterias, "", "%")}
	case OpEndsWith:
		return &Predicate{Kind: KindLike, Values: likePatterns(criterias, "%", "")}
	default:
		return &Predicate{Kind: KindIn, Values: stringValues(criterias)}
	}
}

func compileNumber(op Operator, criterias []string) (*Predicate, error) {
	if op == OpIsNull {
		return &Predicate{Kind: KindIsNull}, nil
	}

	values := make([]any, 0, len(criterias))
	for _, c := range criterias {
		n, err := parseNumber(c)
		if err != nil {
			return nil, InvalidCriteriaError{Value: c}
		}
		values = append(values, numberValue(n))
	}

	// comparison operators only look at the first criteria
	first := func() []any {
		if len(values) == 0 {
			return nil
		}
		return values[:1]
	}

	switch op {
	case OpNot:
		return &Predicate{Kind: KindNotIn, Values: values}, nil
	case OpLessThan:
		return &Predicate{Kind: KindLessThan, Values: first()}, nil
	case OpLessThanOrEqual:
		return &Predicate{Kind: KindLessThanOrEqual, Values: first()}, nil
	case OpMoreThan:
		return &Predicate{Kind: KindMoreThan, Values: first()}, nil
	case OpMoreThanOrEqual:
		return &Predicate{Kind: KindMoreThanOrEqual, Values: first()}, nil
	default:
		return &Predicate{Kind: KindIn, Values: values}, nil
	}
}

func numberValue(n float64) any {
	if n == float64(int64(n)) {
		return int64(n)
	}
	return n
}

func stringValues(criterias []string) []any {
	out := make([]any, len(criterias))
	for i, c := range criterias {
		out[i] = c
	}
	return out
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePatterns(criterias []string, prefix, suffix string) []any {
	out := make([]any, len(criterias))
	for i, c := range criterias {
		out[i] = prefix + likeEscaper.Replace(c) + suffix
	}
	return out
}

package query

import (
	"fmt"
	"strings"
)

// Dialect abstracts the few places where SQL differs between backends.
type Dialect interface {
	Name() string
	// Placeholder returns the bind marker for the n-th argument (1-based).
	Placeholder(n int) string
	// Like returns the case-insensitive pattern match operator.
	Like(negated bool) string
}

// Args accumulates bind arguments while a statement is being built.
type Args struct {
	dialect Dialect
	values  []any
}

func NewArgs(d Dialect) *Args {
	return &Args{dialect: d}
}

// Add appends v and returns its placeholder.
func (a *Args) Add(v any) string {
	a.values = append(a.values, v)
	return a.dialect.Placeholder(len(a.values))
}

func (a *Args) Values() []any {
	return a.values
}

func (a *Args) Len() int {
	return len(a.values)
}

// SQL renders the predicate against column, registering its values in args.
func (p Predicate) SQL(column string, args *Args) string {
	switch p.Kind {
	case KindIsNull:
		return column + " IS NULL"
	case KindIn, KindNotIn:
		if len(p.Values) == 0 {
			if p.Kind == KindIn {
				return "1=0"
			}
			return "1=1"
		}
		marks := make([]string, len(p.Values))
		for i, v := range p.Values {
			marks[i] = args.Add(v)
		}
		return fmt.Sprintf("%s %s (%s)", column, p.Kind, strings.Join(marks, ", "))
	case KindLessThan, KindLessThanOrEqual, KindMoreThan, KindMoreThanOrEqual:
		if len(p.Values) == 0 {
			return "1=1"
		}
		return fmt.Sprintf("%s %s %s", column, p.Kind, args.Add(p.Values[0]))
	case KindLike, KindNotLike:
		if len(p.Values) == 0 {
			return "1=1"
		}
		negated := p.Kind == KindNotLike
		op := args.dialect.Like(negated)
		parts := make([]string, len(p.Values))
		for i, v := range p.Values {
			parts[i] = fmt.Sprintf("%s %s %s", column, op, args.Add(v))
		}
		if len(parts) == 1 {
			return parts[0]
		}
		joiner := " OR "
		if negated {
			joiner = " AND "
		}
		return "(" + strings.Join(parts, joiner) + ")"
	default:
		return "1=1"
	}
}

package query

import (
	"sort"
	"strings"
)

// Direction is the value accepted by `order[field]=` query parameters.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

var Directions = []string{string(Asc), string(Desc)}

// OrderBy is one ORDER BY term on a whitelisted column.
type OrderBy struct {
	Column    string
	Direction Direction
}

// Condition binds a predicate to the column it constrains.
type Condition struct {
	Column    string
	Predicate Predicate
}

// ListQuery is what repositories receive for a paginated list.
type ListQuery struct {
	Where []Condition
	Order []OrderBy
	Skip  int
	Take  int
}

// WhereSQL renders the conditions joined with AND, or "" when there are none.
func (q ListQuery) WhereSQL(args *Args) string {
	if len(q.Where) == 0 {
		return ""
	}
	parts := make([]string, len(q.Where))
	for i, c := range q.Where {
		parts[i] = c.Predicate.SQL(c.Column, args)
	}
	return " WHERE " + strings.Join(parts, " AND ")
}

// OrderSQL renders the ORDER BY clause, falling back to fallback when empty.
func (q ListQuery) OrderSQL(fallback string) string {
	if len(q.Order) == 0 {
		if fallback == "" {
			return ""
		}
		return " ORDER BY " + fallback
	}
	parts := make([]string, len(q.Order))
	for i, o := range q.Order {
		dir := Asc
		if strings.EqualFold(string(o.Direction), string(Desc)) {
			dir = Desc
		}
		parts[i] = o.Column + " " + string(dir)
	}
	return " ORDER BY " + strings.Join(parts, ", ")
}

// Fields maps option keys to SQL columns for one resource.
type Fields map[string]string

// Build compiles every filter of opts that has a column in filters, and every
// order entry that has a column in orders. Keys are visited in sorted order so the
// generated SQL is stable.
func Build(opts Options, filters, orders Fields) (ListQuery, error) {
	var q ListQuery

	for _, key := range sortedKeys(filters) {
		pred, err := Compile(opts.Filter(key))
		if err != nil {
			return q, err
		}
		if pred == nil {
			continue
		}
		q.Where = append(q.Where, Condition{Column: filters[key], Predicate: *pred})
	}

	order := opts.Nested("order")
	for _, key := range sortedKeys(orders) {
		dir := order.String(key)
		if dir == "" {
			continue
		}
		q.Order = append(q.Order, OrderBy{Column: orders[key], Direction: Direction(strings.ToUpper(dir))})
	}

	return q, nil
}

func sortedKeys(f Fields) []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

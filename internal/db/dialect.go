package db

import (
	"strconv"

	"ats/internal/query"
)

// MySQL is the default backend: `?` markers, LIKE is case-insensitive with the
// default collations.
type MySQL struct{}

func (MySQL) Name() string           { return "mysql" }
func (MySQL) Placeholder(int) string { return "?" }
func (MySQL) Like(negated bool) string {
	if negated {
		return "NOT LIKE"
	}
	return "LIKE"
}

// Postgres uses numbered markers and ILIKE.
type Postgres struct{}

func (Postgres) Name() string { return "postgres" }
func (Postgres) Placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}
func (Postgres) Like(negated bool) string {
	if negated {
		return "NOT ILIKE"
	}
	return "ILIKE"
}

// ForDriver returns the dialect of a database/sql driver name.
func ForDriver(driver string) query.Dialect {
	switch driver {
	case "pgx", "postgres":
		return Postgres{}
	default:
		return MySQL{}
	}
}

// Rebind rewrites the `?` markers of a statement for d. Statements are written
// with `?` once and rebound for PostgreSQL.
func Rebind(d query.Dialect, stmt string) string {
	if _, ok := d.(Postgres); !ok {
		return stmt
	}
	out := make([]byte, 0, len(stmt)+8)
	n := 0
	inQuote := false
	for i := 0; i < len(stmt); i++ {
		c := stmt[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
			out = append(out, c)
		case c == '?' && !inQuote:
			n++
			out = append(out, '$')
			out = strconv.AppendInt(out, int64(n), 10)
		default:
			out = append(out, c)
		}
	}
	return string(out)
}

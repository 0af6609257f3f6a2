package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	intdb "ats/internal/db"
	"ats/internal/domain"
	"ats/internal/domain/models"
	"ats/internal/query"
	"ats/internal/utils"
)

// base is embedded by every repository. A nil Dialect means MySQL.
type base struct {
	DB      *sql.DB
	Dialect query.Dialect
}

func (b base) dialect() query.Dialect {
	if b.Dialect == nil {
		return intdb.MySQL{}
	}
	return b.Dialect
}

func (b base) rebind(stmt string) string {
	return intdb.Rebind(b.dialect(), stmt)
}

// count runs SELECT COUNT(*) over from with the conditions of q.
func (b base) count(ctx context.Context, from string, q query.ListQuery) (int, error) {
	args := query.NewArgs(b.dialect())
	stmt := "SELECT COUNT(*) FROM " + from + q.WhereSQL(args)

	var n int
	if err := b.DB.QueryRowContext(ctx, stmt, args.Values()...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// list renders `SELECT cols FROM from WHERE .. ORDER BY .. LIMIT .. OFFSET ..`.
func (b base) list(ctx context.Context, cols, from string, q query.ListQuery, fallbackOrder string) (*sql.Rows, error) {
	args := query.NewArgs(b.dialect())
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(cols)
	sb.WriteString(" FROM ")
	sb.WriteString(from)
	sb.WriteString(q.WhereSQL(args))
	sb.WriteString(q.OrderSQL(fallbackOrder))
	if q.Take > 0 {
		fmt.Fprintf(&sb, " LIMIT %s OFFSET %s", args.Add(q.Take), args.Add(q.Skip))
	}
	return b.DB.QueryContext(ctx, sb.String(), args.Values()...)
}

// insert executes stmt and returns the generated id. PostgreSQL has no
// LastInsertId, so the id is read back with RETURNING there.
func (b base) insert(ctx context.Context, stmt string, args ...any) (int64, error) {
	stmt = b.rebind(stmt)
	if _, ok := b.dialect().(intdb.Postgres); ok {
		var id int64
		err := b.DB.QueryRowContext(ctx, stmt+" RETURNING id", args...).Scan(&id)
		return id, err
	}
	res, err := b.DB.ExecContext(ctx, stmt, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// countIn counts rows of table whose column is one of values.
func (b base) countIn(ctx context.Context, table, column string, values []string) (int, error) {
	if len(values) == 0 {
		return 0, nil
	}
	pred := query.Predicate{Kind: query.KindIn, Values: make([]any, len(values))}
	for i, v := range values {
		pred.Values[i] = v
	}
	args := query.NewArgs(b.dialect())
	stmt := "SELECT COUNT(*) FROM " + table + " WHERE " + pred.SQL(column, args)

	var n int
	if err := b.DB.QueryRowContext(ctx, stmt, args.Values()...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// acquisition groups the rows of table per creation day.
func (b base) acquisition(ctx context.Context, table string) ([]AcquisitionRow, error) {
	rows, err := b.DB.QueryContext(ctx, `
		SELECT DATE(created_date) AS day, COUNT(*)
		FROM `+table+`
		GROUP BY DATE(created_date)
		ORDER BY day`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []AcquisitionRow{}
	for rows.Next() {
		var r AcquisitionRow
		if err := rows.Scan(&r.Day, &r.Count); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// AcquisitionRow is one day of created rows.
type AcquisitionRow struct {
	Day   time.Time
	Count int
}

// notFound maps sql.ErrNoRows onto the domain error, and wraps anything else.
func notFound(err error, resource, key string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: resource, Key: key, Err: err}
	}
	return fmt.Errorf("load %s %s: %w", strings.ToLower(resource), key, err)
}

func now() time.Time {
	return utils.NowUTC()
}

// nullUser scans the nullable columns of a LEFT JOINed users row.
type nullUser struct {
	ID        sql.NullInt64
	FirstName sql.NullString
	LastName  sql.NullString
	Email     sql.NullString
	Slug      sql.NullString
}

func (n *nullUser) dest() []any {
	return []any{&n.ID, &n.FirstName, &n.LastName, &n.Email, &n.Slug}
}

func (n nullUser) summary() *models.UserSummary {
	if !n.ID.Valid {
		return nil
	}
	return &models.UserSummary{
		ID:        n.ID.Int64,
		FirstName: n.FirstName.String,
		LastName:  n.LastName.String,
		Email:     n.Email.String,
		Slug:      n.Slug.String,
	}
}

// joinedUserCols lists the columns scanned by nullUser for the users alias.
func joinedUserCols(alias string) string {
	return fmt.Sprintf("%[1]s.id, %[1]s.first_name, %[1]s.last_name, %[1]s.email, %[1]s.slug", alias)
}

// nullableID stores 0 as NULL.
func nullableID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id > 0}
}

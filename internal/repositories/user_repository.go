package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"ats/internal/domain/models"
	"ats/internal/query"
)

var (
	UserFilters = query.Fields{
		"firstName": "u.first_name",
		"lastName":  "u.last_name",
		"email":     "u.email",
	}
	UserOrders = UserFilters
)

const (
	userFrom = "users u"
	userCols = `u.id, u.first_name, u.last_name, u.email, u.slug, u.created_date, u.updated_date,
		(SELECT COUNT(*) FROM offers o WHERE o.referrer_id = u.id),
		(SELECT COUNT(*) FROM clients c WHERE c.account_manager_id = u.id),
		(SELECT COUNT(*) FROM candidates ca WHERE ca.referrer_id = u.id)`
)

type UserRepository struct {
	base
}

func NewUserRepository(db *sql.DB, d query.Dialect) UserRepository {
	return UserRepository{base{DB: db, Dialect: d}}
}

func scanUser(row interface{ Scan(...any) error }) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Slug, &u.CreatedDate, &u.UpdatedDate,
		&u.OfferCount, &u.ClientCount, &u.CandidateCount,
	)
	return u, err
}

func (r UserRepository) Count(ctx context.Context, q query.ListQuery) (int, error) {
	return r.count(ctx, userFrom, q)
}

func (r UserRepository) List(ctx context.Context, q query.ListQuery) ([]models.User, error) {
	rows, err := r.list(ctx, userCols, userFrom, q, "u.id")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r UserRepository) GetBySlug(ctx context.Context, slug string) (models.User, error) {
	row := r.DB.QueryRowContext(ctx, r.rebind("SELECT "+userCols+" FROM "+userFrom+" WHERE u.slug = ? LIMIT 1"), slug)
	u, err := scanUser(row)
	if err != nil {
		return models.User{}, notFound(err, "User", slug)
	}
	return u, nil
}

func (r UserRepository) GetByID(ctx context.Context, id int64) (models.User, error) {
	row := r.DB.QueryRowContext(ctx, r.rebind("SELECT "+userCols+" FROM "+userFrom+" WHERE u.id = ? LIMIT 1"), id)
	u, err := scanUser(row)
	if err != nil {
		return models.User{}, notFound(err, "User", strconv.FormatInt(id, 10))
	}
	return u, nil
}

// GetCredentials loads the user with its password hash, for login only.
func (r UserRepository) GetCredentials(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := r.DB.QueryRowContext(ctx, r.rebind(`
		SELECT id, first_name, last_name, email, slug, password, created_date, updated_date
		FROM users WHERE email = ? LIMIT 1`), email).Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Slug, &u.PasswordHash, &u.CreatedDate, &u.UpdatedDate,
	)
	if err != nil {
		return models.User{}, notFound(err, "User", email)
	}
	return u, nil
}

func (r UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var id int64
	err := r.DB.QueryRowContext(ctx, r.rebind("SELECT id FROM users WHERE email = ? LIMIT 1"), email).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return true, nil
}

// CountSlugs returns how many of slugs belong to existing users.
func (r UserRepository) CountSlugs(ctx context.Context, slugs []string) (int, error) {
	n, err := r.countIn(ctx, "users", "slug", slugs)
	if err != nil {
		return 0, fmt.Errorf("count user slugs: %w", err)
	}
	return n, nil
}

// Create inserts u and fills its id and dates.
func (r UserRepository) Create(ctx context.Context, u *models.User) error {
	ts := now()
	id, err := r.insert(ctx, `
		INSERT INTO users (first_name, last_name, email, slug, password, created_date, updated_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.FirstName, u.LastName, u.Email, u.Slug, u.PasswordHash, ts, ts,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	u.ID = id
	u.CreatedDate, u.UpdatedDate = ts, ts
	return nil
}

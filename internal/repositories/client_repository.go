package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"ats/internal/domain/models"
	"ats/internal/query"
)

var (
	ClientFilters = query.Fields{
		"name":           "c.name",
		"accountManager": "am.slug",
	}
	ClientOrders = query.Fields{
		"name": "c.name",
	}
)

const clientFrom = "clients c LEFT JOIN users am ON am.id = c.account_manager_id"

var clientCols = `c.id, c.name, c.phone, c.slug, c.created_date, c.updated_date,
		(SELECT COUNT(*) FROM offers o WHERE o.owner_id = c.id), ` + joinedUserCols("am")

type ClientRepository struct {
	base
}

func NewClientRepository(db *sql.DB, d query.Dialect) ClientRepository {
	return ClientRepository{base{DB: db, Dialect: d}}
}

func scanClient(row interface{ Scan(...any) error }) (models.Client, error) {
	var (
		c  models.Client
		am nullUser
	)
	dest := []any{&c.ID, &c.Name, &c.Phone, &c.Slug, &c.CreatedDate, &c.UpdatedDate, &c.OfferCount}
	if err := row.Scan(append(dest, am.dest()...)...); err != nil {
		return models.Client{}, err
	}
	c.AccountManager = am.summary()
	return c, nil
}

func (r ClientRepository) Count(ctx context.Context, q query.ListQuery) (int, error) {
	return r.count(ctx, clientFrom, q)
}

func (r ClientRepository) List(ctx context.Context, q query.ListQuery) ([]models.Client, error) {
	rows, err := r.list(ctx, clientCols, clientFrom, q, "c.id")
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	out := []models.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r ClientRepository) GetBySlug(ctx context.Context, slug string) (models.Client, error) {
	row := r.DB.QueryRowContext(ctx, r.rebind("SELECT "+clientCols+" FROM "+clientFrom+" WHERE c.slug = ? LIMIT 1"), slug)
	c, err := scanClient(row)
	if err != nil {
		return models.Client{}, notFound(err, "Client", slug)
	}
	return c, nil
}

// Create inserts c managed by managerID (0 for none) and fills its id and dates.
func (r ClientRepository) Create(ctx context.Context, c *models.Client, managerID int64) error {
	ts := now()
	id, err := r.insert(ctx, `
		INSERT INTO clients (name, phone, slug, account_manager_id, created_date, updated_date)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.Name, c.Phone, c.Slug, nullableID(managerID), ts, ts,
	)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	c.ID = id
	c.CreatedDate, c.UpdatedDate = ts, ts
	return nil
}

func (r ClientRepository) Acquisition(ctx context.Context) ([]AcquisitionRow, error) {
	rows, err := r.acquisition(ctx, "clients")
	if err != nil {
		return nil, fmt.Errorf("client acquisition: %w", err)
	}
	return rows, nil
}

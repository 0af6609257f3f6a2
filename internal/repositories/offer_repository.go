package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"ats/internal/domain/models"
	"ats/internal/query"
)

var (
	OfferFilters = query.Fields{
		"job":          "o.job",
		"annualSalary": "o.annual_salary",
		"contractType": "o.contract_type",
		"referrer":     "ref.slug",
	}
	OfferOrders = query.Fields{
		"job":          "o.job",
		"annualSalary": "o.annual_salary",
		"contractType": "o.contract_type",
	}
)

const offerFrom = `offers o
		LEFT JOIN clients ow ON ow.id = o.owner_id
		LEFT JOIN users ref ON ref.id = o.referrer_id`

var offerCols = `o.id, o.job, o.slug, o.annual_salary, o.contract_type, o.created_date, o.updated_date,
		(SELECT COUNT(*) FROM candidate_to_offers p WHERE p.offer_id = o.id),
		ow.id, ow.name, ow.phone, ow.slug, ` + joinedUserCols("ref")

type OfferRepository struct {
	base
}

func NewOfferRepository(db *sql.DB, d query.Dialect) OfferRepository {
	return OfferRepository{base{DB: db, Dialect: d}}
}

func scanOffer(row interface{ Scan(...any) error }) (models.Offer, error) {
	var (
		o                                models.Offer
		contract                         string
		ownerID                          sql.NullInt64
		ownerName, ownerPhone, ownerSlug sql.NullString
		ref                              nullUser
	)
	dest := []any{
		&o.ID, &o.Job, &o.Slug, &o.AnnualSalary, &contract, &o.CreatedDate, &o.UpdatedDate,
		&o.ProcessCount, &ownerID, &ownerName, &ownerPhone, &ownerSlug,
	}
	if err := row.Scan(append(dest, ref.dest()...)...); err != nil {
		return models.Offer{}, err
	}
	o.ContractType = models.Contract(contract)
	if ownerID.Valid {
		o.Owner = &models.ClientSummary{ID: ownerID.Int64, Name: ownerName.String, Phone: ownerPhone.String, Slug: ownerSlug.String}
	}
	o.Referrer = ref.summary()
	return o, nil
}

func (r OfferRepository) Count(ctx context.Context, q query.ListQuery) (int, error) {
	return r.count(ctx, offerFrom, q)
}

func (r OfferRepository) List(ctx context.Context, q query.ListQuery) ([]models.Offer, error) {
	rows, err := r.list(ctx, offerCols, offerFrom, q, "o.id")
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	defer rows.Close()

	out := []models.Offer{}
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan offer: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r OfferRepository) GetBySlug(ctx context.Context, slug string) (models.Offer, error) {
	row := r.DB.QueryRowContext(ctx, r.rebind("SELECT "+offerCols+" FROM "+offerFrom+" WHERE o.slug = ? LIMIT 1"), slug)
	o, err := scanOffer(row)
	if err != nil {
		return models.Offer{}, notFound(err, "Offer", slug)
	}
	return o, nil
}

// Create inserts o owned by ownerID and referred by referrerID.
func (r OfferRepository) Create(ctx context.Context, o *models.Offer, ownerID, referrerID int64) error {
	ts := now()
	id, err := r.insert(ctx, `
		INSERT INTO offers (job, slug, annual_salary, contract_type, owner_id, referrer_id, created_date, updated_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		o.Job, o.Slug, o.AnnualSalary, string(o.ContractType), ownerID, nullableID(referrerID), ts, ts,
	)
	if err != nil {
		return fmt.Errorf("insert offer: %w", err)
	}
	o.ID = id
	o.CreatedDate, o.UpdatedDate = ts, ts
	return nil
}

package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"ats/internal/domain/models"
	"ats/internal/query"
)

var (
	CandidateFilters = query.Fields{
		"name":     "ca.name",
		"email":    "ca.email",
		"referrer": "ref.slug",
	}
	CandidateOrders = query.Fields{
		"name":  "ca.name",
		"email": "ca.email",
	}
)

const candidateFrom = `candidates ca
		LEFT JOIN users ref ON ref.id = ca.referrer_id
		LEFT JOIN qualifications q ON q.id = ca.qualification_id`

var candidateCols = `ca.id, ca.name, ca.slug, ca.email, ca.resume, ca.created_date, ca.updated_date, q.rank,
		(SELECT COUNT(*) FROM candidate_to_offers p WHERE p.candidate_id = ca.id),
		(SELECT COUNT(*) FROM interviews i WHERE i.candidate_id = ca.id), ` + joinedUserCols("ref")

type CandidateRepository struct {
	base
}

func NewCandidateRepository(db *sql.DB, d query.Dialect) CandidateRepository {
	return CandidateRepository{base{DB: db, Dialect: d}}
}

func scanCandidate(row interface{ Scan(...any) error }) (models.Candidate, error) {
	var (
		c    models.Candidate
		rank sql.NullInt64
		ref  nullUser
	)
	dest := []any{
		&c.ID, &c.Name, &c.Slug, &c.Email, &c.Resume, &c.CreatedDate, &c.UpdatedDate, &rank,
		&c.ProcessCount, &c.InterviewCount,
	}
	if err := row.Scan(append(dest, ref.dest()...)...); err != nil {
		return models.Candidate{}, err
	}
	if rank.Valid {
		r := int(rank.Int64)
		c.QualificationRank = &r
	}
	c.Referrer = ref.summary()
	return c, nil
}

func (r CandidateRepository) Count(ctx context.Context, q query.ListQuery) (int, error) {
	return r.count(ctx, candidateFrom, q)
}

func (r CandidateRepository) List(ctx context.Context, q query.ListQuery) ([]models.Candidate, error) {
	rows, err := r.list(ctx, candidateCols, candidateFrom, q, "ca.id")
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	defer rows.Close()

	out := []models.Candidate{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r CandidateRepository) GetBySlug(ctx context.Context, slug string) (models.Candidate, error) {
	row := r.DB.QueryRowContext(ctx, r.rebind("SELECT "+candidateCols+" FROM "+candidateFrom+" WHERE ca.slug = ? LIMIT 1"), slug)
	c, err := scanCandidate(row)
	if err != nil {
		return models.Candidate{}, notFound(err, "Candidate", slug)
	}
	return c, nil
}

// Create inserts c referred by referrerID.
func (r CandidateRepository) Create(ctx context.Context, c *models.Candidate, referrerID int64) error {
	ts := now()
	id, err := r.insert(ctx, `
		INSERT INTO candidates (name, slug, email, resume, referrer_id, created_date, updated_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.Name, c.Slug, c.Email, c.Resume, nullableID(referrerID), ts, ts,
	)
	if err != nil {
		return fmt.Errorf("insert candidate: %w", err)
	}
	c.ID = id
	c.CreatedDate, c.UpdatedDate = ts, ts
	return nil
}

// CountSlugs returns how many of slugs belong to existing candidates.
func (r CandidateRepository) CountSlugs(ctx context.Context, slugs []string) (int, error) {
	n, err := r.countIn(ctx, "candidates", "slug", slugs)
	if err != nil {
		return 0, fmt.Errorf("count candidate slugs: %w", err)
	}
	return n, nil
}

func (r CandidateRepository) Acquisition(ctx context.Context) ([]AcquisitionRow, error) {
	rows, err := r.acquisition(ctx, "candidates")
	if err != nil {
		return nil, fmt.Errorf("candidate acquisition: %w", err)
	}
	return rows, nil
}

package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"ats/internal/domain/models"
	"ats/internal/query"
)

var (
	InterviewFilters = query.Fields{
		"candidate": "ca.slug",
		"recruiter": "rec.slug",
	}
	InterviewOrders = query.Fields{
		"createdDate": "i.created_date",
	}
)

const interviewFrom = `interviews i
		JOIN candidates ca ON ca.id = i.candidate_id
		LEFT JOIN users rec ON rec.id = i.recruiter_id`

var interviewCols = `i.id, i.comments, i.created_date, i.updated_date,
		ca.id, ca.name, ca.slug, ca.email, ` + joinedUserCols("rec")

type InterviewRepository struct {
	base
}

func NewInterviewRepository(db *sql.DB, d query.Dialect) InterviewRepository {
	return InterviewRepository{base{DB: db, Dialect: d}}
}

func scanInterview(row interface{ Scan(...any) error }) (models.Interview, error) {
	var (
		i   models.Interview
		ca  models.CandidateSummary
		rec nullUser
	)
	dest := []any{&i.ID, &i.Comments, &i.CreatedDate, &i.UpdatedDate, &ca.ID, &ca.Name, &ca.Slug, &ca.Email}
	if err := row.Scan(append(dest, rec.dest()...)...); err != nil {
		return models.Interview{}, err
	}
	i.Candidate = &ca
	i.Recruiter = rec.summary()
	return i, nil
}

func (r InterviewRepository) Count(ctx context.Context, q query.ListQuery) (int, error) {
	return r.count(ctx, interviewFrom, q)
}

func (r InterviewRepository) List(ctx context.Context, q query.ListQuery) ([]models.Interview, error) {
	rows, err := r.list(ctx, interviewCols, interviewFrom, q, "i.id")
	if err != nil {
		return nil, fmt.Errorf("list interviews: %w", err)
	}
	return collectInterviews(rows)
}

func (r InterviewRepository) ByCandidate(ctx context.Context, candidateID int64) ([]models.Interview, error) {
	rows, err := r.DB.QueryContext(ctx, r.rebind("SELECT "+interviewCols+" FROM "+interviewFrom+" WHERE i.candidate_id = ? ORDER BY i.created_date"), candidateID)
	if err != nil {
		return nil, fmt.Errorf("list candidate interviews: %w", err)
	}
	return collectInterviews(rows)
}

func collectInterviews(rows *sql.Rows) ([]models.Interview, error) {
	defer rows.Close()
	out := []models.Interview{}
	for rows.Next() {
		i, err := scanInterview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan interview: %w", err)
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"ats/internal/domain/models"
	"ats/internal/query"
)

var (
	ProcessFilters = query.Fields{
		"status":    "p.status",
		"offer":     "o.slug",
		"candidate": "ca.slug",
	}
	ProcessOrders = query.Fields{
		"status":      "p.status",
		"createdDate": "p.created_date",
	}
)

const processFrom = `candidate_to_offers p
		JOIN candidates ca ON ca.id = p.candidate_id
		JOIN offers o ON o.id = p.offer_id`

const processCols = `p.id, p.candidate_id, p.offer_id, p.status, p.created_date, p.updated_date,
		ca.id, ca.name, ca.slug, ca.email, o.id, o.job, o.slug, o.contract_type`

// ProcessRepository reads candidate_to_offers and keeps their status history.
type ProcessRepository struct {
	base
}

func NewProcessRepository(db *sql.DB, d query.Dialect) ProcessRepository {
	return ProcessRepository{base{DB: db, Dialect: d}}
}

func scanProcess(row interface{ Scan(...any) error }) (models.Process, error) {
	var (
		p        models.Process
		status   string
		ca       models.CandidateSummary
		o        models.OfferSummary
		contract string
	)
	err := row.Scan(
		&p.ID, &p.CandidateID, &p.OfferID, &status, &p.CreatedDate, &p.UpdatedDate,
		&ca.ID, &ca.Name, &ca.Slug, &ca.Email, &o.ID, &o.Job, &o.Slug, &contract,
	)
	if err != nil {
		return models.Process{}, err
	}
	p.Status = models.ProcessStatus(status)
	o.ContractType = models.Contract(contract)
	p.Candidate = &ca
	p.Offer = &o
	return p, nil
}

func (r ProcessRepository) Count(ctx context.Context, q query.ListQuery) (int, error) {
	return r.count(ctx, processFrom, q)
}

func (r ProcessRepository) List(ctx context.Context, q query.ListQuery) ([]models.Process, error) {
	rows, err := r.list(ctx, processCols, processFrom, q, "p.id")
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}
	return collectProcesses(rows)
}

func (r ProcessRepository) ByOffer(ctx context.Context, offerID int64) ([]models.Process, error) {
	rows, err := r.DB.QueryContext(ctx, r.rebind("SELECT "+processCols+" FROM "+processFrom+" WHERE p.offer_id = ? ORDER BY p.id"), offerID)
	if err != nil {
		return nil, fmt.Errorf("list offer processes: %w", err)
	}
	return collectProcesses(rows)
}

func (r ProcessRepository) ByCandidate(ctx context.Context, candidateID int64) ([]models.Process, error) {
	rows, err := r.DB.QueryContext(ctx, r.rebind("SELECT "+processCols+" FROM "+processFrom+" WHERE p.candidate_id = ? ORDER BY p.id"), candidateID)
	if err != nil {
		return nil, fmt.Errorf("list candidate processes: %w", err)
	}
	return collectProcesses(rows)
}

func (r ProcessRepository) GetByID(ctx context.Context, id int64) (models.Process, error) {
	row := r.DB.QueryRowContext(ctx, r.rebind("SELECT "+processCols+" FROM "+processFrom+" WHERE p.id = ? LIMIT 1"), id)
	p, err := scanProcess(row)
	if err != nil {
		return models.Process{}, notFound(err, "Process", strconv.FormatInt(id, 10))
	}
	return p, nil
}

func (r ProcessRepository) Archives(ctx context.Context, processID int64) ([]models.ProcessArchive, error) {
	rows, err := r.DB.QueryContext(ctx, r.rebind(`
		SELECT id, process_id, status, created_date
		FROM process_archives WHERE process_id = ? ORDER BY created_date, id`), processID)
	if err != nil {
		return nil, fmt.Errorf("list process archives: %w", err)
	}
	defer rows.Close()

	out := []models.ProcessArchive{}
	for rows.Next() {
		var (
			a      models.ProcessArchive
			status string
		)
		if err := rows.Scan(&a.ID, &a.ProcessID, &status, &a.CreatedDate); err != nil {
			return nil, fmt.Errorf("scan process archive: %w", err)
		}
		a.Status = models.ProcessStatus(status)
		out = append(out, a)
	}
	return out, rows.Err()
}

// UpdateStatus archives the current status of p and stores the new one, in one
// transaction.
func (r ProcessRepository) UpdateStatus(ctx context.Context, p models.Process, status models.ProcessStatus) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin status update: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ts := now()
	if _, err := tx.ExecContext(ctx, r.rebind(`
		INSERT INTO process_archives (process_id, status, created_date, updated_date)
		VALUES (?, ?, ?, ?)`), p.ID, string(p.Status), ts, ts); err != nil {
		return fmt.Errorf("archive process status: %w", err)
	}
	if _, err := tx.ExecContext(ctx, r.rebind(`
		UPDATE candidate_to_offers SET status = ?, updated_date = ? WHERE id = ?`), string(status), ts, p.ID); err != nil {
		return fmt.Errorf("update process status: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit status update: %w", err)
	}
	return nil
}

func collectProcesses(rows *sql.Rows) ([]models.Process, error) {
	defer rows.Close()
	out := []models.Process{}
	for rows.Next() {
		p, err := scanProcess(rows)
		if err != nil {
			return nil, fmt.Errorf("scan process: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

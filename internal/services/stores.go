package services

import (
	"context"

	"ats/internal/domain/models"
	"ats/internal/query"
	"ats/internal/repositories"
)

// Lister is the read side shared by every paginated collection.
type Lister[T any] interface {
	Count(ctx context.Context, q query.ListQuery) (int, error)
	List(ctx context.Context, q query.ListQuery) ([]T, error)
}

type UserStore interface {
	Lister[models.User]
	GetBySlug(ctx context.Context, slug string) (models.User, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
	GetCredentials(ctx context.Context, email string) (models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	CountSlugs(ctx context.Context, slugs []string) (int, error)
	Create(ctx context.Context, u *models.User) error
}

type ClientStore interface {
	Lister[models.Client]
	GetBySlug(ctx context.Context, slug string) (models.Client, error)
	Create(ctx context.Context, c *models.Client, managerID int64) error
	Acquisition(ctx context.Context) ([]repositories.AcquisitionRow, error)
}

type OfferStore interface {
	Lister[models.Offer]
	GetBySlug(ctx context.Context, slug string) (models.Offer, error)
	Create(ctx context.Context, o *models.Offer, ownerID, referrerID int64) error
}

type CandidateStore interface {
	Lister[models.Candidate]
	GetBySlug(ctx context.Context, slug string) (models.Candidate, error)
	Create(ctx context.Context, c *models.Candidate, referrerID int64) error
	CountSlugs(ctx context.Context, slugs []string) (int, error)
	Acquisition(ctx context.Context) ([]repositories.AcquisitionRow, error)
}

type InterviewStore interface {
	Lister[models.Interview]
	ByCandidate(ctx context.Context, candidateID int64) ([]models.Interview, error)
}

type ProcessStore interface {
	Lister[models.Process]
	ByOffer(ctx context.Context, offerID int64) ([]models.Process, error)
	ByCandidate(ctx context.Context, candidateID int64) ([]models.Process, error)
	GetByID(ctx context.Context, id int64) (models.Process, error)
	Archives(ctx context.Context, processID int64) ([]models.ProcessArchive, error)
	UpdateStatus(ctx context.Context, p models.Process, status models.ProcessStatus) error
}

// SlugCounter reports how many of the given slugs exist.
type SlugCounter interface {
	CountSlugs(ctx context.Context, slugs []string) (int, error)
}

var (
	_ UserStore      = repositories.UserRepository{}
	_ ClientStore    = repositories.ClientRepository{}
	_ OfferStore     = repositories.OfferRepository{}
	_ CandidateStore = repositories.CandidateRepository{}
	_ InterviewStore = repositories.InterviewRepository{}
	_ ProcessStore   = repositories.ProcessRepository{}
)

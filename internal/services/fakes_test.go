package services

import (
	"context"

	"ats/internal/domain"
	"ats/internal/domain/models"
	"ats/internal/query"
	"ats/internal/repositories"
)

type fakeLister[T any] struct {
	items  []T
	total  int
	counts int
	lists  int
	last   query.ListQuery
}

func (f *fakeLister[T]) Count(_ context.Context, q query.ListQuery) (int, error) {
	f.counts++
	f.last = q
	return f.total, nil
}

func (f *fakeLister[T]) List(_ context.Context, q query.ListQuery) ([]T, error) {
	f.lists++
	f.last = q
	return f.items, nil
}

type fakeUsers struct {
	fakeLister[models.User]
	bySlug  map[string]models.User
	byEmail map[string]models.User
	created []models.User
}

func newFakeUsers(users ...models.User) *fakeUsers {
	f := &fakeUsers{bySlug: map[string]models.User{}, byEmail: map[string]models.User{}}
	for _, u := range users {
		f.bySlug[u.Slug] = u
		f.byEmail[u.Email] = u
	}
	return f
}

func (f *fakeUsers) GetBySlug(_ context.Context, slug string) (models.User, error) {
	u, ok := f.bySlug[slug]
	if !ok {
		return models.User{}, domain.NotFoundError{Resource: "User", Key: slug}
	}
	return u, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (models.User, error) {
	for _, u := range f.bySlug {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, domain.NotFoundError{Resource: "User"}
}

func (f *fakeUsers) GetCredentials(_ context.Context, email string) (models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return models.User{}, domain.NotFoundError{Resource: "User", Key: email}
	}
	return u, nil
}

func (f *fakeUsers) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func (f *fakeUsers) CountSlugs(_ context.Context, slugs []string) (int, error) {
	n := 0
	for _, s := range slugs {
		if _, ok := f.bySlug[s]; ok {
			n++
		}
	}
	return n, nil
}

func (f *fakeUsers) Create(_ context.Context, u *models.User) error {
	u.ID = int64(len(f.bySlug) + 1)
	f.bySlug[u.Slug] = *u
	f.byEmail[u.Email] = *u
	f.created = append(f.created, *u)
	return nil
}

type fakeClients struct {
	fakeLister[models.Client]
	bySlug    map[string]models.Client
	managerID int64
	rows      []repositories.AcquisitionRow
}

func (f *fakeClients) GetBySlug(_ context.Context, slug string) (models.Client, error) {
	c, ok := f.bySlug[slug]
	if !ok {
		return models.Client{}, domain.NotFoundError{Resource: "Client", Key: slug}
	}
	return c, nil
}

func (f *fakeClients) Create(_ context.Context, c *models.Client, managerID int64) error {
	c.ID = 100
	f.managerID = managerID
	if f.bySlug == nil {
		f.bySlug = map[string]models.Client{}
	}
	f.bySlug[c.Slug] = *c
	return nil
}

func (f *fakeClients) Acquisition(context.Context) ([]repositories.AcquisitionRow, error) {
	return f.rows, nil
}

type fakeOffers struct {
	fakeLister[models.Offer]
	bySlug     map[string]models.Offer
	ownerID    int64
	referrerID int64
}

func (f *fakeOffers) GetBySlug(_ context.Context, slug string) (models.Offer, error) {
	o, ok := f.bySlug[slug]
	if !ok {
		return models.Offer{}, domain.NotFoundError{Resource: "Offer", Key: slug}
	}
	return o, nil
}

func (f *fakeOffers) Create(_ context.Context, o *models.Offer, ownerID, referrerID int64) error {
	o.ID = 200
	f.ownerID, f.referrerID = ownerID, referrerID
	return nil
}

type fakeProcesses struct {
	fakeLister[models.Process]
	byID     map[int64]models.Process
	archives map[int64][]models.ProcessArchive
	updates  int
}

func (f *fakeProcesses) ByOffer(_ context.Context, offerID int64) ([]models.Process, error) {
	out := []models.Process{}
	for _, p := range f.byID {
		if p.OfferID == offerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProcesses) ByCandidate(_ context.Context, candidateID int64) ([]models.Process, error) {
	out := []models.Process{}
	for _, p := range f.byID {
		if p.CandidateID == candidateID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProcesses) GetByID(_ context.Context, id int64) (models.Process, error) {
	p, ok := f.byID[id]
	if !ok {
		return models.Process{}, domain.NotFoundError{Resource: "Process"}
	}
	return p, nil
}

func (f *fakeProcesses) Archives(_ context.Context, id int64) ([]models.ProcessArchive, error) {
	return f.archives[id], nil
}

func (f *fakeProcesses) UpdateStatus(_ context.Context, p models.Process, status models.ProcessStatus) error {
	f.updates++
	if f.archives == nil {
		f.archives = map[int64][]models.ProcessArchive{}
	}
	f.archives[p.ID] = append(f.archives[p.ID], models.ProcessArchive{ProcessID: p.ID, Status: p.Status})
	p.Status = status
	f.byID[p.ID] = p
	return nil
}

type fakeCandidates struct {
	fakeLister[models.Candidate]
	bySlug     map[string]models.Candidate
	referrerID int64
}

func (f *fakeCandidates) GetBySlug(_ context.Context, slug string) (models.Candidate, error) {
	c, ok := f.bySlug[slug]
	if !ok {
		return models.Candidate{}, domain.NotFoundError{Resource: "Candidate", Key: slug}
	}
	return c, nil
}

func (f *fakeCandidates) Create(_ context.Context, c *models.Candidate, referrerID int64) error {
	c.ID = 300
	f.referrerID = referrerID
	return nil
}

func (f *fakeCandidates) CountSlugs(_ context.Context, slugs []string) (int, error) {
	n := 0
	for _, s := range slugs {
		if _, ok := f.bySlug[s]; ok {
			n++
		}
	}
	return n, nil
}

func (f *fakeCandidates) Acquisition(context.Context) ([]repositories.AcquisitionRow, error) {
	return nil, nil
}

type fakeInterviews struct {
	fakeLister[models.Interview]
	byCandidate map[int64][]models.Interview
}

func (f *fakeInterviews) ByCandidate(_ context.Context, candidateID int64) ([]models.Interview, error) {
	return f.byCandidate[candidateID], nil
}

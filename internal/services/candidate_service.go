package services

import (
	"context"
	"fmt"
	"strings"

	"ats/internal/domain"
	"ats/internal/domain/models"
	"ats/internal/repositories"
	"ats/internal/utils"
)

type CreateCandidateInput struct {
	Name   string
	Email  string
	Resume string
}

type CandidateService struct {
	Candidates CandidateStore
	Users      UserStore
	Processes  ProcessStore
	Interviews InterviewStore
	RequestID  string
}

func (s CandidateService) List(ctx context.Context, req ListRequest) (Page[models.Candidate], error) {
	if err := checkSlugs(ctx, s.Users, req.Options, "referrer"); err != nil {
		return Page[models.Candidate]{}, err
	}
	return listPage(ctx, s.Candidates, collectionDef{
		collection: "candidates",
		filters:    repositories.CandidateFilters,
		orders:     repositories.CandidateOrders,
	}, req)
}

// Get loads the candidate with its processes and interviews.
func (s CandidateService) Get(ctx context.Context, slug string) (models.Candidate, error) {
	c, err := s.Candidates.GetBySlug(ctx, slug)
	if err != nil {
		return models.Candidate{}, err
	}
	if s.Processes != nil {
		if c.Processes, err = s.Processes.ByCandidate(ctx, c.ID); err != nil {
			return models.Candidate{}, err
		}
	}
	if s.Interviews != nil {
		if c.Interviews, err = s.Interviews.ByCandidate(ctx, c.ID); err != nil {
			return models.Candidate{}, err
		}
	}
	return c, nil
}

// Create stores a candidate referred by the current user.
func (s CandidateService) Create(ctx context.Context, in CreateCandidateInput, current models.User) (models.Candidate, error) {
	name := utils.NormalizeSpace(in.Name)
	slug := utils.Slugify(name)
	if slug == "" {
		return models.Candidate{}, domain.ValidationError{Msg: "name must contain letters or digits"}
	}
	if err := ensureFree(ctx, "Candidate", name, func(ctx context.Context) (any, error) {
		return s.Candidates.GetBySlug(ctx, slug)
	}); err != nil {
		return models.Candidate{}, err
	}

	c := models.Candidate{
		Name:     name,
		Slug:     slug,
		Email:    strings.TrimSpace(in.Email),
		Resume:   in.Resume,
		Referrer: current.Summary(),
	}
	if err := s.Candidates.Create(ctx, &c, current.ID); err != nil {
		return models.Candidate{}, err
	}
	utils.LogEvent(s.RequestID, "candidates", "create", fmt.Sprintf("candidate_id=%d slug=%s", c.ID, c.Slug))
	return c, nil
}

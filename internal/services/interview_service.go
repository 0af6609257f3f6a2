package services

import (
	"context"

	"ats/internal/domain/models"
	"ats/internal/repositories"
)

type InterviewService struct {
	Interviews InterviewStore
	Candidates SlugCounter
	Users      SlugCounter
	RequestID  string
}

func (s InterviewService) List(ctx context.Context, req ListRequest) (Page[models.Interview], error) {
	if err := checkSlugs(ctx, s.Candidates, req.Options, "candidate"); err != nil {
		return Page[models.Interview]{}, err
	}
	if err := checkSlugs(ctx, s.Users, req.Options, "recruiter"); err != nil {
		return Page[models.Interview]{}, err
	}
	return listPage(ctx, s.Interviews, collectionDef{
		collection: "interviews",
		filters:    repositories.InterviewFilters,
		orders:     repositories.InterviewOrders,
	}, req)
}

package services

import (
	"context"

	"ats/internal/domain/models"
	"ats/internal/repositories"
)

type UserService struct {
	Users     UserStore
	RequestID string
}

func (s UserService) List(ctx context.Context, req ListRequest) (Page[models.User], error) {
	return listPage(ctx, s.Users, collectionDef{
		collection: "users",
		filters:    repositories.UserFilters,
		orders:     repositories.UserOrders,
	}, req)
}

func (s UserService) Get(ctx context.Context, slug string) (models.User, error) {
	return s.Users.GetBySlug(ctx, slug)
}

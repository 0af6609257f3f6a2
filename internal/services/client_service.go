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

type CreateClientInput struct {
	Name  string
	Phone string
	// AccountManager is an optional user slug.
	AccountManager string
}

type ClientService struct {
	Clients   ClientStore
	Users     UserStore
	RequestID string
}

func (s ClientService) List(ctx context.Context, req ListRequest) (Page[models.Client], error) {
	if err := checkSlugs(ctx, s.Users, req.Options, "accountManager"); err != nil {
		return Page[models.Client]{}, err
	}
	return listPage(ctx, s.Clients, collectionDef{
		collection: "clients",
		filters:    repositories.ClientFilters,
		orders:     repositories.ClientOrders,
	}, req)
}

func (s ClientService) Get(ctx context.Context, slug string) (models.Client, error) {
	return s.Clients.GetBySlug(ctx, slug)
}

// Create stores a new client. The slug is derived from the name and must be free.
func (s ClientService) Create(ctx context.Context, in CreateClientInput) (models.Client, error) {
	name := utils.NormalizeSpace(in.Name)
	slug := utils.Slugify(name)
	if slug == "" {
		return models.Client{}, domain.ValidationError{Msg: "name must contain letters or digits"}
	}
	if err := ensureFree(ctx, "Client", name, func(ctx context.Context) (any, error) {
		return s.Clients.GetBySlug(ctx, slug)
	}); err != nil {
		return models.Client{}, err
	}

	c := models.Client{Name: name, Phone: strings.TrimSpace(in.Phone), Slug: slug}
	var managerID int64
	if in.AccountManager != "" {
		manager, err := s.Users.GetBySlug(ctx, in.AccountManager)
		if err != nil {
			return models.Client{}, err
		}
		managerID = manager.ID
		c.AccountManager = manager.Summary()
	}

	if err := s.Clients.Create(ctx, &c, managerID); err != nil {
		return models.Client{}, err
	}
	utils.LogEvent(s.RequestID, "clients", "create", fmt.Sprintf("client_id=%d slug=%s", c.ID, c.Slug))
	return c, nil
}

// ensureFree fails with DuplicateNameError when lookup finds a resource, and
// passes through anything but a not-found error.
func ensureFree(ctx context.Context, resource, name string, lookup func(context.Context) (any, error)) error {
	existing, err := lookup(ctx)
	if err == nil {
		return domain.DuplicateNameError{Resource: resource, Name: name, Existing: existing}
	}
	if domain.IsNotFound(err) {
		return nil
	}
	return err
}

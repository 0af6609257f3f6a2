package services

import (
	"context"
	"fmt"

	"ats/internal/domain"
	"ats/internal/domain/models"
	"ats/internal/repositories"
	"ats/internal/utils"
)

type CreateOfferInput struct {
	Job          string
	AnnualSalary int64
	ContractType models.Contract
	// Owner is the slug of the client the offer is for.
	Owner string
}

type OfferService struct {
	Offers    OfferStore
	Clients   ClientStore
	Users     UserStore
	Processes ProcessStore
	RequestID string
}

func (s OfferService) List(ctx context.Context, req ListRequest) (Page[models.Offer], error) {
	if err := checkSlugs(ctx, s.Users, req.Options, "referrer"); err != nil {
		return Page[models.Offer]{}, err
	}
	return listPage(ctx, s.Offers, collectionDef{
		collection: "offers",
		filters:    repositories.OfferFilters,
		orders:     repositories.OfferOrders,
	}, req)
}

// Get loads the offer with the candidates applying to it.
func (s OfferService) Get(ctx context.Context, slug string) (models.Offer, error) {
	o, err := s.Offers.GetBySlug(ctx, slug)
	if err != nil {
		return models.Offer{}, err
	}
	if s.Processes != nil {
		if o.Processes, err = s.Processes.ByOffer(ctx, o.ID); err != nil {
			return models.Offer{}, err
		}
	}
	return o, nil
}

// Create stores an offer for the owner client, referred by the current user.
// Its slug is "<client name>-<job>".
func (s OfferService) Create(ctx context.Context, in CreateOfferInput, current models.User) (models.Offer, error) {
	if in.AnnualSalary < 0 {
		return models.Offer{}, domain.ValidationError{Msg: "annualSalary must not be less than 0"}
	}
	owner, err := s.Clients.GetBySlug(ctx, in.Owner)
	if err != nil {
		return models.Offer{}, err
	}

	job := utils.NormalizeSpace(in.Job)
	slug := utils.Slugify(owner.Name, job)
	if err := ensureFree(ctx, "Offer", job, func(ctx context.Context) (any, error) {
		return s.Offers.GetBySlug(ctx, slug)
	}); err != nil {
		return models.Offer{}, err
	}

	o := models.Offer{
		Job:          job,
		Slug:         slug,
		AnnualSalary: in.AnnualSalary,
		ContractType: in.ContractType,
		Owner:        &models.ClientSummary{ID: owner.ID, Name: owner.Name, Phone: owner.Phone, Slug: owner.Slug},
		Referrer:     current.Summary(),
	}
	if err := s.Offers.Create(ctx, &o, owner.ID, current.ID); err != nil {
		return models.Offer{}, err
	}
	utils.LogEvent(s.RequestID, "offers", "create", fmt.Sprintf("offer_id=%d slug=%s", o.ID, o.Slug))
	return o, nil
}

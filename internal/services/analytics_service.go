package services

import (
	"context"

	"ats/internal/domain/models"
	"ats/internal/repositories"
	"ats/internal/utils"
)

type acquisitionSource interface {
	Acquisition(ctx context.Context) ([]repositories.AcquisitionRow, error)
}

// AnalyticsService builds per-day creation series.
type AnalyticsService struct {
	Clients    acquisitionSource
	Candidates acquisitionSource
	RequestID  string
}

func (s AnalyticsService) CandidateAcquisition(ctx context.Context) ([]models.AcquisitionPoint, error) {
	return acquisitionPoints(ctx, s.Candidates)
}

func (s AnalyticsService) ClientAcquisition(ctx context.Context) ([]models.AcquisitionPoint, error) {
	return acquisitionPoints(ctx, s.Clients)
}

func acquisitionPoints(ctx context.Context, src acquisitionSource) ([]models.AcquisitionPoint, error) {
	rows, err := src.Acquisition(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.AcquisitionPoint, len(rows))
	for i, r := range rows {
		out[i] = models.AcquisitionPoint{Date: r.Day.UTC().Format(utils.LayoutDate), Count: r.Count}
	}
	return out, nil
}

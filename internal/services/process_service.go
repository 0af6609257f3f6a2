package services

import (
	"context"
	"fmt"

	"ats/internal/domain/models"
	"ats/internal/repositories"
	"ats/internal/utils"
)

type ProcessService struct {
	Processes  ProcessStore
	Candidates SlugCounter
	RequestID  string
}

func (s ProcessService) List(ctx context.Context, req ListRequest) (Page[models.Process], error) {
	if err := checkSlugs(ctx, s.Candidates, req.Options, "candidate"); err != nil {
		return Page[models.Process]{}, err
	}
	return listPage(ctx, s.Processes, collectionDef{
		collection: "processes",
		filters:    repositories.ProcessFilters,
		orders:     repositories.ProcessOrders,
	}, req)
}

// Get loads a process with its status history.
func (s ProcessService) Get(ctx context.Context, id int64) (models.Process, error) {
	p, err := s.Processes.GetByID(ctx, id)
	if err != nil {
		return models.Process{}, err
	}
	if p.Archives, err = s.Processes.Archives(ctx, id); err != nil {
		return models.Process{}, err
	}
	return p, nil
}

// UpdateStatus moves the process to status and archives the previous one.
// Setting the current status again changes nothing.
func (s ProcessService) UpdateStatus(ctx context.Context, id int64, status models.ProcessStatus) (models.Process, error) {
	p, err := s.Processes.GetByID(ctx, id)
	if err != nil {
		return models.Process{}, err
	}
	if p.Status != status {
		if err := s.Processes.UpdateStatus(ctx, p, status); err != nil {
			return models.Process{}, err
		}
		utils.LogEvent(s.RequestID, "processes", "update_status",
			fmt.Sprintf("process_id=%d from=%q to=%q", id, p.Status, status))
	}
	return s.Get(ctx, id)
}

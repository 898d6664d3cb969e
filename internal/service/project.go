package service

import (
	"context"

	"organisation-dashboard-backend/internal/cache"
	apperrors "organisation-dashboard-backend/internal/errors"
	"organisation-dashboard-backend/internal/gateway"
	"organisation-dashboard-backend/internal/models"

	"github.com/google/uuid"
)

// ProjectService serves the read-only project views the dashboard needs:
// the project picker list inside the team modal and the name lookup.
type ProjectService struct {
	projects  gateway.ProjectGateway
	viewCache *cache.ViewCache
}

// NewProjectService creates a new project service
func NewProjectService(projects gateway.ProjectGateway, viewCache *cache.ViewCache) *ProjectService {
	return &ProjectService{
		projects:  projects,
		viewCache: viewCache,
	}
}

// List returns the organisation's projects straight from the remote store;
// the picker is only shown while a modal is open, so it is not cached.
func (s *ProjectService) List(ctx context.Context, organisationID uuid.UUID) ([]models.Project, error) {
	projects, err := s.projects.List(ctx, organisationID)
	if err != nil {
		return nil, apperrors.AtStep(err, apperrors.StepFetch)
	}
	return projects, nil
}

// ProjectName resolves a project id through the cached lookup.
func (s *ProjectService) ProjectName(ctx context.Context, organisationID uuid.UUID, projectID *uuid.UUID) (string, error) {
	name, err := s.viewCache.GetProjectName(ctx, organisationID, projectID)
	if err != nil {
		return "", apperrors.AtStep(err, apperrors.StepFetch)
	}
	return name, nil
}

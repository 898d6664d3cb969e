package service

import (
	"context"

	apperrors "organisation-dashboard-backend/internal/errors"
	"organisation-dashboard-backend/internal/gateway"
	"organisation-dashboard-backend/internal/models"

	"github.com/google/uuid"
)

// OrganisationService serves the read-only organisation header the dashboard
// renders above the team list. Organisations themselves are managed by a
// collaborator.
type OrganisationService struct {
	organisations gateway.OrganisationGateway
}

// NewOrganisationService creates a new organisation service
func NewOrganisationService(organisations gateway.OrganisationGateway) *OrganisationService {
	return &OrganisationService{organisations: organisations}
}

// Get returns one organisation.
func (s *OrganisationService) Get(ctx context.Context, organisationID uuid.UUID) (*models.Organisation, error) {
	organisation, err := s.organisations.GetByID(ctx, organisationID)
	if err != nil {
		return nil, apperrors.AtStep(err, apperrors.StepFetch)
	}
	return organisation, nil
}

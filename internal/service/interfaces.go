package service

import (
	"context"

	"organisation-dashboard-backend/internal/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamServiceInterface defines the interface for the team service
type TeamServiceInterface interface {
	SubmitTeam(ctx context.Context, instanceID string, buffer models.TeamFormData, mode SubmitMode, existing *models.Team) (*models.Team, error)
	CreateTeam(ctx context.Context, instanceID string, buffer models.TeamFormData) (*models.Team, error)
	UpdateTeam(ctx context.Context, instanceID string, teamID uuid.UUID, buffer models.TeamFormData) (*models.Team, error)
	DeleteTeam(ctx context.Context, organisationID, teamID uuid.UUID) error
	ListTeams(ctx context.Context, organisationID uuid.UUID) (*TeamListResponse, error)
}

// ProjectServiceInterface defines the interface for the project service
type ProjectServiceInterface interface {
	List(ctx context.Context, organisationID uuid.UUID) ([]models.Project, error)
	ProjectName(ctx context.Context, organisationID uuid.UUID, projectID *uuid.UUID) (string, error)
}

// OrganisationServiceInterface defines the interface for the organisation service
type OrganisationServiceInterface interface {
	Get(ctx context.Context, organisationID uuid.UUID) (*models.Organisation, error)
}

// MemberServiceInterface defines the interface for the member service
type MemberServiceInterface interface {
	List(ctx context.Context, organisationID uuid.UUID) ([]models.Member, error)
}

// Package gateway is a thin typed accessor over the remote entity store.
// Every operation is synchronous from the caller's point of view but fails
// only through its returned error, never by panicking; any error means the
// remote state did not change for that call. No retries happen here - retry
// policy, if any, belongs to the orchestrator above.
package gateway

import (
	"context"

	"organisation-dashboard-backend/internal/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/gateway_mocks.go -package=mocks

// TeamGateway defines the remote operations on teams
type TeamGateway interface {
	List(ctx context.Context, organisationID uuid.UUID) ([]models.Team, error)
	GetByID(ctx context.Context, teamID uuid.UUID) (*models.Team, error)
	Create(ctx context.Context, team *models.Team) (*models.Team, error)
	Update(ctx context.Context, teamID uuid.UUID, team *models.Team) (*models.Team, error)
	Delete(ctx context.Context, teamID uuid.UUID) error
	AssignToProject(ctx context.Context, teamID, projectID uuid.UUID) error
	RemoveFromProject(ctx context.Context, teamID uuid.UUID) error
}

// ProjectGateway defines the remote read operations on projects
type ProjectGateway interface {
	List(ctx context.Context, organisationID uuid.UUID) ([]models.Project, error)
	GetByID(ctx context.Context, projectID uuid.UUID) (*models.Project, error)
}

// OrganisationGateway defines the remote read operations on organisations
type OrganisationGateway interface {
	GetByID(ctx context.Context, organisationID uuid.UUID) (*models.Organisation, error)
}

// MemberGateway defines the remote read operations on members
type MemberGateway interface {
	List(ctx context.Context, organisationID uuid.UUID) ([]models.Member, error)
}

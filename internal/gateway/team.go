package gateway

import (
	"context"
	"fmt"
	"net/http"

	"organisation-dashboard-backend/internal/models"

	"github.com/google/uuid"
)

// TeamClient implements TeamGateway against the remote entity store.
type TeamClient struct {
	client *Client
}

// NewTeamClient creates a team gateway over the shared client.
func NewTeamClient(client *Client) *TeamClient {
	return &TeamClient{client: client}
}

// List retrieves all teams of an organisation.
func (g *TeamClient) List(ctx context.Context, organisationID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	path := fmt.Sprintf("/organisations/%s/teams", organisationID)
	if err := g.client.do(ctx, http.MethodGet, path, nil, &teams, "team"); err != nil {
		return nil, err
	}
	return teams, nil
}

// GetByID retrieves a single team.
func (g *TeamClient) GetByID(ctx context.Context, teamID uuid.UUID) (*models.Team, error) {
	var team models.Team
	path := fmt.Sprintf("/teams/%s", teamID)
	if err := g.client.do(ctx, http.MethodGet, path, nil, &team, "team"); err != nil {
		return nil, err
	}
	return &team, nil
}

// Create persists a new team. The remote store assigns the identity and the
// creation timestamp; the returned team carries both.
func (g *TeamClient) Create(ctx context.Context, team *models.Team) (*models.Team, error) {
	var created models.Team
	if err := g.client.do(ctx, http.MethodPost, "/teams", team, &created, "team"); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update persists the core fields of an existing team.
func (g *TeamClient) Update(ctx context.Context, teamID uuid.UUID, team *models.Team) (*models.Team, error) {
	var updated models.Team
	path := fmt.Sprintf("/teams/%s", teamID)
	if err := g.client.do(ctx, http.MethodPut, path, team, &updated, "team"); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a team from the remote store.
func (g *TeamClient) Delete(ctx context.Context, teamID uuid.UUID) error {
	path := fmt.Sprintf("/teams/%s", teamID)
	return g.client.do(ctx, http.MethodDelete, path, nil, nil, "team")
}

// AssignToProject sets the team's single project slot. The call is
// idempotent per team, so it serves both first assignment and reassignment.
func (g *TeamClient) AssignToProject(ctx context.Context, teamID, projectID uuid.UUID) error {
	path := fmt.Sprintf("/teams/%s/project/%s", teamID, projectID)
	return g.client.do(ctx, http.MethodPost, path, nil, nil, "team")
}

// RemoveFromProject clears the team's project slot.
func (g *TeamClient) RemoveFromProject(ctx context.Context, teamID uuid.UUID) error {
	path := fmt.Sprintf("/teams/%s/project", teamID)
	return g.client.do(ctx, http.MethodDelete, path, nil, nil, "team")
}

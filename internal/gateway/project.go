package gateway

import (
	"context"
	"fmt"
	"net/http"

	"organisation-dashboard-backend/internal/models"

	"github.com/google/uuid"
)

// ProjectClient implements ProjectGateway against the remote entity store.
type ProjectClient struct {
	client *Client
}

// NewProjectClient creates a project gateway over the shared client.
func NewProjectClient(client *Client) *ProjectClient {
	return &ProjectClient{client: client}
}

// List retrieves all projects of an organisation.
func (g *ProjectClient) List(ctx context.Context, organisationID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	path := fmt.Sprintf("/organisations/%s/projects", organisationID)
	if err := g.client.do(ctx, http.MethodGet, path, nil, &projects, "project"); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetByID retrieves a single project.
func (g *ProjectClient) GetByID(ctx context.Context, projectID uuid.UUID) (*models.Project, error) {
	var project models.Project
	path := fmt.Sprintf("/projects/%s", projectID)
	if err := g.client.do(ctx, http.MethodGet, path, nil, &project, "project"); err != nil {
		return nil, err
	}
	return &project, nil
}

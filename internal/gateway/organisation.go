package gateway

import (
	"context"
	"fmt"
	"net/http"

	"organisation-dashboard-backend/internal/models"

	"github.com/google/uuid"
)

// OrganisationClient implements OrganisationGateway against the remote store.
type OrganisationClient struct {
	client *Client
}

// NewOrganisationClient creates an organisation gateway over the shared client.
func NewOrganisationClient(client *Client) *OrganisationClient {
	return &OrganisationClient{client: client}
}

// GetByID retrieves a single organisation.
func (g *OrganisationClient) GetByID(ctx context.Context, organisationID uuid.UUID) (*models.Organisation, error) {
	var organisation models.Organisation
	path := fmt.Sprintf("/organisations/%s", organisationID)
	if err := g.client.do(ctx, http.MethodGet, path, nil, &organisation, "organisation"); err != nil {
		return nil, err
	}
	return &organisation, nil
}

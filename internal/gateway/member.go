package gateway

import (
	"context"
	"fmt"
	"net/http"

	"organisation-dashboard-backend/internal/models"

	"github.com/google/uuid"
)

// MemberClient implements MemberGateway against the remote entity store.
type MemberClient struct {
	client *Client
}

// NewMemberClient creates a member gateway over the shared client.
func NewMemberClient(client *Client) *MemberClient {
	return &MemberClient{client: client}
}

// List retrieves all members of an organisation.
func (g *MemberClient) List(ctx context.Context, organisationID uuid.UUID) ([]models.Member, error) {
	var members []models.Member
	path := fmt.Sprintf("/organisations/%s/members", organisationID)
	if err := g.client.do(ctx, http.MethodGet, path, nil, &members, "member"); err != nil {
		return nil, err
	}
	return members, nil
}

package models

import (
	"github.com/google/uuid"
)

// Organisation scopes teams, projects and members. Read-only from this
// service's perspective.
type Organisation struct {
	ID   uuid.UUID `json:"organisation_id"`
	Name string    `json:"name"`
}

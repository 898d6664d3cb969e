package models

import (
	"github.com/google/uuid"
)

// Project represents a project in the remote entity store. A project may
// have zero or many teams associated with it, but never tracks them itself;
// the team-to-project association lives on the team side and the reverse
// view is derived by the view cache.
type Project struct {
	ID             uuid.UUID `json:"project_id"`
	Name           string    `json:"name" validate:"required,min=1,max=200"`
	OrganisationID uuid.UUID `json:"organisation_id" validate:"required"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Team represents a team as stored by the remote entity store. A team that
// has not been persisted yet carries a nil ID; the remote store assigns the
// identity on create. A team references at most one project at any instant,
// and the team side owns that association.
type Team struct {
	ID             *uuid.UUID  `json:"team_id,omitempty"`
	Name           string      `json:"name" validate:"required,min=1,max=100"`
	OrganisationID uuid.UUID   `json:"organisation_id" validate:"required"`
	ProjectID      *uuid.UUID  `json:"project_id,omitempty"`
	Description    string      `json:"description,omitempty" validate:"max=500"`
	TeamManagerID  *uuid.UUID  `json:"team_manager_id,omitempty"`
	Members        []uuid.UUID `json:"members,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}

// TeamFormData is the ephemeral edit buffer held while a team modal is open.
// It never outlives the modal and is never persisted as-is.
type TeamFormData struct {
	Name           string     `json:"name" validate:"required,min=1,max=100"`
	OrganisationID uuid.UUID  `json:"organisation_id" validate:"required"`
	ProjectID      *uuid.UUID `json:"project_id,omitempty"`
	Description    string     `json:"description,omitempty" validate:"max=500"`
	TeamManagerID  *uuid.UUID `json:"team_manager_id,omitempty"`
}

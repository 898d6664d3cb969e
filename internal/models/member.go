package models

import (
	"github.com/google/uuid"
)

// MemberRole represents the role of a member within an organisation
type MemberRole string

const (
	MemberRoleAdmin   MemberRole = "admin"
	MemberRoleManager MemberRole = "manager"
	MemberRoleMember  MemberRole = "member"
)

// Member represents an organisation member. A member may manage at most one
// team and belong to any number of team member sets; membership management
// itself is handled by a collaborator, so this service only reads members.
type Member struct {
	ID             uuid.UUID  `json:"member_id"`
	FullName       string     `json:"full_name"`
	Role           MemberRole `json:"role"`
	OrganisationID uuid.UUID  `json:"organisation_id"`
}

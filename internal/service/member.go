package service

import (
	"context"

	apperrors "organisation-dashboard-backend/internal/errors"
	"organisation-dashboard-backend/internal/gateway"
	"organisation-dashboard-backend/internal/models"

	"github.com/google/uuid"
)

// MemberService serves the read-only member list used by the team manager
// picker. Membership management itself belongs to a collaborator.
type MemberService struct {
	members gateway.MemberGateway
}

// NewMemberService creates a new member service
func NewMemberService(members gateway.MemberGateway) *MemberService {
	return &MemberService{members: members}
}

// List returns the organisation's members.
func (s *MemberService) List(ctx context.Context, organisationID uuid.UUID) ([]models.Member, error) {
	members, err := s.members.List(ctx, organisationID)
	if err != nil {
		return nil, apperrors.AtStep(err, apperrors.StepFetch)
	}
	return members, nil
}

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"organisation-dashboard-backend/internal/assignment"
	"organisation-dashboard-backend/internal/cache"
	apperrors "organisation-dashboard-backend/internal/errors"
	"organisation-dashboard-backend/internal/gateway"
	"organisation-dashboard-backend/internal/logger"
	"organisation-dashboard-backend/internal/models"
	"organisation-dashboard-backend/internal/notify"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SubmitMode selects which entry point of the save workflow runs.
type SubmitMode string

const (
	ModeCreate SubmitMode = "create"
	ModeEdit   SubmitMode = "edit"
)

// TeamService orchestrates the two-step team save workflow: persist the core
// fields, then consult the assignment resolver and issue the matching
// assign/unassign call. The two steps are sequential and not atomic; a
// partial failure (team saved, assignment failed) is reported as such, never
// hidden and never rolled back.
type TeamService struct {
	teams     gateway.TeamGateway
	viewCache *cache.ViewCache
	notifier  notify.Notifier
	validator *validator.Validate

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewTeamService creates a new team service
func NewTeamService(teams gateway.TeamGateway, viewCache *cache.ViewCache, notifier notify.Notifier, validator *validator.Validate) *TeamService {
	return &TeamService{
		teams:     teams,
		viewCache: viewCache,
		notifier:  notifier,
		validator: validator,
		inFlight:  make(map[string]struct{}),
	}
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID             uuid.UUID   `json:"team_id"`
	Name           string      `json:"name"`
	OrganisationID uuid.UUID   `json:"organisation_id"`
	ProjectID      *uuid.UUID  `json:"project_id,omitempty"`
	ProjectName    string      `json:"project_name"`
	Description    string      `json:"description,omitempty"`
	TeamManagerID  *uuid.UUID  `json:"team_manager_id,omitempty"`
	Members        []uuid.UUID `json:"members,omitempty"`
	MemberCount    int         `json:"member_count"`
	CreatedAt      string      `json:"created_at"`
}

// TeamListResponse represents the team list view of one organisation
type TeamListResponse struct {
	Teams []TeamResponse `json:"teams"`
	Total int            `json:"total"`
}

// SubmitTeam runs the full save workflow for one modal submit. instanceID
// identifies the open modal; while a submission for that instance is in
// flight, further submits return ErrSubmissionInFlight without touching the
// network. In edit mode, existing must carry the previously persisted team:
// its identity, creation time and member set are preserved no matter what
// the buffer says, and its project id is the resolver's "previous" input.
//
// The returned team reflects the remote state reached by the attempt. On a
// partial failure (core save succeeded, assignment failed) the team is
// returned alongside a RemoteError whose step is assignment, and its
// ProjectID still holds the pre-submit assignment.
func (s *TeamService) SubmitTeam(ctx context.Context, instanceID string, buffer models.TeamFormData, mode SubmitMode, existing *models.Team) (*models.Team, error) {
	if !s.begin(instanceID) {
		logger.WithContext(ctx).Debug("Ignoring duplicate submit while mutation is in flight")
		return nil, apperrors.ErrSubmissionInFlight
	}
	defer s.end(instanceID)

	return s.submit(ctx, buffer, mode, existing)
}

// CreateTeam submits a create-mode buffer.
func (s *TeamService) CreateTeam(ctx context.Context, instanceID string, buffer models.TeamFormData) (*models.Team, error) {
	return s.SubmitTeam(ctx, instanceID, buffer, ModeCreate, nil)
}

// UpdateTeam fetches the team's previously persisted state and submits an
// edit-mode buffer against it. The guard is taken before the fetch, so a
// duplicate edit submit makes no remote call at all.
func (s *TeamService) UpdateTeam(ctx context.Context, instanceID string, teamID uuid.UUID, buffer models.TeamFormData) (*models.Team, error) {
	if !s.begin(instanceID) {
		logger.WithContext(ctx).Debug("Ignoring duplicate submit while mutation is in flight")
		return nil, apperrors.ErrSubmissionInFlight
	}
	defer s.end(instanceID)

	existing, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return nil, s.fail(ctx, apperrors.AtStep(err, apperrors.StepFetch))
	}
	return s.submit(ctx, buffer, ModeEdit, existing)
}

// submit validates the buffer and runs the mode's workflow. Callers hold the
// in-flight guard.
func (s *TeamService) submit(ctx context.Context, buffer models.TeamFormData, mode SubmitMode, existing *models.Team) (*models.Team, error) {
	// Local validation happens before any network call.
	buffer.Name = strings.TrimSpace(buffer.Name)
	if buffer.Name == "" {
		return nil, s.fail(ctx, apperrors.NewValidationError("name", "team name is required"))
	}
	if err := s.validator.Struct(&buffer); err != nil {
		return nil, s.fail(ctx, apperrors.NewValidationError("", err.Error()))
	}
	if mode == ModeEdit && (existing == nil || existing.ID == nil) {
		return nil, s.fail(ctx, apperrors.ErrMissingTeamIdentity)
	}

	switch mode {
	case ModeCreate:
		return s.create(ctx, buffer)
	case ModeEdit:
		return s.update(ctx, buffer, existing)
	default:
		return nil, s.fail(ctx, apperrors.NewValidationError("mode", fmt.Sprintf("unknown submit mode %q", mode)))
	}
}

func (s *TeamService) create(ctx context.Context, buffer models.TeamFormData) (*models.Team, error) {
	log := logger.WithContext(ctx).WithField("organisation_id", buffer.OrganisationID)

	created, err := s.teams.Create(ctx, &models.Team{
		Name:           buffer.Name,
		OrganisationID: buffer.OrganisationID,
		Description:    buffer.Description,
		TeamManagerID:  buffer.TeamManagerID,
	})
	if err != nil {
		log.Errorf("Team create failed: %v", err)
		return nil, s.fail(ctx, apperrors.AtStep(err, apperrors.StepCoreSave))
	}

	team, err := s.applyAssignment(ctx, created, nil, buffer.ProjectID)
	s.viewCache.Invalidate(buffer.OrganisationID)
	if err != nil {
		// The team exists remotely but unassigned; surfaced as a
		// distinct outcome rather than rolled back.
		s.notifier.Error(ctx, "Team created, but project assignment failed")
		return team, err
	}

	log.Infof("Team %q created", team.Name)
	s.notifier.Success(ctx, fmt.Sprintf("Team %q created", team.Name))
	return team, nil
}

func (s *TeamService) update(ctx context.Context, buffer models.TeamFormData, existing *models.Team) (*models.Team, error) {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"organisation_id": existing.OrganisationID,
		"team_id":         *existing.ID,
	})

	// Identity fields are taken from the persisted team, never the buffer.
	payload := models.Team{
		ID:             existing.ID,
		Name:           buffer.Name,
		OrganisationID: existing.OrganisationID,
		ProjectID:      existing.ProjectID,
		Description:    buffer.Description,
		TeamManagerID:  buffer.TeamManagerID,
		Members:        existing.Members,
		CreatedAt:      existing.CreatedAt,
	}

	updated, err := s.teams.Update(ctx, *existing.ID, &payload)
	if err != nil {
		log.Errorf("Team update failed: %v", err)
		return nil, s.fail(ctx, apperrors.AtStep(err, apperrors.StepCoreSave))
	}

	team, err := s.applyAssignment(ctx, updated, existing.ProjectID, buffer.ProjectID)
	s.viewCache.Invalidate(existing.OrganisationID)
	if err != nil {
		s.notifier.Error(ctx, "Team saved, but project assignment failed")
		return team, err
	}

	log.Infof("Team %q updated", team.Name)
	s.notifier.Success(ctx, fmt.Sprintf("Team %q updated", team.Name))
	return team, nil
}

// applyAssignment consults the resolver and issues the single matching
// remote call. It only runs after the core save has been acknowledged. On
// failure the returned team keeps its previous assignment; the cached view
// is never optimistically advanced.
func (s *TeamService) applyAssignment(ctx context.Context, team *models.Team, previous, desired *uuid.UUID) (*models.Team, error) {
	action := assignment.Resolve(previous, desired)
	if !action.RequiresCall() {
		return team, nil
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id": *team.ID,
		"action":  string(action.Kind),
	})

	var err error
	switch action.Kind {
	case assignment.Assign, assignment.Reassign:
		err = s.teams.AssignToProject(ctx, *team.ID, *action.ProjectID)
	case assignment.Unassign:
		err = s.teams.RemoveFromProject(ctx, *team.ID)
	}
	if err != nil {
		log.Errorf("Project assignment failed: %v", err)
		team.ProjectID = previous
		return team, apperrors.AtStep(err, apperrors.StepAssignment)
	}

	team.ProjectID = action.ProjectID
	return team, nil
}

// DeleteTeam removes a team and drops it from every derived view of its
// organisation.
func (s *TeamService) DeleteTeam(ctx context.Context, organisationID, teamID uuid.UUID) error {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"organisation_id": organisationID,
		"team_id":         teamID,
	})

	if err := s.teams.Delete(ctx, teamID); err != nil {
		log.Errorf("Team delete failed: %v", err)
		return s.fail(ctx, apperrors.AtStep(err, apperrors.StepDelete))
	}

	s.viewCache.Invalidate(organisationID)
	log.Info("Team deleted")
	s.notifier.Success(ctx, "Team deleted")
	return nil
}

// ListTeams returns the cached team list of an organisation with resolved
// project names.
func (s *TeamService) ListTeams(ctx context.Context, organisationID uuid.UUID) (*TeamListResponse, error) {
	teams, err := s.viewCache.GetTeams(ctx, organisationID)
	if err != nil {
		return nil, apperrors.AtStep(err, apperrors.StepFetch)
	}

	responses := make([]TeamResponse, len(teams))
	for i, team := range teams {
		name, err := s.viewCache.GetProjectName(ctx, organisationID, team.ProjectID)
		if err != nil {
			return nil, apperrors.AtStep(err, apperrors.StepFetch)
		}
		responses[i] = toTeamResponse(&team, name)
	}

	return &TeamListResponse{Teams: responses, Total: len(responses)}, nil
}

// fail reports a failure outcome: exactly one user-visible notification per
// attempt, and the error itself for the caller to map.
func (s *TeamService) fail(ctx context.Context, err error) error {
	s.notifier.Error(ctx, err.Error())
	return err
}

// begin marks a modal instance as having a mutation in flight. Reports false
// when one already is.
func (s *TeamService) begin(instanceID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.inFlight[instanceID]; ok {
		return false
	}
	s.inFlight[instanceID] = struct{}{}
	return true
}

func (s *TeamService) end(instanceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, instanceID)
}

func toTeamResponse(team *models.Team, projectName string) TeamResponse {
	var id uuid.UUID
	if team.ID != nil {
		id = *team.ID
	}
	return TeamResponse{
		ID:             id,
		Name:           team.Name,
		OrganisationID: team.OrganisationID,
		ProjectID:      team.ProjectID,
		ProjectName:    projectName,
		Description:    team.Description,
		TeamManagerID:  team.TeamManagerID,
		Members:        team.Members,
		MemberCount:    len(team.Members),
		CreatedAt:      team.CreatedAt.Format(time.RFC3339),
	}
}

// Package form owns the transient edit-buffer state of the team modal. One
// controller backs one modal component, shared between "create" and "edit"
// modes. The open/closed state is a tagged variant rather than a pair of
// flags, so "open without a buffer" cannot be represented.
package form

import (
	"context"
	"errors"
	"sync"

	apperrors "organisation-dashboard-backend/internal/errors"
	"organisation-dashboard-backend/internal/models"
	"organisation-dashboard-backend/internal/service"

	"github.com/google/uuid"
)

// Mode is the modal mode the controller was opened in.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// ErrClosed is returned when Submit or buffer access happens on a closed
// controller.
var ErrClosed = errors.New("modal is closed")

// TeamSubmitter is the slice of the orchestrator the controller needs.
type TeamSubmitter interface {
	SubmitTeam(ctx context.Context, instanceID string, buffer models.TeamFormData, mode service.SubmitMode, existing *models.Team) (*models.Team, error)
}

// openState exists only while the modal is open; the buffer lives inside it
// and is discarded with it.
type openState struct {
	mode     Mode
	buffer   models.TeamFormData
	existing *models.Team
}

// Controller drives one modal instance through
// Closed -> Open(mode, buffer) -> Closed.
type Controller struct {
	submitter  TeamSubmitter
	instanceID string

	mu   sync.Mutex
	open *openState
}

// NewController creates a closed controller for one modal component.
func NewController(submitter TeamSubmitter) *Controller {
	return &Controller{
		submitter:  submitter,
		instanceID: uuid.NewString(),
	}
}

// InstanceID identifies this modal instance for the duplicate-submission
// guard.
func (c *Controller) InstanceID() string {
	return c.instanceID
}

// IsOpen reports whether the modal is open.
func (c *Controller) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open != nil
}

// Mode returns the open mode, or "" when closed.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.open == nil {
		return ""
	}
	return c.open.mode
}

// OpenCreate opens the modal with an empty buffer for the organisation.
func (c *Controller) OpenCreate(organisationID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = &openState{
		mode:   ModeCreate,
		buffer: models.TeamFormData{OrganisationID: organisationID},
	}
}

// OpenEdit opens the modal seeded from the team's persisted fields.
func (c *Controller) OpenEdit(team models.Team) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = &openState{
		mode: ModeEdit,
		buffer: models.TeamFormData{
			Name:           team.Name,
			OrganisationID: team.OrganisationID,
			ProjectID:      team.ProjectID,
			Description:    team.Description,
			TeamManagerID:  team.TeamManagerID,
		},
		existing: &team,
	}
}

// Buffer returns a copy of the current buffer.
func (c *Controller) Buffer() (models.TeamFormData, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.open == nil {
		return models.TeamFormData{}, ErrClosed
	}
	return c.open.buffer, nil
}

// SetBuffer replaces the buffer with the user's current edits. A no-op on a
// closed modal.
func (c *Controller) SetBuffer(buffer models.TeamFormData) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.open == nil {
		return
	}
	buffer.OrganisationID = c.open.buffer.OrganisationID
	c.open.buffer = buffer
}

// Cancel closes the modal and discards the buffer unconditionally.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = nil
}

// Close is the same transition as Cancel.
func (c *Controller) Close() {
	c.Cancel()
}

// Submit hands the buffer to the orchestrator. On success the modal closes
// and the buffer is discarded; on failure it stays open with the buffer
// intact so the user can retry. A duplicate submit while one is in flight is
// ignored. A submit racing a Close may complete after the modal closed;
// closing only detaches the UI, so the completion only closes the session it
// was started from and never touches a session opened afterwards.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	session := c.open
	if session == nil {
		c.mu.Unlock()
		return ErrClosed
	}
	state := *session
	c.mu.Unlock()

	mode := service.ModeCreate
	if state.mode == ModeEdit {
		mode = service.ModeEdit
	}

	_, err := c.submitter.SubmitTeam(ctx, c.instanceID, state.buffer, mode, state.existing)
	if errors.Is(err, apperrors.ErrSubmissionInFlight) {
		return nil
	}
	if err != nil {
		return err
	}

	c.mu.Lock()
	if c.open == session {
		c.open = nil
	}
	c.mu.Unlock()
	return nil
}

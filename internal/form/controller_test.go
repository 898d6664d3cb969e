package form_test

import (
	"context"
	"sync"
	"testing"
	"time"

	apperrors "organisation-dashboard-backend/internal/errors"
	"organisation-dashboard-backend/internal/form"
	"organisation-dashboard-backend/internal/models"
	"organisation-dashboard-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	testWaitTimeout  = 2 * time.Second
	testPollInterval = 5 * time.Millisecond
)

// submitCall records one invocation of the orchestrator.
type submitCall struct {
	instanceID string
	buffer     models.TeamFormData
	mode       service.SubmitMode
	existing   *models.Team
}

// stubSubmitter is a scriptable TeamSubmitter.
type stubSubmitter struct {
	mu    sync.Mutex
	calls []submitCall
	err   error
	block chan struct{}
}

func (s *stubSubmitter) SubmitTeam(_ context.Context, instanceID string, buffer models.TeamFormData, mode service.SubmitMode, existing *models.Team) (*models.Team, error) {
	s.mu.Lock()
	s.calls = append(s.calls, submitCall{instanceID: instanceID, buffer: buffer, mode: mode, existing: existing})
	block := s.block
	err := s.err
	s.mu.Unlock()
	if block != nil {
		<-block
	}
	if err != nil {
		return nil, err
	}
	id := uuid.New()
	return &models.Team{ID: &id, Name: buffer.Name, OrganisationID: buffer.OrganisationID}, nil
}

func (s *stubSubmitter) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func (s *stubSubmitter) lastCall() submitCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[len(s.calls)-1]
}

// ControllerTestSuite defines the test suite for the modal controller
type ControllerTestSuite struct {
	suite.Suite
	submitter  *stubSubmitter
	controller *form.Controller
}

// SetupTest sets up the test suite
func (suite *ControllerTestSuite) SetupTest() {
	suite.submitter = &stubSubmitter{}
	suite.controller = form.NewController(suite.submitter)
}

func (suite *ControllerTestSuite) TestStartsClosed() {
	assert.False(suite.T(), suite.controller.IsOpen())
	assert.Equal(suite.T(), form.Mode(""), suite.controller.Mode())

	_, err := suite.controller.Buffer()
	assert.ErrorIs(suite.T(), err, form.ErrClosed)
	assert.ErrorIs(suite.T(), suite.controller.Submit(context.Background()), form.ErrClosed)
	assert.Zero(suite.T(), suite.submitter.callCount())
}

func (suite *ControllerTestSuite) TestOpenCreateSeedsEmptyBuffer() {
	organisationID := uuid.New()
	suite.controller.OpenCreate(organisationID)

	assert.True(suite.T(), suite.controller.IsOpen())
	assert.Equal(suite.T(), form.ModeCreate, suite.controller.Mode())

	buffer, err := suite.controller.Buffer()
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), buffer.Name)
	assert.Equal(suite.T(), organisationID, buffer.OrganisationID)
	assert.Nil(suite.T(), buffer.ProjectID)
}

func (suite *ControllerTestSuite) TestOpenEditSeedsBufferFromTeam() {
	teamID := uuid.New()
	projectID := uuid.New()
	team := models.Team{
		ID:             &teamID,
		Name:           "Backend",
		OrganisationID: uuid.New(),
		ProjectID:      &projectID,
		Description:    "owns the api",
	}
	suite.controller.OpenEdit(team)

	assert.Equal(suite.T(), form.ModeEdit, suite.controller.Mode())
	buffer, err := suite.controller.Buffer()
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Backend", buffer.Name)
	assert.Equal(suite.T(), team.OrganisationID, buffer.OrganisationID)
	require.NotNil(suite.T(), buffer.ProjectID)
	assert.Equal(suite.T(), projectID, *buffer.ProjectID)
	assert.Equal(suite.T(), "owns the api", buffer.Description)
}

func (suite *ControllerTestSuite) TestCancelDiscardsBuffer() {
	organisationID := uuid.New()
	suite.controller.OpenCreate(organisationID)
	suite.controller.SetBuffer(models.TeamFormData{Name: "Backend"})

	suite.controller.Cancel()
	assert.False(suite.T(), suite.controller.IsOpen())
	assert.Zero(suite.T(), suite.submitter.callCount())

	// Reopening starts from a fresh buffer, not the discarded edits.
	suite.controller.OpenCreate(organisationID)
	buffer, err := suite.controller.Buffer()
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), buffer.Name)
}

func (suite *ControllerTestSuite) TestSetBufferPreservesOrganisation() {
	organisationID := uuid.New()
	suite.controller.OpenCreate(organisationID)

	suite.controller.SetBuffer(models.TeamFormData{Name: "Backend", OrganisationID: uuid.New()})

	buffer, err := suite.controller.Buffer()
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), organisationID, buffer.OrganisationID)
}

func (suite *ControllerTestSuite) TestSubmitSuccessClosesModal() {
	suite.controller.OpenCreate(uuid.New())
	suite.controller.SetBuffer(models.TeamFormData{Name: "Backend"})

	require.NoError(suite.T(), suite.controller.Submit(context.Background()))
	assert.False(suite.T(), suite.controller.IsOpen())

	call := suite.submitter.lastCall()
	assert.Equal(suite.T(), suite.controller.InstanceID(), call.instanceID)
	assert.Equal(suite.T(), service.ModeCreate, call.mode)
	assert.Equal(suite.T(), "Backend", call.buffer.Name)
	assert.Nil(suite.T(), call.existing)
}

func (suite *ControllerTestSuite) TestSubmitEditPassesExistingTeam() {
	teamID := uuid.New()
	team := models.Team{ID: &teamID, Name: "Backend", OrganisationID: uuid.New()}
	suite.controller.OpenEdit(team)

	require.NoError(suite.T(), suite.controller.Submit(context.Background()))

	call := suite.submitter.lastCall()
	assert.Equal(suite.T(), service.ModeEdit, call.mode)
	require.NotNil(suite.T(), call.existing)
	assert.Equal(suite.T(), teamID, *call.existing.ID)
}

func (suite *ControllerTestSuite) TestSubmitFailureKeepsModalOpen() {
	suite.controller.OpenCreate(uuid.New())
	suite.controller.SetBuffer(models.TeamFormData{Name: "Backend"})
	suite.submitter.err = apperrors.NewRemoteError(500, "store unavailable")

	err := suite.controller.Submit(context.Background())
	require.Error(suite.T(), err)
	assert.True(suite.T(), suite.controller.IsOpen())

	// The buffer survives for a retry.
	buffer, bufErr := suite.controller.Buffer()
	require.NoError(suite.T(), bufErr)
	assert.Equal(suite.T(), "Backend", buffer.Name)
}

func (suite *ControllerTestSuite) TestSubmitWhileInFlightIsSilentlyIgnored() {
	suite.controller.OpenCreate(uuid.New())
	suite.controller.SetBuffer(models.TeamFormData{Name: "Backend"})
	suite.submitter.err = apperrors.ErrSubmissionInFlight

	// The double-click path: no error leaks to the UI, the modal stays open
	// waiting for the first submission to finish.
	require.NoError(suite.T(), suite.controller.Submit(context.Background()))
	assert.True(suite.T(), suite.controller.IsOpen())
}

func (suite *ControllerTestSuite) TestCloseDuringInFlightSubmitDoesNotCancelIt() {
	suite.controller.OpenCreate(uuid.New())
	suite.controller.SetBuffer(models.TeamFormData{Name: "Backend"})

	suite.submitter.block = make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- suite.controller.Submit(context.Background())
	}()

	// Wait for the submit to reach the orchestrator, then close the modal.
	require.Eventually(suite.T(), func() bool {
		return suite.submitter.callCount() == 1
	}, testWaitTimeout, testPollInterval)
	suite.controller.Close()
	assert.False(suite.T(), suite.controller.IsOpen())

	// The mutation still runs to completion.
	close(suite.submitter.block)
	require.NoError(suite.T(), <-done)
	assert.False(suite.T(), suite.controller.IsOpen())
}

func (suite *ControllerTestSuite) TestStaleCompletionLeavesReopenedModalUntouched() {
	organisationID := uuid.New()
	suite.controller.OpenCreate(organisationID)
	suite.controller.SetBuffer(models.TeamFormData{Name: "First"})

	suite.submitter.block = make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- suite.controller.Submit(context.Background())
	}()

	require.Eventually(suite.T(), func() bool {
		return suite.submitter.callCount() == 1
	}, testWaitTimeout, testPollInterval)

	// The user closes the modal and opens a fresh one while the first
	// submission is still in flight.
	suite.controller.Close()
	suite.controller.OpenCreate(organisationID)
	suite.controller.SetBuffer(models.TeamFormData{Name: "Second"})

	close(suite.submitter.block)
	require.NoError(suite.T(), <-done)

	// The stale completion closes only the session it came from; the new
	// session and its buffer survive.
	assert.True(suite.T(), suite.controller.IsOpen())
	buffer, err := suite.controller.Buffer()
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Second", buffer.Name)
}

func TestControllerTestSuite(t *testing.T) {
	suite.Run(t, new(ControllerTestSuite))
}

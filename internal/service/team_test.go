package service_test

import (
	"context"
	"testing"
	"time"

	"organisation-dashboard-backend/internal/cache"
	apperrors "organisation-dashboard-backend/internal/errors"
	"organisation-dashboard-backend/internal/mocks"
	"organisation-dashboard-backend/internal/models"
	"organisation-dashboard-backend/internal/notify"
	"organisation-dashboard-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamServiceTestSuite defines the test suite for the team orchestrator
type TeamServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockTeamGW     *mocks.MockTeamGateway
	mockProjectGW  *mocks.MockProjectGateway
	viewCache      *cache.ViewCache
	notifier       *notify.Recorder
	teamService    *service.TeamService
	organisationID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeamGW = mocks.NewMockTeamGateway(suite.ctrl)
	suite.mockProjectGW = mocks.NewMockProjectGateway(suite.ctrl)
	suite.viewCache = cache.NewViewCache(suite.mockTeamGW, suite.mockProjectGW)
	suite.notifier = notify.NewRecorder()
	suite.teamService = service.NewTeamService(suite.mockTeamGW, suite.viewCache, suite.notifier, validator.New())
	suite.organisationID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamServiceTestSuite) TestSubmitTeam_EmptyNameFailsLocally() {
	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := suite.teamService.SubmitTeam(context.Background(), "modal-1", models.TeamFormData{
			Name:           name,
			OrganisationID: suite.organisationID,
		}, service.ModeCreate, nil)

		require.Error(suite.T(), err)
		assert.True(suite.T(), apperrors.IsValidation(err))
	}
	// No gateway expectations were registered: any network call would fail
	// the controller. One notification per attempt.
	assert.Len(suite.T(), suite.notifier.Errors(), 3)
}

func (suite *TeamServiceTestSuite) TestSubmitTeam_CreateWithAssignment() {
	projectID := uuid.New()
	teamID := uuid.New()
	createdAt := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)

	suite.mockTeamGW.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, team *models.Team) (*models.Team, error) {
			created := *team
			created.ID = &teamID
			created.CreatedAt = createdAt
			return &created, nil
		})
	suite.mockTeamGW.EXPECT().AssignToProject(gomock.Any(), teamID, projectID).Return(nil)

	team, err := suite.teamService.SubmitTeam(context.Background(), "modal-1", models.TeamFormData{
		Name:           "Backend",
		OrganisationID: suite.organisationID,
		ProjectID:      &projectID,
	}, service.ModeCreate, nil)

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), team.ID)
	assert.Equal(suite.T(), teamID, *team.ID)
	require.NotNil(suite.T(), team.ProjectID)
	assert.Equal(suite.T(), projectID, *team.ProjectID)
	assert.Len(suite.T(), suite.notifier.Successes(), 1)
	assert.Empty(suite.T(), suite.notifier.Errors())

	// Reading back through the cache includes the new team with its project.
	suite.mockTeamGW.EXPECT().List(gomock.Any(), suite.organisationID).Return([]models.Team{
		{ID: &teamID, Name: "Backend", OrganisationID: suite.organisationID, ProjectID: &projectID, CreatedAt: createdAt},
	}, nil)
	suite.mockProjectGW.EXPECT().GetByID(gomock.Any(), projectID).Return(&models.Project{
		ID: projectID, Name: "Atlas", OrganisationID: suite.organisationID,
	}, nil)

	list, err := suite.teamService.ListTeams(context.Background(), suite.organisationID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), list.Teams, 1)
	assert.Equal(suite.T(), teamID, list.Teams[0].ID)
	assert.Equal(suite.T(), "Atlas", list.Teams[0].ProjectName)
}

func (suite *TeamServiceTestSuite) TestSubmitTeam_CreateWithoutProjectSkipsAssignment() {
	teamID := uuid.New()

	suite.mockTeamGW.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, team *models.Team) (*models.Team, error) {
			created := *team
			created.ID = &teamID
			return &created, nil
		})

	team, err := suite.teamService.SubmitTeam(context.Background(), "modal-1", models.TeamFormData{
		Name:           "Backend",
		OrganisationID: suite.organisationID,
	}, service.ModeCreate, nil)

	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), team.ProjectID)
}

func (suite *TeamServiceTestSuite) TestSubmitTeam_CreateSucceedsAssignmentFails() {
	projectID := uuid.New()
	teamID := uuid.New()

	suite.mockTeamGW.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, team *models.Team) (*models.Team, error) {
			created := *team
			created.ID = &teamID
			return &created, nil
		})
	suite.mockTeamGW.EXPECT().
		AssignToProject(gomock.Any(), teamID, projectID).
		Return(apperrors.NewRemoteError(500, "assignment rejected"))

	team, err := suite.teamService.SubmitTeam(context.Background(), "modal-1", models.TeamFormData{
		Name:           "Backend",
		OrganisationID: suite.organisationID,
		ProjectID:      &projectID,
	}, service.ModeCreate, nil)

	// The team exists remotely but unassigned; the outcome says so
	// distinctly instead of pretending overall success or rolling back.
	require.Error(suite.T(), err)
	assert.Equal(suite.T(), apperrors.StepAssignment, apperrors.StepOf(err))
	require.NotNil(suite.T(), team)
	assert.Equal(suite.T(), teamID, *team.ID)
	assert.Nil(suite.T(), team.ProjectID)
	assert.Len(suite.T(), suite.notifier.Errors(), 1)
	assert.Empty(suite.T(), suite.notifier.Successes())
}

func (suite *TeamServiceTestSuite) TestSubmitTeam_EditPreservesIdentityFields() {
	teamID := uuid.New()
	memberID := uuid.New()
	createdAt := time.Date(2025, 11, 20, 8, 0, 0, 0, time.UTC)
	existing := &models.Team{
		ID:             &teamID,
		Name:           "Backend",
		OrganisationID: suite.organisationID,
		Members:        []uuid.UUID{memberID},
		CreatedAt:      createdAt,
	}

	suite.mockTeamGW.EXPECT().
		Update(gomock.Any(), teamID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, payload *models.Team) (*models.Team, error) {
			// The buffer cannot override identity fields.
			assert.Equal(suite.T(), teamID, *payload.ID)
			assert.Equal(suite.T(), suite.organisationID, payload.OrganisationID)
			assert.Equal(suite.T(), createdAt, payload.CreatedAt)
			assert.Equal(suite.T(), []uuid.UUID{memberID}, payload.Members)
			updated := *payload
			return &updated, nil
		})

	team, err := suite.teamService.SubmitTeam(context.Background(), "modal-2", models.TeamFormData{
		Name:           "Platform",
		OrganisationID: uuid.New(), // ignored in favour of the persisted team
		Description:    "renamed",
	}, service.ModeEdit, existing)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Platform", team.Name)
	assert.Equal(suite.T(), createdAt, team.CreatedAt)
	assert.Equal(suite.T(), []uuid.UUID{memberID}, team.Members)
}

func (suite *TeamServiceTestSuite) TestSubmitTeam_EditUnassignsExactlyOnce() {
	teamID := uuid.New()
	projectID := uuid.New()
	existing := &models.Team{
		ID:             &teamID,
		Name:           "Backend",
		OrganisationID: suite.organisationID,
		ProjectID:      &projectID,
	}

	suite.mockTeamGW.EXPECT().
		Update(gomock.Any(), teamID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, payload *models.Team) (*models.Team, error) {
			updated := *payload
			return &updated, nil
		})
	suite.mockTeamGW.EXPECT().RemoveFromProject(gomock.Any(), teamID).Return(nil).Times(1)
	// AssignToProject must never be called on an unassign.

	team, err := suite.teamService.SubmitTeam(context.Background(), "modal-2", models.TeamFormData{
		Name:           "Backend",
		OrganisationID: suite.organisationID,
		ProjectID:      nil,
	}, service.ModeEdit, existing)

	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), team.ProjectID)
}

func (suite *TeamServiceTestSuite) TestSubmitTeam_EditSameProjectMakesNoAssignmentCall() {
	teamID := uuid.New()
	projectID := uuid.New()
	existing := &models.Team{
		ID:             &teamID,
		Name:           "Backend",
		OrganisationID: suite.organisationID,
		ProjectID:      &projectID,
	}

	suite.mockTeamGW.EXPECT().
		Update(gomock.Any(), teamID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, payload *models.Team) (*models.Team, error) {
			updated := *payload
			return &updated, nil
		})

	sameProject := projectID
	team, err := suite.teamService.SubmitTeam(context.Background(), "modal-2", models.TeamFormData{
		Name:           "Backend",
		OrganisationID: suite.organisationID,
		ProjectID:      &sameProject,
	}, service.ModeEdit, existing)

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), team.ProjectID)
	assert.Equal(suite.T(), projectID, *team.ProjectID)
}

func (suite *TeamServiceTestSuite) TestSubmitTeam_UpdateSucceedsAssignmentFailsKeepsPreviousProject() {
	teamID := uuid.New()
	previousProject := uuid.New()
	desiredProject := uuid.New()
	existing := &models.Team{
		ID:             &teamID,
		Name:           "Backend",
		OrganisationID: suite.organisationID,
		ProjectID:      &previousProject,
	}

	suite.mockTeamGW.EXPECT().
		Update(gomock.Any(), teamID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, payload *models.Team) (*models.Team, error) {
			updated := *payload
			return &updated, nil
		})
	suite.mockTeamGW.EXPECT().
		AssignToProject(gomock.Any(), teamID, desiredProject).
		Return(apperrors.NewRemoteError(502, "assignment rejected"))

	team, err := suite.teamService.SubmitTeam(context.Background(), "modal-2", models.TeamFormData{
		Name:           "Backend",
		OrganisationID: suite.organisationID,
		ProjectID:      &desiredProject,
	}, service.ModeEdit, existing)

	require.Error(suite.T(), err)
	assert.Equal(suite.T(), apperrors.StepAssignment, apperrors.StepOf(err))
	// Not optimistically advanced to the desired project.
	require.NotNil(suite.T(), team.ProjectID)
	assert.Equal(suite.T(), previousProject, *team.ProjectID)

	// The cache rereads remote state rather than trusting the buffer.
	suite.mockTeamGW.EXPECT().List(gomock.Any(), suite.organisationID).Return([]models.Team{
		{ID: &teamID, Name: "Backend", OrganisationID: suite.organisationID, ProjectID: &previousProject},
	}, nil)
	suite.mockProjectGW.EXPECT().GetByID(gomock.Any(), previousProject).Return(&models.Project{
		ID: previousProject, Name: "Atlas", OrganisationID: suite.organisationID,
	}, nil)

	list, listErr := suite.teamService.ListTeams(context.Background(), suite.organisationID)
	require.NoError(suite.T(), listErr)
	require.Len(suite.T(), list.Teams, 1)
	require.NotNil(suite.T(), list.Teams[0].ProjectID)
	assert.Equal(suite.T(), previousProject, *list.Teams[0].ProjectID)
}

func (suite *TeamServiceTestSuite) TestSubmitTeam_CoreSaveFailureReportsStep() {
	suite.mockTeamGW.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewRemoteError(500, "store unavailable"))

	team, err := suite.teamService.SubmitTeam(context.Background(), "modal-1", models.TeamFormData{
		Name:           "Backend",
		OrganisationID: suite.organisationID,
	}, service.ModeCreate, nil)

	assert.Nil(suite.T(), team)
	require.Error(suite.T(), err)
	assert.Equal(suite.T(), apperrors.StepCoreSave, apperrors.StepOf(err))
	assert.Len(suite.T(), suite.notifier.Errors(), 1)
}

func (suite *TeamServiceTestSuite) TestSubmitTeam_DuplicateSubmitIsIgnored() {
	started := make(chan struct{})
	release := make(chan struct{})
	teamID := uuid.New()

	suite.mockTeamGW.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, team *models.Team) (*models.Team, error) {
			close(started)
			<-release
			created := *team
			created.ID = &teamID
			return &created, nil
		}).
		Times(1)

	buffer := models.TeamFormData{Name: "Backend", OrganisationID: suite.organisationID}

	firstDone := make(chan error, 1)
	go func() {
		_, err := suite.teamService.SubmitTeam(context.Background(), "modal-1", buffer, service.ModeCreate, nil)
		firstDone <- err
	}()

	<-started

	// Second submit for the same modal instance while the first is still in
	// flight: ignored, no second core-save call (Times(1) above enforces it).
	_, err := suite.teamService.SubmitTeam(context.Background(), "modal-1", buffer, service.ModeCreate, nil)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSubmissionInFlight)

	close(release)
	require.NoError(suite.T(), <-firstDone)

	// A different modal instance is not serialized against the first.
	assert.Len(suite.T(), suite.notifier.Successes(), 1)
}

func (suite *TeamServiceTestSuite) TestUpdateTeam_DuplicateSubmitMakesNoRemoteCalls() {
	teamID := uuid.New()
	started := make(chan struct{})
	release := make(chan struct{})

	// The fetch is guarded too: exactly one GetByID for the whole burst.
	suite.mockTeamGW.EXPECT().
		GetByID(gomock.Any(), teamID).
		Return(&models.Team{ID: &teamID, Name: "Backend", OrganisationID: suite.organisationID}, nil).
		Times(1)
	suite.mockTeamGW.EXPECT().
		Update(gomock.Any(), teamID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, payload *models.Team) (*models.Team, error) {
			close(started)
			<-release
			updated := *payload
			return &updated, nil
		}).
		Times(1)

	buffer := models.TeamFormData{Name: "Backend", OrganisationID: suite.organisationID}

	firstDone := make(chan error, 1)
	go func() {
		_, err := suite.teamService.UpdateTeam(context.Background(), "modal-2", teamID, buffer)
		firstDone <- err
	}()

	<-started

	_, err := suite.teamService.UpdateTeam(context.Background(), "modal-2", teamID, buffer)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSubmissionInFlight)

	close(release)
	require.NoError(suite.T(), <-firstDone)
}

func (suite *TeamServiceTestSuite) TestDeleteTeam_RemovesTeamFromViews() {
	teamID := uuid.New()

	suite.mockTeamGW.EXPECT().Delete(gomock.Any(), teamID).Return(nil)

	err := suite.teamService.DeleteTeam(context.Background(), suite.organisationID, teamID)
	require.NoError(suite.T(), err)

	suite.mockTeamGW.EXPECT().List(gomock.Any(), suite.organisationID).Return([]models.Team{}, nil)

	list, err := suite.teamService.ListTeams(context.Background(), suite.organisationID)
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), list.Teams)
}

func (suite *TeamServiceTestSuite) TestDeleteTeam_RemoteFailure() {
	teamID := uuid.New()

	suite.mockTeamGW.EXPECT().
		Delete(gomock.Any(), teamID).
		Return(apperrors.NewRemoteError(500, "store unavailable"))

	err := suite.teamService.DeleteTeam(context.Background(), suite.organisationID, teamID)
	require.Error(suite.T(), err)
	assert.Equal(suite.T(), apperrors.StepDelete, apperrors.StepOf(err))
	assert.Len(suite.T(), suite.notifier.Errors(), 1)
}

func (suite *TeamServiceTestSuite) TestUpdateTeam_FetchesPreviousState() {
	teamID := uuid.New()
	previousProject := uuid.New()

	suite.mockTeamGW.EXPECT().GetByID(gomock.Any(), teamID).Return(&models.Team{
		ID:             &teamID,
		Name:           "Backend",
		OrganisationID: suite.organisationID,
		ProjectID:      &previousProject,
	}, nil)
	suite.mockTeamGW.EXPECT().
		Update(gomock.Any(), teamID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, payload *models.Team) (*models.Team, error) {
			updated := *payload
			return &updated, nil
		})
	suite.mockTeamGW.EXPECT().RemoveFromProject(gomock.Any(), teamID).Return(nil)

	team, err := suite.teamService.UpdateTeam(context.Background(), "modal-3", teamID, models.TeamFormData{
		Name:           "Backend",
		OrganisationID: suite.organisationID,
	})

	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), team.ProjectID)
}

func (suite *TeamServiceTestSuite) TestUpdateTeam_MissingTeam() {
	teamID := uuid.New()

	suite.mockTeamGW.EXPECT().GetByID(gomock.Any(), teamID).Return(nil, apperrors.ErrTeamNotFound)

	team, err := suite.teamService.UpdateTeam(context.Background(), "modal-3", teamID, models.TeamFormData{
		Name:           "Backend",
		OrganisationID: suite.organisationID,
	})

	assert.Nil(suite.T(), team)
	require.Error(suite.T(), err)
	assert.Equal(suite.T(), apperrors.StepFetch, apperrors.StepOf(err))
	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamNotFound)
}

func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}

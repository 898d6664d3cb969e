package handlers_test

import (
	"net/http"
	"testing"

	"organisation-dashboard-backend/internal/api/handlers"
	apperrors "organisation-dashboard-backend/internal/errors"
	"organisation-dashboard-backend/internal/mocks"
	"organisation-dashboard-backend/internal/models"
	"organisation-dashboard-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// OrganisationHandlerTestSuite defines the test suite for the organisation HTTP handler
type OrganisationHandlerTestSuite struct {
	suite.Suite
	*testutils.HTTPTestSuite
	ctrl                    *gomock.Controller
	mockOrganisationService *mocks.MockOrganisationServiceInterface
}

// SetupTest sets up the test suite
func (suite *OrganisationHandlerTestSuite) SetupTest() {
	suite.HTTPTestSuite = testutils.SetupHTTPTest()
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrganisationService = mocks.NewMockOrganisationServiceInterface(suite.ctrl)

	handler := handlers.NewOrganisationHandler(suite.mockOrganisationService)
	suite.Router.GET("/organisations/:orgId", handler.GetOrganisation)
}

// TearDownTest cleans up after each test
func (suite *OrganisationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OrganisationHandlerTestSuite) TestGetOrganisation_Success() {
	organisationID := uuid.New()

	suite.mockOrganisationService.EXPECT().
		Get(gomock.Any(), organisationID).
		Return(&models.Organisation{ID: organisationID, Name: "Acme"}, nil)

	recorder := suite.MakeRequest(http.MethodGet, "/organisations/"+organisationID.String(), nil)

	var organisation models.Organisation
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &organisation)
	assert.Equal(suite.T(), organisationID, organisation.ID)
	assert.Equal(suite.T(), "Acme", organisation.Name)
}

func (suite *OrganisationHandlerTestSuite) TestGetOrganisation_InvalidID() {
	recorder := suite.MakeRequest(http.MethodGet, "/organisations/not-a-uuid", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid organisation ID")
}

func (suite *OrganisationHandlerTestSuite) TestGetOrganisation_NotFound() {
	organisationID := uuid.New()

	suite.mockOrganisationService.EXPECT().
		Get(gomock.Any(), organisationID).
		Return(nil, apperrors.AtStep(apperrors.ErrOrganisationNotFound, apperrors.StepFetch))

	recorder := suite.MakeRequest(http.MethodGet, "/organisations/"+organisationID.String(), nil)
	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

func TestOrganisationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrganisationHandlerTestSuite))
}

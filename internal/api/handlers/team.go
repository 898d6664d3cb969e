package handlers

import (
	"errors"
	"net/http"

	apperrors "organisation-dashboard-backend/internal/errors"
	"organisation-dashboard-backend/internal/models"
	"organisation-dashboard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// modalInstanceID keys the duplicate-submission guard. The dashboard sends
// its modal instance id; without one, the natural key of the submit is used
// so a double-click is still caught.
func modalInstanceID(c *gin.Context, fallback string) string {
	if instanceID := c.GetHeader("X-Modal-Instance"); instanceID != "" {
		return instanceID
	}
	return fallback
}

// CreateTeam handles POST /organisations/:orgId/teams
// @Summary Create a team
// @Description Create a team and optionally assign it to a project in one submit
// @Tags teams
// @Accept json
// @Produce json
// @Router /organisations/{orgId}/teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	organisationID, err := uuid.Parse(c.Param("orgId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organisation ID"})
		return
	}

	var buffer models.TeamFormData
	if err := c.ShouldBindJSON(&buffer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	buffer.OrganisationID = organisationID

	instanceID := modalInstanceID(c, "create:"+organisationID.String())
	team, err := h.teamService.CreateTeam(c.Request.Context(), instanceID, buffer)
	if err != nil {
		respondMutationError(c, team, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// UpdateTeam handles PUT /teams/:id
// @Summary Update a team
// @Description Update a team's editable fields and synchronize its project assignment
// @Tags teams
// @Accept json
// @Produce json
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	var buffer models.TeamFormData
	if err := c.ShouldBindJSON(&buffer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	instanceID := modalInstanceID(c, "edit:"+teamID.String())
	team, err := h.teamService.UpdateTeam(c.Request.Context(), instanceID, teamID, buffer)
	if err != nil {
		respondMutationError(c, team, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// DeleteTeam handles DELETE /teams/:id (requires organisation_id parameter)
// @Summary Delete a team
// @Tags teams
// @Produce json
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	organisationIDStr := c.Query("organisation_id")
	if organisationIDStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "organisation_id parameter is required"})
		return
	}
	organisationID, err := uuid.Parse(organisationIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organisation ID"})
		return
	}

	if err := h.teamService.DeleteTeam(c.Request.Context(), organisationID, teamID); err != nil {
		respondMutationError(c, nil, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ListTeams handles GET /organisations/:orgId/teams
// @Summary List an organisation's teams
// @Description Returns the cached team list with resolved project names
// @Tags teams
// @Produce json
// @Router /organisations/{orgId}/teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	organisationID, err := uuid.Parse(c.Param("orgId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organisation ID"})
		return
	}

	teams, err := h.teamService.ListTeams(c.Request.Context(), organisationID)
	if err != nil {
		respondMutationError(c, nil, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// respondMutationError maps a mutation outcome to an HTTP response. A
// partial failure (core save succeeded, assignment failed) carries the saved
// team in the body so the caller can see what state was reached.
func respondMutationError(c *gin.Context, team *models.Team, err error) {
	if errors.Is(err, apperrors.ErrSubmissionInFlight) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	if apperrors.IsValidation(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var remoteErr *apperrors.RemoteError
	if errors.As(err, &remoteErr) {
		body := gin.H{
			"error": err.Error(),
			"step":  string(remoteErr.Step),
		}
		if team != nil {
			body["team"] = team
		}
		if remoteErr.StatusCode == http.StatusNotFound {
			c.JSON(http.StatusNotFound, body)
			return
		}
		c.JSON(http.StatusBadGateway, body)
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

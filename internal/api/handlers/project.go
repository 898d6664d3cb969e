package handlers

import (
	"net/http"

	"organisation-dashboard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProjectHandler handles HTTP requests for project reads
type ProjectHandler struct {
	projectService service.ProjectServiceInterface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService service.ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// ListProjects handles GET /organisations/:orgId/projects
// @Summary List an organisation's projects
// @Description Backs the project picker shown while a team modal is open
// @Tags projects
// @Produce json
// @Router /organisations/{orgId}/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	organisationID, err := uuid.Parse(c.Param("orgId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organisation ID"})
		return
	}

	projects, err := h.projectService.List(c.Request.Context(), organisationID)
	if err != nil {
		respondMutationError(c, nil, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects, "total": len(projects)})
}

// GetProjectName handles GET /organisations/:orgId/projects/:projectId/name
// @Summary Resolve a project id to its display name
// @Tags projects
// @Produce json
// @Router /organisations/{orgId}/projects/{projectId}/name [get]
func (h *ProjectHandler) GetProjectName(c *gin.Context) {
	organisationID, err := uuid.Parse(c.Param("orgId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organisation ID"})
		return
	}

	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	name, err := h.projectService.ProjectName(c.Request.Context(), organisationID, &projectID)
	if err != nil {
		respondMutationError(c, nil, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"name": name})
}

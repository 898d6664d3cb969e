package handlers

import (
	"net/http"

	"organisation-dashboard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrganisationHandler handles HTTP requests for organisation reads
type OrganisationHandler struct {
	organisationService service.OrganisationServiceInterface
}

// NewOrganisationHandler creates a new organisation handler
func NewOrganisationHandler(organisationService service.OrganisationServiceInterface) *OrganisationHandler {
	return &OrganisationHandler{
		organisationService: organisationService,
	}
}

// GetOrganisation handles GET /organisations/:orgId
// @Summary Get an organisation
// @Description Backs the organisation header above the team list
// @Tags organisations
// @Produce json
// @Router /organisations/{orgId} [get]
func (h *OrganisationHandler) GetOrganisation(c *gin.Context) {
	organisationID, err := uuid.Parse(c.Param("orgId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organisation ID"})
		return
	}

	organisation, err := h.organisationService.Get(c.Request.Context(), organisationID)
	if err != nil {
		respondMutationError(c, nil, err)
		return
	}

	c.JSON(http.StatusOK, organisation)
}

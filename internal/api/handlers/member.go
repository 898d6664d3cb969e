package handlers

import (
	"net/http"

	"organisation-dashboard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MemberHandler handles HTTP requests for member reads
type MemberHandler struct {
	memberService service.MemberServiceInterface
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService service.MemberServiceInterface) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// ListMembers handles GET /organisations/:orgId/members
// @Summary List an organisation's members
// @Description Backs the team manager picker in the team modal
// @Tags members
// @Produce json
// @Router /organisations/{orgId}/members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	organisationID, err := uuid.Parse(c.Param("orgId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organisation ID"})
		return
	}

	members, err := h.memberService.List(c.Request.Context(), organisationID)
	if err != nil {
		respondMutationError(c, nil, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"members": members, "total": len(members)})
}

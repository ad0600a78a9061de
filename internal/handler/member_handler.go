package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clubpulse/service-membership/internal/application"
	"github.com/clubpulse/service-membership/pkg/auth"
	"github.com/clubpulse/service-membership/pkg/middleware"
	"github.com/clubpulse/service-membership/pkg/response"
)

// MemberHandler handles HTTP requests for member lookup and renewal.
type MemberHandler struct {
	lookup    *application.MemberLookupService
	lifecycle *application.MembershipService
}

// NewMemberHandler creates a new MemberHandler.
func NewMemberHandler(lookup *application.MemberLookupService, lifecycle *application.MembershipService) *MemberHandler {
	return &MemberHandler{lookup: lookup, lifecycle: lifecycle}
}

// RegisterRoutes registers all member routes.
func (h *MemberHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	authMW := middleware.AuthMiddleware(jwtManager)

	members := r.Group("/members")
	{
		members.GET("/:id", h.GetMember)
		members.GET("/:id/status", h.GetStatus)
		members.POST("/:id/renew", authMW, h.Renew)
	}
}

// GetMember handles GET /api/v1/members/:id.
func (h *MemberHandler) GetMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid member id")
		return
	}

	result, err := h.lookup.GetMember(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetStatus handles GET /api/v1/members/:id/status.
func (h *MemberHandler) GetStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid member id")
		return
	}

	active, err := h.lookup.IsActive(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"member_id": id, "is_active": active})
}

// Renew handles POST /api/v1/members/:id/renew.
func (h *MemberHandler) Renew(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid member id")
		return
	}

	var req application.RenewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	renewed, err := h.lifecycle.Renew(c.Request.Context(), id, req.Amount, req.DurationDays)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !renewed {
		c.JSON(http.StatusPaymentRequired, gin.H{"success": false, "error": "payment declined"})
		return
	}

	response.Success(c, gin.H{"member_id": id, "renewed": true})
}

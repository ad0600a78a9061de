package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/clubpulse/service-membership/internal/application"
	"github.com/clubpulse/service-membership/pkg/auth"
	"github.com/clubpulse/service-membership/pkg/middleware"
	"github.com/clubpulse/service-membership/pkg/response"
)

// AdminMemberHandler exposes operational endpoints for back-office staff.
type AdminMemberHandler struct {
	lifecycle *application.MembershipService
	lookup    *application.MemberLookupService
}

// NewAdminMemberHandler creates a new AdminMemberHandler.
func NewAdminMemberHandler(lifecycle *application.MembershipService, lookup *application.MemberLookupService) *AdminMemberHandler {
	return &AdminMemberHandler{lifecycle: lifecycle, lookup: lookup}
}

// RegisterRoutes registers all admin routes.
func (h *AdminMemberHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	admin := r.Group("/admin", middleware.AuthMiddleware(jwtManager), middleware.RequireRole("admin"))
	{
		admin.GET("/members", h.ListMembers)
		admin.POST("/members/deactivate-expired", h.DeactivateExpired)
	}
}

// ListMembers handles GET /api/v1/admin/members.
func (h *AdminMemberHandler) ListMembers(c *gin.Context) {
	members, err := h.lookup.ListMembers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, members)
}

// DeactivateExpired handles POST /api/v1/admin/members/deactivate-expired.
// It runs the sweep immediately instead of waiting for the next scheduled
// pass.
func (h *AdminMemberHandler) DeactivateExpired(c *gin.Context) {
	if err := h.lifecycle.DeactivateExpired(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"status": "completed"})
}

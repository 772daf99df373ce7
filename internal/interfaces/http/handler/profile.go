package handler

import (
	"github.com/gin-gonic/gin"
	identityapp "github.com/myvegiz/backend/internal/application/identity"
	"github.com/myvegiz/backend/internal/domain/shared"
	"github.com/myvegiz/backend/internal/interfaces/http/middleware"
)

// ProfileHandler handles the authenticated user's own profile
type ProfileHandler struct {
	BaseHandler
	profileService *identityapp.ProfileService
	authMW         *middleware.AuthMiddleware
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService *identityapp.ProfileService, authMW *middleware.AuthMiddleware) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, authMW: authMW}
}

// RegisterRoutes registers profile routes
func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	profile := rg.Group("/profile", h.authMW.RequireAuth())
	{
		profile.GET("", h.Get)
		profile.PATCH("", h.Update)
		profile.POST("/change-password", h.ChangePassword)
	}
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// Get returns the caller's profile
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	user, err := h.profileService.Get(c.Request.Context(), userID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "Profile details", user)
}

// Update patches the caller's name, contact number and profile image
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req identityapp.UpdateProfileRequest
	if name, present := c.GetPostForm("name"); present {
		req.Name = shared.Patch(name)
	}
	if contact, present := c.GetPostForm("contact"); present {
		req.Contact = shared.Patch(contact)
	}

	image, err := formImage(c, "profile_image")
	if err != nil {
		h.Error(c, err)
		return
	}
	req.Image = image

	user, err := h.profileService.Update(c.Request.Context(), userID, req)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "Profile updated", user)
}

// ChangePassword verifies the current password before setting a new one
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request payload")
		return
	}

	err := h.profileService.ChangePassword(c.Request.Context(), userID, identityapp.ChangePasswordRequest{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "Password changed", nil)
}

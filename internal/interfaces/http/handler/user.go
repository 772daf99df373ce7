package handler

import (
	"github.com/gin-gonic/gin"
	identityapp "github.com/myvegiz/backend/internal/application/identity"
	"github.com/myvegiz/backend/internal/domain/shared"
	"github.com/myvegiz/backend/internal/interfaces/http/middleware"
)

// UserHandler handles administrator-facing user management endpoints
type UserHandler struct {
	BaseHandler
	userService *identityapp.UserService
	authMW      *middleware.AuthMiddleware
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *identityapp.UserService, authMW *middleware.AuthMiddleware) *UserHandler {
	return &UserHandler{userService: userService, authMW: authMW}
}

// RegisterRoutes registers user management routes
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users", h.authMW.RequireAuth(), h.authMW.RequireAdmin())
	{
		users.POST("", h.Create)
		users.GET("", h.List)
		users.GET("/:id", h.Get)
		users.PATCH("/:id", h.Update)
		users.DELETE("/:id", h.Delete)
	}
}

// Create creates a user account with an optional profile image
func (h *UserHandler) Create(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	password := c.PostForm("password")
	if name == "" || email == "" || password == "" {
		h.BadRequest(c, "Name, email and password are required")
		return
	}

	image, err := formImage(c, "profile_image")
	if err != nil {
		h.Error(c, err)
		return
	}

	user, err := h.userService.Create(c.Request.Context(), identityapp.CreateUserRequest{
		Name:     name,
		Email:    email,
		Contact:  c.PostForm("contact"),
		Password: password,
		IsAdmin:  c.PostForm("is_admin") == "true",
		Image:    image,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "User created", user)
}

// Get retrieves a user
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, &h.BaseHandler)
	if !ok {
		return
	}

	user, err := h.userService.GetByPublicID(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "User details", user)
}

// List lists users with pagination
func (h *UserHandler) List(c *gin.Context) {
	req, ok := listQuery(c, &h.BaseHandler)
	if !ok {
		return
	}

	page, err := h.userService.List(c.Request.Context(), identityapp.ListFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	Paginated(c, "User list", page)
}

// Update applies a partial user update
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, &h.BaseHandler)
	if !ok {
		return
	}

	var req identityapp.UpdateUserRequest
	if name, present := c.GetPostForm("name"); present {
		req.Name = shared.Patch(name)
	}
	if email, present := c.GetPostForm("email"); present {
		req.Email = shared.Patch(email)
	}
	if contact, present := c.GetPostForm("contact"); present {
		req.Contact = shared.Patch(contact)
	}
	if password, present := c.GetPostForm("password"); present {
		req.Password = shared.Patch(password)
	}
	if isAdmin, present := c.GetPostForm("is_admin"); present {
		req.IsAdmin = shared.Patch(isAdmin == "true")
	}
	if active, present := c.GetPostForm("is_active"); present {
		req.IsActive = shared.Patch(active == "true")
	}

	image, err := formImage(c, "profile_image")
	if err != nil {
		h.Error(c, err)
		return
	}
	req.Image = image

	user, err := h.userService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "User updated", user)
}

// Delete soft-deletes a user, freeing their email and contact number
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, &h.BaseHandler)
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "User deleted", nil)
}

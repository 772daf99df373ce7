package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/myvegiz/backend/internal/application/catalog"
	"github.com/myvegiz/backend/internal/domain/shared"
	"github.com/myvegiz/backend/internal/interfaces/http/middleware"
)

// MainCategoryHandler handles main category administration endpoints
type MainCategoryHandler struct {
	BaseHandler
	mainCategoryService *catalogapp.MainCategoryService
	authMW              *middleware.AuthMiddleware
}

// NewMainCategoryHandler creates a new MainCategoryHandler
func NewMainCategoryHandler(mainCategoryService *catalogapp.MainCategoryService, authMW *middleware.AuthMiddleware) *MainCategoryHandler {
	return &MainCategoryHandler{mainCategoryService: mainCategoryService, authMW: authMW}
}

// RegisterRoutes registers main category routes
func (h *MainCategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	mainCategories := rg.Group("/main-categories", h.authMW.RequireAuth(), h.authMW.RequireAdmin())
	{
		mainCategories.POST("", h.Create)
		mainCategories.GET("", h.List)
		mainCategories.GET("/:id", h.Get)
		mainCategories.PATCH("/:id", h.Update)
		mainCategories.DELETE("/:id", h.Delete)
	}
}

// Create creates a main category from a multipart form
func (h *MainCategoryHandler) Create(c *gin.Context) {
	name := c.PostForm("main_category_name")
	if name == "" {
		h.BadRequest(c, "Main category name is required")
		return
	}

	image, err := formImage(c, "main_category_image")
	if err != nil {
		h.Error(c, err)
		return
	}

	mainCategory, err := h.mainCategoryService.Create(c.Request.Context(), catalogapp.CreateMainCategoryRequest{
		Name:  name,
		Image: image,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "Main category created", mainCategory)
}

// Get retrieves a main category
func (h *MainCategoryHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, &h.BaseHandler)
	if !ok {
		return
	}

	mainCategory, err := h.mainCategoryService.GetByPublicID(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "Main category details", mainCategory)
}

// List lists main categories with pagination
func (h *MainCategoryHandler) List(c *gin.Context) {
	req, ok := listQuery(c, &h.BaseHandler)
	if !ok {
		return
	}

	page, err := h.mainCategoryService.List(c.Request.Context(), catalogapp.ListFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	Paginated(c, "Main category list", page)
}

// Update applies a partial update from a multipart form
func (h *MainCategoryHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, &h.BaseHandler)
	if !ok {
		return
	}

	var req catalogapp.UpdateMainCategoryRequest
	if name, present := c.GetPostForm("main_category_name"); present {
		req.Name = shared.Patch(name)
	}
	if active, present := c.GetPostForm("is_active"); present {
		req.IsActive = shared.Patch(active == "true")
	}

	image, err := formImage(c, "main_category_image")
	if err != nil {
		h.Error(c, err)
		return
	}
	req.Image = image

	mainCategory, err := h.mainCategoryService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "Main category updated", mainCategory)
}

// Delete soft-deletes a main category
func (h *MainCategoryHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, &h.BaseHandler)
	if !ok {
		return
	}

	if err := h.mainCategoryService.Delete(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "Main category deleted", nil)
}

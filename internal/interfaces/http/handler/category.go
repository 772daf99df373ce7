package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/myvegiz/backend/internal/application/catalog"
	"github.com/myvegiz/backend/internal/domain/shared"
	"github.com/myvegiz/backend/internal/interfaces/http/middleware"
)

// CategoryHandler handles category administration endpoints. Mutations
// accept multipart forms so an image can ride along with the fields.
type CategoryHandler struct {
	BaseHandler
	categoryService    *catalogapp.CategoryService
	subCategoryService *catalogapp.SubCategoryService
	authMW             *middleware.AuthMiddleware
}

// NewCategoryHandler creates a new CategoryHandler. The sub-category
// service backs the nested /categories/:id/sub-categories listing.
func NewCategoryHandler(
	categoryService *catalogapp.CategoryService,
	subCategoryService *catalogapp.SubCategoryService,
	authMW *middleware.AuthMiddleware,
) *CategoryHandler {
	return &CategoryHandler{
		categoryService:    categoryService,
		subCategoryService: subCategoryService,
		authMW:             authMW,
	}
}

// RegisterRoutes registers category routes
func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	categories := rg.Group("/categories", h.authMW.RequireAuth(), h.authMW.RequireAdmin())
	{
		categories.POST("", h.Create)
		categories.GET("", h.List)
		categories.GET("/:id", h.Get)
		categories.PATCH("/:id", h.Update)
		categories.DELETE("/:id", h.Delete)
		categories.GET("/:id/sub-categories", h.ListSubCategories)
	}
}

// Create creates a category from a multipart form
func (h *CategoryHandler) Create(c *gin.Context) {
	name := c.PostForm("category_name")
	if name == "" {
		h.BadRequest(c, "Category name is required")
		return
	}

	image, err := formImage(c, "category_image")
	if err != nil {
		h.Error(c, err)
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), catalogapp.CreateCategoryRequest{
		Name:  name,
		Image: image,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "Category created", category)
}

// Get retrieves a category
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, &h.BaseHandler)
	if !ok {
		return
	}

	category, err := h.categoryService.GetByPublicID(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "Category details", category)
}

// List lists categories with pagination
func (h *CategoryHandler) List(c *gin.Context) {
	req, ok := listQuery(c, &h.BaseHandler)
	if !ok {
		return
	}

	page, err := h.categoryService.List(c.Request.Context(), catalogapp.ListFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	Paginated(c, "Category list", page)
}

// Update applies a partial update from a multipart form. Absent fields
// keep their stored values.
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, &h.BaseHandler)
	if !ok {
		return
	}

	var req catalogapp.UpdateCategoryRequest
	if name, present := c.GetPostForm("category_name"); present {
		req.Name = shared.Patch(name)
	}
	if active, present := c.GetPostForm("is_active"); present {
		req.IsActive = shared.Patch(active == "true")
	}

	image, err := formImage(c, "category_image")
	if err != nil {
		h.Error(c, err)
		return
	}
	req.Image = image

	category, err := h.categoryService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "Category updated", category)
}

// Delete soft-deletes a category
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, &h.BaseHandler)
	if !ok {
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "Category deleted", nil)
}

// ListSubCategories lists the sub-categories of a category
func (h *CategoryHandler) ListSubCategories(c *gin.Context) {
	id, ok := uuidParam(c, &h.BaseHandler)
	if !ok {
		return
	}

	req, ok := listQuery(c, &h.BaseHandler)
	if !ok {
		return
	}

	page, err := h.subCategoryService.ListByCategory(c.Request.Context(), id, catalogapp.ListFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	Paginated(c, "Sub category list", page)
}

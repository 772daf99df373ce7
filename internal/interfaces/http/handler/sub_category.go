package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/myvegiz/backend/internal/application/catalog"
	"github.com/myvegiz/backend/internal/domain/shared"
	"github.com/myvegiz/backend/internal/interfaces/http/middleware"
)

// SubCategoryHandler handles sub-category administration endpoints
type SubCategoryHandler struct {
	BaseHandler
	subCategoryService *catalogapp.SubCategoryService
	authMW             *middleware.AuthMiddleware
}

// NewSubCategoryHandler creates a new SubCategoryHandler
func NewSubCategoryHandler(subCategoryService *catalogapp.SubCategoryService, authMW *middleware.AuthMiddleware) *SubCategoryHandler {
	return &SubCategoryHandler{subCategoryService: subCategoryService, authMW: authMW}
}

// RegisterRoutes registers sub-category routes
func (h *SubCategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	subCategories := rg.Group("/sub-categories", h.authMW.RequireAuth(), h.authMW.RequireAdmin())
	{
		subCategories.POST("", h.Create)
		subCategories.GET("", h.List)
		subCategories.GET("/:id", h.Get)
		subCategories.PATCH("/:id", h.Update)
		subCategories.DELETE("/:id", h.Delete)
	}
}

// Create creates a sub-category under a parent category
func (h *SubCategoryHandler) Create(c *gin.Context) {
	name := c.PostForm("sub_category_name")
	if name == "" {
		h.BadRequest(c, "Sub category name is required")
		return
	}

	categoryID, err := uuid.Parse(c.PostForm("category_uu_id"))
	if err != nil {
		h.BadRequest(c, "Parent category is required")
		return
	}

	image, err := formImage(c, "sub_category_image")
	if err != nil {
		h.Error(c, err)
		return
	}

	subCategory, err := h.subCategoryService.Create(c.Request.Context(), catalogapp.CreateSubCategoryRequest{
		CategoryPublicID: categoryID,
		Name:             name,
		Image:            image,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "Sub category created", subCategory)
}

// Get retrieves a sub-category
func (h *SubCategoryHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, &h.BaseHandler)
	if !ok {
		return
	}

	subCategory, err := h.subCategoryService.GetByPublicID(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "Sub category details", subCategory)
}

// List lists sub-categories with pagination
func (h *SubCategoryHandler) List(c *gin.Context) {
	req, ok := listQuery(c, &h.BaseHandler)
	if !ok {
		return
	}

	page, err := h.subCategoryService.List(c.Request.Context(), catalogapp.ListFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	Paginated(c, "Sub category list", page)
}

// Update applies a partial update; a new category_uu_id moves the
// sub-category under a different parent
func (h *SubCategoryHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, &h.BaseHandler)
	if !ok {
		return
	}

	var req catalogapp.UpdateSubCategoryRequest
	if name, present := c.GetPostForm("sub_category_name"); present {
		req.Name = shared.Patch(name)
	}
	if raw, present := c.GetPostForm("category_uu_id"); present {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid parent category")
			return
		}
		req.CategoryPublicID = shared.Patch(categoryID)
	}
	if active, present := c.GetPostForm("is_active"); present {
		req.IsActive = shared.Patch(active == "true")
	}

	image, err := formImage(c, "sub_category_image")
	if err != nil {
		h.Error(c, err)
		return
	}
	req.Image = image

	subCategory, err := h.subCategoryService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "Sub category updated", subCategory)
}

// Delete soft-deletes a sub-category
func (h *SubCategoryHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, &h.BaseHandler)
	if !ok {
		return
	}

	if err := h.subCategoryService.Delete(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "Sub category deleted", nil)
}

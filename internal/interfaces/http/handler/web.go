package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/myvegiz/backend/internal/application/catalog"
	contentapp "github.com/myvegiz/backend/internal/application/content"
)

// WebHandler serves the public storefront catalog. No authentication and
// only active, non-deleted rows.
type WebHandler struct {
	BaseHandler
	categoryService    *catalogapp.CategoryService
	subCategoryService *catalogapp.SubCategoryService
	productService     *catalogapp.ProductService
	sliderService      *contentapp.SliderService
}

// NewWebHandler creates a new WebHandler
func NewWebHandler(
	categoryService *catalogapp.CategoryService,
	subCategoryService *catalogapp.SubCategoryService,
	productService *catalogapp.ProductService,
	sliderService *contentapp.SliderService,
) *WebHandler {
	return &WebHandler{
		categoryService:    categoryService,
		subCategoryService: subCategoryService,
		productService:     productService,
		sliderService:      sliderService,
	}
}

// RegisterRoutes registers the public storefront routes
func (h *WebHandler) RegisterRoutes(rg *gin.RouterGroup) {
	web := rg.Group("/web")
	{
		web.GET("/categories", h.ListCategories)
		web.GET("/sub-categories", h.ListSubCategories)
		web.GET("/products", h.ListProducts)
		web.GET("/sliders", h.ListSliders)
	}
}

// ListCategories lists active categories for the storefront
func (h *WebHandler) ListCategories(c *gin.Context) {
	req, ok := listQuery(c, &h.BaseHandler)
	if !ok {
		return
	}

	page, err := h.categoryService.List(c.Request.Context(), catalogapp.ListFilter{
		Page:       req.Page,
		PageSize:   req.PageSize,
		ActiveOnly: true,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	Paginated(c, "Category list", page)
}

// ListSubCategories lists active sub-categories, optionally scoped to a
// parent category
func (h *WebHandler) ListSubCategories(c *gin.Context) {
	req, ok := listQuery(c, &h.BaseHandler)
	if !ok {
		return
	}

	filter := catalogapp.ListFilter{
		Page:       req.Page,
		PageSize:   req.PageSize,
		ActiveOnly: true,
	}

	if raw := c.Query("category_uu_id"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid category")
			return
		}
		page, err := h.subCategoryService.ListByCategory(c.Request.Context(), categoryID, filter)
		if err != nil {
			h.Error(c, err)
			return
		}
		Paginated(c, "Sub category list", page)
		return
	}

	page, err := h.subCategoryService.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	Paginated(c, "Sub category list", page)
}

// ListProducts lists active products, optionally filtered by category
// and sub-category
func (h *WebHandler) ListProducts(c *gin.Context) {
	req, ok := listQuery(c, &h.BaseHandler)
	if !ok {
		return
	}

	var categoryID, subCategoryID *uuid.UUID
	if raw := c.Query("category_uu_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid category")
			return
		}
		categoryID = &id
	}
	if raw := c.Query("sub_category_uu_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid sub category")
			return
		}
		subCategoryID = &id
	}

	page, err := h.productService.ListForWeb(c.Request.Context(), categoryID, subCategoryID, catalogapp.ListFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	Paginated(c, "Product list", page)
}

// ListSliders lists active sliders for the storefront
func (h *WebHandler) ListSliders(c *gin.Context) {
	req, ok := listQuery(c, &h.BaseHandler)
	if !ok {
		return
	}

	page, err := h.sliderService.ListForWeb(c.Request.Context(), contentapp.ListFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	Paginated(c, "Slider list", page)
}

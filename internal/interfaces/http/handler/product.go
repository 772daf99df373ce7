package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/myvegiz/backend/internal/application/catalog"
	"github.com/myvegiz/backend/internal/domain/shared"
	"github.com/myvegiz/backend/internal/interfaces/http/middleware"
	"github.com/shopspring/decimal"
)

// ProductHandler handles product administration endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
	variantService *catalogapp.ProductVariantService
	authMW         *middleware.AuthMiddleware
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService, variantService *catalogapp.ProductVariantService, authMW *middleware.AuthMiddleware) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		variantService: variantService,
		authMW:         authMW,
	}
}

// RegisterRoutes registers product routes
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products", h.authMW.RequireAuth(), h.authMW.RequireAdmin())
	{
		products.POST("", h.Create)
		products.GET("", h.List)
		products.GET("/:id", h.Get)
		products.PATCH("/:id", h.Update)
		products.DELETE("/:id", h.Delete)
		products.POST("/:id/variants", h.CreateVariants)
	}
}

// Create creates a product with zero or more images. The first uploaded
// image becomes the primary one.
func (h *ProductHandler) Create(c *gin.Context) {
	name := c.PostForm("product_name")
	if name == "" {
		h.BadRequest(c, "Product name is required")
		return
	}

	categoryID, err := uuid.Parse(c.PostForm("category_uu_id"))
	if err != nil {
		h.BadRequest(c, "Category is required")
		return
	}

	req := catalogapp.CreateProductRequest{
		CategoryPublicID: categoryID,
		Name:             name,
		ShortName:        c.PostForm("product_short_name"),
		ShortDescription: c.PostForm("short_description"),
		LongDescription:  c.PostForm("long_description"),
		HSNCode:          c.PostForm("hsn_code"),
		SKUCode:          c.PostForm("sku_code"),
	}

	if raw, present := c.GetPostForm("sub_category_uu_id"); present && raw != "" {
		subCategoryID, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid sub category")
			return
		}
		req.SubCategoryPublicID = &subCategoryID
	}

	images, err := formImages(c, "product_images")
	if err != nil {
		h.Error(c, err)
		return
	}
	req.Images = images

	product, err := h.productService.Create(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "Product created", product)
}

// Get retrieves a product with its images
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, &h.BaseHandler)
	if !ok {
		return
	}

	product, err := h.productService.GetByPublicID(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "Product details", product)
}

// List lists products with pagination
func (h *ProductHandler) List(c *gin.Context) {
	req, ok := listQuery(c, &h.BaseHandler)
	if !ok {
		return
	}

	page, err := h.productService.List(c.Request.Context(), catalogapp.ListFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	Paginated(c, "Product list", page)
}

// Update applies a partial product update. New product_images files are
// appended to the existing gallery.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, &h.BaseHandler)
	if !ok {
		return
	}

	var req catalogapp.UpdateProductRequest
	if name, present := c.GetPostForm("product_name"); present {
		req.Name = shared.Patch(name)
	}
	if shortName, present := c.GetPostForm("product_short_name"); present {
		req.ShortName = shared.Patch(shortName)
	}
	if desc, present := c.GetPostForm("short_description"); present {
		req.ShortDescription = shared.Patch(desc)
	}
	if desc, present := c.GetPostForm("long_description"); present {
		req.LongDescription = shared.Patch(desc)
	}
	if code, present := c.GetPostForm("hsn_code"); present {
		req.HSNCode = shared.Patch(code)
	}
	if code, present := c.GetPostForm("sku_code"); present {
		req.SKUCode = shared.Patch(code)
	}
	if active, present := c.GetPostForm("is_active"); present {
		req.IsActive = shared.Patch(active == "true")
	}
	if raw, present := c.GetPostForm("category_uu_id"); present {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid category")
			return
		}
		req.CategoryPublicID = shared.Patch(categoryID)
	}
	if raw, present := c.GetPostForm("sub_category_uu_id"); present {
		subCategoryID, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid sub category")
			return
		}
		req.SubCategoryPublicID = shared.Patch(subCategoryID)
	}

	images, err := formImages(c, "product_images")
	if err != nil {
		h.Error(c, err)
		return
	}
	req.Images = images

	product, err := h.productService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "Product updated", product)
}

// Delete soft-deletes a product
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, &h.BaseHandler)
	if !ok {
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "Product deleted", nil)
}

type variantInput struct {
	UOMPublicID  uuid.UUID       `json:"uom_uu_id" binding:"required"`
	ZonePublicID uuid.UUID       `json:"zone_uu_id" binding:"required"`
	ActualPrice  decimal.Decimal `json:"actual_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
}

type createVariantsRequest struct {
	Variants []variantInput `json:"variants" binding:"required,min=1,dive"`
}

// CreateVariants prices a product for several (uom, zone) pairs at once.
// The batch is atomic; one conflicting pair fails the whole request.
func (h *ProductHandler) CreateVariants(c *gin.Context) {
	id, ok := uuidParam(c, &h.BaseHandler)
	if !ok {
		return
	}

	var req createVariantsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request payload")
		return
	}

	inputs := make([]catalogapp.VariantInput, 0, len(req.Variants))
	for _, v := range req.Variants {
		inputs = append(inputs, catalogapp.VariantInput{
			UOMPublicID:  v.UOMPublicID,
			ZonePublicID: v.ZonePublicID,
			ActualPrice:  v.ActualPrice,
			SellingPrice: v.SellingPrice,
		})
	}

	variants, err := h.variantService.CreateBatch(c.Request.Context(), id, inputs)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "Product variants created", variants)
}

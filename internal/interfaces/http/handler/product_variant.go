package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/myvegiz/backend/internal/application/catalog"
	"github.com/myvegiz/backend/internal/domain/shared"
	"github.com/myvegiz/backend/internal/interfaces/http/middleware"
	"github.com/shopspring/decimal"
)

// ProductVariantHandler handles variant pricing endpoints
type ProductVariantHandler struct {
	BaseHandler
	variantService *catalogapp.ProductVariantService
	authMW         *middleware.AuthMiddleware
}

// NewProductVariantHandler creates a new ProductVariantHandler
func NewProductVariantHandler(variantService *catalogapp.ProductVariantService, authMW *middleware.AuthMiddleware) *ProductVariantHandler {
	return &ProductVariantHandler{variantService: variantService, authMW: authMW}
}

// RegisterRoutes registers variant routes
func (h *ProductVariantHandler) RegisterRoutes(rg *gin.RouterGroup) {
	variants := rg.Group("/product-variants", h.authMW.RequireAuth(), h.authMW.RequireAdmin())
	{
		variants.POST("", h.Create)
		variants.GET("", h.List)
		variants.GET("/:id", h.Get)
		variants.PATCH("/:id", h.Update)
		variants.DELETE("/:id", h.Delete)
	}
}

type createVariantRequest struct {
	ProductPublicID uuid.UUID       `json:"product_uu_id" binding:"required"`
	UOMPublicID     uuid.UUID       `json:"uom_uu_id" binding:"required"`
	ZonePublicID    uuid.UUID       `json:"zone_uu_id" binding:"required"`
	ActualPrice     decimal.Decimal `json:"actual_price"`
	SellingPrice    decimal.Decimal `json:"selling_price"`
}

type updateVariantRequest struct {
	ActualPrice  shared.PatchField[decimal.Decimal] `json:"actual_price"`
	SellingPrice shared.PatchField[decimal.Decimal] `json:"selling_price"`
	IsActive     shared.PatchField[bool]            `json:"is_active"`
}

// Create prices a product for one (uom, zone) pair
func (h *ProductVariantHandler) Create(c *gin.Context) {
	var req createVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request payload")
		return
	}

	variant, err := h.variantService.Create(c.Request.Context(), catalogapp.CreateVariantRequest{
		ProductPublicID: req.ProductPublicID,
		UOMPublicID:     req.UOMPublicID,
		ZonePublicID:    req.ZonePublicID,
		ActualPrice:     req.ActualPrice,
		SellingPrice:    req.SellingPrice,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "Product variant created", variant)
}

// Get retrieves a variant
func (h *ProductVariantHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, &h.BaseHandler)
	if !ok {
		return
	}

	variant, err := h.variantService.GetByPublicID(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "Product variant details", variant)
}

// List lists variants with pagination
func (h *ProductVariantHandler) List(c *gin.Context) {
	req, ok := listQuery(c, &h.BaseHandler)
	if !ok {
		return
	}

	page, err := h.variantService.List(c.Request.Context(), catalogapp.ListFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	Paginated(c, "Product variant list", page)
}

// Update re-prices or toggles a variant
func (h *ProductVariantHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, &h.BaseHandler)
	if !ok {
		return
	}

	var req updateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request payload")
		return
	}

	variant, err := h.variantService.Update(c.Request.Context(), id, catalogapp.UpdateVariantRequest{
		ActualPrice:  req.ActualPrice,
		SellingPrice: req.SellingPrice,
		IsActive:     req.IsActive,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "Product variant updated", variant)
}

// Delete soft-deletes a variant, freeing its (product, uom, zone) slot
func (h *ProductVariantHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, &h.BaseHandler)
	if !ok {
		return
	}

	if err := h.variantService.Delete(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "Product variant deleted", nil)
}

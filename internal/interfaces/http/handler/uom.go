package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/myvegiz/backend/internal/application/catalog"
	"github.com/myvegiz/backend/internal/domain/shared"
	"github.com/myvegiz/backend/internal/interfaces/http/middleware"
)

// UOMHandler handles unit-of-measure endpoints
type UOMHandler struct {
	BaseHandler
	uomService *catalogapp.UOMService
	authMW     *middleware.AuthMiddleware
}

// NewUOMHandler creates a new UOMHandler
func NewUOMHandler(uomService *catalogapp.UOMService, authMW *middleware.AuthMiddleware) *UOMHandler {
	return &UOMHandler{uomService: uomService, authMW: authMW}
}

// RegisterRoutes registers unit-of-measure routes
func (h *UOMHandler) RegisterRoutes(rg *gin.RouterGroup) {
	uoms := rg.Group("/uoms", h.authMW.RequireAuth(), h.authMW.RequireAdmin())
	{
		uoms.POST("", h.Create)
		uoms.GET("", h.List)
		uoms.GET("/:id", h.Get)
		uoms.PATCH("/:id", h.Update)
		uoms.DELETE("/:id", h.Delete)
	}
}

type createUOMRequest struct {
	UOMName      string `json:"uom_name" binding:"required"`
	UOMShortName string `json:"uom_short_name" binding:"required"`
	Description  string `json:"description"`
}

type updateUOMRequest struct {
	UOMName      shared.PatchField[string] `json:"uom_name"`
	UOMShortName shared.PatchField[string] `json:"uom_short_name"`
	Description  shared.PatchField[string] `json:"description"`
	IsActive     shared.PatchField[bool]   `json:"is_active"`
}

// Create creates a unit of measure; the code is generated server-side
func (h *UOMHandler) Create(c *gin.Context) {
	var req createUOMRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request payload")
		return
	}

	uom, err := h.uomService.Create(c.Request.Context(), catalogapp.CreateUOMRequest{
		Name:        req.UOMName,
		ShortName:   req.UOMShortName,
		Description: req.Description,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "UOM created", uom)
}

// Get retrieves a unit of measure
func (h *UOMHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, &h.BaseHandler)
	if !ok {
		return
	}

	uom, err := h.uomService.GetByPublicID(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "UOM details", uom)
}

// List lists units of measure with pagination
func (h *UOMHandler) List(c *gin.Context) {
	req, ok := listQuery(c, &h.BaseHandler)
	if !ok {
		return
	}

	page, err := h.uomService.List(c.Request.Context(), catalogapp.ListFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	Paginated(c, "UOM list", page)
}

// Update applies a partial unit-of-measure update
func (h *UOMHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, &h.BaseHandler)
	if !ok {
		return
	}

	var req updateUOMRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request payload")
		return
	}

	uom, err := h.uomService.Update(c.Request.Context(), id, catalogapp.UpdateUOMRequest{
		Name:        req.UOMName,
		ShortName:   req.UOMShortName,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "UOM updated", uom)
}

// Delete soft-deletes a unit of measure
func (h *UOMHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, &h.BaseHandler)
	if !ok {
		return
	}

	if err := h.uomService.Delete(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "UOM deleted", nil)
}

package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	geoapp "github.com/myvegiz/backend/internal/application/geo"
	"github.com/myvegiz/backend/internal/domain/geo"
	"github.com/myvegiz/backend/internal/domain/shared"
	"github.com/myvegiz/backend/internal/interfaces/http/middleware"
)

// ZoneHandler handles delivery zone endpoints. Zone resolution by
// coordinates is public; everything else is admin-only.
type ZoneHandler struct {
	BaseHandler
	zoneService *geoapp.ZoneService
	authMW      *middleware.AuthMiddleware
}

// NewZoneHandler creates a new ZoneHandler
func NewZoneHandler(zoneService *geoapp.ZoneService, authMW *middleware.AuthMiddleware) *ZoneHandler {
	return &ZoneHandler{zoneService: zoneService, authMW: authMW}
}

// RegisterRoutes registers zone routes
func (h *ZoneHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/zones/by-location", h.ResolveByLocation)

	zones := rg.Group("/zones", h.authMW.RequireAuth(), h.authMW.RequireAdmin())
	{
		zones.POST("", h.Create)
		zones.GET("", h.List)
		zones.GET("/:id", h.Get)
		zones.PATCH("/:id", h.Update)
		zones.DELETE("/:id", h.Delete)
	}
}

type createZoneRequest struct {
	ZoneName      string      `json:"zone_name" binding:"required"`
	City          string      `json:"city"`
	State         string      `json:"state"`
	Polygon       geo.Polygon `json:"polygon" binding:"required,polygon"`
	IsDeliverable bool        `json:"is_deliverable"`
	IsActive      bool        `json:"is_active"`
}

type updateZoneRequest struct {
	ZoneName      shared.PatchField[string]      `json:"zone_name"`
	City          shared.PatchField[string]      `json:"city"`
	State         shared.PatchField[string]      `json:"state"`
	Polygon       shared.PatchField[geo.Polygon] `json:"polygon"`
	IsDeliverable shared.PatchField[bool]        `json:"is_deliverable"`
	IsActive      shared.PatchField[bool]        `json:"is_active"`
}

// Create creates a delivery zone from a boundary polygon
func (h *ZoneHandler) Create(c *gin.Context) {
	var req createZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request payload")
		return
	}

	zone, err := h.zoneService.Create(c.Request.Context(), geoapp.CreateZoneRequest{
		Name:          req.ZoneName,
		City:          req.City,
		State:         req.State,
		Polygon:       req.Polygon,
		IsDeliverable: req.IsDeliverable,
		IsActive:      req.IsActive,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "Zone created", zone)
}

// Get retrieves a zone
func (h *ZoneHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, &h.BaseHandler)
	if !ok {
		return
	}

	zone, err := h.zoneService.GetByPublicID(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "Zone details", zone)
}

// List lists zones with pagination
func (h *ZoneHandler) List(c *gin.Context) {
	req, ok := listQuery(c, &h.BaseHandler)
	if !ok {
		return
	}

	page, err := h.zoneService.List(c.Request.Context(), geoapp.ListFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	Paginated(c, "Zone list", page)
}

// Update applies a partial zone update
func (h *ZoneHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, &h.BaseHandler)
	if !ok {
		return
	}

	var req updateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request payload")
		return
	}

	zone, err := h.zoneService.Update(c.Request.Context(), id, geoapp.UpdateZoneRequest{
		Name:          req.ZoneName,
		City:          req.City,
		State:         req.State,
		Polygon:       req.Polygon,
		IsDeliverable: req.IsDeliverable,
		IsActive:      req.IsActive,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "Zone updated", zone)
}

// Delete soft-deletes a zone
func (h *ZoneHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, &h.BaseHandler)
	if !ok {
		return
	}

	if err := h.zoneService.Delete(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "Zone deleted", nil)
}

// ResolveByLocation returns the active zones whose boundary contains the
// given coordinates
func (h *ZoneHandler) ResolveByLocation(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		h.BadRequest(c, "Invalid latitude")
		return
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		h.BadRequest(c, "Invalid longitude")
		return
	}

	zones, err := h.zoneService.ResolveByLocation(c.Request.Context(), lat, lng)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "Zones for location", zones)
}

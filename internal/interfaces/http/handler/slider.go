package handler

import (
	"github.com/gin-gonic/gin"
	contentapp "github.com/myvegiz/backend/internal/application/content"
	"github.com/myvegiz/backend/internal/domain/shared"
	"github.com/myvegiz/backend/internal/interfaces/http/middleware"
)

// SliderHandler handles homepage slider administration endpoints
type SliderHandler struct {
	BaseHandler
	sliderService *contentapp.SliderService
	authMW        *middleware.AuthMiddleware
}

// NewSliderHandler creates a new SliderHandler
func NewSliderHandler(sliderService *contentapp.SliderService, authMW *middleware.AuthMiddleware) *SliderHandler {
	return &SliderHandler{sliderService: sliderService, authMW: authMW}
}

// RegisterRoutes registers slider routes
func (h *SliderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sliders := rg.Group("/sliders", h.authMW.RequireAuth(), h.authMW.RequireAdmin())
	{
		sliders.POST("", h.Create)
		sliders.GET("", h.List)
		sliders.GET("/:id", h.Get)
		sliders.PATCH("/:id", h.Update)
		sliders.DELETE("/:id", h.Delete)
	}
}

// Create creates a slider. All three device images must be uploaded.
func (h *SliderHandler) Create(c *gin.Context) {
	req := contentapp.CreateSliderRequest{
		Caption:  c.PostForm("caption"),
		IsActive: c.PostForm("is_active") == "true",
	}

	var err error
	if req.MobileImage, err = formImage(c, "mobile_image"); err != nil {
		h.Error(c, err)
		return
	}
	if req.TabImage, err = formImage(c, "tab_image"); err != nil {
		h.Error(c, err)
		return
	}
	if req.WebImage, err = formImage(c, "web_image"); err != nil {
		h.Error(c, err)
		return
	}

	slider, err := h.sliderService.Create(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "Slider created", slider)
}

// Get retrieves a slider
func (h *SliderHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, &h.BaseHandler)
	if !ok {
		return
	}

	slider, err := h.sliderService.GetByPublicID(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "Slider details", slider)
}

// List lists sliders with pagination
func (h *SliderHandler) List(c *gin.Context) {
	req, ok := listQuery(c, &h.BaseHandler)
	if !ok {
		return
	}

	page, err := h.sliderService.List(c.Request.Context(), contentapp.ListFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	Paginated(c, "Slider list", page)
}

// Update replaces the uploaded device images and patches the caption
// and active flag
func (h *SliderHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, &h.BaseHandler)
	if !ok {
		return
	}

	var req contentapp.UpdateSliderRequest
	if caption, present := c.GetPostForm("caption"); present {
		req.Caption = shared.Patch(caption)
	}
	if active, present := c.GetPostForm("is_active"); present {
		req.IsActive = shared.Patch(active == "true")
	}

	var err error
	if req.MobileImage, err = formImage(c, "mobile_image"); err != nil {
		h.Error(c, err)
		return
	}
	if req.TabImage, err = formImage(c, "tab_image"); err != nil {
		h.Error(c, err)
		return
	}
	if req.WebImage, err = formImage(c, "web_image"); err != nil {
		h.Error(c, err)
		return
	}

	slider, err := h.sliderService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "Slider updated", slider)
}

// Delete soft-deletes a slider
func (h *SliderHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, &h.BaseHandler)
	if !ok {
		return
	}

	if err := h.sliderService.Delete(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "Slider deleted", nil)
}

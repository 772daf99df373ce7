package handler

import (
	"github.com/gin-gonic/gin"
	contentapp "github.com/myvegiz/backend/internal/application/content"
	"github.com/myvegiz/backend/internal/interfaces/http/middleware"
)

// EmailSettingHandler handles the singleton SMTP configuration
type EmailSettingHandler struct {
	BaseHandler
	emailSettingService *contentapp.EmailSettingService
	authMW              *middleware.AuthMiddleware
}

// NewEmailSettingHandler creates a new EmailSettingHandler
func NewEmailSettingHandler(emailSettingService *contentapp.EmailSettingService, authMW *middleware.AuthMiddleware) *EmailSettingHandler {
	return &EmailSettingHandler{emailSettingService: emailSettingService, authMW: authMW}
}

// RegisterRoutes registers email setting routes
func (h *EmailSettingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	settings := rg.Group("/email-settings", h.authMW.RequireAuth(), h.authMW.RequireAdmin())
	{
		settings.GET("", h.Get)
		settings.PUT("", h.Upsert)
		settings.POST("/test", h.SendTest)
	}
}

type upsertEmailSettingRequest struct {
	Protocol   string `json:"protocol"`
	Host       string `json:"host" binding:"required"`
	Port       int    `json:"port" binding:"required"`
	Encryption string `json:"encryption"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	FromName   string `json:"from_name"`
	FromEmail  string `json:"from_email" binding:"required"`
	IsActive   bool   `json:"is_active"`
}

type sendTestEmailRequest struct {
	To string `json:"to" binding:"required,email"`
}

// Get returns the stored SMTP configuration without the password
func (h *EmailSettingHandler) Get(c *gin.Context) {
	settings, err := h.emailSettingService.Get(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "Email settings", settings)
}

// Upsert replaces the SMTP configuration. An empty password keeps the
// stored one.
func (h *EmailSettingHandler) Upsert(c *gin.Context) {
	var req upsertEmailSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request payload")
		return
	}

	settings, err := h.emailSettingService.Upsert(c.Request.Context(), contentapp.UpsertEmailSettingRequest{
		Protocol:   req.Protocol,
		Host:       req.Host,
		Port:       req.Port,
		Encryption: req.Encryption,
		Username:   req.Username,
		Password:   req.Password,
		FromName:   req.FromName,
		FromEmail:  req.FromEmail,
		IsActive:   req.IsActive,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "Email settings saved", settings)
}

// SendTest sends a test message through the stored configuration
func (h *EmailSettingHandler) SendTest(c *gin.Context) {
	var req sendTestEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "A valid recipient email is required")
		return
	}

	if err := h.emailSettingService.SendTest(c.Request.Context(), req.To); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "Test email sent", nil)
}

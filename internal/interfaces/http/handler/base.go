package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/myvegiz/backend/internal/domain/shared"
	"github.com/myvegiz/backend/internal/interfaces/http/dto"
)

// BaseHandler provides the envelope helpers shared by all handlers. Every
// response, success or failure, leaves with HTTP 200 and a business status
// in the body.
type BaseHandler struct{}

// Success sends a success envelope
func (h *BaseHandler) Success(c *gin.Context, message string, data any) {
	respond(c, dto.NewSuccessResponse(message, data))
}

// Error translates an error into the envelope. DomainError codes map to
// business statuses; anything else is reported as a generic 500.
func (h *BaseHandler) Error(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		respond(c, dto.NewErrorResponse(dto.StatusForCode(domainErr.Code), domainErr.Message))
		return
	}
	respond(c, dto.NewErrorResponse(dto.StatusInternal, "Internal server error"))
}

// BadRequest sends a validation-failure envelope
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	respond(c, dto.NewErrorResponse(dto.StatusBadRequest, message))
}

// Unauthorized sends an authentication-failure envelope
func (h *BaseHandler) Unauthorized(c *gin.Context, message string) {
	respond(c, dto.NewErrorResponse(dto.StatusUnauthorized, message))
}

// Paginated sends a success envelope with paging metadata
func Paginated[T any](c *gin.Context, message string, page *shared.Paginated[T]) {
	respond(c, dto.NewPaginatedResponse(message, page.Items, &dto.Pagination{
		Total:       page.Total,
		CurrentPage: page.Page,
		PerPage:     page.PerPage,
		TotalPages:  page.TotalPages,
	}))
}

// respond writes the envelope and records its business status on the
// context for the access log and tracing middleware
func respond(c *gin.Context, res dto.Response) {
	c.Set(dto.ContextStatusKey, res.Status)
	c.JSON(http.StatusOK, res)
}

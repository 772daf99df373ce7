package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/myvegiz/backend/internal/interfaces/http/dto"
)

// BodyLimit returns a middleware that rejects oversized request bodies.
// The limit check on ContentLength catches declared sizes up front; the
// MaxBytesReader covers chunked requests that lie about it.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			abortWithStatus(c, dto.StatusBadRequest, "Request body exceeds maximum allowed size")
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

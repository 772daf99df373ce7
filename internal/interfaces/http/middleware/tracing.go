package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/myvegiz/backend/internal/interfaces/http/dto"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracing instruments each request with an OpenTelemetry span named after
// the route pattern
func Tracing(serviceName string) gin.HandlerFunc {
	return otelgin.Middleware(serviceName)
}

// SpanEnrichment tags the active span with the request id, the
// authenticated user and the envelope business status. The transport code
// is always 200, so the business status is what marks a span as failed.
// Place after Tracing in the middleware chain.
func SpanEnrichment() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		span := trace.SpanFromContext(c.Request.Context())
		if !span.IsRecording() {
			return
		}

		if requestID := c.GetString("request_id"); requestID != "" {
			span.SetAttributes(attribute.String("request_id", requestID))
		}
		if userID, ok := GetUserID(c); ok {
			span.SetAttributes(attribute.Int("user_id", int(userID)))
		}
		if status := c.GetInt(dto.ContextStatusKey); status != 0 {
			span.SetAttributes(attribute.Int("response.business_status", status))
			if status >= dto.StatusInternal {
				span.SetStatus(codes.Error, "business status "+strconv.Itoa(status))
			}
		}
	}
}

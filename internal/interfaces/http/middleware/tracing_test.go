package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/myvegiz/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func setupTracedRouter(t *testing.T, handler gin.HandlerFunc) (*gin.Engine, *tracetest.SpanRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})

	router := gin.New()
	router.Use(Tracing("myvegiz-backend"))
	router.Use(SpanEnrichment())
	router.GET("/categories", handler)
	return router, recorder
}

func TestSpanEnrichment_BusinessStatusOnSpan(t *testing.T) {
	router, recorder := setupTracedRouter(t, func(c *gin.Context) {
		c.Set(dto.ContextStatusKey, dto.StatusOK)
		c.JSON(http.StatusOK, dto.NewSuccessResponse("Categories", nil))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/categories", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	var sawStatus bool
	for _, attr := range spans[0].Attributes() {
		if string(attr.Key) == "response.business_status" {
			sawStatus = true
			assert.EqualValues(t, dto.StatusOK, attr.Value.AsInt64())
		}
	}
	assert.True(t, sawStatus)
	assert.NotEqual(t, codes.Error, spans[0].Status().Code)
}

func TestSpanEnrichment_InternalStatusMarksSpanFailed(t *testing.T) {
	router, recorder := setupTracedRouter(t, func(c *gin.Context) {
		c.Set(dto.ContextStatusKey, dto.StatusInternal)
		c.JSON(http.StatusOK, dto.NewErrorResponse(dto.StatusInternal, "Internal server error"))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/categories", nil))

	// the transport code stays 200 even when the span is marked failed
	assert.Equal(t, http.StatusOK, w.Code)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
}

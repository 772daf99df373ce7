package middleware

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/myvegiz/backend/internal/domain/geo"
)

// SetupValidator configures the gin binding validator with custom tags
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// Use JSON (or form) tag names for field names in errors
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})

	// polygon: a boundary needs at least three vertices
	_ = v.RegisterValidation("polygon", func(fl validator.FieldLevel) bool {
		polygon, ok := fl.Field().Interface().(geo.Polygon)
		if !ok {
			return false
		}
		return len(polygon) >= geo.MinPolygonVertices
	})
}

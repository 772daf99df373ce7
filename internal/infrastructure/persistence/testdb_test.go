package persistence

import (
	"testing"

	"github.com/myvegiz/backend/internal/domain/catalog"
	"github.com/myvegiz/backend/internal/domain/content"
	"github.com/myvegiz/backend/internal/domain/geo"
	"github.com/myvegiz/backend/internal/domain/identity"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens an in-memory SQLite database with the full schema. Each
// test gets its own database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&catalog.Category{},
		&catalog.SubCategory{},
		&catalog.MainCategory{},
		&catalog.Product{},
		&catalog.ProductImage{},
		&catalog.UOM{},
		&catalog.ProductVariant{},
		&geo.Zone{},
		&identity.User{},
		&content.Slider{},
		&content.EmailSetting{},
	))

	return db
}

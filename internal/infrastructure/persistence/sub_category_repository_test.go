package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/domain/catalog"
	"github.com/myvegiz/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedSubCategory(t *testing.T, db *gorm.DB, categoryID uint, name string) *catalog.SubCategory {
	t.Helper()
	repo := NewGormSubCategoryRepository(db)
	subCategory, err := catalog.NewSubCategory(categoryID, name, shared.Slugify(name), "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), subCategory))
	return subCategory
}

func TestGormSubCategoryRepository_SlugScopedToParent(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormSubCategoryRepository(db)
	categoryRepo := NewGormCategoryRepository(db)
	first := seedCategory(t, categoryRepo, "Vegetables")
	second := seedCategory(t, categoryRepo, "Fruits")

	sub := seedSubCategory(t, db, first.ID, "Organic")

	taken, err := repo.SlugExistsInCategory(context.Background(), first.ID, "organic", uuid.Nil)
	require.NoError(t, err)
	assert.True(t, taken)

	// the same slug is free under a different parent
	taken, err = repo.SlugExistsInCategory(context.Background(), second.ID, "organic", uuid.Nil)
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = repo.SlugExistsInCategory(context.Background(), first.ID, "organic", sub.PublicID)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestGormSubCategoryRepository_FindByCategory(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormSubCategoryRepository(db)
	categoryRepo := NewGormCategoryRepository(db)
	first := seedCategory(t, categoryRepo, "Vegetables")
	second := seedCategory(t, categoryRepo, "Fruits")

	seedSubCategory(t, db, first.ID, "Organic")
	seedSubCategory(t, db, first.ID, "Exotic")
	seedSubCategory(t, db, second.ID, "Citrus")

	subCategories, total, err := repo.FindByCategory(context.Background(), first.ID, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, subCategories, 2)
	for _, sc := range subCategories {
		assert.Equal(t, first.ID, sc.CategoryID)
	}
}

func TestGormSubCategoryRepository_FindByCategory_ExcludesDeleted(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormSubCategoryRepository(db)
	categoryRepo := NewGormCategoryRepository(db)
	parent := seedCategory(t, categoryRepo, "Vegetables")

	sub := seedSubCategory(t, db, parent.ID, "Organic")
	sub.SoftDelete()
	require.NoError(t, repo.Save(context.Background(), sub))

	_, total, err := repo.FindByCategory(context.Background(), parent.ID, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Zero(t, total)
}

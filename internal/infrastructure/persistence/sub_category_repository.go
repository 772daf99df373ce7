package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/domain/catalog"
	"github.com/myvegiz/backend/internal/domain/shared"
	"gorm.io/gorm"
)

var subCategorySortFields = map[string]bool{
	"sub_category_name": true,
	"slug":              true,
	"category_id":       true,
}

// GormSubCategoryRepository implements SubCategoryRepository using GORM
type GormSubCategoryRepository struct {
	db *gorm.DB
}

// NewGormSubCategoryRepository creates a new GormSubCategoryRepository
func NewGormSubCategoryRepository(db *gorm.DB) *GormSubCategoryRepository {
	return &GormSubCategoryRepository{db: db}
}

// FindByPublicID finds a non-deleted sub-category by its surrogate identifier
func (r *GormSubCategoryRepository) FindByPublicID(ctx context.Context, publicID uuid.UUID) (*catalog.SubCategory, error) {
	var subCategory catalog.SubCategory
	err := scopeAlive(r.db.WithContext(ctx)).
		First(&subCategory, "public_id = ?", publicID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &subCategory, nil
}

// FindByID finds a non-deleted sub-category by internal id
func (r *GormSubCategoryRepository) FindByID(ctx context.Context, id uint) (*catalog.SubCategory, error) {
	var subCategory catalog.SubCategory
	err := scopeAlive(r.db.WithContext(ctx)).
		First(&subCategory, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &subCategory, nil
}

// FindAll finds non-deleted sub-categories matching the filter
func (r *GormSubCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.SubCategory, int64, error) {
	total, err := countFiltered(r.db.WithContext(ctx).Model(&catalog.SubCategory{}), filter)
	if err != nil {
		return nil, 0, err
	}

	var subCategories []catalog.SubCategory
	query := applyFilter(r.db.WithContext(ctx).Model(&catalog.SubCategory{}), filter, subCategorySortFields)
	if err := query.Find(&subCategories).Error; err != nil {
		return nil, 0, err
	}
	return subCategories, total, nil
}

// FindByCategory lists non-deleted sub-categories of a parent category
func (r *GormSubCategoryRepository) FindByCategory(ctx context.Context, categoryID uint, filter shared.Filter) ([]catalog.SubCategory, int64, error) {
	scoped := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&catalog.SubCategory{}).
			Where("category_id = ?", categoryID)
	}

	total, err := countFiltered(scoped(), filter)
	if err != nil {
		return nil, 0, err
	}

	var subCategories []catalog.SubCategory
	if err := applyFilter(scoped(), filter, subCategorySortFields).Find(&subCategories).Error; err != nil {
		return nil, 0, err
	}
	return subCategories, total, nil
}

// Save inserts or updates a sub-category
func (r *GormSubCategoryRepository) Save(ctx context.Context, subCategory *catalog.SubCategory) error {
	return r.db.WithContext(ctx).Save(subCategory).Error
}

// SlugExistsInCategory reports whether the slug is held by another
// non-deleted sub-category of the same parent. Slugs only collide within a
// parent; two categories may each have a "leafy-greens" sub-category.
func (r *GormSubCategoryRepository) SlugExistsInCategory(ctx context.Context, categoryID uint, slug string, excludePublicID uuid.UUID) (bool, error) {
	query := scopeAlive(r.db.WithContext(ctx).Model(&catalog.SubCategory{})).
		Where("category_id = ? AND slug = ?", categoryID, slug)
	if excludePublicID != uuid.Nil {
		query = query.Where("public_id <> ?", excludePublicID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

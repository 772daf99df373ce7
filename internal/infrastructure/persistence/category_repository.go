package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/domain/catalog"
	"github.com/myvegiz/backend/internal/domain/shared"
	"gorm.io/gorm"
)

var categorySortFields = map[string]bool{
	"category_name": true,
	"slug":          true,
}

// GormCategoryRepository implements CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// FindByPublicID finds a non-deleted category by its surrogate identifier
func (r *GormCategoryRepository) FindByPublicID(ctx context.Context, publicID uuid.UUID) (*catalog.Category, error) {
	var category catalog.Category
	err := scopeAlive(r.db.WithContext(ctx)).
		First(&category, "public_id = ?", publicID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindByID finds a non-deleted category by internal id
func (r *GormCategoryRepository) FindByID(ctx context.Context, id uint) (*catalog.Category, error) {
	var category catalog.Category
	err := scopeAlive(r.db.WithContext(ctx)).
		First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindAll finds non-deleted categories matching the filter
func (r *GormCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Category, int64, error) {
	model := r.db.WithContext(ctx).Model(&catalog.Category{})

	total, err := countFiltered(model, filter)
	if err != nil {
		return nil, 0, err
	}

	var categories []catalog.Category
	query := applyFilter(r.db.WithContext(ctx).Model(&catalog.Category{}), filter, categorySortFields)
	if err := query.Find(&categories).Error; err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

// Save inserts or updates a category
func (r *GormCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// SlugExists reports whether the slug is held by another non-deleted category
func (r *GormCategoryRepository) SlugExists(ctx context.Context, slug string, excludePublicID uuid.UUID) (bool, error) {
	query := scopeAlive(r.db.WithContext(ctx).Model(&catalog.Category{})).
		Where("slug = ?", slug)
	if excludePublicID != uuid.Nil {
		query = query.Where("public_id <> ?", excludePublicID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

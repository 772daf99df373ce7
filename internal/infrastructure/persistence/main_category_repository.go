package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/domain/catalog"
	"github.com/myvegiz/backend/internal/domain/shared"
	"gorm.io/gorm"
)

var mainCategorySortFields = map[string]bool{
	"main_category_name": true,
	"slug":               true,
}

// GormMainCategoryRepository implements MainCategoryRepository using GORM
type GormMainCategoryRepository struct {
	db *gorm.DB
}

// NewGormMainCategoryRepository creates a new GormMainCategoryRepository
func NewGormMainCategoryRepository(db *gorm.DB) *GormMainCategoryRepository {
	return &GormMainCategoryRepository{db: db}
}

// FindByPublicID finds a non-deleted main category by its surrogate identifier
func (r *GormMainCategoryRepository) FindByPublicID(ctx context.Context, publicID uuid.UUID) (*catalog.MainCategory, error) {
	var mainCategory catalog.MainCategory
	err := scopeAlive(r.db.WithContext(ctx)).
		First(&mainCategory, "public_id = ?", publicID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &mainCategory, nil
}

// FindAll finds non-deleted main categories matching the filter
func (r *GormMainCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.MainCategory, int64, error) {
	total, err := countFiltered(r.db.WithContext(ctx).Model(&catalog.MainCategory{}), filter)
	if err != nil {
		return nil, 0, err
	}

	var mainCategories []catalog.MainCategory
	query := applyFilter(r.db.WithContext(ctx).Model(&catalog.MainCategory{}), filter, mainCategorySortFields)
	if err := query.Find(&mainCategories).Error; err != nil {
		return nil, 0, err
	}
	return mainCategories, total, nil
}

// Save inserts or updates a main category
func (r *GormMainCategoryRepository) Save(ctx context.Context, mainCategory *catalog.MainCategory) error {
	return r.db.WithContext(ctx).Save(mainCategory).Error
}

// SlugExists reports whether the slug is held by another non-deleted main
// category
func (r *GormMainCategoryRepository) SlugExists(ctx context.Context, slug string, excludePublicID uuid.UUID) (bool, error) {
	query := scopeAlive(r.db.WithContext(ctx).Model(&catalog.MainCategory{})).
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

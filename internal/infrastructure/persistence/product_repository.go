package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/domain/catalog"
	"github.com/myvegiz/backend/internal/domain/shared"
	"gorm.io/gorm"
)

var productSortFields = map[string]bool{
	"product_name":       true,
	"product_short_name": true,
	"slug":               true,
	"category_id":        true,
}

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// preloadImages preloads the non-deleted images of each product
func preloadImages(db *gorm.DB) *gorm.DB {
	return db.Preload("Images", "is_delete = ?", false)
}

// FindByPublicID finds a non-deleted product with its images
func (r *GormProductRepository) FindByPublicID(ctx context.Context, publicID uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	err := preloadImages(scopeAlive(r.db.WithContext(ctx))).
		First(&product, "public_id = ?", publicID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindByID finds a non-deleted product by internal id
func (r *GormProductRepository) FindByID(ctx context.Context, id uint) (*catalog.Product, error) {
	var product catalog.Product
	err := preloadImages(scopeAlive(r.db.WithContext(ctx))).
		First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindAll finds non-deleted products matching the filter
func (r *GormProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, int64, error) {
	total, err := countFiltered(r.db.WithContext(ctx).Model(&catalog.Product{}), filter)
	if err != nil {
		return nil, 0, err
	}

	var products []catalog.Product
	query := preloadImages(applyFilter(r.db.WithContext(ctx).Model(&catalog.Product{}), filter, productSortFields))
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// FindForWeb lists active, non-deleted products for the storefront,
// optionally narrowed by category and sub-category
func (r *GormProductRepository) FindForWeb(ctx context.Context, categoryID, subCategoryID *uint, filter shared.Filter) ([]catalog.Product, int64, error) {
	scoped := func() *gorm.DB {
		query := r.db.WithContext(ctx).Model(&catalog.Product{})
		if categoryID != nil {
			query = query.Where("category_id = ?", *categoryID)
		}
		if subCategoryID != nil {
			query = query.Where("sub_category_id = ?", *subCategoryID)
		}
		return query
	}

	total, err := countFiltered(scoped(), filter)
	if err != nil {
		return nil, 0, err
	}

	var products []catalog.Product
	query := preloadImages(applyFilter(scoped(), filter, productSortFields))
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// Save inserts or updates a product together with its images
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(product).Error
}

// SlugExists reports whether the slug is held by another non-deleted product
func (r *GormProductRepository) SlugExists(ctx context.Context, slug string, excludePublicID uuid.UUID) (bool, error) {
	query := scopeAlive(r.db.WithContext(ctx).Model(&catalog.Product{})).
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

package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/domain/catalog"
	"github.com/myvegiz/backend/internal/domain/shared"
	"gorm.io/gorm"
)

var productVariantSortFields = map[string]bool{
	"product_id":    true,
	"uom_id":        true,
	"zone_id":       true,
	"selling_price": true,
}

// GormProductVariantRepository implements ProductVariantRepository using GORM
type GormProductVariantRepository struct {
	db *gorm.DB
}

// NewGormProductVariantRepository creates a new GormProductVariantRepository
func NewGormProductVariantRepository(db *gorm.DB) *GormProductVariantRepository {
	return &GormProductVariantRepository{db: db}
}

// FindByPublicID finds a non-deleted variant by its surrogate identifier
func (r *GormProductVariantRepository) FindByPublicID(ctx context.Context, publicID uuid.UUID) (*catalog.ProductVariant, error) {
	var variant catalog.ProductVariant
	err := scopeAlive(r.db.WithContext(ctx)).
		First(&variant, "public_id = ?", publicID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &variant, nil
}

// FindAll finds non-deleted variants matching the filter
func (r *GormProductVariantRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.ProductVariant, int64, error) {
	total, err := countFiltered(r.db.WithContext(ctx).Model(&catalog.ProductVariant{}), filter)
	if err != nil {
		return nil, 0, err
	}

	var variants []catalog.ProductVariant
	query := applyFilter(r.db.WithContext(ctx).Model(&catalog.ProductVariant{}), filter, productVariantSortFields)
	if err := query.Find(&variants).Error; err != nil {
		return nil, 0, err
	}
	return variants, total, nil
}

// Save inserts or updates a variant
func (r *GormProductVariantRepository) Save(ctx context.Context, variant *catalog.ProductVariant) error {
	return r.db.WithContext(ctx).Save(variant).Error
}

// SaveBatch persists several variants atomically; either all rows land or
// none do
func (r *GormProductVariantRepository) SaveBatch(ctx context.Context, variants []*catalog.ProductVariant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, variant := range variants {
			if err := tx.Save(variant).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// CombinationExists reports whether another non-deleted variant already
// covers the (product, uom, zone) triple
func (r *GormProductVariantRepository) CombinationExists(ctx context.Context, productID, uomID, zoneID uint, excludePublicID uuid.UUID) (bool, error) {
	query := scopeAlive(r.db.WithContext(ctx).Model(&catalog.ProductVariant{})).
		Where("product_id = ? AND uom_id = ? AND zone_id = ?", productID, uomID, zoneID)
	if excludePublicID != uuid.Nil {
		query = query.Where("public_id <> ?", excludePublicID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

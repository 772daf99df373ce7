package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/domain/catalog"
	"github.com/myvegiz/backend/internal/domain/shared"
	"gorm.io/gorm"
)

var uomSortFields = map[string]bool{
	"uom_name":       true,
	"uom_short_name": true,
	"uom_code":       true,
}

// GormUOMRepository implements UOMRepository using GORM
type GormUOMRepository struct {
	db *gorm.DB
}

// NewGormUOMRepository creates a new GormUOMRepository
func NewGormUOMRepository(db *gorm.DB) *GormUOMRepository {
	return &GormUOMRepository{db: db}
}

// FindByPublicID finds a non-deleted unit by its surrogate identifier
func (r *GormUOMRepository) FindByPublicID(ctx context.Context, publicID uuid.UUID) (*catalog.UOM, error) {
	var uom catalog.UOM
	err := scopeAlive(r.db.WithContext(ctx)).
		First(&uom, "public_id = ?", publicID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &uom, nil
}

// FindByID finds a non-deleted unit by internal id
func (r *GormUOMRepository) FindByID(ctx context.Context, id uint) (*catalog.UOM, error) {
	var uom catalog.UOM
	err := scopeAlive(r.db.WithContext(ctx)).
		First(&uom, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &uom, nil
}

// FindAll finds non-deleted units matching the filter
func (r *GormUOMRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.UOM, int64, error) {
	total, err := countFiltered(r.db.WithContext(ctx).Model(&catalog.UOM{}), filter)
	if err != nil {
		return nil, 0, err
	}

	var uoms []catalog.UOM
	query := applyFilter(r.db.WithContext(ctx).Model(&catalog.UOM{}), filter, uomSortFields)
	if err := query.Find(&uoms).Error; err != nil {
		return nil, 0, err
	}
	return uoms, total, nil
}

// Save inserts or updates a unit
func (r *GormUOMRepository) Save(ctx context.Context, uom *catalog.UOM) error {
	return r.db.WithContext(ctx).Save(uom).Error
}

// NameExists reports whether the name is held by another non-deleted unit
func (r *GormUOMRepository) NameExists(ctx context.Context, name string, excludePublicID uuid.UUID) (bool, error) {
	return r.fieldExists(ctx, "uom_name", name, excludePublicID)
}

// ShortNameExists reports whether the short name is held by another
// non-deleted unit
func (r *GormUOMRepository) ShortNameExists(ctx context.Context, shortName string, excludePublicID uuid.UUID) (bool, error) {
	return r.fieldExists(ctx, "uom_short_name", shortName, excludePublicID)
}

func (r *GormUOMRepository) fieldExists(ctx context.Context, column, value string, excludePublicID uuid.UUID) (bool, error) {
	query := scopeAlive(r.db.WithContext(ctx).Model(&catalog.UOM{})).
		Where(column+" = ?", value)
	if excludePublicID != uuid.Nil {
		query = query.Where("public_id <> ?", excludePublicID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

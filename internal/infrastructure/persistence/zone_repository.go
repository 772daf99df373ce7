package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/domain/geo"
	"github.com/myvegiz/backend/internal/domain/shared"
	"gorm.io/gorm"
)

var zoneSortFields = map[string]bool{
	"zone_name": true,
	"city":      true,
	"state":     true,
}

// GormZoneRepository implements ZoneRepository using GORM
type GormZoneRepository struct {
	db *gorm.DB
}

// NewGormZoneRepository creates a new GormZoneRepository
func NewGormZoneRepository(db *gorm.DB) *GormZoneRepository {
	return &GormZoneRepository{db: db}
}

// FindByPublicID finds a non-deleted zone by its surrogate identifier
func (r *GormZoneRepository) FindByPublicID(ctx context.Context, publicID uuid.UUID) (*geo.Zone, error) {
	var zone geo.Zone
	err := scopeAlive(r.db.WithContext(ctx)).
		First(&zone, "public_id = ?", publicID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &zone, nil
}

// FindByID finds a non-deleted zone by internal id
func (r *GormZoneRepository) FindByID(ctx context.Context, id uint) (*geo.Zone, error) {
	var zone geo.Zone
	err := scopeAlive(r.db.WithContext(ctx)).
		First(&zone, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &zone, nil
}

// FindAll finds non-deleted zones matching the filter
func (r *GormZoneRepository) FindAll(ctx context.Context, filter shared.Filter) ([]geo.Zone, int64, error) {
	total, err := countFiltered(r.db.WithContext(ctx).Model(&geo.Zone{}), filter)
	if err != nil {
		return nil, 0, err
	}

	var zones []geo.Zone
	query := applyFilter(r.db.WithContext(ctx).Model(&geo.Zone{}), filter, zoneSortFields)
	if err := query.Find(&zones).Error; err != nil {
		return nil, 0, err
	}
	return zones, total, nil
}

// FindCandidates returns every active, non-deleted zone for point
// resolution. Zone counts stay small (one row per coverage area) so the
// point-in-polygon walk happens in memory rather than in SQL.
func (r *GormZoneRepository) FindCandidates(ctx context.Context) ([]geo.Zone, error) {
	var zones []geo.Zone
	err := scopeAlive(r.db.WithContext(ctx)).
		Where("is_active = ?", true).
		Find(&zones).Error
	if err != nil {
		return nil, err
	}
	return zones, nil
}

// Save inserts or updates a zone
func (r *GormZoneRepository) Save(ctx context.Context, zone *geo.Zone) error {
	return r.db.WithContext(ctx).Save(zone).Error
}

package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/domain/content"
	"github.com/myvegiz/backend/internal/domain/shared"
	"gorm.io/gorm"
)

var sliderSortFields = map[string]bool{
	"caption": true,
}

// GormSliderRepository implements SliderRepository using GORM
type GormSliderRepository struct {
	db *gorm.DB
}

// NewGormSliderRepository creates a new GormSliderRepository
func NewGormSliderRepository(db *gorm.DB) *GormSliderRepository {
	return &GormSliderRepository{db: db}
}

// FindByPublicID finds a non-deleted slider by its surrogate identifier
func (r *GormSliderRepository) FindByPublicID(ctx context.Context, publicID uuid.UUID) (*content.Slider, error) {
	var slider content.Slider
	err := scopeAlive(r.db.WithContext(ctx)).
		First(&slider, "public_id = ?", publicID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &slider, nil
}

// FindAll finds non-deleted sliders matching the filter
func (r *GormSliderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]content.Slider, int64, error) {
	total, err := countFiltered(r.db.WithContext(ctx).Model(&content.Slider{}), filter)
	if err != nil {
		return nil, 0, err
	}

	var sliders []content.Slider
	query := applyFilter(r.db.WithContext(ctx).Model(&content.Slider{}), filter, sliderSortFields)
	if err := query.Find(&sliders).Error; err != nil {
		return nil, 0, err
	}
	return sliders, total, nil
}

// Save inserts or updates a slider
func (r *GormSliderRepository) Save(ctx context.Context, slider *content.Slider) error {
	return r.db.WithContext(ctx).Save(slider).Error
}

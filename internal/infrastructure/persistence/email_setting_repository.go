package persistence

import (
	"context"
	"errors"

	"github.com/myvegiz/backend/internal/domain/content"
	"github.com/myvegiz/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormEmailSettingRepository implements EmailSettingRepository using GORM.
// The table holds at most one row.
type GormEmailSettingRepository struct {
	db *gorm.DB
}

// NewGormEmailSettingRepository creates a new GormEmailSettingRepository
func NewGormEmailSettingRepository(db *gorm.DB) *GormEmailSettingRepository {
	return &GormEmailSettingRepository{db: db}
}

// Get returns the settings row, or shared.ErrNotFound when never configured
func (r *GormEmailSettingRepository) Get(ctx context.Context) (*content.EmailSetting, error) {
	var settings content.EmailSetting
	err := r.db.WithContext(ctx).Order("id").First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &settings, nil
}

// Save inserts or updates the settings row
func (r *GormEmailSettingRepository) Save(ctx context.Context, settings *content.EmailSetting) error {
	return r.db.WithContext(ctx).Save(settings).Error
}

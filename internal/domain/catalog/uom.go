package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/domain/shared"
)

// UOM represents a unit of measure (kg, bunch, dozen). Its code is a
// generated identifier, not a human-editable slug: the name's slug plus a
// random suffix, so no uniqueness pre-check is needed at generation time.
type UOM struct {
	shared.SoftDeleteEntity
	UOMCode      string `gorm:"type:varchar(255);not null;index" json:"uom_code"`
	UOMName      string `gorm:"type:varchar(255);not null" json:"uom_name"`
	UOMShortName string `gorm:"type:varchar(255);not null;index" json:"uom_short_name"`
	Description  string `gorm:"type:varchar(255)" json:"description"`
}

// TableName returns the table name for GORM
func (UOM) TableName() string {
	return "uoms"
}

// NewUOM creates a new unit of measure with a generated code
func NewUOM(name, shortName, description string) (*UOM, error) {
	if err := validateEntityName(name, "UOM name"); err != nil {
		return nil, err
	}
	if err := validateEntityName(shortName, "UOM short name"); err != nil {
		return nil, err
	}

	return &UOM{
		SoftDeleteEntity: shared.NewSoftDeleteEntity(),
		UOMCode:          shared.NewShortCode(name),
		UOMName:          name,
		UOMShortName:     shortName,
		Description:      description,
	}, nil
}

// Rename updates the unit name. The generated code is stable across renames.
func (u *UOM) Rename(name string) error {
	if err := validateEntityName(name, "UOM name"); err != nil {
		return err
	}
	u.UOMName = name
	u.MarkUpdated()
	return nil
}

// SetShortName updates the short display name
func (u *UOM) SetShortName(shortName string) error {
	if err := validateEntityName(shortName, "UOM short name"); err != nil {
		return err
	}
	u.UOMShortName = shortName
	u.MarkUpdated()
	return nil
}

// UOMRepository defines the interface for unit-of-measure persistence
type UOMRepository interface {
	shared.Repository[UOM]

	// FindByID finds a non-deleted unit by internal id (FK checks)
	FindByID(ctx context.Context, id uint) (*UOM, error)

	// NameExists reports whether a non-deleted unit other than
	// excludePublicID holds the name
	NameExists(ctx context.Context, name string, excludePublicID uuid.UUID) (bool, error)

	// ShortNameExists reports whether a non-deleted unit other than
	// excludePublicID holds the short name
	ShortNameExists(ctx context.Context, shortName string, excludePublicID uuid.UUID) (bool, error)
}

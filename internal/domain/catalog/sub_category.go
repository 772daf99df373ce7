package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/domain/shared"
)

// SubCategory represents a second-level category nested under a parent
// Category. Its slug is unique per parent, not globally: the same name may
// exist under two different parents simultaneously.
type SubCategory struct {
	shared.SoftDeleteEntity
	CategoryID       uint   `gorm:"not null;index" json:"category_id"`
	SubCategoryName  string `gorm:"type:varchar(255);not null" json:"sub_category_name"`
	Slug             string `gorm:"type:varchar(255);not null;index" json:"slug"`
	SubCategoryImage string `gorm:"type:varchar(255)" json:"sub_category_image"`
}

// TableName returns the table name for GORM
func (SubCategory) TableName() string {
	return "sub_categories"
}

// NewSubCategory creates a new sub-category under the given parent with a
// slug reserved within that parent's scope
func NewSubCategory(categoryID uint, name, slug, imageURL string) (*SubCategory, error) {
	if categoryID == 0 {
		return nil, shared.NewValidationError("Category is required")
	}
	if err := validateEntityName(name, "Sub category name"); err != nil {
		return nil, err
	}

	return &SubCategory{
		SoftDeleteEntity: shared.NewSoftDeleteEntity(),
		CategoryID:       categoryID,
		SubCategoryName:  name,
		Slug:             slug,
		SubCategoryImage: imageURL,
	}, nil
}

// Rename updates the name together with its re-derived slug
func (s *SubCategory) Rename(name, slug string) error {
	if err := validateEntityName(name, "Sub category name"); err != nil {
		return err
	}
	s.SubCategoryName = name
	s.Slug = slug
	s.MarkUpdated()
	return nil
}

// SetImage replaces the sub-category image URL
func (s *SubCategory) SetImage(url string) {
	s.SubCategoryImage = url
	s.MarkUpdated()
}

// Reparent moves the sub-category under a different parent. The slug must
// have been re-reserved within the new parent's scope.
func (s *SubCategory) Reparent(categoryID uint) error {
	if categoryID == 0 {
		return shared.NewValidationError("Category is required")
	}
	s.CategoryID = categoryID
	s.MarkUpdated()
	return nil
}

// SubCategoryRepository defines the interface for sub-category persistence
type SubCategoryRepository interface {
	shared.Repository[SubCategory]

	// FindByID finds a non-deleted sub-category by internal id (FK checks)
	FindByID(ctx context.Context, id uint) (*SubCategory, error)

	// FindByCategory lists non-deleted sub-categories of a parent category
	FindByCategory(ctx context.Context, categoryID uint, filter shared.Filter) ([]SubCategory, int64, error)

	// SlugExistsInCategory reports whether a non-deleted sub-category of the
	// given parent, other than excludePublicID, holds the slug
	SlugExistsInCategory(ctx context.Context, categoryID uint, slug string, excludePublicID uuid.UUID) (bool, error)
}

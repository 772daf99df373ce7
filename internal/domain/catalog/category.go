package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/domain/shared"
)

// Category represents a product category in the catalog
type Category struct {
	shared.SoftDeleteEntity
	CategoryName  string `gorm:"type:varchar(255);not null" json:"category_name"`
	Slug          string `gorm:"type:varchar(255);not null;index" json:"slug"`
	CategoryImage string `gorm:"type:varchar(255)" json:"category_image"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new category. The slug must already be reserved
// through the uniqueness guard.
func NewCategory(name, slug, imageURL string) (*Category, error) {
	if err := validateEntityName(name, "Category name"); err != nil {
		return nil, err
	}

	return &Category{
		SoftDeleteEntity: shared.NewSoftDeleteEntity(),
		CategoryName:     name,
		Slug:             slug,
		CategoryImage:    imageURL,
	}, nil
}

// Rename updates the category name together with its re-derived slug
func (c *Category) Rename(name, slug string) error {
	if err := validateEntityName(name, "Category name"); err != nil {
		return err
	}
	c.CategoryName = name
	c.Slug = slug
	c.MarkUpdated()
	return nil
}

// SetImage replaces the category image URL
func (c *Category) SetImage(url string) {
	c.CategoryImage = url
	c.MarkUpdated()
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	shared.Repository[Category]

	// FindByID finds a non-deleted category by internal id (FK checks)
	FindByID(ctx context.Context, id uint) (*Category, error)

	// SlugExists reports whether a non-deleted category other than
	// excludePublicID holds the slug
	SlugExists(ctx context.Context, slug string, excludePublicID uuid.UUID) (bool, error)
}

// validateEntityName validates a display name shared by catalog entities
func validateEntityName(name, label string) error {
	if name == "" {
		return shared.NewValidationError(label + " is required")
	}
	if len(name) > 255 {
		return shared.NewValidationError(label + " cannot exceed 255 characters")
	}
	return nil
}

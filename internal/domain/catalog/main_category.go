package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/domain/shared"
)

// MainCategory represents a top-level storefront grouping shown above the
// regular category tree
type MainCategory struct {
	shared.SoftDeleteEntity
	MainCategoryName  string `gorm:"type:varchar(255);not null" json:"main_category_name"`
	Slug              string `gorm:"type:varchar(255);not null;index" json:"slug"`
	MainCategoryImage string `gorm:"type:varchar(255)" json:"main_category_image"`
}

// TableName returns the table name for GORM
func (MainCategory) TableName() string {
	return "main_categories"
}

// NewMainCategory creates a new main category with a reserved slug
func NewMainCategory(name, slug, imageURL string) (*MainCategory, error) {
	if err := validateEntityName(name, "Main category name"); err != nil {
		return nil, err
	}

	return &MainCategory{
		SoftDeleteEntity:  shared.NewSoftDeleteEntity(),
		MainCategoryName:  name,
		Slug:              slug,
		MainCategoryImage: imageURL,
	}, nil
}

// Rename updates the name together with its re-derived slug
func (m *MainCategory) Rename(name, slug string) error {
	if err := validateEntityName(name, "Main category name"); err != nil {
		return err
	}
	m.MainCategoryName = name
	m.Slug = slug
	m.MarkUpdated()
	return nil
}

// SetImage replaces the main category image URL
func (m *MainCategory) SetImage(url string) {
	m.MainCategoryImage = url
	m.MarkUpdated()
}

// MainCategoryRepository defines the interface for main category persistence
type MainCategoryRepository interface {
	shared.Repository[MainCategory]

	// SlugExists reports whether a non-deleted main category other than
	// excludePublicID holds the slug
	SlugExists(ctx context.Context, slug string, excludePublicID uuid.UUID) (bool, error)
}

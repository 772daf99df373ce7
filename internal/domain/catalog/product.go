package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/domain/shared"
)

// Product represents a sellable item within a category
type Product struct {
	shared.SoftDeleteEntity
	CategoryID       uint           `gorm:"not null;index" json:"category_id"`
	SubCategoryID    *uint          `gorm:"index" json:"sub_category_id"`
	ProductName      string         `gorm:"type:varchar(255);not null" json:"product_name"`
	ProductShortName string         `gorm:"type:varchar(255);not null;index" json:"product_short_name"`
	Slug             string         `gorm:"type:varchar(255);not null;index" json:"slug"`
	ShortDescription string         `gorm:"type:text" json:"short_description"`
	LongDescription  string         `gorm:"type:text" json:"long_description"`
	HSNCode          string         `gorm:"type:varchar(50)" json:"hsn_code"`
	SKUCode          string         `gorm:"type:varchar(50)" json:"sku_code"`
	Images           []ProductImage `gorm:"foreignKey:ProductID" json:"images"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// ProductImage is an uploaded image attached to a product. The first image
// of a product is its primary one.
type ProductImage struct {
	shared.SoftDeleteEntity
	ProductID    uint   `gorm:"not null;index" json:"product_id"`
	ProductImage string `gorm:"type:varchar(255);not null" json:"product_image"`
	IsPrimary    bool   `gorm:"not null;default:false" json:"is_primary"`
}

// TableName returns the table name for GORM
func (ProductImage) TableName() string {
	return "product_images"
}

// NewProduct creates a new product with a reserved slug
func NewProduct(categoryID uint, subCategoryID *uint, name, shortName, slug string) (*Product, error) {
	if categoryID == 0 {
		return nil, shared.NewValidationError("Category is required")
	}
	if err := validateEntityName(name, "Product name"); err != nil {
		return nil, err
	}
	if err := validateEntityName(shortName, "Product short name"); err != nil {
		return nil, err
	}

	return &Product{
		SoftDeleteEntity: shared.NewSoftDeleteEntity(),
		CategoryID:       categoryID,
		SubCategoryID:    subCategoryID,
		ProductName:      name,
		ProductShortName: shortName,
		Slug:             slug,
	}, nil
}

// Rename updates the product name together with its re-derived slug
func (p *Product) Rename(name, slug string) error {
	if err := validateEntityName(name, "Product name"); err != nil {
		return err
	}
	p.ProductName = name
	p.Slug = slug
	p.MarkUpdated()
	return nil
}

// AttachImage appends an uploaded image; the first attached image becomes
// the primary one
func (p *Product) AttachImage(url string) {
	img := ProductImage{
		SoftDeleteEntity: shared.NewSoftDeleteEntity(),
		ProductID:        p.ID,
		ProductImage:     url,
		IsPrimary:        len(p.Images) == 0,
	}
	p.Images = append(p.Images, img)
}

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	shared.Repository[Product]

	// FindByID finds a non-deleted product by internal id (FK checks)
	FindByID(ctx context.Context, id uint) (*Product, error)

	// FindForWeb lists active, non-deleted products, optionally filtered by
	// category and sub-category
	FindForWeb(ctx context.Context, categoryID, subCategoryID *uint, filter shared.Filter) ([]Product, int64, error)

	// SlugExists reports whether a non-deleted product other than
	// excludePublicID holds the slug
	SlugExists(ctx context.Context, slug string, excludePublicID uuid.UUID) (bool, error)
}

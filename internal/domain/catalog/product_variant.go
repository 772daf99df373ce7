package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductVariant prices a product for a specific unit of measure within a
// delivery zone. The (product, uom, zone) combination is unique among
// non-deleted variants.
type ProductVariant struct {
	shared.SoftDeleteEntity
	ProductID    uint            `gorm:"not null;index" json:"product_id"`
	UOMID        uint            `gorm:"not null;index" json:"uom_id"`
	ZoneID       uint            `gorm:"not null;index" json:"zone_id"`
	ActualPrice  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"actual_price"`
	SellingPrice decimal.Decimal `gorm:"type:numeric(12,2);not null;index" json:"selling_price"`
}

// TableName returns the table name for GORM
func (ProductVariant) TableName() string {
	return "product_variants"
}

// NewProductVariant creates a priced variant for a (product, uom, zone) triple
func NewProductVariant(productID, uomID, zoneID uint, actualPrice, sellingPrice decimal.Decimal) (*ProductVariant, error) {
	if productID == 0 {
		return nil, shared.NewValidationError("Product is required")
	}
	if uomID == 0 {
		return nil, shared.NewValidationError("UOM is required")
	}
	if zoneID == 0 {
		return nil, shared.NewValidationError("Zone is required")
	}
	if actualPrice.IsNegative() || sellingPrice.IsNegative() {
		return nil, shared.NewValidationError("Price cannot be negative")
	}

	return &ProductVariant{
		SoftDeleteEntity: shared.NewSoftDeleteEntity(),
		ProductID:        productID,
		UOMID:            uomID,
		ZoneID:           zoneID,
		ActualPrice:      actualPrice,
		SellingPrice:     sellingPrice,
	}, nil
}

// SetPrices updates one or both prices
func (v *ProductVariant) SetPrices(actual, selling *decimal.Decimal) error {
	if actual != nil {
		if actual.IsNegative() {
			return shared.NewValidationError("Actual price cannot be negative")
		}
		v.ActualPrice = *actual
	}
	if selling != nil {
		if selling.IsNegative() {
			return shared.NewValidationError("Selling price cannot be negative")
		}
		v.SellingPrice = *selling
	}
	v.MarkUpdated()
	return nil
}

// ProductVariantRepository defines the interface for variant persistence
type ProductVariantRepository interface {
	shared.Repository[ProductVariant]

	// SaveBatch persists several variants in one transaction
	SaveBatch(ctx context.Context, variants []*ProductVariant) error

	// CombinationExists reports whether a non-deleted variant other than
	// excludePublicID already covers the (product, uom, zone) triple
	CombinationExists(ctx context.Context, productID, uomID, zoneID uint, excludePublicID uuid.UUID) (bool, error)
}

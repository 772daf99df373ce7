package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/application/uploads"
	"github.com/myvegiz/backend/internal/domain/catalog"
	"github.com/myvegiz/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ListFilter carries pagination options shared by admin listings
type ListFilter struct {
	Page       int
	PageSize   int
	ActiveOnly bool
}

func (f ListFilter) toDomain() shared.Filter {
	filter := shared.DefaultFilter()
	if f.Page > 0 {
		filter.Page = f.Page
	}
	if f.PageSize > 0 {
		filter.PageSize = f.PageSize
	}
	filter.ActiveOnly = f.ActiveOnly
	return filter
}

// CreateCategoryRequest represents a request to create a new category
type CreateCategoryRequest struct {
	Name  string
	Image *uploads.Image
}

// UpdateCategoryRequest represents a partial category update. Omitted
// fields keep their stored values.
type UpdateCategoryRequest struct {
	Name     shared.PatchField[string]
	IsActive shared.PatchField[bool]
	Image    *uploads.Image
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID            uint      `json:"id"`
	PublicID      uuid.UUID `json:"uu_id"`
	CategoryName  string    `json:"category_name"`
	Slug          string    `json:"slug"`
	CategoryImage string    `json:"category_image"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToCategoryResponse maps a domain category to its response form
func ToCategoryResponse(c *catalog.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:            c.ID,
		PublicID:      c.PublicID,
		CategoryName:  c.CategoryName,
		Slug:          c.Slug,
		CategoryImage: c.CategoryImage,
		IsActive:      c.IsActive,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// CreateMainCategoryRequest represents a request to create a main category
type CreateMainCategoryRequest struct {
	Name  string
	Image *uploads.Image
}

// UpdateMainCategoryRequest represents a partial main category update
type UpdateMainCategoryRequest struct {
	Name     shared.PatchField[string]
	IsActive shared.PatchField[bool]
	Image    *uploads.Image
}

// MainCategoryResponse represents a main category in API responses
type MainCategoryResponse struct {
	ID                uint      `json:"id"`
	PublicID          uuid.UUID `json:"uu_id"`
	MainCategoryName  string    `json:"main_category_name"`
	Slug              string    `json:"slug"`
	MainCategoryImage string    `json:"main_category_image"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ToMainCategoryResponse maps a domain main category to its response form
func ToMainCategoryResponse(m *catalog.MainCategory) *MainCategoryResponse {
	return &MainCategoryResponse{
		ID:                m.ID,
		PublicID:          m.PublicID,
		MainCategoryName:  m.MainCategoryName,
		Slug:              m.Slug,
		MainCategoryImage: m.MainCategoryImage,
		IsActive:          m.IsActive,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// CreateSubCategoryRequest represents a request to create a sub-category
// under the parent category identified by CategoryPublicID
type CreateSubCategoryRequest struct {
	CategoryPublicID uuid.UUID
	Name             string
	Image            *uploads.Image
}

// UpdateSubCategoryRequest represents a partial sub-category update.
// Changing CategoryPublicID moves the sub-category under a new parent and
// re-checks the slug within the new parent's scope.
type UpdateSubCategoryRequest struct {
	CategoryPublicID shared.PatchField[uuid.UUID]
	Name             shared.PatchField[string]
	IsActive         shared.PatchField[bool]
	Image            *uploads.Image
}

// SubCategoryResponse represents a sub-category in API responses
type SubCategoryResponse struct {
	ID               uint      `json:"id"`
	PublicID         uuid.UUID `json:"uu_id"`
	CategoryID       uint      `json:"category_id"`
	SubCategoryName  string    `json:"sub_category_name"`
	Slug             string    `json:"slug"`
	SubCategoryImage string    `json:"sub_category_image"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ToSubCategoryResponse maps a domain sub-category to its response form
func ToSubCategoryResponse(s *catalog.SubCategory) *SubCategoryResponse {
	return &SubCategoryResponse{
		ID:               s.ID,
		PublicID:         s.PublicID,
		CategoryID:       s.CategoryID,
		SubCategoryName:  s.SubCategoryName,
		Slug:             s.Slug,
		SubCategoryImage: s.SubCategoryImage,
		IsActive:         s.IsActive,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	CategoryPublicID    uuid.UUID
	SubCategoryPublicID *uuid.UUID
	Name                string
	ShortName           string
	ShortDescription    string
	LongDescription     string
	HSNCode             string
	SKUCode             string
	Images              []uploads.Image
}

// UpdateProductRequest represents a partial product update
type UpdateProductRequest struct {
	CategoryPublicID    shared.PatchField[uuid.UUID]
	SubCategoryPublicID shared.PatchField[uuid.UUID]
	Name                shared.PatchField[string]
	ShortName           shared.PatchField[string]
	ShortDescription    shared.PatchField[string]
	LongDescription     shared.PatchField[string]
	HSNCode             shared.PatchField[string]
	SKUCode             shared.PatchField[string]
	IsActive            shared.PatchField[bool]
	Images              []uploads.Image
}

// ProductImageResponse represents one product image in API responses
type ProductImageResponse struct {
	ID           uint      `json:"id"`
	PublicID     uuid.UUID `json:"uu_id"`
	ProductImage string    `json:"product_image"`
	IsPrimary    bool      `json:"is_primary"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID               uint                   `json:"id"`
	PublicID         uuid.UUID              `json:"uu_id"`
	CategoryID       uint                   `json:"category_id"`
	SubCategoryID    *uint                  `json:"sub_category_id"`
	ProductName      string                 `json:"product_name"`
	ProductShortName string                 `json:"product_short_name"`
	Slug             string                 `json:"slug"`
	ShortDescription string                 `json:"short_description"`
	LongDescription  string                 `json:"long_description"`
	HSNCode          string                 `json:"hsn_code"`
	SKUCode          string                 `json:"sku_code"`
	Images           []ProductImageResponse `json:"images"`
	IsActive         bool                   `json:"is_active"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

// ToProductResponse maps a domain product to its response form
func ToProductResponse(p *catalog.Product) *ProductResponse {
	images := make([]ProductImageResponse, 0, len(p.Images))
	for _, img := range p.Images {
		if img.IsDelete {
			continue
		}
		images = append(images, ProductImageResponse{
			ID:           img.ID,
			PublicID:     img.PublicID,
			ProductImage: img.ProductImage,
			IsPrimary:    img.IsPrimary,
		})
	}

	return &ProductResponse{
		ID:               p.ID,
		PublicID:         p.PublicID,
		CategoryID:       p.CategoryID,
		SubCategoryID:    p.SubCategoryID,
		ProductName:      p.ProductName,
		ProductShortName: p.ProductShortName,
		Slug:             p.Slug,
		ShortDescription: p.ShortDescription,
		LongDescription:  p.LongDescription,
		HSNCode:          p.HSNCode,
		SKUCode:          p.SKUCode,
		Images:           images,
		IsActive:         p.IsActive,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// CreateUOMRequest represents a request to create a unit of measure
type CreateUOMRequest struct {
	Name        string
	ShortName   string
	Description string
}

// UpdateUOMRequest represents a partial unit-of-measure update. The
// generated code never changes.
type UpdateUOMRequest struct {
	Name        shared.PatchField[string]
	ShortName   shared.PatchField[string]
	Description shared.PatchField[string]
	IsActive    shared.PatchField[bool]
}

// UOMResponse represents a unit of measure in API responses
type UOMResponse struct {
	ID           uint      `json:"id"`
	PublicID     uuid.UUID `json:"uu_id"`
	UOMCode      string    `json:"uom_code"`
	UOMName      string    `json:"uom_name"`
	UOMShortName string    `json:"uom_short_name"`
	Description  string    `json:"description"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToUOMResponse maps a domain unit of measure to its response form
func ToUOMResponse(u *catalog.UOM) *UOMResponse {
	return &UOMResponse{
		ID:           u.ID,
		PublicID:     u.PublicID,
		UOMCode:      u.UOMCode,
		UOMName:      u.UOMName,
		UOMShortName: u.UOMShortName,
		Description:  u.Description,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// VariantInput prices one (uom, zone) pair when creating variants in bulk
type VariantInput struct {
	UOMPublicID  uuid.UUID
	ZonePublicID uuid.UUID
	ActualPrice  decimal.Decimal
	SellingPrice decimal.Decimal
}

// CreateVariantRequest represents a request to price a product for a
// specific unit of measure within a delivery zone
type CreateVariantRequest struct {
	ProductPublicID uuid.UUID
	UOMPublicID     uuid.UUID
	ZonePublicID    uuid.UUID
	ActualPrice     decimal.Decimal
	SellingPrice    decimal.Decimal
}

// UpdateVariantRequest represents a partial variant update
type UpdateVariantRequest struct {
	ActualPrice  shared.PatchField[decimal.Decimal]
	SellingPrice shared.PatchField[decimal.Decimal]
	IsActive     shared.PatchField[bool]
}

// VariantResponse represents a product variant in API responses
type VariantResponse struct {
	ID           uint            `json:"id"`
	PublicID     uuid.UUID       `json:"uu_id"`
	ProductID    uint            `json:"product_id"`
	UOMID        uint            `json:"uom_id"`
	ZoneID       uint            `json:"zone_id"`
	ActualPrice  decimal.Decimal `json:"actual_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToVariantResponse maps a domain variant to its response form
func ToVariantResponse(v *catalog.ProductVariant) *VariantResponse {
	return &VariantResponse{
		ID:           v.ID,
		PublicID:     v.PublicID,
		ProductID:    v.ProductID,
		UOMID:        v.UOMID,
		ZoneID:       v.ZoneID,
		ActualPrice:  v.ActualPrice,
		SellingPrice: v.SellingPrice,
		IsActive:     v.IsActive,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/domain/catalog"
	"github.com/myvegiz/backend/internal/domain/geo"
	"github.com/myvegiz/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ProductVariantService prices products per unit of measure and delivery
// zone. The (product, uom, zone) triple is unique among non-deleted
// variants.
type ProductVariantService struct {
	variantRepo catalog.ProductVariantRepository
	productRepo catalog.ProductRepository
	uomRepo     catalog.UOMRepository
	zoneRepo    geo.ZoneRepository
	logger      *zap.Logger
}

// NewProductVariantService creates a new ProductVariantService
func NewProductVariantService(
	variantRepo catalog.ProductVariantRepository,
	productRepo catalog.ProductRepository,
	uomRepo catalog.UOMRepository,
	zoneRepo geo.ZoneRepository,
	logger *zap.Logger,
) *ProductVariantService {
	return &ProductVariantService{
		variantRepo: variantRepo,
		productRepo: productRepo,
		uomRepo:     uomRepo,
		zoneRepo:    zoneRepo,
		logger:      logger,
	}
}

var errVariantExists = shared.NewConflictError("Variant for this product, UOM and zone already exists")

// buildVariant resolves references and validates combination uniqueness
func (s *ProductVariantService) buildVariant(ctx context.Context, productID uint, input VariantInput) (*catalog.ProductVariant, error) {
	uom, err := s.uomRepo.FindByPublicID(ctx, input.UOMPublicID)
	if err != nil {
		return nil, shared.NewValidationError("UOM not found")
	}
	zone, err := s.zoneRepo.FindByPublicID(ctx, input.ZonePublicID)
	if err != nil {
		return nil, shared.NewValidationError("Zone not found")
	}

	exists, err := s.variantRepo.CombinationExists(ctx, productID, uom.ID, zone.ID, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errVariantExists
	}

	return catalog.NewProductVariant(productID, uom.ID, zone.ID, input.ActualPrice, input.SellingPrice)
}

// Create prices a product for one (uom, zone) pair
func (s *ProductVariantService) Create(ctx context.Context, req CreateVariantRequest) (*VariantResponse, error) {
	product, err := s.productRepo.FindByPublicID(ctx, req.ProductPublicID)
	if err != nil {
		return nil, shared.NewValidationError("Product not found")
	}

	variant, err := s.buildVariant(ctx, product.ID, VariantInput{
		UOMPublicID:  req.UOMPublicID,
		ZonePublicID: req.ZonePublicID,
		ActualPrice:  req.ActualPrice,
		SellingPrice: req.SellingPrice,
	})
	if err != nil {
		return nil, err
	}

	if err := s.variantRepo.Save(ctx, variant); err != nil {
		return nil, err
	}

	s.logger.Info("Variant created",
		zap.String("uu_id", variant.PublicID.String()),
		zap.Uint("product_id", variant.ProductID),
		zap.Uint("uom_id", variant.UOMID),
		zap.Uint("zone_id", variant.ZoneID))
	return ToVariantResponse(variant), nil
}

// CreateBatch prices a product for several (uom, zone) pairs in one
// transaction. The whole batch fails if any pair is invalid or taken.
func (s *ProductVariantService) CreateBatch(ctx context.Context, productPublicID uuid.UUID, inputs []VariantInput) ([]VariantResponse, error) {
	if len(inputs) == 0 {
		return nil, shared.NewValidationError("At least one variant is required")
	}

	product, err := s.productRepo.FindByPublicID(ctx, productPublicID)
	if err != nil {
		return nil, shared.NewValidationError("Product not found")
	}

	variants := make([]*catalog.ProductVariant, 0, len(inputs))
	seen := make(map[[2]uuid.UUID]bool, len(inputs))
	for _, input := range inputs {
		pair := [2]uuid.UUID{input.UOMPublicID, input.ZonePublicID}
		if seen[pair] {
			return nil, errVariantExists
		}
		seen[pair] = true

		variant, err := s.buildVariant(ctx, product.ID, input)
		if err != nil {
			return nil, err
		}
		variants = append(variants, variant)
	}

	if err := s.variantRepo.SaveBatch(ctx, variants); err != nil {
		return nil, err
	}

	responses := make([]VariantResponse, len(variants))
	for i, variant := range variants {
		responses[i] = *ToVariantResponse(variant)
	}

	s.logger.Info("Variant batch created",
		zap.String("product_uu_id", productPublicID.String()),
		zap.Int("count", len(variants)))
	return responses, nil
}

// GetByPublicID retrieves a non-deleted variant
func (s *ProductVariantService) GetByPublicID(ctx context.Context, publicID uuid.UUID) (*VariantResponse, error) {
	variant, err := s.variantRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	return ToVariantResponse(variant), nil
}

// List retrieves non-deleted variants, paginated
func (s *ProductVariantService) List(ctx context.Context, filter ListFilter) (*shared.Paginated[VariantResponse], error) {
	domainFilter := filter.toDomain()

	variants, total, err := s.variantRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]VariantResponse, len(variants))
	for i := range variants {
		responses[i] = *ToVariantResponse(&variants[i])
	}

	page := shared.NewPaginated(responses, total, domainFilter.Page, domainFilter.Limit())
	return &page, nil
}

// Update applies a partial price or status update
func (s *ProductVariantService) Update(ctx context.Context, publicID uuid.UUID, req UpdateVariantRequest) (*VariantResponse, error) {
	variant, err := s.variantRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	if req.ActualPrice.IsNull() || req.SellingPrice.IsNull() {
		return nil, shared.NewValidationError("Price cannot be null")
	}

	if req.ActualPrice.Set || req.SellingPrice.Set {
		actual := &variant.ActualPrice
		if v, ok := req.ActualPrice.Get(); ok {
			actual = &v
		}
		selling := &variant.SellingPrice
		if v, ok := req.SellingPrice.Get(); ok {
			selling = &v
		}
		if err := variant.SetPrices(actual, selling); err != nil {
			return nil, err
		}
	}

	if active, ok := req.IsActive.Get(); ok {
		variant.SetActive(active)
		variant.MarkUpdated()
	}

	if err := s.variantRepo.Save(ctx, variant); err != nil {
		return nil, err
	}

	return ToVariantResponse(variant), nil
}

// Delete soft-deletes a variant, freeing its (product, uom, zone) triple
func (s *ProductVariantService) Delete(ctx context.Context, publicID uuid.UUID) error {
	variant, err := s.variantRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return err
	}

	variant.SoftDelete()
	if err := s.variantRepo.Save(ctx, variant); err != nil {
		return err
	}

	s.logger.Info("Variant deleted", zap.String("uu_id", publicID.String()))
	return nil
}

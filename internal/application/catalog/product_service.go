package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/application/uploads"
	"github.com/myvegiz/backend/internal/domain/catalog"
	"github.com/myvegiz/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ProductService handles product administration and the public storefront
// product listings
type ProductService struct {
	productRepo     catalog.ProductRepository
	categoryRepo    catalog.CategoryRepository
	subCategoryRepo catalog.SubCategoryRepository
	uploader        *uploads.Service
	slugGuard       shared.UniqueKeyGuard
	logger          *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	subCategoryRepo catalog.SubCategoryRepository,
	uploader *uploads.Service,
	logger *zap.Logger,
) *ProductService {
	return &ProductService{
		productRepo:     productRepo,
		categoryRepo:    categoryRepo,
		subCategoryRepo: subCategoryRepo,
		uploader:        uploader,
		slugGuard: shared.UniqueKeyGuard{
			Derive:   shared.Slugify,
			Exists:   productRepo.SlugExists,
			Conflict: shared.NewConflictError("Product with this name already exists"),
		},
		logger: logger,
	}
}

// resolveCategory loads a category by its external identifier
func (s *ProductService) resolveCategory(ctx context.Context, publicID uuid.UUID) (*catalog.Category, error) {
	category, err := s.categoryRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, shared.NewValidationError("Category not found")
	}
	return category, nil
}

// resolveSubCategory loads a sub-category and checks it belongs to categoryID
func (s *ProductService) resolveSubCategory(ctx context.Context, publicID uuid.UUID, categoryID uint) (*catalog.SubCategory, error) {
	subCategory, err := s.subCategoryRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, shared.NewValidationError("Sub category not found")
	}
	if subCategory.CategoryID != categoryID {
		return nil, shared.NewValidationError("Sub category does not belong to the category")
	}
	return subCategory, nil
}

// Create creates a new product with its images
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	category, err := s.resolveCategory(ctx, req.CategoryPublicID)
	if err != nil {
		return nil, err
	}

	var subCategoryID *uint
	if req.SubCategoryPublicID != nil {
		subCategory, err := s.resolveSubCategory(ctx, *req.SubCategoryPublicID, category.ID)
		if err != nil {
			return nil, err
		}
		subCategoryID = &subCategory.ID
	}

	slug, err := s.slugGuard.Reserve(ctx, req.Name, uuid.Nil)
	if err != nil {
		return nil, err
	}

	product, err := catalog.NewProduct(category.ID, subCategoryID, req.Name, req.ShortName, slug)
	if err != nil {
		return nil, err
	}
	product.ShortDescription = req.ShortDescription
	product.LongDescription = req.LongDescription
	product.HSNCode = req.HSNCode
	product.SKUCode = req.SKUCode

	for _, img := range req.Images {
		url, err := s.uploader.UploadImage(ctx, uploads.FolderProducts, img.Data, img.ContentType)
		if err != nil {
			return nil, err
		}
		product.AttachImage(url)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("Product created",
		zap.String("uu_id", product.PublicID.String()),
		zap.String("slug", product.Slug),
		zap.Int("images", len(product.Images)))
	return ToProductResponse(product), nil
}

// GetByPublicID retrieves a non-deleted product
func (s *ProductService) GetByPublicID(ctx context.Context, publicID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// List retrieves non-deleted products for administration, paginated
func (s *ProductService) List(ctx context.Context, filter ListFilter) (*shared.Paginated[ProductResponse], error) {
	domainFilter := filter.toDomain()

	products, total, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = *ToProductResponse(&products[i])
	}

	page := shared.NewPaginated(responses, total, domainFilter.Page, domainFilter.Limit())
	return &page, nil
}

// ListForWeb retrieves active products for the storefront, optionally
// narrowed to a category and sub-category given by external identifiers
func (s *ProductService) ListForWeb(ctx context.Context, categoryPublicID, subCategoryPublicID *uuid.UUID, filter ListFilter) (*shared.Paginated[ProductResponse], error) {
	var categoryID, subCategoryID *uint

	if categoryPublicID != nil {
		category, err := s.resolveCategory(ctx, *categoryPublicID)
		if err != nil {
			return nil, err
		}
		categoryID = &category.ID
	}
	if subCategoryPublicID != nil {
		subCategory, err := s.subCategoryRepo.FindByPublicID(ctx, *subCategoryPublicID)
		if err != nil {
			return nil, shared.NewValidationError("Sub category not found")
		}
		subCategoryID = &subCategory.ID
	}

	domainFilter := filter.toDomain()
	domainFilter.ActiveOnly = true

	products, total, err := s.productRepo.FindForWeb(ctx, categoryID, subCategoryID, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = *ToProductResponse(&products[i])
	}

	page := shared.NewPaginated(responses, total, domainFilter.Page, domainFilter.Limit())
	return &page, nil
}

// Update applies a partial update. A rename re-derives and re-checks the
// slug; new images are appended after the existing ones.
func (s *ProductService) Update(ctx context.Context, publicID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	if req.Name.IsNull() {
		return nil, shared.NewValidationError("Product name cannot be null")
	}
	if req.ShortName.IsNull() {
		return nil, shared.NewValidationError("Product short name cannot be null")
	}
	if req.CategoryPublicID.IsNull() {
		return nil, shared.NewValidationError("Category cannot be null")
	}

	if categoryPublicID, ok := req.CategoryPublicID.Get(); ok {
		category, err := s.resolveCategory(ctx, categoryPublicID)
		if err != nil {
			return nil, err
		}
		product.CategoryID = category.ID
		product.MarkUpdated()
	}

	// An explicit null detaches the sub-category
	if req.SubCategoryPublicID.IsNull() {
		product.SubCategoryID = nil
		product.MarkUpdated()
	} else if subCategoryPublicID, ok := req.SubCategoryPublicID.Get(); ok {
		subCategory, err := s.resolveSubCategory(ctx, subCategoryPublicID, product.CategoryID)
		if err != nil {
			return nil, err
		}
		product.SubCategoryID = &subCategory.ID
		product.MarkUpdated()
	}

	if name, ok := req.Name.Get(); ok {
		slug, err := s.slugGuard.Reserve(ctx, name, publicID)
		if err != nil {
			return nil, err
		}
		if err := product.Rename(name, slug); err != nil {
			return nil, err
		}
	}
	if shortName, ok := req.ShortName.Get(); ok {
		product.ProductShortName = shortName
		product.MarkUpdated()
	}
	if v, ok := req.ShortDescription.Get(); ok || req.ShortDescription.IsNull() {
		product.ShortDescription = v
		product.MarkUpdated()
	}
	if v, ok := req.LongDescription.Get(); ok || req.LongDescription.IsNull() {
		product.LongDescription = v
		product.MarkUpdated()
	}
	if v, ok := req.HSNCode.Get(); ok || req.HSNCode.IsNull() {
		product.HSNCode = v
		product.MarkUpdated()
	}
	if v, ok := req.SKUCode.Get(); ok || req.SKUCode.IsNull() {
		product.SKUCode = v
		product.MarkUpdated()
	}
	if active, ok := req.IsActive.Get(); ok {
		product.SetActive(active)
		product.MarkUpdated()
	}

	for _, img := range req.Images {
		url, err := s.uploader.UploadImage(ctx, uploads.FolderProducts, img.Data, img.ContentType)
		if err != nil {
			return nil, err
		}
		product.AttachImage(url)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	return ToProductResponse(product), nil
}

// Delete soft-deletes a product
func (s *ProductService) Delete(ctx context.Context, publicID uuid.UUID) error {
	product, err := s.productRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return err
	}

	product.SoftDelete()
	if err := s.productRepo.Save(ctx, product); err != nil {
		return err
	}

	s.logger.Info("Product deleted", zap.String("uu_id", publicID.String()))
	return nil
}

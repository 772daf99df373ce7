package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/application/uploads"
	"github.com/myvegiz/backend/internal/domain/catalog"
	"github.com/myvegiz/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// SubCategoryService handles sub-category administration. Sub-category
// slugs are unique per parent category, so the uniqueness guard is built
// per call with the parent's scope closed over.
type SubCategoryService struct {
	subCategoryRepo catalog.SubCategoryRepository
	categoryRepo    catalog.CategoryRepository
	uploader        *uploads.Service
	logger          *zap.Logger
}

// NewSubCategoryService creates a new SubCategoryService
func NewSubCategoryService(
	subCategoryRepo catalog.SubCategoryRepository,
	categoryRepo catalog.CategoryRepository,
	uploader *uploads.Service,
	logger *zap.Logger,
) *SubCategoryService {
	return &SubCategoryService{
		subCategoryRepo: subCategoryRepo,
		categoryRepo:    categoryRepo,
		uploader:        uploader,
		logger:          logger,
	}
}

// slugGuardFor builds the per-parent slug guard
func (s *SubCategoryService) slugGuardFor(categoryID uint) shared.UniqueKeyGuard {
	return shared.UniqueKeyGuard{
		Derive: shared.Slugify,
		Exists: func(ctx context.Context, key string, excludePublicID uuid.UUID) (bool, error) {
			return s.subCategoryRepo.SlugExistsInCategory(ctx, categoryID, key, excludePublicID)
		},
		Conflict: shared.NewConflictError("Sub category with this name already exists in the category"),
	}
}

// resolveParent loads the parent category by its external identifier
func (s *SubCategoryService) resolveParent(ctx context.Context, publicID uuid.UUID) (*catalog.Category, error) {
	parent, err := s.categoryRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, shared.NewValidationError("Parent category not found")
	}
	return parent, nil
}

// Create creates a new sub-category under a parent category
func (s *SubCategoryService) Create(ctx context.Context, req CreateSubCategoryRequest) (*SubCategoryResponse, error) {
	parent, err := s.resolveParent(ctx, req.CategoryPublicID)
	if err != nil {
		return nil, err
	}

	slug, err := s.slugGuardFor(parent.ID).Reserve(ctx, req.Name, uuid.Nil)
	if err != nil {
		return nil, err
	}

	imageURL := ""
	if req.Image != nil {
		imageURL, err = s.uploader.UploadImage(ctx, uploads.FolderSubCategories, req.Image.Data, req.Image.ContentType)
		if err != nil {
			return nil, err
		}
	}

	subCategory, err := catalog.NewSubCategory(parent.ID, req.Name, slug, imageURL)
	if err != nil {
		return nil, err
	}

	if err := s.subCategoryRepo.Save(ctx, subCategory); err != nil {
		return nil, err
	}

	s.logger.Info("Sub category created",
		zap.String("uu_id", subCategory.PublicID.String()),
		zap.Uint("category_id", parent.ID),
		zap.String("slug", subCategory.Slug))
	return ToSubCategoryResponse(subCategory), nil
}

// GetByPublicID retrieves a non-deleted sub-category
func (s *SubCategoryService) GetByPublicID(ctx context.Context, publicID uuid.UUID) (*SubCategoryResponse, error) {
	subCategory, err := s.subCategoryRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	return ToSubCategoryResponse(subCategory), nil
}

// List retrieves non-deleted sub-categories, paginated
func (s *SubCategoryService) List(ctx context.Context, filter ListFilter) (*shared.Paginated[SubCategoryResponse], error) {
	domainFilter := filter.toDomain()

	subCategories, total, err := s.subCategoryRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]SubCategoryResponse, len(subCategories))
	for i := range subCategories {
		responses[i] = *ToSubCategoryResponse(&subCategories[i])
	}

	page := shared.NewPaginated(responses, total, domainFilter.Page, domainFilter.Limit())
	return &page, nil
}

// ListByCategory retrieves non-deleted sub-categories of one parent
func (s *SubCategoryService) ListByCategory(ctx context.Context, categoryPublicID uuid.UUID, filter ListFilter) (*shared.Paginated[SubCategoryResponse], error) {
	parent, err := s.resolveParent(ctx, categoryPublicID)
	if err != nil {
		return nil, err
	}

	domainFilter := filter.toDomain()
	subCategories, total, err := s.subCategoryRepo.FindByCategory(ctx, parent.ID, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]SubCategoryResponse, len(subCategories))
	for i := range subCategories {
		responses[i] = *ToSubCategoryResponse(&subCategories[i])
	}

	page := shared.NewPaginated(responses, total, domainFilter.Page, domainFilter.Limit())
	return &page, nil
}

// Update applies a partial update. A reparent re-checks the slug within
// the new parent's scope; a rename re-checks it within the current one.
func (s *SubCategoryService) Update(ctx context.Context, publicID uuid.UUID, req UpdateSubCategoryRequest) (*SubCategoryResponse, error) {
	subCategory, err := s.subCategoryRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	if req.Name.IsNull() {
		return nil, shared.NewValidationError("Sub category name cannot be null")
	}
	if req.CategoryPublicID.IsNull() {
		return nil, shared.NewValidationError("Category cannot be null")
	}

	categoryID := subCategory.CategoryID
	if parentPublicID, ok := req.CategoryPublicID.Get(); ok {
		parent, err := s.resolveParent(ctx, parentPublicID)
		if err != nil {
			return nil, err
		}
		categoryID = parent.ID
	}

	name := subCategory.SubCategoryName
	if newName, ok := req.Name.Get(); ok {
		name = newName
	}

	// Scope changes and renames both require the slug to be free in the
	// target parent's scope
	if req.Name.Set || categoryID != subCategory.CategoryID {
		slug, err := s.slugGuardFor(categoryID).Reserve(ctx, name, publicID)
		if err != nil {
			return nil, err
		}
		if err := subCategory.Rename(name, slug); err != nil {
			return nil, err
		}
	}
	if categoryID != subCategory.CategoryID {
		if err := subCategory.Reparent(categoryID); err != nil {
			return nil, err
		}
	}

	if active, ok := req.IsActive.Get(); ok {
		subCategory.SetActive(active)
		subCategory.MarkUpdated()
	}

	if req.Image != nil {
		url, err := s.uploader.UploadImage(ctx, uploads.FolderSubCategories, req.Image.Data, req.Image.ContentType)
		if err != nil {
			return nil, err
		}
		subCategory.SetImage(url)
	}

	if err := s.subCategoryRepo.Save(ctx, subCategory); err != nil {
		return nil, err
	}

	return ToSubCategoryResponse(subCategory), nil
}

// Delete soft-deletes a sub-category
func (s *SubCategoryService) Delete(ctx context.Context, publicID uuid.UUID) error {
	subCategory, err := s.subCategoryRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return err
	}

	subCategory.SoftDelete()
	if err := s.subCategoryRepo.Save(ctx, subCategory); err != nil {
		return err
	}

	s.logger.Info("Sub category deleted", zap.String("uu_id", publicID.String()))
	return nil
}

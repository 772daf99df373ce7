package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/application/uploads"
	"github.com/myvegiz/backend/internal/domain/catalog"
	"github.com/myvegiz/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CategoryService handles category administration
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
	uploader     *uploads.Service
	slugGuard    shared.UniqueKeyGuard
	logger       *zap.Logger
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(
	categoryRepo catalog.CategoryRepository,
	uploader *uploads.Service,
	logger *zap.Logger,
) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		uploader:     uploader,
		slugGuard: shared.UniqueKeyGuard{
			Derive:   shared.Slugify,
			Exists:   categoryRepo.SlugExists,
			Conflict: shared.NewConflictError("Category with this name already exists"),
		},
		logger: logger,
	}
}

// Create creates a new category. The slug is derived from the name and must
// be free among non-deleted categories. An image must accompany the create.
func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	if req.Image == nil {
		return nil, shared.NewValidationError("Category image is required")
	}

	slug, err := s.slugGuard.Reserve(ctx, req.Name, uuid.Nil)
	if err != nil {
		return nil, err
	}

	imageURL, err := s.uploader.UploadImage(ctx, uploads.FolderCategories, req.Image.Data, req.Image.ContentType)
	if err != nil {
		return nil, err
	}

	category, err := catalog.NewCategory(req.Name, slug, imageURL)
	if err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info("Category created",
		zap.String("uu_id", category.PublicID.String()),
		zap.String("slug", category.Slug))
	return ToCategoryResponse(category), nil
}

// GetByPublicID retrieves a non-deleted category
func (s *CategoryService) GetByPublicID(ctx context.Context, publicID uuid.UUID) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	return ToCategoryResponse(category), nil
}

// List retrieves non-deleted categories, paginated
func (s *CategoryService) List(ctx context.Context, filter ListFilter) (*shared.Paginated[CategoryResponse], error) {
	domainFilter := filter.toDomain()

	categories, total, err := s.categoryRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = *ToCategoryResponse(&categories[i])
	}

	page := shared.NewPaginated(responses, total, domainFilter.Page, domainFilter.Limit())
	return &page, nil
}

// Update applies a partial update. Renaming re-derives the slug and
// re-checks it against other non-deleted categories.
func (s *CategoryService) Update(ctx context.Context, publicID uuid.UUID, req UpdateCategoryRequest) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	if req.Name.IsNull() {
		return nil, shared.NewValidationError("Category name cannot be null")
	}
	if name, ok := req.Name.Get(); ok {
		slug, err := s.slugGuard.Reserve(ctx, name, publicID)
		if err != nil {
			return nil, err
		}
		if err := category.Rename(name, slug); err != nil {
			return nil, err
		}
	}

	if active, ok := req.IsActive.Get(); ok {
		category.SetActive(active)
		category.MarkUpdated()
	}

	if req.Image != nil {
		url, err := s.uploader.UploadImage(ctx, uploads.FolderCategories, req.Image.Data, req.Image.ContentType)
		if err != nil {
			return nil, err
		}
		category.SetImage(url)
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	return ToCategoryResponse(category), nil
}

// Delete soft-deletes a category. The row stays in storage but disappears
// from listings and frees its slug for reuse.
func (s *CategoryService) Delete(ctx context.Context, publicID uuid.UUID) error {
	category, err := s.categoryRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return err
	}

	category.SoftDelete()
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return err
	}

	s.logger.Info("Category deleted", zap.String("uu_id", publicID.String()))
	return nil
}

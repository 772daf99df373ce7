package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/application/uploads"
	"github.com/myvegiz/backend/internal/domain/catalog"
	"github.com/myvegiz/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// MainCategoryService handles main category administration
type MainCategoryService struct {
	mainCategoryRepo catalog.MainCategoryRepository
	uploader         *uploads.Service
	slugGuard        shared.UniqueKeyGuard
	logger           *zap.Logger
}

// NewMainCategoryService creates a new MainCategoryService
func NewMainCategoryService(
	mainCategoryRepo catalog.MainCategoryRepository,
	uploader *uploads.Service,
	logger *zap.Logger,
) *MainCategoryService {
	return &MainCategoryService{
		mainCategoryRepo: mainCategoryRepo,
		uploader:         uploader,
		slugGuard: shared.UniqueKeyGuard{
			Derive:   shared.Slugify,
			Exists:   mainCategoryRepo.SlugExists,
			Conflict: shared.NewConflictError("Main category with this name already exists"),
		},
		logger: logger,
	}
}

// Create creates a new main category
func (s *MainCategoryService) Create(ctx context.Context, req CreateMainCategoryRequest) (*MainCategoryResponse, error) {
	slug, err := s.slugGuard.Reserve(ctx, req.Name, uuid.Nil)
	if err != nil {
		return nil, err
	}

	imageURL := ""
	if req.Image != nil {
		imageURL, err = s.uploader.UploadImage(ctx, uploads.FolderMainCategories, req.Image.Data, req.Image.ContentType)
		if err != nil {
			return nil, err
		}
	}

	mainCategory, err := catalog.NewMainCategory(req.Name, slug, imageURL)
	if err != nil {
		return nil, err
	}

	if err := s.mainCategoryRepo.Save(ctx, mainCategory); err != nil {
		return nil, err
	}

	s.logger.Info("Main category created",
		zap.String("uu_id", mainCategory.PublicID.String()),
		zap.String("slug", mainCategory.Slug))
	return ToMainCategoryResponse(mainCategory), nil
}

// GetByPublicID retrieves a non-deleted main category
func (s *MainCategoryService) GetByPublicID(ctx context.Context, publicID uuid.UUID) (*MainCategoryResponse, error) {
	mainCategory, err := s.mainCategoryRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	return ToMainCategoryResponse(mainCategory), nil
}

// List retrieves non-deleted main categories, paginated
func (s *MainCategoryService) List(ctx context.Context, filter ListFilter) (*shared.Paginated[MainCategoryResponse], error) {
	domainFilter := filter.toDomain()

	mainCategories, total, err := s.mainCategoryRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]MainCategoryResponse, len(mainCategories))
	for i := range mainCategories {
		responses[i] = *ToMainCategoryResponse(&mainCategories[i])
	}

	page := shared.NewPaginated(responses, total, domainFilter.Page, domainFilter.Limit())
	return &page, nil
}

// Update applies a partial update
func (s *MainCategoryService) Update(ctx context.Context, publicID uuid.UUID, req UpdateMainCategoryRequest) (*MainCategoryResponse, error) {
	mainCategory, err := s.mainCategoryRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	if req.Name.IsNull() {
		return nil, shared.NewValidationError("Main category name cannot be null")
	}
	if name, ok := req.Name.Get(); ok {
		slug, err := s.slugGuard.Reserve(ctx, name, publicID)
		if err != nil {
			return nil, err
		}
		if err := mainCategory.Rename(name, slug); err != nil {
			return nil, err
		}
	}

	if active, ok := req.IsActive.Get(); ok {
		mainCategory.SetActive(active)
		mainCategory.MarkUpdated()
	}

	if req.Image != nil {
		url, err := s.uploader.UploadImage(ctx, uploads.FolderMainCategories, req.Image.Data, req.Image.ContentType)
		if err != nil {
			return nil, err
		}
		mainCategory.SetImage(url)
	}

	if err := s.mainCategoryRepo.Save(ctx, mainCategory); err != nil {
		return nil, err
	}

	return ToMainCategoryResponse(mainCategory), nil
}

// Delete soft-deletes a main category
func (s *MainCategoryService) Delete(ctx context.Context, publicID uuid.UUID) error {
	mainCategory, err := s.mainCategoryRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return err
	}

	mainCategory.SoftDelete()
	if err := s.mainCategoryRepo.Save(ctx, mainCategory); err != nil {
		return err
	}

	s.logger.Info("Main category deleted", zap.String("uu_id", publicID.String()))
	return nil
}

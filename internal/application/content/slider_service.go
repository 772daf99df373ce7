package content

import (
	"context"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/application/uploads"
	"github.com/myvegiz/backend/internal/domain/content"
	"github.com/myvegiz/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// SliderService handles storefront banner administration
type SliderService struct {
	sliderRepo content.SliderRepository
	uploader   *uploads.Service
	logger     *zap.Logger
}

// NewSliderService creates a new SliderService
func NewSliderService(
	sliderRepo content.SliderRepository,
	uploader *uploads.Service,
	logger *zap.Logger,
) *SliderService {
	return &SliderService{
		sliderRepo: sliderRepo,
		uploader:   uploader,
		logger:     logger,
	}
}

// Create creates a slider. Mobile, tab and web images must all be present.
func (s *SliderService) Create(ctx context.Context, req CreateSliderRequest) (*SliderResponse, error) {
	if req.MobileImage == nil {
		return nil, shared.NewValidationError("Mobile image is required")
	}
	if req.TabImage == nil {
		return nil, shared.NewValidationError("Tab image is required")
	}
	if req.WebImage == nil {
		return nil, shared.NewValidationError("Web image is required")
	}

	mobileURL, err := s.uploader.UploadImage(ctx, uploads.FolderSliders, req.MobileImage.Data, req.MobileImage.ContentType)
	if err != nil {
		return nil, err
	}
	tabURL, err := s.uploader.UploadImage(ctx, uploads.FolderSliders, req.TabImage.Data, req.TabImage.ContentType)
	if err != nil {
		return nil, err
	}
	webURL, err := s.uploader.UploadImage(ctx, uploads.FolderSliders, req.WebImage.Data, req.WebImage.ContentType)
	if err != nil {
		return nil, err
	}

	slider, err := content.NewSlider(mobileURL, tabURL, webURL, req.Caption, req.IsActive)
	if err != nil {
		return nil, err
	}

	if err := s.sliderRepo.Save(ctx, slider); err != nil {
		return nil, err
	}

	s.logger.Info("Slider created", zap.String("uu_id", slider.PublicID.String()))
	return ToSliderResponse(slider), nil
}

// GetByPublicID retrieves a non-deleted slider
func (s *SliderService) GetByPublicID(ctx context.Context, publicID uuid.UUID) (*SliderResponse, error) {
	slider, err := s.sliderRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	return ToSliderResponse(slider), nil
}

// List retrieves non-deleted sliders, paginated
func (s *SliderService) List(ctx context.Context, filter ListFilter) (*shared.Paginated[SliderResponse], error) {
	domainFilter := filter.toDomain()

	sliders, total, err := s.sliderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]SliderResponse, len(sliders))
	for i := range sliders {
		responses[i] = *ToSliderResponse(&sliders[i])
	}

	page := shared.NewPaginated(responses, total, domainFilter.Page, domainFilter.Limit())
	return &page, nil
}

// ListForWeb retrieves active sliders for the storefront
func (s *SliderService) ListForWeb(ctx context.Context, filter ListFilter) (*shared.Paginated[SliderResponse], error) {
	filter.ActiveOnly = true
	return s.List(ctx, filter)
}

// Update applies a partial update; any provided image replaces its device
// slot, the others keep their current URL
func (s *SliderService) Update(ctx context.Context, publicID uuid.UUID, req UpdateSliderRequest) (*SliderResponse, error) {
	slider, err := s.sliderRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	if caption, ok := req.Caption.Get(); ok {
		slider.Caption = caption
		slider.MarkUpdated()
	}
	if active, ok := req.IsActive.Get(); ok {
		slider.SetActive(active)
		slider.MarkUpdated()
	}

	if req.MobileImage != nil {
		url, err := s.uploader.UploadImage(ctx, uploads.FolderSliders, req.MobileImage.Data, req.MobileImage.ContentType)
		if err != nil {
			return nil, err
		}
		slider.MobileImage = url
		slider.MarkUpdated()
	}
	if req.TabImage != nil {
		url, err := s.uploader.UploadImage(ctx, uploads.FolderSliders, req.TabImage.Data, req.TabImage.ContentType)
		if err != nil {
			return nil, err
		}
		slider.TabImage = url
		slider.MarkUpdated()
	}
	if req.WebImage != nil {
		url, err := s.uploader.UploadImage(ctx, uploads.FolderSliders, req.WebImage.Data, req.WebImage.ContentType)
		if err != nil {
			return nil, err
		}
		slider.WebImage = url
		slider.MarkUpdated()
	}

	if err := s.sliderRepo.Save(ctx, slider); err != nil {
		return nil, err
	}

	return ToSliderResponse(slider), nil
}

// Delete soft-deletes a slider
func (s *SliderService) Delete(ctx context.Context, publicID uuid.UUID) error {
	slider, err := s.sliderRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return err
	}

	slider.SoftDelete()
	if err := s.sliderRepo.Save(ctx, slider); err != nil {
		return err
	}

	s.logger.Info("Slider deleted", zap.String("uu_id", publicID.String()))
	return nil
}

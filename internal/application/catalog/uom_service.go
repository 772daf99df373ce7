package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/domain/catalog"
	"github.com/myvegiz/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// UOMService handles unit-of-measure administration. Both the name and the
// short name are unique among non-deleted units; the generated code needs
// no guard.
type UOMService struct {
	uomRepo        catalog.UOMRepository
	nameGuard      shared.UniqueKeyGuard
	shortNameGuard shared.UniqueKeyGuard
	logger         *zap.Logger
}

// NewUOMService creates a new UOMService
func NewUOMService(uomRepo catalog.UOMRepository, logger *zap.Logger) *UOMService {
	return &UOMService{
		uomRepo: uomRepo,
		nameGuard: shared.UniqueKeyGuard{
			Exists:   uomRepo.NameExists,
			Conflict: shared.NewConflictError("UOM with this name already exists"),
		},
		shortNameGuard: shared.UniqueKeyGuard{
			Exists:   uomRepo.ShortNameExists,
			Conflict: shared.NewConflictError("UOM with this short name already exists"),
		},
		logger: logger,
	}
}

// Create creates a new unit of measure with a generated code
func (s *UOMService) Create(ctx context.Context, req CreateUOMRequest) (*UOMResponse, error) {
	if _, err := s.nameGuard.Reserve(ctx, req.Name, uuid.Nil); err != nil {
		return nil, err
	}
	if _, err := s.shortNameGuard.Reserve(ctx, req.ShortName, uuid.Nil); err != nil {
		return nil, err
	}

	uom, err := catalog.NewUOM(req.Name, req.ShortName, req.Description)
	if err != nil {
		return nil, err
	}

	if err := s.uomRepo.Save(ctx, uom); err != nil {
		return nil, err
	}

	s.logger.Info("UOM created",
		zap.String("uu_id", uom.PublicID.String()),
		zap.String("code", uom.UOMCode))
	return ToUOMResponse(uom), nil
}

// GetByPublicID retrieves a non-deleted unit of measure
func (s *UOMService) GetByPublicID(ctx context.Context, publicID uuid.UUID) (*UOMResponse, error) {
	uom, err := s.uomRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	return ToUOMResponse(uom), nil
}

// List retrieves non-deleted units of measure, paginated
func (s *UOMService) List(ctx context.Context, filter ListFilter) (*shared.Paginated[UOMResponse], error) {
	domainFilter := filter.toDomain()

	uoms, total, err := s.uomRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]UOMResponse, len(uoms))
	for i := range uoms {
		responses[i] = *ToUOMResponse(&uoms[i])
	}

	page := shared.NewPaginated(responses, total, domainFilter.Page, domainFilter.Limit())
	return &page, nil
}

// Update applies a partial update. The generated code is stable across
// renames.
func (s *UOMService) Update(ctx context.Context, publicID uuid.UUID, req UpdateUOMRequest) (*UOMResponse, error) {
	uom, err := s.uomRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	if req.Name.IsNull() {
		return nil, shared.NewValidationError("UOM name cannot be null")
	}
	if req.ShortName.IsNull() {
		return nil, shared.NewValidationError("UOM short name cannot be null")
	}

	if name, ok := req.Name.Get(); ok {
		if _, err := s.nameGuard.Reserve(ctx, name, publicID); err != nil {
			return nil, err
		}
		if err := uom.Rename(name); err != nil {
			return nil, err
		}
	}
	if shortName, ok := req.ShortName.Get(); ok {
		if _, err := s.shortNameGuard.Reserve(ctx, shortName, publicID); err != nil {
			return nil, err
		}
		if err := uom.SetShortName(shortName); err != nil {
			return nil, err
		}
	}
	if v, ok := req.Description.Get(); ok || req.Description.IsNull() {
		uom.Description = v
		uom.MarkUpdated()
	}
	if active, ok := req.IsActive.Get(); ok {
		uom.SetActive(active)
		uom.MarkUpdated()
	}

	if err := s.uomRepo.Save(ctx, uom); err != nil {
		return nil, err
	}

	return ToUOMResponse(uom), nil
}

// Delete soft-deletes a unit of measure, freeing its name and short name
// for new rows
func (s *UOMService) Delete(ctx context.Context, publicID uuid.UUID) error {
	uom, err := s.uomRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return err
	}

	uom.SoftDelete()
	if err := s.uomRepo.Save(ctx, uom); err != nil {
		return err
	}

	s.logger.Info("UOM deleted", zap.String("uu_id", publicID.String()))
	return nil
}

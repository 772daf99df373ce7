package geo

import (
	"context"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/domain/geo"
	"github.com/myvegiz/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ZoneService handles delivery zone administration and resolves which
// zones cover a geographic point
type ZoneService struct {
	zoneRepo geo.ZoneRepository
	logger   *zap.Logger
}

// NewZoneService creates a new ZoneService
func NewZoneService(zoneRepo geo.ZoneRepository, logger *zap.Logger) *ZoneService {
	return &ZoneService{
		zoneRepo: zoneRepo,
		logger:   logger,
	}
}

// Create creates a new delivery zone
func (s *ZoneService) Create(ctx context.Context, req CreateZoneRequest) (*ZoneResponse, error) {
	zone, err := geo.NewZone(req.Name, req.City, req.State, req.Polygon, req.IsDeliverable, req.IsActive)
	if err != nil {
		return nil, err
	}

	if err := s.zoneRepo.Save(ctx, zone); err != nil {
		return nil, err
	}

	s.logger.Info("Zone created",
		zap.String("uu_id", zone.PublicID.String()),
		zap.String("city", zone.City),
		zap.Int("vertices", len(zone.Polygon)))
	return ToZoneResponse(zone), nil
}

// GetByPublicID retrieves a non-deleted zone
func (s *ZoneService) GetByPublicID(ctx context.Context, publicID uuid.UUID) (*ZoneResponse, error) {
	zone, err := s.zoneRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	return ToZoneResponse(zone), nil
}

// List retrieves non-deleted zones, paginated
func (s *ZoneService) List(ctx context.Context, filter ListFilter) (*shared.Paginated[ZoneResponse], error) {
	domainFilter := filter.toDomain()

	zones, total, err := s.zoneRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]ZoneResponse, len(zones))
	for i := range zones {
		responses[i] = *ToZoneResponse(&zones[i])
	}

	page := shared.NewPaginated(responses, total, domainFilter.Page, domainFilter.Limit())
	return &page, nil
}

// Update applies a partial update. A new polygon fully replaces the old
// boundary.
func (s *ZoneService) Update(ctx context.Context, publicID uuid.UUID, req UpdateZoneRequest) (*ZoneResponse, error) {
	zone, err := s.zoneRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	if req.Name.IsNull() || req.City.IsNull() || req.State.IsNull() || req.Polygon.IsNull() {
		return nil, shared.NewValidationError("Zone fields cannot be null")
	}

	if name, ok := req.Name.Get(); ok {
		if name == "" {
			return nil, shared.NewValidationError("Zone name is required")
		}
		zone.ZoneName = name
		zone.MarkUpdated()
	}
	if city, ok := req.City.Get(); ok {
		if city == "" {
			return nil, shared.NewValidationError("City is required")
		}
		zone.City = city
		zone.MarkUpdated()
	}
	if state, ok := req.State.Get(); ok {
		if state == "" {
			return nil, shared.NewValidationError("State is required")
		}
		zone.State = state
		zone.MarkUpdated()
	}
	if polygon, ok := req.Polygon.Get(); ok {
		if err := zone.SetPolygon(polygon); err != nil {
			return nil, err
		}
	}
	if deliverable, ok := req.IsDeliverable.Get(); ok {
		zone.IsDeliverable = deliverable
		zone.MarkUpdated()
	}
	if active, ok := req.IsActive.Get(); ok {
		zone.SetActive(active)
		zone.MarkUpdated()
	}

	if err := s.zoneRepo.Save(ctx, zone); err != nil {
		return nil, err
	}

	return ToZoneResponse(zone), nil
}

// Delete soft-deletes a zone. Deleted zones never resolve for any point.
func (s *ZoneService) Delete(ctx context.Context, publicID uuid.UUID) error {
	zone, err := s.zoneRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return err
	}

	zone.SoftDelete()
	if err := s.zoneRepo.Save(ctx, zone); err != nil {
		return err
	}

	s.logger.Info("Zone deleted", zap.String("uu_id", publicID.String()))
	return nil
}

// ResolveByLocation returns every active zone whose polygon contains the
// point. Zones with malformed polygons are skipped rather than failing
// the whole lookup. An empty result is a valid answer, not an error.
func (s *ZoneService) ResolveByLocation(ctx context.Context, lat, lng float64) ([]ResolvedZoneResponse, error) {
	if lat < -90 || lat > 90 {
		return nil, shared.NewValidationError("Latitude must be between -90 and 90")
	}
	if lng < -180 || lng > 180 {
		return nil, shared.NewValidationError("Longitude must be between -180 and 180")
	}

	candidates, err := s.zoneRepo.FindCandidates(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]ResolvedZoneResponse, 0)
	for i := range candidates {
		zone := &candidates[i]
		if len(zone.Polygon) < geo.MinPolygonVertices {
			s.logger.Warn("Zone skipped during resolution: malformed polygon",
				zap.String("uu_id", zone.PublicID.String()),
				zap.Int("vertices", len(zone.Polygon)))
			continue
		}
		if zone.Contains(lat, lng) {
			matches = append(matches, ResolvedZoneResponse{
				PublicID:      zone.PublicID,
				ZoneName:      zone.ZoneName,
				City:          zone.City,
				State:         zone.State,
				IsDeliverable: zone.IsDeliverable,
			})
		}
	}

	return matches, nil
}

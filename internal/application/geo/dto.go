package geo

import (
	"time"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/domain/geo"
	"github.com/myvegiz/backend/internal/domain/shared"
)

// ListFilter carries pagination options for zone listings
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

// CreateZoneRequest represents a request to create a delivery zone
type CreateZoneRequest struct {
	Name          string
	City          string
	State         string
	Polygon       geo.Polygon
	IsDeliverable bool
	IsActive      bool
}

// UpdateZoneRequest represents a partial zone update
type UpdateZoneRequest struct {
	Name          shared.PatchField[string]
	City          shared.PatchField[string]
	State         shared.PatchField[string]
	Polygon       shared.PatchField[geo.Polygon]
	IsDeliverable shared.PatchField[bool]
	IsActive      shared.PatchField[bool]
}

// ZoneResponse represents a delivery zone in API responses
type ZoneResponse struct {
	ID            uint        `json:"id"`
	PublicID      uuid.UUID   `json:"uu_id"`
	ZoneName      string      `json:"zone_name"`
	City          string      `json:"city"`
	State         string      `json:"state"`
	Polygon       geo.Polygon `json:"polygon"`
	IsDeliverable bool        `json:"is_deliverable"`
	IsActive      bool        `json:"is_active"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// ToZoneResponse maps a domain zone to its response form
func ToZoneResponse(z *geo.Zone) *ZoneResponse {
	return &ZoneResponse{
		ID:            z.ID,
		PublicID:      z.PublicID,
		ZoneName:      z.ZoneName,
		City:          z.City,
		State:         z.State,
		Polygon:       z.Polygon,
		IsDeliverable: z.IsDeliverable,
		IsActive:      z.IsActive,
		CreatedAt:     z.CreatedAt,
		UpdatedAt:     z.UpdatedAt,
	}
}

// ResolvedZoneResponse is one zone covering a queried point
type ResolvedZoneResponse struct {
	PublicID      uuid.UUID `json:"uu_id"`
	ZoneName      string    `json:"zone_name"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	IsDeliverable bool      `json:"is_deliverable"`
}

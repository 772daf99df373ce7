package geo

import (
	"context"
	"encoding/json"

	"github.com/myvegiz/backend/internal/domain/shared"
)

// MinPolygonVertices is the smallest vertex count that makes a polygon
const MinPolygonVertices = 3

// Vertex is a single polygon corner in floating-point degrees
type Vertex struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// UnmarshalJSON requires both the lat and the lng key on every vertex. A
// missing key would otherwise decode as 0 and silently shift the boundary.
func (v *Vertex) UnmarshalJSON(data []byte) error {
	var raw struct {
		Lat *float64 `json:"lat"`
		Lng *float64 `json:"lng"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Lat == nil || raw.Lng == nil {
		return shared.NewValidationError("Each point must contain lat & lng")
	}
	v.Lat = *raw.Lat
	v.Lng = *raw.Lng
	return nil
}

// Polygon is an ordered cycle of vertices describing a delivery boundary
type Polygon []Vertex

// Zone represents a geographic delivery-coverage polygon
type Zone struct {
	shared.SoftDeleteEntity
	ZoneName      string  `gorm:"type:varchar(255);not null" json:"zone_name"`
	City          string  `gorm:"type:varchar(255);not null;index" json:"city"`
	State         string  `gorm:"type:varchar(255);not null;index" json:"state"`
	Polygon       Polygon `gorm:"serializer:json;not null" json:"polygon"`
	IsDeliverable bool    `gorm:"not null;default:false" json:"is_deliverable"`
}

// TableName returns the table name for GORM
func (Zone) TableName() string {
	return "zones"
}

// NewZone creates a new delivery zone
func NewZone(name, city, state string, polygon Polygon, deliverable, active bool) (*Zone, error) {
	if name == "" {
		return nil, shared.NewValidationError("Zone name is required")
	}
	if city == "" {
		return nil, shared.NewValidationError("City is required")
	}
	if state == "" {
		return nil, shared.NewValidationError("State is required")
	}
	if err := polygon.Validate(); err != nil {
		return nil, err
	}

	zone := &Zone{
		SoftDeleteEntity: shared.NewSoftDeleteEntity(),
		ZoneName:         name,
		City:             city,
		State:            state,
		Polygon:          polygon,
		IsDeliverable:    deliverable,
	}
	zone.IsActive = active
	return zone, nil
}

// SetPolygon replaces the zone boundary
func (z *Zone) SetPolygon(polygon Polygon) error {
	if err := polygon.Validate(); err != nil {
		return err
	}
	z.Polygon = polygon
	z.MarkUpdated()
	return nil
}

// Validate checks the polygon is well-formed: at least three vertices
func (p Polygon) Validate() error {
	if len(p) < MinPolygonVertices {
		return shared.NewValidationError("Polygon must have at least 3 points")
	}
	return nil
}

// Contains reports whether the point (lat, lng) lies inside the polygon.
// See pointinpolygon.go for the algorithm and its edge-case policy.
func (z *Zone) Contains(lat, lng float64) bool {
	return z.Polygon.Contains(lat, lng)
}

// ZoneRepository defines the interface for zone persistence
type ZoneRepository interface {
	shared.Repository[Zone]

	// FindByID finds a non-deleted zone by internal id (FK checks)
	FindByID(ctx context.Context, id uint) (*Zone, error)

	// FindCandidates returns every zone eligible for point resolution:
	// is_delete = false and is_active = true, no pagination
	FindCandidates(ctx context.Context) ([]Zone, error)
}

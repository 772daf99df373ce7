package shared

import (
	"time"

	"github.com/google/uuid"
)

// Entity is the base interface for all domain entities
type Entity interface {
	GetID() uint
	GetPublicID() uuid.UUID
	GetCreatedAt() time.Time
	GetUpdatedAt() time.Time
}

// SoftDeleteEntity provides common fields for all soft-deletable entities.
// ID is the internal sequential row id; PublicID is the random surrogate
// identifier exposed in URLs and query parameters instead of ID.
type SoftDeleteEntity struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	PublicID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"uu_id"`
	IsActive  bool       `gorm:"not null;default:true" json:"is_active"`
	IsDelete  bool       `gorm:"not null;default:false;index" json:"is_delete"`
	IsUpdate  bool       `gorm:"not null;default:false" json:"is_update"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at"`
}

// NewSoftDeleteEntity creates a base entity with a fresh surrogate identifier
func NewSoftDeleteEntity() SoftDeleteEntity {
	now := time.Now()
	return SoftDeleteEntity{
		PublicID:  uuid.New(),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// GetID returns the internal sequential id
func (e *SoftDeleteEntity) GetID() uint {
	return e.ID
}

// GetPublicID returns the external-facing surrogate identifier
func (e *SoftDeleteEntity) GetPublicID() uuid.UUID {
	return e.PublicID
}

// GetCreatedAt returns the creation timestamp
func (e *SoftDeleteEntity) GetCreatedAt() time.Time {
	return e.CreatedAt
}

// GetUpdatedAt returns the last update timestamp
func (e *SoftDeleteEntity) GetUpdatedAt() time.Time {
	return e.UpdatedAt
}

// IsDeleted reports whether the entity has been soft-deleted
func (e *SoftDeleteEntity) IsDeleted() bool {
	return e.IsDelete
}

// SoftDelete marks the entity logically deleted. The row is never removed;
// deleted rows are excluded from listings and uniqueness checks, so the
// entity's derived keys become reusable by new rows.
func (e *SoftDeleteEntity) SoftDelete() {
	now := time.Now()
	e.IsDelete = true
	e.IsActive = false
	e.DeletedAt = &now
}

// MarkUpdated flags the entity as mutated and bumps the update timestamp
func (e *SoftDeleteEntity) MarkUpdated() {
	e.IsUpdate = true
	e.UpdatedAt = time.Now()
}

// SetActive toggles the active flag
func (e *SoftDeleteEntity) SetActive(active bool) {
	e.IsActive = active
}

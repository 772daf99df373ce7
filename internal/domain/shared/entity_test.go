package shared

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewSoftDeleteEntity(t *testing.T) {
	e := NewSoftDeleteEntity()

	assert.NotEqual(t, uuid.Nil, e.PublicID)
	assert.True(t, e.IsActive)
	assert.False(t, e.IsDelete)
	assert.False(t, e.IsUpdate)
	assert.Nil(t, e.DeletedAt)
}

func TestSoftDeleteEntity_SoftDelete(t *testing.T) {
	e := NewSoftDeleteEntity()

	e.SoftDelete()

	assert.True(t, e.IsDelete)
	assert.False(t, e.IsActive)
	assert.NotNil(t, e.DeletedAt)
}

func TestSoftDeleteEntity_FreshSurrogatePerEntity(t *testing.T) {
	a := NewSoftDeleteEntity()
	b := NewSoftDeleteEntity()

	assert.NotEqual(t, a.PublicID, b.PublicID)
}

func TestSoftDeleteEntity_MarkUpdated(t *testing.T) {
	e := NewSoftDeleteEntity()
	before := e.UpdatedAt

	e.MarkUpdated()

	assert.True(t, e.IsUpdate)
	assert.False(t, e.UpdatedAt.Before(before))
}

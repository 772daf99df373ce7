package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	c, err := NewCategory("Leafy Greens", "leafy-greens", "https://img.example.com/leafy.png")

	require.NoError(t, err)
	assert.Equal(t, "Leafy Greens", c.CategoryName)
	assert.Equal(t, "leafy-greens", c.Slug)
	assert.NotEqual(t, uuid.Nil, c.PublicID)
	assert.True(t, c.IsActive)
	assert.False(t, c.IsDelete)
}

func TestNewCategory_EmptyName(t *testing.T) {
	_, err := NewCategory("", "x", "")

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION", domainErr.Code)
}

func TestCategory_Rename(t *testing.T) {
	c, err := NewCategory("Leafy Greens", "leafy-greens", "")
	require.NoError(t, err)

	require.NoError(t, c.Rename("Root Vegetables", "root-vegetables"))

	assert.Equal(t, "Root Vegetables", c.CategoryName)
	assert.Equal(t, "root-vegetables", c.Slug)
	assert.True(t, c.IsUpdate)
}

func TestCategory_SoftDelete(t *testing.T) {
	c, err := NewCategory("Leafy Greens", "leafy-greens", "")
	require.NoError(t, err)

	c.SoftDelete()

	assert.True(t, c.IsDelete)
	assert.False(t, c.IsActive)
	require.NotNil(t, c.DeletedAt)
	// The slug stays in storage so history survives; only the filters on
	// is_delete make it reusable by new rows.
	assert.Equal(t, "leafy-greens", c.Slug)
}

func TestNewSubCategory(t *testing.T) {
	s, err := NewSubCategory(4, "Leafy", "leafy", "")

	require.NoError(t, err)
	assert.Equal(t, uint(4), s.CategoryID)
	assert.Equal(t, "leafy", s.Slug)
}

func TestNewSubCategory_RequiresParent(t *testing.T) {
	_, err := NewSubCategory(0, "Leafy", "leafy", "")
	assert.Error(t, err)
}

func TestSubCategory_Reparent(t *testing.T) {
	s, err := NewSubCategory(4, "Leafy", "leafy", "")
	require.NoError(t, err)

	require.NoError(t, s.Reparent(9))
	assert.Equal(t, uint(9), s.CategoryID)

	assert.Error(t, s.Reparent(0))
}

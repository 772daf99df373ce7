package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSortOrder(t *testing.T) {
	assert.Equal(t, "ASC", validateSortOrder("asc"))
	assert.Equal(t, "ASC", validateSortOrder(" ASC "))
	assert.Equal(t, "DESC", validateSortOrder("desc"))
	assert.Equal(t, "DESC", validateSortOrder(""))
	assert.Equal(t, "DESC", validateSortOrder("sideways"))
}

func TestValidateSortField(t *testing.T) {
	allowed := map[string]bool{"slug": true}

	assert.Equal(t, "slug", validateSortField("slug", allowed))
	assert.Equal(t, "created_at", validateSortField("created_at", allowed))
	assert.Equal(t, "created_at", validateSortField("", allowed))

	// injection attempts fall back to the default
	assert.Equal(t, "created_at", validateSortField("slug; DROP TABLE users", allowed))
	assert.Equal(t, "created_at", validateSortField("password", allowed))
}

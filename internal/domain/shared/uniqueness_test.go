package shared

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keySet is an in-memory KeyExistsFunc backed by key -> owner public id
type keySet map[string]uuid.UUID

func (s keySet) exists(_ context.Context, key string, excludePublicID uuid.UUID) (bool, error) {
	owner, ok := s[key]
	if !ok {
		return false, nil
	}
	return owner != excludePublicID, nil
}

func TestUniqueKeyGuard_Reserve_Fresh(t *testing.T) {
	guard := UniqueKeyGuard{
		Derive:   Slugify,
		Exists:   keySet{}.exists,
		Conflict: NewConflictError("Category already exists"),
	}

	slug, err := guard.Reserve(context.Background(), "Leafy Greens", uuid.Nil)

	require.NoError(t, err)
	assert.Equal(t, "leafy-greens", slug)
}

func TestUniqueKeyGuard_Reserve_Conflict(t *testing.T) {
	conflict := NewConflictError("Category already exists")
	existing := keySet{"leafy-greens": uuid.New()}
	guard := UniqueKeyGuard{Derive: Slugify, Exists: existing.exists, Conflict: conflict}

	// A different name normalizing to the same slug still conflicts
	_, err := guard.Reserve(context.Background(), "LEAFY---GREENS", uuid.Nil)

	assert.Equal(t, conflict, err)
}

func TestUniqueKeyGuard_Reserve_SelfExcluded(t *testing.T) {
	selfID := uuid.New()
	existing := keySet{"leafy-greens": selfID}
	guard := UniqueKeyGuard{Derive: Slugify, Exists: existing.exists}

	// Updating the row that already owns the slug is not a conflict
	slug, err := guard.Reserve(context.Background(), "Leafy Greens", selfID)

	require.NoError(t, err)
	assert.Equal(t, "leafy-greens", slug)
}

func TestUniqueKeyGuard_Reserve_OtherRowStillConflicts(t *testing.T) {
	// Self-exclusion is by identifier, not by slug equality: a different row
	// holding the same slug must conflict even during an update.
	existing := keySet{"leafy-greens": uuid.New()}
	guard := UniqueKeyGuard{Derive: Slugify, Exists: existing.exists}

	_, err := guard.Reserve(context.Background(), "Leafy Greens", uuid.New())

	assert.Equal(t, ErrAlreadyExists, err)
}

func TestUniqueKeyGuard_Reserve_VerbatimKey(t *testing.T) {
	existing := keySet{"a@b.com": uuid.New()}
	conflict := NewConflictError("Email already exists")
	guard := UniqueKeyGuard{Exists: existing.exists, Conflict: conflict}

	_, err := guard.Reserve(context.Background(), "a@b.com", uuid.Nil)
	assert.Equal(t, conflict, err)

	key, err := guard.Reserve(context.Background(), "c@d.com", uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, "c@d.com", key)
}

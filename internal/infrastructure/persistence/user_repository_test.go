package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/domain/identity"
	"github.com/myvegiz/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, repo *GormUserRepository, email, contact string) *identity.User {
	t.Helper()
	user, err := identity.NewUser("Asha", email, contact, "secret1", false)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), user))
	return user
}

func TestGormUserRepository_FindActiveByEmail(t *testing.T) {
	repo := NewGormUserRepository(newTestDB(t))
	seedUser(t, repo, "asha@example.com", "9876543210")

	user, err := repo.FindActiveByEmail(context.Background(), " Asha@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", user.Email)
}

func TestGormUserRepository_FindActiveByEmail_InactiveHidden(t *testing.T) {
	repo := NewGormUserRepository(newTestDB(t))
	user := seedUser(t, repo, "asha@example.com", "")
	user.SetActive(false)
	require.NoError(t, repo.Save(context.Background(), user))

	_, err := repo.FindActiveByEmail(context.Background(), "asha@example.com")
	assert.Equal(t, shared.ErrNotFound, err)
}

func TestGormUserRepository_EmailExists(t *testing.T) {
	repo := NewGormUserRepository(newTestDB(t))
	user := seedUser(t, repo, "asha@example.com", "9876543210")

	taken, err := repo.EmailExists(context.Background(), "Asha@Example.com", uuid.Nil)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.EmailExists(context.Background(), "asha@example.com", user.PublicID)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestGormUserRepository_EmailFreedBySoftDelete(t *testing.T) {
	repo := NewGormUserRepository(newTestDB(t))
	user := seedUser(t, repo, "asha@example.com", "")

	user.SoftDelete()
	require.NoError(t, repo.Save(context.Background(), user))

	taken, err := repo.EmailExists(context.Background(), "asha@example.com", uuid.Nil)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestGormUserRepository_ContactExists(t *testing.T) {
	repo := NewGormUserRepository(newTestDB(t))
	seedUser(t, repo, "asha@example.com", "9876543210")

	taken, err := repo.ContactExists(context.Background(), "9876543210", uuid.Nil)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.ContactExists(context.Background(), "9999999999", uuid.Nil)
	require.NoError(t, err)
	assert.False(t, taken)
}

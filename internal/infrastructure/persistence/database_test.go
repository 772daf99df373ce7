package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDB builds a GORM handle over a mocked postgres connection for
// asserting the SQL the repositories emit
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func TestGormCategoryRepository_SlugExists_FiltersDeleted(t *testing.T) {
	gormDB, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormCategoryRepository(gormDB)

	rows := sqlmock.NewRows([]string{"count"}).AddRow(1)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "categories" WHERE is_delete = \$1 AND slug = \$2`).
		WithArgs(false, "leafy-greens").
		WillReturnRows(rows)

	taken, err := repo.SlugExists(context.Background(), "leafy-greens", uuid.Nil)

	require.NoError(t, err)
	assert.True(t, taken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormCategoryRepository_SlugExists_ExcludesRow(t *testing.T) {
	gormDB, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormCategoryRepository(gormDB)
	exclude := uuid.New()

	rows := sqlmock.NewRows([]string{"count"}).AddRow(0)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "categories" WHERE is_delete = \$1 AND slug = \$2 AND public_id <> \$3`).
		WithArgs(false, "leafy-greens", exclude).
		WillReturnRows(rows)

	taken, err := repo.SlugExists(context.Background(), "leafy-greens", exclude)

	require.NoError(t, err)
	assert.False(t, taken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepository_FindByPublicID_NotFound(t *testing.T) {
	gormDB, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormUserRepository(gormDB)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE is_delete = \$1 AND public_id = \$2 ORDER BY .* LIMIT .*`).
		WithArgs(false, id, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByPublicID(context.Background(), id)

	assert.Equal(t, shared.ErrNotFound, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

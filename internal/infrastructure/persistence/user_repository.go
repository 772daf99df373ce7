package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/domain/identity"
	"github.com/myvegiz/backend/internal/domain/shared"
	"gorm.io/gorm"
)

var userSortFields = map[string]bool{
	"name":  true,
	"email": true,
}

// GormUserRepository implements UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindByPublicID finds a non-deleted user by its surrogate identifier
func (r *GormUserRepository) FindByPublicID(ctx context.Context, publicID uuid.UUID) (*identity.User, error) {
	var user identity.User
	err := scopeAlive(r.db.WithContext(ctx)).
		First(&user, "public_id = ?", publicID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByID finds a non-deleted user by the internal id carried in token
// claims
func (r *GormUserRepository) FindByID(ctx context.Context, id uint) (*identity.User, error) {
	var user identity.User
	err := scopeAlive(r.db.WithContext(ctx)).
		First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindActiveByEmail finds an active, non-deleted user for login
func (r *GormUserRepository) FindActiveByEmail(ctx context.Context, email string) (*identity.User, error) {
	var user identity.User
	err := scopeAlive(r.db.WithContext(ctx)).
		Where("email = ? AND is_active = ?", strings.ToLower(strings.TrimSpace(email)), true).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindAll finds non-deleted users matching the filter
func (r *GormUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, int64, error) {
	total, err := countFiltered(r.db.WithContext(ctx).Model(&identity.User{}), filter)
	if err != nil {
		return nil, 0, err
	}

	var users []identity.User
	query := applyFilter(r.db.WithContext(ctx).Model(&identity.User{}), filter, userSortFields)
	if err := query.Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// Save inserts or updates a user
func (r *GormUserRepository) Save(ctx context.Context, user *identity.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// EmailExists reports whether the email is held by another non-deleted user
func (r *GormUserRepository) EmailExists(ctx context.Context, email string, excludePublicID uuid.UUID) (bool, error) {
	return r.fieldExists(ctx, "email", strings.ToLower(strings.TrimSpace(email)), excludePublicID)
}

// ContactExists reports whether the contact number is held by another
// non-deleted user
func (r *GormUserRepository) ContactExists(ctx context.Context, contact string, excludePublicID uuid.UUID) (bool, error) {
	return r.fieldExists(ctx, "contact", contact, excludePublicID)
}

func (r *GormUserRepository) fieldExists(ctx context.Context, column, value string, excludePublicID uuid.UUID) (bool, error) {
	query := scopeAlive(r.db.WithContext(ctx).Model(&identity.User{})).
		Where(column+" = ?", value)
	if excludePublicID != uuid.Nil {
		query = query.Where("public_id <> ?", excludePublicID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

package identity

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/application/uploads"
	"github.com/myvegiz/backend/internal/domain/identity"
	"github.com/myvegiz/backend/internal/domain/shared"
	"github.com/myvegiz/backend/internal/infrastructure/auth"
	"github.com/myvegiz/backend/internal/infrastructure/config"
	"github.com/myvegiz/backend/internal/infrastructure/storage"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// testJWTService builds a real token service with short-lived test secrets
func testJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-access-secret-at-least-32-chars!!",
		RefreshSecret:          "test-refresh-secret-at-least-32-chars!",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "myvegiz-test",
	})
}

// testUploader builds an upload service backed by the in-memory stub
func testUploader() *uploads.Service {
	return uploads.NewService(storage.NewStubImageStorage(), config.UploadConfig{
		MaxSizeBytes: 1 << 20,
		AllowedTypes: []string{"image/jpeg", "image/jpg", "image/png"},
	}, zap.NewNop())
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByPublicID(ctx context.Context, publicID uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, publicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]identity.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindActiveByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string, excludePublicID uuid.UUID) (bool, error) {
	args := m.Called(ctx, email, excludePublicID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ContactExists(ctx context.Context, contact string, excludePublicID uuid.UUID) (bool, error) {
	args := m.Called(ctx, contact, excludePublicID)
	return args.Bool(0), args.Error(1)
}

package content

import (
	"context"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/application/uploads"
	"github.com/myvegiz/backend/internal/domain/content"
	"github.com/myvegiz/backend/internal/domain/shared"
	"github.com/myvegiz/backend/internal/infrastructure/config"
	"github.com/myvegiz/backend/internal/infrastructure/storage"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// testUploader builds an upload service backed by the in-memory stub
func testUploader() *uploads.Service {
	return uploads.NewService(storage.NewStubImageStorage(), config.UploadConfig{
		MaxSizeBytes: 1 << 20,
		AllowedTypes: []string{"image/jpeg", "image/jpg", "image/png"},
	}, zap.NewNop())
}

// MockSliderRepository is a mock implementation of SliderRepository
type MockSliderRepository struct {
	mock.Mock
}

func (m *MockSliderRepository) FindByPublicID(ctx context.Context, publicID uuid.UUID) (*content.Slider, error) {
	args := m.Called(ctx, publicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Slider), args.Error(1)
}

func (m *MockSliderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]content.Slider, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]content.Slider), args.Get(1).(int64), args.Error(2)
}

func (m *MockSliderRepository) Save(ctx context.Context, slider *content.Slider) error {
	args := m.Called(ctx, slider)
	return args.Error(0)
}

// MockEmailSettingRepository is a mock implementation of EmailSettingRepository
type MockEmailSettingRepository struct {
	mock.Mock
}

func (m *MockEmailSettingRepository) Get(ctx context.Context) (*content.EmailSetting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.EmailSetting), args.Error(1)
}

func (m *MockEmailSettingRepository) Save(ctx context.Context, settings *content.EmailSetting) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// MockMailer is a mock implementation of Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, settings *content.EmailSetting, to, subject, body string) error {
	args := m.Called(ctx, settings, to, subject, body)
	return args.Error(0)
}

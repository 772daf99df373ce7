package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/application/uploads"
	"github.com/myvegiz/backend/internal/domain/catalog"
	"github.com/myvegiz/backend/internal/domain/geo"
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

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindByPublicID(ctx context.Context, publicID uuid.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, publicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Category, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Category), args.Get(1).(int64), args.Error(2)
}

func (m *MockCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uint) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) SlugExists(ctx context.Context, slug string, excludePublicID uuid.UUID) (bool, error) {
	args := m.Called(ctx, slug, excludePublicID)
	return args.Bool(0), args.Error(1)
}

// MockMainCategoryRepository is a mock implementation of MainCategoryRepository
type MockMainCategoryRepository struct {
	mock.Mock
}

func (m *MockMainCategoryRepository) FindByPublicID(ctx context.Context, publicID uuid.UUID) (*catalog.MainCategory, error) {
	args := m.Called(ctx, publicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.MainCategory), args.Error(1)
}

func (m *MockMainCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.MainCategory, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.MainCategory), args.Get(1).(int64), args.Error(2)
}

func (m *MockMainCategoryRepository) Save(ctx context.Context, mainCategory *catalog.MainCategory) error {
	args := m.Called(ctx, mainCategory)
	return args.Error(0)
}

func (m *MockMainCategoryRepository) SlugExists(ctx context.Context, slug string, excludePublicID uuid.UUID) (bool, error) {
	args := m.Called(ctx, slug, excludePublicID)
	return args.Bool(0), args.Error(1)
}

// MockSubCategoryRepository is a mock implementation of SubCategoryRepository
type MockSubCategoryRepository struct {
	mock.Mock
}

func (m *MockSubCategoryRepository) FindByPublicID(ctx context.Context, publicID uuid.UUID) (*catalog.SubCategory, error) {
	args := m.Called(ctx, publicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.SubCategory), args.Error(1)
}

func (m *MockSubCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.SubCategory, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.SubCategory), args.Get(1).(int64), args.Error(2)
}

func (m *MockSubCategoryRepository) Save(ctx context.Context, subCategory *catalog.SubCategory) error {
	args := m.Called(ctx, subCategory)
	return args.Error(0)
}

func (m *MockSubCategoryRepository) FindByID(ctx context.Context, id uint) (*catalog.SubCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.SubCategory), args.Error(1)
}

func (m *MockSubCategoryRepository) FindByCategory(ctx context.Context, categoryID uint, filter shared.Filter) ([]catalog.SubCategory, int64, error) {
	args := m.Called(ctx, categoryID, filter)
	return args.Get(0).([]catalog.SubCategory), args.Get(1).(int64), args.Error(2)
}

func (m *MockSubCategoryRepository) SlugExistsInCategory(ctx context.Context, categoryID uint, slug string, excludePublicID uuid.UUID) (bool, error) {
	args := m.Called(ctx, categoryID, slug, excludePublicID)
	return args.Bool(0), args.Error(1)
}

// MockProductRepository is a mock implementation of ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByPublicID(ctx context.Context, publicID uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, publicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uint) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindForWeb(ctx context.Context, categoryID, subCategoryID *uint, filter shared.Filter) ([]catalog.Product, int64, error) {
	args := m.Called(ctx, categoryID, subCategoryID, filter)
	return args.Get(0).([]catalog.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) SlugExists(ctx context.Context, slug string, excludePublicID uuid.UUID) (bool, error) {
	args := m.Called(ctx, slug, excludePublicID)
	return args.Bool(0), args.Error(1)
}

// MockUOMRepository is a mock implementation of UOMRepository
type MockUOMRepository struct {
	mock.Mock
}

func (m *MockUOMRepository) FindByPublicID(ctx context.Context, publicID uuid.UUID) (*catalog.UOM, error) {
	args := m.Called(ctx, publicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.UOM), args.Error(1)
}

func (m *MockUOMRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.UOM, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.UOM), args.Get(1).(int64), args.Error(2)
}

func (m *MockUOMRepository) Save(ctx context.Context, uom *catalog.UOM) error {
	args := m.Called(ctx, uom)
	return args.Error(0)
}

func (m *MockUOMRepository) FindByID(ctx context.Context, id uint) (*catalog.UOM, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.UOM), args.Error(1)
}

func (m *MockUOMRepository) NameExists(ctx context.Context, name string, excludePublicID uuid.UUID) (bool, error) {
	args := m.Called(ctx, name, excludePublicID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUOMRepository) ShortNameExists(ctx context.Context, shortName string, excludePublicID uuid.UUID) (bool, error) {
	args := m.Called(ctx, shortName, excludePublicID)
	return args.Bool(0), args.Error(1)
}

// MockProductVariantRepository is a mock implementation of ProductVariantRepository
type MockProductVariantRepository struct {
	mock.Mock
}

func (m *MockProductVariantRepository) FindByPublicID(ctx context.Context, publicID uuid.UUID) (*catalog.ProductVariant, error) {
	args := m.Called(ctx, publicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ProductVariant), args.Error(1)
}

func (m *MockProductVariantRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.ProductVariant, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.ProductVariant), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductVariantRepository) Save(ctx context.Context, variant *catalog.ProductVariant) error {
	args := m.Called(ctx, variant)
	return args.Error(0)
}

func (m *MockProductVariantRepository) SaveBatch(ctx context.Context, variants []*catalog.ProductVariant) error {
	args := m.Called(ctx, variants)
	return args.Error(0)
}

func (m *MockProductVariantRepository) CombinationExists(ctx context.Context, productID, uomID, zoneID uint, excludePublicID uuid.UUID) (bool, error) {
	args := m.Called(ctx, productID, uomID, zoneID, excludePublicID)
	return args.Bool(0), args.Error(1)
}

// MockZoneRepository is a mock implementation of geo.ZoneRepository
type MockZoneRepository struct {
	mock.Mock
}

func (m *MockZoneRepository) FindByPublicID(ctx context.Context, publicID uuid.UUID) (*geo.Zone, error) {
	args := m.Called(ctx, publicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geo.Zone), args.Error(1)
}

func (m *MockZoneRepository) FindAll(ctx context.Context, filter shared.Filter) ([]geo.Zone, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]geo.Zone), args.Get(1).(int64), args.Error(2)
}

func (m *MockZoneRepository) Save(ctx context.Context, zone *geo.Zone) error {
	args := m.Called(ctx, zone)
	return args.Error(0)
}

func (m *MockZoneRepository) FindByID(ctx context.Context, id uint) (*geo.Zone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geo.Zone), args.Error(1)
}

func (m *MockZoneRepository) FindCandidates(ctx context.Context) ([]geo.Zone, error) {
	args := m.Called(ctx)
	return args.Get(0).([]geo.Zone), args.Error(1)
}

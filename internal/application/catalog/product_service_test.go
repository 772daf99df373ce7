package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/application/uploads"
	"github.com/myvegiz/backend/internal/domain/catalog"
	"github.com/myvegiz/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type productServiceMocks struct {
	productRepo *MockProductRepository
	catRepo     *MockCategoryRepository
	subRepo     *MockSubCategoryRepository
}

func newProductService() (*ProductService, productServiceMocks) {
	mocks := productServiceMocks{
		productRepo: new(MockProductRepository),
		catRepo:     new(MockCategoryRepository),
		subRepo:     new(MockSubCategoryRepository),
	}
	svc := NewProductService(mocks.productRepo, mocks.catRepo, mocks.subRepo, testUploader(), zap.NewNop())
	return svc, mocks
}

func TestProductService_Create(t *testing.T) {
	svc, m := newProductService()

	parent := parentCategory(t, 3)
	m.catRepo.On("FindByPublicID", mock.Anything, parent.PublicID).Return(parent, nil)
	m.productRepo.On("SlugExists", mock.Anything, "alphonso-mango", uuid.Nil).Return(false, nil)
	m.productRepo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil)

	resp, err := svc.Create(context.Background(), CreateProductRequest{
		CategoryPublicID: parent.PublicID,
		Name:             "Alphonso Mango",
		ShortName:        "Mango",
		ShortDescription: "Sweet seasonal mango",
		HSNCode:          "0804",
		Images: []uploads.Image{
			{Data: []byte("a"), ContentType: "image/jpeg"},
			{Data: []byte("b"), ContentType: "image/png"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, uint(3), resp.CategoryID)
	assert.Nil(t, resp.SubCategoryID)
	assert.Equal(t, "alphonso-mango", resp.Slug)
	require.Len(t, resp.Images, 2)
	assert.True(t, resp.Images[0].IsPrimary)
	assert.False(t, resp.Images[1].IsPrimary)
}

func TestProductService_Create_SubCategoryMismatch(t *testing.T) {
	svc, m := newProductService()

	parent := parentCategory(t, 3)
	foreign, err := catalog.NewSubCategory(99, "Citrus", "citrus", "")
	require.NoError(t, err)

	m.catRepo.On("FindByPublicID", mock.Anything, parent.PublicID).Return(parent, nil)
	m.subRepo.On("FindByPublicID", mock.Anything, foreign.PublicID).Return(foreign, nil)

	_, err = svc.Create(context.Background(), CreateProductRequest{
		CategoryPublicID:    parent.PublicID,
		SubCategoryPublicID: &foreign.PublicID,
		Name:                "Alphonso Mango",
		ShortName:           "Mango",
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION", domainErr.Code)
	m.productRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProductService_Update_DetachSubCategory(t *testing.T) {
	svc, m := newProductService()

	subID := uint(5)
	product, err := catalog.NewProduct(3, &subID, "Alphonso Mango", "Mango", "alphonso-mango")
	require.NoError(t, err)

	m.productRepo.On("FindByPublicID", mock.Anything, product.PublicID).Return(product, nil)
	m.productRepo.On("Save", mock.Anything, product).Return(nil)

	resp, err := svc.Update(context.Background(), product.PublicID, UpdateProductRequest{
		SubCategoryPublicID: shared.PatchField[uuid.UUID]{Set: true, Valid: false},
	})

	require.NoError(t, err)
	assert.Nil(t, resp.SubCategoryID)
}

func TestProductService_Update_Rename(t *testing.T) {
	svc, m := newProductService()

	product, err := catalog.NewProduct(3, nil, "Alphonso Mango", "Mango", "alphonso-mango")
	require.NoError(t, err)

	m.productRepo.On("FindByPublicID", mock.Anything, product.PublicID).Return(product, nil)
	m.productRepo.On("SlugExists", mock.Anything, "kesar-mango", product.PublicID).Return(false, nil)
	m.productRepo.On("Save", mock.Anything, product).Return(nil)

	resp, err := svc.Update(context.Background(), product.PublicID, UpdateProductRequest{
		Name: shared.Patch("Kesar Mango"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Kesar Mango", resp.ProductName)
	assert.Equal(t, "kesar-mango", resp.Slug)
}

func TestProductService_ListForWeb(t *testing.T) {
	svc, m := newProductService()

	parent := parentCategory(t, 3)
	product, err := catalog.NewProduct(3, nil, "Alphonso Mango", "Mango", "alphonso-mango")
	require.NoError(t, err)

	m.catRepo.On("FindByPublicID", mock.Anything, parent.PublicID).Return(parent, nil)
	m.productRepo.On("FindForWeb", mock.Anything,
		mock.MatchedBy(func(id *uint) bool { return id != nil && *id == 3 }),
		(*uint)(nil),
		mock.MatchedBy(func(f shared.Filter) bool { return f.ActiveOnly }),
	).Return([]catalog.Product{*product}, int64(1), nil)

	page, err := svc.ListForWeb(context.Background(), &parent.PublicID, nil, ListFilter{})

	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, "alphonso-mango", page.Items[0].Slug)
}

func TestProductService_Delete(t *testing.T) {
	svc, m := newProductService()

	product, err := catalog.NewProduct(3, nil, "Alphonso Mango", "Mango", "alphonso-mango")
	require.NoError(t, err)

	m.productRepo.On("FindByPublicID", mock.Anything, product.PublicID).Return(product, nil)
	m.productRepo.On("Save", mock.Anything, product).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), product.PublicID))
	assert.True(t, product.IsDelete)
}

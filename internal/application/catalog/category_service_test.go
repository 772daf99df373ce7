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

func newCategoryService(repo *MockCategoryRepository) *CategoryService {
	return NewCategoryService(repo, testUploader(), zap.NewNop())
}

func TestCategoryService_Create(t *testing.T) {
	repo := new(MockCategoryRepository)
	svc := newCategoryService(repo)

	repo.On("SlugExists", mock.Anything, "fresh-fruits", uuid.Nil).Return(false, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Category")).Return(nil)

	resp, err := svc.Create(context.Background(), CreateCategoryRequest{
		Name:  "Fresh Fruits!",
		Image: &uploads.Image{Data: []byte("png"), ContentType: "image/png"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Fresh Fruits!", resp.CategoryName)
	assert.Equal(t, "fresh-fruits", resp.Slug)
	assert.NotEmpty(t, resp.CategoryImage)
	assert.NotEqual(t, uuid.Nil, resp.PublicID)
	repo.AssertExpectations(t)
}

func TestCategoryService_Create_SlugTaken(t *testing.T) {
	repo := new(MockCategoryRepository)
	svc := newCategoryService(repo)

	repo.On("SlugExists", mock.Anything, "fresh-fruits", uuid.Nil).Return(true, nil)

	_, err := svc.Create(context.Background(), CreateCategoryRequest{
		Name:  "Fresh Fruits",
		Image: &uploads.Image{Data: []byte("png"), ContentType: "image/png"},
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONFLICT", domainErr.Code)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCategoryService_Create_MissingImage(t *testing.T) {
	repo := new(MockCategoryRepository)
	svc := newCategoryService(repo)

	_, err := svc.Create(context.Background(), CreateCategoryRequest{Name: "Fresh Fruits"})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION", domainErr.Code)
	assert.Equal(t, "Category image is required", domainErr.Message)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCategoryService_Create_RejectsBadImage(t *testing.T) {
	repo := new(MockCategoryRepository)
	svc := newCategoryService(repo)

	repo.On("SlugExists", mock.Anything, "fresh-fruits", uuid.Nil).Return(false, nil)

	_, err := svc.Create(context.Background(), CreateCategoryRequest{
		Name:  "Fresh Fruits",
		Image: &uploads.Image{Data: []byte("gif"), ContentType: "image/gif"},
	})

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCategoryService_Update_Rename(t *testing.T) {
	repo := new(MockCategoryRepository)
	svc := newCategoryService(repo)

	existing, err := catalog.NewCategory("Fruits", "fruits", "")
	require.NoError(t, err)

	repo.On("FindByPublicID", mock.Anything, existing.PublicID).Return(existing, nil)
	// The row being renamed is excluded from the uniqueness check
	repo.On("SlugExists", mock.Anything, "exotic-fruits", existing.PublicID).Return(false, nil)
	repo.On("Save", mock.Anything, existing).Return(nil)

	resp, err := svc.Update(context.Background(), existing.PublicID, UpdateCategoryRequest{
		Name: shared.Patch("Exotic Fruits"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Exotic Fruits", resp.CategoryName)
	assert.Equal(t, "exotic-fruits", resp.Slug)
	repo.AssertExpectations(t)
}

func TestCategoryService_Update_NullNameRejected(t *testing.T) {
	repo := new(MockCategoryRepository)
	svc := newCategoryService(repo)

	existing, err := catalog.NewCategory("Fruits", "fruits", "")
	require.NoError(t, err)

	repo.On("FindByPublicID", mock.Anything, existing.PublicID).Return(existing, nil)

	_, err = svc.Update(context.Background(), existing.PublicID, UpdateCategoryRequest{
		Name: shared.PatchField[string]{Set: true, Valid: false},
	})

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCategoryService_Update_OmittedFieldsUntouched(t *testing.T) {
	repo := new(MockCategoryRepository)
	svc := newCategoryService(repo)

	existing, err := catalog.NewCategory("Fruits", "fruits", "http://img")
	require.NoError(t, err)

	repo.On("FindByPublicID", mock.Anything, existing.PublicID).Return(existing, nil)
	repo.On("Save", mock.Anything, existing).Return(nil)

	resp, err := svc.Update(context.Background(), existing.PublicID, UpdateCategoryRequest{
		IsActive: shared.Patch(false),
	})

	require.NoError(t, err)
	assert.Equal(t, "Fruits", resp.CategoryName)
	assert.Equal(t, "fruits", resp.Slug)
	assert.Equal(t, "http://img", resp.CategoryImage)
	assert.False(t, resp.IsActive)
	repo.AssertNotCalled(t, "SlugExists", mock.Anything, mock.Anything, mock.Anything)
}

func TestCategoryService_Delete(t *testing.T) {
	repo := new(MockCategoryRepository)
	svc := newCategoryService(repo)

	existing, err := catalog.NewCategory("Fruits", "fruits", "")
	require.NoError(t, err)

	repo.On("FindByPublicID", mock.Anything, existing.PublicID).Return(existing, nil)
	repo.On("Save", mock.Anything, existing).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), existing.PublicID))

	assert.True(t, existing.IsDelete)
	assert.False(t, existing.IsActive)
	assert.NotNil(t, existing.DeletedAt)
	repo.AssertExpectations(t)
}

func TestCategoryService_Delete_NotFound(t *testing.T) {
	repo := new(MockCategoryRepository)
	svc := newCategoryService(repo)

	id := uuid.New()
	repo.On("FindByPublicID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	err := svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, error(shared.ErrNotFound))
}

func TestCategoryService_List(t *testing.T) {
	repo := new(MockCategoryRepository)
	svc := newCategoryService(repo)

	first, err := catalog.NewCategory("Fruits", "fruits", "")
	require.NoError(t, err)
	second, err := catalog.NewCategory("Vegetables", "vegetables", "")
	require.NoError(t, err)

	repo.On("FindAll", mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
		return f.Page == 2 && f.PageSize == 1
	})).Return([]catalog.Category{*first, *second}, int64(5), nil)

	page, err := svc.List(context.Background(), ListFilter{Page: 2, PageSize: 1})

	require.NoError(t, err)
	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 5, page.TotalPages)
	assert.Len(t, page.Items, 2)
}

package identity

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/application/uploads"
	"github.com/myvegiz/backend/internal/domain/identity"
	"github.com/myvegiz/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUserService_Create_Success(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(repo, testUploader(), zap.NewNop())

	repo.On("EmailExists", mock.Anything, "asha@example.com", uuid.Nil).Return(false, nil)
	repo.On("ContactExists", mock.Anything, "9876543210", uuid.Nil).Return(false, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	result, err := service.Create(context.Background(), CreateUserRequest{
		Name:     "Asha",
		Email:    "Asha@Example.com",
		Contact:  "9876543210",
		Password: "secret1",
		IsAdmin:  true,
	})

	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", result.Email)
	assert.True(t, result.IsAdmin)
	assert.NotEqual(t, uuid.Nil, result.PublicID)
	repo.AssertExpectations(t)
}

func TestUserService_Create_EmailTaken(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(repo, testUploader(), zap.NewNop())

	repo.On("EmailExists", mock.Anything, "asha@example.com", uuid.Nil).Return(true, nil)

	_, err := service.Create(context.Background(), CreateUserRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret1",
	})

	require.Error(t, err)
	assert.Equal(t, "User with this email already exists", err.Error())
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUserService_Create_ContactTaken(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(repo, testUploader(), zap.NewNop())

	repo.On("EmailExists", mock.Anything, "asha@example.com", uuid.Nil).Return(false, nil)
	repo.On("ContactExists", mock.Anything, "9876543210", uuid.Nil).Return(true, nil)

	_, err := service.Create(context.Background(), CreateUserRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Contact:  "9876543210",
		Password: "secret1",
	})

	require.Error(t, err)
	assert.Equal(t, "User with this contact number already exists", err.Error())
}

func TestUserService_Create_WithProfileImage(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(repo, testUploader(), zap.NewNop())

	repo.On("EmailExists", mock.Anything, "asha@example.com", uuid.Nil).Return(false, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	result, err := service.Create(context.Background(), CreateUserRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret1",
		Image:    &uploads.Image{Data: []byte("png-bytes"), ContentType: "image/png"},
	})

	require.NoError(t, err)
	assert.Contains(t, result.ProfileImage, uploads.FolderProfiles+"/")
	assert.Contains(t, result.ProfileImage, ".png")
}

func TestUserService_Update_EmailConflictExcludesSelf(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(repo, testUploader(), zap.NewNop())
	user := testUser(t)

	repo.On("FindByPublicID", mock.Anything, user.PublicID).Return(user, nil)
	repo.On("EmailExists", mock.Anything, "new@example.com", user.PublicID).Return(false, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	result, err := service.Update(context.Background(), user.PublicID, UpdateUserRequest{
		Email: shared.Patch("New@Example.com"),
	})

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", result.Email)
	repo.AssertExpectations(t)
}

func TestUserService_Update_NullNameRejected(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(repo, testUploader(), zap.NewNop())
	user := testUser(t)

	repo.On("FindByPublicID", mock.Anything, user.PublicID).Return(user, nil)

	var req UpdateUserRequest
	require.NoError(t, req.Name.UnmarshalJSON([]byte("null")))

	_, err := service.Update(context.Background(), user.PublicID, req)

	require.Error(t, err)
	assert.Equal(t, "Name cannot be null", err.Error())
}

func TestUserService_Update_OmittedFieldsUntouched(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(repo, testUploader(), zap.NewNop())
	user := testUser(t)

	repo.On("FindByPublicID", mock.Anything, user.PublicID).Return(user, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	result, err := service.Update(context.Background(), user.PublicID, UpdateUserRequest{
		IsActive: shared.Patch(false),
	})

	require.NoError(t, err)
	assert.Equal(t, "Asha", result.Name)
	assert.Equal(t, "asha@example.com", result.Email)
	assert.False(t, result.IsActive)
	assert.True(t, result.IsAdmin)
}

func TestUserService_Update_PasswordRehashed(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(repo, testUploader(), zap.NewNop())
	user := testUser(t)

	repo.On("FindByPublicID", mock.Anything, user.PublicID).Return(user, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	_, err := service.Update(context.Background(), user.PublicID, UpdateUserRequest{
		Password: shared.Patch("another1"),
	})

	require.NoError(t, err)
	assert.True(t, user.CheckPassword("another1"))
	assert.False(t, user.CheckPassword("secret1"))
}

func TestUserService_Delete_SoftDeletes(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(repo, testUploader(), zap.NewNop())
	user := testUser(t)

	repo.On("FindByPublicID", mock.Anything, user.PublicID).Return(user, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, service.Delete(context.Background(), user.PublicID))

	assert.True(t, user.IsDelete)
	assert.False(t, user.IsActive)
	assert.NotNil(t, user.DeletedAt)
}

func TestUserService_List_Paginates(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(repo, testUploader(), zap.NewNop())
	user := testUser(t)

	repo.On("FindAll", mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
		return f.Page == 2 && f.PageSize == 1
	})).Return([]identity.User{*user}, int64(3), nil)

	page, err := service.List(context.Background(), ListFilter{Page: 2, PageSize: 1})

	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Items, 1)
}

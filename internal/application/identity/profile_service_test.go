package identity

import (
	"context"
	"testing"

	"github.com/myvegiz/backend/internal/application/uploads"
	"github.com/myvegiz/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProfileService_Get(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewProfileService(repo, testUploader(), zap.NewNop())
	user := testUser(t)

	repo.On("FindByID", mock.Anything, uint(7)).Return(user, nil)

	result, err := service.Get(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", result.Email)
}

func TestProfileService_Update_NameAndImage(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewProfileService(repo, testUploader(), zap.NewNop())
	user := testUser(t)

	repo.On("FindByID", mock.Anything, uint(7)).Return(user, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	result, err := service.Update(context.Background(), 7, UpdateProfileRequest{
		Name:  shared.Patch("Asha K"),
		Image: &uploads.Image{Data: []byte("jpeg-bytes"), ContentType: "image/jpeg"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Asha K", result.Name)
	assert.Contains(t, result.ProfileImage, uploads.FolderProfiles+"/")
	assert.True(t, user.IsUpdate)
}

func TestProfileService_Update_ContactConflict(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewProfileService(repo, testUploader(), zap.NewNop())
	user := testUser(t)

	repo.On("FindByID", mock.Anything, uint(7)).Return(user, nil)
	repo.On("ContactExists", mock.Anything, "9999999999", user.PublicID).Return(true, nil)

	_, err := service.Update(context.Background(), 7, UpdateProfileRequest{
		Contact: shared.Patch("9999999999"),
	})

	require.Error(t, err)
	assert.Equal(t, "User with this contact number already exists", err.Error())
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProfileService_ChangePassword(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewProfileService(repo, testUploader(), zap.NewNop())
	user := testUser(t)

	repo.On("FindByID", mock.Anything, uint(7)).Return(user, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	err := service.ChangePassword(context.Background(), 7, ChangePasswordRequest{
		CurrentPassword: "secret1",
		NewPassword:     "another1",
	})

	require.NoError(t, err)
	assert.True(t, user.CheckPassword("another1"))
}

func TestProfileService_ChangePassword_WrongCurrent(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewProfileService(repo, testUploader(), zap.NewNop())
	user := testUser(t)

	repo.On("FindByID", mock.Anything, uint(7)).Return(user, nil)

	err := service.ChangePassword(context.Background(), 7, ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "another1",
	})

	require.Error(t, err)
	assert.Equal(t, "Current password is incorrect", err.Error())
	assert.True(t, user.CheckPassword("secret1"))
}

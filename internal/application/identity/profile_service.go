package identity

import (
	"context"

	"github.com/myvegiz/backend/internal/application/uploads"
	"github.com/myvegiz/backend/internal/domain/identity"
	"github.com/myvegiz/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ProfileService handles the authenticated user's own profile. Callers
// address it by the internal id carried in the token claims.
type ProfileService struct {
	userRepo     identity.UserRepository
	uploader     *uploads.Service
	contactGuard shared.UniqueKeyGuard
	logger       *zap.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(
	userRepo identity.UserRepository,
	uploader *uploads.Service,
	logger *zap.Logger,
) *ProfileService {
	return &ProfileService{
		userRepo: userRepo,
		uploader: uploader,
		contactGuard: shared.UniqueKeyGuard{
			Exists:   userRepo.ContactExists,
			Conflict: shared.NewConflictError("User with this contact number already exists"),
		},
		logger: logger,
	}
}

// Get retrieves the current user's profile
func (s *ProfileService) Get(ctx context.Context, userID uint) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Update edits the current user's name, contact and profile image. Email
// and role changes go through the administrative user service.
func (s *ProfileService) Update(ctx context.Context, userID uint, req UpdateProfileRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name.IsNull() {
		return nil, shared.NewValidationError("Name cannot be null")
	}
	if name, ok := req.Name.Get(); ok {
		if name == "" {
			return nil, shared.NewValidationError("Name is required")
		}
		user.Name = name
		user.MarkUpdated()
	}

	if contact, ok := req.Contact.Get(); ok && contact != "" {
		if _, err := s.contactGuard.Reserve(ctx, contact, user.PublicID); err != nil {
			return nil, err
		}
		user.Contact = contact
		user.MarkUpdated()
	}

	if req.Image != nil {
		url, err := s.uploader.UploadImage(ctx, uploads.FolderProfiles, req.Image.Data, req.Image.ContentType)
		if err != nil {
			return nil, err
		}
		user.ProfileImage = url
		user.MarkUpdated()
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	return ToUserResponse(user), nil
}

// ChangePassword verifies the current password before setting the new one
func (s *ProfileService) ChangePassword(ctx context.Context, userID uint, req ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !user.CheckPassword(req.CurrentPassword) {
		return shared.NewDomainError("UNAUTHORIZED", "Current password is incorrect")
	}

	if err := user.SetPassword(req.NewPassword); err != nil {
		return err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	s.logger.Info("Password changed", zap.Uint("user_id", userID))
	return nil
}

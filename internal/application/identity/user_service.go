package identity

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/application/uploads"
	"github.com/myvegiz/backend/internal/domain/identity"
	"github.com/myvegiz/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// UserService handles administrative user management
type UserService struct {
	userRepo     identity.UserRepository
	uploader     *uploads.Service
	emailGuard   shared.UniqueKeyGuard
	contactGuard shared.UniqueKeyGuard
	logger       *zap.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo identity.UserRepository,
	uploader *uploads.Service,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		uploader: uploader,
		emailGuard: shared.UniqueKeyGuard{
			Derive:   func(email string) string { return strings.ToLower(strings.TrimSpace(email)) },
			Exists:   userRepo.EmailExists,
			Conflict: shared.NewConflictError("User with this email already exists"),
		},
		contactGuard: shared.UniqueKeyGuard{
			Exists:   userRepo.ContactExists,
			Conflict: shared.NewConflictError("User with this contact number already exists"),
		},
		logger: logger,
	}
}

// Create creates a new user. Email and contact must be free among
// non-deleted users.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	email, err := s.emailGuard.Reserve(ctx, req.Email, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if req.Contact != "" {
		if _, err := s.contactGuard.Reserve(ctx, req.Contact, uuid.Nil); err != nil {
			return nil, err
		}
	}

	user, err := identity.NewUser(req.Name, email, req.Contact, req.Password, req.IsAdmin)
	if err != nil {
		return nil, err
	}

	if req.Image != nil {
		url, err := s.uploader.UploadImage(ctx, uploads.FolderProfiles, req.Image.Data, req.Image.ContentType)
		if err != nil {
			return nil, err
		}
		user.ProfileImage = url
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User created",
		zap.String("uu_id", user.PublicID.String()),
		zap.String("email", user.Email))
	return ToUserResponse(user), nil
}

// GetByPublicID retrieves a non-deleted user
func (s *UserService) GetByPublicID(ctx context.Context, publicID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// List retrieves non-deleted users, paginated
func (s *UserService) List(ctx context.Context, filter ListFilter) (*shared.Paginated[UserResponse], error) {
	domainFilter := filter.toDomain()

	users, total, err := s.userRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *ToUserResponse(&users[i])
	}

	page := shared.NewPaginated(responses, total, domainFilter.Page, domainFilter.Limit())
	return &page, nil
}

// Update applies a partial update. Changing the email or contact re-checks
// uniqueness against other non-deleted users.
func (s *UserService) Update(ctx context.Context, publicID uuid.UUID, req UpdateUserRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByPublicID(ctx, publicID)
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

	if req.Email.IsNull() {
		return nil, shared.NewValidationError("Email cannot be null")
	}
	if email, ok := req.Email.Get(); ok {
		reserved, err := s.emailGuard.Reserve(ctx, email, publicID)
		if err != nil {
			return nil, err
		}
		if err := user.SetEmail(reserved); err != nil {
			return nil, err
		}
	}

	if contact, ok := req.Contact.Get(); ok && contact != "" {
		if _, err := s.contactGuard.Reserve(ctx, contact, publicID); err != nil {
			return nil, err
		}
		user.Contact = contact
		user.MarkUpdated()
	}

	if password, ok := req.Password.Get(); ok {
		if err := user.SetPassword(password); err != nil {
			return nil, err
		}
	}

	if isAdmin, ok := req.IsAdmin.Get(); ok {
		user.IsAdmin = isAdmin
		user.MarkUpdated()
	}

	if active, ok := req.IsActive.Get(); ok {
		user.SetActive(active)
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

// Delete soft-deletes a user. The email and contact become reusable by new
// accounts while the row stays in storage.
func (s *UserService) Delete(ctx context.Context, publicID uuid.UUID) error {
	user, err := s.userRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return err
	}

	user.SoftDelete()
	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	s.logger.Info("User deleted", zap.String("uu_id", publicID.String()))
	return nil
}

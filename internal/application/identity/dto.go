package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/application/uploads"
	"github.com/myvegiz/backend/internal/domain/identity"
	"github.com/myvegiz/backend/internal/domain/shared"
	"github.com/myvegiz/backend/internal/infrastructure/auth"
)

// ListFilter carries pagination options for user listings
type ListFilter struct {
	Page       int
	PageSize   int
	ActiveOnly bool
}

func (f ListFilter) toDomain() shared.Filter {
	filter := shared.DefaultFilter()
	if f.Page > 0 {
		filter.Page = f.Page
	}
	if f.PageSize > 0 {
		filter.PageSize = f.PageSize
	}
	filter.ActiveOnly = f.ActiveOnly
	return filter
}

// LoginInput contains login credentials
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult contains the authenticated user and issued tokens
type LoginResult struct {
	User   UserResponse    `json:"user"`
	Tokens *auth.TokenPair `json:"tokens"`
}

// CreateUserRequest represents a request to create a user
type CreateUserRequest struct {
	Name     string
	Email    string
	Contact  string
	Password string
	IsAdmin  bool
	Image    *uploads.Image
}

// UpdateUserRequest represents a partial user update
type UpdateUserRequest struct {
	Name     shared.PatchField[string]
	Email    shared.PatchField[string]
	Contact  shared.PatchField[string]
	Password shared.PatchField[string]
	IsAdmin  shared.PatchField[bool]
	IsActive shared.PatchField[bool]
	Image    *uploads.Image
}

// UpdateProfileRequest represents the profile fields a user may edit for
// themselves
type UpdateProfileRequest struct {
	Name    shared.PatchField[string]
	Contact shared.PatchField[string]
	Image   *uploads.Image
}

// ChangePasswordRequest represents a self-service password change
type ChangePasswordRequest struct {
	CurrentPassword string
	NewPassword     string
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID           uint      `json:"id"`
	PublicID     uuid.UUID `json:"uu_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Contact      string    `json:"contact"`
	ProfileImage string    `json:"profile_image"`
	IsAdmin      bool      `json:"is_admin"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToUserResponse maps a domain user to its response form
func ToUserResponse(u *identity.User) *UserResponse {
	return &UserResponse{
		ID:           u.ID,
		PublicID:     u.PublicID,
		Name:         u.Name,
		Email:        u.Email,
		Contact:      u.Contact,
		ProfileImage: u.ProfileImage,
		IsAdmin:      u.IsAdmin,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

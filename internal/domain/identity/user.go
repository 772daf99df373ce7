package identity

import (
	"context"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

// bcrypt hashes at most 72 bytes of input
const maxPasswordBytes = 72

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// User represents an administrative user of the catalog backend
type User struct {
	shared.SoftDeleteEntity
	Name         string `gorm:"type:varchar(255);not null" json:"name"`
	Email        string `gorm:"type:varchar(255);not null;index" json:"email"`
	Contact      string `gorm:"type:varchar(20)" json:"contact"`
	PasswordHash string `gorm:"column:password;type:varchar(255);not null" json:"-"`
	ProfileImage string `gorm:"type:varchar(255)" json:"profile_image"`
	IsAdmin      bool   `gorm:"not null;default:false" json:"is_admin"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user with a hashed password. Email and contact
// uniqueness among non-deleted rows is the caller's concern (uniqueness
// guard); this constructor only validates shape.
func NewUser(name, email, contact, password string, isAdmin bool) (*User, error) {
	if name == "" {
		return nil, shared.NewValidationError("Name is required")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL", "Failed to hash password")
	}

	return &User{
		SoftDeleteEntity: shared.NewSoftDeleteEntity(),
		Name:             name,
		Email:            strings.ToLower(strings.TrimSpace(email)),
		Contact:          contact,
		PasswordHash:     hash,
		IsAdmin:          isAdmin,
	}, nil
}

// SetEmail replaces the email after the caller has re-checked uniqueness
func (u *User) SetEmail(email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	u.Email = strings.ToLower(strings.TrimSpace(email))
	u.MarkUpdated()
	return nil
}

// SetPassword re-hashes and stores a new password
func (u *User) SetPassword(password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	hash, err := hashPassword(password)
	if err != nil {
		return shared.NewDomainError("INTERNAL", "Failed to hash password")
	}
	u.PasswordHash = hash
	u.MarkUpdated()
	return nil
}

// CheckPassword reports whether the plain password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), truncatePassword(password)) == nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncatePassword(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func truncatePassword(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return shared.NewValidationError("Email is required")
	}
	if !emailPattern.MatchString(email) {
		return shared.NewValidationError("Email is not valid")
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewValidationError("Password is required")
	}
	if len(password) < 6 {
		return shared.NewValidationError("Password must be at least 6 characters")
	}
	return nil
}

// UserRepository defines the interface for user persistence
type UserRepository interface {
	shared.Repository[User]

	// FindByID finds a non-deleted user by internal id (token subjects)
	FindByID(ctx context.Context, id uint) (*User, error)

	// FindActiveByEmail finds an active, non-deleted user for login
	FindActiveByEmail(ctx context.Context, email string) (*User, error)

	// EmailExists reports whether a non-deleted user other than
	// excludePublicID holds the email
	EmailExists(ctx context.Context, email string, excludePublicID uuid.UUID) (bool, error)

	// ContactExists reports whether a non-deleted user other than
	// excludePublicID holds the contact number
	ContactExists(ctx context.Context, contact string, excludePublicID uuid.UUID) (bool, error)
}

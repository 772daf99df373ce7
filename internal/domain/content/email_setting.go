package content

import (
	"context"
	"time"

	"github.com/myvegiz/backend/internal/domain/shared"
)

// EmailSetting is the singleton SMTP configuration row used for outbound
// mail. It is created once and thereafter only updated.
type EmailSetting struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Protocol   string    `gorm:"type:varchar(50);not null" json:"protocol"`
	Host       string    `gorm:"type:varchar(255);not null" json:"host"`
	Port       int       `gorm:"not null" json:"port"`
	Encryption string    `gorm:"type:varchar(20);not null" json:"encryption"`
	Username   string    `gorm:"type:varchar(255);not null" json:"username"`
	Password   string    `gorm:"type:varchar(255);not null" json:"-"`
	FromName   string    `gorm:"type:varchar(255);not null" json:"from_name"`
	FromEmail  string    `gorm:"type:varchar(255);not null" json:"from_email"`
	IsActive   bool      `gorm:"not null;default:true" json:"is_active"`
	IsUpdate   bool      `gorm:"not null;default:false" json:"is_update"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName returns the table name for GORM
func (EmailSetting) TableName() string {
	return "email_settings"
}

// Validate checks the configuration is complete
func (s *EmailSetting) Validate() error {
	if s.Host == "" {
		return shared.NewValidationError("Host is required")
	}
	if s.Port <= 0 || s.Port > 65535 {
		return shared.NewValidationError("Port is not valid")
	}
	if s.Username == "" {
		return shared.NewValidationError("Username is required")
	}
	if s.FromEmail == "" {
		return shared.NewValidationError("From email is required")
	}
	return nil
}

// EmailSettingRepository accesses the singleton settings row
type EmailSettingRepository interface {
	// Get returns the settings row, or shared.ErrNotFound when absent
	Get(ctx context.Context) (*EmailSetting, error)

	// Save inserts or updates the settings row
	Save(ctx context.Context, settings *EmailSetting) error
}

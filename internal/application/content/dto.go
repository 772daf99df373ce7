package content

import (
	"time"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/application/uploads"
	"github.com/myvegiz/backend/internal/domain/content"
	"github.com/myvegiz/backend/internal/domain/shared"
)

// ListFilter carries pagination options for slider listings
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

// CreateSliderRequest represents a request to create a slider. All three
// device images are required.
type CreateSliderRequest struct {
	Caption     string
	IsActive    bool
	MobileImage *uploads.Image
	TabImage    *uploads.Image
	WebImage    *uploads.Image
}

// UpdateSliderRequest represents a partial slider update
type UpdateSliderRequest struct {
	Caption     shared.PatchField[string]
	IsActive    shared.PatchField[bool]
	MobileImage *uploads.Image
	TabImage    *uploads.Image
	WebImage    *uploads.Image
}

// SliderResponse represents a slider in API responses
type SliderResponse struct {
	ID          uint      `json:"id"`
	PublicID    uuid.UUID `json:"uu_id"`
	MobileImage string    `json:"mobile_image"`
	TabImage    string    `json:"tab_image"`
	WebImage    string    `json:"web_image"`
	Caption     string    `json:"caption"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToSliderResponse maps a domain slider to its response form
func ToSliderResponse(s *content.Slider) *SliderResponse {
	return &SliderResponse{
		ID:          s.ID,
		PublicID:    s.PublicID,
		MobileImage: s.MobileImage,
		TabImage:    s.TabImage,
		WebImage:    s.WebImage,
		Caption:     s.Caption,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// UpsertEmailSettingRequest carries the full SMTP configuration. The row is
// a singleton so the update is always a full replace.
type UpsertEmailSettingRequest struct {
	Protocol   string
	Host       string
	Port       int
	Encryption string
	Username   string
	Password   string
	FromName   string
	FromEmail  string
	IsActive   bool
}

// EmailSettingResponse omits the SMTP password
type EmailSettingResponse struct {
	ID         uint      `json:"id"`
	Protocol   string    `json:"protocol"`
	Host       string    `json:"host"`
	Port       int       `json:"port"`
	Encryption string    `json:"encryption"`
	Username   string    `json:"username"`
	FromName   string    `json:"from_name"`
	FromEmail  string    `json:"from_email"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToEmailSettingResponse maps the settings row to its response form
func ToEmailSettingResponse(s *content.EmailSetting) *EmailSettingResponse {
	return &EmailSettingResponse{
		ID:         s.ID,
		Protocol:   s.Protocol,
		Host:       s.Host,
		Port:       s.Port,
		Encryption: s.Encryption,
		Username:   s.Username,
		FromName:   s.FromName,
		FromEmail:  s.FromEmail,
		IsActive:   s.IsActive,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

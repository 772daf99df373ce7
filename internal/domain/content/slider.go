package content

import (
	"github.com/myvegiz/backend/internal/domain/shared"
)

// Slider is a storefront banner with one image per device class
type Slider struct {
	shared.SoftDeleteEntity
	MobileImage string `gorm:"type:varchar(255)" json:"mobile_image"`
	TabImage    string `gorm:"type:varchar(255)" json:"tab_image"`
	WebImage    string `gorm:"type:varchar(255)" json:"web_image"`
	Caption     string `gorm:"type:varchar(255)" json:"caption"`
}

// TableName returns the table name for GORM
func (Slider) TableName() string {
	return "sliders"
}

// NewSlider creates a slider; all three device images are required
func NewSlider(mobileImage, tabImage, webImage, caption string, active bool) (*Slider, error) {
	if mobileImage == "" {
		return nil, shared.NewValidationError("Mobile image is required")
	}
	if tabImage == "" {
		return nil, shared.NewValidationError("Tab image is required")
	}
	if webImage == "" {
		return nil, shared.NewValidationError("Web image is required")
	}

	slider := &Slider{
		SoftDeleteEntity: shared.NewSoftDeleteEntity(),
		MobileImage:      mobileImage,
		TabImage:         tabImage,
		WebImage:         webImage,
		Caption:          caption,
	}
	slider.IsActive = active
	return slider, nil
}

// SliderRepository defines the interface for slider persistence
type SliderRepository interface {
	shared.Repository[Slider]
}

package content

import (
	"context"
	"errors"
	"time"

	"github.com/myvegiz/backend/internal/domain/content"
	"github.com/myvegiz/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Mailer sends outbound mail using the stored SMTP settings
type Mailer interface {
	Send(ctx context.Context, settings *content.EmailSetting, to, subject, body string) error
}

// EmailSettingService manages the singleton SMTP configuration
type EmailSettingService struct {
	settingRepo content.EmailSettingRepository
	mailer      Mailer
	logger      *zap.Logger
}

// NewEmailSettingService creates a new EmailSettingService. mailer may be
// nil when test sending is not wired.
func NewEmailSettingService(
	settingRepo content.EmailSettingRepository,
	mailer Mailer,
	logger *zap.Logger,
) *EmailSettingService {
	return &EmailSettingService{
		settingRepo: settingRepo,
		mailer:      mailer,
		logger:      logger,
	}
}

// Get returns the current settings, or NOT_FOUND when never configured
func (s *EmailSettingService) Get(ctx context.Context) (*EmailSettingResponse, error) {
	settings, err := s.settingRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return ToEmailSettingResponse(settings), nil
}

// Upsert creates the settings row on first call and fully replaces it on
// subsequent calls. An empty password on update keeps the stored one.
func (s *EmailSettingService) Upsert(ctx context.Context, req UpsertEmailSettingRequest) (*EmailSettingResponse, error) {
	settings, err := s.settingRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		settings = &content.EmailSetting{CreatedAt: time.Now()}
	}

	password := req.Password
	if password == "" {
		password = settings.Password
	}

	settings.Protocol = req.Protocol
	settings.Host = req.Host
	settings.Port = req.Port
	settings.Encryption = req.Encryption
	settings.Username = req.Username
	settings.Password = password
	settings.FromName = req.FromName
	settings.FromEmail = req.FromEmail
	settings.IsActive = req.IsActive
	settings.IsUpdate = settings.ID != 0
	settings.UpdatedAt = time.Now()

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	if err := s.settingRepo.Save(ctx, settings); err != nil {
		return nil, err
	}

	s.logger.Info("Email settings saved", zap.String("host", settings.Host))
	return ToEmailSettingResponse(settings), nil
}

// SendTest sends a short message to verify the stored configuration
func (s *EmailSettingService) SendTest(ctx context.Context, to string) error {
	if s.mailer == nil {
		return shared.NewDomainError("INTERNAL", "Mail transport is not configured")
	}
	if to == "" {
		return shared.NewValidationError("Recipient email is required")
	}

	settings, err := s.settingRepo.Get(ctx)
	if err != nil {
		return err
	}
	if !settings.IsActive {
		return shared.NewValidationError("Email sending is disabled")
	}

	if err := s.mailer.Send(ctx, settings, to, "Test email", "SMTP configuration is working."); err != nil {
		s.logger.Error("Test email failed", zap.Error(err))
		return shared.NewDomainError("INTERNAL", "Failed to send test email")
	}

	s.logger.Info("Test email sent", zap.String("to", to))
	return nil
}

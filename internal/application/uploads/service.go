package uploads

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/domain/shared"
	"github.com/myvegiz/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// ImageStorage stores image bytes under a key and returns the public URL
// the stored object is reachable at
type ImageStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// Service validates uploaded images and hands them to the storage backend.
// Validation happens here so every surface (admin forms, profile pictures,
// sliders) enforces the same size and type limits.
type Service struct {
	storage      ImageStorage
	maxSizeBytes int64
	allowedTypes map[string]string // content type -> file extension
	logger       *zap.Logger
}

// NewService creates an upload service from configuration
func NewService(storage ImageStorage, cfg config.UploadConfig, logger *zap.Logger) *Service {
	allowed := make(map[string]string, len(cfg.AllowedTypes))
	for _, ct := range cfg.AllowedTypes {
		allowed[ct] = extensionFor(ct)
	}
	return &Service{
		storage:      storage,
		maxSizeBytes: cfg.MaxSizeBytes,
		allowedTypes: allowed,
		logger:       logger,
	}
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	default:
		return ".jpg"
	}
}

// UploadImage validates the image and stores it under folder with a random
// file name. Returns the public URL of the stored object.
func (s *Service) UploadImage(ctx context.Context, folder string, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", shared.NewValidationError("Image file is required")
	}
	if int64(len(data)) > s.maxSizeBytes {
		return "", shared.NewValidationError("Image exceeds the maximum allowed size")
	}

	contentType = strings.ToLower(strings.TrimSpace(contentType))
	ext, ok := s.allowedTypes[contentType]
	if !ok {
		return "", shared.NewValidationError("Only JPEG and PNG images are allowed")
	}

	key := folder + "/" + uuid.New().String() + ext
	url, err := s.storage.Upload(ctx, key, data, contentType)
	if err != nil {
		s.logger.Error("Image upload failed",
			zap.String("key", key),
			zap.Error(err))
		return "", shared.NewDomainError("INTERNAL", "Failed to store image")
	}

	s.logger.Info("Image uploaded",
		zap.String("key", key),
		zap.Int("size_bytes", len(data)))
	return url, nil
}

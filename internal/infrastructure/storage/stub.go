package storage

import (
	"context"
	"errors"
	"sync"

	"github.com/myvegiz/backend/internal/application/uploads"
)

// StubImageStorage keeps uploaded images in memory. Use it for development
// and tests; it never talks to a real backend.
type StubImageStorage struct {
	// BaseURL is the URL prefix for returned object URLs
	BaseURL string

	mu      sync.Mutex
	objects map[string][]byte
}

// NewStubImageStorage creates a new StubImageStorage
func NewStubImageStorage() *StubImageStorage {
	return &StubImageStorage{
		BaseURL: "https://storage.example.com",
		objects: make(map[string][]byte),
	}
}

// Ensure StubImageStorage implements uploads.ImageStorage
var _ uploads.ImageStorage = (*StubImageStorage)(nil)

// Upload records the image bytes and returns a deterministic URL
func (s *StubImageStorage) Upload(_ context.Context, key string, data []byte, _ string) (string, error) {
	if key == "" {
		return "", errors.New("storage key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	s.objects[key] = stored

	return s.BaseURL + "/" + key, nil
}

// Object returns the stored bytes for key and whether it exists
func (s *StubImageStorage) Object(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	return data, ok
}

// Len returns the number of stored objects
func (s *StubImageStorage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

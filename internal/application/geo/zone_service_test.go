package geo

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/domain/geo"
	"github.com/myvegiz/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockZoneRepository is a mock implementation of geo.ZoneRepository
type MockZoneRepository struct {
	mock.Mock
}

func (m *MockZoneRepository) FindByPublicID(ctx context.Context, publicID uuid.UUID) (*geo.Zone, error) {
	args := m.Called(ctx, publicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geo.Zone), args.Error(1)
}

func (m *MockZoneRepository) FindAll(ctx context.Context, filter shared.Filter) ([]geo.Zone, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]geo.Zone), args.Get(1).(int64), args.Error(2)
}

func (m *MockZoneRepository) Save(ctx context.Context, zone *geo.Zone) error {
	args := m.Called(ctx, zone)
	return args.Error(0)
}

func (m *MockZoneRepository) FindByID(ctx context.Context, id uint) (*geo.Zone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geo.Zone), args.Error(1)
}

func (m *MockZoneRepository) FindCandidates(ctx context.Context) ([]geo.Zone, error) {
	args := m.Called(ctx)
	return args.Get(0).([]geo.Zone), args.Error(1)
}

func squarePolygon() geo.Polygon {
	return geo.Polygon{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 10},
		{Lat: 10, Lng: 10},
		{Lat: 10, Lng: 0},
	}
}

func TestZoneService_Create(t *testing.T) {
	repo := new(MockZoneRepository)
	svc := NewZoneService(repo, zap.NewNop())

	repo.On("Save", mock.Anything, mock.AnythingOfType("*geo.Zone")).Return(nil)

	resp, err := svc.Create(context.Background(), CreateZoneRequest{
		Name:          "South Pune",
		City:          "Pune",
		State:         "Maharashtra",
		Polygon:       squarePolygon(),
		IsDeliverable: true,
		IsActive:      true,
	})

	require.NoError(t, err)
	assert.Equal(t, "South Pune", resp.ZoneName)
	assert.Len(t, resp.Polygon, 4)
	repo.AssertExpectations(t)
}

func TestZoneService_Create_TooFewVertices(t *testing.T) {
	repo := new(MockZoneRepository)
	svc := NewZoneService(repo, zap.NewNop())

	_, err := svc.Create(context.Background(), CreateZoneRequest{
		Name:    "South Pune",
		City:    "Pune",
		State:   "Maharashtra",
		Polygon: geo.Polygon{{Lat: 0, Lng: 0}, {Lat: 1, Lng: 1}},
	})

	require.Error(t, err)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestZoneService_Update_ReplacePolygon(t *testing.T) {
	repo := new(MockZoneRepository)
	svc := NewZoneService(repo, zap.NewNop())

	zone, err := geo.NewZone("South Pune", "Pune", "Maharashtra", squarePolygon(), true, true)
	require.NoError(t, err)

	repo.On("FindByPublicID", mock.Anything, zone.PublicID).Return(zone, nil)
	repo.On("Save", mock.Anything, zone).Return(nil)

	newPolygon := geo.Polygon{{Lat: 5, Lng: 5}, {Lat: 5, Lng: 6}, {Lat: 6, Lng: 6}}
	resp, err := svc.Update(context.Background(), zone.PublicID, UpdateZoneRequest{
		Polygon: shared.Patch(newPolygon),
	})

	require.NoError(t, err)
	assert.Len(t, resp.Polygon, 3)
}

func TestZoneService_Update_NullPolygonRejected(t *testing.T) {
	repo := new(MockZoneRepository)
	svc := NewZoneService(repo, zap.NewNop())

	zone, err := geo.NewZone("South Pune", "Pune", "Maharashtra", squarePolygon(), true, true)
	require.NoError(t, err)

	repo.On("FindByPublicID", mock.Anything, zone.PublicID).Return(zone, nil)

	_, err = svc.Update(context.Background(), zone.PublicID, UpdateZoneRequest{
		Polygon: shared.PatchField[geo.Polygon]{Set: true, Valid: false},
	})

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestZoneService_ResolveByLocation(t *testing.T) {
	repo := new(MockZoneRepository)
	svc := NewZoneService(repo, zap.NewNop())

	inside, err := geo.NewZone("South Pune", "Pune", "Maharashtra", squarePolygon(), true, true)
	require.NoError(t, err)
	elsewhere, err := geo.NewZone("North Mumbai", "Mumbai", "Maharashtra", geo.Polygon{
		{Lat: 50, Lng: 50}, {Lat: 50, Lng: 60}, {Lat: 60, Lng: 60}, {Lat: 60, Lng: 50},
	}, false, true)
	require.NoError(t, err)

	repo.On("FindCandidates", mock.Anything).Return([]geo.Zone{*inside, *elsewhere}, nil)

	matches, err := svc.ResolveByLocation(context.Background(), 5, 5)

	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "South Pune", matches[0].ZoneName)
	assert.True(t, matches[0].IsDeliverable)
}

func TestZoneService_ResolveByLocation_NoMatchIsEmpty(t *testing.T) {
	repo := new(MockZoneRepository)
	svc := NewZoneService(repo, zap.NewNop())

	zone, err := geo.NewZone("South Pune", "Pune", "Maharashtra", squarePolygon(), true, true)
	require.NoError(t, err)

	repo.On("FindCandidates", mock.Anything).Return([]geo.Zone{*zone}, nil)

	matches, err := svc.ResolveByLocation(context.Background(), 20, 20)

	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestZoneService_ResolveByLocation_SkipsMalformedPolygon(t *testing.T) {
	repo := new(MockZoneRepository)
	svc := NewZoneService(repo, zap.NewNop())

	good, err := geo.NewZone("South Pune", "Pune", "Maharashtra", squarePolygon(), true, true)
	require.NoError(t, err)

	// A zone whose polygon was emptied after creation must not break
	// resolution for everyone else
	broken := *good
	broken.PublicID = uuid.New()
	broken.Polygon = geo.Polygon{}

	repo.On("FindCandidates", mock.Anything).Return([]geo.Zone{broken, *good}, nil)

	matches, err := svc.ResolveByLocation(context.Background(), 5, 5)

	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, good.PublicID, matches[0].PublicID)
}

func TestZoneService_ResolveByLocation_InvalidCoordinates(t *testing.T) {
	repo := new(MockZoneRepository)
	svc := NewZoneService(repo, zap.NewNop())

	_, err := svc.ResolveByLocation(context.Background(), 91, 0)
	assert.Error(t, err)

	_, err = svc.ResolveByLocation(context.Background(), 0, -181)
	assert.Error(t, err)

	repo.AssertNotCalled(t, "FindCandidates", mock.Anything)
}

func TestZoneService_Delete(t *testing.T) {
	repo := new(MockZoneRepository)
	svc := NewZoneService(repo, zap.NewNop())

	zone, err := geo.NewZone("South Pune", "Pune", "Maharashtra", squarePolygon(), true, true)
	require.NoError(t, err)

	repo.On("FindByPublicID", mock.Anything, zone.PublicID).Return(zone, nil)
	repo.On("Save", mock.Anything, zone).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), zone.PublicID))
	assert.True(t, zone.IsDelete)
	assert.False(t, zone.IsActive)
}

package location

import (
	"context"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/location"
	"github.com/facetrack/attendance-backend-go/internal/pkg/geo"
)

type LocationServiceImpl struct {
	location.GeoFenceRepository
}

func toResponse(f location.GeoFence) location.GeoFenceResponse {
	return location.GeoFenceResponse{
		ID:           f.ID,
		Name:         f.Name,
		Latitude:     f.Latitude,
		Longitude:    f.Longitude,
		RadiusMeters: f.RadiusMeters,
		Address:      f.Address,
		IsActive:     f.IsActive,
		CreatedAt:    f.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    f.UpdatedAt.Format(time.RFC3339),
	}
}

// List implements location.LocationService.
func (l *LocationServiceImpl) List(ctx context.Context) ([]location.GeoFenceResponse, error) {
	fences, err := l.GeoFenceRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]location.GeoFenceResponse, 0, len(fences))
	for _, f := range fences {
		responses = append(responses, toResponse(f))
	}
	return responses, nil
}

// Create implements location.LocationService.
func (l *LocationServiceImpl) Create(ctx context.Context, req location.CreateGeoFenceRequest) (location.GeoFenceResponse, error) {
	if err := req.Validate(); err != nil {
		return location.GeoFenceResponse{}, err
	}

	fence := location.GeoFence{
		Name:         req.Name,
		Latitude:     *req.Latitude,
		Longitude:    *req.Longitude,
		RadiusMeters: *req.RadiusMeters,
		Address:      req.Address,
		IsActive:     true,
	}

	created, err := l.GeoFenceRepository.Create(ctx, fence)
	if err != nil {
		return location.GeoFenceResponse{}, err
	}

	return toResponse(created), nil
}

// Update implements location.LocationService.
func (l *LocationServiceImpl) Update(ctx context.Context, req location.UpdateGeoFenceRequest) (location.GeoFenceResponse, error) {
	if err := req.Validate(); err != nil {
		return location.GeoFenceResponse{}, err
	}

	fence, err := l.GeoFenceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return location.GeoFenceResponse{}, err
	}

	if req.Name != nil {
		fence.Name = *req.Name
	}
	if req.Latitude != nil {
		fence.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		fence.Longitude = *req.Longitude
	}
	if req.RadiusMeters != nil {
		fence.RadiusMeters = *req.RadiusMeters
	}
	if req.Address != nil {
		fence.Address = req.Address
	}
	if req.IsActive != nil {
		fence.IsActive = *req.IsActive
	}

	updated, err := l.GeoFenceRepository.Update(ctx, fence)
	if err != nil {
		return location.GeoFenceResponse{}, err
	}

	return toResponse(updated), nil
}

// Verify implements location.LocationService. It reports membership without
// mutating anything, so clients can show their status before submitting an
// attendance event.
func (l *LocationServiceImpl) Verify(ctx context.Context, req location.VerifyLocationRequest) (location.VerifyLocationResponse, error) {
	if err := req.Validate(); err != nil {
		return location.VerifyLocationResponse{}, err
	}

	fences, err := l.GeoFenceRepository.GetActive(ctx)
	if err != nil {
		return location.VerifyLocationResponse{}, err
	}

	geoFences := make([]geo.Fence, 0, len(fences))
	for _, f := range fences {
		geoFences = append(geoFences, geo.Fence{
			Latitude:     f.Latitude,
			Longitude:    f.Longitude,
			RadiusMeters: f.RadiusMeters,
		})
	}

	if geo.IsWithinAny(*req.Latitude, *req.Longitude, geoFences) {
		return location.VerifyLocationResponse{WithinAllowedLocation: true}, nil
	}

	allowed := make([]location.AllowedLocation, 0, len(fences))
	for _, f := range fences {
		allowed = append(allowed, location.AllowedLocation{
			Name:    f.Name,
			Address: f.Address,
		})
	}

	return location.VerifyLocationResponse{
		WithinAllowedLocation: false,
		AllowedLocations:      allowed,
	}, nil
}

func NewLocationService(geoFenceRepo location.GeoFenceRepository) location.LocationService {
	return &LocationServiceImpl{
		GeoFenceRepository: geoFenceRepo,
	}
}

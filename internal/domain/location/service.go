package location

import "context"

// LocationService defines business logic for geofence management.
type LocationService interface {
	List(ctx context.Context) ([]GeoFenceResponse, error)
	Create(ctx context.Context, req CreateGeoFenceRequest) (GeoFenceResponse, error)
	Update(ctx context.Context, req UpdateGeoFenceRequest) (GeoFenceResponse, error)

	// Verify reports whether the given point is inside any active fence.
	Verify(ctx context.Context, req VerifyLocationRequest) (VerifyLocationResponse, error)
}

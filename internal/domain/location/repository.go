package location

import "context"

// GeoFenceRepository defines data access for geofences.
type GeoFenceRepository interface {
	// GetActive returns every fence with the active flag set.
	GetActive(ctx context.Context) ([]GeoFence, error)

	// List returns all fences, newest first.
	List(ctx context.Context) ([]GeoFence, error)

	GetByID(ctx context.Context, id string) (GeoFence, error)
	Create(ctx context.Context, fence GeoFence) (GeoFence, error)
	Update(ctx context.Context, fence GeoFence) (GeoFence, error)
}

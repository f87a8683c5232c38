package location

import "time"

// GeoFence is an admin-configured circular area inside which attendance
// events are admissible. Several fences may be active at once; membership
// in any one of them is sufficient.
type GeoFence struct {
	ID           string
	Name         string
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
	Address      *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

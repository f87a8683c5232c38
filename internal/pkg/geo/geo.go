package geo

import "math"

const earthRadiusMeters = 6371000

// DistanceMeters returns the great-circle distance between two WGS84
// coordinate pairs (degrees) via the Haversine formula, in meters.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// Fence is a circular geofence: center plus radius in meters.
type Fence struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
}

// IsWithinRadius reports whether the point is at most radiusMeters away
// from the given center.
func IsWithinRadius(lat, lon, centerLat, centerLon, radiusMeters float64) bool {
	return DistanceMeters(lat, lon, centerLat, centerLon) <= radiusMeters
}

// IsWithinAny reports whether the point falls inside at least one fence
// (union semantics). An empty fence set always yields false; callers must
// treat that case as "no location configured" rather than "out of range".
func IsWithinAny(lat, lon float64, fences []Fence) bool {
	for _, f := range fences {
		if IsWithinRadius(lat, lon, f.Latitude, f.Longitude, f.RadiusMeters) {
			return true
		}
	}
	return false
}

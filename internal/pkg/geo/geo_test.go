package geo

import (
	"math"
	"testing"
)

func TestDistanceMeters(t *testing.T) {
	cases := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
		tolerance              float64
	}{
		{"same point", -6.2, 106.8, -6.2, 106.8, 0, 0.001},
		// Monas to Kota Tua, Jakarta; roughly 4.6 km
		{"across the city", -6.1754, 106.8272, -6.1352, 106.8133, 4650, 100},
		// One degree of latitude is about 111.19 km on this sphere model
		{"one degree latitude", 0, 0, 1, 0, 111195, 50},
	}

	for _, c := range cases {
		got := DistanceMeters(c.lat1, c.lon1, c.lat2, c.lon2)
		if math.Abs(got-c.want) > c.tolerance {
			t.Errorf("%s: DistanceMeters = %.1f, want %.1f ± %.1f", c.name, got, c.want, c.tolerance)
		}
	}
}

func TestDistanceMetersSymmetry(t *testing.T) {
	ab := DistanceMeters(-6.2, 106.8, -7.8, 110.4)
	ba := DistanceMeters(-7.8, 110.4, -6.2, 106.8)
	if math.Abs(ab-ba) > 1e-9 {
		t.Errorf("distance not symmetric: %v vs %v", ab, ba)
	}
}

func TestIsWithinRadius(t *testing.T) {
	centerLat, centerLon := -6.2, 106.8

	cases := []struct {
		name     string
		lat, lon float64
		radius   float64
		want     bool
	}{
		{"center itself", centerLat, centerLon, 100, true},
		{"just inside", -6.2005, 106.8, 100, true},
		{"well outside", -6.21, 106.8, 100, false},
	}

	for _, c := range cases {
		got := IsWithinRadius(c.lat, c.lon, centerLat, centerLon, c.radius)
		if got != c.want {
			t.Errorf("%s: IsWithinRadius = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestIsWithinRadiusBoundaryIsInclusive(t *testing.T) {
	// A point exactly on the circle counts as inside.
	lat, lon := 0.0, 0.0
	centerLat, centerLon := 0.001, 0.0
	dist := DistanceMeters(lat, lon, centerLat, centerLon)

	if !IsWithinRadius(lat, lon, centerLat, centerLon, dist) {
		t.Error("point exactly at radius distance should be within")
	}
	if IsWithinRadius(lat, lon, centerLat, centerLon, dist-0.01) {
		t.Error("point just beyond radius should not be within")
	}
}

func TestIsWithinAny(t *testing.T) {
	fences := []Fence{
		{Latitude: -6.2, Longitude: 106.8, RadiusMeters: 100},
		{Latitude: -7.8, Longitude: 110.4, RadiusMeters: 200},
	}

	cases := []struct {
		name     string
		lat, lon float64
		fences   []Fence
		want     bool
	}{
		{"inside first fence", -6.2, 106.8, fences, true},
		{"inside second fence", -7.8, 110.4, fences, true},
		{"outside all fences", 0, 0, fences, false},
		{"no fences configured", -6.2, 106.8, nil, false},
		{"empty fence slice", -6.2, 106.8, []Fence{}, false},
	}

	for _, c := range cases {
		got := IsWithinAny(c.lat, c.lon, c.fences)
		if got != c.want {
			t.Errorf("%s: IsWithinAny = %v, want %v", c.name, got, c.want)
		}
	}
}

// Package geo provides great-circle distance helpers for proximity targeting.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

const earthRadiusKm = 6371.0

// HaversineDistance calculates the great circle distance between two points
// in kilometers. Points follow the orb convention: (lng, lat).
func HaversineDistance(p1, p2 orb.Point) float64 {
	lat1, lng1 := p1.Lat(), p1.Lon()
	lat2, lng2 := p2.Lat(), p2.Lon()

	// Convert to radians
	lat1Rad := lat1 * math.Pi / 180
	lng1Rad := lng1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lng2Rad := lng2 * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// WithinRadius reports whether two points lie within radiusKm of each other.
// The boundary is inclusive: a point exactly radiusKm away qualifies.
func WithinRadius(p1, p2 orb.Point, radiusKm float64) bool {
	return HaversineDistance(p1, p2) <= radiusKm
}

// IsValidCoordinate checks if a point is within valid geographic bounds (Earth).
func IsValidCoordinate(p orb.Point) bool {
	if math.IsNaN(p.Lat()) || math.IsNaN(p.Lon()) ||
		math.IsInf(p.Lat(), 0) || math.IsInf(p.Lon(), 0) {
		return false
	}

	return p.Lat() >= -90 && p.Lat() <= 90 &&
		p.Lon() >= -180 && p.Lon() <= 180
}

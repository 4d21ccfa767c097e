package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	tests := []struct {
		name      string
		p1        orb.Point
		p2        orb.Point
		expected  float64
		tolerance float64
	}{
		{
			name:      "same point is zero",
			p1:        orb.Point{-4.4861, 48.3904}, // Brest
			p2:        orb.Point{-4.4861, 48.3904},
			expected:  0,
			tolerance: 0.0001,
		},
		{
			name:      "Brest to Douarnenez",
			p1:        orb.Point{-4.4861, 48.3904},
			p2:        orb.Point{-4.3286, 48.0921},
			expected:  35.1,
			tolerance: 1.0,
		},
		{
			name:      "Lorient to Concarneau",
			p1:        orb.Point{-3.3660, 47.7483},
			p2:        orb.Point{-3.9216, 47.8733},
			expected:  43.7,
			tolerance: 1.0,
		},
		{
			name:      "antipodal-ish long haul",
			p1:        orb.Point{0, 0},
			p2:        orb.Point{180, 0},
			expected:  20015.1, // half the Earth's circumference
			tolerance: 5.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineDistance(tt.p1, tt.p2)
			assert.InDelta(t, tt.expected, got, tt.tolerance)

			// Distance is symmetric
			assert.InDelta(t, got, HaversineDistance(tt.p2, tt.p1), 0.0001)
		})
	}
}

func TestWithinRadius(t *testing.T) {
	brest := orb.Point{-4.4861, 48.3904}

	t.Run("point inside radius qualifies", func(t *testing.T) {
		// ~5.6 km north of Brest
		near := orb.Point{-4.4861, 48.4404}
		assert.True(t, WithinRadius(brest, near, 10.0))
	})

	t.Run("point outside radius does not qualify", func(t *testing.T) {
		// ~16.7 km north of Brest
		far := orb.Point{-4.4861, 48.5404}
		assert.False(t, WithinRadius(brest, far, 10.0))
	})

	t.Run("boundary is inclusive", func(t *testing.T) {
		p := orb.Point{-4.4000, 48.4404}
		d := HaversineDistance(brest, p)
		assert.True(t, WithinRadius(brest, p, d))
	})

	t.Run("zero radius only matches the same point", func(t *testing.T) {
		assert.True(t, WithinRadius(brest, brest, 0))
		assert.False(t, WithinRadius(brest, orb.Point{-4.4860, 48.3904}, 0))
	})
}

func TestIsValidCoordinate(t *testing.T) {
	assert.True(t, IsValidCoordinate(orb.Point{-4.4861, 48.3904}))
	assert.True(t, IsValidCoordinate(orb.Point{-180, -90}))
	assert.True(t, IsValidCoordinate(orb.Point{180, 90}))

	assert.False(t, IsValidCoordinate(orb.Point{-181, 0}))
	assert.False(t, IsValidCoordinate(orb.Point{0, 91}))
}

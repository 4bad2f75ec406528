package geo

import (
	"math"

	"github.com/tidwall/geodesic"

	"github.com/TemirB/foodcart/internal/domain"
)

// DistanceKm returns the geodesic distance between a and b on the WGS-84
// ellipsoid in kilometres, rounded to two decimals. ok is false when either
// point is unknown.
func DistanceKm(a, b *domain.Coordinates) (km float64, ok bool) {
	if a == nil || b == nil {
		return 0, false
	}
	var meters float64
	geodesic.WGS84.Inverse(a.Lat, a.Lon, b.Lat, b.Lon, &meters, nil, nil)
	return round2(meters / 1000), true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package postgres

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const kmToMeters = 1000.0

// boundAround computes a latitude/longitude bounding box that fully contains
// the circle of radiusKm around the origin. Proximity queries apply it as a
// cheap index-friendly pre-filter before the exact PostGIS distance check.
func boundAround(lat, lon, radiusKm float64) orb.Bound {
	return geo.NewBoundAroundPoint(orb.Point{lon, lat}, radiusKm*kmToMeters)
}

// Package geo holds the spherical geometry used by the ride analysis.
package geo

import (
	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// Coord is a latitude/longitude pair in degrees.
type Coord struct {
	Lat float64
	Lon float64
}

// DistanceKm returns the great-circle distance between a and b in kilometers.
// s2 measures the central angle with the haversine formula.
func DistanceKm(a, b Coord) float64 {
	if a == b {
		return 0
	}
	angle := s2.LatLngFromDegrees(a.Lat, a.Lon).Distance(s2.LatLngFromDegrees(b.Lat, b.Lon))
	return angle.Radians() * EarthRadiusKm
}

// Gradient returns the slope between two elevations in percent.
// It is 0 when either elevation is unknown or the distance is zero.
func Gradient(fromEle, toEle *float64, distanceM float64) float64 {
	if fromEle == nil || toEle == nil || distanceM == 0 {
		return 0
	}
	return (*toEle - *fromEle) / distanceM * 100
}

// Box is a bounding box in degrees.
type Box struct {
	MinLat float64 `json:"minLat"`
	MinLon float64 `json:"minLon"`
	MaxLat float64 `json:"maxLat"`
	MaxLon float64 `json:"maxLon"`
}

// Bounds returns the bounding box of coords. ok is false for an empty slice.
func Bounds(coords []Coord) (box Box, ok bool) {
	if len(coords) == 0 {
		return Box{}, false
	}

	// orb points are lon/lat ordered
	line := make(orb.LineString, len(coords))
	for i, c := range coords {
		line[i] = orb.Point{c.Lon, c.Lat}
	}
	bound := line.Bound()

	return Box{
		MinLat: bound.Bottom(),
		MinLon: bound.Left(),
		MaxLat: bound.Top(),
		MaxLon: bound.Right(),
	}, true
}

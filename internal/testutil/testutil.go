// Package testutil builds synthetic rides for tests: typed point slices for
// the analyzers and full GPX documents for the engine.
package testutil

import (
	"math"
	"time"

	"github.com/HaikuZen/myCCC4Worker-sub000/internal/geo"
	"github.com/HaikuZen/myCCC4Worker-sub000/internal/track"
)

// metersPerDegreeLat is the length of one degree of latitude on the
// geo.EarthRadiusKm sphere. Moving due north by d meters changes latitude
// by d/metersPerDegreeLat, which keeps distances exact.
const metersPerDegreeLat = geo.EarthRadiusKm * 1000 * math.Pi / 180

// DefaultStart is the time the first fixture point is recorded at.
var DefaultStart = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

// PointOption customises a point added to a Ride.
type PointOption func(*track.TrackPoint)

// Elevation sets the point's elevation in meters.
func Elevation(m float64) PointOption {
	return func(p *track.TrackPoint) { p.Elevation = &m }
}

// NoTime clears the point's timestamp.
func NoTime() PointOption {
	return func(p *track.TrackPoint) { p.Time = nil }
}

// HeartRate sets the heart-rate extension.
func HeartRate(bpm float64) PointOption {
	return func(p *track.TrackPoint) { ext(p).HeartRate = &bpm }
}

// Cadence sets the cadence extension.
func Cadence(rpm float64) PointOption {
	return func(p *track.TrackPoint) { ext(p).Cadence = &rpm }
}

// Power sets the power extension in watts.
func Power(w float64) PointOption {
	return func(p *track.TrackPoint) { ext(p).Power = &w }
}

func ext(p *track.TrackPoint) *track.Extensions {
	if p.Extensions == nil {
		p.Extensions = &track.Extensions{}
	}
	return p.Extensions
}

// Ride lays points out due north of a start coordinate.
type Ride struct {
	lat, lon float64
	clock    time.Time
	points   []track.TrackPoint
}

// NewRide starts a ride at 46N 7E with its first point recorded at
// DefaultStart.
func NewRide(opts ...PointOption) *Ride {
	r := &Ride{lat: 46.0, lon: 7.0, clock: DefaultStart}
	r.add(opts)
	return r
}

// Step moves distanceM meters north over dt and records a point.
func (r *Ride) Step(distanceM float64, dt time.Duration, opts ...PointOption) *Ride {
	r.lat += distanceM / metersPerDegreeLat
	r.clock = r.clock.Add(dt)
	r.add(opts)
	return r
}

// Steps records n identical steps.
func (r *Ride) Steps(n int, distanceM float64, dt time.Duration, opts ...PointOption) *Ride {
	for i := 0; i < n; i++ {
		r.Step(distanceM, dt, opts...)
	}
	return r
}

// Profile records one step per elevation value.
func (r *Ride) Profile(distanceM float64, dt time.Duration, elevations ...float64) *Ride {
	for _, e := range elevations {
		r.Step(distanceM, dt, Elevation(e))
	}
	return r
}

func (r *Ride) add(opts []PointOption) {
	ts := r.clock
	p := track.TrackPoint{
		Lat:   r.lat,
		Lon:   r.lon,
		Time:  &ts,
		Index: len(r.points),
	}
	for _, opt := range opts {
		opt(&p)
	}
	r.points = append(r.points, p)
}

// Points returns a copy of the recorded points.
func (r *Ride) Points() []track.TrackPoint {
	out := make([]track.TrackPoint, len(r.points))
	copy(out, r.points)
	return out
}

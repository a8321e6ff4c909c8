// Package kinematics derives distance, time and speed from consecutive fixes.
package kinematics

import (
	"gonum.org/v1/gonum/stat"

	"github.com/HaikuZen/myCCC4Worker-sub000/internal/filter"
	"github.com/HaikuZen/myCCC4Worker-sub000/internal/geo"
	"github.com/HaikuZen/myCCC4Worker-sub000/internal/track"
)

// Stats is the outcome of Compute.
type Stats struct {
	// DistanceKm sums every pair, filtered or not.
	DistanceKm      float64 `json:"distanceKm"`
	TotalSeconds    float64 `json:"totalSeconds"`
	MovingSeconds   float64 `json:"movingSeconds"`
	AverageSpeedKmh float64 `json:"averageSpeedKmh"`
	MaxSpeedKmh     float64 `json:"maxSpeedKmh"`

	// Samples are the per-pair speeds (km/h) that passed the plausibility
	// rules, in track order.
	Samples []float64 `json:"-"`
}

// PairSpeed returns the speed between two fixes when both carry timestamps
// and the pair passes the interval, distance and speed rules.
func PairSpeed(prev, curr track.TrackPoint, distanceKm float64) (kmh, seconds float64, ok bool) {
	dt, timed := filter.Elapsed(prev.Time, curr.Time)
	if !timed || !filter.IntervalOK(dt) {
		return 0, 0, false
	}
	seconds = dt.Seconds()
	kmh = filter.SpeedKmh(distanceKm, seconds)
	if !filter.SpeedOK(kmh) || !filter.DistanceOK(distanceKm) {
		return 0, 0, false
	}
	return kmh, seconds, true
}

// Compute walks the points once.
func Compute(points []track.TrackPoint) Stats {
	var s Stats
	if len(points) < 2 {
		return s
	}

	for i := 1; i < len(points); i++ {
		prev, curr := points[i-1], points[i]
		distanceKm := geo.DistanceKm(prev.Coord(), curr.Coord())
		s.DistanceKm += distanceKm

		kmh, seconds, ok := PairSpeed(prev, curr, distanceKm)
		if !ok {
			continue
		}
		s.MovingSeconds += seconds
		if kmh > s.MaxSpeedKmh {
			s.MaxSpeedKmh = kmh
		}
		s.Samples = append(s.Samples, kmh)
	}

	first, last := points[0], points[len(points)-1]
	if first.Time != nil && last.Time != nil {
		s.TotalSeconds = last.Time.Sub(*first.Time).Seconds()
	} else {
		s.TotalSeconds = s.MovingSeconds
	}

	switch {
	case s.MovingSeconds > 0:
		s.AverageSpeedKmh = s.DistanceKm * 3600 / s.MovingSeconds
	case len(s.Samples) > 0:
		s.AverageSpeedKmh = stat.Mean(s.Samples, nil)
	}

	return s
}

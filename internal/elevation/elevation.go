// Package elevation estimates climbing and descending from noisy GPS
// altitude. Consumer receivers report altitude with errors of tens of
// meters, so summing raw deltas overstates gain and loss; only pairs of
// consecutive fixes that pass the plausibility rules in package filter
// contribute.
package elevation

import (
	"gonum.org/v1/gonum/stat"

	"github.com/HaikuZen/myCCC4Worker-sub000/internal/filter"
	"github.com/HaikuZen/myCCC4Worker-sub000/internal/geo"
	"github.com/HaikuZen/myCCC4Worker-sub000/internal/track"
)

// Rejections counts discarded pairs by the first rule they failed.
type Rejections struct {
	Interval int `json:"interval"`
	Distance int `json:"distance"`
	Speed    int `json:"speed"`
	Jump     int `json:"jump"`
}

// Stats is the outcome of Filter.
type Stats struct {
	Gain float64  `json:"gain"`
	Loss float64  `json:"loss"`
	Max  *float64 `json:"max"`
	Min  *float64 `json:"min"`

	ValidPairs    int `json:"validPairs"`
	FilteredPairs int `json:"filteredPairs"`
	// FilteringEfficiency is the share of pairs discarded, in percent.
	FilteringEfficiency float64    `json:"filteringEfficiency"`
	Coverage            float64    `json:"coverage"`
	Mean                *float64   `json:"mean"`
	Rejections          Rejections `json:"rejections"`
}

// Range returns max - min, or 0 when no pair survived.
func (s Stats) Range() float64 {
	if s.Max == nil || s.Min == nil {
		return 0
	}
	return *s.Max - *s.Min
}

// Filter walks consecutive elevation-bearing points. With fewer than two
// such points the zero Stats is returned.
func Filter(points []track.TrackPoint) Stats {
	withEle := track.WithElevation(points)
	if len(withEle) < 2 {
		return Stats{}
	}

	var s Stats
	var maxEle, minEle float64
	seen := false
	observe := func(e float64) {
		if !seen || e > maxEle {
			maxEle = e
		}
		if !seen || e < minEle {
			minEle = e
		}
		seen = true
	}

	for i := 1; i < len(withEle); i++ {
		prev, curr := withEle[i-1], withEle[i]
		delta := *curr.Elevation - *prev.Elevation

		if !s.Rejections.accept(prev, curr, delta) {
			s.FilteredPairs++
			continue
		}

		s.ValidPairs++
		if delta > 0 {
			s.Gain += delta
		} else {
			s.Loss -= delta
		}
		observe(*prev.Elevation)
		observe(*curr.Elevation)
	}

	if seen {
		s.Max, s.Min = &maxEle, &minEle
	}

	total := s.ValidPairs + s.FilteredPairs
	s.FilteringEfficiency = float64(s.FilteredPairs) / float64(total) * 100
	s.Coverage = float64(len(withEle)) / float64(len(points)) * 100

	elevations := make([]float64, len(withEle))
	for i, p := range withEle {
		elevations[i] = *p.Elevation
	}
	mean := stat.Mean(elevations, nil)
	s.Mean = &mean

	return s
}

// accept applies the rules in order and records the first one that fails.
func (r *Rejections) accept(prev, curr track.TrackPoint, delta float64) bool {
	dt, timed := filter.Elapsed(prev.Time, curr.Time)
	if timed && !filter.IntervalOK(dt) {
		r.Interval++
		return false
	}

	distanceKm := geo.DistanceKm(prev.Coord(), curr.Coord())
	if !filter.DistanceOK(distanceKm) {
		r.Distance++
		return false
	}

	if timed && !filter.SpeedOK(filter.SpeedKmh(distanceKm, dt.Seconds())) {
		r.Speed++
		return false
	}

	if !filter.ElevationJumpOK(delta) {
		r.Jump++
		return false
	}
	return true
}

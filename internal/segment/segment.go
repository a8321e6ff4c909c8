// Package segment splits a ride into contiguous climbs, descents and flats.
package segment

import (
	"math"

	"github.com/HaikuZen/myCCC4Worker-sub000/internal/geo"
	"github.com/HaikuZen/myCCC4Worker-sub000/internal/track"
)

// Type tags a segment.
type Type string

const (
	Climb   Type = "climb"
	Descent Type = "descent"
	Flat    Type = "flat"
)

// GradientThreshold is the slope, in percent, above which a pair counts as
// climbing (or below its negative, descending).
const GradientThreshold = 3.0

// Segment is one run of same-type pairs.
type Segment struct {
	Type            Type    `json:"type"`
	DistanceKm      float64 `json:"distance"`
	ElevationChange float64 `json:"elevationChange"`
	AverageGradient float64 `json:"averageGradient"`
	MaxGradient     float64 `json:"maxGradient"`
	StartIndex      int     `json:"startIndex"`
	EndIndex        int     `json:"endIndex"`
}

// Classify returns the segments of the ride in order. Only points with an
// elevation take part; StartIndex and EndIndex refer to positions in points.
func Classify(points []track.TrackPoint) []Segment {
	var (
		segments  []Segment
		open      *Segment
		distanceM float64
		prevIdx   = -1
	)

	flush := func() {
		if open == nil {
			return
		}
		open.DistanceKm = distanceM / 1000
		if distanceM > 0 {
			open.AverageGradient = open.ElevationChange / distanceM * 100
		}
		segments = append(segments, *open)
		open = nil
	}

	for i, curr := range points {
		if curr.Elevation == nil {
			continue
		}
		if prevIdx < 0 {
			prevIdx = i
			continue
		}
		prev := points[prevIdx]

		pairM := geo.DistanceKm(prev.Coord(), curr.Coord()) * 1000
		gradient := geo.Gradient(prev.Elevation, curr.Elevation, pairM)
		kind := classify(gradient)

		if open == nil || open.Type != kind {
			flush()
			open = &Segment{Type: kind, StartIndex: prevIdx}
			distanceM = 0
		}
		distanceM += pairM
		open.ElevationChange += *curr.Elevation - *prev.Elevation
		open.MaxGradient = math.Max(open.MaxGradient, math.Abs(gradient))
		open.EndIndex = i

		prevIdx = i
	}
	flush()

	return segments
}

func classify(gradient float64) Type {
	switch {
	case gradient > GradientThreshold:
		return Climb
	case gradient < -GradientThreshold:
		return Descent
	default:
		return Flat
	}
}

// TotalDistanceKm sums the segment distances.
func TotalDistanceKm(segments []Segment) float64 {
	var total float64
	for _, s := range segments {
		total += s.DistanceKm
	}
	return total
}

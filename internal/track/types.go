package track

import (
	"time"

	"github.com/HaikuZen/myCCC4Worker-sub000/internal/geo"
)

// Extensions carries the sensor values a device recorded with a fix.
// Fields are nil when the device did not report them.
type Extensions struct {
	HeartRate   *float64 `json:"heartRate,omitempty"`
	Cadence     *float64 `json:"cadence,omitempty"`
	Power       *float64 `json:"power,omitempty"`
	Speed       *float64 `json:"speed,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
}

func (e *Extensions) empty() bool {
	return e.HeartRate == nil && e.Cadence == nil && e.Power == nil &&
		e.Speed == nil && e.Temperature == nil
}

// TrackPoint is a single GPS fix. Points are values and are never modified
// after extraction.
type TrackPoint struct {
	Lat        float64     `json:"lat"`
	Lon        float64     `json:"lon"`
	Elevation  *float64    `json:"elevation,omitempty"`
	Time       *time.Time  `json:"time,omitempty"`
	Extensions *Extensions `json:"extensions,omitempty"`

	// Position of the fix in the source document
	Index        int `json:"index"`
	TrackIndex   int `json:"trackIndex"`
	SegmentIndex int `json:"segmentIndex"`
}

// Coord returns the point's position.
func (p TrackPoint) Coord() geo.Coord {
	return geo.Coord{Lat: p.Lat, Lon: p.Lon}
}

// HeartRate returns the recorded heart rate, if any.
func (p TrackPoint) HeartRate() (float64, bool) {
	if p.Extensions == nil || p.Extensions.HeartRate == nil {
		return 0, false
	}
	return *p.Extensions.HeartRate, true
}

// Cadence returns the recorded cadence, if any.
func (p TrackPoint) Cadence() (float64, bool) {
	if p.Extensions == nil || p.Extensions.Cadence == nil {
		return 0, false
	}
	return *p.Extensions.Cadence, true
}

// Power returns the recorded power in watts, if any.
func (p TrackPoint) Power() (float64, bool) {
	if p.Extensions == nil || p.Extensions.Power == nil {
		return 0, false
	}
	return *p.Extensions.Power, true
}

// Track is one <trk> of the document with the points of all its segments in
// recording order.
type Track struct {
	Name         string       `json:"name"`
	Type         string       `json:"type,omitempty"`
	Points       []TrackPoint `json:"-"`
	SegmentCount int          `json:"segmentCount"`
}

// Flatten returns the points of all tracks in order.
func Flatten(tracks []Track) []TrackPoint {
	n := 0
	for _, t := range tracks {
		n += len(t.Points)
	}

	points := make([]TrackPoint, 0, n)
	for _, t := range tracks {
		points = append(points, t.Points...)
	}
	return points
}

// WithElevation returns the points that carry an elevation, in order.
func WithElevation(points []TrackPoint) []TrackPoint {
	var out []TrackPoint
	for _, p := range points {
		if p.Elevation != nil {
			out = append(out, p)
		}
	}
	return out
}

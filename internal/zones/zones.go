// Package zones builds the distribution histograms and power statistics of
// a ride. Each analyzer returns nil when it has no samples to work with.
package zones

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/HaikuZen/myCCC4Worker-sub000/internal/track"
)

// DefaultMaxHeartRate is the assumed maximum heart rate in bpm.
const DefaultMaxHeartRate = 190.0

// Zone is one band of a histogram. Max is nil for an open-ended band.
type Zone struct {
	Name    string   `json:"name"`
	Min     float64  `json:"min"`
	Max     *float64 `json:"max,omitempty"`
	Count   int      `json:"count"`
	Percent float64  `json:"percentage"`
}

// speedBands are the lower bounds of the speed zones in km/h.
var speedBands = []float64{0, 15, 25, 35, 45}

var speedNames = []string{"Recovery", "Endurance", "Tempo", "Threshold", "Sprint"}

// SpeedZones buckets per-pair speeds (km/h) into five bands.
func SpeedZones(samples []float64) []Zone {
	if len(samples) == 0 {
		return nil
	}

	zones := make([]Zone, len(speedBands))
	for i, lo := range speedBands {
		zones[i] = Zone{Name: speedNames[i], Min: lo}
		if i+1 < len(speedBands) {
			hi := speedBands[i+1]
			zones[i].Max = &hi
		}
	}

	for _, v := range samples {
		zones[band(speedBands, v)].Count++
	}
	percentages(zones, len(samples))
	return zones
}

// hrBands are the lower bounds of the heart-rate zones as a fraction of max.
var hrBands = []float64{0.5, 0.6, 0.7, 0.8, 0.9}

// HeartRateZones buckets each heart-rate reading by its share of maxHR.
// Readings under 50% count in the first zone and readings at or above
// maxHR in the last. A non-positive maxHR falls back to
// DefaultMaxHeartRate.
func HeartRateZones(points []track.TrackPoint, maxHR float64) []Zone {
	if maxHR <= 0 {
		maxHR = DefaultMaxHeartRate
	}

	zones := make([]Zone, len(hrBands))
	for i, lo := range hrBands {
		hi := maxHR
		if i+1 < len(hrBands) {
			hi = hrBands[i+1] * maxHR
		}
		zones[i] = Zone{Name: fmt.Sprintf("Zone %d", i+1), Min: lo * maxHR, Max: &hi}
	}

	var n int
	for _, p := range points {
		hr, ok := p.HeartRate()
		if !ok || hr <= 0 {
			continue
		}
		zones[band(hrBands, hr/maxHR)].Count++
		n++
	}
	if n == 0 {
		return nil
	}
	percentages(zones, n)
	return zones
}

// band returns the index of the last lower bound not above v. Values below
// the first bound land in band 0.
func band(bounds []float64, v float64) int {
	idx := 0
	for i, lo := range bounds {
		if v >= lo {
			idx = i
		}
	}
	return idx
}

func percentages(zones []Zone, total int) {
	for i := range zones {
		zones[i].Percent = float64(zones[i].Count) / float64(total) * 100
	}
}

// NormalizedWindow is the rolling window, in samples, of normalized power.
const NormalizedWindow = 30

// PowerStats summarises the positive power readings of a ride.
type PowerStats struct {
	Average    float64  `json:"average"`
	Max        float64  `json:"max"`
	Normalized *float64 `json:"normalized,omitempty"`
	Samples    int      `json:"samples"`
}

// Power returns the power statistics, or nil when no point carries a
// positive power reading.
func Power(points []track.TrackPoint) *PowerStats {
	var samples []float64
	for _, p := range points {
		if w, ok := p.Power(); ok && w > 0 {
			samples = append(samples, w)
		}
	}
	if len(samples) == 0 {
		return nil
	}

	stats := &PowerStats{
		Average: stat.Mean(samples, nil),
		Max:     floats.Max(samples),
		Samples: len(samples),
	}

	if np, ok := NormalizedPower(samples); ok {
		stats.Normalized = &np
	}
	return stats
}

// NormalizedPower is the fourth root of the mean fourth power of the
// 30-sample rolling average. ok is false with fewer than 30 samples.
func NormalizedPower(samples []float64) (float64, bool) {
	if len(samples) < NormalizedWindow {
		return 0, false
	}

	var sum float64
	for i := 0; i < NormalizedWindow; i++ {
		sum += samples[i]
	}

	var fourth float64
	count := 0
	for i := NormalizedWindow - 1; i < len(samples); i++ {
		if i >= NormalizedWindow {
			sum += samples[i] - samples[i-NormalizedWindow]
		}
		fourth += math.Pow(sum/NormalizedWindow, 4)
		count++
	}

	return math.Pow(fourth/float64(count), 0.25), true
}

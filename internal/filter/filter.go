// Package filter holds the plausibility rules shared by the elevation,
// kinematics and zone analyzers. Consumer GPS units produce duplicate fixes,
// long gaps, stationary drift and altitude spikes; a pair of consecutive
// points that fails any rule here is ignored by the metric being computed.
package filter

import "time"

const (
	MinInterval = 2 * time.Second   // closer fixes are redundant
	MaxInterval = 300 * time.Second // longer gaps are stops or signal loss

	MinDistanceKm = 0.002 // stationary drift below 2 m

	MinSpeedKmh = 1.0
	MaxSpeedKmh = 70.0

	MaxElevationJumpM = 50.0
)

// IntervalOK reports whether the time between two fixes is plausible.
func IntervalOK(dt time.Duration) bool {
	return dt >= MinInterval && dt <= MaxInterval
}

// DistanceOK reports whether a pair moved far enough to count.
func DistanceOK(distanceKm float64) bool {
	return distanceKm >= MinDistanceKm
}

// SpeedKmh converts a distance covered in a number of seconds to km/h.
// Non-positive durations yield 0.
func SpeedKmh(distanceKm, seconds float64) float64 {
	if seconds <= 0 {
		return 0
	}
	return distanceKm * 3600 / seconds
}

// SpeedOK reports whether a speed is within the cycling range.
func SpeedOK(kmh float64) bool {
	return kmh >= MinSpeedKmh && kmh <= MaxSpeedKmh
}

// ElevationJumpOK reports whether an elevation change between two fixes is
// small enough to be real.
func ElevationJumpOK(deltaM float64) bool {
	return deltaM <= MaxElevationJumpM && deltaM >= -MaxElevationJumpM
}

// Elapsed returns the time between two optional timestamps. ok is false when
// either is missing.
func Elapsed(from, to *time.Time) (dt time.Duration, ok bool) {
	if from == nil || to == nil {
		return 0, false
	}
	return to.Sub(*from), true
}

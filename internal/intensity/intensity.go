// Package intensity derives effort indicators from the zone and speed
// analysis of a ride.
package intensity

import (
	"github.com/montanaflynn/stats"

	"github.com/HaikuZen/myCCC4Worker-sub000/internal/zones"
)

// Input carries the already computed pieces the indicators are built from.
type Input struct {
	Power            *zones.PowerStats
	SpeedSamples     []float64
	AverageHeartRate *float64
	MaxHeartRate     float64
}

// Indicators is the intensity block of an analysis. Each field is nil when
// the ride lacks the data behind it.
type Indicators struct {
	VariabilityIndex *float64 `json:"variabilityIndex"`
	SpeedMedian      *float64 `json:"speedMedian"`
	SpeedP95         *float64 `json:"speedP95"`
	SpeedStdDev      *float64 `json:"speedStdDev"`
	HeartRatePercent *float64 `json:"heartRatePercentOfMax"`
}

// Compute fills in every indicator the input supports.
func Compute(in Input) Indicators {
	var out Indicators

	if in.Power != nil && in.Power.Normalized != nil && in.Power.Average > 0 {
		vi := *in.Power.Normalized / in.Power.Average
		out.VariabilityIndex = &vi
	}

	if len(in.SpeedSamples) > 0 {
		data := stats.Float64Data(in.SpeedSamples)
		if med, err := data.Median(); err == nil {
			out.SpeedMedian = &med
		}
		if p95, err := data.Percentile(95); err == nil {
			out.SpeedP95 = &p95
		}
		if sd, err := data.StandardDeviation(); err == nil {
			out.SpeedStdDev = &sd
		}
	}

	maxHR := in.MaxHeartRate
	if maxHR <= 0 {
		maxHR = zones.DefaultMaxHeartRate
	}
	if in.AverageHeartRate != nil && *in.AverageHeartRate > 0 {
		pct := *in.AverageHeartRate / maxHR * 100
		out.HeartRatePercent = &pct
	}

	return out
}

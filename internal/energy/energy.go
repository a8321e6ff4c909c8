// Package energy estimates the calories burned on a ride.
package energy

import "math"

// Method names the estimation strategy that produced an Estimate.
type Method string

const (
	MethodPower             Method = "power"
	MethodHeartRate         Method = "heart_rate"
	MethodDistanceElevation Method = "distance_elevation"
)

const (
	// ReferenceMassKg is the rider mass the distance/elevation rates are
	// calibrated for.
	ReferenceMassKg = 70.0

	kcalPerKJ       = 3.6
	kcalPerMinuteHR = 8.0
	kcalPerKm       = 40.0
	kcalPerMeter    = 0.1
)

// Input is what the estimator needs from a finished analysis.
type Input struct {
	AveragePower  *float64
	MovingSeconds float64
	HasHeartRate  bool
	DistanceKm    float64
	ElevationGain float64
	RiderMassKg   float64
}

// Breakdown holds the contribution of each strategy. Unused entries are nil.
type Breakdown struct {
	Base      *float64 `json:"base"`
	Elevation *float64 `json:"elevation"`
	HeartRate *float64 `json:"heartRate"`
	Power     *float64 `json:"power"`
}

// Estimate is the calorie estimate and how it was reached.
type Estimate struct {
	Calories  int       `json:"calories"`
	Method    Method    `json:"method"`
	Breakdown Breakdown `json:"breakdown"`
}

// Compute picks the first strategy the input supports: measured power,
// then heart rate, then distance and climbing scaled by rider mass.
func Compute(in Input) Estimate {
	switch {
	case in.AveragePower != nil && *in.AveragePower > 0:
		kj := *in.AveragePower * in.MovingSeconds / 1000
		kcal := kj * kcalPerKJ
		return Estimate{
			Calories:  round(kcal),
			Method:    MethodPower,
			Breakdown: Breakdown{Power: &kcal},
		}

	case in.HasHeartRate:
		kcal := in.MovingSeconds / 60 * kcalPerMinuteHR
		return Estimate{
			Calories:  round(kcal),
			Method:    MethodHeartRate,
			Breakdown: Breakdown{HeartRate: &kcal},
		}
	}

	mass := in.RiderMassKg
	if mass <= 0 {
		mass = ReferenceMassKg
	}
	scale := mass / ReferenceMassKg
	base := in.DistanceKm * kcalPerKm * scale
	elevation := in.ElevationGain * kcalPerMeter * scale

	return Estimate{
		Calories:  round(base + elevation),
		Method:    MethodDistanceElevation,
		Breakdown: Breakdown{Base: &base, Elevation: &elevation},
	}
}

func round(v float64) int {
	return int(math.Round(v))
}

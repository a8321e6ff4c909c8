package energy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestComputePower(t *testing.T) {
	// 200 W for an hour is 720 kJ
	est := Compute(Input{
		AveragePower:  ptr(200),
		MovingSeconds: 3600,
		HasHeartRate:  true,
		DistanceKm:    30,
		ElevationGain: 400,
		RiderMassKg:   80,
	})

	assert.Equal(t, MethodPower, est.Method)
	assert.Equal(t, 2592, est.Calories)
	require.NotNil(t, est.Breakdown.Power)
	assert.InDelta(t, 2592.0, *est.Breakdown.Power, 1e-9)
	assert.Nil(t, est.Breakdown.Base)
	assert.Nil(t, est.Breakdown.Elevation)
	assert.Nil(t, est.Breakdown.HeartRate)
}

func TestComputeHeartRate(t *testing.T) {
	est := Compute(Input{
		MovingSeconds: 5400,
		HasHeartRate:  true,
		DistanceKm:    40,
	})

	assert.Equal(t, MethodHeartRate, est.Method)
	assert.Equal(t, 720, est.Calories)
	require.NotNil(t, est.Breakdown.HeartRate)
	assert.Nil(t, est.Breakdown.Power)
	assert.Nil(t, est.Breakdown.Base)
}

func TestComputeZeroPowerFallsThrough(t *testing.T) {
	est := Compute(Input{AveragePower: ptr(0), MovingSeconds: 600, HasHeartRate: true})
	assert.Equal(t, MethodHeartRate, est.Method)
	assert.Equal(t, 80, est.Calories)
}

func TestComputeDistanceElevation(t *testing.T) {
	tests := []struct {
		name      string
		mass      float64
		base      float64
		elevation float64
		calories  int
	}{
		{"reference mass", 70, 1000, 50, 1050},
		{"unset mass uses reference", 0, 1000, 50, 1050},
		{"heavier rider", 84, 1200, 60, 1260},
		{"lighter rider", 56, 800, 40, 840},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			est := Compute(Input{DistanceKm: 25, ElevationGain: 500, RiderMassKg: tt.mass})

			assert.Equal(t, MethodDistanceElevation, est.Method)
			assert.Equal(t, tt.calories, est.Calories)
			require.NotNil(t, est.Breakdown.Base)
			require.NotNil(t, est.Breakdown.Elevation)
			assert.InDelta(t, tt.base, *est.Breakdown.Base, 1e-9)
			assert.InDelta(t, tt.elevation, *est.Breakdown.Elevation, 1e-9)
			assert.Nil(t, est.Breakdown.HeartRate)
			assert.Nil(t, est.Breakdown.Power)
		})
	}
}

func TestComputeMassOnlyAffectsFallback(t *testing.T) {
	light := Compute(Input{AveragePower: ptr(180), MovingSeconds: 1800, RiderMassKg: 55})
	heavy := Compute(Input{AveragePower: ptr(180), MovingSeconds: 1800, RiderMassKg: 95})
	assert.Equal(t, light, heavy)
}

package intensity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HaikuZen/myCCC4Worker-sub000/internal/zones"
)

func ptr(v float64) *float64 { return &v }

func TestComputeEmpty(t *testing.T) {
	assert.Equal(t, Indicators{}, Compute(Input{}))
}

func TestComputeVariabilityIndex(t *testing.T) {
	got := Compute(Input{Power: &zones.PowerStats{Average: 200, Max: 600, Normalized: ptr(230)}})
	require.NotNil(t, got.VariabilityIndex)
	assert.InDelta(t, 1.15, *got.VariabilityIndex, 1e-9)

	// no normalized power below one full window
	got = Compute(Input{Power: &zones.PowerStats{Average: 200, Max: 600}})
	assert.Nil(t, got.VariabilityIndex)
}

func TestComputeSpeedDistribution(t *testing.T) {
	samples := make([]float64, 100)
	for i := range samples {
		samples[i] = float64(i + 1)
	}
	// order must not matter
	samples[0], samples[99] = samples[99], samples[0]

	got := Compute(Input{SpeedSamples: samples})
	require.NotNil(t, got.SpeedMedian)
	require.NotNil(t, got.SpeedP95)
	require.NotNil(t, got.SpeedStdDev)

	assert.InDelta(t, 50.5, *got.SpeedMedian, 1e-9)
	assert.InDelta(t, 95.0, *got.SpeedP95, 0.5)
	assert.Greater(t, *got.SpeedP95, *got.SpeedMedian)
	assert.Greater(t, *got.SpeedStdDev, 0.0)
}

func TestComputeSteadySpeed(t *testing.T) {
	got := Compute(Input{SpeedSamples: []float64{28, 28, 28, 28}})
	require.NotNil(t, got.SpeedMedian)
	assert.InDelta(t, 28.0, *got.SpeedMedian, 1e-9)
	assert.InDelta(t, 28.0, *got.SpeedP95, 1e-9)
	assert.InDelta(t, 0.0, *got.SpeedStdDev, 1e-9)
}

func TestComputeHeartRatePercent(t *testing.T) {
	got := Compute(Input{AverageHeartRate: ptr(152), MaxHeartRate: 200})
	require.NotNil(t, got.HeartRatePercent)
	assert.InDelta(t, 76.0, *got.HeartRatePercent, 1e-9)

	got = Compute(Input{AverageHeartRate: ptr(133)})
	require.NotNil(t, got.HeartRatePercent)
	assert.InDelta(t, 70.0, *got.HeartRatePercent, 1e-9)
}

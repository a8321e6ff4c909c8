package elevation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tu "github.com/HaikuZen/myCCC4Worker-sub000/internal/testutil"
	"github.com/HaikuZen/myCCC4Worker-sub000/internal/track"
)

const step = 10 * time.Second

// naiveGainLoss sums every elevation delta without any filtering. It is the
// reference the filter is measured against and is not used by the engine.
func naiveGainLoss(points []track.TrackPoint) (gain, loss, maxEle, minEle float64) {
	withEle := track.WithElevation(points)
	for i, p := range withEle {
		e := *p.Elevation
		if i == 0 || e > maxEle {
			maxEle = e
		}
		if i == 0 || e < minEle {
			minEle = e
		}
		if i == 0 {
			continue
		}
		delta := e - *withEle[i-1].Elevation
		if delta > 0 {
			gain += delta
		} else {
			loss -= delta
		}
	}
	return gain, loss, maxEle, minEle
}

// cleanRide climbs 100→200→350, drops to 50 and finishes at 125 in 25 m
// steps of 80 m every 10 s (28.8 km/h).
func cleanRide() []track.TrackPoint {
	r := tu.NewRide(tu.Elevation(100))
	for e := 125.0; e <= 350; e += 25 {
		r.Step(80, step, tu.Elevation(e))
	}
	for e := 325.0; e >= 50; e -= 25 {
		r.Step(80, step, tu.Elevation(e))
	}
	return r.Profile(80, step, 75, 100, 125).Points()
}

// noisyRide follows the same landmarks but reaches 350 and 50 through
// single-sample jumps, and carries a burst of sub-2s duplicate fixes and two
// altitude spikes on flat ground.
func noisyRide() []track.TrackPoint {
	return tu.NewRide(tu.Elevation(100)).
		Profile(80, step, 125, 150, 175, 200, 200).
		Step(0, time.Second, tu.Elevation(212)).
		Step(0, time.Second, tu.Elevation(200)).
		Step(80, 8*time.Second, tu.Elevation(200)).
		Profile(80, step, 290, 200).
		Profile(80, step, 350, 325, 300, 275, 250, 225, 200).
		Profile(80, step, 50, 75, 100, 125).
		Profile(80, step, 125, 40, 125).
		Points()
}

func TestCleanProfile(t *testing.T) {
	// the five landmark samples summed naively
	landmarks := tu.NewRide(tu.Elevation(100)).Profile(500, time.Minute, 200, 350, 50, 125).Points()
	gain, loss, maxEle, minEle := naiveGainLoss(landmarks)
	assert.Equal(t, 325.0, gain)
	assert.Equal(t, 300.0, loss)
	assert.Equal(t, 25.0, gain-loss)
	assert.Equal(t, 350.0, maxEle)
	assert.Equal(t, 50.0, minEle)

	s := Filter(cleanRide())
	assert.InDelta(t, 325.0, s.Gain, 1e-9)
	assert.InDelta(t, 300.0, s.Loss, 1e-9)
	assert.InDelta(t, 25.0, s.Gain-s.Loss, 1e-9)
	require.NotNil(t, s.Max)
	require.NotNil(t, s.Min)
	assert.Equal(t, 350.0, *s.Max)
	assert.Equal(t, 50.0, *s.Min)
	assert.Equal(t, 300.0, s.Range())
	assert.Zero(t, s.FilteredPairs)
	assert.Zero(t, s.FilteringEfficiency)
	assert.Equal(t, 100.0, s.Coverage)
}

func TestNoisyProfileFilteredVersusNaive(t *testing.T) {
	points := noisyRide()

	naiveGain, naiveLoss, _, _ := naiveGainLoss(points)
	s := Filter(points)

	assert.InDelta(t, 175.0, s.Gain, 1e-9)
	assert.InDelta(t, 150.0, s.Loss, 1e-9)
	assert.InDelta(t, 512.0, naiveGain, 1e-9)
	assert.InDelta(t, 487.0, naiveLoss, 1e-9)
	assert.Greater(t, naiveGain, s.Gain, "naive sum should over-report gain on noisy data")
	assert.Greater(t, naiveLoss, s.Loss, "naive sum should over-report loss on noisy data")

	assert.Equal(t, 350.0, *s.Max)
	assert.Equal(t, 50.0, *s.Min)

	assert.Equal(t, Rejections{Interval: 2, Jump: 6}, s.Rejections)
	assert.Equal(t, 8, s.FilteredPairs)
	assert.Equal(t, len(points)-1-8, s.ValidPairs)
	assert.InDelta(t, 8.0/float64(len(points)-1)*100, s.FilteringEfficiency, 1e-9)
}

func TestFilteredNeverExceedsNaive(t *testing.T) {
	rides := map[string][]track.TrackPoint{
		"clean": cleanRide(),
		"noisy": noisyRide(),
		"fast and stationary": tu.NewRide(tu.Elevation(10)).
			Step(80, 2*time.Second, tu.Elevation(20)). // 144 km/h
			Step(1, step, tu.Elevation(35)).           // drift
			Step(80, step, tu.Elevation(30)).
			Points(),
	}

	for name, points := range rides {
		t.Run(name, func(t *testing.T) {
			naiveGain, naiveLoss, _, _ := naiveGainLoss(points)
			s := Filter(points)
			assert.LessOrEqual(t, s.Gain, naiveGain+1e-9)
			assert.LessOrEqual(t, s.Loss, naiveLoss+1e-9)
			assert.GreaterOrEqual(t, s.Gain, 0.0)
			assert.GreaterOrEqual(t, s.Loss, 0.0)
		})
	}
}

func TestFilterRules(t *testing.T) {
	points := tu.NewRide(tu.Elevation(10)).
		Step(80, 2*time.Second, tu.Elevation(20)). // 144 km/h
		Step(1, step, tu.Elevation(35)).           // 1 m of drift
		Step(80, step, tu.Elevation(30)).
		Step(80, 400*time.Second, tu.Elevation(40)). // gap
		Step(3, 20*time.Second, tu.Elevation(41)).   // 0.54 km/h
		Points()

	s := Filter(points)
	assert.Equal(t, Rejections{Interval: 1, Distance: 1, Speed: 2}, s.Rejections)
	assert.Equal(t, 1, s.ValidPairs)
	assert.InDelta(t, 5.0, s.Loss, 1e-9)
	assert.Zero(t, s.Gain)
	assert.Equal(t, 35.0, *s.Max)
	assert.Equal(t, 30.0, *s.Min)
}

func TestFilterWithoutTimestamps(t *testing.T) {
	points := tu.NewRide(tu.Elevation(100), tu.NoTime()).
		Step(500, 0, tu.Elevation(140), tu.NoTime()).
		Step(500, 0, tu.Elevation(200), tu.NoTime()). // jump
		Step(1, 0, tu.Elevation(190), tu.NoTime()).   // drift
		Step(500, 0, tu.Elevation(170), tu.NoTime()).
		Points()

	s := Filter(points)
	assert.InDelta(t, 40.0, s.Gain, 1e-9)
	assert.InDelta(t, 20.0, s.Loss, 1e-9)
	assert.Equal(t, Rejections{Distance: 1, Jump: 1}, s.Rejections)
}

func TestFilterInsufficientElevation(t *testing.T) {
	assert.Equal(t, Stats{}, Filter(nil))

	one := tu.NewRide(tu.Elevation(100)).Steps(3, 80, step).Points()
	s := Filter(one)
	assert.Equal(t, Stats{}, s)
	assert.Nil(t, s.Max)
	assert.Nil(t, s.Mean)
	assert.Zero(t, s.Range())
}

func TestCoverageAndMean(t *testing.T) {
	points := tu.NewRide(tu.Elevation(100)).
		Step(80, step).
		Step(80, step, tu.Elevation(110)).
		Step(80, step).
		Points()

	s := Filter(points)
	assert.Equal(t, 50.0, s.Coverage)
	require.NotNil(t, s.Mean)
	assert.Equal(t, 105.0, *s.Mean)
	// the two elevation fixes are 160 m and 20 s apart
	assert.Equal(t, 1, s.ValidPairs)
	assert.InDelta(t, 10.0, s.Gain, 1e-9)
}

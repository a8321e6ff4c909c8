package analysis

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/HaikuZen/myCCC4Worker-sub000/internal/elevation"
	"github.com/HaikuZen/myCCC4Worker-sub000/internal/geo"
	"github.com/HaikuZen/myCCC4Worker-sub000/internal/kinematics"
	"github.com/HaikuZen/myCCC4Worker-sub000/internal/track"
)

// summarize derives the ride totals. The kinematics are returned as well
// so the zone analysis can reuse the accepted speed samples.
func summarize(points []track.TrackPoint) (Summary, kinematics.Stats) {
	kin := kinematics.Compute(points)
	ele := elevation.Filter(points)

	s := Summary{
		TotalDistanceKm: kin.DistanceKm,
		TotalTime:       kin.TotalSeconds,
		MovingTime:      kin.MovingSeconds,
		AverageSpeed:    kin.AverageSpeedKmh,
		MaxSpeed:        kin.MaxSpeedKmh,

		ElevationGain:  ele.Gain,
		ElevationLoss:  ele.Loss,
		MaxElevation:   ele.Max,
		MinElevation:   ele.Min,
		ElevationRange: ele.Range(),

		PointCount: len(points),

		ValidElevationPairs:    ele.ValidPairs,
		FilteredElevationPairs: ele.FilteredPairs,
		FilteringEfficiency:    ele.FilteringEfficiency,
		ElevationCoverage:      ele.Coverage,
		MeanElevation:          ele.Mean,
	}

	var hr, cad, power []float64
	for _, p := range points {
		if v, ok := p.HeartRate(); ok && v > 0 {
			hr = append(hr, v)
		}
		if v, ok := p.Cadence(); ok && v > 0 {
			cad = append(cad, v)
		}
		if v, ok := p.Power(); ok && v > 0 {
			power = append(power, v)
		}
	}
	s.AverageHeartRate = mean(hr)
	s.AverageCadence = mean(cad)
	s.AveragePower = mean(power)
	if len(hr) > 0 {
		m := floats.Max(hr)
		s.MaxHeartRate = &m
	}

	s.StartTime, s.EndTime = timeSpan(points)
	return s, kin
}

func mean(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	m := stat.Mean(values, nil)
	return &m
}

// timeSpan returns the first and last timestamps of the ride.
func timeSpan(points []track.TrackPoint) (start, end *time.Time) {
	for i := range points {
		if points[i].Time != nil {
			t := *points[i].Time
			start = &t
			break
		}
	}
	for i := len(points) - 1; i >= 0; i-- {
		if points[i].Time != nil {
			t := *points[i].Time
			end = &t
			break
		}
	}
	return start, end
}

// Profile returns cumulative distance against elevation for every
// elevation-bearing point, keeping every stride-th sample so that at most
// maxPoints remain. A maxPoints of 0 or less disables the cap.
func Profile(points []track.TrackPoint, maxPoints int) []ProfilePoint {
	var (
		profile []ProfilePoint
		km      float64
	)
	for i, p := range points {
		if i > 0 {
			km += geo.DistanceKm(points[i-1].Coord(), p.Coord())
		}
		if p.Elevation != nil {
			profile = append(profile, ProfilePoint{DistanceKm: km, Elevation: *p.Elevation})
		}
	}

	if maxPoints <= 0 || len(profile) <= maxPoints {
		return profile
	}

	stride := int(math.Ceil(float64(len(profile)) / float64(maxPoints)))
	sampled := make([]ProfilePoint, 0, maxPoints)
	for i := 0; i < len(profile); i += stride {
		sampled = append(sampled, profile[i])
	}
	return sampled
}

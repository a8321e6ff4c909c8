// Package analysis turns a GPX document into a ride analysis: totals,
// filtered elevation, segments, zone histograms and an energy estimate.
package analysis

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/HaikuZen/myCCC4Worker-sub000/internal/energy"
	"github.com/HaikuZen/myCCC4Worker-sub000/internal/geo"
	"github.com/HaikuZen/myCCC4Worker-sub000/internal/gpx"
	"github.com/HaikuZen/myCCC4Worker-sub000/internal/intensity"
	"github.com/HaikuZen/myCCC4Worker-sub000/internal/monitoring"
	"github.com/HaikuZen/myCCC4Worker-sub000/internal/segment"
	"github.com/HaikuZen/myCCC4Worker-sub000/internal/track"
	"github.com/HaikuZen/myCCC4Worker-sub000/internal/zones"
)

// Options configures an Analyzer.
type Options struct {
	// RiderWeightKg is used when a call passes no rider mass.
	RiderWeightKg float64
	// MaxHeartRate anchors the heart-rate zones.
	MaxHeartRate float64
	// ProfileMaxPoints caps the elevation profile. A negative value keeps
	// every sample.
	ProfileMaxPoints int
}

// DefaultOptions returns the options used for zero fields.
func DefaultOptions() Options {
	return Options{
		RiderWeightKg:    energy.ReferenceMassKg,
		MaxHeartRate:     zones.DefaultMaxHeartRate,
		ProfileMaxPoints: 500,
	}
}

// Analyzer runs analyses. It holds no state beyond its options and is safe
// for concurrent use.
type Analyzer struct {
	opts Options
}

// New returns an Analyzer. Zero or negative mass and heart rate, and a zero
// profile cap, take the defaults.
func New(opts Options) *Analyzer {
	def := DefaultOptions()
	if opts.RiderWeightKg <= 0 {
		opts.RiderWeightKg = def.RiderWeightKg
	}
	if opts.MaxHeartRate <= 0 {
		opts.MaxHeartRate = def.MaxHeartRate
	}
	if opts.ProfileMaxPoints == 0 {
		opts.ProfileMaxPoints = def.ProfileMaxPoints
	}
	return &Analyzer{opts: opts}
}

// Options returns the effective options.
func (a *Analyzer) Options() Options {
	return a.opts
}

// Analyze parses raw GPX text and analyses it. A riderMassKg of zero or
// less uses the configured rider weight.
func (a *Analyzer) Analyze(raw []byte, riderMassKg float64) (*Result, error) {
	return a.AnalyzeReader(bytes.NewReader(raw), riderMassKg)
}

// AnalyzeReader parses GPX from r and analyses it.
func (a *Analyzer) AnalyzeReader(r io.Reader, riderMassKg float64) (*Result, error) {
	doc, err := gpx.ParseReader(r)
	if err != nil {
		return nil, err
	}
	return a.AnalyzeDocument(doc, riderMassKg)
}

// AnalyzeFile opens and analyses a GPX file.
func (a *Analyzer) AnalyzeFile(path string, riderMassKg float64) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			monitoring.Logf("Warning: failed to close %s: %v", path, cerr)
		}
	}()
	return a.AnalyzeReader(f, riderMassKg)
}

// AnalyzeDocument analyses an already parsed document. It fails only when
// the document has no usable track point; a single point yields a result
// whose summary carries InsufficientData.
func (a *Analyzer) AnalyzeDocument(doc *gpx.GPX, riderMassKg float64) (*Result, error) {
	tracks, err := track.Extract(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to extract tracks: %w", err)
	}

	mass := riderMassKg
	if mass <= 0 {
		mass = a.opts.RiderWeightKg
	}

	points := track.Flatten(tracks)
	res := &Result{
		Metadata: metadata(doc, points, mass),
		Tracks:   trackInfos(tracks),
		Points:   points,
	}

	if len(points) < 2 {
		res.Summary = Summary{Error: InsufficientData}
		monitoring.Logf("analysis %s: %s (%d point)", res.Metadata.AnalysisID, InsufficientData, len(points))
		return res, nil
	}

	sum, kin := summarize(points)
	res.Summary = sum
	res.Segments = segment.Classify(points)

	power := zones.Power(points)
	hrZones := zones.HeartRateZones(points, a.opts.MaxHeartRate)
	est := energy.Compute(energy.Input{
		AveragePower:  sum.AveragePower,
		MovingSeconds: sum.MovingTime,
		HasHeartRate:  hrZones != nil,
		DistanceKm:    sum.TotalDistanceKm,
		ElevationGain: sum.ElevationGain,
		RiderMassKg:   mass,
	})

	res.Analysis = Analysis{
		SpeedZones:       zones.SpeedZones(kin.Samples),
		HeartRateZones:   hrZones,
		Power:            power,
		ElevationProfile: Profile(points, a.opts.ProfileMaxPoints),
		Intensity: intensity.Compute(intensity.Input{
			Power:            power,
			SpeedSamples:     kin.Samples,
			AverageHeartRate: sum.AverageHeartRate,
			MaxHeartRate:     a.opts.MaxHeartRate,
		}),
		Calories: &est,
	}

	monitoring.Logf("analysis %s: %d points, %.2f km, %d/%d elevation pairs filtered, %d kcal (%s)",
		res.Metadata.AnalysisID, len(points), sum.TotalDistanceKm,
		sum.FilteredElevationPairs, sum.ValidElevationPairs+sum.FilteredElevationPairs,
		est.Calories, est.Method)

	return res, nil
}

func metadata(doc *gpx.GPX, points []track.TrackPoint, mass float64) Metadata {
	trackCount, segmentCount, _ := doc.Stats()
	md := Metadata{
		AnalysisID:   uuid.NewString(),
		Name:         doc.DisplayName(),
		Creator:      doc.Creator,
		Version:      doc.Version,
		TrackCount:   trackCount,
		SegmentCount: segmentCount,
		PointCount:   len(points),
		RiderMassKg:  mass,
	}
	if ts, ok := track.ParseTime(doc.DocumentTime()); ok {
		md.Time = &ts
	}

	coords := make([]geo.Coord, len(points))
	for i, p := range points {
		coords[i] = p.Coord()
	}
	if box, ok := geo.Bounds(coords); ok {
		md.Bounds = &box
	}
	return md
}

func trackInfos(tracks []track.Track) []TrackInfo {
	infos := make([]TrackInfo, len(tracks))
	for i, t := range tracks {
		infos[i] = TrackInfo{
			Name:         t.Name,
			Type:         t.Type,
			SegmentCount: t.SegmentCount,
			PointCount:   len(t.Points),
			DistanceKm:   pathDistanceKm(t.Points),
		}
	}
	return infos
}

func pathDistanceKm(points []track.TrackPoint) float64 {
	var km float64
	for i := 1; i < len(points); i++ {
		km += geo.DistanceKm(points[i-1].Coord(), points[i].Coord())
	}
	return km
}

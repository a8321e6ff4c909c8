package analysis

import (
	"encoding/json"
	"time"

	"github.com/HaikuZen/myCCC4Worker-sub000/internal/energy"
	"github.com/HaikuZen/myCCC4Worker-sub000/internal/geo"
	"github.com/HaikuZen/myCCC4Worker-sub000/internal/intensity"
	"github.com/HaikuZen/myCCC4Worker-sub000/internal/segment"
	"github.com/HaikuZen/myCCC4Worker-sub000/internal/track"
	"github.com/HaikuZen/myCCC4Worker-sub000/internal/zones"
)

// InsufficientData is the summary error of a ride with fewer than two
// usable points.
const InsufficientData = "Insufficient data points for analysis"

// Result is everything an analysis produces for one document.
type Result struct {
	Metadata Metadata           `json:"metadata"`
	Summary  Summary            `json:"summary"`
	Tracks   []TrackInfo        `json:"tracks"`
	Points   []track.TrackPoint `json:"points"`
	Analysis Analysis           `json:"analysis"`
	Segments []segment.Segment  `json:"segments"`
}

// Metadata describes the document and the run that analysed it.
type Metadata struct {
	AnalysisID   string     `json:"analysisId"`
	Name         string     `json:"name,omitempty"`
	Creator      string     `json:"creator,omitempty"`
	Version      string     `json:"version"`
	Time         *time.Time `json:"time,omitempty"`
	TrackCount   int        `json:"trackCount"`
	SegmentCount int        `json:"segmentCount"`
	PointCount   int        `json:"pointCount"`
	RiderMassKg  float64    `json:"riderMass"`
	Bounds       *geo.Box   `json:"bounds,omitempty"`
}

// TrackInfo summarises one source track.
type TrackInfo struct {
	Name         string  `json:"name"`
	Type         string  `json:"type,omitempty"`
	SegmentCount int     `json:"segmentCount"`
	PointCount   int     `json:"pointCount"`
	DistanceKm   float64 `json:"distance"`
}

// Summary holds the ride totals. When the ride is too short to analyse only
// Error is set.
type Summary struct {
	Error string `json:"error,omitempty"`

	TotalDistanceKm float64 `json:"totalDistance"`
	TotalTime       float64 `json:"totalTime"`
	MovingTime      float64 `json:"movingTime"`
	AverageSpeed    float64 `json:"avgSpeed"`
	MaxSpeed        float64 `json:"maxSpeed"`

	ElevationGain  float64  `json:"elevationGain"`
	ElevationLoss  float64  `json:"elevationLoss"`
	MaxElevation   *float64 `json:"maxElevation"`
	MinElevation   *float64 `json:"minElevation"`
	ElevationRange float64  `json:"elevationRange"`

	AverageHeartRate *float64 `json:"avgHeartRate"`
	MaxHeartRate     *float64 `json:"maxHeartRate"`
	AverageCadence   *float64 `json:"avgCadence"`
	AveragePower     *float64 `json:"avgPower"`

	PointCount int        `json:"pointCount"`
	StartTime  *time.Time `json:"startTime"`
	EndTime    *time.Time `json:"endTime"`

	ValidElevationPairs    int      `json:"validElevationSegments"`
	FilteredElevationPairs int      `json:"filteredElevationSegments"`
	FilteringEfficiency    float64  `json:"elevationFilteringEfficiency"`
	ElevationCoverage      float64  `json:"elevationCoverage"`
	MeanElevation          *float64 `json:"meanElevation"`
}

// MarshalJSON writes a degraded summary as the bare error object.
func (s Summary) MarshalJSON() ([]byte, error) {
	if s.Error != "" {
		return json.Marshal(struct {
			Error string `json:"error"`
		}{s.Error})
	}
	type plain Summary
	return json.Marshal(plain(s))
}

// Analysis groups the distribution and effort results.
type Analysis struct {
	SpeedZones       []zones.Zone         `json:"speedZones"`
	HeartRateZones   []zones.Zone         `json:"heartRateZones"`
	Power            *zones.PowerStats    `json:"power"`
	ElevationProfile []ProfilePoint       `json:"elevationProfile"`
	Intensity        intensity.Indicators `json:"intensity"`
	Calories         *energy.Estimate     `json:"calories"`
}

// ProfilePoint is one sample of the elevation profile.
type ProfilePoint struct {
	DistanceKm float64 `json:"distance"`
	Elevation  float64 `json:"elevation"`
}

// Package track maps a parsed GPX document onto typed track points.
package track

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/HaikuZen/myCCC4Worker-sub000/internal/gpx"
)

// ErrNoTrackData is returned when a document yields no usable point.
var ErrNoTrackData = errors.New("no track data")

// Extract converts every track of the document. Points without numeric
// coordinates are skipped; a document with no usable point at all fails
// with ErrNoTrackData.
func Extract(doc *gpx.GPX) ([]Track, error) {
	if doc == nil {
		return nil, ErrNoTrackData
	}

	tracks := make([]Track, 0, len(doc.Tracks))
	total := 0
	for trackIdx, trk := range doc.Tracks {
		out := Track{
			Name:         strings.TrimSpace(trk.Name),
			Type:         strings.TrimSpace(trk.Type),
			SegmentCount: len(trk.Segments),
		}
		for segIdx, seg := range trk.Segments {
			for ptIdx, raw := range seg.Points {
				p, ok := MapPoint(raw, ptIdx)
				if !ok {
					continue
				}
				p.TrackIndex = trackIdx
				p.SegmentIndex = segIdx
				out.Points = append(out.Points, p)
			}
		}
		total += len(out.Points)
		tracks = append(tracks, out)
	}

	if total == 0 {
		return nil, ErrNoTrackData
	}
	return tracks, nil
}

// MapPoint is the single place where a raw <trkpt> becomes a TrackPoint.
// ok is false when latitude or longitude is missing or not a valid number.
func MapPoint(raw gpx.Point, index int) (p TrackPoint, ok bool) {
	lat, ok := parseNumber(raw.Lat)
	if !ok || lat < -90 || lat > 90 {
		return TrackPoint{}, false
	}
	lon, ok := parseNumber(raw.Lon)
	if !ok || lon < -180 || lon > 180 {
		return TrackPoint{}, false
	}

	p = TrackPoint{
		Lat:   lat,
		Lon:   lon,
		Index: index,
	}
	if ele, ok := parseNumber(raw.Elevation); ok {
		p.Elevation = &ele
	}
	if ts, ok := ParseTime(raw.Time); ok {
		p.Time = &ts
	}
	p.Extensions = mapExtensions(raw.Extensions)

	return p, true
}

// Local names each sensor value goes by across device dialects.
var (
	heartRateNames   = []string{"hr", "heartrate"}
	cadenceNames     = []string{"cad", "cadence"}
	powerNames       = []string{"power", "watts", "PowerInWatts"}
	speedNames       = []string{"speed"}
	temperatureNames = []string{"atemp", "temp", "temperature"}
)

// mapExtensions probes the Garmin TrackPointExtension container (whatever
// its prefix: gpxtpx, ns3, ...) and then the flat vendor tags placed directly
// under <extensions> (power, gpxdata:hr, ...). The container wins when both
// carry a value.
func mapExtensions(ext gpx.Extensions) *Extensions {
	if ext.Empty() {
		return nil
	}

	sources := make([][]gpx.Node, 0, 2)
	if container, ok := ext.Child("TrackPointExtension"); ok {
		sources = append(sources, container.Nodes)
	}
	sources = append(sources, ext.Nodes)

	out := &Extensions{
		HeartRate:   lookup(sources, heartRateNames),
		Cadence:     lookup(sources, cadenceNames),
		Power:       lookup(sources, powerNames),
		Speed:       lookup(sources, speedNames),
		Temperature: lookup(sources, temperatureNames),
	}
	if out.empty() {
		return nil
	}
	return out
}

func lookup(sources [][]gpx.Node, names []string) *float64 {
	for _, nodes := range sources {
		for _, node := range nodes {
			for _, name := range names {
				if !strings.EqualFold(node.Name(), name) {
					continue
				}
				if v, ok := parseNumber(node.Text()); ok {
					return &v
				}
			}
		}
	}
	return nil
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// timeLayouts covers what devices actually write into <time>.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.000Z",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseTime parses a GPX timestamp, trying each known layout. Results are UTC.
func ParseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

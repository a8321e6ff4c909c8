// Package merge joins the pieces of a ride that was recorded as several
// files, for example after a device restart or a battery swap.
package merge

import (
	"errors"
	"sort"
	"time"

	"github.com/HaikuZen/myCCC4Worker-sub000/internal/gpx"
	"github.com/HaikuZen/myCCC4Worker-sub000/internal/track"
)

// ErrNoDocuments is returned when there is nothing to merge.
var ErrNoDocuments = errors.New("no documents to merge")

// Stats reports what happened during the merge so callers can surface it to users.
type Stats struct {
	Documents int
	Tracks    int
	// OverlapPoints were dropped because an earlier piece already covered
	// their timestamp.
	OverlapPoints int
}

type piece struct {
	doc        *gpx.GPX
	start, end time.Time
}

// Rides orders the documents by their first timestamp and concatenates
// their tracks into one document. Documents without any timestamp follow
// the timed ones in the order given. A timed point at or before the end of
// an earlier piece is dropped, as is any segment or track left empty.
// Document-level fields come from the earliest piece.
func Rides(docs ...*gpx.GPX) (*gpx.GPX, Stats, error) {
	var pieces []piece
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		start, end := timeBounds(doc)
		pieces = append(pieces, piece{doc: doc, start: start, end: end})
	}
	if len(pieces) == 0 {
		return nil, Stats{}, ErrNoDocuments
	}

	sort.SliceStable(pieces, func(i, j int) bool {
		a, b := pieces[i].start, pieces[j].start
		if a.IsZero() || b.IsZero() {
			return !a.IsZero() && b.IsZero()
		}
		return a.Before(b)
	})

	first := pieces[0].doc
	merged := &gpx.GPX{
		Version:  first.Version,
		Creator:  first.Creator,
		Name:     first.Name,
		Time:     first.Time,
		Metadata: first.Metadata,
	}
	stats := Stats{Documents: len(pieces)}

	var covered time.Time
	for _, p := range pieces {
		for _, trk := range p.doc.Tracks {
			out := gpx.Track{Name: trk.Name, Type: trk.Type}
			for _, seg := range trk.Segments {
				kept := filterCovered(seg.Points, covered, &stats)
				if len(kept) > 0 {
					out.Segments = append(out.Segments, gpx.TrackSegment{Points: kept})
				}
			}
			if len(out.Segments) > 0 {
				merged.Tracks = append(merged.Tracks, out)
			}
		}
		if p.end.After(covered) {
			covered = p.end
		}
	}

	stats.Tracks = len(merged.Tracks)
	return merged, stats, nil
}

func filterCovered(points []gpx.Point, covered time.Time, stats *Stats) []gpx.Point {
	kept := make([]gpx.Point, 0, len(points))
	for _, pt := range points {
		if !covered.IsZero() {
			if ts, ok := track.ParseTime(pt.Time); ok && !ts.After(covered) {
				stats.OverlapPoints++
				continue
			}
		}
		kept = append(kept, pt)
	}
	return kept
}

func timeBounds(doc *gpx.GPX) (time.Time, time.Time) {
	var start time.Time
	var end time.Time

	for _, trk := range doc.Tracks {
		for _, seg := range trk.Segments {
			for _, pt := range seg.Points {
				ts, ok := track.ParseTime(pt.Time)
				if !ok {
					continue
				}
				if start.IsZero() || ts.Before(start) {
					start = ts
				}
				if end.IsZero() || ts.After(end) {
					end = ts
				}
			}
		}
	}

	return start, end
}

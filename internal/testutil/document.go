package testutil

import (
	"encoding/xml"
	"strconv"

	"github.com/tkrajina/gpxgo/gpx"

	"github.com/HaikuZen/myCCC4Worker-sub000/internal/track"
)

const trackPointExtensionNS = "http://www.garmin.com/xmlschemas/TrackPointExtension/v1"

// Document renders the ride as a GPX 1.1 document with one track and one
// segment. Heart rate and cadence go into a TrackPointExtension container,
// power into a flat <power> tag, the way Garmin exports them.
func (r *Ride) Document(name string) ([]byte, error) {
	segment := gpx.GPXTrackSegment{}
	for _, p := range r.points {
		segment.Points = append(segment.Points, toGPXPoint(p))
	}

	doc := gpx.GPX{
		Version: "1.1",
		Creator: "testutil",
		Name:    name,
		Attrs: gpx.NewGPXAttributes([]xml.Attr{
			{Name: xml.Name{Space: "xmlns", Local: "gpxtpx"}, Value: trackPointExtensionNS},
		}),
		Tracks: []gpx.GPXTrack{{
			Name:     name,
			Type:     "cycling",
			Segments: []gpx.GPXTrackSegment{segment},
		}},
	}

	return doc.ToXml(gpx.ToXmlParams{Version: "1.1", Indent: true})
}

func toGPXPoint(p track.TrackPoint) gpx.GPXPoint {
	out := gpx.GPXPoint{
		Point: gpx.Point{
			Latitude:  p.Lat,
			Longitude: p.Lon,
		},
	}
	if p.Elevation != nil {
		out.Point.Elevation = *gpx.NewNullableFloat64(*p.Elevation)
	}
	if p.Time != nil {
		out.Timestamp = *p.Time
	}

	if p.Extensions == nil {
		return out
	}

	var tpx []gpx.ExtensionNode
	if v := p.Extensions.HeartRate; v != nil {
		tpx = append(tpx, node("hr", *v))
	}
	if v := p.Extensions.Cadence; v != nil {
		tpx = append(tpx, node("cad", *v))
	}
	if len(tpx) > 0 {
		out.Extensions.Nodes = append(out.Extensions.Nodes, gpx.ExtensionNode{
			XMLName: xml.Name{Space: trackPointExtensionNS, Local: "TrackPointExtension"},
			Nodes:   tpx,
		})
	}
	if v := p.Extensions.Power; v != nil {
		out.Extensions.Nodes = append(out.Extensions.Nodes, gpx.ExtensionNode{
			XMLName: xml.Name{Local: "power"},
			Data:    strconv.FormatFloat(*v, 'f', -1, 64),
		})
	}
	return out
}

func node(local string, v float64) gpx.ExtensionNode {
	return gpx.ExtensionNode{
		XMLName: xml.Name{Space: trackPointExtensionNS, Local: local},
		Data:    strconv.FormatFloat(v, 'f', -1, 64),
	}
}

package gpx

import (
	"encoding/xml"
	"strings"
)

// Node is one element of an extension sub-tree. Devices nest sensor values
// under whatever prefix they like, so the tree stays generic and lookups go
// by local name.
type Node struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Data    string     `xml:",chardata"`
	Nodes   []Node     `xml:",any"`
}

// Name returns the element's local name without any namespace or prefix.
func (n Node) Name() string {
	return n.XMLName.Local
}

// Text returns the trimmed character data of the node.
func (n Node) Text() string {
	return strings.TrimSpace(n.Data)
}

// Child returns the first direct child with the given local name (case-insensitive).
func (n Node) Child(local string) (Node, bool) {
	return findNode(n.Nodes, local)
}

// Extensions is the content of an <extensions> element.
type Extensions struct {
	Nodes []Node `xml:",any"`
}

// Child returns the first top-level extension node with the given local name.
func (e Extensions) Child(local string) (Node, bool) {
	return findNode(e.Nodes, local)
}

// Empty reports whether the block carried no elements at all.
func (e Extensions) Empty() bool {
	return len(e.Nodes) == 0
}

func findNode(nodes []Node, local string) (Node, bool) {
	for _, n := range nodes {
		if strings.EqualFold(n.XMLName.Local, local) {
			return n, true
		}
	}
	return Node{}, false
}

// Point is a <trkpt> as written in the document. Coordinates, elevation and
// time are kept as raw text; deciding what is usable is the extractor's job.
type Point struct {
	Lat        string     `xml:"lat,attr"`
	Lon        string     `xml:"lon,attr"`
	Elevation  string     `xml:"ele"`
	Time       string     `xml:"time"`
	Extensions Extensions `xml:"extensions"`
}

// Track represents a GPX track with segments
type Track struct {
	Name     string         `xml:"name"`
	Type     string         `xml:"type"`
	Segments []TrackSegment `xml:"trkseg"`
}

// TrackSegment represents a track segment
type TrackSegment struct {
	Points []Point `xml:"trkpt"`
}

// Metadata represents GPX 1.1 metadata
type Metadata struct {
	Name        string `xml:"name"`
	Description string `xml:"desc"`
	Time        string `xml:"time"`
}

// GPX is the parsed document. GPX 1.0 files put name and time on the root
// element, 1.1 files put them under <metadata>; both are captured.
type GPX struct {
	XMLName  xml.Name `xml:"gpx"`
	Version  string   `xml:"version,attr"`
	Creator  string   `xml:"creator,attr"`
	Name     string   `xml:"name"`
	Time     string   `xml:"time"`
	Metadata Metadata `xml:"metadata"`
	Tracks   []Track  `xml:"trk"`
}

package gpx

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html/charset"
)

// ErrEmptyDocument is returned when the input holds no XML at all.
var ErrEmptyDocument = errors.New("empty GPX document")

// Parse reads and parses a GPX file
func Parse(filename string) (*GPX, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	return ParseReader(file)
}

// ParseBytes parses GPX held in memory
func ParseBytes(data []byte) (*GPX, error) {
	return ParseReader(bytes.NewReader(data))
}

// ParseReader parses GPX from an io.Reader
func ParseReader(r io.Reader) (*GPX, error) {
	decoder := xml.NewDecoder(r)
	// Exports from some devices declare ISO-8859-1 or windows-1252.
	decoder.CharsetReader = charset.NewReaderLabel

	var gpxData GPX
	if err := decoder.Decode(&gpxData); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("failed to parse GPX: %w", err)
	}

	if gpxData.Version == "" {
		gpxData.Version = "1.1"
	}

	return &gpxData, nil
}

// DisplayName returns the first non-empty document or track name.
func (g *GPX) DisplayName() string {
	if name := strings.TrimSpace(g.Metadata.Name); name != "" {
		return name
	}
	if name := strings.TrimSpace(g.Name); name != "" {
		return name
	}
	for _, track := range g.Tracks {
		if name := strings.TrimSpace(track.Name); name != "" {
			return name
		}
	}
	return ""
}

// DocumentTime returns the raw document timestamp, preferring metadata.
func (g *GPX) DocumentTime() string {
	if g.Metadata.Time != "" {
		return strings.TrimSpace(g.Metadata.Time)
	}
	return strings.TrimSpace(g.Time)
}

// Stats returns raw counts of tracks, segments and <trkpt> elements as they
// appear in the document, before any point is validated.
func (g *GPX) Stats() (trackCount, segmentCount, pointCount int) {
	trackCount = len(g.Tracks)
	for _, track := range g.Tracks {
		segmentCount += len(track.Segments)
		for _, segment := range track.Segments {
			pointCount += len(segment.Points)
		}
	}
	return
}

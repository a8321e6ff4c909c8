package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HaikuZen/myCCC4Worker-sub000/internal/geo"
	"github.com/HaikuZen/myCCC4Worker-sub000/internal/gpx"
	"github.com/HaikuZen/myCCC4Worker-sub000/internal/track"
)

func TestRideStepsAreExact(t *testing.T) {
	points := NewRide(Elevation(100)).
		Step(80, 10*time.Second, Elevation(110)).
		Step(120, 5*time.Second, NoTime()).
		Points()

	require.Len(t, points, 3)
	assert.InDelta(t, 0.080, geo.DistanceKm(points[0].Coord(), points[1].Coord()), 1e-9)
	assert.InDelta(t, 0.120, geo.DistanceKm(points[1].Coord(), points[2].Coord()), 1e-9)
	assert.Equal(t, DefaultStart.Add(10*time.Second), *points[1].Time)
	assert.Nil(t, points[2].Time)
	assert.Nil(t, points[2].Elevation)
	assert.Equal(t, 2, points[2].Index)
}

func TestDocumentRoundTrip(t *testing.T) {
	ride := NewRide(Elevation(100), HeartRate(120), Cadence(80), Power(200)).
		Profile(80, 10*time.Second, 105, 110)

	data, err := ride.Document("Fixture Ride")
	require.NoError(t, err)

	doc, err := gpx.ParseBytes(data)
	require.NoError(t, err)
	assert.Equal(t, "Fixture Ride", doc.DisplayName())

	tracks, err := track.Extract(doc)
	require.NoError(t, err)
	points := track.Flatten(tracks)
	require.Len(t, points, 3)

	want := ride.Points()
	for i := range want {
		assert.InDelta(t, want[i].Lat, points[i].Lat, 1e-9)
		assert.InDelta(t, *want[i].Elevation, *points[i].Elevation, 1e-9)
		assert.True(t, want[i].Time.Equal(*points[i].Time))
	}

	hr, ok := points[0].HeartRate()
	assert.True(t, ok)
	assert.Equal(t, 120.0, hr)
	pw, ok := points[0].Power()
	assert.True(t, ok)
	assert.Equal(t, 200.0, pw)
	_, ok = points[1].HeartRate()
	assert.False(t, ok)
}

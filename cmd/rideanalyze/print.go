package main

import (
	"fmt"
	"io"
	"time"

	"github.com/HaikuZen/myCCC4Worker-sub000/internal/analysis"
)

const rule = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

func printSummary(w io.Writer, path string, res *analysis.Result) {
	name := res.Metadata.Name
	if name == "" {
		name = path
	}
	fmt.Fprintf(w, "📖 %s (%d points across %d tracks)\n", name, res.Metadata.PointCount, res.Metadata.TrackCount)

	s := res.Summary
	if s.Error != "" {
		fmt.Fprintf(w, "❌ %s\n", s.Error)
		return
	}

	fmt.Fprintf(w, "✅ %.2f km in %s (moving %s), avg %.1f km/h\n",
		s.TotalDistanceKm, duration(s.TotalTime), duration(s.MovingTime), s.AverageSpeed)
	fmt.Fprintf(w, "   ⛰️  +%.0f m / -%.0f m", s.ElevationGain, s.ElevationLoss)
	if cal := res.Analysis.Calories; cal != nil {
		fmt.Fprintf(w, ", 🔥 %d kcal (%s)", cal.Calories, cal.Method)
	}
	fmt.Fprintln(w)
}

func printStats(w io.Writer, res *analysis.Result) {
	s := res.Summary
	if s.Error != "" {
		return
	}

	fmt.Fprintf(w, "\n📊 Ride Statistics:\n")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "📏 Distance: %.2f km\n", s.TotalDistanceKm)
	fmt.Fprintf(w, "⏱️  Time: %s total, %s moving\n", duration(s.TotalTime), duration(s.MovingTime))
	fmt.Fprintf(w, "⚡ Speed: avg %.1f km/h, max %.1f km/h\n", s.AverageSpeed, s.MaxSpeed)
	fmt.Fprintf(w, "⛰️  Elevation: +%.0f m / -%.0f m", s.ElevationGain, s.ElevationLoss)
	if s.MaxElevation != nil && s.MinElevation != nil {
		fmt.Fprintf(w, " (%.0f to %.0f m)", *s.MinElevation, *s.MaxElevation)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "🔄 Elevation filter: %d kept, %d discarded (%.1f%%), coverage %.1f%%\n",
		s.ValidElevationPairs, s.FilteredElevationPairs, s.FilteringEfficiency, s.ElevationCoverage)

	if s.AverageHeartRate != nil {
		fmt.Fprintf(w, "❤️  Heart rate: avg %.0f bpm\n", *s.AverageHeartRate)
	}
	if s.AverageCadence != nil {
		fmt.Fprintf(w, "🚴 Cadence: avg %.0f rpm\n", *s.AverageCadence)
	}
	if p := res.Analysis.Power; p != nil {
		fmt.Fprintf(w, "💪 Power: avg %.0f W, max %.0f W", p.Average, p.Max)
		if p.Normalized != nil {
			fmt.Fprintf(w, ", NP %.0f W", *p.Normalized)
		}
		fmt.Fprintln(w)
	}

	if len(res.Analysis.SpeedZones) > 0 {
		fmt.Fprintf(w, "🎯 Speed zones:\n")
		for _, z := range res.Analysis.SpeedZones {
			fmt.Fprintf(w, "   • %-10s %5.1f%%\n", z.Name, z.Percent)
		}
	}
	if len(res.Analysis.HeartRateZones) > 0 {
		fmt.Fprintf(w, "🎯 Heart rate zones:\n")
		for _, z := range res.Analysis.HeartRateZones {
			fmt.Fprintf(w, "   • %-10s %5.1f%%\n", z.Name, z.Percent)
		}
	}

	if len(res.Segments) > 0 {
		fmt.Fprintf(w, "📈 Segments: %d\n", len(res.Segments))
		for _, seg := range res.Segments {
			fmt.Fprintf(w, "   • %-7s %6.2f km %+6.0f m %+5.1f%%\n",
				seg.Type, seg.DistanceKm, seg.ElevationChange, seg.AverageGradient)
		}
	}
	fmt.Fprintln(w, rule)
}

func duration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second)).Round(time.Second)
}

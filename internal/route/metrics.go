package route

import (
	"math"

	"backend-pathpal/internal/poi"
	"backend-pathpal/internal/shared/geo"
)

// Real paths are longer than the straight lines between stops.
const inefficiencyFactor = 1.3

type modeProfile struct {
	avgSpeedMph float64
	minMiles    float64
	maxMiles    float64
	minMinutes  int
	maxMinutes  int
}

var modeProfiles = map[poi.Mode]modeProfile{
	poi.ModeWalk:   {avgSpeedMph: 3, minMiles: 1.5, maxMiles: 3, minMinutes: 30, maxMinutes: 150},
	poi.ModeWheels: {avgSpeedMph: 8, minMiles: 4, maxMiles: 12, minMinutes: 156, maxMinutes: 420},
}

// CalculateMetrics sums the haversine distance over consecutive stops,
// applies the inefficiency factor, converts to an ETA at the mode's
// average speed, and clamps both values into the mode's display band.
// The clamped distance and time are intentionally not reconciled with
// each other; the band keeps estimates believable for any curated stop
// pattern.
func CalculateMetrics(r Route) Metrics {
	stops := r.Resolve()

	total := 0.0
	for i := 0; i < len(stops)-1; i++ {
		total += geo.HaversineMiles(stops[i].Lat, stops[i].Lng, stops[i+1].Lat, stops[i+1].Lng)
	}
	total *= inefficiencyFactor

	profile, ok := modeProfiles[r.Mode]
	if !ok {
		profile = modeProfiles[poi.ModeWalk]
	}

	minutes := int(math.Round(total / profile.avgSpeedMph * 60))

	return Metrics{
		DistanceMiles: clampFloat(total, profile.minMiles, profile.maxMiles),
		TimeMinutes:   clampInt(minutes, profile.minMinutes, profile.maxMinutes),
	}
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Package pricing implements the dynamic fare formula: a seat scarcity
// factor, a time-to-departure factor and a demand multiplier applied to the
// base fare, bounded so the result never drops below 60% or climbs above
// 400% of the base fare. Everything here is pure; callers pass the reference
// time explicitly and may compute concurrently without synchronization.
package pricing

import (
	"math"
	"strings"
	"time"

	"github.com/mtereshin/skyfare/internal/domain"
)

const (
	kSeat = 1.2 // maximum scarcity uplift
	pSeat = 1.5 // exponent for the non-linear scarcity curve

	// Hours assumed when the departure string is absent or unparsable.
	farFutureHours = 9999.0

	minFareFloor = 1.0 // floor when the base fare is zero or negative
)

// Compute returns the dynamic price for one flight. It is total: malformed
// inputs are clamped, never rejected.
func Compute(baseFare float64, seatsAvailable, seatsTotal int, departure string, demandIndex float64, ref time.Time) float64 {
	baseFare = normalizeBaseFare(baseFare)
	seatsTotal = normalizeSeatsTotal(seatsTotal)
	seatsAvailable = clampInt(seatsAvailable, 0, seatsTotal)
	demandIndex = clampFloat(demandIndex, 0.5, 5.0)

	seatsPct := float64(seatsAvailable) / float64(seatsTotal)
	seatFactor := kSeat * math.Pow(1-seatsPct, pSeat)
	timeFactor := timeFactorFor(hoursToDeparture(departure, ref))

	dynamic := baseFare * (1 + seatFactor) * (1 + timeFactor) * demandIndex

	minPrice := baseFare * 0.6
	maxPrice := baseFare * 4.0
	if baseFare <= 0 {
		minPrice = minFareFloor
		maxPrice = math.Max(minFareFloor, maxPrice)
	}
	dynamic = math.Max(minPrice, math.Min(dynamic, maxPrice))

	return math.Round(dynamic*100) / 100
}

// Quote prices one flight record. A zero demand index means the seeded row
// carried no signal and defaults to 1.0 before clamping.
func Quote(f domain.Flight, ref time.Time) float64 {
	demand := f.DemandIndex
	if demand == 0 {
		demand = 1.0
	}
	return Compute(f.BaseFare, f.SeatsAvailable, f.SeatsTotal, f.DepartureTime, demand, ref)
}

func normalizeBaseFare(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func normalizeSeatsTotal(v int) int {
	if v <= 0 {
		return 1
	}
	return v
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

func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return 1.0
	}
	return math.Max(lo, math.Min(v, hi))
}

// hoursToDeparture parses the departure string and returns the non-negative
// hours between the reference time and departure. Unparsable or empty
// departures read as far in the future, which maps to a zero time factor.
func hoursToDeparture(departure string, ref time.Time) float64 {
	dep, ok := parseDeparture(departure)
	if !ok {
		return farFutureHours
	}
	return math.Max(dep.Sub(ref).Hours(), 0)
}

var departureLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02",
}

func parseDeparture(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	// The dataset mixes "date time" and "dateTtime" forms.
	s = strings.Replace(s, " ", "T", 1)
	for _, layout := range departureLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	// Last resort: a parsable date with trailing junk.
	if idx := strings.Index(s, "T"); idx > 0 {
		if t, err := time.Parse("2006-01-02", s[:idx]); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func timeFactorFor(hours float64) float64 {
	switch {
	case hours > 168:
		return 0.00
	case hours > 72:
		return 0.05
	case hours > 24:
		return 0.15
	case hours > 6:
		return 0.35
	default:
		return 0.60
	}
}

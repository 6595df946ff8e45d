// Package scoring implements band-score arithmetic: half-point rounding,
// overall band computation, raw-score conversion for the objective
// sections, and the writing word-count rules.
package scoring

import "math"

// Band limits. Scores move in half-point increments.
const (
	MinBand = 0.0
	MaxBand = 9.0
)

// RoundHalf rounds a score to the nearest half band, ties rounding up
// (6.25 becomes 6.5, 6.75 becomes 7.0), then clamps to the valid range.
func RoundHalf(v float64) float64 {
	rounded := math.Floor(v*2+0.5) / 2
	return Clamp(rounded)
}

// Clamp restricts v to the valid band range.
func Clamp(v float64) float64 {
	if v < MinBand {
		return MinBand
	}
	if v > MaxBand {
		return MaxBand
	}
	return v
}

// Valid reports whether v is a representable band score: within range and
// on a half-point step.
func Valid(v float64) bool {
	if v < MinBand || v > MaxBand {
		return false
	}
	return v*2 == math.Trunc(v*2)
}

// Overall computes the overall band from the four section bands: the
// arithmetic mean rounded to the nearest half, ties up.
func Overall(listening, reading, writing, speaking float64) float64 {
	mean := (listening + reading + writing + speaking) / 4
	return RoundHalf(mean)
}

// CriteriaBand averages per-criterion scores into a single section band.
// Used for writing (four criteria) and speaking (four criteria).
func CriteriaBand(criteria map[string]float64) float64 {
	if len(criteria) == 0 {
		return MinBand
	}
	sum := 0.0
	for _, v := range criteria {
		sum += v
	}
	return RoundHalf(sum / float64(len(criteria)))
}

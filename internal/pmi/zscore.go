// Package pmi implements the Player Metric Index computation engine:
// z-score normalization, position-interpolated coefficient tables,
// era corrections, and the offensive/defensive/clutch calculators for
// each methodology generation.
package pmi

import "math"

// StdFloor is the minimum standard deviation accepted by the normalizer.
// Distributions narrower than this are treated as degenerate.
const StdFloor = 0.001

// ZScore returns the standard score of value against mean/std, clamped to
// [-bound, bound]. Degenerate inputs (non-finite values, std below the
// floor) contribute zero rather than erroring.
func ZScore(value, mean, std, bound float64) float64 {
	if std < StdFloor || math.IsNaN(std) {
		return 0
	}
	if math.IsNaN(value) || math.IsInf(value, 0) || math.IsNaN(mean) || math.IsInf(mean, 0) {
		return 0
	}
	z := (value - mean) / std
	return clamp(z, -bound, bound)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

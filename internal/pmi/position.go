package pmi

import "strings"

// Position labels map onto a 1-5 scale: PG=1 through C=5, with hybrid
// labels landing on midpoints. Unrecognized labels fall back to the wing.
var positionScale = map[string]float64{
	"PG":      1,
	"SG":      2,
	"G":       1.5,
	"GUARD":   1.5,
	"GF":      2.5,
	"SF":      3,
	"PF":      4,
	"F":       3.5,
	"FORWARD": 3.5,
	"FC":      4.5,
	"C":       5,
	"CENTER":  5,
}

// DefaultPosition is the scalar used for missing or unknown position labels.
const DefaultPosition = 3.0

// PositionValue converts a free-text position label to the 1-5 scale.
// Hyphenated and slashed labels resolve to their leading component, so
// "Guard-Forward" scores as a guard (1.5) while the single token "GF" is the
// hybrid midpoint (2.5). Listed players carry the leading position as their
// primary role; the short hybrid codes are reserved for true tweeners.
func PositionValue(label string) float64 {
	label = strings.ToUpper(strings.TrimSpace(label))
	if label == "" {
		return DefaultPosition
	}
	if i := strings.IndexAny(label, "-/"); i >= 0 {
		label = label[:i]
	}
	if v, ok := positionScale[label]; ok {
		return v
	}
	return DefaultPosition
}

// InterpFraction maps a position scalar to the 0-1 blend fraction used to
// interpolate guard-archetype and center-archetype coefficients.
func InterpFraction(pos float64) float64 {
	return clamp((pos-1)/4, 0, 1)
}

// Lerp blends a guard-end and center-end coefficient by fraction t.
func Lerp(guard, center, t float64) float64 {
	return (1-t)*guard + t*center
}

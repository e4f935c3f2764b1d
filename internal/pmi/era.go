package pmi

// Era corrections come in two flavors, one per methodology generation:
//
// The classic generation applies a blanket multiplicative penalty to the
// offensive score based on the season's start year.
//
// The calibrated generation instead deflates specific raw statistics known
// to be structurally inflated (steals, blocks, rebounds) by the ratio of a
// reference era's league per-player average to that era's average, before
// the value is normalized against its own season's distribution.

// eraPenalty is one classic-generation bracket.
type eraPenalty struct {
	Year int     `yaml:"year"`
	Mult float64 `yaml:"mult"`
}

var defaultEraPenalties = []eraPenalty{
	{1946, 0.72},
	{1950, 0.76},
	{1955, 0.80},
	{1960, 0.84},
	{1965, 0.88},
	{1970, 0.92},
	{1975, 0.95},
	{1980, 0.97},
	{1985, 1.00},
}

func penaltyFor(brackets []eraPenalty, year int) float64 {
	mult := 1.0
	for _, b := range brackets {
		if year >= b.Year {
			mult = b.Mult
		}
	}
	return mult
}

// eraAverages holds historical league per-player averages for one bracket.
// Zero means the category was not recorded in that era.
type eraAverages struct {
	Steals   float64
	Blocks   float64
	Rebounds float64
}

// Bracket start years with their per-player league averages. Pre-1997 steal
// and block figures sit above the raw league averages to reflect recording
// and rules inflation in those seasons.
var eraBrackets = []struct {
	Year int
	Avg  eraAverages
}{
	{1946, eraAverages{0, 0, 8.0}},
	{1955, eraAverages{0, 0, 9.5}},
	{1960, eraAverages{0, 0, 10.0}},
	{1974, eraAverages{1.14, 0.72, 5.5}},
	{1978, eraAverages{1.20, 0.70, 5.3}},
	{1982, eraAverages{1.14, 0.66, 5.0}},
	{1986, eraAverages{1.06, 0.62, 4.8}},
	{1990, eraAverages{1.01, 0.57, 4.5}},
	{1994, eraAverages{0.96, 0.52, 4.3}},
	{1997, eraAverages{0.90, 0.50, 4.2}},
	{2000, eraAverages{0.78, 0.45, 4.2}},
	{2005, eraAverages{0.75, 0.48, 4.2}},
	{2010, eraAverages{0.72, 0.48, 4.2}},
	{2015, eraAverages{0.72, 0.48, 4.2}},
	{2020, eraAverages{0.70, 0.47, 4.3}},
	{2024, eraAverages{0.72, 0.47, 4.3}},
}

// Reference era (2010-2020) averages the calibrated weights were derived on.
var refEra = eraAverages{Steals: 0.72, Blocks: 0.48, Rebounds: 4.2}

// Deflators are the multipliers applied to raw category values before
// normalization. Always <= 1.0; 1.0 means no correction.
type Deflators struct {
	Steals   float64
	Blocks   float64
	Rebounds float64
}

// EraDeflators returns the stat-specific deflators for the latest bracket
// whose start year does not exceed the season start year.
func EraDeflators(seasonYear int) Deflators {
	avg := eraBrackets[0].Avg
	for _, b := range eraBrackets {
		if seasonYear >= b.Year {
			avg = b.Avg
		}
	}

	d := Deflators{Steals: 1, Blocks: 1, Rebounds: 1}
	if avg.Steals > 0 {
		d.Steals = minf(1, refEra.Steals/avg.Steals)
	}
	if avg.Blocks > 0 {
		d.Blocks = minf(1, refEra.Blocks/avg.Blocks)
	}
	// Rebounds only deflate when the era average materially exceeds the
	// reference (pace-inflated seasons).
	if avg.Rebounds > refEra.Rebounds*1.05 {
		d.Rebounds = minf(1, refEra.Rebounds/avg.Rebounds)
	}
	return d
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

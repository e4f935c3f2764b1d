package pmi

import (
	"fmt"
	"math"
	"sort"

	"github.com/samir-kerkar/nba-pmi-engine/internal/domain"
)

// Methodology is one generation of the metric family. Each generation owns
// its coefficient tables, era correction, clamp bound, and career policy;
// the surrounding pipeline stays identical across generations.
type Methodology interface {
	// Name identifies the generation ("classic", "calibrated").
	Name() string
	// ClampBound is the symmetric z-score clamp used by every calculator
	// in this generation.
	ClampBound() float64
	// LeagueMinutesFilter is the minutes-per-game threshold applied when
	// building league distributions for this generation.
	LeagueMinutesFilter() float64

	ComputeOffensive(row domain.SeasonStatRow, league domain.LeagueStats, pos float64) float64
	ComputeDefensive(row domain.SeasonStatRow, league domain.LeagueStats, pos float64) float64
	ComputeClutch(row domain.ClutchStatRow, league domain.ClutchLeagueStats) float64

	// AggregateCareer folds per-season scores into one lifetime figure,
	// including shrinkage toward the generation's baseline.
	AggregateCareer(seasons []SeasonScore, playoffs bool) float64

	// AWCConstant scales accumulated win contribution (score x minutes).
	AWCConstant() float64
}

// SeasonScore is one season's contribution to a career aggregate.
type SeasonScore struct {
	Score   float64
	Games   int
	Minutes float64 // per game
}

// New returns the named methodology generation with its default tables.
func New(name string) (Methodology, error) {
	switch name {
	case GenerationClassic:
		return NewClassic(), nil
	case GenerationCalibrated:
		return NewCalibrated(), nil
	default:
		return nil, fmt.Errorf("pmi: unknown generation %q", name)
	}
}

// Generation names accepted by New.
const (
	GenerationClassic    = "classic"
	GenerationCalibrated = "calibrated"
)

// rankWeightedCareer sorts season scores descending and weights the i-th
// best season by sqrt(N-i), so peak seasons count more than decline years,
// then shrinks toward the baseline by games-played trust.
func rankWeightedCareer(seasons []SeasonScore, halfLife, baseline float64) float64 {
	if len(seasons) == 0 {
		return baseline
	}

	scores := make([]float64, len(seasons))
	totalGames := 0
	for i, s := range seasons {
		scores[i] = s.Score
		totalGames += s.Games
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(scores)))

	n := len(scores)
	var weightedSum, totalWeight float64
	for i, score := range scores {
		w := math.Sqrt(float64(n - i))
		weightedSum += w * score
		totalWeight += w
	}

	avg := 0.0
	if totalWeight > 0 {
		avg = weightedSum / totalWeight
	}

	trust := float64(totalGames) / (float64(totalGames) + halfLife)
	return trust*avg + (1-trust)*baseline
}

// minutesWeightedCareer weights each season by total minutes played
// (games x minutes per game), then shrinks toward zero by games-played
// trust. A career with no recorded minutes returns zero.
func minutesWeightedCareer(seasons []SeasonScore, halfLife float64) float64 {
	if len(seasons) == 0 {
		return 0
	}

	var weightedSum, totalMinutes float64
	totalGames := 0
	for _, s := range seasons {
		minutes := float64(s.Games) * s.Minutes
		weightedSum += s.Score * minutes
		totalMinutes += minutes
		totalGames += s.Games
	}
	if totalMinutes == 0 {
		return 0
	}

	avg := weightedSum / totalMinutes
	trust := float64(totalGames) / (float64(totalGames) + halfLife)
	return trust * avg
}

// AWC is the accumulated win contribution: score x total minutes x the
// generation's scaling constant, rounded to one decimal.
func AWC(score float64, totalMinutes int, constant float64) float64 {
	return round1(score * float64(totalMinutes) * constant)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }

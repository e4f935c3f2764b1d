// Package imputer estimates steals and blocks for seasons played before the
// league recorded them (pre-1974), using L2-regularized linear regression
// trained on modern seasons.
package imputer

import (
	"github.com/samir-kerkar/nba-pmi-engine/internal/domain"
)

// FeatureCount is the fixed width of the regression feature vector.
const FeatureCount = 13

// Feature vector layout. Order is fixed; the trained coefficients are
// positional.
const (
	featPosition = iota
	featHeight
	featRebounds
	featFouls
	featAssists
	featMinutes
	featPoints
	featFGAttempts
	featLeagueFGA
	featTeamWinPct
	featOffRebounds
	featDefRebounds
	featTurnovers
)

// FeatureVector builds the regression input for one season row. Offensive
// rebounds, defensive rebounds, and turnovers are zero on legacy rows, which
// matches the zeros the model was regularized against.
func FeatureVector(row domain.SeasonStatRow, pos, height, leagueFGA float64) [FeatureCount]float64 {
	var f [FeatureCount]float64
	f[featPosition] = pos
	f[featHeight] = height
	f[featRebounds] = row.Rebounds
	f[featFouls] = row.Fouls
	f[featAssists] = row.Assists
	f[featMinutes] = row.Minutes
	f[featPoints] = row.Points
	f[featFGAttempts] = row.FGAttempts
	f[featLeagueFGA] = leagueFGA
	f[featTeamWinPct] = row.TeamWinPct
	f[featOffRebounds] = row.OffRebounds
	f[featDefRebounds] = row.DefRebounds
	f[featTurnovers] = row.Turnovers
	return f
}

// defaultHeights are inference-time fallbacks when a player has no recorded
// height, keyed by rounded position value.
var defaultHeights = map[int]float64{
	1: 74,
	2: 77,
	3: 79,
	4: 81,
	5: 83,
}

// DefaultHeight returns the positional height fallback in inches.
func DefaultHeight(pos float64) float64 {
	if h, ok := defaultHeights[int(pos+0.5)]; ok {
		return h
	}
	return 78
}

// Historical league field-goal attempts per player per game. Seasons between
// anchors interpolate linearly; seasons outside the table clamp to the
// nearest anchor.
var leagueShotVolume = []struct {
	Year int
	FGA  float64
}{
	{1947, 20.0},
	{1950, 19.5},
	{1955, 18.5},
	{1960, 18.0},
	{1965, 17.5},
	{1970, 17.0},
	{1973, 16.0},
}

// HistoricalLeagueShotVolume estimates league-average FGA per game for a
// legacy season.
func HistoricalLeagueShotVolume(year int) float64 {
	first := leagueShotVolume[0]
	if year <= first.Year {
		return first.FGA
	}
	for i := 1; i < len(leagueShotVolume); i++ {
		cur := leagueShotVolume[i]
		if year <= cur.Year {
			prev := leagueShotVolume[i-1]
			span := float64(cur.Year - prev.Year)
			t := float64(year-prev.Year) / span
			return prev.FGA + t*(cur.FGA-prev.FGA)
		}
	}
	return leagueShotVolume[len(leagueShotVolume)-1].FGA
}

package pmi

import (
	"math"

	"github.com/samir-kerkar/nba-pmi-engine/internal/domain"
)

// minFilteredRows is the smallest population the minutes filter may leave
// behind; below it the unfiltered set is used instead.
const minFilteredRows = 20

// clutchMinutesFloor filters out players without meaningful clutch time.
const clutchMinutesFloor = 1.0

// ComputeLeagueStats builds per-category mean/std pairs for one season and
// competition type. The input must be the full row population, not a
// ranking-qualified subset. Rows below minMinutes per game are excluded to
// keep garbage-time players from skewing the distribution, unless the filter
// would leave fewer than 20 rows.
func ComputeLeagueStats(rows []domain.SeasonStatRow, minMinutes float64) domain.LeagueStats {
	work := make([]domain.SeasonStatRow, 0, len(rows))
	for _, r := range rows {
		if r.GamesPlayed > 0 && r.Minutes >= minMinutes {
			work = append(work, r)
		}
	}
	if len(work) < minFilteredRows {
		work = work[:0]
		for _, r := range rows {
			if r.GamesPlayed > 0 {
				work = append(work, r)
			}
		}
	}

	collect := func(get func(domain.SeasonStatRow) float64) domain.StatMoments {
		vals := make([]float64, 0, len(work))
		for _, r := range work {
			v := get(r)
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				vals = append(vals, v)
			}
		}
		return moments(vals)
	}

	return domain.LeagueStats{
		Points:       collect(func(r domain.SeasonStatRow) float64 { return r.Points }),
		Assists:      collect(func(r domain.SeasonStatRow) float64 { return r.Assists }),
		Turnovers:    collect(func(r domain.SeasonStatRow) float64 { return r.Turnovers }),
		OffRebounds:  collect(func(r domain.SeasonStatRow) float64 { return r.OffRebounds }),
		DefRebounds:  collect(func(r domain.SeasonStatRow) float64 { return r.DefRebounds }),
		Steals:       collect(func(r domain.SeasonStatRow) float64 { return r.Steals }),
		Blocks:       collect(func(r domain.SeasonStatRow) float64 { return r.Blocks }),
		Fouls:        collect(func(r domain.SeasonStatRow) float64 { return r.Fouls }),
		FTAttempts:   collect(func(r domain.SeasonStatRow) float64 { return r.FTAttempts }),
		ThreesMade:   collect(func(r domain.SeasonStatRow) float64 { return r.ThreesMade }),
		TrueShooting: collect(func(r domain.SeasonStatRow) float64 { return r.TrueShootingPct }),
	}
}

// moments computes a population mean/std pair with the degenerate-
// distribution policy applied: fewer than two values yields std 1.0, and a
// narrower spread than the floor is raised to the floor.
func moments(vals []float64) domain.StatMoments {
	if len(vals) == 0 {
		return domain.StatMoments{Mean: 0, Std: 1}
	}

	var sum float64
	for _, v := range vals {
		sum += v
	}
	mean := sum / float64(len(vals))

	if len(vals) < 2 {
		return domain.StatMoments{Mean: mean, Std: 1}
	}

	var ss float64
	for _, v := range vals {
		d := v - mean
		ss += d * d
	}
	std := math.Sqrt(ss / float64(len(vals)))
	return domain.StatMoments{Mean: mean, Std: maxf(std, StdFloor)}
}

// FallbackLeagueStats returns approximate league-wide constants for seasons
// with no usable rows.
func FallbackLeagueStats() domain.LeagueStats {
	return domain.LeagueStats{
		Points:       domain.StatMoments{Mean: 14.0, Std: 6.5},
		Assists:      domain.StatMoments{Mean: 2.8, Std: 2.5},
		Turnovers:    domain.StatMoments{Mean: 1.5, Std: 0.8},
		OffRebounds:  domain.StatMoments{Mean: 1.0, Std: 0.8},
		DefRebounds:  domain.StatMoments{Mean: 2.5, Std: 1.5},
		Steals:       domain.StatMoments{Mean: 0.8, Std: 0.5},
		Blocks:       domain.StatMoments{Mean: 0.5, Std: 0.5},
		Fouls:        domain.StatMoments{Mean: 2.2, Std: 0.8},
		FTAttempts:   domain.StatMoments{Mean: 2.5, Std: 1.5},
		ThreesMade:   domain.StatMoments{Mean: 0.5, Std: 0.6},
		TrueShooting: domain.StatMoments{Mean: 0.540, Std: 0.05},
	}
}

// ComputeClutchLeagueStats builds distribution moments for clutch splits.
// Rows averaging under one clutch minute per game are excluded unless the
// filter would leave fewer than 20 rows. True shooting is derived from shot
// volume when the split does not carry it directly.
func ComputeClutchLeagueStats(rows []domain.ClutchStatRow) domain.ClutchLeagueStats {
	work := make([]domain.ClutchStatRow, 0, len(rows))
	for _, r := range rows {
		if r.MinutesPerGame() >= clutchMinutesFloor {
			work = append(work, r)
		}
	}
	if len(work) < minFilteredRows {
		work = rows
	}

	collect := func(get func(domain.ClutchStatRow) float64) domain.StatMoments {
		vals := make([]float64, 0, len(work))
		for _, r := range work {
			v := get(r)
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				vals = append(vals, v)
			}
		}
		return moments(vals)
	}

	tsVals := make([]float64, 0, len(work))
	for _, r := range work {
		if ts := ClutchTrueShooting(r); ts > 0 {
			tsVals = append(tsVals, ts)
		}
	}
	ts := domain.StatMoments{Mean: 0.540, Std: 0.05}
	if len(tsVals) > 0 {
		ts = moments(tsVals)
	}

	ftVals := make([]float64, 0, len(work))
	for _, r := range work {
		if r.FreeThrowPct > 0 {
			ftVals = append(ftVals, r.FreeThrowPct)
		}
	}
	ft := domain.StatMoments{Mean: 0.75, Std: 0.10}
	if len(ftVals) > 0 {
		ft = moments(ftVals)
	}

	return domain.ClutchLeagueStats{
		Points:       collect(func(r domain.ClutchStatRow) float64 { return r.Points }),
		Assists:      collect(func(r domain.ClutchStatRow) float64 { return r.Assists }),
		Steals:       collect(func(r domain.ClutchStatRow) float64 { return r.Steals }),
		Blocks:       collect(func(r domain.ClutchStatRow) float64 { return r.Blocks }),
		Turnovers:    collect(func(r domain.ClutchStatRow) float64 { return r.Turnovers }),
		OffRebounds:  collect(func(r domain.ClutchStatRow) float64 { return r.OffRebounds }),
		PlusMinus:    collect(func(r domain.ClutchStatRow) float64 { return r.PlusMinus }),
		TrueShooting: ts,
		FreeThrowPct: ft,
	}
}

// ClutchTrueShooting returns the split's true shooting, deriving it from
// points and shot volume when not provided: pts / (2 * (fga + 0.44 * fta)).
func ClutchTrueShooting(r domain.ClutchStatRow) float64 {
	if r.TrueShooting > 0 {
		return r.TrueShooting
	}
	tsa := 2 * (r.FGAttempts + 0.44*r.FTAttempts)
	if tsa <= 0 {
		return 0
	}
	return r.Points / tsa
}

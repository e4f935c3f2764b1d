package pmi

import (
	"math"
	"testing"

	"github.com/samir-kerkar/nba-pmi-engine/internal/domain"
)

// classicLeague builds a fixture where a row holding every stat at the mean
// scores zero in every category.
func classicLeague() domain.LeagueStats {
	return domain.LeagueStats{
		Points:       domain.StatMoments{Mean: 10, Std: 5},
		Assists:      domain.StatMoments{Mean: 2, Std: 1},
		Turnovers:    domain.StatMoments{Mean: 1.5, Std: 0.8},
		OffRebounds:  domain.StatMoments{Mean: 1, Std: 0.8},
		DefRebounds:  domain.StatMoments{Mean: 2.5, Std: 1.5},
		Steals:       domain.StatMoments{Mean: 0.8, Std: 0.5},
		Blocks:       domain.StatMoments{Mean: 0.5, Std: 0.5},
		Fouls:        domain.StatMoments{Mean: 2.2, Std: 0.8},
		FTAttempts:   domain.StatMoments{Mean: 2.5, Std: 1.5},
		ThreesMade:   domain.StatMoments{Mean: 0.5, Std: 0.6},
		TrueShooting: domain.StatMoments{Mean: 0.540, Std: 0.05},
	}
}

// classicMeanRow holds every offensive category at the league mean.
func classicMeanRow(year int) domain.SeasonStatRow {
	return domain.SeasonStatRow{
		Year:            year,
		Competition:     domain.CompetitionRegular,
		GamesPlayed:     70,
		Minutes:         30,
		Points:          10,
		Assists:         2,
		Turnovers:       1.5,
		OffRebounds:     1,
		DefRebounds:     2.5,
		Steals:          0.8,
		Blocks:          0.5,
		Fouls:           2.2,
		FTAttempts:      2.5,
		ThreesMade:      0.5,
		TrueShootingPct: 0.540,
	}
}

func TestClassicOffensiveGuardPointsWeight(t *testing.T) {
	c := NewClassic()
	league := classicLeague()

	// One standard deviation of scoring, everything else at the mean:
	// the score is exactly the guard points coefficient.
	row := classicMeanRow(2000)
	row.Points = 15

	if got := c.ComputeOffensive(row, league, 1); math.Abs(got-1.2) > 1e-9 {
		t.Fatalf("expected 1.2, got %v", got)
	}
}

func TestClassicOffensiveMeanRowScoresZero(t *testing.T) {
	c := NewClassic()
	if got := c.ComputeOffensive(classicMeanRow(2000), classicLeague(), 1); got != 0 {
		t.Fatalf("expected 0 for league-average guard, got %v", got)
	}
}

func TestClassicOffensiveEraPenalty(t *testing.T) {
	c := NewClassic()
	league := classicLeague()

	modern := classicMeanRow(2000)
	modern.Points = 15
	early := classicMeanRow(1946)
	early.Points = 15

	want := 0.72 * c.ComputeOffensive(modern, league, 1)
	if got := c.ComputeOffensive(early, league, 1); math.Abs(got-want) > 0.0001 {
		t.Fatalf("expected era-penalized %v, got %v", want, got)
	}
}

func TestClassicOffensivePlayoffPointsWeight(t *testing.T) {
	c := NewClassic()
	league := classicLeague()

	row := classicMeanRow(2000)
	row.Points = 15
	row.Competition = domain.CompetitionPlayoffs

	if got := c.ComputeOffensive(row, league, 1); math.Abs(got-1.45) > 1e-9 {
		t.Fatalf("expected playoff points weight 1.45, got %v", got)
	}
}

func TestClassicOffensiveMonotoneInPoints(t *testing.T) {
	c := NewClassic()
	league := classicLeague()

	prev := math.Inf(-1)
	for pts := 5.0; pts <= 35; pts += 5 {
		row := classicMeanRow(2000)
		row.Points = pts
		got := c.ComputeOffensive(row, league, 3)
		if got < prev {
			t.Fatalf("score decreased at %v ppg: %v < %v", pts, got, prev)
		}
		prev = got
	}
}

func TestClassicDefensiveSentinel(t *testing.T) {
	c := NewClassic()
	row := classicMeanRow(1965)
	row.Steals, row.Blocks, row.DefRebounds = 0, 0, 0
	row.Fouls = 3.5

	if got := c.ComputeDefensive(row, classicLeague(), 3); got != 0 {
		t.Fatalf("expected sentinel 0 for missing defensive data, got %v", got)
	}
}

func TestClassicDefensiveGuardSteals(t *testing.T) {
	c := NewClassic()
	league := classicLeague()

	row := classicMeanRow(2000)
	row.Steals = 1.3 // one std above the mean

	// 0.70 (guard steal weight) x 1.2 (scale) x 0.85 (regular dampener).
	want := 0.714
	if got := c.ComputeDefensive(row, league, 1); math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestClassicDefensivePlayoffDampener(t *testing.T) {
	c := NewClassic()
	league := classicLeague()

	reg := classicMeanRow(2000)
	reg.Steals = 1.3
	po := reg
	po.Competition = domain.CompetitionPlayoffs

	regScore := c.ComputeDefensive(reg, league, 1)
	poScore := c.ComputeDefensive(po, league, 1)
	if poScore >= regScore {
		t.Fatalf("expected playoff dampener below regular: %v >= %v", poScore, regScore)
	}
}

func TestClassicClutchMeanRowScoresZero(t *testing.T) {
	c := NewClassic()
	league := domain.ClutchLeagueStats{
		Points:       domain.StatMoments{Mean: 1.5, Std: 1},
		Assists:      domain.StatMoments{Mean: 0.4, Std: 0.3},
		Steals:       domain.StatMoments{Mean: 0.1, Std: 0.1},
		Blocks:       domain.StatMoments{Mean: 0.1, Std: 0.1},
		Turnovers:    domain.StatMoments{Mean: 0.3, Std: 0.2},
		OffRebounds:  domain.StatMoments{Mean: 0.2, Std: 0.2},
		PlusMinus:    domain.StatMoments{Mean: 0, Std: 1.5},
		TrueShooting: domain.StatMoments{Mean: 0.520, Std: 0.08},
		FreeThrowPct: domain.StatMoments{Mean: 0.75, Std: 0.10},
	}
	row := domain.ClutchStatRow{
		GamesPlayed: 50, Minutes: 150,
		Points: 1.5, Assists: 0.4, Steals: 0.1, Turnovers: 0.3,
		TrueShooting: 0.520,
	}

	// Every z is zero and the volume bonus is zero at 1.5 ppg.
	if got := c.ComputeClutch(row, league); got != 0 {
		t.Fatalf("expected 0 for league-average clutch split, got %v", got)
	}
}

func TestClassicAggregateCareerUsesPlayoffHalfLife(t *testing.T) {
	c := NewClassic()
	seasons := []SeasonScore{{Score: 6, Games: 12, Minutes: 38}}

	// Playoff careers are short; the smaller half-life trusts them sooner.
	reg := c.AggregateCareer(seasons, false)
	po := c.AggregateCareer(seasons, true)
	if po <= reg {
		t.Fatalf("expected playoff aggregate %v above regular %v", po, reg)
	}
}

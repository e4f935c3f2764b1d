package pipeline

import (
	"math"
	"testing"

	"github.com/samir-kerkar/nba-pmi-engine/internal/domain"
	"github.com/samir-kerkar/nba-pmi-engine/internal/pmi"
)

func scoredRow(season string, year, gp int, mpg, ppg, pmiScore float64) domain.SeasonStatRow {
	return domain.SeasonStatRow{
		Season:          season,
		Year:            year,
		Competition:     domain.CompetitionRegular,
		GamesPlayed:     gp,
		Minutes:         mpg,
		Points:          ppg,
		Rebounds:        6,
		Assists:         3,
		Steals:          1,
		Blocks:          0.5,
		FieldGoalPct:    0.46,
		TrueShootingPct: 0.560,
		OPMI:            pmiScore * 0.7,
		DPMI:            pmiScore * 0.3,
		PMI:             pmiScore,
	}
}

func TestBuildSummaryTotalsAndSpan(t *testing.T) {
	pl := domain.Player{
		ID:       "p1",
		Name:     "Test Player",
		Position: "SF",
		Regular: []domain.SeasonStatRow{
			scoredRow("1984-85", 1984, 80, 36, 20, 5.0),
			scoredRow("1985-86", 1985, 80, 36, 24, 6.5),
			scoredRow("1986-87", 1986, 40, 30, 18, 4.0),
		},
	}

	sum := buildSummary(pl, domain.CompetitionRegular, pmi.NewClassic())

	if sum.SeasonCount != 3 || sum.GamesPlayed != 200 {
		t.Fatalf("unexpected totals: %d seasons, %d gp", sum.SeasonCount, sum.GamesPlayed)
	}
	if sum.Years != "1984-1986" {
		t.Fatalf("unexpected span %q", sum.Years)
	}

	wantMinutes := 80*36 + 80*36 + 40*30
	if sum.TotalMinutes != wantMinutes {
		t.Fatalf("expected %d minutes, got %d", wantMinutes, sum.TotalMinutes)
	}

	// GP-weighted scoring average: (20*80 + 24*80 + 18*40) / 200 = 21.2.
	if math.Abs(sum.Points-21.2) > 1e-9 {
		t.Fatalf("expected 21.2 ppg, got %v", sum.Points)
	}

	if sum.PeakPMI != 6.5 || sum.PeakSeason != "1985-86" {
		t.Fatalf("unexpected peak: %v in %s", sum.PeakPMI, sum.PeakSeason)
	}
	if sum.TrueShootingPct != 0.560 {
		t.Fatalf("expected ts 0.560, got %v", sum.TrueShootingPct)
	}
	if math.Abs(sum.RelativeTSPct-0.020) > 1e-9 {
		t.Fatalf("expected rTS 0.020, got %v", sum.RelativeTSPct)
	}
	if sum.PMI <= 0 {
		t.Fatalf("expected positive career PMI, got %v", sum.PMI)
	}

	wantAWC := pmi.AWC(sum.PMI, sum.TotalMinutes, pmi.NewClassic().AWCConstant())
	if sum.AWC != wantAWC {
		t.Fatalf("expected AWC %v, got %v", wantAWC, sum.AWC)
	}
}

func TestBuildSummaryActiveSpan(t *testing.T) {
	pl := domain.Player{
		ID:     "p2",
		Active: true,
		Regular: []domain.SeasonStatRow{
			scoredRow("2019-20", 2019, 70, 34, 25, 7.0),
			scoredRow("2020-21", 2020, 70, 34, 26, 7.2),
		},
	}

	sum := buildSummary(pl, domain.CompetitionRegular, pmi.NewCalibrated())
	if sum.Years != "2019-pres." {
		t.Fatalf("unexpected active span %q", sum.Years)
	}
}

func TestBuildSummarySingleSeasonSpan(t *testing.T) {
	pl := domain.Player{
		ID: "p3",
		Playoffs: []domain.SeasonStatRow{
			scoredRow("1994-95", 1994, 18, 40, 28, 8.0),
		},
	}
	// Active players still show a closed span for playoff records.
	pl.Active = true

	sum := buildSummary(pl, domain.CompetitionPlayoffs, pmi.NewClassic())
	if sum.Years != "1994" {
		t.Fatalf("unexpected span %q", sum.Years)
	}
	if sum.Competition != domain.CompetitionPlayoffs {
		t.Fatalf("unexpected competition %s", sum.Competition)
	}
}

func TestBuildSummaryNegativePeak(t *testing.T) {
	pl := domain.Player{
		ID:       "p6",
		Position: "C",
		Regular: []domain.SeasonStatRow{
			scoredRow("1990-91", 1990, 70, 28, 8, -2.5),
			scoredRow("1991-92", 1991, 72, 29, 9, -1.1),
		},
	}

	sum := buildSummary(pl, domain.CompetitionRegular, pmi.NewClassic())
	if sum.PeakPMI != -1.1 || sum.PeakSeason != "1991-92" {
		t.Fatalf("expected peak -1.1 in 1991-92, got %v in %q", sum.PeakPMI, sum.PeakSeason)
	}
}

func TestBuildSummaryEmpty(t *testing.T) {
	sum := buildSummary(domain.Player{ID: "p4"}, domain.CompetitionPlayoffs, pmi.NewClassic())
	if sum.SeasonCount != 0 || sum.GamesPlayed != 0 || sum.PMI != 0 {
		t.Fatalf("expected zero summary, got %+v", sum)
	}
}

func TestBuildSummaryCountsImputedSeasons(t *testing.T) {
	rows := []domain.SeasonStatRow{
		scoredRow("1968-69", 1968, 75, 38, 22, 5.5),
		scoredRow("1969-70", 1969, 75, 38, 23, 5.8),
	}
	rows[0].ImputedDefense = true
	rows[1].ImputedDefense = true

	sum := buildSummary(domain.Player{ID: "p5", Regular: rows}, domain.CompetitionRegular, pmi.NewClassic())
	if sum.ImputedSeasons != 2 {
		t.Fatalf("expected 2 imputed seasons, got %d", sum.ImputedSeasons)
	}
}

func TestAttachClutchCareerMinutesWeighted(t *testing.T) {
	sum := domain.CareerSummary{}
	attachClutchCareer(&sum, []domain.ClutchStatRow{
		{GamesPlayed: 40, Minutes: 300, CPMI: 2.0},
		{GamesPlayed: 20, Minutes: 100, CPMI: -1.0},
	})

	// (2.0*300 - 1.0*100) / 400 = 1.25.
	if sum.CPMI != 1.25 {
		t.Fatalf("expected clutch career 1.25, got %v", sum.CPMI)
	}
	if !sum.HasClutch || sum.ClutchGames != 60 || sum.ClutchMinutes != 400 {
		t.Fatalf("unexpected clutch totals: %+v", sum)
	}
}

func TestAttachClutchCareerPlainMeanFallback(t *testing.T) {
	sum := domain.CareerSummary{}
	attachClutchCareer(&sum, []domain.ClutchStatRow{
		{GamesPlayed: 10, Minutes: 0, CPMI: 3.0},
		{GamesPlayed: 10, Minutes: 0, CPMI: 1.0},
	})

	if sum.CPMI != 2.0 {
		t.Fatalf("expected plain mean 2.0, got %v", sum.CPMI)
	}
}

func TestAttachClutchCareerNoRows(t *testing.T) {
	sum := domain.CareerSummary{}
	attachClutchCareer(&sum, nil)
	if sum.HasClutch || sum.CPMI != 0 {
		t.Fatalf("expected untouched summary, got %+v", sum)
	}
}

func TestYearSpan(t *testing.T) {
	cases := []struct {
		min, max int
		active   bool
		want     string
	}{
		{1984, 1998, false, "1984-1998"},
		{2003, 2024, true, "2003-pres."},
		{1951, 1951, false, "1951"},
	}
	for _, c := range cases {
		if got := yearSpan(c.min, c.max, c.active); got != c.want {
			t.Fatalf("(%d,%d,%v): expected %q, got %q", c.min, c.max, c.active, c.want, got)
		}
	}
}

package imputer

import (
	"math"
	"testing"

	"github.com/samir-kerkar/nba-pmi-engine/internal/domain"
)

func TestFeatureVectorLayout(t *testing.T) {
	row := domain.SeasonStatRow{
		Rebounds:    8.5,
		Fouls:       2.8,
		Assists:     4.1,
		Minutes:     33,
		Points:      18.2,
		FGAttempts:  14.5,
		TeamWinPct:  0.61,
		OffRebounds: 2.1,
		DefRebounds: 6.4,
		Turnovers:   2.2,
	}

	f := FeatureVector(row, 3.5, 80, 17.0)
	want := [FeatureCount]float64{3.5, 80, 8.5, 2.8, 4.1, 33, 18.2, 14.5, 17.0, 0.61, 2.1, 6.4, 2.2}
	if f != want {
		t.Fatalf("unexpected feature layout:\n got %v\nwant %v", f, want)
	}
}

func TestDefaultHeight(t *testing.T) {
	cases := []struct {
		pos, want float64
	}{
		{1, 74},
		{2, 77},
		{3, 79},
		{4, 81},
		{5, 83},
		{2.4, 77},
		{4.6, 83},
		{0, 78},
	}
	for _, c := range cases {
		if got := DefaultHeight(c.pos); got != c.want {
			t.Fatalf("pos %v: expected %v, got %v", c.pos, c.want, got)
		}
	}
}

func TestHistoricalLeagueShotVolume(t *testing.T) {
	cases := []struct {
		year int
		want float64
	}{
		{1940, 20.0},
		{1947, 20.0},
		{1950, 19.5},
		{1962, 17.8},
		{1973, 16.0},
		{1980, 16.0},
	}
	for _, c := range cases {
		if got := HistoricalLeagueShotVolume(c.year); math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("year %d: expected %v, got %v", c.year, c.want, got)
		}
	}
}

package testutil

import (
	"fmt"

	"github.com/samir-kerkar/nba-pmi-engine/internal/domain"
)

// SampleSeasonRow returns a plausible modern regular-season row for the
// given season start year.
func SampleSeasonRow(playerID string, year int) domain.SeasonStatRow {
	return domain.SeasonStatRow{
		PlayerID:        playerID,
		Season:          fmt.Sprintf("%d-%02d", year, (year+1)%100),
		Year:            year,
		Competition:     domain.CompetitionRegular,
		GamesPlayed:     72,
		Minutes:         30,
		Points:          15,
		Rebounds:        5,
		OffRebounds:     1.2,
		DefRebounds:     3.8,
		Assists:         3.5,
		Steals:          1.0,
		Blocks:          0.5,
		Turnovers:       1.8,
		Fouls:           2.2,
		FGAttempts:      12,
		FTAttempts:      3,
		ThreesMade:      1.2,
		FieldGoalPct:    0.46,
		TrueShootingPct: 0.56,
		TeamWinPct:      0.5,
	}
}

// SampleClutchRow returns a late-game split matching SampleSeasonRow's
// season labeling.
func SampleClutchRow(playerID string, year int) domain.ClutchStatRow {
	return domain.ClutchStatRow{
		PlayerID:     playerID,
		Season:       fmt.Sprintf("%d-%02d", year, (year+1)%100),
		Year:         year,
		Competition:  domain.CompetitionRegular,
		GamesPlayed:  45,
		Minutes:      140,
		Points:       1.4,
		Assists:      0.4,
		Steals:       0.1,
		Turnovers:    0.3,
		FGAttempts:   1.1,
		FTAttempts:   0.5,
		FreeThrowPct: 0.78,
		PlusMinus:    0.5,
	}
}

// SamplePlayer returns a player with the given number of consecutive
// regular seasons ending in 2020.
func SamplePlayer(id string, seasons int) domain.Player {
	p := domain.Player{
		ID:           id,
		Name:         "Sample " + id,
		Position:     "SF",
		HeightInches: 79,
	}
	for year := 2021 - seasons; year < 2021; year++ {
		p.Regular = append(p.Regular, SampleSeasonRow(id, year))
	}
	return p
}

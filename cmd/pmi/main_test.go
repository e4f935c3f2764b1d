package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/samir-kerkar/nba-pmi-engine/internal/config"
	"github.com/samir-kerkar/nba-pmi-engine/internal/domain"
)

// Smoke test to ensure main honors SKIP_ENGINE_RUN and does not block test runs.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_ENGINE_RUN", "1")
	main()
}

func fixturePlayer(id int) domain.Player {
	p := domain.Player{
		ID:       fmt.Sprintf("p%d", id),
		Name:     fmt.Sprintf("Player %d", id),
		Position: "SG",
	}
	for year := 2015; year < 2021; year++ {
		p.Regular = append(p.Regular, domain.SeasonStatRow{
			PlayerID:        p.ID,
			Season:          fmt.Sprintf("%d-%02d", year, (year+1)%100),
			Year:            year,
			Competition:     domain.CompetitionRegular,
			GamesPlayed:     70,
			Minutes:         28,
			Points:          12 + float64(id),
			Rebounds:        4,
			OffRebounds:     1,
			DefRebounds:     3,
			Assists:         3,
			Steals:          0.9,
			Blocks:          0.4,
			Turnovers:       1.4,
			Fouls:           2.1,
			FGAttempts:      10,
			FTAttempts:      2.5,
			ThreesMade:      1.1,
			FieldGoalPct:    0.45,
			TrueShootingPct: 0.55,
			TeamWinPct:      0.5,
		})
	}
	return p
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "players.json")
	output := filepath.Join(dir, "ratings.json")

	players := make([]domain.Player, 0, 4)
	for i := 0; i < 4; i++ {
		players = append(players, fixturePlayer(i))
	}
	raw, err := json.Marshal(players)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	if err := os.WriteFile(input, raw, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	t.Setenv("PMI_INPUT", input)
	t.Setenv("PMI_OUTPUT", output)
	t.Setenv("PMI_GENERATION", "calibrated")
	t.Setenv("METRICS_ENABLED", "false")

	cfg := config.Load()
	if err := run(context.Background(), cfg, nil); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	rawOut, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var out Output
	if err := json.Unmarshal(rawOut, &out); err != nil {
		t.Fatalf("parse output: %v", err)
	}

	if out.RunID == "" || out.Generation != "calibrated" {
		t.Fatalf("unexpected header: %+v", out)
	}
	if len(out.Players) != 4 {
		t.Fatalf("expected 4 qualified players, got %d", len(out.Players))
	}
	if len(out.Summaries) != 4 {
		t.Fatalf("expected 4 summaries, got %d", len(out.Summaries))
	}

	// Summaries come back ranked by career PMI.
	for i := 1; i < len(out.Summaries); i++ {
		if out.Summaries[i].PMI > out.Summaries[i-1].PMI {
			t.Fatalf("summaries not ranked: %v after %v",
				out.Summaries[i].PMI, out.Summaries[i-1].PMI)
		}
	}
}

func TestRunMissingInput(t *testing.T) {
	t.Setenv("PMI_INPUT", filepath.Join(t.TempDir(), "missing.json"))
	t.Setenv("METRICS_ENABLED", "false")

	cfg := config.Load()
	if err := run(context.Background(), cfg, nil); err == nil {
		t.Fatal("expected error for missing archive")
	}
}

func TestBuildMethodologyUnknownGeneration(t *testing.T) {
	t.Setenv("PMI_GENERATION", "v9")

	cfg := config.Load()
	if _, err := buildMethodology(cfg); err == nil {
		t.Fatal("expected error for unknown generation")
	}
}

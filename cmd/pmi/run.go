package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/samir-kerkar/nba-pmi-engine/internal/config"
	"github.com/samir-kerkar/nba-pmi-engine/internal/domain"
	"github.com/samir-kerkar/nba-pmi-engine/internal/logging"
	"github.com/samir-kerkar/nba-pmi-engine/internal/metrics"
	"github.com/samir-kerkar/nba-pmi-engine/internal/pipeline"
	"github.com/samir-kerkar/nba-pmi-engine/internal/pmi"
	"github.com/samir-kerkar/nba-pmi-engine/internal/store"
)

// Output is the JSON document written after a run.
type Output struct {
	RunID       string                 `json:"runId"`
	Generation  string                 `json:"generation"`
	GeneratedAt time.Time              `json:"generatedAt"`
	Imputed     int                    `json:"imputedRows"`
	Players     []domain.Player        `json:"players"`
	Summaries   []domain.CareerSummary `json:"summaries"`
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	rec, promHandler, shutdown, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		return fmt.Errorf("metrics setup: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logging.Warn(logger, "metrics shutdown failed", "error", err)
		}
	}()

	if promHandler != nil {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promHandler)
		srv := &http.Server{Addr: ":" + cfg.Metrics.Port, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logging.Warn(logger, "metrics listener stopped", "error", err)
			}
		}()
		defer srv.Close()
	}

	method, err := buildMethodology(cfg)
	if err != nil {
		return err
	}

	players, err := readPlayers(cfg.InputPath)
	if err != nil {
		return err
	}
	logging.Info(logger, "archive loaded",
		logging.FieldPlayers, len(players),
		logging.FieldGeneration, method.Name())

	pipe := pipeline.New(method, pipeline.Options{
		Logger:     logger,
		Recorder:   rec,
		Workers:    cfg.Workers,
		MinSeasons: cfg.MinSeasons,
		MinGames:   cfg.MinGames,
	})
	result, err := pipe.Run(ctx, players)
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	st := store.NewMemoryStore()
	st.SetResults(result.Qualified, result.Summaries)

	return writeOutput(cfg.OutputPath, result, st)
}

// buildMethodology resolves the generation, preferring a custom weight table
// when one is configured.
func buildMethodology(cfg config.Config) (pmi.Methodology, error) {
	if cfg.WeightsFile != "" {
		return pmi.LoadTable(cfg.WeightsFile)
	}
	return pmi.New(cfg.Generation)
}

func readPlayers(path string) ([]domain.Player, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read archive: %w", err)
	}

	var players []domain.Player
	if err := json.Unmarshal(raw, &players); err != nil {
		return nil, fmt.Errorf("parse archive: %w", err)
	}
	return players, nil
}

func writeOutput(path string, result pipeline.Result, st *store.MemoryStore) error {
	summaries := st.AllSummaries()
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Competition != summaries[j].Competition {
			return summaries[i].Competition < summaries[j].Competition
		}
		if summaries[i].PMI != summaries[j].PMI {
			return summaries[i].PMI > summaries[j].PMI
		}
		return summaries[i].PlayerID < summaries[j].PlayerID
	})

	players := st.ListPlayers()
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })

	out := Output{
		RunID:       result.RunID,
		Generation:  result.Generation,
		GeneratedAt: time.Now().UTC(),
		Imputed:     result.Imputed,
		Players:     players,
		Summaries:   summaries,
	}

	raw, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

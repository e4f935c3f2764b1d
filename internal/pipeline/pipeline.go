// Package pipeline orchestrates a full scoring run: league distribution
// caches, imputer training, legacy imputation, per-row scoring, and career
// summaries.
package pipeline

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/samir-kerkar/nba-pmi-engine/internal/domain"
	"github.com/samir-kerkar/nba-pmi-engine/internal/imputer"
	"github.com/samir-kerkar/nba-pmi-engine/internal/logging"
	"github.com/samir-kerkar/nba-pmi-engine/internal/metrics"
	"github.com/samir-kerkar/nba-pmi-engine/internal/pmi"
)

// First season with league-recorded steals and blocks. Earlier rows with no
// defensive stats are candidates for imputation.
const defenseTrackedSince = 1974

// Training corpus filters: rows must be modern, regular-rotation seasons.
const (
	trainMinGames   = 20
	trainMinMinutes = 15.0
)

// Options configure a Pipeline beyond its methodology.
type Options struct {
	Logger     *slog.Logger
	Recorder   *metrics.Recorder
	Workers    int
	MinSeasons int
	MinGames   int
}

// Pipeline scores a player archive under one methodology generation.
type Pipeline struct {
	method     pmi.Methodology
	logger     *slog.Logger
	rec        *metrics.Recorder
	workers    int
	minSeasons int
	minGames   int
}

// New constructs a Pipeline. Zero option values fall back to serial
// execution and the default qualification floor.
func New(method pmi.Methodology, opts Options) *Pipeline {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	minSeasons := opts.MinSeasons
	if minSeasons < 1 {
		minSeasons = 5
	}
	minGames := opts.MinGames
	if minGames < 1 {
		minGames = 50
	}
	return &Pipeline{
		method:     method,
		logger:     opts.Logger,
		rec:        opts.Recorder,
		workers:    workers,
		minSeasons: minSeasons,
		minGames:   minGames,
	}
}

// Result is the output of one scoring run.
type Result struct {
	RunID      string
	Generation string

	// Players carries every input player with scores attached; Qualified
	// and Summaries are restricted to the qualification floor.
	Players   []domain.Player
	Qualified []domain.Player
	Summaries []domain.CareerSummary

	Imputed     int
	TrainReport imputer.TrainingReport
}

type leagueKey struct {
	season      string
	competition domain.CompetitionType
}

// Run executes the full pipeline. The input players are not mutated; scored
// copies are returned.
func (p *Pipeline) Run(ctx context.Context, players []domain.Player) (Result, error) {
	started := time.Now()
	result := Result{
		RunID:      uuid.NewString(),
		Generation: p.method.Name(),
	}

	logging.Info(p.logger, "pipeline run starting",
		logging.FieldRunID, result.RunID,
		logging.FieldGeneration, result.Generation,
		logging.FieldPlayers, len(players))

	// Deep-copy so scoring never mutates the caller's slice.
	work := make([]domain.Player, len(players))
	for i, pl := range players {
		work[i] = copyPlayer(pl)
	}

	leagues := p.buildLeagueCache(work)
	clutchLeagues := buildClutchLeagueCache(work)
	seasonFGA := buildSeasonShotVolume(work)

	model, trainReport := p.trainImputer(work, seasonFGA)
	result.TrainReport = trainReport

	imputedCounts := make([]int, len(work))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i := range work {
		i := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			imputedCounts[i] = p.scorePlayer(&work[i], leagues, clutchLeagues, seasonFGA, model)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		p.rec.RecordRun(result.Generation, time.Since(started), err)
		return Result{}, err
	}

	totalRows := 0
	for i := range work {
		result.Imputed += imputedCounts[i]
		totalRows += len(work[i].Regular) + len(work[i].Playoffs)
	}

	result.Players = work
	for _, pl := range work {
		if !p.qualifies(pl) {
			continue
		}
		result.Qualified = append(result.Qualified, pl)
		result.Summaries = append(result.Summaries, buildSummary(pl, domain.CompetitionRegular, p.method))
		if len(pl.Playoffs) > 0 {
			result.Summaries = append(result.Summaries, buildSummary(pl, domain.CompetitionPlayoffs, p.method))
		}
	}

	p.rec.RecordRowsScored(result.Generation, totalRows)
	p.rec.RecordImputations(result.Generation, result.Imputed)
	p.rec.RecordSummaries(result.Generation, len(result.Summaries))
	p.rec.RecordRun(result.Generation, time.Since(started), nil)

	logging.Info(p.logger, "pipeline run finished",
		logging.FieldRunID, result.RunID,
		logging.FieldRows, totalRows,
		logging.FieldCount, len(result.Summaries),
		logging.FieldDurationMS, time.Since(started).Milliseconds())

	return result, nil
}

// buildLeagueCache computes per-(season, competition) distribution moments
// from the raw population, before any qualification filtering.
func (p *Pipeline) buildLeagueCache(players []domain.Player) map[leagueKey]domain.LeagueStats {
	grouped := make(map[leagueKey][]domain.SeasonStatRow)
	for _, pl := range players {
		for _, r := range pl.Regular {
			k := leagueKey{r.Season, domain.CompetitionRegular}
			grouped[k] = append(grouped[k], r)
		}
		for _, r := range pl.Playoffs {
			k := leagueKey{r.Season, domain.CompetitionPlayoffs}
			grouped[k] = append(grouped[k], r)
		}
	}

	cache := make(map[leagueKey]domain.LeagueStats, len(grouped))
	for k, rows := range grouped {
		usable := 0
		for _, r := range rows {
			if r.GamesPlayed > 0 {
				usable++
			}
		}
		if usable == 0 {
			cache[k] = pmi.FallbackLeagueStats()
			continue
		}
		cache[k] = pmi.ComputeLeagueStats(rows, p.method.LeagueMinutesFilter())
	}
	return cache
}

func buildClutchLeagueCache(players []domain.Player) map[leagueKey]domain.ClutchLeagueStats {
	grouped := make(map[leagueKey][]domain.ClutchStatRow)
	for _, pl := range players {
		for _, r := range pl.Clutch {
			k := leagueKey{r.Season, domain.CompetitionRegular}
			grouped[k] = append(grouped[k], r)
		}
		for _, r := range pl.ClutchPlayoffs {
			k := leagueKey{r.Season, domain.CompetitionPlayoffs}
			grouped[k] = append(grouped[k], r)
		}
	}

	cache := make(map[leagueKey]domain.ClutchLeagueStats, len(grouped))
	for k, rows := range grouped {
		cache[k] = pmi.ComputeClutchLeagueStats(rows)
	}
	return cache
}

// buildSeasonShotVolume averages field-goal attempts per regular season so
// the imputer can anchor scoring context. Seasons with no recorded attempts
// use the historical estimate.
func buildSeasonShotVolume(players []domain.Player) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	years := make(map[string]int)
	for _, pl := range players {
		for _, r := range pl.Regular {
			if r.GamesPlayed > 0 && r.FGAttempts > 0 {
				sums[r.Season] += r.FGAttempts
				counts[r.Season]++
			}
			years[r.Season] = r.Year
		}
	}

	out := make(map[string]float64, len(years))
	for season, year := range years {
		if counts[season] > 0 {
			out[season] = sums[season] / float64(counts[season])
		} else {
			out[season] = imputer.HistoricalLeagueShotVolume(year)
		}
	}
	return out
}

// trainImputer fits the defensive-stat model on modern regular seasons. An
// undersized corpus logs a warning and leaves the model untrained, which
// disables imputation without failing the run.
func (p *Pipeline) trainImputer(players []domain.Player, seasonFGA map[string]float64) (*imputer.Model, imputer.TrainingReport) {
	var rows []imputer.TrainingRow
	for _, pl := range players {
		pos := pmi.PositionValue(pl.Position)
		for _, r := range pl.Regular {
			if r.Year < defenseTrackedSince || r.GamesPlayed < trainMinGames ||
				r.Minutes < trainMinMinutes || r.Steals <= 0 || r.Blocks < 0 {
				continue
			}
			rows = append(rows, imputer.TrainingRow{
				Features: imputer.FeatureVector(r, pos, pl.HeightInches, seasonFGA[r.Season]),
				Steals:   r.Steals,
				Blocks:   r.Blocks,
			})
		}
	}

	started := time.Now()
	model, report, err := imputer.Train(rows)
	p.rec.RecordTraining(time.Since(started), len(rows), err)
	if err != nil {
		logging.Warn(p.logger, "imputer training skipped",
			logging.FieldRows, len(rows), "error", err)
		return model, report
	}

	logging.Info(p.logger, "imputer trained",
		logging.FieldRows, report.Rows,
		"steals_r2", report.StealsR2,
		"blocks_r2", report.BlocksR2,
		logging.FieldDurationMS, time.Since(started).Milliseconds())
	return model, report
}

// scorePlayer attaches OPMI/DPMI/PMI/AWC to every season row, CPMI to every
// clutch row, and peak PMI per competition type. Returns the number of rows
// whose defensive stats were imputed.
func (p *Pipeline) scorePlayer(
	pl *domain.Player,
	leagues map[leagueKey]domain.LeagueStats,
	clutchLeagues map[leagueKey]domain.ClutchLeagueStats,
	seasonFGA map[string]float64,
	model *imputer.Model,
) int {
	pos := pmi.PositionValue(pl.Position)
	imputed := 0

	score := func(rows []domain.SeasonStatRow, comp domain.CompetitionType) {
		peak := math.Inf(-1)
		for i := range rows {
			r := &rows[i]

			// Eligibility is judged on pre-imputation raw values.
			if model.Trained() && r.Year < defenseTrackedSince && r.Steals == 0 && r.Blocks == 0 {
				fga := seasonFGA[r.Season]
				if fga == 0 {
					fga = imputer.HistoricalLeagueShotVolume(r.Year)
				}
				height := pl.HeightInches
				if height == 0 {
					height = imputer.DefaultHeight(pos)
				}
				stl, blk := model.Predict(imputer.FeatureVector(*r, pos, height, fga))
				if stl > 0 || blk > 0 {
					r.Steals = stl
					r.Blocks = blk
					r.ImputedDefense = true
					imputed++
				}
			}

			league, ok := leagues[leagueKey{r.Season, comp}]
			if !ok {
				league = pmi.FallbackLeagueStats()
			}

			r.OPMI = p.method.ComputeOffensive(*r, league, pos)
			r.DPMI = p.method.ComputeDefensive(*r, league, pos)
			r.PMI = r.OPMI + r.DPMI
			r.AWC = pmi.AWC(r.PMI, r.TotalMinutes(), p.method.AWCConstant())
			if r.PMI > peak {
				peak = r.PMI
			}
		}
		for i := range rows {
			rows[i].PeakPMI = peak
		}
	}

	score(pl.Regular, domain.CompetitionRegular)
	score(pl.Playoffs, domain.CompetitionPlayoffs)

	scoreClutch := func(rows []domain.ClutchStatRow, comp domain.CompetitionType) {
		for i := range rows {
			r := &rows[i]
			league, ok := clutchLeagues[leagueKey{r.Season, comp}]
			if !ok {
				continue
			}
			r.CPMI = p.method.ComputeClutch(*r, league)
		}
	}
	scoreClutch(pl.Clutch, domain.CompetitionRegular)
	scoreClutch(pl.ClutchPlayoffs, domain.CompetitionPlayoffs)

	// Mark season rows that have a matching clutch split.
	markClutch(pl.Regular, pl.Clutch)
	markClutch(pl.Playoffs, pl.ClutchPlayoffs)

	return imputed
}

func markClutch(rows []domain.SeasonStatRow, clutch []domain.ClutchStatRow) {
	bySeason := make(map[string]float64, len(clutch))
	for _, c := range clutch {
		bySeason[c.Season] = c.CPMI
	}
	for i := range rows {
		if cpmi, ok := bySeason[rows[i].Season]; ok {
			rows[i].CPMI = cpmi
			rows[i].HasClutch = true
		}
	}
}

// qualifies applies the career output floor on regular-season volume.
func (p *Pipeline) qualifies(pl domain.Player) bool {
	if len(pl.Regular) < p.minSeasons {
		return false
	}
	gp := 0
	for _, r := range pl.Regular {
		gp += r.GamesPlayed
	}
	return gp >= p.minGames
}

func copyPlayer(pl domain.Player) domain.Player {
	out := pl
	out.Regular = append([]domain.SeasonStatRow(nil), pl.Regular...)
	out.Playoffs = append([]domain.SeasonStatRow(nil), pl.Playoffs...)
	out.Clutch = append([]domain.ClutchStatRow(nil), pl.Clutch...)
	out.ClutchPlayoffs = append([]domain.ClutchStatRow(nil), pl.ClutchPlayoffs...)
	return out
}

package metrics

import (
	"sync"
	"time"
)

type generationStats struct {
	rowsScored     int
	imputations    int
	summaries      int
	runs           int
	errors         int
	lastRunLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about scoring runs.
// It is intentionally simple so it can be swapped for a real backend later.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*generationStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*generationStats),
		otel:  otel,
	}
}

// RecordRowsScored counts season rows that received scores.
func (r *Recorder) RecordRowsScored(generation string, n int) {
	if r == nil || n == 0 {
		return
	}

	stats := r.ensureStats(generation)
	stats.rowsScored += n
	if r.otel != nil {
		r.otel.recordRowsScored(generation, n)
	}
}

// RecordImputations counts legacy rows whose defensive stats were estimated.
func (r *Recorder) RecordImputations(generation string, n int) {
	if r == nil || n == 0 {
		return
	}

	stats := r.ensureStats(generation)
	stats.imputations += n
	if r.otel != nil {
		r.otel.recordImputations(generation, n)
	}
}

// RecordSummaries counts career summaries emitted.
func (r *Recorder) RecordSummaries(generation string, n int) {
	if r == nil || n == 0 {
		return
	}

	stats := r.ensureStats(generation)
	stats.summaries += n
	if r.otel != nil {
		r.otel.recordSummaries(generation, n)
	}
}

// RecordTraining tracks one imputer training attempt.
func (r *Recorder) RecordTraining(duration time.Duration, rows int, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordTraining(duration, rows, err)
}

// RecordRun tracks one pipeline run and stores the last observed latency.
func (r *Recorder) RecordRun(generation string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(generation)
	stats.runs++
	stats.lastRunLatency = duration
	if err != nil {
		stats.errors++
	}
	if r.otel != nil {
		r.otel.recordRun(generation, duration, err)
	}
}

// Snapshot is a copy of the current stats for one generation.
type Snapshot struct {
	RowsScored     int
	Imputations    int
	Summaries      int
	Runs           int
	Errors         int
	LastRunLatency time.Duration
}

func (r *Recorder) Snapshot(generation string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(generation)
	return Snapshot{
		RowsScored:     stats.rowsScored,
		Imputations:    stats.imputations,
		Summaries:      stats.summaries,
		Runs:           stats.runs,
		Errors:         stats.errors,
		LastRunLatency: stats.lastRunLatency,
	}
}

// RowsScored returns the total scored rows recorded for a generation.
func (r *Recorder) RowsScored(generation string) int {
	return r.Snapshot(generation).RowsScored
}

// Imputations returns the total imputed rows recorded for a generation.
func (r *Recorder) Imputations(generation string) int {
	return r.Snapshot(generation).Imputations
}

// Runs returns the total pipeline runs recorded for a generation.
func (r *Recorder) Runs(generation string) int {
	return r.Snapshot(generation).Runs
}

// RunErrors returns the total failed runs recorded for a generation.
func (r *Recorder) RunErrors(generation string) int {
	return r.Snapshot(generation).Errors
}

func (r *Recorder) ensureStats(generation string) *generationStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[generation]
	if !ok {
		stats = &generationStats{}
		r.stats[generation] = stats
	}
	return stats
}

func (r *Recorder) snapshot(generation string) generationStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[generation]; ok && stats != nil {
		return *stats
	}
	return generationStats{}
}

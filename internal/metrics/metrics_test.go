package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksRunsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRun("calibrated", 10*time.Millisecond, nil)
	rec.RecordRun("calibrated", 15*time.Millisecond, errors.New("boom"))

	if got := rec.Runs("calibrated"); got != 2 {
		t.Fatalf("expected 2 runs, got %d", got)
	}
	if got := rec.RunErrors("calibrated"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}

	snap := rec.Snapshot("calibrated")
	if snap.Runs != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if snap.LastRunLatency != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", snap.LastRunLatency)
	}
}

func TestRecorderTracksScoringCounts(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRowsScored("classic", 120)
	rec.RecordRowsScored("classic", 40)
	rec.RecordImputations("classic", 7)
	rec.RecordSummaries("classic", 12)

	if got := rec.RowsScored("classic"); got != 160 {
		t.Fatalf("expected 160 scored rows, got %d", got)
	}
	if got := rec.Imputations("classic"); got != 7 {
		t.Fatalf("expected 7 imputations, got %d", got)
	}
	if got := rec.Snapshot("classic").Summaries; got != 12 {
		t.Fatalf("expected 12 summaries, got %d", got)
	}

	// Generations are tracked independently.
	if got := rec.RowsScored("calibrated"); got != 0 {
		t.Fatalf("expected 0 rows for other generation, got %d", got)
	}
}

func TestRecorderNilSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordRowsScored("classic", 1)
	rec.RecordRun("classic", time.Millisecond, nil)
	rec.RecordTraining(time.Millisecond, 100, nil)

	if snap := rec.Snapshot("classic"); snap != (Snapshot{}) {
		t.Fatalf("expected zero snapshot from nil recorder, got %+v", snap)
	}
}

func TestRecorderIgnoresZeroCounts(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRowsScored("classic", 0)
	if got := rec.RowsScored("classic"); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

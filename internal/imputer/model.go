package imputer

import (
	"errors"
	"math"
)

// Ridge regularization strength. Chosen for stability on multicollinear
// box-score features rather than for fit.
const ridgeAlpha = 10.0

// minTrainingRows is the smallest corpus the model will train on.
const minTrainingRows = 200

// predictionCapQuantile bounds predictions at the p95 of the training
// targets so outlier feature combinations cannot produce absurd estimates.
const predictionCapQuantile = 0.95

const cvFolds = 5

// ErrInsufficientData reports a training corpus too small to fit.
var ErrInsufficientData = errors.New("imputer: insufficient training data")

// TrainingRow pairs a feature vector with its observed defensive targets.
type TrainingRow struct {
	Features [FeatureCount]float64
	Steals   float64
	Blocks   float64
}

// TrainingReport summarizes one training run.
type TrainingReport struct {
	Rows      int
	StealsR2  float64
	BlocksR2  float64
	StealsCap float64
	BlocksCap float64
}

// Model predicts per-game steals and blocks from box-score features. The
// zero value is untrained and predicts (0, 0).
type Model struct {
	trained bool
	scale   scaler

	wSteals []float64
	bSteals float64
	wBlocks []float64
	bBlocks float64

	capSteals float64
	capBlocks float64
}

// Train fits both target models on the given corpus. Rows missing a height
// are filled with the median height of same-position training rows before
// standardization. Fewer than 200 rows returns an untrained model alongside
// ErrInsufficientData so the caller can proceed without imputation.
func Train(rows []TrainingRow) (*Model, TrainingReport, error) {
	if len(rows) < minTrainingRows {
		return &Model{}, TrainingReport{Rows: len(rows)}, ErrInsufficientData
	}

	medians := positionHeightMedians(rows)

	x := make([][]float64, len(rows))
	stl := make([]float64, len(rows))
	blk := make([]float64, len(rows))
	for i, r := range rows {
		f := r.Features
		if f[featHeight] == 0 {
			f[featHeight] = medians[int(f[featPosition]+0.5)]
		}
		x[i] = f[:]
		stl[i] = r.Steals
		blk[i] = r.Blocks
	}

	m := &Model{trained: true}
	m.scale = fitScaler(x)
	xs := m.scale.transformAll(x)

	m.wSteals, m.bSteals = solveRidge(xs, stl, ridgeAlpha)
	m.wBlocks, m.bBlocks = solveRidge(xs, blk, ridgeAlpha)
	m.capSteals = quantile(stl, predictionCapQuantile)
	m.capBlocks = quantile(blk, predictionCapQuantile)

	report := TrainingReport{
		Rows:      len(rows),
		StealsR2:  crossValidate(xs, stl),
		BlocksR2:  crossValidate(xs, blk),
		StealsCap: m.capSteals,
		BlocksCap: m.capBlocks,
	}
	return m, report, nil
}

// Trained reports whether the model carries fitted coefficients.
func (m *Model) Trained() bool { return m != nil && m.trained }

// Predict estimates (steals, blocks) per game for one feature vector.
// Predictions are rounded to two decimals and clamped to [0, cap], so the
// ceiling holds even when rounding lands above it. An untrained model
// returns (0, 0).
func (m *Model) Predict(features [FeatureCount]float64) (float64, float64) {
	if !m.Trained() {
		return 0, 0
	}

	f := features
	if f[featHeight] == 0 {
		f[featHeight] = DefaultHeight(f[featPosition])
	}
	xs := m.scale.transform(f[:])

	stl := m.bSteals
	blk := m.bBlocks
	for j, v := range xs {
		stl += m.wSteals[j] * v
		blk += m.wBlocks[j] * v
	}

	stl = math.Round(stl*100) / 100
	blk = math.Round(blk*100) / 100
	stl = math.Min(math.Max(stl, 0), m.capSteals)
	blk = math.Min(math.Max(blk, 0), m.capBlocks)
	return stl, blk
}

// positionHeightMedians computes the median recorded height per rounded
// position, falling back to 78 inches for positions with no heights at all.
func positionHeightMedians(rows []TrainingRow) map[int]float64 {
	byPos := make(map[int][]float64)
	for _, r := range rows {
		if h := r.Features[featHeight]; h > 0 {
			p := int(r.Features[featPosition] + 0.5)
			byPos[p] = append(byPos[p], h)
		}
	}

	medians := make(map[int]float64)
	for p := 0; p <= 6; p++ {
		if hs, ok := byPos[p]; ok {
			medians[p] = quantile(hs, 0.5)
		} else {
			medians[p] = 78
		}
	}
	return medians
}

// crossValidate runs 5-fold contiguous cross-validation and returns the R²
// of the pooled out-of-fold predictions.
func crossValidate(xs [][]float64, y []float64) float64 {
	n := len(xs)
	pred := make([]float64, n)

	for _, fold := range contiguousFolds(n, cvFolds) {
		lo, hi := fold[0], fold[1]
		if lo == hi {
			continue
		}

		trainX := make([][]float64, 0, n-(hi-lo))
		trainY := make([]float64, 0, n-(hi-lo))
		for i := 0; i < n; i++ {
			if i >= lo && i < hi {
				continue
			}
			trainX = append(trainX, xs[i])
			trainY = append(trainY, y[i])
		}

		w, b := solveRidge(trainX, trainY, ridgeAlpha)
		for i := lo; i < hi; i++ {
			p := b
			for j, v := range xs[i] {
				p += w[j] * v
			}
			pred[i] = p
		}
	}
	return rSquared(y, pred)
}

package imputer

import (
	"math"
	"sort"
)

// scaler standardizes feature columns to zero mean and unit variance.
type scaler struct {
	means []float64
	stds  []float64
}

func fitScaler(x [][]float64) scaler {
	cols := len(x[0])
	s := scaler{means: make([]float64, cols), stds: make([]float64, cols)}
	n := float64(len(x))

	for j := 0; j < cols; j++ {
		var sum float64
		for _, row := range x {
			sum += row[j]
		}
		s.means[j] = sum / n

		var ss float64
		for _, row := range x {
			d := row[j] - s.means[j]
			ss += d * d
		}
		std := math.Sqrt(ss / n)
		if std < 1e-9 {
			std = 1
		}
		s.stds[j] = std
	}
	return s
}

func (s scaler) transform(row []float64) []float64 {
	out := make([]float64, len(row))
	for j, v := range row {
		out[j] = (v - s.means[j]) / s.stds[j]
	}
	return out
}

func (s scaler) transformAll(x [][]float64) [][]float64 {
	out := make([][]float64, len(x))
	for i, row := range x {
		out[i] = s.transform(row)
	}
	return out
}

// solveRidge fits w = (X'X + alpha*I)^-1 X'y on an already-standardized
// matrix, with the intercept recovered from the target mean (the target is
// centered before solving, so the penalty never touches the intercept).
func solveRidge(x [][]float64, y []float64, alpha float64) (w []float64, intercept float64) {
	n := len(x)
	p := len(x[0])

	var ySum float64
	for _, v := range y {
		ySum += v
	}
	yMean := ySum / float64(n)

	// Normal equations on the centered target.
	ata := make([][]float64, p)
	atb := make([]float64, p)
	for j := range ata {
		ata[j] = make([]float64, p)
	}
	for i := 0; i < n; i++ {
		yc := y[i] - yMean
		for j := 0; j < p; j++ {
			atb[j] += x[i][j] * yc
			for k := j; k < p; k++ {
				ata[j][k] += x[i][j] * x[i][k]
			}
		}
	}
	for j := 0; j < p; j++ {
		for k := 0; k < j; k++ {
			ata[j][k] = ata[k][j]
		}
		ata[j][j] += alpha
	}

	return solveLinear(ata, atb), yMean
}

// solveLinear runs Gaussian elimination with partial pivoting on a small
// dense system. The ridge penalty keeps the matrix well conditioned.
func solveLinear(a [][]float64, b []float64) []float64 {
	p := len(b)

	for col := 0; col < p; col++ {
		pivot := col
		for r := col + 1; r < p; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]

		if a[col][col] == 0 {
			continue
		}
		for r := col + 1; r < p; r++ {
			f := a[r][col] / a[col][col]
			if f == 0 {
				continue
			}
			for c := col; c < p; c++ {
				a[r][c] -= f * a[col][c]
			}
			b[r] -= f * b[col]
		}
	}

	w := make([]float64, p)
	for r := p - 1; r >= 0; r-- {
		sum := b[r]
		for c := r + 1; c < p; c++ {
			sum -= a[r][c] * w[c]
		}
		if a[r][r] != 0 {
			w[r] = sum / a[r][r]
		}
	}
	return w
}

// quantile returns the q-th quantile with linear interpolation between
// order statistics.
func quantile(vals []float64, q float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(pos)
	frac := pos - float64(lo)
	if lo+1 >= len(sorted) {
		return sorted[lo]
	}
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// rSquared is the coefficient of determination of predictions against
// observed targets.
func rSquared(y, pred []float64) float64 {
	var sum float64
	for _, v := range y {
		sum += v
	}
	mean := sum / float64(len(y))

	var ssRes, ssTot float64
	for i, v := range y {
		d := v - pred[i]
		ssRes += d * d
		t := v - mean
		ssTot += t * t
	}
	if ssTot == 0 {
		return 0
	}
	return 1 - ssRes/ssTot
}

// contiguousFolds splits row indices [0,n) into k contiguous blocks, the
// first n%k blocks taking one extra row.
func contiguousFolds(n, k int) [][2]int {
	folds := make([][2]int, 0, k)
	base := n / k
	extra := n % k
	start := 0
	for i := 0; i < k; i++ {
		size := base
		if i < extra {
			size++
		}
		folds = append(folds, [2]int{start, start + size})
		start += size
	}
	return folds
}

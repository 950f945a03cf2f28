// Package residual computes diagnostic statistics of forecast residuals
// (y_true - y_pred). The diagnostics complement the metrics package: where a
// metric condenses forecast quality into one number, residual statistics
// describe the error distribution itself (bias, spread, asymmetry, and serial
// correlation left in the errors).
package residual

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-forecast/series"
)

// Stats holds residual diagnostics.
type Stats struct {
	Length       int
	Mean         float64 // forecast bias
	MAE          float64
	RMSE         float64
	Max          float64
	MaxPos       int
	Min          float64
	MinPos       int
	Variance     float64
	StdDev       float64
	Skewness     float64
	Kurtosis     float64
	Lag1Autocorr float64 // serial correlation remaining in the residuals
	SignChanges  int     // sign flips between consecutive residuals
}

// Calculate computes all residual diagnostics in a single pass using
// Welford's online algorithm for numerical stability on higher-order moments.
func Calculate(residuals []float64) Stats {
	var s StreamingStats
	s.Update(residuals)
	return s.Result()
}

// FromSeries computes residual diagnostics for one column of a true/predicted
// series pair.
func FromSeries(yTrue, yPred *series.Series, col int) (Stats, error) {
	if yTrue == nil || yPred == nil {
		return Stats{}, fmt.Errorf("residuals need both y_true and y_pred")
	}
	if yTrue.Columns() != yPred.Columns() || yTrue.Len() != yPred.Len() {
		return Stats{}, fmt.Errorf("residuals need matching shapes: %dx%d vs %dx%d",
			yTrue.Columns(), yTrue.Len(), yPred.Columns(), yPred.Len())
	}
	if col < 0 || col >= yTrue.Columns() {
		return Stats{}, fmt.Errorf("column %d out of range [0, %d)", col, yTrue.Columns())
	}

	t := yTrue.Column(col)
	p := yPred.Column(col)
	res := make([]float64, len(t))
	for i := range res {
		res[i] = t[i] - p[i]
	}

	return Calculate(res), nil
}

// StreamingStats accumulates residual diagnostics incrementally across
// multiple blocks of residuals. It processes each sample individually to
// guarantee bit-for-bit identical results with [Calculate].
type StreamingStats struct {
	n          int
	mean       float64
	m2         float64
	m3         float64
	m4         float64
	sumAbs     float64
	sumSq      float64
	sum        float64
	cross      float64
	first      float64
	last       float64
	maxVal     float64
	maxPos     int
	minVal     float64
	minPos     int
	signFlips  int
	hasData    bool
}

// NewStreamingStats creates a new StreamingStats accumulator.
func NewStreamingStats() *StreamingStats {
	return &StreamingStats{}
}

// Update adds a block of residuals to the running statistics.
func (s *StreamingStats) Update(residuals []float64) {
	for _, x := range residuals {
		s.n++
		ni := float64(s.n)

		// Welford update.
		delta := x - s.mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(s.n-1)

		s.m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*s.m2 - 4*deltaN*s.m3
		s.m3 += term1*deltaN*(float64(s.n-1)-1) - 3*deltaN*s.m2
		s.m2 += term1
		s.mean += deltaN

		// Pointwise aggregates.
		s.sum += x
		s.sumAbs += math.Abs(x)
		s.sumSq += x * x

		// Min / Max.
		if !s.hasData {
			s.first = x
			s.maxVal = x
			s.maxPos = s.n - 1
			s.minVal = x
			s.minPos = s.n - 1
			s.hasData = true
		} else {
			if x > s.maxVal {
				s.maxVal = x
				s.maxPos = s.n - 1
			}

			if x < s.minVal {
				s.minVal = x
				s.minPos = s.n - 1
			}
		}

		// Serial terms: cross product and sign flips against the previous
		// residual.
		if s.n > 1 {
			s.cross += s.last * x
			if s.last*x < 0 {
				s.signFlips++
			}
		}

		s.last = x
	}
}

// Result computes the final diagnostics from accumulated data.
func (s *StreamingStats) Result() Stats {
	if s.n == 0 {
		return Stats{}
	}

	nf := float64(s.n)
	variance := s.m2 / nf

	var skewness, kurtosis float64
	if variance > 0 {
		skewness = (s.m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (s.m4/nf)/(variance*variance) - 3
	}

	// Lag-1 autocorrelation from accumulated serial terms:
	// sum_{t>=1} (x_t - mean)(x_{t-1} - mean) / sum (x_t - mean)^2.
	var lag1 float64
	if s.n > 1 && s.m2 > 0 {
		num := s.cross - s.mean*(2*s.sum-s.first-s.last) + float64(s.n-1)*s.mean*s.mean
		lag1 = num / s.m2
	}

	return Stats{
		Length:       s.n,
		Mean:         s.mean,
		MAE:          s.sumAbs / nf,
		RMSE:         math.Sqrt(s.sumSq / nf),
		Max:          s.maxVal,
		MaxPos:       s.maxPos,
		Min:          s.minVal,
		MinPos:       s.minPos,
		Variance:     variance,
		StdDev:       math.Sqrt(variance),
		Skewness:     skewness,
		Kurtosis:     kurtosis,
		Lag1Autocorr: lag1,
		SignChanges:  s.signFlips,
	}
}

// Reset clears all accumulated data, allowing the StreamingStats to be reused.
func (s *StreamingStats) Reset() {
	*s = StreamingStats{}
}

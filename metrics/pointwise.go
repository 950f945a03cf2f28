package metrics

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// diffInto fills dst with a[i] - b[i]. All slices must have the same length.
func diffInto(dst, a, b []float64) {
	vecmath.ScaleBlock(dst, b, -1)
	vecmath.AddBlockInPlace(dst, a)
}

// absErrors fills dst with |yTrue[i] - yPred[i]|.
func absErrors(dst, yTrue, yPred []float64) {
	diffInto(dst, yTrue, yPred)
	for i, v := range dst {
		dst[i] = math.Abs(v)
	}
}

// sqErrors fills dst with (yTrue[i] - yPred[i])^2.
func sqErrors(dst, yTrue, yPred []float64) {
	diffInto(dst, yTrue, yPred)
	vecmath.MulBlockInPlace(dst, dst)
}

// pctErrors fills dst with |(yTrue[i] - yPred[i]) / yTrue[i]|, or with the
// symmetric variant 2*|yTrue[i]-yPred[i]| / (|yTrue[i]|+|yPred[i]|).
// Returns ErrZeroDenominator when a denominator is exactly zero.
func pctErrors(dst, yTrue, yPred []float64, symmetric bool) error {
	diffInto(dst, yTrue, yPred)
	for i, v := range dst {
		var denom float64
		if symmetric {
			denom = (math.Abs(yTrue[i]) + math.Abs(yPred[i])) / 2
		} else {
			denom = math.Abs(yTrue[i])
		}

		if denom == 0 {
			return ErrZeroDenominator
		}

		dst[i] = math.Abs(v) / denom
	}
	return nil
}

// naiveTrainLoss returns the mean pointwise loss of the seasonal naive
// forecast over the training column: the average of f(train[t] - train[t-sp])
// for t in [sp, len). This is the denominator of the scaled-error family.
func naiveTrainLoss(train []float64, sp int, f ErrorFunction) (float64, error) {
	if len(train) <= sp {
		return 0, ErrShortTrain
	}

	var sum float64
	for t := sp; t < len(train); t++ {
		d := train[t] - train[t-sp]
		if f == SquaredError {
			sum += d * d
		} else {
			sum += math.Abs(d)
		}
	}

	loss := sum / float64(len(train)-sp)
	if loss == 0 {
		return 0, ErrZeroDenominator
	}
	return loss, nil
}

// relErrors fills dst with the pointwise loss of yPred divided by the same
// loss of the benchmark prediction. Returns ErrZeroDenominator when the
// benchmark is exact at any timepoint.
func relErrors(dst, yTrue, yPred, yBench []float64, f ErrorFunction) error {
	for i := range dst {
		num := yTrue[i] - yPred[i]
		den := yTrue[i] - yBench[i]
		if den == 0 {
			return ErrZeroDenominator
		}

		if f == SquaredError {
			dst[i] = (num * num) / (den * den)
		} else {
			dst[i] = math.Abs(num) / math.Abs(den)
		}
	}
	return nil
}

// pointLoss applies a single pointwise error function.
func pointLoss(err float64, f ErrorFunction) float64 {
	if f == SquaredError {
		return err * err
	}
	return math.Abs(err)
}

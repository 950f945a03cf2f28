// Package season estimates the dominant seasonal period of a univariate
// series from its periodogram. The estimate is intended as input to the
// scaled-metric family, which compares forecast errors against a seasonal
// naive benchmark.
package season

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

const minSamples = 8

// Estimate describes the dominant periodicity found in a series.
type Estimate struct {
	Period    int     // dominant period in timepoints
	Frequency float64 // cycles per timepoint
	Power     float64 // periodogram power at the dominant bin
}

type config struct {
	minPeriod int
	maxPeriod int
}

// Option configures period estimation.
type Option func(*config)

// WithMinPeriod sets the smallest period considered. Default 2.
func WithMinPeriod(p int) Option {
	return func(cfg *config) {
		if p >= 2 {
			cfg.minPeriod = p
		}
	}
}

// WithMaxPeriod sets the largest period considered. Default half the series
// length.
func WithMaxPeriod(p int) Option {
	return func(cfg *config) {
		if p >= 2 {
			cfg.maxPeriod = p
		}
	}
}

// EstimatePeriod computes the dominant seasonal period of values. The series is
// mean-removed and Hann-windowed before the FFT so that level and leakage do
// not mask the seasonal peak.
func EstimatePeriod(values []float64, opts ...Option) (Estimate, error) {
	n := len(values)
	if n < minSamples {
		return Estimate{}, fmt.Errorf("period estimation needs at least %d samples: %d", minSamples, n)
	}

	cfg := config{minPeriod: 2, maxPeriod: n / 2}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.maxPeriod > n/2 {
		cfg.maxPeriod = n / 2
	}
	if cfg.minPeriod > cfg.maxPeriod {
		return Estimate{}, fmt.Errorf("period bounds are empty: min %d, max %d", cfg.minPeriod, cfg.maxPeriod)
	}

	fftSize := nextPow2(n)

	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(n)

	inData := make([]complex128, fftSize)
	for i, v := range values {
		w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
		inData[i] = complex((v-mean)*w, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Estimate{}, fmt.Errorf("fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, inData); err != nil {
		return Estimate{}, fmt.Errorf("fft forward: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	best := Estimate{}
	for k := 1; k < bins; k++ {
		period := int(math.Round(float64(fftSize) / float64(k)))
		if period < cfg.minPeriod || period > cfg.maxPeriod {
			continue
		}
		if power[k] > best.Power {
			best = Estimate{
				Period:    period,
				Frequency: float64(k) / float64(fftSize),
				Power:     power[k],
			}
		}
	}

	if best.Period == 0 {
		return Estimate{}, fmt.Errorf("no periodicity found in bounds [%d, %d]", cfg.minPeriod, cfg.maxPeriod)
	}
	return best, nil
}

// nextPow2 returns the smallest power of two >= n.
func nextPow2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}

// Package analysis extracts summary statistics and periodicities from
// propagated element series. Resonant orbits librate with periods of
// weeks to years; the spectrum makes those show up in a stored run.
package analysis

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

var ErrSeriesTooShort = errors.New("analysis: series too short")

const minSamples = 8

// fft is a radix-2 Cooley-Tukey transform. len(data) must be a power of
// two; callers truncate before reaching here.
func fft(data []complex128) []complex128 {
	n := len(data)
	if n <= 1 {
		return data
	}

	even := make([]complex128, n/2)
	odd := make([]complex128, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := fft(even)
	fodd := fft(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}
	return result
}

func largestPowerOfTwo(n int) int {
	p := 1
	for p*2 <= n {
		p *= 2
	}
	return p
}

// PowerSpectrum returns the magnitudes of the positive-frequency bins.
// The series is mean-detrended and truncated to the largest power-of-two
// length first; bin k corresponds to a period of n·step/k samples.
func PowerSpectrum(values []float64) []float64 {
	n := largestPowerOfTwo(len(values))
	if n < 2 {
		return nil
	}

	mean := 0.0
	for i := 0; i < n; i++ {
		mean += values[i]
	}
	mean /= float64(n)

	data := make([]complex128, n)
	for i := 0; i < n; i++ {
		data[i] = complex(values[i]-mean, 0)
	}

	spec := fft(data)
	ps := make([]float64, n/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spec[i])
	}
	return ps
}

// DominantPeriod estimates the strongest periodicity of a uniformly
// sampled series. step is the sample spacing; the period comes back in
// the same unit.
func DominantPeriod(values []float64, step float64) (float64, error) {
	if step <= 0 {
		return 0, fmt.Errorf("step must be positive, got %f", step)
	}
	if len(values) < minSamples {
		return 0, fmt.Errorf("%w: %d samples, need %d", ErrSeriesTooShort, len(values), minSamples)
	}

	ps := PowerSpectrum(values)
	n := len(ps) * 2

	best := 1
	for k := 2; k < len(ps); k++ {
		if ps[k] > ps[best] {
			best = k
		}
	}
	return float64(n) * step / float64(best), nil
}

// Summary describes one element column of a stored run.
type Summary struct {
	Mean           float64
	Min            float64
	Max            float64
	PeakToPeak     float64
	DominantPeriod float64 // sample units; 0 when the series is too short
}

func Summarize(values []float64, step float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, ErrSeriesTooShort
	}

	s := Summary{Min: values[0], Max: values[0]}
	for _, v := range values {
		s.Mean += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Mean /= float64(len(values))
	s.PeakToPeak = s.Max - s.Min

	if p, err := DominantPeriod(values, step); err == nil {
		s.DominantPeriod = p
	}
	return s, nil
}

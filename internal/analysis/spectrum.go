// Package analysis derives fringe diagnostics from an intensity profile.
package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// Spectrum summarizes the spatial frequency content of a pattern.
type Spectrum struct {
	Power         []float64 // one-sided magnitude spectrum, DC excluded
	DominantIndex int       // bin with the largest magnitude, 1-based over the full FFT
	FringeSpacing float64   // screen-distance between fringes, same unit as dx; 0 if flat
}

// FringeSpectrum computes the power spectrum of pattern sampled at spacing
// dx. The mean is removed first so the DC term does not mask the fringe
// frequency.
func FringeSpectrum(pattern []float64, dx float64) Spectrum {
	n := len(pattern)
	if n < 4 || dx <= 0 {
		return Spectrum{}
	}

	mean := 0.0
	for _, v := range pattern {
		mean += v
	}
	mean /= float64(n)

	centered := make([]float64, n)
	for i, v := range pattern {
		centered[i] = v - mean
	}

	coeffs := fft.FFTReal(centered)

	power := make([]float64, n/2-1)
	maxIdx, maxVal := 0, 0.0
	for k := 1; k < n/2; k++ {
		m := cmplx.Abs(coeffs[k])
		power[k-1] = m
		if m > maxVal {
			maxVal = m
			maxIdx = k
		}
	}

	if maxIdx == 0 || maxVal < 1e-12 {
		return Spectrum{Power: power}
	}

	freq := float64(maxIdx) / (float64(n) * dx)
	return Spectrum{
		Power:         power,
		DominantIndex: maxIdx,
		FringeSpacing: 1 / freq,
	}
}

// PredictedFringeSpacing is the textbook small-angle fringe spacing
// lambda*L/d for a screen at distance L meters.
func PredictedFringeSpacing(wavelengthNM, separationMM, screenDistanceM float64) float64 {
	if separationMM <= 0 {
		return math.Inf(1)
	}
	return wavelengthNM * 1e-9 * screenDistanceM / (separationMM * 1e-3)
}

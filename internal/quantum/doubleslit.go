package quantum

import (
	"math"

	"github.com/desci-intelligent-universe/physics-tutorial/internal/schema"
)

// PatternSize is the number of screen samples every kernel produces.
const PatternSize = 200

// screenDistance is the slit-to-screen distance in meters.
const screenDistance = 1.0

// DoubleSlit computes the detected intensity across a 1-D screen. Positions
// span -0.1m to +0.1m in 1mm steps. Without an observer the two paths
// interfere and the intensity follows cos^2(pi*d*sin(theta)/lambda); with an
// observer the superposition collapses into two Gaussian bands at
// theta = +-0.05 rad.
func DoubleSlit(v schema.Values) []float64 {
	wavelength := v.Float("wavelength") * 1e-9      // nm -> m
	separation := v.Float("slit_separation") * 1e-3 // mm -> m
	observed := v.Bool("observer_mode")

	out := make([]float64, PatternSize)
	for i := range out {
		x := (float64(i) - PatternSize/2) * 0.001
		theta := math.Atan(x / screenDistance)

		if observed {
			band1 := math.Exp(-(theta + 0.05) * (theta + 0.05) / 0.001)
			band2 := math.Exp(-(theta - 0.05) * (theta - 0.05) / 0.001)
			out[i] = 0.5 * (band1 + band2)
		} else {
			phase := math.Pi * separation * math.Sin(theta) / wavelength
			c := math.Cos(phase)
			out[i] = c * c
		}
	}
	return out
}

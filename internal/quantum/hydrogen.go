package quantum

import (
	"math"

	"github.com/desci-intelligent-universe/physics-tutorial/internal/schema"
)

// Hydrogen computes the radial probability density r^2 |R_nl(r)|^2 of a
// hydrogen electron, sampled over a window that scales with the orbital
// size. Distances are in Bohr radii, so the density integrates to one over
// the full radial axis. An azimuthal number l >= n is clamped to n-1 to keep
// the kernel total.
func Hydrogen(v schema.Values) []float64 {
	n := clampInt(int(math.Round(v.Float("principal_n"))), 1, 4)
	l := clampInt(int(math.Round(v.Float("azimuthal_l"))), 0, n-1)

	rmax := float64(2*n*n + 8*n)
	dr := rmax / PatternSize

	out := make([]float64, PatternSize)
	for i := range out {
		r := (float64(i) + 0.5) * dr
		rnl := radialWave(n, l, r)
		out[i] = r * r * rnl * rnl
	}
	return out
}

// radialWave evaluates R_nl(r) in units of the Bohr radius:
//
//	R_nl(r) = N * (2r/n)^l * exp(-r/n) * L^(2l+1)_(n-l-1)(2r/n)
func radialWave(n, l int, r float64) float64 {
	rho := 2 * r / float64(n)
	norm := math.Sqrt(math.Pow(2/float64(n), 3) *
		factorial(n-l-1) / (2 * float64(n) * factorial(n+l)))
	return norm * math.Pow(rho, float64(l)) * math.Exp(-rho/2) * laguerre(n-l-1, 2*l+1, rho)
}

// laguerre evaluates the generalized Laguerre polynomial L^alpha_k(x) via the
// standard three-term recurrence.
func laguerre(k, alpha int, x float64) float64 {
	a := float64(alpha)
	switch k {
	case 0:
		return 1
	case 1:
		return 1 + a - x
	}
	prev, cur := 1.0, 1+a-x
	for i := 2; i <= k; i++ {
		next := ((2*float64(i)-1+a-x)*cur - (float64(i)-1+a)*prev) / float64(i)
		prev, cur = cur, next
	}
	return cur
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

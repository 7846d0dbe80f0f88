package engine

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// ZStatistic computes the absolute two-proportion pooled z statistic for two
// subgroup percentages. ok is false when either sample size is non-positive
// or the pooled standard error is zero (both groups at exactly 0% or 100%).
func ZStatistic(p1 float64, n1 int, p2 float64, n2 int) (float64, bool) {
	if n1 <= 0 || n2 <= 0 {
		return 0, false
	}

	prop1 := p1 / 100.0
	prop2 := p2 / 100.0
	f1 := float64(n1)
	f2 := float64(n2)

	pooled := (prop1*f1 + prop2*f2) / (f1 + f2)
	se := math.Sqrt(pooled * (1 - pooled) * (1/f1 + 1/f2))
	if se == 0 {
		return 0, false
	}

	return math.Abs(prop1-prop2) / se, true
}

// IsSignificant reports whether two subgroup proportions differ significantly
// under a two-proportion pooled z-test at the given critical z-value.
// Direction (which side is higher) is the caller's decision; this only tests
// the magnitude of the difference. Invalid sample sizes and degenerate
// standard errors resolve to false, never to an error.
func IsSignificant(p1 float64, n1 int, p2 float64, n2 int, criticalZ float64) bool {
	z, ok := ZStatistic(p1, n1, p2, n2)
	if !ok {
		return false
	}
	return z > criticalZ
}

// PValue converts a z statistic to its two-tailed normal p-value. Reported
// as per-comparison detail; the significance decision itself is the fixed
// critical-value compare in IsSignificant.
func PValue(z float64) float64 {
	return 2 * stdNormal.Survival(math.Abs(z))
}

//go:build fastmath

package extlaw

import "github.com/meko-christian/algo-approx"

// mathLog computes ln(x) using fast approximation. The exactness
// guarantees at table nodes and at KsWavelength do not hold here.
func mathLog(x float64) float64 {
	return approx.FastLog(x)
}

// mathExp computes e^x using fast approximation.
func mathExp(x float64) float64 {
	return approx.FastExp(x)
}

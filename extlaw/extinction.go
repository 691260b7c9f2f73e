package extlaw

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Extinction returns the extinction A_λ in magnitudes at the given
// wavelength (µm) for a Ks-band extinction aKs, together with the 1-sigma
// uncertainty propagated from the index uncertainty:
//
//	A_λ = aKs * (λ/KsWavelength)^(-α(λ))
//	σ_A = A_λ * |ln(λ/KsWavelength)| * σ_α(λ)
//
// aKs is treated as exact and is non-negative by convention. At
// λ == KsWavelength the result is exactly (aKs, 0).
func Extinction(aKs, wavelength float64) (aLambda, sigma float64, err error) {
	if errLawTable != nil {
		return 0, 0, errLawTable
	}
	if err := validateWavelength(wavelength); err != nil {
		return 0, 0, err
	}

	alpha, alphaSigma := indexAt(wavelength)
	u := mathLog(wavelength / KsWavelength)
	aLambda = aKs * mathExp(-alpha*u)
	sigma = math.Abs(u) * alphaSigma * aLambda
	return aLambda, sigma, nil
}

// Curve evaluates the law at every wavelength (µm), returning newly
// allocated extinction and uncertainty slices in input order.
func Curve(aKs float64, wavelengths []float64) (aLambda, sigma []float64, err error) {
	if len(wavelengths) == 0 {
		return nil, nil, ErrEmptyInput
	}

	aLambda = make([]float64, len(wavelengths))
	sigma = make([]float64, len(wavelengths))
	if err := CurveTo(aLambda, sigma, aKs, wavelengths); err != nil {
		return nil, nil, err
	}
	return aLambda, sigma, nil
}

// CurveTo evaluates the law into pre-allocated destinations. dstExt and
// dstSigma must have the same length as wavelengths. The whole call fails
// before any output is written if a wavelength is invalid, so callers
// never see partial results. Element i of the outputs corresponds to
// wavelengths[i], and values match [Extinction] bit for bit.
func CurveTo(dstExt, dstSigma []float64, aKs float64, wavelengths []float64) error {
	if errLawTable != nil {
		return errLawTable
	}
	if len(wavelengths) == 0 {
		return ErrEmptyInput
	}
	if len(dstExt) != len(wavelengths) || len(dstSigma) != len(wavelengths) {
		return ErrLengthMismatch
	}
	for i, w := range wavelengths {
		if err := validateWavelength(w); err != nil {
			return fmt.Errorf("index %d: %w", i, err)
		}
	}

	for i, w := range wavelengths {
		alpha, alphaSigma := indexAt(w)
		u := mathLog(w / KsWavelength)
		dstExt[i] = aKs * mathExp(-alpha*u)
		dstSigma[i] = math.Abs(u) * alphaSigma
	}

	// sigma = weight * A_λ, as a single block product
	vecmath.MulBlockInPlace(dstSigma, dstExt)
	return nil
}

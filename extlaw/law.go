package extlaw

import (
	"fmt"
	"sort"
)

// Wavelength bounds of the calibrated range, in micrometers.
const (
	// MinWavelength is the blue edge of the calibrated wavelength range.
	MinWavelength = 0.8

	// MaxWavelength is the red edge of the calibrated wavelength range.
	MaxWavelength = 2.2

	// KsWavelength is the Ks-band reference wavelength. The extinction
	// ratio A_λ/A_Ks is unity here by definition.
	KsWavelength = 2.14
)

// lawPoint is one calibration node: the effective power-law index of the
// extinction curve at a wavelength, with its 1-sigma uncertainty.
type lawPoint struct {
	wavelength float64 // µm
	index      float64 // α
	sigma      float64 // σ_α
}

// law holds the Hosek+17 calibration re-expressed as effective indices
// relative to the Ks anchor, α = ln(A_λ/A_Ks)/ln(2.14/λ), with sigmas
// from the published 1-sigma envelopes. The 0.8 and 2.2 µm rows extend
// the adjacent measured segment to the range edges; the 2.14 µm row
// carries the F160W-Ks segment index, where the ratio form is singular.
var law = []lawPoint{
	{0.8000, 2.3230858654068873, 0.033802254685002975}, // range edge
	{0.8059, 2.322332887393613, 0.033932387965952326},  // F814W
	{0.9620, 2.3000047011726905, 0.03779125247374382},  // y
	{1.2500, 2.3616321945618393, 0.052258230372778325}, // F125W
	{1.5300, 2.520930659252733, 0.07676257245921225},   // F160W
	{2.1400, 2.520930659252733, 0.07676257245921225},   // Ks
	{2.2000, 1.373296573363667, 0.11901784814918714},   // range edge
}

var errLawTable = validateLaw(law)

func validateLaw(points []lawPoint) error {
	if len(points) < 2 {
		return fmt.Errorf("%w: need at least 2 nodes, have %d", ErrBadLawTable, len(points))
	}
	for i := 1; i < len(points); i++ {
		if !(points[i].wavelength > points[i-1].wavelength) {
			return fmt.Errorf("%w: wavelengths not strictly increasing at node %d", ErrBadLawTable, i)
		}
	}
	return nil
}

// Index returns the power-law index α and its 1-sigma uncertainty at the
// given wavelength in micrometers.
//
// Between nodes the index is interpolated linearly; a wavelength matching
// a node returns the tabulated values exactly. Outside [MinWavelength,
// MaxWavelength] the nearest edge segment is extended linearly, which
// carries no calibration guarantee.
func Index(wavelength float64) (index, sigma float64, err error) {
	if errLawTable != nil {
		return 0, 0, errLawTable
	}
	if err := validateWavelength(wavelength); err != nil {
		return 0, 0, err
	}
	index, sigma = indexAt(wavelength)
	return index, sigma, nil
}

// indexAt evaluates the α and σ_α polylines at wavelength. The bracketing
// segment index is clamped to the table, so out-of-range wavelengths
// continue the first or last segment.
func indexAt(wavelength float64) (index, sigma float64) {
	n := len(law)
	i := sort.Search(n, func(k int) bool { return law[k].wavelength > wavelength }) - 1
	if i < 0 {
		i = 0
	} else if i > n-2 {
		i = n - 2
	}

	p, q := law[i], law[i+1]
	if wavelength == p.wavelength {
		return p.index, p.sigma
	}
	if wavelength == q.wavelength {
		return q.index, q.sigma
	}

	f := (wavelength - p.wavelength) / (q.wavelength - p.wavelength)
	return p.index + f*(q.index-p.index), p.sigma + f*(q.sigma-p.sigma)
}

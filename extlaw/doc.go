// Package extlaw evaluates the Hosek+17 near-infrared interstellar
// extinction law, calibrated on Westerlund 1 main-sequence stars and red
// clump stars in the Arches field.
//
// The law is carried as a fixed calibration table of effective power-law
// indices α(λ) with 1-sigma uncertainties, covering 0.8 to 2.2 µm and
// anchored at the Ks band (2.14 µm). Extinction at a wavelength follows
//
//	A_λ = A_Ks * (λ/2.14)^(-α(λ))
//
// with α interpolated linearly between table nodes.
//
// Entry points:
//
//   - [Index]:      interpolated index α and its uncertainty at one wavelength
//   - [Extinction]: extinction A_λ and propagated uncertainty at one wavelength
//   - [Curve]:      batch evaluation over a wavelength slice
//   - [CurveTo]:    batch evaluation into pre-allocated buffers
//
// Wavelengths outside [MinWavelength, MaxWavelength] are evaluated by
// extending the nearest table segment linearly; such values carry no
// calibration guarantee. Non-finite or non-positive wavelengths are
// rejected with [ErrInvalidWavelength].
//
// All functions are pure and safe for concurrent use.
package extlaw

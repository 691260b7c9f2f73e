package extlaw

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by evaluation functions.
var (
	ErrInvalidWavelength = errors.New("extlaw: invalid wavelength")
	ErrEmptyInput        = errors.New("extlaw: empty input")
	ErrLengthMismatch    = errors.New("extlaw: buffer length mismatch")
	ErrBadLawTable       = errors.New("extlaw: malformed law table")
)

func validateWavelength(wavelength float64) error {
	if math.IsNaN(wavelength) || math.IsInf(wavelength, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidWavelength, wavelength)
	}
	if wavelength <= 0 {
		return fmt.Errorf("%w: %v (must be > 0)", ErrInvalidWavelength, wavelength)
	}
	return nil
}

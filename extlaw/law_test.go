package extlaw

import (
	"errors"
	"math"
	"testing"
)

func TestLawTableIsValid(t *testing.T) {
	if errLawTable != nil {
		t.Fatalf("embedded law table invalid: %v", errLawTable)
	}

	if got := law[0].wavelength; got != MinWavelength {
		t.Fatalf("first node at %v, want MinWavelength %v", got, MinWavelength)
	}
	if got := law[len(law)-1].wavelength; got != MaxWavelength {
		t.Fatalf("last node at %v, want MaxWavelength %v", got, MaxWavelength)
	}

	for _, p := range law {
		if p.sigma < 0 {
			t.Fatalf("node %v: negative sigma %v", p.wavelength, p.sigma)
		}
	}
}

func TestIndexExactAtNodes(t *testing.T) {
	for _, p := range law {
		index, sigma, err := Index(p.wavelength)
		if err != nil {
			t.Fatalf("wavelength %v: %v", p.wavelength, err)
		}
		if index != p.index || sigma != p.sigma {
			t.Fatalf("wavelength %v: got (%v, %v), want tabulated (%v, %v)",
				p.wavelength, index, sigma, p.index, p.sigma)
		}
	}
}

func TestIndexGoldenVectors(t *testing.T) {
	for _, tc := range []struct {
		wavelength, index, sigma float64
	}{
		{0.9, 2.3088730390695336, 0.03625858367500537},
		{1.1, 2.329534541754991, 0.04472334605036452},
		{1.4, 2.446970657789104, 0.06538555649051078},
		{1.8, 2.520930659252733, 0.07676257245921225},
		{2.17, 1.9471136163082043, 0.09789021030419955},
	} {
		index, sigma, err := Index(tc.wavelength)
		if err != nil {
			t.Fatalf("wavelength %v: %v", tc.wavelength, err)
		}
		if !almostEqual(index, tc.index, 1e-14) || !almostEqual(sigma, tc.sigma, 1e-14) {
			t.Fatalf("wavelength %v: got (%.16f, %.16f), want (%.16f, %.16f)",
				tc.wavelength, index, sigma, tc.index, tc.sigma)
		}
	}
}

func TestIndexExtrapolatesEdgeSegments(t *testing.T) {
	for _, tc := range []struct {
		wavelength, index, sigma float64
	}{
		{0.75, 2.3294670350109064, 0.032699430270177944},
		{2.5, -4.364873856081656, 0.3302942265990613},
	} {
		index, sigma, err := Index(tc.wavelength)
		if err != nil {
			t.Fatalf("wavelength %v: %v", tc.wavelength, err)
		}
		if !almostEqual(index, tc.index, 1e-14) || !almostEqual(sigma, tc.sigma, 1e-14) {
			t.Fatalf("wavelength %v: got (%.16f, %.16f), want (%.16f, %.16f)",
				tc.wavelength, index, sigma, tc.index, tc.sigma)
		}
	}

	// no jump where extrapolation meets the table edges
	const step = 1e-6
	inside, _, _ := Index(MinWavelength)
	outside, _, err := Index(MinWavelength - step)
	if err != nil {
		t.Fatalf("blue edge: %v", err)
	}
	if math.Abs(outside-inside) > 1e-3 {
		t.Fatalf("discontinuity at blue edge: %v vs %v", outside, inside)
	}

	inside, _, _ = Index(MaxWavelength)
	outside, _, err = Index(MaxWavelength + step)
	if err != nil {
		t.Fatalf("red edge: %v", err)
	}
	if math.Abs(outside-inside) > 1e-3 {
		t.Fatalf("discontinuity at red edge: %v vs %v", outside, inside)
	}
}

func TestIndexInvalidWavelength(t *testing.T) {
	for _, w := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), 0, -1.25} {
		if _, _, err := Index(w); !errors.Is(err, ErrInvalidWavelength) {
			t.Fatalf("wavelength %v: err = %v, want ErrInvalidWavelength", w, err)
		}
	}
}

func TestValidateLaw(t *testing.T) {
	valid := []lawPoint{{1.0, 2.0, 0.1}, {2.0, 2.5, 0.2}}
	if err := validateLaw(valid); err != nil {
		t.Fatalf("valid table rejected: %v", err)
	}

	for name, points := range map[string][]lawPoint{
		"empty":      nil,
		"single":     {{1.0, 2.0, 0.1}},
		"duplicate":  {{1.0, 2.0, 0.1}, {1.0, 2.5, 0.2}},
		"decreasing": {{2.0, 2.0, 0.1}, {1.0, 2.5, 0.2}},
		"nan":        {{1.0, 2.0, 0.1}, {math.NaN(), 2.5, 0.2}},
	} {
		if err := validateLaw(points); !errors.Is(err, ErrBadLawTable) {
			t.Fatalf("%s: err = %v, want ErrBadLawTable", name, err)
		}
	}
}

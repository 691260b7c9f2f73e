// Package lawplot renders the extinction law as a PNG figure.
package lawplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/mwhosek/extlaw-H17/extlaw"
)

// DefaultPath is where [Render] saves the figure unless [WithPath]
// overrides it.
const DefaultPath = "extlaw_H17.png"

// bandMarks are the photometric bands annotated on the figure, at their
// anchor wavelengths in µm.
var bandMarks = []struct {
	name       string
	wavelength float64
}{
	{"F814W", 0.8059},
	{"Y", 0.962},
	{"F125W", 1.25},
	{"F160W", 1.53},
	{"Ks", extlaw.KsWavelength},
}

var palette = []color.NRGBA{
	{R: 214, G: 39, B: 40, A: 255},
	{R: 31, G: 119, B: 180, A: 255},
	{R: 44, G: 160, B: 44, A: 255},
	{R: 148, G: 103, B: 189, A: 255},
}

// Option configures the renderer.
type Option func(*config)

type config struct {
	path      string
	refValues []float64
	samples   int
	width     vg.Length
	height    vg.Length
}

func defaultConfig() config {
	return config{
		path:      DefaultPath,
		refValues: []float64{0.6, 2.7},
		samples:   141,
		width:     6 * vg.Inch,
		height:    6 * vg.Inch,
	}
}

// WithPath overrides the output file path. The extension selects the
// image format, as in plot.Plot.Save.
func WithPath(path string) Option {
	return func(c *config) {
		if path != "" {
			c.path = path
		}
	}
}

// WithReferenceValues sets the A_Ks values drawn, one curve and band each.
// The defaults are a low and a high representative extinction (0.6 and
// 2.7 mag).
func WithReferenceValues(aKs ...float64) Option {
	return func(c *config) {
		if len(aKs) > 0 {
			c.refValues = append([]float64(nil), aKs...)
		}
	}
}

// WithSamples sets the number of wavelength samples per curve.
func WithSamples(n int) Option {
	return func(c *config) {
		if n >= 2 {
			c.samples = n
		}
	}
}

// WithSize sets the saved canvas size.
func WithSize(width, height vg.Length) Option {
	return func(c *config) {
		if width > 0 && height > 0 {
			c.width = width
			c.height = height
		}
	}
}

// Render draws the extinction law over the calibrated wavelength range,
// one curve with a shaded 1-sigma band per reference value, and saves the
// figure. The x axis is inverse wavelength, the usual convention for
// extinction-law figures.
func Render(opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	wavelengths := floats.Span(make([]float64, cfg.samples), extlaw.MinWavelength, extlaw.MaxWavelength)

	p := plot.New()
	p.Title.Text = "Hosek+17 extinction law"
	p.X.Label.Text = "1 / λ (1/µm)"
	p.Y.Label.Text = "A_λ (mag)"
	p.Legend.Top = true
	p.Legend.Left = true

	for i, aKs := range cfg.refValues {
		if err := addCurve(p, aKs, wavelengths, palette[i%len(palette)]); err != nil {
			return err
		}
	}
	if err := addBandMarks(p, cfg.refValues); err != nil {
		return err
	}

	if err := p.Save(cfg.width, cfg.height, cfg.path); err != nil {
		return fmt.Errorf("lawplot: save %s: %w", cfg.path, err)
	}
	return nil
}

func addCurve(p *plot.Plot, aKs float64, wavelengths []float64, col color.NRGBA) error {
	aLambda, sigma, err := extlaw.Curve(aKs, wavelengths)
	if err != nil {
		return fmt.Errorf("lawplot: evaluate law for A_Ks=%g: %w", aKs, err)
	}
	n := len(wavelengths)

	// band ring: upper envelope out, lower envelope back
	band := make(plotter.XYs, 0, 2*n)
	for i := 0; i < n; i++ {
		band = append(band, plotter.XY{X: 1 / wavelengths[i], Y: aLambda[i] + sigma[i]})
	}
	for i := n - 1; i >= 0; i-- {
		band = append(band, plotter.XY{X: 1 / wavelengths[i], Y: aLambda[i] - sigma[i]})
	}
	poly, err := plotter.NewPolygon(band)
	if err != nil {
		return fmt.Errorf("lawplot: band for A_Ks=%g: %w", aKs, err)
	}
	fill := col
	fill.A = 77 // 30% alpha
	poly.Color = fill
	poly.LineStyle.Color = color.Transparent

	xys := make(plotter.XYs, n)
	for i := range xys {
		xys[i] = plotter.XY{X: 1 / wavelengths[i], Y: aLambda[i]}
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("lawplot: curve for A_Ks=%g: %w", aKs, err)
	}
	line.Color = col
	line.Width = vg.Points(2)

	p.Add(poly, line)
	p.Legend.Add(fmt.Sprintf("A_Ks = %.2g", aKs), line)
	return nil
}

// addBandMarks labels the anchor bands just above the highest curve.
func addBandMarks(p *plot.Plot, refValues []float64) error {
	maxRef := refValues[0]
	for _, v := range refValues[1:] {
		if v > maxRef {
			maxRef = v
		}
	}

	labels := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(bandMarks)),
		Labels: make([]string, len(bandMarks)),
	}
	for i, m := range bandMarks {
		aLambda, sigma, err := extlaw.Extinction(maxRef, m.wavelength)
		if err != nil {
			return fmt.Errorf("lawplot: band mark %s: %w", m.name, err)
		}
		labels.XYs[i] = plotter.XY{X: 1 / m.wavelength, Y: aLambda + sigma}
		labels.Labels[i] = m.name
	}

	l, err := plotter.NewLabels(labels)
	if err != nil {
		return fmt.Errorf("lawplot: band marks: %w", err)
	}
	l.Offset = vg.Point{Y: vg.Points(3)}
	p.Add(l)
	return nil
}

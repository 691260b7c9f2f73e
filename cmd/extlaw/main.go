// Command extlaw prints the Hosek+17 near-infrared extinction law and
// optionally renders it as a figure.
//
// Usage:
//
//	extlaw [flags] [wavelength ...]
//
// Wavelengths are in micrometers. Without arguments it prints a grid over
// the calibrated range (0.8 to 2.2 µm). Wavelengths outside that range are
// extrapolated and flagged on stderr.
//
// Examples:
//
//	extlaw 1.25 1.53 2.14
//	extlaw -aks 2.7 1.25 1.53
//	extlaw -step 0.05
//	extlaw -plot -out law.png
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/mwhosek/extlaw-H17/extlaw"
	"github.com/mwhosek/extlaw-H17/lawplot"
)

func main() {
	aKs := flag.Float64("aks", 1.0, "reference Ks-band extinction in magnitudes")
	step := flag.Float64("step", 0.1, "grid step in micrometers when no wavelengths are given")
	plotFlag := flag.Bool("plot", false, "render the law figure instead of printing a table")
	out := flag.String("out", lawplot.DefaultPath, "output path for -plot")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: extlaw [flags] [wavelength ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the Hosek+17 extinction law at the given wavelengths (µm).\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints a grid over the calibrated range.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  extlaw 1.25 1.53 2.14\n")
		fmt.Fprintf(os.Stderr, "  extlaw -aks 2.7 1.25 1.53\n")
		fmt.Fprintf(os.Stderr, "  extlaw -step 0.05\n")
		fmt.Fprintf(os.Stderr, "  extlaw -plot -out law.png\n")
	}
	flag.Parse()

	if *plotFlag {
		if err := lawplot.Render(lawplot.WithPath(*out)); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(*out)
		return
	}

	wavelengths, err := resolveWavelengths(flag.Args(), *step)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	for _, w := range wavelengths {
		if w < extlaw.MinWavelength || w > extlaw.MaxWavelength {
			fmt.Fprintf(os.Stderr, "warning: %g µm outside calibrated range [%g, %g], extrapolating\n",
				w, extlaw.MinWavelength, extlaw.MaxWavelength)
		}
	}

	if err := printTable(*aKs, wavelengths); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func resolveWavelengths(args []string, step float64) ([]float64, error) {
	if len(args) == 0 {
		return gridWavelengths(step)
	}

	wavelengths := make([]float64, 0, len(args))
	for _, arg := range args {
		w, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid wavelength %q", arg)
		}
		wavelengths = append(wavelengths, w)
	}
	return wavelengths, nil
}

func gridWavelengths(step float64) ([]float64, error) {
	if step <= 0 {
		return nil, fmt.Errorf("step must be > 0: %g", step)
	}

	var wavelengths []float64
	for w := extlaw.MinWavelength; w <= extlaw.MaxWavelength+step/2; w += step {
		wavelengths = append(wavelengths, w)
	}
	return wavelengths, nil
}

func printTable(aKs float64, wavelengths []float64) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Wavelength [um]\tAlpha\tSigma Alpha\tA_lambda [mag]\tSigma [mag]\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "---------------\t-----\t-----------\t--------------\t-----------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, w := range wavelengths {
		index, indexSigma, err := extlaw.Index(w)
		if err != nil {
			return err
		}
		aLambda, sigma, err := extlaw.Extinction(aKs, w)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(tw, "%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n",
			w, index, indexSigma, aLambda, sigma); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

package lawplot

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/plot/vg"
)

func TestRenderWritesDefaultArtifact(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := Render(); err != nil {
		t.Fatal(err)
	}

	img := decodePNG(t, DefaultPath)
	if img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
		t.Fatal("empty image")
	}
}

func TestRenderWithOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "law.png")

	err := Render(
		WithPath(path),
		WithReferenceValues(1.0),
		WithSamples(29),
		WithSize(4*vg.Inch, 3*vg.Inch),
	)
	if err != nil {
		t.Fatal(err)
	}

	img := decodePNG(t, path)
	if img.Bounds().Dx() <= img.Bounds().Dy() {
		t.Fatalf("canvas size not applied: %v", img.Bounds())
	}
}

func TestRenderRejectsInvalidOptionValues(t *testing.T) {
	t.Chdir(t.TempDir())

	// invalid option values fall back to the defaults
	err := Render(WithPath(""), WithSamples(1), WithReferenceValues(), WithSize(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(DefaultPath); err != nil {
		t.Fatalf("default artifact missing: %v", err)
	}
}

func TestRenderSaveError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "law.png")
	if err := Render(WithPath(path)); err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("artifact not written: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("artifact is not a valid PNG: %v", err)
	}
	return img
}

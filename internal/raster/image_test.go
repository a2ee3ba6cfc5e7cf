package raster

import "testing"

func TestNewImageZeroed(t *testing.T) {
	img := NewImage(4, 3)

	if img.Width != 4 || img.Height != 3 {
		t.Fatalf("dimensions = (%d, %d), want (4, 3)", img.Width, img.Height)
	}
	if len(img.Pixels) != 12 {
		t.Fatalf("len(Pixels) = %d, want 12", len(img.Pixels))
	}
	if img.At(2, 1) != (Pixel{}) {
		t.Errorf("fresh image should be zeroed, got %v", img.At(2, 1))
	}
}

func TestSetAndAtRoundTrip(t *testing.T) {
	img := NewImage(4, 3)
	want := Pixel{R: 0.5, G: 0.25, B: 1.0}

	img.Set(2, 1, want)

	if got := img.At(2, 1); got != want {
		t.Errorf("At(2, 1) = %v, want %v", got, want)
	}
	if got := img.At(0, 0); got != (Pixel{}) {
		t.Errorf("unrelated pixel At(0, 0) = %v, want zero value", got)
	}
}

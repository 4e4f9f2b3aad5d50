package croquis

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestFitRect(t *testing.T) {
	tests := []struct {
		name       string
		imgW, imgH int
		want       image.Rectangle
	}{
		{"square", 100, 100, image.Rect(0, 50, 100, 150)},
		{"wide", 400, 100, image.Rect(0, 88, 100, 113)},
		{"tall", 50, 400, image.Rect(38, 0, 63, 200)},
		{"same ratio", 10, 20, image.Rect(0, 0, 100, 200)},
		{"empty", 0, 10, image.Rectangle{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FitRect(100, 200, tt.imgW, tt.imgH); got != tt.want {
				t.Errorf("FitRect(100, 200, %d, %d) = %v, want %v", tt.imgW, tt.imgH, got, tt.want)
			}
		})
	}
}

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestReferenceLayerLetterbox(t *testing.T) {
	r := NewReferenceLayer(100, 200, FilterGrayscale{})
	if got := px(r.Layer(), 50, 100); got != opaqueWhite {
		t.Fatalf("empty pane = %v, want white", got)
	}

	r.SetImage(solidImage(10, 10, color.NRGBA{R: 255, A: 255}))
	if got := px(r.Layer(), 50, 100); got[0] < 254 || got[1] > 1 || got[2] > 1 || got[3] != 255 {
		t.Errorf("picture center = %v, want red", got)
	}
	for _, y := range []int{10, 190} {
		if got := px(r.Layer(), 50, y); got != opaqueWhite {
			t.Errorf("letterbox row %d = %v, want white", y, got)
		}
	}

	r.SetGrayscale(true)
	got := px(r.Layer(), 50, 100)
	if got[0] != got[1] || got[1] != got[2] || got[0] < 53 || got[0] > 55 {
		t.Errorf("grayscale red = %v, want luma 54", got)
	}
	if got := px(r.Layer(), 50, 10); got != opaqueWhite {
		t.Errorf("grayscale letterbox = %v, want white", got)
	}
}

func TestReferenceLayerGrid(t *testing.T) {
	r := NewReferenceLayer(100, 200, nil)
	r.SetGrid(GridConfig{Divisions: 2, LineWidth: 2})

	// Main vertical at x = 50 covers columns 49 and 50.
	line := px(r.Layer(), 49, 20)
	if line[3] != 255 || line[0] >= 255 || line[0] < 150 {
		t.Errorf("grid line on pane = %v, want opaque mid gray", line)
	}
	if got := px(r.Layer(), 25, 20); got != opaqueWhite {
		t.Errorf("between lines = %v, want white", got)
	}

	ov := px(r.Overlay(), 49, 20)
	if ov[3] < 85 || ov[3] > 95 || ov[0] != 0 {
		t.Errorf("overlay line = %v, want black at alpha 0.35", ov)
	}
	if got := px(r.Overlay(), 25, 20); got != clearPixel {
		t.Errorf("overlay between lines = %v, want transparent", got)
	}

	r.SetGrid(GridConfig{})
	if got := px(r.Overlay(), 49, 20); got != clearPixel {
		t.Errorf("overlay after disabling grid = %v, want transparent", got)
	}
}

func TestDecodeReference(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, solidImage(3, 2, color.NRGBA{G: 255, A: 255})); err != nil {
		t.Fatal(err)
	}
	img, err := DecodeReference(&buf)
	if err != nil {
		t.Fatalf("DecodeReference() error = %v", err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Errorf("bounds = %v, want 3x2", img.Bounds())
	}

	_, err = DecodeReference(bytes.NewReader([]byte("plain text")))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("DecodeReference(text) error = %v, want ErrUnsupportedFormat", err)
	}
}

package image

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 6, 4))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	img.Set(2, 1, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	return img
}

func TestDecodeFormats(t *testing.T) {
	tests := []struct {
		name   string
		encode func(*bytes.Buffer, image.Image) error
	}{
		{"png", func(b *bytes.Buffer, m image.Image) error { return png.Encode(b, m) }},
		{"bmp", func(b *bytes.Buffer, m image.Image) error { return bmp.Encode(b, m) }},
		{"tiff", func(b *bytes.Buffer, m image.Image) error { return tiff.Encode(b, m, nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.encode(&buf, testImage()); err != nil {
				t.Fatalf("encode: %v", err)
			}
			img, format, err := Decode(&buf)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if format != tt.name {
				t.Errorf("format = %q, want %q", format, tt.name)
			}
			if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 4 {
				t.Errorf("bounds = %v, want 6x4", b)
			}
			r, g, bl, _ := img.At(2, 1).RGBA()
			if r>>8 != 200 || g>>8 != 100 || bl>>8 != 50 {
				t.Errorf("pixel = (%d, %d, %d), want (200, 100, 50)", r>>8, g>>8, bl>>8)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, _, err := DecodeBytes(nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("DecodeBytes(nil) error = %v, want ErrEmptyData", err)
	}
	if _, _, err := DecodeBytes([]byte("definitely not an image")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("DecodeBytes(text) error = %v, want ErrUnsupportedFormat", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage()); err != nil {
		t.Fatal(err)
	}
	truncated := buf.Bytes()[:buf.Len()/2]
	_, _, err := DecodeBytes(truncated)
	if err == nil {
		t.Fatal("DecodeBytes(truncated) succeeded")
	}
	if errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("truncated png reported as unsupported: %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ref.png")
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage()); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}

	img, format, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if format != "png" || img.Bounds().Dx() != 6 {
		t.Errorf("Load() = %q %v", format, img.Bounds())
	}

	if _, _, err := Load(filepath.Join(dir, "missing.png")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want ErrNotExist", err)
	}
}

func TestSupported(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"model.PNG", true},
		{"model.jpeg", true},
		{"scan.tif", true},
		{"photo.webp", true},
		{"notes.txt", false},
		{"noext", false},
	}
	for _, tt := range tests {
		if got := Supported(tt.path); got != tt.want {
			t.Errorf("Supported(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

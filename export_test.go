package croquis

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestSuggestedFilename(t *testing.T) {
	tests := []struct {
		t    time.Time
		h    int
		want string
	}{
		{epoch, 720, "feedback_2026-03-14T09-26-53-589Z_720h.png"},
		{epoch.In(time.FixedZone("CET", 3600)), 1080, "feedback_2026-03-14T09-26-53-589Z_1080h.png"},
		{time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), 720, "feedback_2025-01-02T03-04-05-000Z_720h.png"},
	}
	for _, tt := range tests {
		if got := SuggestedFilename(tt.t, tt.h); got != tt.want {
			t.Errorf("SuggestedFilename(%v, %d) = %q, want %q", tt.t, tt.h, got, tt.want)
		}
	}
}

func testArtifact(name string) Artifact {
	img := image.NewRGBA(image.Rect(0, 0, 24, 32))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	return Artifact{
		Name:      name,
		Image:     img,
		SessionID: uuid.MustParse("6f1c2b9e-3d4a-4f5b-8c7d-2e1f0a9b8c7d"),
		Duration:  60 * time.Second,
		CreatedAt: epoch,
	}
}

func TestDirSink(t *testing.T) {
	dir := t.TempDir()
	sink := DirSink{Dir: dir}
	ctx := context.Background()

	t.Run("png", func(t *testing.T) {
		a := testArtifact("out.png")
		if err := sink.Export(ctx, a); err != nil {
			t.Fatalf("Export() error = %v", err)
		}
		f, err := os.Open(filepath.Join(dir, "out.png"))
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()
		img, err := png.Decode(f)
		if err != nil {
			t.Fatalf("decode exported png: %v", err)
		}
		if img.Bounds() != a.Image.Bounds() {
			t.Errorf("bounds = %v, want %v", img.Bounds(), a.Image.Bounds())
		}
	})

	t.Run("pdf", func(t *testing.T) {
		if err := sink.Export(ctx, testArtifact("out.pdf")); err != nil {
			t.Fatalf("Export() error = %v", err)
		}
		data, err := os.ReadFile(filepath.Join(dir, "out.pdf"))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.HasPrefix(data, []byte("%PDF-")) {
			t.Errorf("pdf header = %q", data[:min(8, len(data))])
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		err := sink.Export(ctx, testArtifact("out.jpg"))
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("Export(.jpg) error = %v, want ErrUnsupportedFormat", err)
		}
		if _, err := os.Stat(filepath.Join(dir, "out.jpg")); !errors.Is(err, os.ErrNotExist) {
			t.Error("unsupported export left a file behind")
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		if err := sink.Export(cctx, testArtifact("late.png")); !errors.Is(err, context.Canceled) {
			t.Errorf("Export() error = %v, want context.Canceled", err)
		}
	})

	t.Run("missing dir", func(t *testing.T) {
		bad := DirSink{Dir: filepath.Join(dir, "nope")}
		if err := bad.Export(ctx, testArtifact("x.png")); err == nil {
			t.Error("Export() into a missing directory succeeded")
		}
	})
}

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	if err := (WriterSink{W: &buf}).Export(context.Background(), testArtifact("a.png")); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Errorf("default format is not png: %v", err)
	}

	buf.Reset()
	if err := (WriterSink{W: &buf, Format: "pdf"}).Export(context.Background(), testArtifact("a.pdf")); err != nil {
		t.Fatalf("Export(pdf) error = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Error("pdf writer sink did not write a pdf")
	}

	err := (WriterSink{W: &buf, Format: "gif"}).Export(context.Background(), testArtifact("a.gif"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Export(gif) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestCaption(t *testing.T) {
	a := testArtifact("c.png")
	Caption(a.Image, captionText(a))

	inked := 0
	b := a.Image.Bounds()
	for y := b.Max.Y - 20; y < b.Max.Y; y++ {
		for x := 0; x < b.Max.X; x++ {
			if a.Image.RGBAAt(x, y).R < 255 {
				inked++
			}
		}
	}
	if inked == 0 {
		t.Error("caption left the bottom strip blank")
	}
	if got := a.Image.RGBAAt(b.Max.X-1, 0); got.R != 255 {
		t.Errorf("caption touched the top-right corner: %v", got)
	}
	if got := captionText(a); got != "1m0s  2026-03-14 09:26 UTC" {
		t.Errorf("captionText() = %q", got)
	}
}

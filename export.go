package croquis

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Artifact is an exported feedback image with its session metadata.
type Artifact struct {
	// Name is the suggested file name, see SuggestedFilename.
	Name  string
	Image *image.RGBA

	SessionID uuid.UUID
	Duration  time.Duration
	CreatedAt time.Time
}

// ExportSink persists an Artifact.
type ExportSink interface {
	Export(ctx context.Context, a Artifact) error
}

// filenameReplacer makes an ISO timestamp safe for file names.
var filenameReplacer = strings.NewReplacer(":", "-", ".", "-")

// SuggestedFilename returns feedback_<UTC ISO time>_<h>h.png with ':' and
// '.' in the timestamp replaced by '-'.
func SuggestedFilename(t time.Time, height int) string {
	stamp := filenameReplacer.Replace(t.UTC().Format("2006-01-02T15:04:05.000Z"))
	return fmt.Sprintf("feedback_%s_%dh.png", stamp, height)
}

// DirSink writes artifacts into a directory. The extension of the
// artifact name selects PNG or PDF.
type DirSink struct {
	Dir string
}

// Export writes a to Dir/a.Name.
func (s DirSink) Export(ctx context.Context, a Artifact) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	encode, err := encoderFor(filepath.Ext(a.Name))
	if err != nil {
		return err
	}
	path := filepath.Join(s.Dir, filepath.Base(a.Name))
	f, err := os.Create(path) //nolint:gosec // directory chosen by the user
	if err != nil {
		return fmt.Errorf("croquis: export: %w", err)
	}
	if err := encode(f, a); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("croquis: export: %w", err)
	}
	Logger().Info("croquis: feedback exported", "path", path, "session", a.SessionID)
	return nil
}

// WriterSink streams artifacts to W. Format is "png" (the default) or
// "pdf".
type WriterSink struct {
	W      io.Writer
	Format string
}

// Export encodes a to W.
func (s WriterSink) Export(ctx context.Context, a Artifact) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	format := s.Format
	if format == "" {
		format = "png"
	}
	encode, err := encoderFor("." + format)
	if err != nil {
		return err
	}
	return encode(s.W, a)
}

type encodeFunc func(io.Writer, Artifact) error

func encoderFor(ext string) (encodeFunc, error) {
	switch strings.ToLower(ext) {
	case ".png":
		return EncodePNG, nil
	case ".pdf":
		return EncodePDF, nil
	default:
		return nil, fmt.Errorf("croquis: export %q: %w", ext, ErrUnsupportedFormat)
	}
}

// EncodePNG writes the artifact image as PNG.
func EncodePNG(w io.Writer, a Artifact) error {
	if err := png.Encode(w, a.Image); err != nil {
		return fmt.Errorf("croquis: encode png: %w", err)
	}
	return nil
}

// pdfDPI maps export pixels to PDF points.
const pdfDPI = 96

// EncodePDF writes a single-page PDF sized to the artifact image at
// 96 dpi, with the session recorded in the document metadata.
func EncodePDF(w io.Writer, a Artifact) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, a.Image); err != nil {
		return fmt.Errorf("croquis: encode pdf: %w", err)
	}

	b := a.Image.Bounds()
	wd := float64(b.Dx()) * 72 / pdfDPI
	ht := float64(b.Dy()) * 72 / pdfDPI

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: wd, Ht: ht},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(strings.TrimSuffix(a.Name, filepath.Ext(a.Name)), false)
	pdf.SetSubject(fmt.Sprintf("session %s, %s", a.SessionID, a.Duration), false)
	pdf.SetCreator("croquis", false)
	pdf.SetCreationDate(a.CreatedAt)
	pdf.AddPage()

	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("feedback", opt, &buf)
	pdf.ImageOptions("feedback", 0, 0, wd, ht, false, opt, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("croquis: encode pdf: %w", err)
	}
	return nil
}

// captionMargin is the caption inset from the bottom-left corner.
const captionMargin = 6

// Caption burns text into the bottom-left corner of img using a 7×13
// bitmap face. Only ASCII renders.
func Caption(img *image.RGBA, text string) {
	b := img.Bounds()
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Gray{Y: 96}),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(b.Min.X+captionMargin, b.Max.Y-captionMargin),
	}
	d.DrawString(text)
}

// captionText describes a finished session.
func captionText(a Artifact) string {
	return fmt.Sprintf("%s  %s", a.Duration, a.CreatedAt.UTC().Format("2006-01-02 15:04 UTC"))
}

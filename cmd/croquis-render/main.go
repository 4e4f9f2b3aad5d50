// Command croquis-render replays a stroke script over a reference and
// writes the review image without opening a window.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/croquis"
)

func main() {
	var (
		configPath = flag.String("config", "", "settings file (TOML); defaults apply when empty")
		scriptPath = flag.String("script", "", "stroke script (TOML)")
		reference  = flag.String("reference", "", "reference image, overrides the script")
		output     = flag.String("output", "", "output .png or .pdf; a timestamped PNG name when empty")
		height     = flag.Int("height", 0, "export height in pixels, overrides the settings")
		gray       = flag.Bool("gray", false, "show the reference in grayscale")
		caption    = flag.Bool("caption", false, "burn session length and time into the image")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	croquis.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	opts := renderOptions{
		configPath: *configPath,
		scriptPath: *scriptPath,
		reference:  *reference,
		output:     *output,
		height:     *height,
		gray:       *gray,
		caption:    *caption,
	}
	path, err := run(context.Background(), opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "croquis-render:", err)
		os.Exit(1)
	}
	croquis.Logger().Info("review written", "path", path)
}

type renderOptions struct {
	configPath string
	scriptPath string
	reference  string
	output     string
	height     int
	gray       bool
	caption    bool
}

// run replays the script in a studio that never ticks, ends the session
// and exports the review. It returns the written path.
func run(ctx context.Context, o renderOptions) (string, error) {
	cfg := croquis.DefaultConfig()
	if o.configPath != "" {
		var err error
		if cfg, err = croquis.LoadConfig(o.configPath); err != nil {
			return "", err
		}
	}
	if o.height > 0 {
		cfg.ExportHeight = o.height
	}
	if o.gray {
		cfg.ReferenceGrayscale = true
	}

	sc := &script{}
	if o.scriptPath != "" {
		f, err := os.Open(filepath.Clean(o.scriptPath))
		if err != nil {
			return "", fmt.Errorf("open script: %w", err)
		}
		sc, err = decodeScript(f)
		_ = f.Close()
		if err != nil {
			return "", err
		}
	}

	studio := croquis.New(
		croquis.WithConfig(cfg),
		croquis.WithScheduler(croquis.NopScheduler{}),
		croquis.WithExportCaption(o.caption),
	)
	defer studio.Close()

	ref := o.reference
	if ref == "" {
		ref = sc.Reference
	}
	if ref != "" {
		img, err := croquis.LoadReference(ref)
		if err != nil {
			return "", err
		}
		studio.Dispatch(croquis.ReferenceLoaded{Image: img})
	}

	studio.Dispatch(croquis.Start{})
	for _, ev := range sc.events(studio.Status().Config) {
		studio.Dispatch(ev)
	}
	studio.Dispatch(croquis.Abandon{})

	a, err := studio.Export(ctx, nil)
	if err != nil {
		return "", err
	}
	dir, name := ".", a.Name
	if o.output != "" {
		dir, name = filepath.Split(o.output)
		if dir == "" {
			dir = "."
		}
	}
	a.Name = name
	if err := (croquis.DirSink{Dir: dir}).Export(ctx, a); err != nil {
		if errors.Is(err, croquis.ErrUnsupportedFormat) {
			return "", fmt.Errorf("%s: output must end in .png or .pdf: %w", strings.TrimSpace(name), err)
		}
		return "", err
	}
	return filepath.Join(dir, name), nil
}

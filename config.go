package croquis

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Grid defaults.
const (
	DefaultDivisions = 5
	DefaultLineWidth = 4
	MaxDivisions     = 64
	MaxLineWidth     = 32
)

// DefaultReferenceOpacity is the reference opacity in the review image.
const DefaultReferenceOpacity = 0.35

// Export height bounds in pixels.
const (
	MinExportHeight = 16
	MaxExportHeight = 8192
)

// Config is the user-facing settings surface. Out-of-range values are
// clamped by Normalize, never rejected.
type Config struct {
	Divisions          int     `toml:"divisions"`
	LineWidth          int     `toml:"line_width"`
	SubGrid            bool    `toml:"sub_grid"`
	ReferenceGrayscale bool    `toml:"reference_grayscale"`
	PenWidth           int     `toml:"pen_width"`
	EraserWidth        int     `toml:"eraser_width"`
	ReferenceOpacity   float64 `toml:"reference_opacity"`
	Duration           int     `toml:"duration"`
	ExportHeight       int     `toml:"export_height"`
}

// DefaultConfig returns the factory settings.
func DefaultConfig() Config {
	return Config{
		Divisions:        DefaultDivisions,
		LineWidth:        DefaultLineWidth,
		PenWidth:         DefaultPenWidth,
		EraserWidth:      DefaultEraserWidth,
		ReferenceOpacity: DefaultReferenceOpacity,
		Duration:         DefaultDuration,
		ExportHeight:     DefaultExportHeight,
	}
}

// Normalize clamps every field into its valid range.
func (c Config) Normalize() Config {
	c.Divisions = clampInt(c.Divisions, 0, MaxDivisions)
	c.LineWidth = clampInt(c.LineWidth, 1, MaxLineWidth)
	c.PenWidth = clampInt(c.PenWidth, MinToolWidth, MaxPenWidth)
	c.EraserWidth = clampInt(c.EraserWidth, MinToolWidth, MaxEraserWidth)
	c.ReferenceOpacity = clampUnit(c.ReferenceOpacity)
	c.Duration = clampInt(c.Duration, MinDuration, MaxDuration)
	c.ExportHeight = clampInt(c.ExportHeight, MinExportHeight, MaxExportHeight)
	return c
}

// Grid returns the grid part of the configuration.
func (c Config) Grid() GridConfig {
	return GridConfig{Divisions: c.Divisions, LineWidth: c.LineWidth, SubGrid: c.SubGrid}
}

// SetField assigns a field from a UI string and clamps it. Integer fields
// that do not parse fall back: divisions to 0 (no grid), line width to 1,
// the rest to their defaults. "aOpacity" is a percentage. It reports
// whether name is known.
func (c *Config) SetField(name, raw string) bool {
	raw = strings.TrimSpace(raw)
	def := DefaultConfig()
	switch name {
	case "divisions":
		c.Divisions = atoiOr(raw, 0)
	case "lineWidth":
		c.LineWidth = atoiOr(raw, 1)
	case "subGrid":
		c.SubGrid = parseBool(raw)
	case "referenceGrayscale":
		c.ReferenceGrayscale = parseBool(raw)
	case "penWidth":
		c.PenWidth = atoiOr(raw, def.PenWidth)
	case "eraserWidth":
		c.EraserWidth = atoiOr(raw, c.PenWidth*3)
	case "aOpacity":
		pct, ok := leadingInt(raw)
		if !ok {
			pct = int(def.ReferenceOpacity*100 + 0.5)
		}
		c.ReferenceOpacity = float64(pct) / 100
	case "duration":
		c.Duration = atoiOr(raw, def.Duration)
	case "exportHeight":
		c.ExportHeight = atoiOr(raw, def.ExportHeight)
	default:
		return false
	}
	*c = c.Normalize()
	return true
}

// leadingInt parses the integer prefix of s, ignoring trailing text the
// way form inputs are read.
func leadingInt(s string) (int, bool) {
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	return n, err == nil
}

// atoiOr is leadingInt with zero counted as missing.
func atoiOr(s string, def int) int {
	n, ok := leadingInt(s)
	if !ok || n == 0 {
		return def
	}
	return n
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	return err == nil && b
}

// DecodeConfig reads TOML settings from r on top of the defaults.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("croquis: decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		Logger().Warn("croquis: unknown config keys ignored", "keys", undecoded)
	}
	return cfg.Normalize(), nil
}

// LoadConfig reads the TOML file at path. A missing file yields the
// defaults without error.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(filepath.Clean(path))
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return DefaultConfig(), fmt.Errorf("croquis: load config: %w", err)
	}
	defer func() { _ = f.Close() }()
	return DecodeConfig(f)
}

// SaveConfig writes cfg to path as TOML, creating parent directories.
func SaveConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("croquis: save config: %w", err)
	}
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("croquis: save config: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(cfg.Normalize()); err != nil {
		_ = f.Close()
		return fmt.Errorf("croquis: save config: %w", err)
	}
	return f.Close()
}

// DefaultConfigPath returns <user config dir>/croquis/config.toml.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("croquis: config path: %w", err)
	}
	return filepath.Join(dir, "croquis", "config.toml"), nil
}

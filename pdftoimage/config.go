package pdftoimage

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// PopplerConfig points at the toolkit installation.
type PopplerConfig struct {
	BinDir string `toml:"bin_dir"`
}

// RenderConfig holds default rendering settings.
type RenderConfig struct {
	Format            string `toml:"format"`
	TIFFCompression   string `toml:"tiff_compression"`
	DPI               int    `toml:"dpi"`
	TimeoutSeconds    int    `toml:"timeout_seconds"`
	PageNumberOffset  int    `toml:"page_number_offset"`
	PageNumberPadding int    `toml:"page_number_padding"`
	Grayscale         bool   `toml:"grayscale"`
	PageNumbers       bool   `toml:"page_numbers"`
}

// ProjectConfig represents the tables of a project.toml file that concern this
// package, now using named types.
type ProjectConfig struct {
	Poppler PopplerConfig `toml:"poppler"`
	Render  RenderConfig  `toml:"render"`
}

// LoadProjectConfig reads and parses a project.toml file, allowing a missing
// file without error: that case yields the zero configuration.
func LoadProjectConfig(path string) (ProjectConfig, error) {
	var cfg ProjectConfig

	_, decodeErr := toml.DecodeFile(path, &cfg)
	if decodeErr != nil {
		if errors.Is(decodeErr, os.ErrNotExist) {
			var emptyCfg ProjectConfig

			return emptyCfg, nil
		}

		return ProjectConfig{}, fmt.Errorf(
			"failed to decode config file: %w",
			decodeErr,
		)
	}

	return cfg, nil
}

// ConverterOptions translates the configuration into Converter options.
func (cfg ProjectConfig) ConverterOptions() *Options {
	return &Options{
		ProgressBarOutput: nil,
		BinDir:            cfg.Poppler.BinDir,
	}
}

// ConvertOptions translates the configuration into per-call rendering options.
// Unset values keep their zero form, so Convert still applies its own defaults
// on top.
func (cfg ProjectConfig) ConvertOptions() ConvertOptions {
	return ConvertOptions{
		Format:            Format(cfg.Render.Format),
		UserPassword:      "",
		OwnerPassword:     "",
		TIFFCompression:   TIFFCompression(cfg.Render.TIFFCompression),
		Timeout:           time.Duration(cfg.Render.TimeoutSeconds) * time.Second,
		DPI:               cfg.Render.DPI,
		PageNumberOffset:  cfg.Render.PageNumberOffset,
		PageNumberPadding: cfg.Render.PageNumberPadding,
		Grayscale:         cfg.Render.Grayscale,
		PageNumbers:       cfg.Render.PageNumbers,
	}
}

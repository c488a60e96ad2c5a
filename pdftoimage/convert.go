// Package pdftoimage converts PDF documents to page images with Poppler's
// command-line tools.
package pdftoimage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/book-expert/logger"
	"github.com/cheggaaa/pb/v3"
)

var (
	// ErrSourcePathRequired is returned when the source PDF path is not provided.
	ErrSourcePathRequired = errors.New("source path is required")
	// ErrOutputPrefixRequired is returned when the output path prefix is not
	// provided.
	ErrOutputPrefixRequired = errors.New("output path prefix is required")
)

// Options holds the configurable parameters for a Converter.
// This struct is used to initialize a new Converter with user-defined settings.
type Options struct {
	// ProgressBarOutput is where progress bars are drawn. It defaults to
	// os.Stdout; pass io.Discard to silence them.
	ProgressBarOutput io.Writer
	// BinDir is the directory holding the Poppler executables. When empty,
	// the tools are resolved through the search path of the calling process.
	BinDir string
}

// Converter runs the Poppler tools against PDF documents.
type Converter struct {
	executor CommandExecutor
	log      *logger.Logger
	config   Options
}

// NewConverter creates and initializes a new Converter with the given options and
// logger. It sets sensible defaults for any zero-value fields in the Options struct.
func NewConverter(opts *Options, log *logger.Logger) *Converter {
	applyDefaultOptions(opts)

	return &Converter{
		config:   *opts,
		log:      log,
		executor: &defaultExecutor{}, // Use the real command executor by default.
	}
}

// applyDefaultOptions fills zero-value fields in Options with sensible defaults.
func applyDefaultOptions(opts *Options) {
	opts.ProgressBarOutput = defaultWriterNil(opts.ProgressBarOutput, os.Stdout)
}

func defaultIntNonPositive(v, def int) int {
	if v <= 0 {
		return def
	}

	return v
}

func defaultWriterNil(w, def io.Writer) io.Writer {
	if w == nil {
		return def
	}

	return w
}

const (
	defaultDPI    = 300
	defaultFormat = FormatTIFF
)

// ConvertOptions holds the per-call settings for Convert. The zero value
// renders uncompressed 300 DPI TIFF with automatic page labels.
type ConvertOptions struct {
	// Format chooses the output image format. Empty means FormatTIFF.
	// Unrecognized values run pdftoppm without a format flag, which
	// produces raw PPM output.
	Format Format
	// UserPassword and OwnerPassword unlock protected documents.
	UserPassword  string
	OwnerPassword string
	// TIFFCompression picks the compression scheme for TIFF output. It is
	// ignored for other formats; unknown schemes fall back to
	// CompressionNone.
	TIFFCompression TIFFCompression
	// Timeout bounds each external invocation. Zero means no limit beyond
	// the caller's context.
	Timeout time.Duration
	// DPI is the render resolution. Values <= 0 fall back to 300.
	DPI int
	// PageNumberOffset shifts page labels. It applies when >= -1 and not
	// zero; -1 starts numbering at zero.
	PageNumberOffset int
	// PageNumberPadding zero-pads page labels to this width when > 0.
	PageNumberPadding int
	// Grayscale renders single-channel output.
	Grayscale bool
	// PageNumbers forces a page label even for single-page documents.
	// Multi-page documents are always labeled.
	PageNumbers bool
}

// normalizeConvertOptions fills unset rendering fields with their defaults.
func normalizeConvertOptions(opts *ConvertOptions) {
	opts.DPI = defaultIntNonPositive(opts.DPI, defaultDPI)

	if opts.Format == "" {
		opts.Format = defaultFormat
	}
}

// Convert renders every page of a PDF document to an image file and returns the
// generated paths in page order.
//
// outputPathPrefix names the directory and filename stem for the generated
// files. A file extension on the prefix is discarded, and the PageToken
// placeholder, appended automatically when absent, marks where each page's
// label lands. The actual extension is decided by the format.
func (converter *Converter) Convert(
	ctx context.Context,
	sourcePath string,
	outputPathPrefix string,
	opts ConvertOptions,
) ([]string, error) {
	sourcePath = stripQuotes(sourcePath)
	if sourcePath == "" {
		return nil, ErrSourcePathRequired
	}

	outputPathPrefix = stripQuotes(outputPathPrefix)
	if outputPathPrefix == "" {
		return nil, ErrOutputPrefixRequired
	}

	// Determine the total number of pages before building any command.
	info, infoErr := converter.Info(ctx, sourcePath, InfoOptions{
		UserPassword:  opts.UserPassword,
		OwnerPassword: opts.OwnerPassword,
		Timeout:       opts.Timeout,
		RawDates:      false,
	})
	if infoErr != nil {
		return nil, fmt.Errorf("could not get page count: %w", infoErr)
	}

	normalizeConvertOptions(&opts)

	formatFlag, extension := resolveFormat(opts.Format)
	outputPrefix := stripOutputExtension(outputPathPrefix)
	toolPath := commandPath(binPDFToPPM, converter.config.BinDir)

	converter.log.Info(
		"Rendering %d page(s) of %s at %d DPI",
		info.Pages,
		filepath.Base(sourcePath),
		opts.DPI,
	)

	pageProgressBar := pb.New(info.Pages).
		SetTemplateString(`  {{ bar . " " "▸" "▹" " " " "}} {{percent .}} {{etime .}}`).
		SetWriter(converter.config.ProgressBarOutput).
		Start()
	defer pageProgressBar.Finish()

	generated := make([]string, 0, info.Pages)

	for page := 1; page <= info.Pages; page++ {
		// Check if the context has been canceled (e.g., by Ctrl+C).
		if ctx.Err() != nil {
			return nil, fmt.Errorf(
				"conversion canceled before page %d: %w",
				page,
				ctx.Err(),
			)
		}

		pagePrefix := strings.ReplaceAll(
			outputPrefix,
			PageToken,
			pageLabel(page, info.Pages, opts),
		)

		args := buildRenderArgs(opts, formatFlag, page, sourcePath, pagePrefix)

		_, runErr := converter.runTool(ctx, opts.Timeout, toolPath, args)
		if runErr != nil {
			return nil, fmt.Errorf("rendering page %d failed: %w", page, runErr)
		}

		generated = append(generated, pagePrefix+"."+extension)
		pageProgressBar.Increment()
	}

	return generated, nil
}

// pageLabel computes the page number text inserted into an output filename.
// A single-page document gets no label unless page numbering was requested.
// The offset shifts the number before padding applies.
func pageLabel(page, pageCount int, opts ConvertOptions) string {
	if pageCount == 1 && !opts.PageNumbers {
		return ""
	}

	if opts.PageNumberOffset >= -1 && opts.PageNumberOffset != 0 {
		page += opts.PageNumberOffset
	}

	if opts.PageNumberPadding > 0 {
		return fmt.Sprintf("%0*d", opts.PageNumberPadding, page)
	}

	return strconv.Itoa(page)
}

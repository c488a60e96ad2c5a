package pdftoimage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/cheggaaa/pb/v3"
	"github.com/google/uuid"
)

var (
	// ErrInputDirRequired is returned when the batch input directory is not
	// provided.
	ErrInputDirRequired = errors.New("input directory is required")
	// ErrOutputDirRequired is returned when the batch output directory is not
	// provided.
	ErrOutputDirRequired = errors.New("output directory is required")
	// ErrNoPDFsFound is returned when the input directory holds no PDF files.
	ErrNoPDFsFound = errors.New("no pdf files found")
)

// ConvertedPDF records the images rendered from one source document.
type ConvertedPDF struct {
	// Source is the path of the input document.
	Source string
	// Images are the rendered page files in page order.
	Images []string
}

// ConvertAll renders every PDF in inputDir into its own folder under outputDir,
// using the same rendering options for each document. A document that fails is
// logged and skipped so one broken file does not abort the batch; the returned
// slice holds the documents that converted.
func (converter *Converter) ConvertAll(
	ctx context.Context,
	inputDir string,
	outputDir string,
	opts ConvertOptions,
) ([]ConvertedPDF, error) {
	if inputDir == "" {
		return nil, ErrInputDirRequired
	}

	if outputDir == "" {
		return nil, ErrOutputDirRequired
	}

	pdfPaths, discoveryErr := DiscoverPDFs(inputDir)
	if discoveryErr != nil {
		return nil, fmt.Errorf("failed to discover PDFs: %w", discoveryErr)
	}

	if len(pdfPaths) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoPDFsFound, inputDir)
	}

	// A batch identifier keeps interleaved log lines attributable.
	batchID := uuid.New().String()
	converter.log.Info(
		"Batch %s: found %d PDF(s) in %s",
		batchID,
		len(pdfPaths),
		inputDir,
	)

	batchProgressBar := pb.New(len(pdfPaths)).
		SetTemplateString(`{{ bar . " " "━" "━" " " " "}} {{percent .}} {{rtime .}}`).
		SetWriter(converter.config.ProgressBarOutput).
		Start()
	defer batchProgressBar.Finish()

	converted := make([]ConvertedPDF, 0, len(pdfPaths))

	for _, pdfPath := range pdfPaths {
		batchProgressBar.Increment()

		images, convertErr := converter.convertIntoDirectory(
			ctx,
			pdfPath,
			outputDir,
			opts,
		)
		if convertErr != nil {
			if ctx.Err() != nil {
				return converted, fmt.Errorf(
					"batch %s canceled: %w",
					batchID,
					ctx.Err(),
				)
			}

			converter.log.Error(
				"Batch %s: failed to convert %s: %v",
				batchID,
				filepath.Base(pdfPath),
				convertErr,
			)

			// Continue to the next file even if one fails.
			continue
		}

		converter.log.Success(
			"Batch %s: converted %s into %d image(s)",
			batchID,
			filepath.Base(pdfPath),
			len(images),
		)

		converted = append(converted, ConvertedPDF{
			Source: pdfPath,
			Images: images,
		})
	}

	return converted, nil
}

// convertIntoDirectory renders one document into its own folder under the
// batch output directory.
func (converter *Converter) convertIntoDirectory(
	ctx context.Context,
	pdfPath string,
	outputDir string,
	opts ConvertOptions,
) ([]string, error) {
	outputPrefix, setupErr := setupOutputDirectory(outputDir, pdfPath)
	if setupErr != nil {
		return nil, fmt.Errorf("could not set up output directory: %w", setupErr)
	}

	return converter.Convert(ctx, pdfPath, outputPrefix, opts)
}

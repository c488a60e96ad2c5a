// Package pdftoimage converts PDF documents to page images with Poppler's
// command-line tools.
package pdftoimage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// defaultDirMode is the default permissions for created directories.
	defaultDirMode = 0o750
)

// DiscoverPDFs finds all PDF files in a given directory.
// It performs a case-insensitive search and does not recurse into subdirectories.
func DiscoverPDFs(dirPath string) ([]string, error) {
	dirEntries, readErr := os.ReadDir(dirPath)
	if readErr != nil {
		return nil, fmt.Errorf(
			"could not read directory %s: %w",
			dirPath,
			readErr,
		)
	}

	var pdfPaths []string

	for _, entry := range dirEntries {
		// Only plain files with a .pdf extension count.
		if entry.IsDir() ||
			!strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}

		pdfPaths = append(pdfPaths, filepath.Join(dirPath, entry.Name()))
	}

	return pdfPaths, nil
}

// setupOutputDirectory creates a per-document output folder and returns the
// output path prefix inside it. For a document named 'mydoc.pdf', the folder
// is '<baseOutputPath>/mydoc/' and the prefix 'mydoc{page}' within it.
func setupOutputDirectory(baseOutputPath, pdfPath string) (string, error) {
	// Extract the PDF filename without the extension.
	stem := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	outputDir := filepath.Join(baseOutputPath, stem)

	// Create all necessary parent directories.
	mkdirErr := os.MkdirAll(outputDir, defaultDirMode)
	if mkdirErr != nil {
		return "", fmt.Errorf(
			"failed to create output directory %s: %w",
			outputDir,
			mkdirErr,
		)
	}

	return filepath.Join(outputDir, stem+PageToken), nil
}

package pdftoimage

import (
	"path/filepath"
	"strings"
)

// PageToken is the placeholder in an output path prefix that marks where each
// page's label is inserted. A prefix without it gets the token appended to its
// filename stem.
const PageToken = "{page}"

// quotePath wraps a path in exactly one pair of double quotes. Existing edge
// quotes are stripped first, so quoting an already-quoted path never stacks a
// second layer.
func quotePath(path string) string {
	return `"` + stripQuotes(path) + `"`
}

// stripQuotes removes any double quotes from both edges of a path.
func stripQuotes(path string) string {
	return strings.Trim(path, `"`)
}

// stripOutputExtension discards a file extension from an output path prefix
// and guarantees the stem carries the page token. An extension containing the
// token is kept: it is part of the stem, not a real extension.
func stripOutputExtension(prefix string) string {
	dir, file := filepath.Split(prefix)

	extension := filepath.Ext(file)
	stem := strings.TrimSuffix(file, extension)

	if strings.Contains(extension, PageToken) {
		stem += extension
	}

	if !strings.Contains(stem, PageToken) {
		stem += PageToken
	}

	return filepath.Join(dir, stem)
}

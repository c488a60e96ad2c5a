package pdftoimage

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// pageCountField is the pdfinfo report field holding the page count.
const pageCountField = "Pages"

var (
	// ErrPageCountUnavailable is returned when the pdfinfo report carries no
	// parseable page count.
	ErrPageCountUnavailable = errors.New("unable to retrieve page count")
	// ErrZeroOrNegativePages is returned when a document reports an invalid
	// page count.
	ErrZeroOrNegativePages = errors.New(
		"pdf has zero or a negative number of pages",
	)
)

// InfoOptions holds the per-call settings for Info.
type InfoOptions struct {
	// UserPassword and OwnerPassword unlock protected documents.
	UserPassword  string
	OwnerPassword string
	// Timeout bounds the pdfinfo invocation. Zero means no limit beyond the
	// caller's context.
	Timeout time.Duration
	// RawDates reports date fields in their undecoded PDF form.
	RawDates bool
}

// PDFInfo is the structured result of reading a document's properties.
type PDFInfo struct {
	// Fields holds every reported property in raw text form, keyed by field
	// name.
	Fields map[string]string
	// Pages is the parsed page count.
	Pages int
}

// Info reads the properties of a PDF document by running pdfinfo and parsing
// its report. The page count is extracted and validated; every other field is
// passed through untouched in Fields.
func (converter *Converter) Info(
	ctx context.Context,
	sourcePath string,
	opts InfoOptions,
) (*PDFInfo, error) {
	sourcePath = stripQuotes(sourcePath)
	if sourcePath == "" {
		return nil, ErrSourcePathRequired
	}

	toolPath := commandPath(binPDFInfo, converter.config.BinDir)
	args := buildInfoArgs(opts, sourcePath)

	output, runErr := converter.runTool(ctx, opts.Timeout, toolPath, args)
	if runErr != nil {
		return nil, runErr
	}

	fields := parseInfoOutput(string(output))

	pages, pagesErr := pageCountFromFields(fields)
	if pagesErr != nil {
		return nil, pagesErr
	}

	return &PDFInfo{Fields: fields, Pages: pages}, nil
}

// parseInfoOutput turns pdfinfo's "Key: Value" report into a map. Lines split
// at the first colon only, so values containing colons stay whole. Blank lines
// are skipped and a repeated key keeps its last value.
func parseInfoOutput(output string) map[string]string {
	fields := make(map[string]string)

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		key, value, _ := strings.Cut(line, ":")
		fields[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return fields
}

// pageCountFromFields extracts and validates the page count from a parsed
// report.
func pageCountFromFields(fields map[string]string) (int, error) {
	raw, found := fields[pageCountField]
	if !found || raw == "" {
		return 0, fmt.Errorf(
			"%w: no %q field in pdfinfo report",
			ErrPageCountUnavailable,
			pageCountField,
		)
	}

	pages, convErr := strconv.Atoi(raw)
	if convErr != nil {
		return 0, fmt.Errorf(
			"%w: cannot parse %q as a page count",
			ErrPageCountUnavailable,
			raw,
		)
	}

	if pages <= 0 {
		return 0, fmt.Errorf(
			"%w: document reports %d",
			ErrZeroOrNegativePages,
			pages,
		)
	}

	return pages, nil
}

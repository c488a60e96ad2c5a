package pdftoimage

// Exported test-only accessors for unexported functions and fields.
// This file is compiled only during tests and does not affect the public API.

// QuotePathForTest exposes quotePath for tests in external package.
func QuotePathForTest(path string) string { return quotePath(path) }

// StripQuotesForTest exposes stripQuotes for tests in external package.
func StripQuotesForTest(path string) string { return stripQuotes(path) }

// StripOutputExtensionForTest exposes stripOutputExtension for tests in external
// package.
func StripOutputExtensionForTest(prefix string) string {
	return stripOutputExtension(prefix)
}

// CommandPathForTest exposes commandPath for tests in external package.
func CommandPathForTest(tool, binDir string) string { return commandPath(tool, binDir) }

// CommandLineForTest exposes commandLine for tests in external package.
func CommandLineForTest(name string, args []string) string {
	return commandLine(name, args)
}

// ParseInfoOutputForTest exposes parseInfoOutput for tests in external package.
func ParseInfoOutputForTest(output string) map[string]string {
	return parseInfoOutput(output)
}

// PageCountFromFieldsForTest exposes pageCountFromFields for tests in external
// package.
func PageCountFromFieldsForTest(fields map[string]string) (int, error) {
	return pageCountFromFields(fields)
}

// PageLabelForTest exposes pageLabel for tests in external package.
func PageLabelForTest(page, pageCount int, opts ConvertOptions) string {
	return pageLabel(page, pageCount, opts)
}

// BuildInfoArgsForTest exposes buildInfoArgs for tests in external package.
func BuildInfoArgsForTest(opts InfoOptions, sourcePath string) []string {
	return buildInfoArgs(opts, sourcePath)
}

// BuildRenderArgsForTest exposes buildRenderArgs for tests in external package.
func BuildRenderArgsForTest(
	opts ConvertOptions,
	formatFlag string,
	page int,
	sourcePath, outputPrefix string,
) []string {
	return buildRenderArgs(opts, formatFlag, page, sourcePath, outputPrefix)
}

// ResolveFormatForTest exposes resolveFormat for tests in external package.
func ResolveFormatForTest(format Format) (flag, extension string) {
	return resolveFormat(format)
}

// ResolveTIFFCompressionForTest exposes resolveTIFFCompression for tests in
// external package.
func ResolveTIFFCompressionForTest(compression TIFFCompression) TIFFCompression {
	return resolveTIFFCompression(compression)
}

// SetupOutputDirectoryForTest exposes setupOutputDirectory for tests in external
// package.
func SetupOutputDirectoryForTest(baseOutputPath, pdfPath string) (string, error) {
	return setupOutputDirectory(baseOutputPath, pdfPath)
}

// ConfigForTest returns a copy of the converter configuration for assertions in tests.
func (converter *Converter) ConfigForTest() Options { return converter.config }

// SetExecutorForTest allows tests to inject a fake executor.
func (converter *Converter) SetExecutorForTest(executor CommandExecutor) {
	converter.executor = executor
}

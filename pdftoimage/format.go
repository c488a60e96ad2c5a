package pdftoimage

// Format selects the image format pdftoppm produces.
type Format string

// Formats with a dedicated pdftoppm switch. Any other value runs the tool
// without a format switch, which produces portable pixmap (PPM) output.
const (
	FormatTIFF     Format = "tiff"
	FormatPNG      Format = "png"
	FormatJPEG     Format = "jpeg"
	FormatJPEGCMYK Format = "jpegcmyk"
)

// TIFFCompression selects the compression scheme for TIFF output.
type TIFFCompression string

// Compression schemes pdftoppm accepts for its -tiffcompression switch.
const (
	// CompressionNone writes uncompressed TIFF data.
	CompressionNone TIFFCompression = "none"
	// CompressionPackbits is lossless and widely compatible.
	CompressionPackbits TIFFCompression = "packbits"
	// CompressionJPEG is lossy and produces the smallest files.
	CompressionJPEG TIFFCompression = "jpeg"
	// CompressionLZW is the standard lossless TIFF scheme.
	CompressionLZW TIFFCompression = "lzw"
	// CompressionDeflate is lossless zip-style compression.
	CompressionDeflate TIFFCompression = "deflate"
)

// formatExtensions maps each recognized format to the file extension pdftoppm
// gives its output files.
var formatExtensions = map[Format]string{
	FormatTIFF:     "tif",
	FormatPNG:      "png",
	FormatJPEG:     "jpg",
	FormatJPEGCMYK: "jpg",
}

// rawExtension is the extension pdftoppm uses when no format switch is given.
const rawExtension = "ppm"

// tiffCompressionSchemes lists the values the -tiffcompression switch accepts.
var tiffCompressionSchemes = map[TIFFCompression]bool{
	CompressionPackbits: true,
	CompressionJPEG:     true,
	CompressionLZW:      true,
	CompressionDeflate:  true,
}

// resolveFormat returns the pdftoppm switch and output file extension for a
// format. Unrecognized formats get no switch and fall back to raw PPM output.
func resolveFormat(format Format) (flag, extension string) {
	extension, recognized := formatExtensions[format]
	if !recognized {
		return "", rawExtension
	}

	return "-" + string(format), extension
}

// resolveTIFFCompression validates a compression scheme, falling back to
// CompressionNone for unset or unrecognized values.
func resolveTIFFCompression(compression TIFFCompression) TIFFCompression {
	if tiffCompressionSchemes[compression] {
		return compression
	}

	return CompressionNone
}

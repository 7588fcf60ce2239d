// Package format provides input format detection for drawing files.
package format

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a supported drawing input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF drawing.
	PDF
	// Image indicates a raster scan (PNG, JPEG, or TIFF) destined for OCR.
	Image
	// Snapshot indicates a serialized in-memory document.
	Snapshot
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	case Image:
		return "Image"
	case Snapshot:
		return "Snapshot"
	default:
		return "Unknown"
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return PDF
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff":
		return Image
	case ".json":
		return Snapshot
	default:
		return Unknown
	}
}

// DetectFromMagic checks file magic bytes to determine format.
// This provides more reliable detection than extension-based detection.
// Returns Unknown if the format cannot be determined from magic bytes alone.
func DetectFromMagic(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}

	// PDF magic: %PDF
	if bytes.HasPrefix(data, []byte("%PDF")) {
		return PDF
	}

	// PNG magic: \x89PNG
	if bytes.HasPrefix(data, []byte{0x89, 'P', 'N', 'G'}) {
		return Image
	}
	// JPEG magic: \xFF\xD8\xFF
	if bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}) {
		return Image
	}
	// TIFF magic: II*\x00 (little-endian) or MM\x00* (big-endian)
	if bytes.HasPrefix(data, []byte{'I', 'I', 0x2A, 0x00}) || bytes.HasPrefix(data, []byte{'M', 'M', 0x00, 0x2A}) {
		return Image
	}

	// A serialized document is a JSON object starting with its page list.
	if detectSnapshotMagic(data) {
		return Snapshot
	}

	return Unknown
}

// detectSnapshotMagic checks if the data looks like a serialized document.
func detectSnapshotMagic(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return false
	}
	head := trimmed
	if len(head) > 512 {
		head = head[:512]
	}
	return bytes.Contains(head, []byte(`"pages"`))
}

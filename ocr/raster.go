package ocr

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
)

// MinRasterWidth is the width below which scans are upscaled before
// recognition. Tesseract accuracy drops sharply on low-resolution crops of
// dimension text.
const MinRasterWidth = 1200

// PrepareImage decodes a page raster (PNG, JPEG, or TIFF), upscales it to at
// least MinRasterWidth preserving aspect ratio, and re-encodes it as PNG
// ready for recognition. Images already wide enough pass through re-encoded
// but unscaled.
func PrepareImage(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding raster: %w", err)
	}

	bounds := src.Bounds()
	if bounds.Dx() < MinRasterWidth && bounds.Dx() > 0 {
		scale := float64(MinRasterWidth) / float64(bounds.Dx())
		dst := image.NewRGBA(image.Rect(0, 0, MinRasterWidth, int(float64(bounds.Dy())*scale)))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		return nil, fmt.Errorf("encoding raster: %w", err)
	}
	return buf.Bytes(), nil
}

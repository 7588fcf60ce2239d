//go:build !ocr

// Package ocr provides the image-based extraction fallback for scanned
// drawings whose text layer is missing or unusable.
//
// This is the stub implementation used when the "ocr" build tag is not set.
// All functions return ErrNotEnabled.
//
// To enable OCR, rebuild with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"errors"

	"github.com/nayaruvi/balloonkit/model"
)

// ErrNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client is a stub OCR client that returns errors for all operations.
type Client struct{}

// New returns an error indicating OCR support is not enabled.
// To enable OCR, rebuild with: go build -tags ocr
func New() (*Client, error) {
	return nil, ErrNotEnabled
}

// Close is a no-op for the stub client.
// It is safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// RecognizeImage returns ErrNotEnabled.
func (c *Client) RecognizeImage([]byte) (string, error) {
	return "", ErrNotEnabled
}

// RecognizeSpans returns ErrNotEnabled.
func (c *Client) RecognizeSpans([]byte, int) ([]model.TextSpan, error) {
	return nil, ErrNotEnabled
}

// SetLanguage returns ErrNotEnabled.
func (c *Client) SetLanguage(string) error {
	return ErrNotEnabled
}

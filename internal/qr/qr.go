package qr

import (
	"errors"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	minSize     = 64
	maxSize     = 1024
	defaultSize = 256

	maxTextBytes = 2048
)

var ErrTextRequired = errors.New("text is required")
var ErrTextTooLong = fmt.Errorf("text must not exceed %d bytes", maxTextBytes)

// Generate encodes text into a PNG QR code with medium error correction.
// Size is clamped to [64, 1024]; zero picks the default.
func Generate(text string, size int) ([]byte, error) {
	if text == "" {
		return nil, ErrTextRequired
	}
	if len(text) > maxTextBytes {
		return nil, ErrTextTooLong
	}

	if size <= 0 {
		size = defaultSize
	}
	if size < minSize {
		size = minSize
	}
	if size > maxSize {
		size = maxSize
	}

	data, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr: %w", err)
	}
	return data, nil
}

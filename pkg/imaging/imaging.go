// Package imaging turns uploaded photos into inline data URLs.
package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

var (
	// ErrUnsupportedFormat is returned when the sniffed bytes are not an accepted image type.
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrTooLarge is returned when the upload exceeds the byte limit.
	ErrTooLarge = errors.New("image too large")
	// ErrEmpty is returned for a zero-byte upload.
	ErrEmpty = errors.New("empty image")
)

// AllowedMIME lists the accepted input MIME types.
var AllowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
	"image/bmp":  true,
}

// Result is an accepted upload.
type Result struct {
	DataURL string
	MIME    string
	Width   int
	Height  int
	Bytes   int
}

// ToDataURL reads at most maxBytes from r, sniffs the MIME type from the
// bytes (client headers are not trusted), checks that the image header
// decodes and encodes the original bytes unchanged as a base64 data URL.
func ToDataURL(r io.Reader, maxBytes int64) (*Result, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading image data: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrTooLarge, maxBytes)
	}

	detected := http.DetectContentType(data)
	if !AllowedMIME[detected] {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, detected)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s header: %w", ErrUnsupportedFormat, detected, err)
	}

	return &Result{
		DataURL: "data:" + detected + ";base64," + base64.StdEncoding.EncodeToString(data),
		MIME:    detected,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Bytes:   len(data),
	}, nil
}

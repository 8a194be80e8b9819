package hub

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"strings"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	// MaxImageSize is the largest upload IngestImage accepts.
	MaxImageSize = 5 << 20 // 5MB
	jpegQuality  = 80
)

// ImageOptions tunes IngestImage.
type ImageOptions struct {
	// MaxWidth downscales wider raster images; 0 keeps the original size.
	MaxWidth int
}

// IngestImage reads an uploaded image and returns it as a self-contained
// data URI usable directly as an <img> source. Content that does not sniff as
// an image returns ErrNotImage; content over MaxImageSize returns
// ErrImageTooLarge.
func IngestImage(src io.Reader, opts ImageOptions) (string, error) {
	data, err := io.ReadAll(io.LimitReader(src, MaxImageSize+1))
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if len(data) > MaxImageSize {
		return "", ErrImageTooLarge
	}
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", ErrNotImage
	}
	if opts.MaxWidth > 0 {
		if resized, ok := downscale(data, opts.MaxWidth); ok {
			data, mime = resized, "image/jpeg"
		}
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// downscale re-encodes data as JPEG no wider than maxWidth. It reports false
// when the image is already narrow enough or cannot be decoded, in which case
// the original bytes are kept.
func downscale(data []byte, maxWidth int) ([]byte, bool) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil || format == "gif" {
		return nil, false
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxWidth {
		return nil, false
	}
	newH := h * maxWidth / w
	if newH < 1 {
		newH = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, false
	}
	return buf.Bytes(), true
}

package hub

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, h/2, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func decodeDataURI(t *testing.T, uri string) (string, []byte) {
	t.Helper()
	mime, payload, ok := strings.Cut(strings.TrimPrefix(uri, "data:"), ";base64,")
	if !ok || !strings.HasPrefix(uri, "data:") {
		t.Fatalf("not a base64 data URI: %.40q", uri)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	return mime, data
}

func TestIngestImageKeepsSmallImage(t *testing.T) {
	src := pngBytes(t, 40, 20)
	uri, err := IngestImage(bytes.NewReader(src), ImageOptions{MaxWidth: 100})
	if err != nil {
		t.Fatalf("IngestImage: %v", err)
	}
	mime, data := decodeDataURI(t, uri)
	if mime != "image/png" {
		t.Errorf("mime = %q, want image/png", mime)
	}
	if !bytes.Equal(data, src) {
		t.Error("small image should be embedded unchanged")
	}
}

func TestIngestImageDownscales(t *testing.T) {
	uri, err := IngestImage(bytes.NewReader(pngBytes(t, 400, 200)), ImageOptions{MaxWidth: 100})
	if err != nil {
		t.Fatalf("IngestImage: %v", err)
	}
	mime, data := decodeDataURI(t, uri)
	if mime != "image/jpeg" {
		t.Fatalf("mime = %q, want image/jpeg", mime)
	}
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode jpeg: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 50 {
		t.Errorf("size = %dx%d, want 100x50", b.Dx(), b.Dy())
	}
}

func TestIngestImageNoMaxWidth(t *testing.T) {
	src := pngBytes(t, 400, 200)
	uri, err := IngestImage(bytes.NewReader(src), ImageOptions{})
	if err != nil {
		t.Fatalf("IngestImage: %v", err)
	}
	if _, data := decodeDataURI(t, uri); !bytes.Equal(data, src) {
		t.Error("image should be kept when MaxWidth is 0")
	}
}

func TestIngestImageRejects(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"text", []byte("just some notes, not a picture"), ErrNotImage},
		{"pdf", []byte("%PDF-1.7\n..."), ErrNotImage},
		{"too large", append(pngBytes(t, 2, 2), make([]byte, MaxImageSize)...), ErrImageTooLarge},
	}
	for _, tt := range tests {
		_, err := IngestImage(bytes.NewReader(tt.data), ImageOptions{})
		if err != tt.want {
			t.Errorf("%s: err = %v, want %v", tt.name, err, tt.want)
		}
	}
}

package servicetest

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	mediaService "pirex.GO/service/media"
)

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	return img
}

func TestResize_DownscalesToWidth(t *testing.T) {
	out := mediaService.Resize(testImage(100, 50), 40, 0)
	b := out.Bounds()
	if b.Dx() != 40 || b.Dy() != 20 {
		t.Errorf("resized to %dx%d, want 40x20", b.Dx(), b.Dy())
	}
}

func TestResize_ZeroDimensionsKeepOriginal(t *testing.T) {
	src := testImage(10, 10)
	out := mediaService.Resize(src, 0, 0)
	if out != src {
		t.Error("zero dimensions should return the source image")
	}
}

func TestEncode_JPEGDefault(t *testing.T) {
	body, contentType, err := mediaService.Encode(testImage(10, 10), mediaService.Options{})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if contentType != "image/jpeg" {
		t.Errorf("content type = %q", contentType)
	}
	// JPEG SOI marker
	if !bytes.HasPrefix(body, []byte{0xFF, 0xD8}) {
		t.Error("output is not a JPEG")
	}
}

func TestEncode_WebP(t *testing.T) {
	body, contentType, err := mediaService.Encode(testImage(10, 10), mediaService.Options{Format: "webp", Quality: 60})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if contentType != "image/webp" {
		t.Errorf("content type = %q", contentType)
	}
	if !bytes.HasPrefix(body, []byte("RIFF")) {
		t.Error("output is not a WebP container")
	}
}

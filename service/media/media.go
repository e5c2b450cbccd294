package media

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"net/http"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	catalogService "pirex.GO/service/catalog"
)

// Thumbnailer fetches catalog images from public storage and serves resized
// variants. A per-image failure is the caller's cue to render the category
// glyph instead; nothing here blocks the product list.
type Thumbnailer struct {
	Client *http.Client
}

func NewThumbnailer() *Thumbnailer {
	return &Thumbnailer{
		Client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Options controls the output variant. Zero width/height keeps that
// dimension proportional; Format is "webp" or "" (JPEG).
type Options struct {
	Width   int
	Height  int
	Format  string
	Quality int
}

// Render fetches the image for imageID and returns encoded bytes plus the
// content type.
func (t *Thumbnailer) Render(imageID string, opts Options) ([]byte, string, error) {
	src := catalogService.ImageURL(imageID)
	if src == "" {
		return nil, "", fmt.Errorf("no image for %q", imageID)
	}

	resp, err := t.Client.Get(src)
	if err != nil {
		return nil, "", fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("fetch image: status %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}

	out := Resize(img, opts.Width, opts.Height)
	return Encode(out, opts)
}

// Resize scales an image down with Lanczos resampling. Zero for both
// dimensions returns the image unchanged.
func Resize(img image.Image, width, height int) image.Image {
	if width <= 0 && height <= 0 {
		return img
	}
	return imaging.Resize(img, width, height, imaging.Lanczos)
}

// Encode serializes an image as WebP or JPEG per Options.
func Encode(img image.Image, opts Options) ([]byte, string, error) {
	quality := opts.Quality
	if quality <= 0 || quality > 100 {
		quality = 85
	}

	var buf bytes.Buffer
	if opts.Format == "webp" {
		if err := webp.Encode(&buf, img, &webp.Options{Quality: float32(quality)}); err != nil {
			return nil, "", fmt.Errorf("encode webp: %w", err)
		}
		return buf.Bytes(), "image/webp", nil
	}
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, "", fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), "image/jpeg", nil
}

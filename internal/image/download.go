package imagepkg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/youruser/imagegen/internal/util"
)

var ErrTooManyPixels = errors.New("photo exceeds pixel limit")

// DecodePhoto decodes any registered raster format and applies the EXIF
// orientation tag. The header is checked first so photos larger than
// maxPixels are refused before any pixel buffer is allocated.
func DecodePhoto(r io.Reader, maxPixels int64) (image.Image, error) {
	var head bytes.Buffer
	cfg, _, err := image.DecodeConfig(io.TeeReader(r, &head))
	if err != nil {
		return nil, fmt.Errorf("decode photo: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("decode photo: empty image %dx%d", cfg.Width, cfg.Height)
	}
	if n := int64(cfg.Width) * int64(cfg.Height); n > maxPixels {
		return nil, fmt.Errorf("%w: %dx%d > %d", ErrTooManyPixels, cfg.Width, cfg.Height, maxPixels)
	}

	img, err := imaging.Decode(io.MultiReader(&head, r), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode photo: %w", err)
	}
	return img, nil
}

// DownloadPhoto fetches url with client and decodes the body.
func DownloadPhoto(ctx context.Context, client *http.Client, url string, maxPixels int64) (image.Image, error) {
	body, err := util.GetBytes(ctx, client, url)
	if err != nil {
		return nil, err
	}
	return DecodePhoto(bytes.NewReader(body), maxPixels)
}

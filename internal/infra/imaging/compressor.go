// Package imaging implements upload image compression: decode, downscale to a
// bounded dimension, re-encode as JPEG.
package imaging

import (
	"bytes"
	"context"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"inkspot/config"
	"inkspot/internal/domain/service"
)

const (
	defaultMaxDimension = 1024
	defaultQuality      = 80
)

type compressor struct {
	maxDimension int
	quality      int
}

// NewCompressor creates an image compressor from configuration.
func NewCompressor(cfg *config.Config) service.ImageCompressor {
	c := &compressor{maxDimension: defaultMaxDimension, quality: defaultQuality}
	if cfg.Imaging != nil {
		if cfg.Imaging.MaxDimension > 0 {
			c.maxDimension = cfg.Imaging.MaxDimension
		}
		if cfg.Imaging.Quality > 0 {
			c.quality = cfg.Imaging.Quality
		}
	}

	return c
}

// Compress decodes the image, scales it so neither side exceeds the
// configured bound (keeping aspect ratio) and re-encodes it as JPEG.
// Images already within bounds are only re-encoded.
func (c *compressor) Compress(ctx context.Context, data []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "decode image")
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width > c.maxDimension || height > c.maxDimension {
		width, height = fitWithin(width, height, c.maxDimension)
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: c.quality}); err != nil {
		return nil, errors.Wrap(err, "encode jpeg")
	}

	return buf.Bytes(), nil
}

// fitWithin scales the dimensions down so the longer side equals maxDim.
func fitWithin(width, height, maxDim int) (int, int) {
	if width >= height {
		scaled := height * maxDim / width
		if scaled < 1 {
			scaled = 1
		}

		return maxDim, scaled
	}
	scaled := width * maxDim / height
	if scaled < 1 {
		scaled = 1
	}

	return scaled, maxDim
}

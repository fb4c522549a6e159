package imaging

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"inkspot/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func TestCompressor_DownscalesOversizedImage(t *testing.T) {
	c := NewCompressor(&config.Config{Imaging: &config.ImagingConfig{MaxDimension: 100, Quality: 80}})

	out, err := c.Compress(context.Background(), pngBytes(t, 400, 200))
	require.NoError(t, err)

	decoded, format, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 100, decoded.Bounds().Dx())
	assert.Equal(t, 50, decoded.Bounds().Dy())
}

func TestCompressor_KeepsSmallImageDimensions(t *testing.T) {
	c := NewCompressor(&config.Config{Imaging: &config.ImagingConfig{MaxDimension: 1024, Quality: 80}})

	out, err := c.Compress(context.Background(), pngBytes(t, 60, 40))
	require.NoError(t, err)

	decoded, _, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 60, decoded.Bounds().Dx())
	assert.Equal(t, 40, decoded.Bounds().Dy())
}

func TestCompressor_RejectsGarbage(t *testing.T) {
	c := NewCompressor(&config.Config{})

	_, err := c.Compress(context.Background(), []byte("not an image"))
	assert.Error(t, err)
}

func TestFitWithin(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		maxDim        int
		wantW, wantH  int
	}{
		{"landscape", 2048, 1024, 1024, 1024, 512},
		{"portrait", 1024, 2048, 1024, 512, 1024},
		{"square", 4096, 4096, 1024, 1024, 1024},
		{"extreme ratio keeps at least one pixel", 10000, 3, 100, 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotW, gotH := fitWithin(tt.width, tt.height, tt.maxDim)
			assert.Equal(t, tt.wantW, gotW)
			assert.Equal(t, tt.wantH, gotH)
		})
	}
}

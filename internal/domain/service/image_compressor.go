package service

import "context"

// ImageCompressor defines the interface for client-upload image processing.
// Uploads are downscaled and re-encoded before they are stored so that a
// single oversized photo cannot dominate the store.
type ImageCompressor interface {
	// Compress decodes the image, scales it down to the configured bound and
	// re-encodes it as JPEG.
	Compress(ctx context.Context, data []byte) ([]byte, error)
}

package upload

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"electromed-tracker/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/image/draw"
)

const (
	// maxWidth is the widest an equipment photo needs to be on the dashboard.
	maxWidth = 1200
	// compressThreshold skips compression for images already small enough.
	compressThreshold = 100 * 1024

	jpegQuality = 85
)

// CompressImage re-encodes the image as JPEG, downscaled to at most maxWidth
// pixels wide. Aspect ratio is preserved.
func CompressImage(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width > maxWidth {
		scaled := maxWidth
		height = height * scaled / width
		width = scaled

		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// PrepareForUpload compresses when worthwhile. Small images pass through
// untouched, and a compression failure falls back silently to the original
// bytes rather than blocking the upload.
func PrepareForUpload(data []byte) []byte {
	if len(data) <= compressThreshold {
		return data
	}

	compressed, err := CompressImage(data)
	if err != nil {
		logger.Warn("Image compression failed, uploading original",
			zap.Int("size_bytes", len(data)),
			zap.Error(err),
		)
		return data
	}

	logger.Debug("Image compressed",
		zap.Int("original_bytes", len(data)),
		zap.Int("compressed_bytes", len(compressed)),
	)
	return compressed
}

// Package upload forwards equipment photos to a hosted image CDN and hands
// back the permanent URL. Images are downscaled server-side before the
// forward; the CDN itself stays an opaque external service.
package upload

import (
	"context"
	"fmt"

	"electromed-tracker/internal/config"
	appErrors "electromed-tracker/pkg/errors"
)

// Uploader submits image bytes to the configured CDN backend.
type Uploader interface {
	Upload(ctx context.Context, data []byte, filename string) (string, error)
}

// New selects the backend from configuration.
func New(cfg *config.UploadConfig) (Uploader, error) {
	switch cfg.Backend {
	case "cloudinary":
		if cfg.CloudName == "" || cfg.UploadPreset == "" {
			return nil, appErrors.NewAppError(
				"UPLOAD_CONFIG",
				"Cloudinary backend requires CLOUDINARY_CLOUD_NAME and CLOUDINARY_UPLOAD_PRESET",
				nil,
			)
		}
		return NewCloudinaryUploader(cfg), nil
	case "imgbb":
		if cfg.ImgBBKey == "" {
			return nil, appErrors.NewAppError(
				"UPLOAD_CONFIG",
				"ImgBB backend requires IMGBB_API_KEY",
				nil,
			)
		}
		return NewImgBBUploader(cfg), nil
	default:
		return nil, fmt.Errorf("unknown upload backend: %q", cfg.Backend)
	}
}

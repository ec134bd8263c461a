package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"electromed-tracker/internal/config"
	appErrors "electromed-tracker/pkg/errors"
)

// CloudinaryUploader posts images to Cloudinary's unsigned upload endpoint.
type CloudinaryUploader struct {
	cloudName    string
	uploadPreset string
	folder       string
	client       *http.Client
}

func NewCloudinaryUploader(cfg *config.UploadConfig) *CloudinaryUploader {
	return &CloudinaryUploader{
		cloudName:    cfg.CloudName,
		uploadPreset: cfg.UploadPreset,
		folder:       cfg.Folder,
		client:       &http.Client{Timeout: 30 * time.Second},
	}
}

func (u *CloudinaryUploader) Upload(ctx context.Context, data []byte, filename string) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := part.Write(PrepareForUpload(data)); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	writer.WriteField("upload_preset", u.uploadPreset)
	if u.folder != "" {
		writer.WriteField("folder", u.folder)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}

	endpoint := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", u.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.client.Do(req)
	if err != nil {
		return "", appErrors.NewAppError("UPLOAD_FAILED", "Image service unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", appErrors.NewAppError(
			"UPLOAD_FAILED",
			fmt.Sprintf("Image service rejected the upload (status %d)", resp.StatusCode),
			fmt.Errorf("cloudinary: %s", string(payload)),
		)
	}

	var result struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", appErrors.NewAppError("UPLOAD_FAILED", "Unexpected image service response", err)
	}
	if result.SecureURL == "" {
		return "", appErrors.NewAppError("UPLOAD_FAILED", "Image service returned no URL", nil)
	}

	return result.SecureURL, nil
}

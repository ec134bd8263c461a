package upload

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"electromed-tracker/internal/config"
	appErrors "electromed-tracker/pkg/errors"
)

// ImgBBUploader posts base64-encoded images to the ImgBB API.
type ImgBBUploader struct {
	apiKey string
	client *http.Client
}

func NewImgBBUploader(cfg *config.UploadConfig) *ImgBBUploader {
	return &ImgBBUploader{
		apiKey: cfg.ImgBBKey,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (u *ImgBBUploader) Upload(ctx context.Context, data []byte, filename string) (string, error) {
	form := url.Values{}
	form.Set("image", base64.StdEncoding.EncodeToString(PrepareForUpload(data)))
	form.Set("name", filename)

	endpoint := "https://api.imgbb.com/1/upload?key=" + url.QueryEscape(u.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

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
			fmt.Errorf("imgbb: %s", string(payload)),
		)
	}

	var result struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", appErrors.NewAppError("UPLOAD_FAILED", "Unexpected image service response", err)
	}
	if !result.Success || result.Data.URL == "" {
		return "", appErrors.NewAppError("UPLOAD_FAILED", "Image service returned no URL", nil)
	}

	return result.Data.URL, nil
}

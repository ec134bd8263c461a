package handler

import (
	"encoding/base64"
	"io"
	"net/http"
	"strings"

	"electromed-tracker/internal/infrastructure/upload"
	"electromed-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	uploader upload.Uploader
	maxSize  int64
}

func NewUploadHandler(uploader upload.Uploader, maxSize int64) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
		maxSize:  maxSize,
	}
}

func (h *UploadHandler) RegisterRoutes(router *gin.RouterGroup) {
	uploads := router.Group("/uploads")
	{
		uploads.POST("/images", h.UploadImage)
	}
}

type base64UploadRequest struct {
	Image    string `json:"image" binding:"required"`
	Filename string `json:"filename"`
}

type uploadResponse struct {
	URL string `json:"url"`
}

// UploadImage accepts either a multipart form with a "file" part or a JSON
// body with a base64 "image" field, forwards the bytes to the configured CDN
// and returns the permanent URL.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	data, filename, err := h.readImage(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if int64(len(data)) > h.maxSize {
		utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "Image too large")
		return
	}

	url, err := h.uploader.Upload(c.Request.Context(), data, filename)
	if err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Image uploaded successfully", uploadResponse{URL: url})
}

func (h *UploadHandler) readImage(c *gin.Context) ([]byte, string, error) {
	contentType := c.ContentType()

	if strings.HasPrefix(contentType, "multipart/form-data") {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return nil, "", errMissingFile
		}
		file, err := fileHeader.Open()
		if err != nil {
			return nil, "", errMissingFile
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, h.maxSize+1))
		if err != nil {
			return nil, "", errUnreadableFile
		}
		return data, fileHeader.Filename, nil
	}

	var req base64UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, "", errMissingFile
	}

	// Tolerate data-URL prefixes from browser FileReader output.
	payload := req.Image
	if idx := strings.Index(payload, ";base64,"); idx >= 0 {
		payload = payload[idx+len(";base64,"):]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", errInvalidBase64
	}

	filename := req.Filename
	if filename == "" {
		filename = "equipment.jpg"
	}
	return data, filename, nil
}

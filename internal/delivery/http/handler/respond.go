package handler

import (
	"errors"
	"net/http"

	"electromed-tracker/internal/domain/catalog"
	"electromed-tracker/internal/domain/shipment"
	appErrors "electromed-tracker/pkg/errors"
	"electromed-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
)

// handleError maps domain and application errors onto HTTP statuses. Unknown
// errors become a 500 with a generic message so internals never leak.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, shipment.ErrShipmentNotFound),
		errors.Is(err, catalog.ErrServiceNotFound),
		errors.Is(err, catalog.ErrReferenceNotFound),
		errors.Is(err, catalog.ErrProviderNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	var appErr *appErrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "VALIDATION_ERROR", "INVALID_STATUS":
			utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)
		case "SERVICE_EXISTS", "REFERENCE_EXISTS", "PROVIDER_EXISTS":
			utils.ErrorResponse(c, http.StatusConflict, appErr.Message)
		case "SERVICE_PROTECTED":
			utils.ErrorResponse(c, http.StatusForbidden, appErr.Message)
		case "UPLOAD_FAILED":
			utils.ErrorResponse(c, http.StatusBadGateway, appErr.Message)
		case "UPLOAD_CONFIG":
			utils.ErrorResponse(c, http.StatusInternalServerError, appErr.Message)
		default:
			utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)
		}
		return
	}

	c.Error(err)
	utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
}

package handler

import (
	"net/http"

	"electromed-tracker/internal/usecase/catalog"
	"electromed-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	service *catalog.Service
}

func NewCatalogHandler(service *catalog.Service) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	catalogGroup := router.Group("/catalog")
	{
		catalogGroup.GET("/services", h.ListServices)
		catalogGroup.POST("/services", h.AddService)
		catalogGroup.DELETE("/services/:name", h.RemoveService)

		catalogGroup.GET("/references", h.ListReferences)
		catalogGroup.POST("/references", h.RegisterReference)
		catalogGroup.PUT("/references/:id", h.UpdateReference)
		catalogGroup.DELETE("/references/:id", h.DeleteReference)
		catalogGroup.GET("/references/:ref/apply", h.ApplyReference)

		catalogGroup.GET("/providers", h.ListProviders)
		catalogGroup.POST("/providers", h.RegisterProvider)
		catalogGroup.DELETE("/providers/:id", h.DeleteProvider)
		catalogGroup.POST("/providers/:id/emails", h.AddProviderEmail)
		catalogGroup.DELETE("/providers/:id/emails", h.RemoveProviderEmail)
	}
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	result, err := h.service.ListServices(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CatalogHandler) AddService(c *gin.Context) {
	var req catalog.AddServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.AddService(c.Request.Context(), &req); err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Service added successfully", nil)
}

func (h *CatalogHandler) RemoveService(c *gin.Context) {
	if err := h.service.RemoveService(c.Request.Context(), c.Param("name")); err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Service removed successfully", nil)
}

func (h *CatalogHandler) ListReferences(c *gin.Context) {
	result, err := h.service.ListReferences(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CatalogHandler) RegisterReference(c *gin.Context) {
	var req catalog.RegisterReferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.RegisterReference(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Reference registered successfully", result)
}

func (h *CatalogHandler) UpdateReference(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid reference ID")
		return
	}

	var req catalog.UpdateReferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.UpdateReference(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Reference updated successfully", result)
}

func (h *CatalogHandler) DeleteReference(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid reference ID")
		return
	}

	if err := h.service.DeleteReference(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Reference deleted successfully", nil)
}

// ApplyReference returns the auto-fill payload for the shipment form.
func (h *CatalogHandler) ApplyReference(c *gin.Context) {
	result, err := h.service.FormDefaults(c.Request.Context(), c.Param("ref"))
	if err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CatalogHandler) ListProviders(c *gin.Context) {
	result, err := h.service.ListProviders(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CatalogHandler) RegisterProvider(c *gin.Context) {
	var req catalog.RegisterProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.RegisterProvider(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Provider registered successfully", result)
}

func (h *CatalogHandler) DeleteProvider(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid provider ID")
		return
	}

	if err := h.service.DeleteProvider(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Provider deleted successfully", nil)
}

func (h *CatalogHandler) AddProviderEmail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid provider ID")
		return
	}

	var req catalog.ProviderEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.AddProviderEmail(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Email added successfully", result)
}

func (h *CatalogHandler) RemoveProviderEmail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid provider ID")
		return
	}

	email := c.Query("email")
	if email == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Email query parameter required")
		return
	}

	result, err := h.service.RemoveProviderEmail(c.Request.Context(), id, email)
	if err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Email removed successfully", result)
}

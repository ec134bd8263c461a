package handler

import (
	"net/http"

	"electromed-tracker/internal/usecase/analytics"
	"electromed-tracker/internal/usecase/shipment"
	"electromed-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ShipmentHandler struct {
	service   *shipment.Service
	analytics *analytics.Service
}

func NewShipmentHandler(service *shipment.Service, analyticsService *analytics.Service) *ShipmentHandler {
	return &ShipmentHandler{
		service:   service,
		analytics: analyticsService,
	}
}

func (h *ShipmentHandler) RegisterRoutes(router *gin.RouterGroup) {
	shipments := router.Group("/shipments")
	{
		shipments.GET("", h.ListShipments)
		shipments.POST("", h.CreateShipment)
		shipments.GET("/statistics", h.GetStatistics)
		shipments.GET("/:id", h.GetShipment)
		shipments.PUT("/:id", h.UpdateShipment)
		shipments.DELETE("/:id", h.DeleteShipment)
		shipments.POST("/:id/status", h.ChangeStatus)
		shipments.POST("/:id/receive", h.QuickReceive)
		shipments.GET("/:id/mail-link", h.MailLink)
	}
}

func (h *ShipmentHandler) CreateShipment(c *gin.Context) {
	var req shipment.CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Shipment registered successfully", result)
}

func (h *ShipmentHandler) ListShipments(c *gin.Context) {
	var req shipment.ListShipmentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	result, err := h.service.List(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ShipmentHandler) GetShipment(c *gin.Context) {
	result, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ShipmentHandler) UpdateShipment(c *gin.Context) {
	var req shipment.UpdateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Shipment updated successfully", result)
}

func (h *ShipmentHandler) DeleteShipment(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Shipment deleted successfully", nil)
}

func (h *ShipmentHandler) ChangeStatus(c *gin.Context) {
	var req shipment.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.ChangeStatus(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Status updated successfully", result)
}

func (h *ShipmentHandler) QuickReceive(c *gin.Context) {
	result, err := h.service.QuickReceive(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Shipment received", result)
}

func (h *ShipmentHandler) MailLink(c *gin.Context) {
	delivery := c.Query("delivery")
	needsLoan := c.Query("loan") == "true"

	result, err := h.service.MailLink(c.Request.Context(), c.Param("id"), delivery, needsLoan)
	if err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ShipmentHandler) GetStatistics(c *gin.Context) {
	var req analytics.ReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	result, err := h.analytics.Report(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

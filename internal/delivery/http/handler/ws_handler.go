package handler

import (
	"errors"
	"net/http"

	"electromed-tracker/internal/logger"
	"electromed-tracker/internal/realtime"
	"electromed-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Browser origins are already filtered by the CORS layer; the handshake
	// accepts any origin so the dashboard works behind reverse proxies.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WSHandler struct {
	hub *realtime.Hub
}

func NewWSHandler(hub *realtime.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

func (h *WSHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/ws", h.Subscribe)
}

// Subscribe upgrades the connection and streams collection snapshots.
func (h *WSHandler) Subscribe(c *gin.Context) {
	collection := c.DefaultQuery("collection", realtime.CollectionShipments)
	if !h.hub.Known(collection) {
		utils.ErrorResponse(c, http.StatusBadRequest, "Unknown collection")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("WebSocket upgrade failed",
			zap.String("collection", collection),
			zap.Error(err),
		)
		return
	}

	if err := h.hub.Subscribe(c.Request.Context(), collection, conn); err != nil {
		if !errors.Is(err, realtime.ErrUnknownCollection) {
			logger.Error("WebSocket subscription failed",
				zap.String("collection", collection),
				zap.Error(err),
			)
		}
		conn.Close()
	}
}

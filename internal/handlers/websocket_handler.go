package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SessionServer runs real-time sessions over an upgraded connection.
// *realtime.Hub satisfies it.
type SessionServer interface {
	ServeWS(w http.ResponseWriter, r *http.Request) error
}

type WebSocketHandler struct {
	sessions SessionServer
	logger   *zap.Logger
}

func NewWebSocketHandler(sessions SessionServer, logger *zap.Logger) *WebSocketHandler {
	return &WebSocketHandler{sessions: sessions, logger: logger}
}

func (h *WebSocketHandler) RegisterWebSocketRoutes(e *echo.Echo) {
	e.GET("/ws", h.Connect)
}

// Connect upgrades the request. On a failed upgrade the response has already
// been written by the upgrader.
func (h *WebSocketHandler) Connect(c echo.Context) error {
	if err := h.sessions.ServeWS(c.Response(), c.Request()); err != nil {
		h.logger.Debug("websocket upgrade failed", zap.String("remote", c.RealIP()), zap.Error(err))
	}
	return nil
}

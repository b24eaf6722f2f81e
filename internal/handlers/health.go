package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthHandler serves liveness and service info. It does not touch the
// database.
type HealthHandler struct {
	env  string
	port string
	now  func() time.Time
}

func NewHealthHandler(env, port string) *HealthHandler {
	return &HealthHandler{env: env, port: port, now: time.Now}
}

func (h *HealthHandler) RegisterHealthRoutes(e *echo.Echo) {
	e.GET("/health", h.HealthCheck)
	e.GET("/", h.Info)
}

func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":      "OK",
		"timestamp":   h.now().UTC().Format(time.RFC3339Nano),
		"environment": h.env,
		"port":        h.port,
	})
}

func (h *HealthHandler) Info(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"name":    "Insyd Notification System",
		"version": "1.0.0",
		"status":  "running",
		"endpoints": echo.Map{
			"health":        "/health",
			"users":         "/api/users",
			"posts":         "/api/posts",
			"notifications": "/api/notifications",
			"websocket":     "/ws",
		},
	})
}

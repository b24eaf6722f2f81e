package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// NotificationHandler handles notification-related HTTP requests
type NotificationHandler struct {
	dispatcher NotificationDispatcher
	logger     *zap.Logger
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(dispatcher NotificationDispatcher, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{dispatcher: dispatcher, logger: logger}
}

// RegisterNotificationRoutes registers notification routes. :id is a user id
// on the read routes and a notification id on /read.
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications/:id", h.GetNotifications)
	g.GET("/notifications/:id/unread-count", h.GetUnreadCount)
	g.PUT("/notifications/:id/read", h.MarkAsRead)
}

// GetNotifications returns the latest notifications of a user
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	userID := c.Param("id")
	notifications, err := h.dispatcher.GetNotifications(c.Request().Context(), userID)
	if err != nil {
		h.logger.Error("fetch notifications", zap.String("user_id", userID), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch notifications")
	}
	return c.JSON(http.StatusOK, notifications)
}

// MarkAsRead marks a notification as read. Unknown ids succeed.
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	notificationID := c.Param("id")
	if err := h.dispatcher.MarkAsRead(c.Request().Context(), notificationID); err != nil {
		h.logger.Error("mark notification read", zap.String("notification_id", notificationID), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to mark notification as read")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Notification marked as read"})
}

// GetUnreadCount returns the number of unread notifications of a user
func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	userID := c.Param("id")
	count, err := h.dispatcher.GetUnreadCount(c.Request().Context(), userID)
	if err != nil {
		h.logger.Error("fetch unread count", zap.String("user_id", userID), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch unread count")
	}
	return c.JSON(http.StatusOK, echo.Map{"count": count})
}

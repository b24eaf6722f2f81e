package handlers

import (
	"context"

	"github.com/anonto42/insyd-notify/backend/internal/models"
	"github.com/labstack/echo/v4"
)

// NotificationDispatcher is the notification side of the API.
// *services.NotificationService satisfies it.
type NotificationDispatcher interface {
	CreateFollowNotification(ctx context.Context, followerID, followingID string) error
	CreatePostNotification(ctx context.Context, postID, authorID, title string) error
	GetNotifications(ctx context.Context, userID string) ([]models.Notification, error)
	MarkAsRead(ctx context.Context, notificationID string) error
	GetUnreadCount(ctx context.Context, userID string) (int64, error)
}

// bindAndValidate binds the body into req and runs the echo validator
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}

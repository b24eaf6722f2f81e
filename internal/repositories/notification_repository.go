package repositories

import (
	"context"

	"github.com/anonto42/insyd-notify/backend/internal/models"
	"gorm.io/gorm"
)

// NotificationListLimit caps how many notifications a single read returns
const NotificationListLimit = 50

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *models.Notification) error
	GetNotifications(ctx context.Context, userID string) ([]models.Notification, error)
	MarkAsRead(ctx context.Context, notificationID string) error
	GetUnreadCount(ctx context.Context, userID string) (int64, error)
}

type postgresNotificationRepository struct {
	db *gorm.DB
}

func NewPostgresNotificationRepository(db *gorm.DB) NotificationRepository {
	return &postgresNotificationRepository{db: db}
}

func (r *postgresNotificationRepository) CreateNotification(ctx context.Context, notification *models.Notification) error {
	return r.db.WithContext(ctx).
		Omit("Recipient", "RelatedUser", "RelatedPost").
		Create(notification).Error
}

func (r *postgresNotificationRepository) GetNotifications(ctx context.Context, userID string) ([]models.Notification, error) {
	notifications := []models.Notification{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(NotificationListLimit).
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkAsRead is unconditional: an already-read or unknown id is not an error
func (r *postgresNotificationRepository) MarkAsRead(ctx context.Context, notificationID string) error {
	return r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ?", notificationID).
		Update("is_read", true).Error
}

func (r *postgresNotificationRepository) GetUnreadCount(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

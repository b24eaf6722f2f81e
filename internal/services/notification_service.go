package services

import (
	"context"
	"fmt"

	"github.com/anonto42/insyd-notify/backend/internal/models"
	"github.com/anonto42/insyd-notify/backend/internal/realtime"
	"github.com/anonto42/insyd-notify/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotificationService turns follows and new posts into persisted
// notifications and real-time pushes.
//
// Fan-out is sequential and per recipient. It is not transactional: when the
// n-th recipient fails, the earlier recipients stay notified and the error is
// returned as is.
type NotificationService struct {
	users         repositories.UserRepository
	follows       repositories.FollowRepository
	notifications repositories.NotificationRepository
	publisher     realtime.Publisher
	logger        *zap.Logger
	newID         func() string
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(
	userRepo repositories.UserRepository,
	followRepo repositories.FollowRepository,
	notifRepo repositories.NotificationRepository,
	publisher realtime.Publisher,
	logger *zap.Logger,
) *NotificationService {
	return &NotificationService{
		users:         userRepo,
		follows:       followRepo,
		notifications: notifRepo,
		publisher:     publisher,
		logger:        logger,
		newID:         uuid.NewString,
	}
}

// CreateFollowNotification notifies followingID that followerID followed them.
// An unknown follower is a no-op.
func (s *NotificationService) CreateFollowNotification(ctx context.Context, followerID, followingID string) error {
	follower, err := s.users.GetUserByID(ctx, followerID)
	if err != nil {
		return fmt.Errorf("look up follower %s: %w", followerID, err)
	}
	if follower == nil {
		s.logger.Debug("follower not found, skipping notification", zap.String("follower_id", followerID))
		return nil
	}

	notification := &models.Notification{
		ID:            s.newID(),
		UserID:        followingID,
		Type:          models.NotificationFollow,
		Message:       fmt.Sprintf("%s started following you", follower.Username),
		RelatedUserID: &followerID,
	}
	return s.deliver(ctx, notification)
}

// CreatePostNotification notifies every follower of authorID about the new
// post. An unknown author is a no-op.
func (s *NotificationService) CreatePostNotification(ctx context.Context, postID, authorID, title string) error {
	author, err := s.users.GetUserByID(ctx, authorID)
	if err != nil {
		return fmt.Errorf("look up author %s: %w", authorID, err)
	}
	if author == nil {
		s.logger.Debug("author not found, skipping notifications", zap.String("author_id", authorID))
		return nil
	}

	followers, err := s.follows.GetFollowers(ctx, authorID)
	if err != nil {
		return fmt.Errorf("get followers of %s: %w", authorID, err)
	}

	message := fmt.Sprintf("%s published a new post: \"%s\"", author.Username, title)
	for i, followerID := range followers {
		notification := &models.Notification{
			ID:            s.newID(),
			UserID:        followerID,
			Type:          models.NotificationPost,
			Message:       message,
			RelatedUserID: &authorID,
			RelatedPostID: &postID,
		}
		if err := s.deliver(ctx, notification); err != nil {
			s.logger.Error("post fan-out stopped",
				zap.String("post_id", postID),
				zap.Int("delivered", i),
				zap.Int("followers", len(followers)),
				zap.Error(err))
			return err
		}
	}

	s.logger.Info("post fan-out complete", zap.String("post_id", postID), zap.Int("followers", len(followers)))
	return nil
}

// deliver persists the notification and then pushes it to the recipient
func (s *NotificationService) deliver(ctx context.Context, notification *models.Notification) error {
	if err := s.notifications.CreateNotification(ctx, notification); err != nil {
		return fmt.Errorf("create notification for %s: %w", notification.UserID, err)
	}
	s.publisher.Publish(ctx, realtime.UserAddress(notification.UserID), realtime.EventNewNotification, notification)
	return nil
}

func (s *NotificationService) GetNotifications(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.notifications.GetNotifications(ctx, userID)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, notificationID string) error {
	return s.notifications.MarkAsRead(ctx, notificationID)
}

func (s *NotificationService) GetUnreadCount(ctx context.Context, userID string) (int64, error) {
	return s.notifications.GetUnreadCount(ctx, userID)
}

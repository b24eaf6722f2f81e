package models

import "time"

// NotificationType is the closed set of notification kinds
type NotificationType string

const (
	NotificationFollow  NotificationType = "follow"
	NotificationPost    NotificationType = "post"
	NotificationLike    NotificationType = "like"
	NotificationComment NotificationType = "comment"
)

// Notification is a message addressed to a single recipient (UserID).
// IsRead only ever moves from false to true.
type Notification struct {
	ID            string           `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID        string           `json:"user_id" gorm:"type:varchar(36);not null;index:idx_notifications_user_created,priority:1;index:idx_notifications_user_unread,priority:1"`
	Type          NotificationType `json:"type" gorm:"type:varchar(20);not null;check:chk_notifications_type,type IN ('follow','post','like','comment')"`
	Message       string           `json:"message" gorm:"type:text;not null"`
	RelatedUserID *string          `json:"related_user_id" gorm:"type:varchar(36)"`
	RelatedPostID *string          `json:"related_post_id" gorm:"type:varchar(36)"`
	IsRead        bool             `json:"is_read" gorm:"not null;default:false;index:idx_notifications_user_unread,priority:2"`
	CreatedAt     time.Time        `json:"created_at" gorm:"autoCreateTime;index:idx_notifications_user_created,priority:2"`

	Recipient   *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	RelatedUser *User `json:"-" gorm:"foreignKey:RelatedUserID;constraint:OnDelete:SET NULL"`
	RelatedPost *Post `json:"-" gorm:"foreignKey:RelatedPostID;constraint:OnDelete:SET NULL"`
}

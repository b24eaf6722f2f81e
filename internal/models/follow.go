package models

import "time"

// Follow is a directed edge: the follower receives post notifications from
// the followed user. The pair is the identity of the row.
type Follow struct {
	FollowerID  string    `json:"follower_id" gorm:"primaryKey;type:varchar(36)"`
	FollowingID string    `json:"following_id" gorm:"primaryKey;type:varchar(36)"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`

	Follower  *User `json:"-" gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`
	Following *User `json:"-" gorm:"foreignKey:FollowingID;constraint:OnDelete:CASCADE"`
}

// FollowRequest defines the request body for following a user
type FollowRequest struct {
	FollowerID  string `json:"follower_id" validate:"required"`
	FollowingID string `json:"following_id" validate:"required"`
}

package repositories

import (
	"context"
	"fmt"

	"github.com/anonto42/insyd-notify/backend/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DemoUsers and DemoFollows are written by Seed on an empty database
var (
	DemoUsers = []models.User{
		{ID: "1", Username: "architect_alice", Email: "alice@example.com"},
		{ID: "2", Username: "designer_bob", Email: "bob@example.com"},
		{ID: "3", Username: "planner_carol", Email: "carol@example.com"},
		{ID: "4", Username: "engineer_dave", Email: "dave@example.com"},
	}
	DemoFollows = []models.Follow{
		{FollowerID: "1", FollowingID: "2"},
		{FollowerID: "1", FollowingID: "3"},
		{FollowerID: "2", FollowingID: "1"},
	}
)

// Migrate creates the users, posts, follows and notifications tables if they
// do not exist yet. It is safe to run on every boot.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Follow{},
		&models.Notification{},
	)
}

// Seed writes the demo dataset, but only when the users table is empty.
// It reports whether anything was written.
func Seed(ctx context.Context, db *gorm.DB) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range DemoUsers {
			user := DemoUsers[i]
			if err := tx.Create(&user).Error; err != nil {
				return fmt.Errorf("seed user %s: %w", user.ID, err)
			}
		}
		for i := range DemoFollows {
			follow := DemoFollows[i]
			if err := tx.Omit("Follower", "Following").Create(&follow).Error; err != nil {
				return fmt.Errorf("seed follow %s->%s: %w", follow.FollowerID, follow.FollowingID, err)
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Bootstrap runs Migrate and, when seed is true, Seed
func Bootstrap(ctx context.Context, db *gorm.DB, seed bool, logger *zap.Logger) error {
	if err := Migrate(db); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	logger.Info("database tables ready")

	if !seed {
		return nil
	}
	seeded, err := Seed(ctx, db)
	if err != nil {
		return err
	}
	if seeded {
		logger.Info("database seeded",
			zap.Int("users", len(DemoUsers)),
			zap.Int("follows", len(DemoFollows)))
	} else {
		logger.Info("database already seeded")
	}
	return nil
}

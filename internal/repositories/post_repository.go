package repositories

import (
	"context"

	"github.com/anonto42/insyd-notify/backend/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPosts(ctx context.Context) ([]models.PostWithAuthor, error)
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost inserts a post; created_at is assigned on insert
func (r *PostgresPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Omit("Author").Create(post).Error
}

// GetPosts retrieves every post joined with its author's username, newest first
func (r *PostgresPostRepository) GetPosts(ctx context.Context) ([]models.PostWithAuthor, error) {
	posts := []models.PostWithAuthor{}
	err := r.db.WithContext(ctx).
		Table("posts").
		Select("posts.*, users.username").
		Joins("JOIN users ON users.id = posts.user_id").
		Order("posts.created_at DESC").
		Scan(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

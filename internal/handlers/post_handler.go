package handlers

import (
	"net/http"

	"github.com/anonto42/insyd-notify/backend/internal/models"
	"github.com/anonto42/insyd-notify/backend/internal/repositories"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository repositories.PostRepository
	dispatcher     NotificationDispatcher
	logger         *zap.Logger
	newID          func() string
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, dispatcher NotificationDispatcher, logger *zap.Logger) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		dispatcher:     dispatcher,
		logger:         logger,
		newID:          uuid.NewString,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.GET("/posts", h.GetPosts)
	g.POST("/posts", h.CreatePost)
}

// GetPosts returns every post with its author's username, newest first
func (h *PostHandler) GetPosts(c echo.Context) error {
	posts, err := h.postRepository.GetPosts(c.Request().Context())
	if err != nil {
		h.logger.Error("fetch posts", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch posts")
	}
	return c.JSON(http.StatusOK, posts)
}

// CreatePost stores the post and notifies the author's followers.
// A fan-out failure is reported as a failed creation even though the post
// and the notifications before the failure are kept.
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required fields")
	}

	ctx := c.Request().Context()
	post := &models.Post{
		ID:      h.newID(),
		UserID:  req.UserID,
		Title:   req.Title,
		Content: req.Content,
	}

	if err := h.postRepository.CreatePost(ctx, post); err != nil {
		h.logger.Error("create post", zap.String("user_id", req.UserID), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create post")
	}

	if err := h.dispatcher.CreatePostNotification(ctx, post.ID, post.UserID, post.Title); err != nil {
		h.logger.Error("notify followers", zap.String("post_id", post.ID), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create post")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"id":      post.ID,
		"message": "Post created successfully",
	})
}

package handlers

import (
	"net/http"

	"github.com/anonto42/insyd-notify/backend/internal/models"
	"github.com/anonto42/insyd-notify/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// FollowHandler records follow edges and notifies the followed user
type FollowHandler struct {
	followRepository repositories.FollowRepository
	dispatcher       NotificationDispatcher
	logger           *zap.Logger
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followRepo repositories.FollowRepository, dispatcher NotificationDispatcher, logger *zap.Logger) *FollowHandler {
	return &FollowHandler{
		followRepository: followRepo,
		dispatcher:       dispatcher,
		logger:           logger,
	}
}

// RegisterFollowRoutes registers follow routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/notifications/follow", h.Follow)
}

// Follow stores the edge and sends a follow notification. A repeated follow
// stores nothing new but still notifies.
func (h *FollowHandler) Follow(c echo.Context) error {
	var req models.FollowRequest
	if err := bindAndValidate(c, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required fields")
	}

	ctx := c.Request().Context()
	if err := h.followRepository.FollowUser(ctx, req.FollowerID, req.FollowingID); err != nil {
		h.logger.Error("follow user",
			zap.String("follower_id", req.FollowerID),
			zap.String("following_id", req.FollowingID),
			zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create follow notification")
	}

	if err := h.dispatcher.CreateFollowNotification(ctx, req.FollowerID, req.FollowingID); err != nil {
		h.logger.Error("follow notification", zap.String("following_id", req.FollowingID), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create follow notification")
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Follow notification created"})
}

package handlers

import (
	"net/http"

	"github.com/anonto42/insyd-notify/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// UserHandler handles HTTP requests related to users
type UserHandler struct {
	userRepository repositories.UserRepository
	logger         *zap.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, logger *zap.Logger) *UserHandler {
	return &UserHandler{userRepository: userRepo, logger: logger}
}

// RegisterUserRoutes registers user routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/users", h.GetUsers)
	g.GET("/users/:id", h.GetUser)
}

func (h *UserHandler) GetUsers(c echo.Context) error {
	users, err := h.userRepository.GetUsers(c.Request().Context())
	if err != nil {
		h.logger.Error("fetch users", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch users")
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	id := c.Param("id")
	user, err := h.userRepository.GetUserByID(c.Request().Context(), id)
	if err != nil {
		h.logger.Error("fetch user", zap.String("user_id", id), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch user")
	}
	if user == nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	return c.JSON(http.StatusOK, user)
}

package router

import (
	"github.com/anonto42/insyd-notify/backend/internal/handlers"
	"github.com/anonto42/insyd-notify/backend/internal/middleware"
	"github.com/anonto42/insyd-notify/backend/internal/realtime"
	"github.com/anonto42/insyd-notify/backend/internal/repositories"
	"github.com/anonto42/insyd-notify/backend/internal/services"
	"github.com/anonto42/insyd-notify/backend/pkg/config"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Dependencies are the collaborators the routes are built from. Push and
// Verifier are optional and come from Firebase when it is configured.
type Dependencies struct {
	Config   *config.Config
	DB       *gorm.DB
	Hub      *realtime.Hub
	Push     realtime.MessageSender
	Verifier middleware.TokenVerifier
	Logger   *zap.Logger
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, deps Dependencies) {
	logger := deps.Logger

	// Health and info - always accessible
	handlers.NewHealthHandler(deps.Config.Env, deps.Config.Port).RegisterHealthRoutes(e)
	handlers.NewWebSocketHandler(deps.Hub, logger).RegisterWebSocketRoutes(e)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(deps.DB)
	postRepo := repositories.NewPostgresPostRepository(deps.DB)
	followRepo := repositories.NewPostgresFollowRepository(deps.DB)
	notificationRepo := repositories.NewPostgresNotificationRepository(deps.DB)

	// --- Real-time publishers ---
	publishers := realtime.Fanout{deps.Hub}
	if deps.Push != nil {
		publishers = append(publishers, realtime.NewFCMPublisher(deps.Push, logger))
		logger.Info("FCM push enabled")
	}

	notificationService := services.NewNotificationService(userRepo, followRepo, notificationRepo, publishers, logger)

	api := e.Group("/api")
	if deps.Config.RequireAuth && deps.Verifier != nil {
		api.Use(middleware.FirebaseAuthMiddleware(deps.Verifier, logger))
		logger.Info("Firebase authentication applied to /api group")
	}

	handlers.NewUserHandler(userRepo, logger).RegisterUserRoutes(api)
	handlers.NewPostHandler(postRepo, notificationService, logger).RegisterPostRoutes(api)
	handlers.NewFollowHandler(followRepo, notificationService, logger).RegisterFollowRoutes(api)
	handlers.NewNotificationHandler(notificationService, logger).RegisterNotificationRoutes(api)

	logger.Info("routes configured", zap.Int("count", len(e.Routes())))
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anonto42/insyd-notify/backend/internal/logger"
	"github.com/anonto42/insyd-notify/backend/internal/realtime"
	"github.com/anonto42/insyd-notify/backend/internal/repositories"
	"github.com/anonto42/insyd-notify/backend/internal/router"
	"github.com/anonto42/insyd-notify/backend/pkg/config"
	"github.com/anonto42/insyd-notify/backend/pkg/firebase"
	"github.com/anonto42/insyd-notify/backend/validators"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, envLoaded := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	log.Info("starting Insyd Notification System",
		zap.String("environment", cfg.Env),
		zap.String("port", cfg.Port),
		zap.Bool("env_file", envLoaded))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database connections
	db, err := config.InitDB(cfg, log)
	if err != nil {
		log.Error("failed to initialize database", zap.Error(err))
		log.Error("check POSTGRES_CONN_STR, that PostgreSQL is running and that it is reachable from this host")
		os.Exit(1)
	}
	defer db.CloseDB()

	if err := repositories.Bootstrap(ctx, db.Postgres, cfg.SeedDemoData, log); err != nil {
		log.Error("failed to prepare database", zap.Error(err))
		db.CloseDB()
		os.Exit(1)
	}

	hub := realtime.NewHub(log, cfg.FrontendURL)
	deps := router.Dependencies{
		Config: cfg,
		DB:     db.Postgres,
		Hub:    hub,
		Logger: log,
	}

	// Initialize Firebase when credentials are configured
	if cfg.FirebaseCredentialsPath != "" {
		firebaseApp, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath, log)
		if err != nil {
			log.Error("failed to initialize Firebase", zap.Error(err))
			db.CloseDB()
			os.Exit(1)
		}
		deps.Push = firebaseApp.Messaging
		deps.Verifier = firebaseApp.AuthClient
	} else if cfg.RequireAuth {
		log.Error("REQUIRE_AUTH is set but FIREBASE_CREDENTIALS_PATH is empty")
		db.CloseDB()
		os.Exit(1)
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Validator = validators.NewValidator()

	config.SetupMiddleware(e, cfg, log)
	router.SetupRoutes(e, deps)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", zap.Error(err))
			stop()
		}
	}()
	log.Info("server running",
		zap.String("health", "http://localhost:"+cfg.Port+"/health"),
		zap.String("api", "http://localhost:"+cfg.Port+"/api"))

	<-ctx.Done()
	log.Info("shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}
	hub.Close()
	log.Info("process terminated")
}

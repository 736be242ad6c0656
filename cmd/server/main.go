// Package main runs the portfolio backend HTTP server with graceful shutdown.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/devfolio/backend/config"
	"github.com/devfolio/backend/internal/contact"
	"github.com/devfolio/backend/internal/diagnostics"
	"github.com/devfolio/backend/internal/middleware"
	"github.com/devfolio/backend/internal/videos"
	"github.com/devfolio/backend/pkg/database"
	"github.com/devfolio/backend/pkg/mailer"
	"github.com/devfolio/backend/pkg/storage"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	ctx := context.Background()

	// Document store is optional: a missing URL or a failed connect disables
	// persistence instead of failing startup.
	var store database.Store
	if cfg.Database.URL != "" {
		name := cfg.Database.Name
		if name == "" {
			name = "portfolio"
		}
		mongoStore, err := database.Connect(ctx, cfg.Database.URL, name, logger)
		if err != nil {
			logger.Warn("document store disabled", zap.Error(err))
		} else {
			store = mongoStore
			defer mongoStore.Close(context.Background())
		}
	} else {
		logger.Warn("document store disabled (DATABASE_URL not set)")
	}

	files, err := storage.NewLocal(cfg.Upload.Dir)
	if err != nil {
		logger.Fatal("upload storage", zap.Error(err))
	}

	// Outbound email is optional too; without credentials the contact form
	// stores submissions only.
	var contactMailer contact.Mailer
	if cfg.Email.Configured() {
		contactMailer = mailer.NewGmail(cfg.Email.GmailUser, cfg.Email.GmailAppPassword, cfg.Email.ContactTo, logger)
	} else {
		logger.Warn("contact email disabled (GMAIL_USER/GMAIL_APP_PASSWORD not set)")
	}

	videoRepo := videos.NewRepository(store)
	videoHandler := videos.NewHandler(videoRepo, files, logger)

	contactRepo := contact.NewRepository(store)
	contactHandler := contact.NewHandler(contactRepo, contactMailer, logger)

	diagnosticsHandler := diagnostics.NewHandler(store, cfg.Database)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))
	router.Use(middleware.Logger(logger))

	router.GET("/", diagnosticsHandler.Root)
	router.GET("/test", diagnosticsHandler.Test)
	router.Static(storage.MountPath, files.Dir())

	api := router.Group("/api")
	{
		api.POST("/videos", videoHandler.Upload)
		api.GET("/videos", videoHandler.List)
		api.POST("/contact", contactHandler.Submit)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}

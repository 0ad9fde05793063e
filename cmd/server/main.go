package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/atlasmedia/atlas-backend/internal/config"
	"github.com/atlasmedia/atlas-backend/internal/db"
	"github.com/atlasmedia/atlas-backend/internal/handlers"
	"github.com/atlasmedia/atlas-backend/internal/middleware"
	"github.com/atlasmedia/atlas-backend/internal/repository"
	"github.com/atlasmedia/atlas-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// how long expired/consumed OTP rows are kept before the sweep removes them
const tokenRetention = 24 * time.Hour

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)

	// 1. Load configuration
	cfg := config.LoadConfig()
	logger.Info("Configuration loaded")

	// 2. Initialize database connection
	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DBUrl)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to database")
	}
	defer pool.Close()
	logger.Info("Database connection established")

	// 3. Initialize layers
	adminRepo := repository.NewAdminRepository(pool)
	tokenRepo := repository.NewTokenRepository(pool)
	contentRepo := repository.NewContentRepository(pool)
	inquiryRepo := repository.NewInquiryRepository(pool)

	emailSender := service.NewSMTPSender(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUsername,
		cfg.SMTPPassword,
		cfg.SMTPFrom,
	)

	authService := service.NewAuthService(
		adminRepo,
		tokenRepo,
		emailSender,
		logger,
		cfg.JWTSecret,
		cfg.JWTExpiry,
		cfg.OTPDebugEcho,
	)
	contentService := service.NewContentService(contentRepo)
	inquiryService := service.NewInquiryService(inquiryRepo, emailSender, cfg.SMTPFrom, logger)

	authMw := middleware.NewAuthMiddleware(cfg.JWTSecret, logger)

	// 4. Setup Gin router
	router := gin.Default()

	handlers.NewHealthHandler().RegisterRoutes(router)
	handlers.NewAuthHandler(authService, authMw).RegisterRoutes(router)
	handlers.NewContentHandler(contentService).RegisterRoutes(router)
	handlers.NewInquiryHandler(inquiryService, authMw).RegisterRoutes(router)
	handlers.NewUploadHandler(cfg.UploadDir, authMw).RegisterRoutes(router)

	// 5. Background sweep for expired/consumed reset tokens
	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go sweepTokens(sweepCtx, tokenRepo, logger)

	// 6. Start server with graceful shutdown
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.WithField("port", cfg.Port).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Fatal("Server forced to shutdown")
	}

	logger.Info("Server exited")
}

// sweepTokens periodically deletes reset tokens past their retention window
func sweepTokens(ctx context.Context, tokenRepo *repository.TokenRepository, logger *logrus.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := tokenRepo.DeleteExpiredTokens(ctx, tokenRetention)
			if err != nil {
				logger.WithError(err).Error("Token sweep failed")
				continue
			}
			if deleted > 0 {
				logger.WithField("deleted", deleted).Info("Swept expired reset tokens")
			}
		}
	}
}

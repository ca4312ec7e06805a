package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recruitment-portal-backend/config"
	_ "recruitment-portal-backend/docs" // Important for Swagger
	v1 "recruitment-portal-backend/internal/delivery/http/v1"
	"recruitment-portal-backend/internal/repository/postgres"
	"recruitment-portal-backend/internal/usecase"
	"recruitment-portal-backend/pkg/auth"
	"recruitment-portal-backend/pkg/database"
	"recruitment-portal-backend/pkg/email"
	"recruitment-portal-backend/pkg/logger"
	"recruitment-portal-backend/pkg/redis"
	"recruitment-portal-backend/pkg/storage"

	"github.com/go-playground/validator/v10"
)

// @title           Recruitment Portal API
// @version         1.0
// @description     Backend for the recruitment portal, centered on the interview scheduling engine.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting recruitment portal backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting falls back to in-memory when absent)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	interviewRepo := postgres.NewInterviewRepository(dbPool)
	interviewerRepo := postgres.NewInterviewerRepository(dbPool)
	notificationRepo := postgres.NewNotificationRepository(dbPool)

	// 6. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - interview emails will be skipped")
	}

	// 7. Setup Resume Store
	resumeStore, err := storage.NewResumeStore(context.Background(), cfg)
	if err != nil {
		logger.Log.Error("Failed to initialize resume store", "error", err)
		os.Exit(1)
	}

	// 8. Setup UseCases
	validate := validator.New()
	authUC := usecase.NewAuthUsecase(userRepo)
	jobUC := usecase.NewJobUsecase(jobRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, notificationRepo)
	interviewUC := usecase.NewInterviewUsecase(
		interviewRepo, applicationRepo, notificationRepo,
		emailService, resumeStore, validate, cfg.PortalURL,
	)
	interviewerUC := usecase.NewInterviewerUsecase(interviewerRepo)
	notificationUC := usecase.NewNotificationUsecase(notificationRepo)

	// 9. Setup Auth Provider (Cognito JWKS)
	jwksProvider := auth.NewProvider(cfg.JWKSURL())

	// 10. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:         authUC,
		JobUC:          jobUC,
		ApplicationUC:  applicationUC,
		InterviewUC:    interviewUC,
		InterviewerUC:  interviewerUC,
		NotificationUC: notificationUC,
		JWKSProvider:   jwksProvider,
		Config:         cfg,
	})

	// 11. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

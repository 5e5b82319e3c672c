package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	api "taskmanager-backend/cmd/api"
	authdomain "taskmanager-backend/internal/auth/domain"
	authRepo "taskmanager-backend/internal/auth/repository"
	authUsecase "taskmanager-backend/internal/auth/usecase"
	"taskmanager-backend/internal/notification"
	taskdomain "taskmanager-backend/internal/task/domain"
	taskRepo "taskmanager-backend/internal/task/repository"
	taskUsecase "taskmanager-backend/internal/task/usecase"
	"taskmanager-backend/pkg/config"
	"taskmanager-backend/pkg/database"
	"taskmanager-backend/pkg/mailer"
	"taskmanager-backend/pkg/token"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &taskdomain.Task{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	taskRepository := taskRepo.NewGormTaskRepository(db)

	// Initialize account email notifications
	sender, err := mailer.New(cfg)
	if err != nil {
		log.Fatal("Failed to initialize mailer:", err)
	}
	log.Printf("[Mailer] Using provider: %s", cfg.MailProvider)

	notifService := notification.NewService(sender, cfg.NotifyWorkers, cfg.NotifyQueueSize)
	notifService.Start()
	defer notifService.Stop()

	// Initialize use cases (dependency injection)
	tokenService := authUsecase.NewTokenService(token.NewSigner(cfg.JWTSecret), userRepo)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, tokenService, notifService, cfg)
	taskUsecaseInstance := taskUsecase.NewTaskUsecase(taskRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, taskUsecaseInstance, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start server
	if err := handler.Start(ctx); err != nil {
		log.Printf("Server error: %v", err)
		return
	}
	log.Println("[Server] Stopped")
}

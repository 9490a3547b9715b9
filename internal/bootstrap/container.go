package bootstrap

import (
	"context"
	"log"
	"time"

	"medichat-be/internal/config"
	"medichat-be/internal/controller"
	"medichat-be/internal/pkg/logger"
	"medichat-be/internal/repository/unitofwork"
	"medichat-be/internal/service"
	"medichat-be/pkg/botclient"
	"medichat-be/pkg/storage"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	HealthController controller.IHealthController
	AuthController   controller.IAuthController
	UserController   controller.IUserController
	ChatController   controller.IChatController

	// Shared facades exposed for middleware wiring
	UowFactory unitofwork.RepositoryFactory
	Logger     logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. External boundaries
	store, err := storage.NewS3Store(
		context.Background(),
		cfg.Storage.AccessKey,
		cfg.Storage.SecretKey,
		cfg.Storage.Region,
		cfg.Storage.Bucket,
	)
	if err != nil {
		log.Fatalf("Failed to initialize object store: %v", err)
	}

	bot := botclient.NewHTTPClient(
		cfg.Bot.URL,
		cfg.Bot.Token,
		time.Duration(cfg.Bot.TimeoutSeconds)*time.Second,
	)

	// 3. Services
	authService := service.NewAuthService(uowFactory, cfg.JWT)
	userService := service.NewUserService(uowFactory, store, cfg.Storage, sysLogger)
	chatService := service.NewChatService(uowFactory, bot, store, cfg.Storage, sysLogger)

	// 4. Controllers
	return &Container{
		HealthController: controller.NewHealthController(cfg.App.Environment),
		AuthController:   controller.NewAuthController(authService),
		UserController:   controller.NewUserController(userService),
		ChatController:   controller.NewChatController(chatService),
		UowFactory:       uowFactory,
		Logger:           sysLogger,
	}
}

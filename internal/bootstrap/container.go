package bootstrap

import (
	"context"
	"log"

	"wingman-ai-be/internal/config"
	"wingman-ai-be/internal/controller"
	"wingman-ai-be/internal/entity"
	"wingman-ai-be/internal/handler"
	"wingman-ai-be/internal/pkg/logger"
	"wingman-ai-be/internal/pkg/mailer"
	"wingman-ai-be/internal/repository/memory"
	"wingman-ai-be/internal/repository/unitofwork"
	"wingman-ai-be/internal/service"
	"wingman-ai-be/internal/websocket"
	"wingman-ai-be/pkg/chat/prompt"
	"wingman-ai-be/pkg/extract"
	"wingman-ai-be/pkg/llm/factory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController  controller.IAuthController
	OAuthController controller.IOAuthController
	UserController  controller.IUserController
	ChatController  controller.IChatController
	FileController  controller.IFileController
	AdminController controller.IAdminController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub

	Logger logger.ILogger
}

// emailRecorder adapts the unit of work to the mailer's recording hook.
type emailRecorder struct {
	uowFactory unitofwork.RepositoryFactory
}

func (r *emailRecorder) RecordEmail(ctx context.Context, entry *entity.EmailLog) error {
	uow := r.uowFactory.NewUnitOfWork(ctx)
	return uow.EmailLogRepository().Create(ctx, entry)
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.SenderName,
		cfg.App.ClientURL,
		&emailRecorder{uowFactory: uowFactory},
		sysLogger,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Backend
	llmProvider, err := factory.NewProvider(
		cfg.Ai.Provider,
		cfg.Ai.Model,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.GeminiAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	// In-Memory Session Storage
	sessionRepo := memory.NewSessionRepository()

	// Redis is optional: without it the hub runs single-instance.
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	publisherService := service.NewPublisherService(pubSub)
	consumerService := service.NewConsumerService(pubSub, wsHub, wsLogger)

	// 4. Services
	authService := service.NewAuthService(uowFactory, emailService, sessionRepo, publisherService, cfg.Auth)
	oauthService := service.NewOAuthService(uowFactory, cfg.Auth)
	userService := service.NewUserService(uowFactory, sessionRepo)
	chatService := service.NewChatService(
		uowFactory,
		sessionRepo,
		llmProvider,
		prompt.NewBuilder(prompt.DefaultWindowSize),
		publisherService,
	)
	fileService := service.NewFileService(uowFactory, extract.NewRegistry(), cfg.Upload.MaxFileSizeMB)
	adminService := service.NewAdminService(uowFactory, sysLogger, publisherService)

	// Handler
	notifHandler := handler.NewNotificationHandler(wsHub, wsLogger)

	// 5. Controllers
	return &Container{
		AuthController:  controller.NewAuthController(authService),
		OAuthController: controller.NewOAuthController(oauthService, cfg.App.ClientURL),
		UserController:  controller.NewUserController(userService),
		ChatController:  controller.NewChatController(chatService),
		FileController:  controller.NewFileController(fileService),
		AdminController: controller.NewAdminController(adminService, publisherService),

		ConsumerService: consumerService,

		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,

		Logger: sysLogger,
	}
}

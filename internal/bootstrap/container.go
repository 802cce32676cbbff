package bootstrap

import (
	"context"
	"log"

	"content-variation-be/internal/config"
	"content-variation-be/internal/constant"
	"content-variation-be/internal/controller"
	"content-variation-be/internal/handler"
	"content-variation-be/internal/pkg/logger"
	"content-variation-be/internal/repository/memory"
	"content-variation-be/internal/repository/unitofwork"
	"content-variation-be/internal/service"
	"content-variation-be/internal/websocket"
	"content-variation-be/pkg/llm/factory"

	pktNats "content-variation-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AccessController   controller.IAccessController
	AuthController     controller.IAuthController
	WorkflowController controller.IWorkflowController
	ProjectController  controller.IProjectController
	PromptController   controller.IPromptController
	UserController     controller.IUserController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. LLM Provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Keys.Anthropic,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// In-memory workflow session storage
	workflowRepo := memory.NewWorkflowRepository()

	// 3.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 4. Services
	publisherService := service.NewPublisherService(constant.UsageTopicName, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		constant.UsageTopicName,
		uowFactory,
	)

	authService := service.NewAuthService(uowFactory, cfg.Auth.JWTSecret, cfg.Auth.AccessCode)
	userService := service.NewUserService(uowFactory)

	workflowService := service.NewWorkflowService(
		workflowRepo,
		uowFactory,
		llmProvider,
		publisherService,
		natsPub,
		sysLogger,
	)
	projectService := service.NewProjectService(uowFactory, workflowRepo, publisherService, natsPub)
	promptService := service.NewPromptService(uowFactory, workflowRepo, publisherService, natsPub)

	// 5. Notification System
	notifService := service.NewNotificationService(natsSub, wsHub, wsLogger) // Hub implements NotificationDelivery
	if natsSub != nil {
		go notifService.Start()
	}
	notifHandler := handler.NewNotificationHandler(wsHub, wsLogger)

	// 6. Controllers
	return &Container{
		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,
		AccessController:    controller.NewAccessController(authService),
		AuthController:      controller.NewAuthController(authService),
		WorkflowController:  controller.NewWorkflowController(workflowService),
		ProjectController:   controller.NewProjectController(projectService),
		PromptController:    controller.NewPromptController(promptService),
		UserController:      controller.NewUserController(userService),

		ConsumerService: consumerService,
	}
}

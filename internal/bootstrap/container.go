package bootstrap

import (
	"context"
	"log"

	"notes-backend/internal/config"
	"notes-backend/internal/controller"
	"notes-backend/internal/handler"
	"notes-backend/internal/model"
	"notes-backend/internal/pkg/hasher"
	"notes-backend/internal/pkg/logger"
	"notes-backend/internal/repository/contract"
	"notes-backend/internal/repository/implementation"
	"notes-backend/internal/repository/memory"
	"notes-backend/internal/service"
	"notes-backend/internal/websocket"
	"notes-backend/pkg/database"

	pktNats "notes-backend/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	NoteController controller.INoteController
	UserController controller.IUserController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	passwordHasher := hasher.NewBcryptHasher()

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS (optional; services nil-check the publisher)
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		var err error
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
	}

	// Redis (optional; backs the user store and fans websocket events
	// out across instances when configured)
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
	}

	// 3. Repositories
	var noteRepo contract.NoteRepository
	if db != nil {
		if err := database.Migrate(db, &model.Note{}); err != nil {
			log.Fatalf("[FATAL] Failed to migrate database schema: %v", err)
		}
		noteRepo = implementation.NewNoteRepository(db)
		log.Println("[INFO] Using Note Store: POSTGRES")
	} else {
		noteRepo = memory.NewNoteRepository()
		log.Println("[INFO] Using Note Store: MEMORY")
	}

	var userRepo contract.UserRepository
	if rdb != nil {
		userRepo = implementation.NewRedisUserRepository(rdb)
		log.Println("[INFO] Using User Store: REDIS")
	} else {
		userRepo = memory.NewUserRepository()
		log.Println("[INFO] Using User Store: MEMORY")
	}

	// 4. WebSocket Hub
	wsHub := websocket.NewHub(rdb, sysLogger)

	// 5. Services
	publisherService := service.NewPublisherService(pubSub, cfg.App.NotifyTopic)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.NotifyTopic,
		wsHub,
		sysLogger,
	)

	noteService := service.NewNoteService(noteRepo, publisherService, natsPub, sysLogger)
	userService := service.NewUserService(userRepo, passwordHasher, publisherService, natsPub, sysLogger)
	authService := service.NewAuthService(userRepo, passwordHasher, sysLogger)

	// 6. Handlers & Controllers
	notifHandler := handler.NewNotificationHandler(authService, wsHub, sysLogger)

	return &Container{
		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,
		NoteController:      controller.NewNoteController(noteService, authService),
		UserController:      controller.NewUserController(userService, authService),

		ConsumerService: consumerService,
	}
}

package bootstrap

import (
	"log"
	"time"

	"lifehub-be/internal/config"
	"lifehub-be/internal/controller"
	"lifehub-be/internal/pkg/logger"
	"lifehub-be/internal/repository/unitofwork"
	"lifehub-be/internal/service"

	pktNats "lifehub-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	UserController     controller.IUserController
	NoteController     controller.INoteController
	CalendarController controller.ICalendarController
	RoadmapController  controller.IRoadmapController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS mirror is optional; a dead broker must not block startup.
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Stats are cheap to recompute; a short TTL keeps them fresh enough.
	statsCache := gocache.New(30*time.Second, time.Minute)

	// 3. Services
	publisherService := service.NewPublisherService(cfg.App.ActivityTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.ActivityTopic, sysLogger)

	authService := service.NewAuthService(uowFactory)
	userService := service.NewUserService(uowFactory)
	noteService := service.NewNoteService(uowFactory, publisherService, natsPub)
	calendarService := service.NewCalendarService(uowFactory, publisherService, natsPub, statsCache)
	roadmapService := service.NewRoadmapService(uowFactory, publisherService, natsPub, statsCache)

	// 4. Controllers
	return &Container{
		AuthController:     controller.NewAuthController(authService),
		UserController:     controller.NewUserController(userService),
		NoteController:     controller.NewNoteController(noteService),
		CalendarController: controller.NewCalendarController(calendarService, noteService, sysLogger),
		RoadmapController:  controller.NewRoadmapController(roadmapService),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}

package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	intakeUsecases "github.com/atrium-inc/atrium/internal/application/intake/usecases"
	"github.com/atrium-inc/atrium/internal/application/notification/services"
	notificationUsecases "github.com/atrium-inc/atrium/internal/application/notification/usecases"
	"github.com/atrium-inc/atrium/internal/domain/intake"
	"github.com/atrium-inc/atrium/internal/domain/shared/events"
	"github.com/atrium-inc/atrium/internal/domain/staffing"
	"github.com/atrium-inc/atrium/internal/domain/ticket"
	"github.com/atrium-inc/atrium/internal/infrastructure/cache"
	"github.com/atrium-inc/atrium/internal/infrastructure/push"
	"github.com/atrium-inc/atrium/internal/infrastructure/repository"
	notificationhandlers "github.com/atrium-inc/atrium/internal/interfaces/http/handlers/notification"
	tickethandlers "github.com/atrium-inc/atrium/internal/interfaces/http/handlers/ticket"
	"github.com/atrium-inc/atrium/internal/interfaces/http/middleware"
	"github.com/atrium-inc/atrium/internal/interfaces/http/routes"
	"github.com/atrium-inc/atrium/internal/infrastructure/config"
	"github.com/atrium-inc/atrium/internal/shared/logger"
)

// Router wires repositories, use cases, and handlers into a gin engine. It
// also owns the in-process event dispatcher that bridges ticket lifecycle
// events to notification fan-out, so Shutdown must be called to drain it.
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	log    logger.Interface

	ticketHandler       *tickethandlers.TicketHandler
	notificationHandler *notificationhandlers.NotificationHandler
	rateLimiter         *middleware.RateLimiter

	dispatcher *events.InMemoryEventDispatcher

	// FanOut is exposed for the SLA scanner so the worker shares the exact
	// dispatch path the HTTP-triggered events use.
	FanOut notificationUsecases.FanOutExecutor

	TicketSource *repository.TicketRepository
}

// NewRouter builds the full dependency graph and starts the event dispatcher.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	ticketRepo := repository.NewTicketRepository(db)
	batchRepo := repository.NewImportBatchRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	endpointRepo := repository.NewPushEndpointRepository(db)
	deliveryRepo := repository.NewDeliveryRecordRepository(db)
	membershipStore := repository.NewMembershipStore(db)
	availabilityStore := repository.NewAvailabilityStore(db)
	bookingRepo := repository.NewBookingRepository(db)
	userDirectory := repository.NewUserDirectory(db)

	// Category and skill group rows change rarely; every intake request reads
	// them, so they go through the Redis read-through cache.
	refData := cache.NewCatalogCache(redisClient, repository.NewReferenceDataStore(db), log)

	dispatcher := events.NewInMemoryEventDispatcher(cfg.Worker.EventBufferSize)

	locator := staffing.NewResolverLocator(availabilityStore, membershipStore, log)
	intakeUC := intakeUsecases.NewIntakeTicketUseCase(
		ticketRepo,
		ticket.NewDefaultNumberGenerator(),
		refData,
		locator,
		intake.DefaultClassifier(),
		intake.DefaultLocationExtractor(),
		dispatcher,
		cfg.Intake.FallbackSLAHours,
		log,
	)
	importUC := intakeUsecases.NewImportTicketsUseCase(batchRepo, ticketRepo, intakeUC, locator, dispatcher, log)
	assignUC := intakeUsecases.NewAssignTicketUseCase(ticketRepo, membershipStore, availabilityStore, dispatcher, log)
	reassignUC := intakeUsecases.NewBulkReassignUseCase(ticketRepo, locator, dispatcher, log)
	changeStatusUC := intakeUsecases.NewChangeStatusUseCase(ticketRepo, dispatcher, log)
	pauseUC := intakeUsecases.NewPauseWorkUseCase(ticketRepo, log)
	slaUC := intakeUsecases.NewGetSLAProgressUseCase(ticketRepo, log)
	listUC := intakeUsecases.NewListTicketsUseCase(ticketRepo, log)

	transport := push.NewWebPushTransport(push.WebPushConfig{
		VAPIDPublicKey:  cfg.Push.VAPIDPublicKey,
		VAPIDPrivateKey: cfg.Push.VAPIDPrivateKey,
		Subscriber:      cfg.Push.SubscriberEmail,
		TTLSeconds:      cfg.Push.TimeoutSeconds,
	}, log)
	cooldown := cache.NewNotifyCooldown(redisClient, time.Duration(cfg.Worker.AlertCooldownMinutes)*time.Minute)
	resolver := notificationUsecases.NewRecipientResolver(membershipStore, availabilityStore, refData, log)
	fanOutUC := notificationUsecases.NewFanOutUseCase(
		notificationRepo,
		endpointRepo,
		deliveryRepo,
		transport,
		resolver,
		ticketRepo,
		bookingRepo,
		userDirectory,
		cooldown,
		log,
	)
	registerUC := notificationUsecases.NewRegisterEndpointUseCase(endpointRepo, log)
	markReadUC := notificationUsecases.NewMarkNotificationReadUseCase(notificationRepo, log)
	listNotificationsUC := notificationUsecases.NewListNotificationsUseCase(notificationRepo, log)

	eventHandler := services.NewTicketEventHandler(fanOutUC, log)
	if err := eventHandler.Register(dispatcher); err != nil {
		return nil, err
	}
	if err := dispatcher.Start(); err != nil {
		return nil, err
	}

	return &Router{
		engine: engine,
		cfg:    cfg,
		log:    log,
		ticketHandler: tickethandlers.NewTicketHandler(
			intakeUC, importUC, assignUC, reassignUC, changeStatusUC, pauseUC, slaUC, listUC,
		),
		notificationHandler: notificationhandlers.NewNotificationHandler(
			registerUC, markReadUC, listNotificationsUC,
		),
		rateLimiter:  middleware.NewRateLimiter(redisClient, 100, 1*time.Minute),
		dispatcher:   dispatcher,
		FanOut:       fanOutUC,
		TicketSource: ticketRepo,
	}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler: r.ticketHandler,
		RateLimiter:   r.rateLimiter,
	})
	routes.SetupNotificationRoutes(r.engine, &routes.NotificationRouteConfig{
		NotificationHandler: r.notificationHandler,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

// Shutdown stops the event dispatcher, draining buffered events first.
func (r *Router) Shutdown() {
	if r.dispatcher == nil {
		return
	}
	if err := r.dispatcher.Stop(); err != nil {
		r.log.Errorw("failed to stop event dispatcher", "error", err)
	}
}
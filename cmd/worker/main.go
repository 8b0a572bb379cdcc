package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/atrium-inc/atrium/internal/application/notification/usecases"
	"github.com/atrium-inc/atrium/internal/infrastructure/cache"
	"github.com/atrium-inc/atrium/internal/infrastructure/config"
	"github.com/atrium-inc/atrium/internal/infrastructure/database"
	"github.com/atrium-inc/atrium/internal/infrastructure/push"
	"github.com/atrium-inc/atrium/internal/infrastructure/repository"
	"github.com/atrium-inc/atrium/internal/infrastructure/scheduler"
	"github.com/atrium-inc/atrium/internal/shared/biztime"
	"github.com/atrium-inc/atrium/internal/shared/logger"
)

// The worker runs the SLA overdue sweep on a schedule, sharing the same
// fan-out path the HTTP server uses for lifecycle events. The Redis cooldown
// keeps the two processes from double-notifying the same ticket.
func main() {
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	log := logger.NewLogger()
	log.Infow("starting sla overdue worker", "environment", env)

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		log.Fatalw("failed to initialize business timezone", "error", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalw("failed to initialize database", "error", err)
	}
	defer database.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalw("failed to connect to redis", "error", err)
	}
	log.Infow("redis connection established", "address", cfg.Redis.GetAddr())

	db := database.Get()
	ticketRepo := repository.NewTicketRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	endpointRepo := repository.NewPushEndpointRepository(db)
	deliveryRepo := repository.NewDeliveryRecordRepository(db)
	membershipStore := repository.NewMembershipStore(db)
	availabilityStore := repository.NewAvailabilityStore(db)
	bookingRepo := repository.NewBookingRepository(db)
	userDirectory := repository.NewUserDirectory(db)
	refData := cache.NewCatalogCache(redisClient, repository.NewReferenceDataStore(db), log)

	transport := push.NewWebPushTransport(push.WebPushConfig{
		VAPIDPublicKey:  cfg.Push.VAPIDPublicKey,
		VAPIDPrivateKey: cfg.Push.VAPIDPrivateKey,
		Subscriber:      cfg.Push.SubscriberEmail,
		TTLSeconds:      cfg.Push.TimeoutSeconds,
	}, log)
	cooldown := cache.NewNotifyCooldown(redisClient, time.Duration(cfg.Worker.AlertCooldownMinutes)*time.Minute)
	resolver := usecases.NewRecipientResolver(membershipStore, availabilityStore, refData, log)
	fanOutUC := usecases.NewFanOutUseCase(
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

	scanner := scheduler.NewSLAOverdueScanner(ticketRepo, fanOutUC, log)

	manager, err := scheduler.NewSchedulerManager(log)
	if err != nil {
		log.Fatalw("failed to create scheduler", "error", err)
	}

	interval := time.Duration(cfg.Worker.ScanIntervalMinutes) * time.Minute
	if err := manager.RegisterSLAOverdueJob(scanner, interval); err != nil {
		log.Fatalw("failed to register sla overdue job", "error", err)
	}

	manager.Start()
	log.Infow("sla overdue scanner scheduled", "interval", interval)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Infow("shutting down worker...")
	if err := manager.Stop(); err != nil {
		log.Errorw("failed to stop scheduler", "error", err)
	}
	log.Infow("worker exited gracefully")
}
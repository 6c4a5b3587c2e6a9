package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"

	"github.com/onRAM-ai/gcg-portal/internal/auth"
	"github.com/onRAM-ai/gcg-portal/internal/cache"
	"github.com/onRAM-ai/gcg-portal/internal/config"
	"github.com/onRAM-ai/gcg-portal/internal/handler"
	"github.com/onRAM-ai/gcg-portal/internal/mailer"
	"github.com/onRAM-ai/gcg-portal/internal/middleware"
	"github.com/onRAM-ai/gcg-portal/internal/mq"
	"github.com/onRAM-ai/gcg-portal/internal/notification"
	"github.com/onRAM-ai/gcg-portal/internal/places"
	"github.com/onRAM-ai/gcg-portal/internal/repository"
	"github.com/onRAM-ai/gcg-portal/internal/router"
	"github.com/onRAM-ai/gcg-portal/internal/scheduler"
	"github.com/onRAM-ai/gcg-portal/internal/service"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *cache.Redis
	mqConn     *amqp.Connection
	mqChannel  *amqp.Channel
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
	consumer   *notification.Consumer
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"gcg-portal",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initRedis(); err != nil {
		return nil, fmt.Errorf("init redis: %w", err)
	}

	if err = app.initMQ(); err != nil {
		return nil, fmt.Errorf("init rabbitmq: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initRedis() error {
	r, err := cache.New(a.cfg.Redis.Addr, a.cfg.Redis.Password, a.cfg.Redis.DB)
	if err != nil {
		return err
	}
	a.redis = r

	a.log.Info("redis connected", logger.String("addr", a.cfg.Redis.Addr))
	return nil
}

func (a *App) initMQ() error {
	conn, err := mq.NewConn(a.cfg.RabbitMQ.URL)
	if err != nil {
		return err
	}
	if err := mq.InitQueues(conn); err != nil {
		return err
	}
	ch, err := mq.NewChannel(conn)
	if err != nil {
		return err
	}

	a.mqConn = conn
	a.mqChannel = ch

	a.log.Info("rabbitmq connected")
	return nil
}

func (a *App) initServices() error {
	userRepo := repository.NewUserRepo(a.db)
	venueRepo := repository.NewVenueRepo(a.db)
	shiftRepo := repository.NewShiftRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)
	availabilityRepo := repository.NewAvailabilityRepo(a.db)
	feedbackRepo := repository.NewFeedbackRepo(a.db)
	notificationRepo := repository.NewNotificationRepo(a.db)
	invitationRepo := repository.NewInvitationRepo(a.db)
	creditRepo := repository.NewCreditRepo(a.db)
	documentRepo := repository.NewDocumentRepo(a.db)

	tokens := auth.NewTokenManager(a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL)

	authService := service.NewAuthService(userRepo, tokens, a.log)
	userService := service.NewUserService(userRepo, a.log)
	venueService := service.NewVenueService(venueRepo, a.log)
	shiftService := service.NewShiftService(shiftRepo, venueRepo, userRepo, availabilityRepo, a.log)
	bookingService := service.NewBookingService(bookingRepo, venueRepo, userRepo, a.log)
	availabilityService := service.NewAvailabilityService(availabilityRepo, a.log)
	feedbackService := service.NewFeedbackService(feedbackRepo, venueRepo, a.log)
	invitationService := service.NewInvitationService(
		invitationRepo, mailer.NewLogMailer(a.log), a.cfg.App.PublicURL, a.log)
	creditService := service.NewCreditService(creditRepo, userRepo, a.log)
	notificationService := service.NewNotificationService(notificationRepo, a.log)
	documentService := service.NewDocumentService(documentRepo, userRepo, a.log)

	deliverer, err := notification.NewTelegramDeliverer(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init telegram deliverer: %w", err)
	}
	dispatcher := notification.NewDispatcher(
		notificationRepo, a.mqChannel, a.cfg.Scheduler.OutboxBatchSize, a.log)
	a.consumer = notification.NewConsumer(userRepo, deliverer, a.log)

	a.scheduler = scheduler.New(
		dispatcher,
		shiftService,
		invitationService,
		a.cfg.Scheduler.Interval,
		a.cfg.Scheduler.AssignmentTTL,
		a.log,
	)

	h := handler.New(handler.Config{
		Auth:          authService,
		Users:         userService,
		Venues:        venueService,
		Shifts:        shiftService,
		Bookings:      bookingService,
		Availability:  availabilityService,
		Feedback:      feedbackService,
		Invitations:   invitationService,
		Credits:       creditService,
		Notifications: notificationService,
		Documents:     documentService,
		Places:        places.NewClient(a.cfg.Places.APIKey, a.cfg.Places.BaseURL),
		Health: map[string]handler.Pinger{
			"postgres": pingerFunc(a.db.Master.PingContext),
			"redis":    pingerFunc(a.redis.Ping),
			"rabbitmq": pingerFunc(a.pingMQ),
		},
		Development: a.cfg.App.Development(),
	})

	rateLimiter := cache.NewRateLimiter(a.redis, a.cfg.RateLimit.PerMinute, time.Minute)

	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		tokens,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.RateLimit(rateLimiter, a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	if err := a.consumer.Start(ctx, a.mqConn); err != nil {
		return fmt.Errorf("start consumer: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.mqChannel.Close(); err != nil {
		a.log.Error("close mq channel", logger.String("error", err.Error()))
	}
	if err := a.mqConn.Close(); err != nil {
		a.log.Error("close mq connection", logger.String("error", err.Error()))
	}

	if err := a.redis.Close(); err != nil {
		a.log.Error("close redis", logger.String("error", err.Error()))
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}

func (a *App) pingMQ(context.Context) error {
	if a.mqConn == nil || a.mqConn.IsClosed() {
		return fmt.Errorf("rabbitmq connection closed")
	}
	return nil
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

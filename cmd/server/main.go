// @title           Booking Portal API
// @version         1.0
// @description     Workstation booking and per-user history for the coworking space.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/spacehub/booking-portal/internal/api"
	"github.com/spacehub/booking-portal/internal/api/handler"
	"github.com/spacehub/booking-portal/internal/core/catalog"
	"github.com/spacehub/booking-portal/internal/core/ports"
	"github.com/spacehub/booking-portal/internal/core/service"
	"github.com/spacehub/booking-portal/internal/infrastructure/datastore/rest"
	"github.com/spacehub/booking-portal/internal/infrastructure/db/mongo"
	"github.com/spacehub/booking-portal/internal/infrastructure/db/redis"
	"github.com/spacehub/booking-portal/internal/infrastructure/http/handlers"
	"github.com/spacehub/booking-portal/internal/infrastructure/identity"
	"github.com/spacehub/booking-portal/internal/infrastructure/mq"
	"github.com/spacehub/booking-portal/internal/infrastructure/notify"
	"github.com/spacehub/booking-portal/internal/infrastructure/queue"
	"github.com/spacehub/booking-portal/internal/pkg/config"
	"github.com/spacehub/booking-portal/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "booking-portal",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	var readiness []handlers.Dependency

	// --- Mongo: local identity provider and/or the mongo datastore driver ---
	var db *mongodriver.Database
	if cfg.Auth.LocalEnabled || cfg.Datastore.Driver == config.DriverMongo {
		client, database, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		defer func() {
			dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = client.Disconnect(dctx)
		}()
		db = database
		readiness = append(readiness, handlers.Dependency{Name: "mongo", Pinger: mongo.Pinger{Client: client}})
	}

	// --- Datastore ---
	var store ports.Datastore
	switch cfg.Datastore.Driver {
	case config.DriverMongo:
		store = mongo.NewDatastore(db, logger.Component("datastore"))
	default:
		store = rest.NewClient(rest.Config{
			BaseURL:     cfg.Datastore.URL,
			Timeout:     cfg.Datastore.Timeout,
			ReadRetries: cfg.Datastore.ReadRetries,
		}, logger.Component("datastore"))
	}
	readiness = append(readiness, handlers.Dependency{Name: "datastore", Pinger: store})

	// --- Post-confirmation hooks ---
	var hooks []ports.ConfirmationHook
	if cfg.Notify.URL != "" {
		var dedup service.DedupChecker
		if cfg.Redis.Addr != "" {
			rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
			if err != nil {
				log.Warn().Err(err).Msg("redis unavailable, notification dedup disabled")
			} else {
				defer rdb.Close()
				dedup = redis.NewNotificationDedup(rdb, 0)
				readiness = append(readiness, handlers.Dependency{Name: "redis", Pinger: redis.Pinger{Client: rdb}})
			}
		}
		emails := notify.NewEmailClient(cfg.Notify.URL, cfg.Notify.Timeout)
		hooks = append(hooks, service.NewNotifyHook(emails, dedup, logger.Component("notify")))
	}
	if cfg.AMQP.URL != "" {
		pub, err := mq.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			log.Warn().Err(err).Msg("amqp unavailable, booking events disabled")
		} else {
			defer pub.Close()
			hooks = append(hooks, service.NewPublishHook(pub))
		}
	}

	dispatcher := queue.NewDispatcher(cfg.Booking.HookWorkers, logger.Component("hooks"), hooks...)
	dispatcher.Start(ctx)

	// --- Core services ---
	workstations := catalog.Workstations()
	bookingSvc := service.NewBookingService(workstations, store, dispatcher, logger.Component("booking"), service.BookingOptions{
		Location:      loc,
		RedirectPath:  cfg.Booking.RedirectPath,
		RedirectDelay: cfg.Booking.RedirectDelay,
	})
	historySvc := service.NewHistoryService(store, store, store, logger.Component("history"))

	var authSvc ports.AuthService
	if cfg.Auth.LocalEnabled {
		authRepo := mongo.NewAuthRepository(db)
		if err := authRepo.EnsureIndexes(ctx); err != nil {
			return err
		}
		authSvc = service.NewAuthService(authRepo, cfg.JWTSecret, cfg.Auth.TokenTTL)
	}

	sessionLog := logger.Component("session")
	e := api.NewRouter(api.Deps{
		Log:         logger.Component("http"),
		JWTSecret:   cfg.JWTSecret,
		LoginURL:    cfg.Auth.LoginURL,
		LocalAuth:   cfg.Auth.LocalEnabled,
		Catalog:     workstations,
		Auth:        authSvc,
		Bookings:    bookingSvc,
		History:     historySvc,
		NewIdentity: func() handler.SessionIdentity { return identity.NewBroadcaster() },
		NewSession: func(src ports.IdentitySource, view ports.HistoryView) handler.Session {
			return service.NewSessionCoordinator(src, historySvc, bookingSvc, view, sessionLog)
		},
		Readiness: readiness,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("datastore", cfg.Datastore.Driver).Int("hooks", len(hooks)).Msg("listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(sctx)
}

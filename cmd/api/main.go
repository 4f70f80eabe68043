package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/enquiry-service/internal/api/http"
	"github.com/spec-kit/enquiry-service/internal/api/http/handlers"
	"github.com/spec-kit/enquiry-service/internal/auth"
	"github.com/spec-kit/enquiry-service/internal/config"
	"github.com/spec-kit/enquiry-service/internal/events"
	"github.com/spec-kit/enquiry-service/internal/observability"
	"github.com/spec-kit/enquiry-service/internal/persistence"
	"github.com/spec-kit/enquiry-service/internal/repository"
	"github.com/spec-kit/enquiry-service/internal/service"
	"github.com/spec-kit/enquiry-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	txManager := repository.NewTxManager(pg.PoolHandle())
	staffRepo := repository.NewStaffRepository()
	enquiryRepo := repository.NewEnquiryRepository()

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret)
	dispatcher := events.NewInMemoryDispatcher()

	notificationService := service.NewNotificationService(dispatcher, logger)
	worker.StartNotificationWorker(notificationService)

	staffService := service.NewStaffService(*cfg, service.StaffDependencies{
		StaffRepo:  staffRepo,
		Tx:         txManager,
		Tokens:     tokens,
		Dispatcher: dispatcher,
	})
	enquiryService := service.NewEnquiryService(service.EnquiryDependencies{
		EnquiryRepo: enquiryRepo,
		Tx:          txManager,
		Dispatcher:  dispatcher,
	})

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:  handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Staff:   handlers.NewStaffHandler(staffService),
		Enquiry: handlers.NewEnquiryHandler(enquiryService),
		Tokens:  tokens,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/glowdesk/salon-api/docs"
	"github.com/glowdesk/salon-api/internal/api"
	"github.com/glowdesk/salon-api/internal/core/service"
	mongodb "github.com/glowdesk/salon-api/internal/infrastructure/db/mongo"
	redisdb "github.com/glowdesk/salon-api/internal/infrastructure/db/redis"
	"github.com/glowdesk/salon-api/internal/infrastructure/queue"
	"github.com/glowdesk/salon-api/internal/pkg/config"
	"github.com/glowdesk/salon-api/pkg/logger"
)

// @title        Salon back-office API
// @version      1.0
// @description  Point-of-sale and administrative API for a small beauty salon.
// @BasePath     /
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Mongo ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Repositories + indexes ---
	userRepo := mongodb.NewUserRepository(db)
	customerRepo := mongodb.NewCustomerRepository(db)
	catalogRepo := mongodb.NewCatalogRepository(db)
	transactionRepo := mongodb.NewTransactionRepository(db)
	appointmentRepo := mongodb.NewAppointmentRepository(db)
	consultationRepo := mongodb.NewConsultationRepository(db)
	settingsRepo := mongodb.NewSettingsRepository(db)

	for name, ensure := range map[string]func(context.Context) error{
		"users":        userRepo.EnsureIndexes,
		"customers":    customerRepo.EnsureIndexes,
		"transactions": transactionRepo.EnsureIndexes,
		"appointments": appointmentRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("index creation failed")
		}
	}

	// --- Services ---
	customerService := service.NewCustomerService(customerRepo)

	dispatcher := queue.NewDispatcher(0, customerService, log)
	dispatcher.Start(ctx)

	deps := api.Deps{
		DB:            db,
		Redis:         rdb,
		Logger:        log,
		JWTSecret:     cfg.JWTSecret,
		SessionTTL:    cfg.SessionTTL,
		SecureCookies: cfg.Env != "development",

		Auth:          service.NewAuthService(userRepo, cfg.JWTSecret, cfg.SessionTTL),
		Users:         service.NewUserService(userRepo),
		Customers:     customerService,
		Catalog:       service.NewCatalogService(catalogRepo),
		Transactions:  service.NewTransactionService(transactionRepo, dispatcher, log),
		Appointments:  service.NewAppointmentService(appointmentRepo, log),
		Consultations: service.NewConsultationService(consultationRepo, dispatcher, log),
		Reports:       service.NewReportService(transactionRepo, redisdb.NewReportCache(rdb), log),
		Settings:      service.NewSettingsService(settingsRepo),
	}

	e := api.NewRouter(deps)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

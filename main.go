// File: quotely/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quotely/config"
	"quotely/cron"
	"quotely/database"
	catalogRepo "quotely/database/repository/catalog"
	"quotely/handlers"
	"quotely/middleware"
	"quotely/routes"
	"quotely/services/intake"
	"quotely/services/quote"
	"quotely/services/tasks"
	"quotely/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitRedis()

	// Catalog registry: static seed by default, Mongo-backed when configured.
	var catalog catalogRepo.CatalogRepository
	var mongoClient *mongo.Client
	if config.AppConfig.CatalogSource == "mongo" {
		database.InitDB()
		mongoClient = database.MongoClient
		catalog = catalogRepo.NewMongoCatalogRepo()
	} else {
		catalog = catalogRepo.NewMemoryCatalogRepo()
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Stores.
	sessionStore := &quote.RedisSessionStore{
		Client: utils.GetSessionCacheClient(),
		TTL:    config.SessionTTL(),
	}
	handoffSlot := &quote.RedisHandoffSlot{
		Client: utils.GetHandoffCacheClient(),
		TTL:    2 * config.PendingQuoteTTL(),
	}

	// Follow-up queue for sweeping stale pending quotes.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()
	cron.InitQuoteExpiryWorker(handoffSlot)

	// Services.
	quoteService := &quote.DefaultQuoteSessionService{
		Catalog:    catalog,
		Store:      sessionStore,
		Handoff:    handoffSlot,
		Followup:   &tasks.Scheduler{Client: asynqClient},
		PendingTTL: config.PendingQuoteTTL(),
		Logger:     logger,
	}
	intakeService := &intake.DefaultIntakeService{
		Handoff: handoffSlot,
		Logger:  logger,
	}

	quoteHandler := handlers.NewQuoteHandler(quoteService, logger)
	intakeHandler := handlers.NewIntakeHandler(intakeService, logger)
	catalogHandler := handlers.NewCatalogHandler(catalog, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Catalog endpoints.
		GetCatalogHandler: catalogHandler.GetCatalogHandler,

		// Quote wizard endpoints.
		CreateSession:     quoteHandler.CreateSession,
		GetSession:        quoteHandler.GetSession,
		ToggleService:     quoteHandler.ToggleService,
		SetSingleChoice:   quoteHandler.SetSingleChoice,
		ToggleMultiOption: quoteHandler.ToggleMultiOption,
		Advance:           quoteHandler.Advance,
		Retreat:           quoteHandler.Retreat,
		GoTo:              quoteHandler.GoTo,
		Finalize:          quoteHandler.Finalize,
		CancelSession:     quoteHandler.CancelSession,

		// Intake endpoints.
		GetPendingQuote: intakeHandler.GetPendingQuoteHandler,
		CompleteIntake:  intakeHandler.CompleteIntakeHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor([]*redis.Client{
		utils.GetSessionCacheClient(),
		utils.GetHandoffCacheClient(),
	}, mongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

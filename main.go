// File: coworkly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coworkly/catalog"
	"coworkly/config"
	"coworkly/database"
	bookingRepoPkg "coworkly/database/repository/booking"
	"coworkly/handlers"
	"coworkly/middleware"
	"coworkly/routes"
	"coworkly/search"
	"coworkly/services/assistant"
	"coworkly/services/tools"
	"coworkly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitChatContextCache()
	utils.InitCache()

	store, err := catalog.Load()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load coworking catalog: %v", err)
	}
	logger.Sugar().Infof("Loaded %d coworking spaces", store.Len())

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// repositories.
	bookingRepo := bookingRepoPkg.NewPostgresBookingRepo()

	// services.
	engine := search.NewEngine(store)
	toolSvc := tools.NewService(engine, bookingRepo, logger.Named("tools"))

	ctxStore := assistant.NewRedisContextStore(utils.GetChatContextClient(), 30*time.Minute)
	assistantSvc := assistant.NewDefaultAssistantService(
		config.AppConfig.GeminiAPIKey,
		ctxStore,
		toolSvc,
	)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		BookingRepo: bookingRepo,

		ChatHandler:          handlers.ChatHandler(assistantSvc),
		SearchHandler:        handlers.SearchHandler(toolSvc),
		CreateBookingHandler: handlers.CreateBookingHandler(toolSvc),
		ListBookingsHandler:  handlers.ListBookingsHandler(bookingRepo),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetChatContextClient(), utils.GetCacheClient()},
		database.DB,
	)

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

// File: dateplanner/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"dateplanner/config"
	"dateplanner/database"
	bookingRepoPkg "dateplanner/database/repository/booking"
	userRepoPkg "dateplanner/database/repository/user"
	"dateplanner/handlers"
	"dateplanner/middleware"
	"dateplanner/routes"
	"dateplanner/services/booking"
	"dateplanner/services/storage"
	"dateplanner/services/user"
	"dateplanner/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	mongoClient, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := database.Disconnect(mongoClient); err != nil {
			logger.Sugar().Warnf("main: failed to disconnect MongoDB: %v", err)
		}
	}()

	cacheClient, err := utils.NewCacheClient(config.AppConfig)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cache: %v", err)
	}
	authCacheClient, err := utils.NewAuthCacheClient(config.AppConfig)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize auth cache: %v", err)
	}

	storageService, err := storage.NewStorageService(
		config.AppConfig.CloudinaryCloudName,
		config.AppConfig.CloudinaryAPIKey,
		config.AppConfig.CloudinaryAPISecret,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo(mongoClient, config.AppConfig.DatabaseName)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(mongoClient, config.AppConfig.DatabaseName)

	// services.
	userService := &user.DefaultUserService{
		Repo:      userRepo,
		AuthCache: authCacheClient,
		Cache:     cacheClient,
		Audience:  config.AppConfig.GoogleClientID,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:     bookingRepo,
		UserRepo: userRepo,
	}

	// handlers.
	handlerBundle := &routes.HandlerBundle{
		UserRepo:  userRepo,
		AuthCache: authCacheClient,
		Auth:      handlers.NewAuthHandler(userService),
		User:      handlers.NewUserHandler(userService),
		Booking:   handlers.NewBookingHandler(bookingService, logger),
		Storage:   handlers.NewStorageHandler(storageService, userService),
	}

	routes.RegisterRoutes(router, handlerBundle)

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

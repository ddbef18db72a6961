package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parkwise/config"
	"parkwise/cron"
	"parkwise/database"
	bookingRepoPkg "parkwise/database/repository/booking"
	slotRepoPkg "parkwise/database/repository/slot"
	userRepoPkg "parkwise/database/repository/user"
	"parkwise/handlers"
	"parkwise/middleware"
	"parkwise/routes"
	"parkwise/services/parking"
	userSvcPkg "parkwise/services/user"
	"parkwise/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	slotRepo := slotRepoPkg.NewMongoSlotRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	userService := &userSvcPkg.DefaultUserService{
		Repo: userRepo,
	}
	slotService := &parking.DefaultSlotService{
		Repo:  slotRepo,
		Cache: utils.GetCacheClient(),
	}
	bookingService := &parking.DefaultBookingService{
		Slots:           slotRepo,
		Bookings:        bookingRepo,
		UseTransactions: config.AppConfig.MongoTransactions,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,
		Auth:     handlers.NewAuthHandler(userService),
		Users:    handlers.NewUserHandler(userService),
		Slots:    handlers.NewSlotHandler(slotService),
		Bookings: handlers.NewBookingHandler(bookingService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background overstay scanner and health monitor.
	cron.InitOverstayWorker(bookingService)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
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

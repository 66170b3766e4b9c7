// File: slotify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slotify/config"
	"slotify/database"
	availabilityRepo "slotify/database/repository/availability"
	bookingRepo "slotify/database/repository/booking"
	personRepo "slotify/database/repository/person"
	"slotify/handlers"
	"slotify/middleware"
	"slotify/routes"
	"slotify/services/scheduling"
	"slotify/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitLockCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	persons := personRepo.NewMongoPersonRepo()
	availability := availabilityRepo.NewCachedAvailabilityRepo(
		availabilityRepo.NewMongoAvailabilityRepo(),
		utils.GetCacheClient(),
		time.Duration(config.AppConfig.AvailabilityCacheTTL)*time.Second,
	)
	bookings := bookingRepo.NewMongoBookingRepo()

	// services.
	finder := &scheduling.DefaultSlotFinder{
		Availability: availability,
		Bookings:     bookings,
		StepMinutes:  config.AppConfig.SlotStepMinutes,
	}
	guard := &scheduling.DefaultBookingGuard{
		Persons:  persons,
		Bookings: bookings,
		Locks:    scheduling.NewRedisLocker(utils.GetLockClient()),
		LockTTL:  time.Duration(config.AppConfig.BookingLockTTL) * time.Second,
	}

	personHandler := handlers.NewPersonHandler(persons)
	availabilityHandler := handlers.NewAvailabilityHandler(availability)
	slotsHandler := handlers.NewSlotsHandler(finder)
	bookingHandler := handlers.NewBookingHandler(guard)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ListPeopleHandler:   personHandler.ListPeopleHandler,
		CreatePersonHandler: personHandler.CreatePersonHandler,
		GetPersonHandler:    personHandler.GetPersonHandler,
		UpdatePersonHandler: personHandler.UpdatePersonHandler,
		DeletePersonHandler: personHandler.DeletePersonHandler,

		GetAvailabilityHandler:     availabilityHandler.GetAvailabilityHandler,
		ReplaceAvailabilityHandler: availabilityHandler.ReplaceAvailabilityHandler,

		FindSlotsHandler: slotsHandler.FindSlotsHandler,

		ListBookingsHandler:  bookingHandler.ListBookingsHandler,
		CreateBookingHandler: bookingHandler.CreateBookingHandler,
		DeleteBookingHandler: bookingHandler.DeleteBookingHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetCacheClient(), utils.GetLockClient(), database.MongoClient)

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

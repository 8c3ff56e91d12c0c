package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"counselhub/config"
	"counselhub/database"
	communityRepoPkg "counselhub/database/repository/community"
	counselorRepoPkg "counselhub/database/repository/counselor"
	operatorRepoPkg "counselhub/database/repository/operator"
	scheduleRepoPkg "counselhub/database/repository/schedule"
	"counselhub/handlers"
	"counselhub/middleware"
	"counselhub/routes"
	"counselhub/services/community"
	"counselhub/services/counselor"
	"counselhub/services/dashboard"
	"counselhub/services/notification"
	"counselhub/services/operator"
	"counselhub/services/schedule"
	"counselhub/utils"
	"counselhub/workers"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	storageService, err := utils.Cloudinary()
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
	counselorRepo := counselorRepoPkg.NewMongoCounselorRepo()
	scheduleRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	communityRepo := communityRepoPkg.NewMongoCommunityRepo()
	operatorRepo := operatorRepoPkg.NewMongoOperatorRepo()

	// services.
	notificationService := &notification.DefaultNotificationService{
		CounselorRepo: counselorRepo,
	}

	reminderScheduler := workers.NewReminderScheduler()
	defer reminderScheduler.Close()

	counselorService := &counselor.DefaultCounselorService{
		Repo: counselorRepo,
	}

	scheduleService := &schedule.DefaultScheduleService{
		Repo:          scheduleRepo,
		CounselorRepo: counselorRepo,
		Notifier:      notificationService,
		Reminders:     reminderScheduler,
		ProfileCache:  counselorService,
	}
	communityService := &community.DefaultCommunityService{
		Repo: communityRepo,
	}
	operatorService := &operator.DefaultOperatorService{
		Repo: operatorRepo,
	}
	dashboardService := &dashboard.DefaultDashboardService{
		CounselorRepo: counselorRepo,
		ScheduleRepo:  scheduleRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Counselor: handlers.NewCounselorHandler(counselorService),
		Schedule:  handlers.NewScheduleHandler(scheduleService),
		Booking:   handlers.NewBookingHandler(scheduleService),
		Community: handlers.NewCommunityHandler(communityService),
		Operator:  handlers.NewOperatorHandler(operatorService),
		Dashboard: handlers.NewDashboardHandler(dashboardService),
		Storage:   handlers.NewStorageHandler(storageService, counselorService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background worker: nightly window extension plus session reminders.
	workers.InitWorker(scheduleService, counselorRepo, notificationService)

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

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"driveline/config"
	"driveline/cron"
	"driveline/database"
	instructorRepo "driveline/database/repository/instructor"
	recordsRepo "driveline/database/repository/records"
	"driveline/handlers"
	"driveline/middleware"
	"driveline/routes"
	"driveline/services/availability"
	"driveline/services/dialogue"
	"driveline/services/extraction"
	"driveline/services/knowledge"
	"driveline/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	var sessionClient *redis.Client
	if config.AppConfig.SessionBackend == "redis" {
		utils.InitSessionCache()
		sessionClient = utils.GetSessionCacheClient()
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// repositories.
	instructors := instructorRepo.NewMongoInstructorRepo()
	records := recordsRepo.NewMongoRecordRepo()

	// services.
	calendarAPI, err := availability.NewGoogleCalendarAPI(
		config.AppConfig.GoogleServiceAccountKey,
		config.AppConfig.CalendarTimezone,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize calendar client: %v", err)
	}

	reminders, err := cron.NewReminderScheduler(
		time.Duration(config.AppConfig.ReminderLeadMinutes)*time.Minute,
		config.AppConfig.CalendarTimezone,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize reminder scheduler: %v", err)
	}

	gateway := &availability.DefaultGateway{
		Instructors:       instructors,
		Calendar:          calendarAPI,
		Records:           records,
		Reminders:         reminders,
		WorkingHoursStart: config.AppConfig.WorkingHoursStart,
		WorkingHoursEnd:   config.AppConfig.WorkingHoursEnd,
		SlotMinutes:       config.AppConfig.LessonDurationMinutes,
	}

	var llm extraction.LLMClient
	if config.AppConfig.GeminiAPIKey != "" {
		llm = extraction.NewGeminiClient(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	}
	extractor := extraction.NewDefaultExtractor(llm,
		time.Duration(config.AppConfig.LessonDurationMinutes)*time.Minute)
	responder := knowledge.NewLLMResponder(llm)

	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	var store dialogue.SessionStore
	if sessionClient != nil {
		store = dialogue.NewRedisStore(sessionClient, sessionTTL)
	} else {
		memStore := dialogue.NewMemoryStore(sessionTTL)
		memStore.StartJanitor(time.Minute)
		defer memStore.Close()
		store = memStore
	}

	engine := dialogue.NewEngine(store, extractor, gateway, responder)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Chat:    handlers.NewChatHandler(engine),
		Booking: handlers.NewBookingHandler(gateway),
		Admin:   handlers.NewAdminHandler(engine),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder worker and health monitor.
	cron.InitReminderWorker(records)
	if sessionClient != nil {
		utils.StartHealthMonitor([]*redis.Client{sessionClient}, database.MongoClient)
	} else {
		utils.StartHealthMonitor(nil, database.MongoClient)
	}

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

package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"psicoclinica-server/config"
	deliveryHttp "psicoclinica-server/internal/delivery/http"
	"psicoclinica-server/internal/delivery/http/handler"
	"psicoclinica-server/internal/delivery/http/middleware"
	"psicoclinica-server/internal/infrastructure/cache"
	"psicoclinica-server/internal/infrastructure/database"
	"psicoclinica-server/internal/realtime"
	"psicoclinica-server/internal/repository"
	"psicoclinica-server/internal/service"
	"psicoclinica-server/internal/usecase"
	"psicoclinica-server/pkg/jwt"
	"psicoclinica-server/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Hub         *realtime.Hub
	Server      *http.Server

	hubCancel context.CancelFunc
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server, hub := initializeServer(cfg, db, redisClient)
	app.Server = server
	app.Hub = hub

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, *realtime.Hub) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize realtime hub
	hub := realtime.NewHub(redisClient, log)

	// Initialize repositories
	profileRepo := repository.NewUserProfileRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	messageRepo := repository.NewContactMessageRepository(db)
	actionRepo := repository.NewPsychologistActionRepository(db)

	// Initialize services
	auditService := service.NewAuditService(log, actionRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, profileRepo, jwtService, redisClient, cfg.Clinic)
	availabilityUsecase := usecase.NewAvailabilityUsecase(log, appointmentRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, profileRepo, hub)
	managementUsecase := usecase.NewManagementUsecase(log, appointmentRepo, auditService, hub)
	messageUsecase := usecase.NewMessageUsecase(log, messageRepo, auditService, hub)
	activityUsecase := usecase.NewActivityUsecase(log, actionRepo)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler()
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	availabilityHandler := handler.NewAvailabilityHandler(availabilityUsecase)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase)
	managementHandler := handler.NewManagementHandler(managementUsecase, customValidator)
	messageHandler := handler.NewMessageHandler(messageUsecase, customValidator)
	activityHandler := handler.NewActivityHandler(activityUsecase)
	realtimeHandler := handler.NewRealtimeHandler(hub, log)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		healthHandler,
		authHandler,
		availabilityHandler,
		appointmentHandler,
		managementHandler,
		messageHandler,
		activityHandler,
		realtimeHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, hub
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Pump redis change events into local subscribers
	hubCtx, cancel := context.WithCancel(context.Background())
	app.hubCancel = cancel
	go app.Hub.Run(hubCtx)

	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Stop the realtime pump before its redis client goes away
	if app.hubCancel != nil {
		app.hubCancel()
	}

	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}

package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pharmacare-api/config"
	"pharmacare-api/db/migrations"
	deliveryHttp "pharmacare-api/internal/delivery/http"
	"pharmacare-api/internal/delivery/http/handler"
	"pharmacare-api/internal/delivery/http/middleware"
	"pharmacare-api/internal/infrastructure/cache"
	"pharmacare-api/internal/infrastructure/database"
	"pharmacare-api/internal/infrastructure/storage"
	"pharmacare-api/internal/repository"
	"pharmacare-api/internal/service"
	"pharmacare-api/internal/usecase"
	"pharmacare-api/pkg/jwt"
	"pharmacare-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access database handle: %w", err)
	}
	if err := migrations.Apply(sqlDB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logrus.Info("Database migrations applied")

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	app.Server = initializeServer(cfg, db, redisClient)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	imageStore := storage.NewLocalImageStore(cfg.Uploads)
	log := logrus.StandardLogger()

	// Repositories
	customerRepo := repository.NewCustomerRepository()
	deliveryRepo := repository.NewDeliveryRepository()
	pharmacistRepo := repository.NewPharmacistRepository()
	adminPharmacyRepo := repository.NewAdminPharmacyRepository()
	userRepo := repository.NewUserRepository()
	pharmacyRepo := repository.NewPharmacyRepository()
	productRepo := repository.NewProductRepository()
	categoryRepo := repository.NewProductCategoryRepository()
	prescriptionRepo := repository.NewPrescriptionRepository()
	orderRepo := repository.NewOrderRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Services
	auditService := service.NewAuditService(log, auditLogRepo)

	// Usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, adminPharmacyRepo, customerRepo, deliveryRepo, pharmacistRepo, jwtService, redisClient, auditService)
	customerUsecase := usecase.NewCustomerUsecase(db, log, customerRepo, auditService)
	deliveryUsecase := usecase.NewDeliveryUsecase(db, log, deliveryRepo, auditService)
	pharmacistUsecase := usecase.NewPharmacistUsecase(db, log, pharmacistRepo, pharmacyRepo)
	adminPharmacyUsecase := usecase.NewAdminPharmacyUsecase(db, log, adminPharmacyRepo, pharmacyRepo)
	pharmacyUsecase := usecase.NewPharmacyUsecase(db, log, pharmacyRepo, imageStore, auditService)
	productUsecase := usecase.NewProductUsecase(db, log, productRepo, categoryRepo, imageStore)
	categoryUsecase := usecase.NewProductCategoryUsecase(db, log, categoryRepo, imageStore)
	prescriptionUsecase := usecase.NewPrescriptionUsecase(db, log, prescriptionRepo, imageStore)
	orderUsecase := usecase.NewOrderUsecase(db, log, orderRepo, customerRepo, pharmacistRepo, deliveryRepo, productRepo, prescriptionRepo, auditService)
	userUsecase := usecase.NewUserUsecase(db, log, userRepo, adminPharmacyRepo, auditService)
	statsUsecase := usecase.NewStatsUsecase(db, log, customerRepo, deliveryRepo, pharmacyRepo, adminPharmacyRepo, orderRepo, pharmacistRepo, categoryRepo, productRepo)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	customerHandler := handler.NewCustomerHandler(customerUsecase, customValidator)
	deliveryHandler := handler.NewDeliveryHandler(deliveryUsecase, customValidator)
	pharmacistHandler := handler.NewPharmacistHandler(pharmacistUsecase, customValidator)
	adminPharmacyHandler := handler.NewAdminPharmacyHandler(adminPharmacyUsecase, customValidator)
	pharmacyHandler := handler.NewPharmacyHandler(pharmacyUsecase, customValidator)
	productHandler := handler.NewProductHandler(productUsecase, customValidator)
	categoryHandler := handler.NewProductCategoryHandler(categoryUsecase, customValidator)
	prescriptionHandler := handler.NewPrescriptionHandler(prescriptionUsecase, customValidator)
	orderHandler := handler.NewOrderHandler(orderUsecase, customValidator)
	statsHandler := handler.NewStatsHandler(statsUsecase)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)
	userHandler := handler.NewUserHandler(userUsecase, customValidator)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	router := deliveryHttp.NewRouter(
		authHandler,
		customerHandler,
		deliveryHandler,
		pharmacistHandler,
		adminPharmacyHandler,
		pharmacyHandler,
		productHandler,
		categoryHandler,
		prescriptionHandler,
		orderHandler,
		statsHandler,
		auditLogHandler,
		userHandler,
		authMiddleware,
		corsMiddleware,
		cfg.Uploads.Dir,
	)

	return &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.App.Port),
		Handler: router.Setup(),
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}

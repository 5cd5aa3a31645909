// @title Exam Admin API
// @version 1.0
// @description Administration API for organizations, exams and questions.
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"exam-admin/internal/adapter"
	"exam-admin/internal/cache"
	"exam-admin/internal/config"
	"exam-admin/internal/database"
	"exam-admin/internal/domain"
	"exam-admin/internal/handler"
	"exam-admin/internal/logger"
	"exam-admin/internal/middleware"
	"exam-admin/internal/repository"
	"exam-admin/internal/service"
	"exam-admin/internal/validation"

	_ "exam-admin/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	startupTimeout  = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		appLogger.Fatal("Invalid configuration", zap.Error(err))
	}
	dsn, err := cfg.GetDSN()
	if err != nil {
		appLogger.Fatal("Invalid database configuration", zap.Error(err))
	}

	startCtx, cancelStart := context.WithTimeout(context.Background(), startupTimeout)
	defer cancelStart()

	// Connect to database
	db, err := database.NewSQLXPostgresDB(startCtx, dsn, cfg.DB)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Redis is optional; without it aggregates are computed on every request.
	var (
		redisClient  *redis.Client
		cacheAdapter domain.Cache
	)
	if cfg.Redis.Enabled() {
		redisClient, err = cache.NewRedisClient(startCtx, cfg.Redis)
		if err != nil {
			appLogger.Warn("Redis unavailable, continuing without cache", zap.Error(err))
		} else {
			defer redisClient.Close()
			cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
			appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
		}
	}
	responseCache := service.NewResponseCache(cacheAdapter, cfg.Redis.TTL)

	// Initialize repositories
	orgRepository := repository.NewOrganizationRepository(db)
	examRepository := repository.NewExamRepository(db)
	questionRepository := repository.NewQuestionRepository(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	// Initialize services
	validator := validation.NewValidator()
	orgService := service.NewOrganizationService(orgRepository, txManager, validator, responseCache)
	examService := service.NewExamService(examRepository, questionRepository, txManager, validator, responseCache)
	questionService := service.NewQuestionService(questionRepository, validator, responseCache)
	batchService := service.NewBatchService(questionRepository, txManager, responseCache, appLogger)
	statisticsService := service.NewStatisticsService(orgRepository, examRepository, questionRepository, responseCache)
	searchService := service.NewSearchService(questionRepository)

	countMode := domain.ParseCountMode(cfg.Pagination.CountMode)
	appLogger.Info("Services initialized", zap.String("count_mode", string(countMode)))

	// Initialize handlers
	handlers := handler.Handlers{
		Organization: handler.NewOrganizationHandler(orgService, countMode),
		Exam:         handler.NewExamHandler(examService, countMode),
		Question:     handler.NewQuestionHandler(questionService, batchService, statisticsService, countMode),
		Search:       handler.NewSearchHandler(searchService, statisticsService, countMode),
		Health:       handler.NewHealthHandler(db, cacheAdapter),
	}

	app := fiber.New(fiber.Config{
		AppName:      "exam-admin",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.RequestLogger())
	app.Use(middleware.CORS())

	app.Get("/swagger/*", swagger.HandlerDefault)
	handlers.Register(app)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}

package app

import (
	"biotutor_backend/internal/catalog"
	"biotutor_backend/internal/config"
	"biotutor_backend/internal/controller"
	"biotutor_backend/internal/repository"
	"biotutor_backend/internal/service"
	"biotutor_backend/pkg/configwatcher"
	"biotutor_backend/pkg/database"
	"biotutor_backend/pkg/logger"
	"biotutor_backend/pkg/monitoring"
	"biotutor_backend/pkg/security"
	"biotutor_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user            *repository.UserRepository
	completedLesson *repository.CompletedLessonRepository
}

type services struct {
	auth     *service.AuthService
	progress *service.ProgressService
	ai       *service.AIService
	insight  *service.InsightService
	storage  *service.StorageService
}

type controllers struct {
	auth     *controller.AuthController
	lesson   *controller.LessonController
	progress *controller.ProgressController
	chat     *controller.ChatController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:            repository.NewUserRepository(db),
		completedLesson: repository.NewCompletedLessonRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) (*services, error) {
	storage, err := service.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}

	s := &services{
		auth:     service.NewAuthService(repos.user, cfg),
		progress: service.NewProgressService(repos.completedLesson),
		ai:       service.NewAIService(cfg.AI),
		storage:  storage,
	}
	s.insight = service.NewInsightService(s.ai, rdb)

	a.RegisterConfigCallback(func(newCfg *config.Config) {
		s.ai.UpdateConfig(newCfg.AI)
	})

	return s, nil
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth, a.Config.Server.Mode == "release"),
		lesson:   controller.NewLessonController(s.insight, s.storage),
		progress: controller.NewProgressController(s.progress),
		chat:     controller.NewChatController(s.ai),
		health:   controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	if err := catalog.Validate(); err != nil {
		logger.Log.Fatal("Invalid lesson catalog", zap.Error(err))
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services, err := app.initServices(repos, cfg, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("biotutor", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		logger.Log.Info("Configuration reloaded")
		for _, cb := range app.configCallbacks {
			cb(newCfg)
		}
	})

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}

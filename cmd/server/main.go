package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"foundersight/internal/auth"
	"foundersight/internal/cache"
	"foundersight/internal/config"
	cronrunner "foundersight/internal/cron"
	"foundersight/internal/db"
	"foundersight/internal/handler"
	"foundersight/internal/llm"
	"foundersight/internal/logger"
	gormrepository "foundersight/internal/repository/gorm"
	"foundersight/internal/service"

	_ "foundersight/docs"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("FS_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	envOnly := false
	if envOnlyRaw := os.Getenv("FS_ENV_ONLY"); envOnlyRaw != "" {
		envOnly = strings.EqualFold(envOnlyRaw, "true") || envOnlyRaw == "1"
	}

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		panic(err)
	}

	logger, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	dbConn, err := db.Open(cfg.DB)
	if err != nil {
		logger.Fatal("db open failed", zap.Error(err))
	}
	defer db.Close(dbConn)

	if err := db.SetTimezone(dbConn, cfg.DB.Timezone); err != nil {
		logger.Warn("failed to set timezone", zap.Error(err))
	}
	if err := db.AutoMigrate(dbConn); err != nil {
		logger.Fatal("auto-migrate failed", zap.Error(err))
	}

	store := gormrepository.New(dbConn.Gorm)
	llmClient := llm.NewOpenAI(cfg.OpenAI)
	if cfg.OpenAI.APIKey == "" {
		logger.Warn("openai api key not set, prediction and playbook calls will fail")
	}

	playbookCache := initPlaybookCache(cfg.Redis, logger)

	importSvc := &service.MetricsImportService{Repo: store, Logger: logger}
	predictionSvc := &service.PredictionService{
		Repo:   store,
		LLM:    llmClient,
		Model:  cfg.OpenAI.Model,
		Budget: cfg.OpenAI.Prediction,
		Logger: logger,
	}
	playbookSvc := &service.PlaybookService{
		Repo:     store,
		LLM:      llmClient,
		Budget:   cfg.OpenAI.Playbook,
		Cache:    playbookCache,
		CacheTTL: cfg.Redis.TTL,
		Logger:   logger,
	}

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware())
	engine.Use(auth.Middleware(cfg.Auth))
	if cfg.Auth.Disabled {
		logger.Warn("auth disabled, all requests run as the dev user", zap.String("dev_user_id", cfg.Auth.DevUserID))
	}

	healthHandler := &handler.HealthHandler{DB: dbConn.Gorm}
	healthHandler.Register(engine)
	handler.RegisterDocs(engine)

	startupHandler := &handler.StartupHandler{Repo: store}
	startupHandler.Register(engine)
	metricHandler := &handler.MetricHandler{Repo: store, Importer: importSvc, Config: cfg.Importer}
	metricHandler.Register(engine)
	predictionHandler := &handler.PredictionHandler{Repo: store, Service: predictionSvc}
	predictionHandler.Register(engine)
	playbookHandler := &handler.PlaybookHandler{Repo: store, Service: playbookSvc}
	playbookHandler.Register(engine)
	teamHandler := &handler.TeamHandler{Repo: store}
	teamHandler.Register(engine)
	alertHandler := &handler.AlertHandler{Repo: store}
	alertHandler.Register(engine)

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cronRunner := cronrunner.New(logger, ctx)
	if cfg.Alerts.Enabled {
		sweeper := &service.AlertSweepService{
			Repo:                    store,
			Logger:                  logger,
			RunwayThresholdMonths:   cfg.Alerts.RunwayThresholdMonths,
			CriticalThresholdMonths: cfg.Alerts.CriticalThresholdMonths,
		}
		_, err := cronRunner.Add(cfg.Alerts.Sweep, func(ctx context.Context) {
			if err := sweeper.Sweep(ctx); err != nil {
				logger.Warn("alert sweep failed", zap.Error(err))
			}
		})
		if err != nil {
			logger.Warn("cron register alert sweep failed", zap.Error(err))
		}
	}
	cronRunner.Start()
	defer cronRunner.Stop()

	errCh := make(chan error, 2)

	go func() {
		logger.Info("http server starting", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

// initPlaybookCache returns nil when redis is not configured; the
// playbook service treats a nil cache as disabled.
func initPlaybookCache(cfg config.RedisConfig, logger *zap.Logger) cache.Store {
	if cfg.Addr == "" {
		return nil
	}
	store := cache.NewRedisStore(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := store.Client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, playbook cache disabled", zap.Error(err))
		return nil
	}
	logger.Info("redis connected", zap.String("addr", cfg.Addr))
	return store
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/gilby125/trip-planner-api/api"
	"github.com/gilby125/trip-planner-api/config"
	"github.com/gilby125/trip-planner-api/db"
	"github.com/gilby125/trip-planner-api/pkg/buildinfo"
	"github.com/gilby125/trip-planner-api/pkg/cache"
	"github.com/gilby125/trip-planner-api/pkg/health"
	"github.com/gilby125/trip-planner-api/pkg/logger"
	"github.com/gilby125/trip-planner-api/pkg/notify"
	"github.com/gilby125/trip-planner-api/ref"
	"github.com/gilby125/trip-planner-api/schedule"
	"github.com/gilby125/trip-planner-api/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(err, "Failed to load configuration")
	}
	logger.Init(logger.Config{Level: cfg.LoggingConfig.Level, Format: cfg.LoggingConfig.Format})

	postgresDB, err := db.NewPostgresDB(cfg.PostgresConfig)
	if err != nil {
		logger.Fatal(err, "Failed to connect to PostgreSQL")
	}
	defer postgresDB.Close()

	if cfg.InitSchema {
		if err := postgresDB.InitSchema(); err != nil {
			logger.Fatal(err, "Failed to initialize PostgreSQL schema")
		}
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisConfig.Host + ":" + cfg.RedisConfig.Port,
		Password: cfg.RedisConfig.Password,
		DB:       cfg.RedisConfig.DB,
	})
	defer redisClient.Close()

	cacheManager := cache.NewCacheManager(cache.NewRedisCache(redisClient, "tripplanner"))

	index := ref.NewIndex()
	session := schedule.NewSession(cfg.AmadeusConfig)
	if !session.Authorized() {
		logger.Warn("Schedule API credentials not set; flight lookups will fail until configured")
	}

	healthChecker := health.NewHealthChecker(buildinfo.Version)
	healthChecker.AddChecker(&health.PostgresChecker{DB: postgresDB, Name: "postgres"})
	healthChecker.AddChecker(&health.RedisChecker{Client: redisClient, Name: "redis"})
	healthChecker.AddChecker(&health.ScheduleAPIChecker{Session: session, Name: "schedule_api"})

	notifier := notify.NewNTFYClient(notify.NTFYConfig{
		ServerURL: cfg.NTFYConfig.ServerURL,
		Topic:     cfg.NTFYConfig.Topic,
		Username:  cfg.NTFYConfig.Username,
		Password:  cfg.NTFYConfig.Password,
		Enabled:   cfg.NTFYConfig.Enabled,
	})

	if cfg.ReminderEnabled {
		reminder := worker.NewReminderWorker(postgresDB, notifier, cfg.ReminderConfig)
		if err := reminder.Start(); err != nil {
			logger.Fatal(err, "Failed to start reminder worker")
		}
		defer reminder.Stop()
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	api.RegisterRoutes(router, api.Deps{
		Store:   postgresDB,
		Session: session,
		Index:   index,
		Cache:   cacheManager,
		Health:  healthChecker,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.WithField("port", cfg.Port).Info("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal(err, "Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal(err, "Server forced to shutdown")
	}

	logger.Info("Server exited")
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/app"
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	"go-portfolio-backend/internal/repository/sqlstore"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/database"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

//go:generate swag init -d ../../ -g cmd/api/main.go -o ../../docs --outputTypes go,json

// @title           Portfolio API
// @version         1.0
// @description     JSON CRUD API behind the portfolio landing page.
// @host            localhost:3000
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port, "driver", cfg.DBDriver)

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	ctx := context.Background()

	// 3. Setup Database
	pool := database.DefaultPoolConfig()
	pool.MaxConns = int32(cfg.DBMaxConns)
	pool.MinConns = int32(cfg.DBMinConns)
	pool.SimpleProtocol = cfg.DBSimpleProtocol

	db, err := database.Connect(ctx, database.Dialect(cfg.DBDriver), cfg.DBUrl, pool)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// 4. Schema and seed. A failed seed leaves the server usable.
	if err := sqlstore.EnsureSchema(ctx, db); err != nil {
		logger.Log.Error("Failed to create schema", "error", err)
		db.Close()
		os.Exit(1)
	}
	if cfg.SeedEnabled {
		seedDatabase(ctx, db, cfg.SeedFile)
	}

	// 5. Setup Redis (optional)
	var redisClient *goredis.Client
	if cfg.RedisURL != "" {
		redisClient, err = redis.NewClient(ctx, redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
		if err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to memory", "error", err)
		} else {
			defer redisClient.Close()
		}
	}

	// 6. Setup UseCases
	sources := app.NewSources(db)
	portfolioUC := usecase.NewPortfolioUsecase(sources)
	healthUC := usecase.NewHealthUsecase(db)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		Resources:   sources,
		PortfolioUC: portfolioUC,
		HealthUC:    healthUC,
		Config:      cfg,
		Redis:       redisClient,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Info("Listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

func seedDatabase(ctx context.Context, db database.Gateway, seedFile string) {
	data, err := sqlstore.LoadSeedData(seedFile)
	if err != nil {
		logger.Log.Warn("Seed data unavailable", "error", err)
		return
	}

	inserted, err := sqlstore.NewSeeder(db, data).Seed(ctx)
	for table, n := range inserted {
		logger.Log.Info("Seeded table", "table", table, "rows", n)
	}
	if err != nil {
		logger.Log.Warn("Seeding incomplete", "error", err)
	}
}

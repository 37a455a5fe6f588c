package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/harentsoaR/primelab-api/internal/config"
	"github.com/harentsoaR/primelab-api/internal/handlers"
	"github.com/harentsoaR/primelab-api/internal/logger"
	"github.com/harentsoaR/primelab-api/internal/middleware"
	"github.com/harentsoaR/primelab-api/internal/repository"
	"github.com/harentsoaR/primelab-api/internal/services"
	"github.com/harentsoaR/primelab-api/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zl := logger.New(cfg.LogLevel, cfg.Environment)
	defer zl.Sync()
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).SetStrict(true).SetDeprecationErrors(true)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(serverAPI))
	if err != nil {
		zl.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		zl.Fatal("MongoDB did not answer ping", zap.Error(err))
	}
	db := client.Database(cfg.Database)
	if err := repository.EnsureIndexes(ctx, db); err != nil {
		zl.Fatal("failed to prepare indexes", zap.Error(err))
	}
	zl.Info("connected to MongoDB", zap.String("database", cfg.Database))

	// --- Services and handlers ---
	repos := repository.NewMongo(db)
	payments := services.NewStripePaymentService(cfg.StripeKey)
	tokens := utils.NewTokenService(cfg.TokenSecret)

	h := handlers.NewHandler(repos, payments, tokens, zl)
	h.HealthCheck = func(ctx context.Context) error {
		return client.Ping(ctx, readpref.Primary())
	}

	// --- Gin Router ---
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := gin.New()
	r.Use(middleware.Chain(zl, middleware.NewMetrics(reg))...)
	r.Use(cors.New(corsConfig(cfg.AllowOrigins)))

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	h.RegisterRoutes(r)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		zl.Info("PrimeLab server is running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		zl.Error("failed to disconnect from MongoDB", zap.Error(err))
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

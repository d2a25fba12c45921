package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/akarimov/ordercache/internal/application/service"
	"github.com/akarimov/ordercache/internal/cache"
	"github.com/akarimov/ordercache/internal/config"
	"github.com/akarimov/ordercache/internal/database"
	"github.com/akarimov/ordercache/internal/httpapi"
	"github.com/akarimov/ordercache/internal/kafka"
	"github.com/akarimov/ordercache/internal/observability"
	"github.com/akarimov/ordercache/internal/pkg/breaker"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.Connect(ctx, cfg.DSN())
	if err != nil {
		logger.Fatal("postgres connect", zap.Error(err))
	}
	defer pool.Close()
	ledger := database.New(pool)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Fatal("redis connect", zap.Error(err))
	}
	defer rdb.Close()
	projection := cache.New(rdb, logger)

	metrics := observability.NewInmem(1000)
	svc := service.NewService(ledger, projection, logger, metrics, cfg.SyncLimit)

	// Rebuild the projection from the ledger if the cache is empty;
	// a populated cache makes this a no-op.
	if count, err := svc.SyncCache(ctx); err != nil {
		logger.Warn("startup cache sync failed", zap.Error(err))
	} else {
		logger.Info("cache ready", zap.Int("orders", count))
	}

	brk := breaker.New(cfg.Breaker)
	handler := kafka.NewHandler(svc, brk, cfg.Retry, logger)
	consumer, err := kafka.NewConsumer(cfg.Kafka, handler.Handle, metrics, logger)
	if err != nil {
		logger.Fatal("kafka consumer init", zap.Error(err))
	}
	go func() {
		if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("kafka consumer stopped", zap.Error(err))
		}
	}()

	server := httpapi.New(svc, logger, metrics)
	logger.Info("listening", zap.String("addr", cfg.HTTPAddr))
	if err := server.ListenAndServe(ctx, cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server closed", zap.Error(err))
	}
	logger.Info("server stopped")
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"palantir/internal/commons"
	"palantir/internal/customer"
	"palantir/internal/infrastructure/logger"
	"palantir/internal/infrastructure/metrics"
	"palantir/internal/infrastructure/mysql"
	"palantir/internal/infrastructure/paymentprovider"
	"palantir/internal/notification"
	"palantir/internal/order"
	"palantir/internal/payment"
	"palantir/internal/product"
	"palantir/internal/server"
)

func main() {
	configPath := os.Getenv("PALANTIR_CONFIG")
	if configPath == "" {
		configPath = "internal/config/config.yaml"
	}
	cfg, err := commons.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := mysql.NewConnection(ctx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	if cfg.Database.RunMigrations {
		if err := mysql.RunMigrations(db); err != nil {
			zapLogger.Fatal("running migrations", zap.Error(err))
		}
		zapLogger.Info("migrations applied")
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		zapLogger.Info("product cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	provider, err := paymentprovider.New(cfg.Payment, zapLogger)
	if err != nil {
		zapLogger.Fatal("creating payment provider", zap.Error(err))
	}
	zapLogger.Info("payment provider ready", zap.String("platform", provider.Platform()))

	productModule := product.NewModule(db, redisClient, cfg.Redis, zapLogger)
	notificationModule := notification.NewModule(db, cfg, m, zapLogger)
	defer func() {
		if err := notificationModule.Close(); err != nil {
			zapLogger.Error("closing notification senders", zap.Error(err))
		}
	}()
	orderModule := order.NewModule(db, cfg, productModule.Service, provider, notificationModule.Sender, m, zapLogger)
	paymentCtrl := payment.NewModule(db, orderModule.Repository, orderModule.StatusUpdate, provider, zapLogger)

	router := server.NewRouter(server.Controllers{
		Product:      productModule.Controller,
		Customer:     customer.NewModule(db, zapLogger),
		Order:        orderModule.Controller,
		Payment:      paymentCtrl,
		Notification: notificationModule.Controller,
	}, db, m, zapLogger)

	if err := server.New(cfg.Server, router, zapLogger).Run(ctx); err != nil {
		zapLogger.Error("server stopped with error", zap.Error(err))
		return
	}
	zapLogger.Info("server stopped gracefully")
}

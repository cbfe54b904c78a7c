package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"webshop-backend/internal/config"
	"webshop-backend/internal/kafka"
	"webshop-backend/internal/logger"
	"webshop-backend/internal/server"
	"webshop-backend/internal/storage"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := logger.New()
	defer func() { _ = log.Sync() }()

	cfg := config.Load()

	products := storage.NewProductStore(cfg.ProductsFile())
	orders := storage.NewOrderStore(cfg.OrdersFile())
	admin := storage.NewAdminStore(cfg.AdminFile())

	var producer kafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		log.Info("publishing audit log to kafka",
			zap.Strings("brokers", cfg.KafkaBrokers),
			zap.String("topic", cfg.AuditTopic))
		producer = kafka.NewWriterProducer(cfg.KafkaBrokers, cfg.AuditTopic)
	} else {
		producer = kafka.NewConsoleProducer(log.Named("audit"))
	}

	srv := server.New(products, orders, admin, producer, log, cfg.CORSOrigins)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Run(ctx, cfg.Port)
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("server exited with error", zap.Error(err))
	}
	log.Info("server gracefully stopped")
}

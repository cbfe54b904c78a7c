package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"webshop-backend/internal/config"
	"webshop-backend/internal/logger"
)

const groupID = "audit-log-consumer-group"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := logger.New()
	defer func() { _ = log.Sync() }()

	cfg := config.Load()
	brokers := cfg.KafkaBrokers
	if len(brokers) == 0 {
		brokers = []string{"localhost:9092"}
	}

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		GroupID:        groupID,
		Topic:          cfg.AuditTopic,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})
	defer func() {
		if err := r.Close(); err != nil {
			log.Error("error closing kafka reader", zap.Error(err))
		}
	}()

	log.Info("consumer connected",
		zap.String("topic", cfg.AuditTopic),
		zap.Strings("brokers", brokers))

	for {
		m, err := r.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("shutdown signal received, stopping consumer")
				return
			}
			log.Error("error reading message", zap.Error(err))
			time.Sleep(5 * time.Second)
			continue
		}

		log.Info("audit entry",
			zap.Time("timestamp", m.Time),
			zap.Int("partition", m.Partition),
			zap.Int64("offset", m.Offset),
			zap.ByteString("key", m.Key),
			zap.ByteString("value", m.Value))
	}
}

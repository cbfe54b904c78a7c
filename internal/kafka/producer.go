package kafka

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Producer interface {
	SendMessage(ctx context.Context, key []byte, value []byte) error
	Close() error
}

// WriterProducer publishes messages to a Kafka topic.
type WriterProducer struct {
	writer *kafka.Writer
}

func NewWriterProducer(brokers []string, topic string) *WriterProducer {
	return &WriterProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: 100 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *WriterProducer) SendMessage(ctx context.Context, key, value []byte) error {
	return p.writer.WriteMessages(ctx, kafka.Message{Key: key, Value: value})
}

func (p *WriterProducer) Close() error {
	return p.writer.Close()
}

// ConsoleProducer is the fallback when no brokers are configured: messages go
// to the process log instead of a topic.
type ConsoleProducer struct {
	logger *zap.Logger
}

func NewConsoleProducer(logger *zap.Logger) *ConsoleProducer {
	return &ConsoleProducer{logger: logger}
}

func (p *ConsoleProducer) SendMessage(ctx context.Context, key, value []byte) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	p.logger.Info("audit entry",
		zap.ByteString("key", key),
		zap.ByteString("value", value),
	)
	return nil
}

func (p *ConsoleProducer) Close() error { return nil }

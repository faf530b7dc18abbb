package util

import (
	"context"
	"fmt"
	"time"

	"atakuafor/pkg/metrics"

	"github.com/segmentio/kafka-go"
)

// KafkaProducer publishes salon domain events (contact messages,
// reviews). Events are advisory: callers treat publish failures as
// non-fatal.
type KafkaProducer struct {
	writer *kafka.Writer
	topic  string
}

// NewKafkaProducer creates a producer for the given brokers and topic.
func NewKafkaProducer(brokers []string, topic string) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
		// events are produced on the request path, keep batching short
		BatchSize:    100,
		BatchTimeout: 100 * time.Millisecond,
	}

	return &KafkaProducer{writer: writer, topic: topic}
}

// PublishMessage writes one event. The key is the record id, which keeps
// events for the same record ordered within a partition.
func (p *KafkaProducer) PublishMessage(ctx context.Context, key string, value []byte) error {
	timer := metrics.NewKafkaProduceTimer(metricsService, p.topic)

	message := kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		timer.Error()
		return fmt.Errorf("failed to write message to kafka: %w", err)
	}

	timer.Success()
	return nil
}

// Close flushes pending messages and releases the writer.
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}

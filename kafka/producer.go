package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pr-poehali-dev/office-supply-webshop/logger"
	"github.com/pr-poehali-dev/office-supply-webshop/models"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Producer publishes order events to a single topic.
type Producer struct {
	writer *kafka.Writer
	topic  string
}

// NewProducer accepts a comma separated broker list.
func NewProducer(brokers, topic string) (*Producer, error) {
	var addrs []string
	for _, b := range strings.Split(brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			addrs = append(addrs, b)
		}
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("kafka: no brokers configured")
	}
	if topic == "" {
		return nil, fmt.Errorf("kafka: no topic configured")
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(addrs...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &Producer{writer: writer, topic: topic}, nil
}

// PublishOrderPlaced keys messages by dealer INN so one dealer's orders stay ordered.
func (p *Producer) PublishOrderPlaced(ctx context.Context, event models.OrderPlacedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.Dealer.INN),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(event.Event)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.From(ctx).Error("failed to send Kafka message", zap.String("topic", p.topic), zap.String("order_id", event.OrderID), zap.Error(err))
		return err
	}
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

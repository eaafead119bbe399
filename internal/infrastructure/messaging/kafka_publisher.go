package messaging

import (
	"context"
	"encoding/json"

	"mpbridge/internal/domain/entities"
	"mpbridge/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Writer is the part of kafka.Writer the publisher uses.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaEventPublisher writes each normalized event as JSON, keyed by the
// resource id so all events of one payment land on the same partition.
type KafkaEventPublisher struct {
	writer Writer
	log    *zap.Logger
}

var _ interfaces.IEventPublisher = (*KafkaEventPublisher)(nil)

func NewKafkaEventPublisher(brokers []string, topic string, logger *zap.Logger) *KafkaEventPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
	return NewKafkaEventPublisherWithWriter(w, logger)
}

func NewKafkaEventPublisherWithWriter(w Writer, logger *zap.Logger) *KafkaEventPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KafkaEventPublisher{writer: w, log: logger}
}

func (p *KafkaEventPublisher) Publish(ctx context.Context, event entities.Event) error {
	b, err := json.Marshal(event)
	if err != nil {
		p.log.Error("[webhook][kafka] marshal failed", zap.String("event_id", event.ID), zap.Error(err))
		return err
	}
	msg := kafka.Message{
		Key:   []byte(event.ID),
		Value: b,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.log.Error("[webhook][kafka] write failed", zap.String("event_id", event.ID), zap.Error(err))
		return err
	}
	p.log.Debug("[webhook][kafka] event published", zap.String("event_id", event.ID), zap.String("event_type", string(event.Type)))
	return nil
}

func (p *KafkaEventPublisher) Close() error {
	return p.writer.Close()
}

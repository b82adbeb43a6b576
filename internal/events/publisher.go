package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// PublisherConfig selects and configures the event transport
type PublisherConfig struct {
	Brokers     []string
	TopicPrefix string
}

// WatermillPublisher publishes events as JSON watermill messages on
// "<prefix>.<event type>" topics.
type WatermillPublisher struct {
	publisher   message.Publisher
	topicPrefix string
	logger      *slog.Logger
}

// NewWatermillPublisher uses Kafka when brokers are configured and an
// in-process go channel pub/sub otherwise. The go channel has no subscribers
// outside this process, so without brokers events are effectively dropped.
func NewWatermillPublisher(cfg PublisherConfig, logger *slog.Logger) (*WatermillPublisher, error) {
	wmLogger := watermill.NewSlogLogger(logger)

	var pub message.Publisher
	if len(cfg.Brokers) > 0 {
		kp, err := kafka.NewPublisher(kafka.PublisherConfig{
			Brokers:   cfg.Brokers,
			Marshaler: kafka.DefaultMarshaler{},
		}, wmLogger)
		if err != nil {
			return nil, fmt.Errorf("failed to create kafka publisher: %w", err)
		}
		pub = kp
		logger.Info("Event publisher initialized", "transport", "kafka", "brokers", strings.Join(cfg.Brokers, ","))
	} else {
		pub = gochannel.NewGoChannel(gochannel.Config{}, wmLogger)
		logger.Warn("Event publisher initialized in-process only, events are not delivered outside this process",
			"transport", "gochannel")
	}

	return NewPublisher(pub, cfg.TopicPrefix, logger), nil
}

// NewPublisher wraps an existing watermill publisher
func NewPublisher(pub message.Publisher, topicPrefix string, logger *slog.Logger) *WatermillPublisher {
	return &WatermillPublisher{
		publisher:   pub,
		topicPrefix: topicPrefix,
		logger:      logger,
	}
}

// Topic returns the topic an event type is published on
func (p *WatermillPublisher) Topic(eventType EventType) string {
	if p.topicPrefix == "" {
		return string(eventType)
	}
	return p.topicPrefix + "." + string(eventType)
}

func (p *WatermillPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(event.ID, payload)
	msg.Metadata.Set("event_type", string(event.Type))
	msg.SetContext(ctx)

	topic := p.Topic(event.Type)
	if err := p.publisher.Publish(topic, msg); err != nil {
		return fmt.Errorf("failed to publish event to %s: %w", topic, err)
	}

	p.logger.DebugContext(ctx, "Event published", "event_id", event.ID, "type", event.Type, "topic", topic)
	return nil
}

func (p *WatermillPublisher) Close() error {
	return p.publisher.Close()
}

// PublishSafe publishes an event and logs failures instead of returning them
func PublishSafe(ctx context.Context, publisher EventPublisher, logger *slog.Logger, eventType EventType, data map[string]interface{}) {
	if publisher == nil {
		return
	}
	event := NewEvent(eventType, data)
	if err := publisher.Publish(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish event", "error", err, "type", eventType, "event_id", event.ID)
	}
}

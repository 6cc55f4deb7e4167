package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker"

	"vigil/contexts/moderation-safety/queue-engine/ports"
	sharedevents "vigil/internal/shared/events"
)

// PublishRecorder receives publish outcomes for export. Implementations must
// tolerate concurrent calls.
type PublishRecorder interface {
	RecordEventPublished(topic string)
	RecordPublishFailure(topic string)
}

// KafkaPublisher delivers queue lifecycle events to an external broker.
// Publishes run through a circuit breaker so a dead broker fails fast instead
// of stalling every outbox relay cycle, and transient write errors are retried
// with exponential backoff.
type KafkaPublisher struct {
	writer   *kafka.Writer
	breaker  *gobreaker.CircuitBreaker
	recorder PublishRecorder
	logger   *slog.Logger
}

func NewKafkaPublisher(brokers []string, recorder PublishRecorder, logger *slog.Logger) *KafkaPublisher {
	settings := gobreaker.Settings{
		Name:        "queue-events-publisher",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if logger != nil {
				logger.Warn("publisher circuit state change",
					"event", "kafka_breaker_state_change",
					"module", "internal/platform/messaging",
					"layer", "platform",
					"breaker", name,
					"from", from.String(),
					"to", to.String(),
				)
			}
		},
	}

	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
		breaker:  gobreaker.NewCircuitBreaker(settings),
		recorder: recorder,
		logger:   logger,
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, topic string, event ports.EventEnvelope) error {
	// Contract violations are producer bugs, not broker faults: fail before
	// spending breaker or retry budget on them.
	if err := sharedevents.Validate(event); err != nil {
		if p.recorder != nil {
			p.recorder.RecordPublishFailure(topic)
		}
		return err
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event %s: %w", event.EventID, err)
	}

	operation := func() error {
		_, execErr := p.breaker.Execute(func() (interface{}, error) {
			return nil, p.writer.WriteMessages(ctx, kafka.Message{
				Topic: topic,
				Key:   []byte(event.PartitionKey),
				Value: payload,
			})
		})
		if errors.Is(execErr, gobreaker.ErrOpenState) || errors.Is(execErr, gobreaker.ErrTooManyRequests) {
			// Retrying while the circuit is open only burns the backoff window.
			return backoff.Permanent(execErr)
		}
		return execErr
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = 15 * time.Second

	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		if p.recorder != nil {
			p.recorder.RecordPublishFailure(topic)
		}
		if p.logger != nil {
			p.logger.Error("event publish failed",
				"event", "kafka_publish_failed",
				"module", "internal/platform/messaging",
				"layer", "platform",
				"topic", topic,
				"event_id", event.EventID,
				"event_type", event.EventType,
				"error", err.Error(),
			)
		}
		return err
	}

	if p.recorder != nil {
		p.recorder.RecordEventPublished(topic)
	}
	if p.logger != nil {
		p.logger.Info("event published",
			"event", "kafka_publish",
			"module", "internal/platform/messaging",
			"layer", "platform",
			"topic", topic,
			"event_id", event.EventID,
			"event_type", event.EventType,
		)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

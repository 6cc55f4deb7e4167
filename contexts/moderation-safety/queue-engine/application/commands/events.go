package commands

import (
	"encoding/json"
	"time"

	"vigil/contexts/moderation-safety/queue-engine/ports"
)

const (
	itemEnqueuedEventType  = "moderation.queue.item.enqueued"
	itemResolvedEventType  = "moderation.queue.item.resolved"
	itemEscalatedEventType = "moderation.queue.item.escalated"
)

func newQueueEnvelope(
	eventID string,
	eventType string,
	queueItemID string,
	occurredAt time.Time,
	data map[string]any,
) (ports.EventEnvelope, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return ports.EventEnvelope{}, err
	}
	return ports.EventEnvelope{
		EventID:          eventID,
		EventType:        eventType,
		OccurredAt:       occurredAt.UTC(),
		SourceService:    "queue-engine",
		TraceID:          eventID,
		SchemaVersion:    1,
		PartitionKeyPath: "queue_item_id",
		PartitionKey:     queueItemID,
		Data:             payload,
	}, nil
}

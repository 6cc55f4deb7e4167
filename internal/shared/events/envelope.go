package events

import (
	"errors"
	"fmt"
	"strings"

	v1 "vigil/contracts/gen/events/v1"
)

// ErrMalformedEnvelope marks envelopes that violate the canonical contract.
// Publishers reject these before touching a broker so bad payloads never
// reach downstream consumers.
var ErrMalformedEnvelope = errors.New("malformed event envelope")

// Validate checks an envelope against the canonical event contract shared by
// every publisher in this repository.
func Validate(envelope v1.Envelope) error {
	var missing []string
	if strings.TrimSpace(envelope.EventID) == "" {
		missing = append(missing, "event_id")
	}
	if strings.TrimSpace(envelope.EventType) == "" {
		missing = append(missing, "event_type")
	}
	if envelope.OccurredAt.IsZero() {
		missing = append(missing, "occurred_at")
	}
	if strings.TrimSpace(envelope.SourceService) == "" {
		missing = append(missing, "source_service")
	}
	if strings.TrimSpace(envelope.TraceID) == "" {
		missing = append(missing, "trace_id")
	}
	if strings.TrimSpace(envelope.PartitionKeyPath) == "" {
		missing = append(missing, "partition_key_path")
	}
	if strings.TrimSpace(envelope.PartitionKey) == "" {
		missing = append(missing, "partition_key")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrMalformedEnvelope, strings.Join(missing, ", "))
	}
	if envelope.SchemaVersion < 1 {
		return fmt.Errorf("%w: schema_version must be >= 1, got %d", ErrMalformedEnvelope, envelope.SchemaVersion)
	}
	if len(envelope.Data) == 0 {
		return fmt.Errorf("%w: empty data payload", ErrMalformedEnvelope)
	}
	return nil
}

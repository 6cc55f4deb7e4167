package ports

import (
	"context"
	"time"

	"vigil/contexts/moderation-safety/queue-engine/domain/entities"
	contractsv1 "vigil/contracts/gen/events/v1"
)

// QueueFilter defines read-side filtering/pagination for queue listings.
type QueueFilter struct {
	Status      entities.Status
	ContentType entities.ContentType
	Source      entities.Source
	MinPriority int
	OrderBy     string
	Limit       int
	Offset      int
}

// NextRequest narrows candidate selection for an atomic get-next claim.
type NextRequest struct {
	ModeratorID   string
	ContentType   entities.ContentType
	MinEscalation int
	MaxEscalation int
	Now           time.Time
}

// ClaimRequest targets one specific item for an exclusive claim.
type ClaimRequest struct {
	ItemID      string
	ModeratorID string
	Now         time.Time
}

// ReleaseRequest returns a held item to the open pool.
type ReleaseRequest struct {
	ItemID      string
	ModeratorID string
	Reason      string
	Now         time.Time
}

// ResolveRequest applies a terminal decision to a held item. Violation is
// pre-built by the use case and nil when no ledger entry applies.
type ResolveRequest struct {
	ItemID      string
	ModeratorID string
	Action      entities.ResolutionAction
	Notes       string
	Violation   *entities.ViolationRecord
	Event       EventEnvelope
	Now         time.Time
}

// EscalateRequest raises an item to a target escalation level and returns it
// to the open pool.
type EscalateRequest struct {
	ItemID      string
	ModeratorID string
	Reason      string
	TargetLevel int
	Event       EventEnvelope
	Now         time.Time
}

// AuditInput carries caller-supplied fields for the transition audit row.
// Repositories snapshot previous/new state inside the same write.
type AuditInput struct {
	Action        entities.AuditAction
	ActionBy      string
	Reason        string
	Notes         string
	ViolationType string
	GuidelineRef  string
}

// QueueStats is the on-demand aggregate view served to dashboards.
type QueueStats struct {
	StatusCounts          map[entities.Status]int
	ResolvedLast24h       int
	Overdue               int
	MeanResolutionSeconds float64
	HighEscalation        int
	PendingByContentType  map[entities.ContentType]int
}

// QueueRepository owns queue item persistence. Every mutating method is a
// guarded write: preconditions are evaluated against the live row under the
// storage layer's native isolation, one audit row is appended per applied
// transition, and concurrent losers receive a classified domain error rather
// than a second success.
type QueueRepository interface {
	// CreateItem must atomically persist the item and its outbox event.
	CreateItem(ctx context.Context, item entities.QueueItem, event EventEnvelope) error
	GetItem(ctx context.Context, itemID string) (entities.QueueItem, error)
	ListItems(ctx context.Context, filter QueueFilter) ([]entities.QueueItem, int, error)
	ClaimItem(ctx context.Context, req ClaimRequest, audit AuditInput) (entities.QueueItem, error)
	// ClaimNext selects the best open candidate under a skip-locked read and
	// claims it in the same transaction.
	ClaimNext(ctx context.Context, req NextRequest, audit AuditInput) (entities.QueueItem, error)
	ReleaseItem(ctx context.Context, req ReleaseRequest, audit AuditInput) (entities.QueueItem, error)
	ResolveItem(ctx context.Context, req ResolveRequest, audit AuditInput) (entities.QueueItem, error)
	EscalateItem(ctx context.Context, req EscalateRequest, audit AuditInput) (entities.QueueItem, error)
	ListActions(ctx context.Context, itemID string) ([]entities.ModerationAction, error)
	// ReleaseStaleClaims sweeps in_review rows assigned before the cutoff back
	// to pending, auditing each release. Returns the number of rows released.
	ReleaseStaleClaims(ctx context.Context, cutoff time.Time, audit AuditInput, now time.Time) (int, error)
	Stats(ctx context.Context, now time.Time) (QueueStats, error)
}

// ViolationRepository reads the append-only violation ledger.
type ViolationRepository interface {
	CountViolations(ctx context.Context, violator entities.ViolatorRef) (int, error)
	ListViolations(ctx context.Context, violator entities.ViolatorRef, limit int, offset int) ([]entities.ViolationRecord, int, error)
}

// NoteRepository persists moderator annotations.
type NoteRepository interface {
	AddNote(ctx context.Context, note entities.ModeratorNote) error
	ListNotes(ctx context.Context, subjectType entities.NoteSubjectType, subjectID string) ([]entities.ModeratorNote, error)
}

// IdempotencyRecord captures dedupe metadata for mutating requests.
type IdempotencyRecord struct {
	Key         string
	RequestHash string
	ItemID      string
	ExpiresAt   time.Time
}

// IdempotencyStore abstracts idempotency persistence with TTL handling.
type IdempotencyStore interface {
	Get(ctx context.Context, key string, now time.Time) (IdempotencyRecord, bool, error)
	Put(ctx context.Context, record IdempotencyRecord) error
}

// ViolationCountCache is an optional read-through cache in front of the
// violation ledger count. A nil cache disables caching entirely.
type ViolationCountCache interface {
	GetCount(ctx context.Context, violator entities.ViolatorRef) (int, bool, error)
	SetCount(ctx context.Context, violator entities.ViolatorRef, count int, ttl time.Duration) error
	InvalidateCount(ctx context.Context, violator entities.ViolatorRef) error
}

// Clock allows deterministic testing of SLA/TTL rules.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts item/event identifier generation.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// OutboxMessage is a row ready to relay from the module outbox.
type OutboxMessage struct {
	OutboxID     string
	EventType    string
	PartitionKey string
	Payload      []byte
	CreatedAt    time.Time
}

// OutboxRepository models worker-side outbox polling/acknowledgement.
type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxSent(ctx context.Context, outboxID string, sentAt time.Time) error
}

// EventEnvelope reuses the canonical cross-runtime envelope contract.
type EventEnvelope = contractsv1.Envelope

// EventPublisher publishes canonical envelopes to a topic.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}

// StatsRecorder receives periodic queue aggregates for export. Implementations
// live outside the context boundary (metrics registries, log sinks).
type StatsRecorder interface {
	RecordQueueStats(stats QueueStats)
}

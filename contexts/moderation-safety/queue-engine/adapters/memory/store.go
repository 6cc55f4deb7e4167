package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	application "vigil/contexts/moderation-safety/queue-engine/application"
	"vigil/contexts/moderation-safety/queue-engine/domain/entities"
	domainerrors "vigil/contexts/moderation-safety/queue-engine/domain/errors"
	"vigil/contexts/moderation-safety/queue-engine/domain/services"
	"vigil/contexts/moderation-safety/queue-engine/ports"
)

// Store is an in-memory adapter implementing queue-engine ports for local
// runtime and tests. It is not intended as production persistence.
type Store struct {
	mu          sync.RWMutex
	items       map[string]entities.QueueItem
	actions     map[string][]entities.ModerationAction
	violations  []entities.ViolationRecord
	notes       []entities.ModeratorNote
	idempotency map[string]ports.IdempotencyRecord
	outbox      map[string]ports.OutboxMessage
	outboxOrder []string
	outboxSent  map[string]time.Time
	contendNext int
	sequence    uint64
	logger      *slog.Logger
}

func NewStore(logger *slog.Logger) *Store {
	return &Store{
		items:       make(map[string]entities.QueueItem),
		actions:     make(map[string][]entities.ModerationAction),
		violations:  make([]entities.ViolationRecord, 0),
		notes:       make([]entities.ModeratorNote, 0),
		idempotency: make(map[string]ports.IdempotencyRecord),
		outbox:      make(map[string]ports.OutboxMessage),
		outboxOrder: make([]string, 0),
		outboxSent:  make(map[string]time.Time),
		logger:      application.ResolveLogger(logger),
	}
}

func (s *Store) CreateItem(_ context.Context, item entities.QueueItem, event ports.EventEnvelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A single mutex critical section approximates transactional semantics for
	// tests: item insert and outbox append succeed/fail together.
	if _, ok := s.items[item.ID]; ok {
		return domainerrors.ErrRepositoryInvariantBroke
	}
	if err := s.appendOutboxLocked(event); err != nil {
		return err
	}
	s.items[item.ID] = copyItem(item)

	s.logger.Info("queue item and outbox persisted in memory store",
		"event", "memory_create_item_with_outbox",
		"module", "moderation-safety/queue-engine",
		"layer", "adapter",
		"item_id", item.ID,
		"content_id", item.ContentID,
		"outbox_event_id", event.EventID,
	)
	return nil
}

func (s *Store) GetItem(_ context.Context, itemID string) (entities.QueueItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[itemID]
	if !ok {
		return entities.QueueItem{}, domainerrors.ErrItemNotFound
	}
	return copyItem(item), nil
}

func (s *Store) ListItems(_ context.Context, filter ports.QueueFilter) ([]entities.QueueItem, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := make([]entities.QueueItem, 0, len(s.items))
	for _, item := range s.items {
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		if filter.ContentType != "" && item.ContentType != filter.ContentType {
			continue
		}
		if filter.Source != "" && item.Source != filter.Source {
			continue
		}
		if filter.MinPriority > 0 && item.PriorityScore < filter.MinPriority {
			continue
		}
		filtered = append(filtered, copyItem(item))
	}

	if filter.OrderBy == "created_at" {
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
		})
	} else {
		sort.SliceStable(filtered, func(i, j int) bool {
			if filtered[i].PriorityScore != filtered[j].PriorityScore {
				return filtered[i].PriorityScore > filtered[j].PriorityScore
			}
			return filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
		})
	}

	total := len(filtered)
	if filter.Offset >= total {
		return []entities.QueueItem{}, total, nil
	}
	end := filter.Offset + filter.Limit
	if filter.Limit <= 0 || end > total {
		end = total
	}
	return filtered[filter.Offset:end], total, nil
}

func (s *Store) ClaimItem(_ context.Context, req ports.ClaimRequest, audit ports.AuditInput) (entities.QueueItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[req.ItemID]
	if !ok {
		return entities.QueueItem{}, domainerrors.ErrItemNotFound
	}
	if !item.Claimable() {
		return entities.QueueItem{}, claimConflict(item)
	}
	return s.applyClaimLocked(item, req.ModeratorID, audit, req.Now)
}

func (s *Store) ClaimNext(_ context.Context, req ports.NextRequest, audit ports.AuditInput) (entities.QueueItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	candidates := make([]entities.QueueItem, 0)
	filter := services.NextFilter{
		ContentType:   req.ContentType,
		MinEscalation: req.MinEscalation,
		MaxEscalation: req.MaxEscalation,
	}
	for _, item := range s.items {
		if services.MatchesNextFilter(item, filter) {
			candidates = append(candidates, item)
		}
	}
	if len(candidates) == 0 {
		return entities.QueueItem{}, domainerrors.ErrNoItemsAvailable
	}

	// Simulated contention: the selected candidate is treated as lost to a
	// concurrent claimer, mirroring a skip-locked row disappearing between
	// selection and write.
	if s.contendNext > 0 {
		s.contendNext--
		return entities.QueueItem{}, domainerrors.ErrClaimContention
	}

	services.SortCandidates(candidates)
	return s.applyClaimLocked(s.items[candidates[0].ID], req.ModeratorID, audit, req.Now)
}

func (s *Store) ReleaseItem(_ context.Context, req ports.ReleaseRequest, audit ports.AuditInput) (entities.QueueItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[req.ItemID]
	if !ok {
		return entities.QueueItem{}, domainerrors.ErrItemNotFound
	}
	if item.Status != entities.StatusInReview {
		return entities.QueueItem{}, stateConflictOf(item, domainerrors.ErrInvalidStateTransition)
	}
	if item.AssignedTo != req.ModeratorID {
		return entities.QueueItem{}, stateConflictOf(item, domainerrors.ErrNotAssignee)
	}

	previous := entities.SnapshotOf(item)
	now := req.Now.UTC()
	item.Status = entities.StatusPending
	item.AssignedTo = ""
	item.AssignedAt = nil
	item.UpdatedAt = now

	if err := s.appendActionLocked(item, audit, previous, now); err != nil {
		return entities.QueueItem{}, err
	}
	s.items[item.ID] = copyItem(item)
	return copyItem(item), nil
}

func (s *Store) ResolveItem(_ context.Context, req ports.ResolveRequest, audit ports.AuditInput) (entities.QueueItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[req.ItemID]
	if !ok {
		return entities.QueueItem{}, domainerrors.ErrItemNotFound
	}
	if item.Status != entities.StatusInReview {
		return entities.QueueItem{}, stateConflictOf(item, domainerrors.ErrInvalidStateTransition)
	}
	if item.AssignedTo != req.ModeratorID {
		return entities.QueueItem{}, stateConflictOf(item, domainerrors.ErrNotAssignee)
	}

	previous := entities.SnapshotOf(item)
	now := req.Now.UTC()
	item.Status = entities.StatusResolved
	item.ResolutionAction = req.Action
	item.ResolutionNotes = req.Notes
	item.ResolvedAt = &now
	item.AssignedTo = ""
	item.AssignedAt = nil
	item.UpdatedAt = now

	if err := s.appendActionLocked(item, audit, previous, now); err != nil {
		return entities.QueueItem{}, err
	}
	if req.Violation != nil {
		s.violations = append(s.violations, *req.Violation)
	}
	if err := s.appendOutboxLocked(req.Event); err != nil {
		return entities.QueueItem{}, err
	}
	s.items[item.ID] = copyItem(item)
	return copyItem(item), nil
}

func (s *Store) EscalateItem(_ context.Context, req ports.EscalateRequest, audit ports.AuditInput) (entities.QueueItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[req.ItemID]
	if !ok {
		return entities.QueueItem{}, domainerrors.ErrItemNotFound
	}
	if !item.Status.Open() {
		return entities.QueueItem{}, stateConflictOf(item, domainerrors.ErrInvalidStateTransition)
	}
	// Guards are re-evaluated against the live row: a concurrent escalation
	// may have already consumed the requested level.
	if item.EscalationLevel >= entities.MaxEscalationLevel || req.TargetLevel > entities.MaxEscalationLevel {
		return entities.QueueItem{}, domainerrors.ErrMaxEscalation
	}
	if req.TargetLevel <= item.EscalationLevel {
		return entities.QueueItem{}, domainerrors.ErrInvalidEscalationLevel
	}

	previous := entities.SnapshotOf(item)
	now := req.Now.UTC()
	item.Status = entities.StatusEscalated
	item.EscalationLevel = req.TargetLevel
	item.EscalationReason = req.Reason
	item.AssignedTo = ""
	item.AssignedAt = nil
	item.PriorityScore = services.BoostForEscalation(item.PriorityScore)
	item.PriorityReasons = append(item.PriorityReasons, services.EscalationReasonTag(req.TargetLevel))
	item.UpdatedAt = now

	if err := s.appendActionLocked(item, audit, previous, now); err != nil {
		return entities.QueueItem{}, err
	}
	if err := s.appendOutboxLocked(req.Event); err != nil {
		return entities.QueueItem{}, err
	}
	s.items[item.ID] = copyItem(item)
	return copyItem(item), nil
}

func (s *Store) ListActions(_ context.Context, itemID string) ([]entities.ModerationAction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.actions[itemID]
	out := make([]entities.ModerationAction, len(history))
	copy(out, history)
	return out, nil
}

func (s *Store) ReleaseStaleClaims(_ context.Context, cutoff time.Time, audit ports.AuditInput, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	released := 0
	at := now.UTC()
	for id, item := range s.items {
		if item.Status != entities.StatusInReview || item.AssignedAt == nil {
			continue
		}
		if !item.AssignedAt.Before(cutoff) {
			continue
		}

		previous := entities.SnapshotOf(item)
		item.Status = entities.StatusPending
		item.AssignedTo = ""
		item.AssignedAt = nil
		item.UpdatedAt = at

		if err := s.appendActionLocked(item, audit, previous, at); err != nil {
			return released, err
		}
		s.items[id] = copyItem(item)
		released++
	}
	return released, nil
}

func (s *Store) Stats(_ context.Context, now time.Time) (ports.QueueStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := ports.QueueStats{
		StatusCounts:         make(map[entities.Status]int),
		PendingByContentType: make(map[entities.ContentType]int),
	}
	dayAgo := now.Add(-24 * time.Hour)
	weekAgo := now.Add(-7 * 24 * time.Hour)
	var resolutionTotal float64
	var resolutionCount int

	for _, item := range s.items {
		stats.StatusCounts[item.Status]++
		if item.Status == entities.StatusPending {
			stats.PendingByContentType[item.ContentType]++
		}
		if item.EscalationLevel >= 2 {
			stats.HighEscalation++
		}
		if (item.Status == entities.StatusPending || item.Status == entities.StatusEscalated) &&
			item.CreatedAt.Before(dayAgo) {
			stats.Overdue++
		}
		if item.ResolvedAt != nil {
			if item.ResolvedAt.After(dayAgo) {
				stats.ResolvedLast24h++
			}
			if item.ResolvedAt.After(weekAgo) {
				resolutionTotal += item.ResolvedAt.Sub(item.CreatedAt).Seconds()
				resolutionCount++
			}
		}
	}
	if resolutionCount > 0 {
		stats.MeanResolutionSeconds = resolutionTotal / float64(resolutionCount)
	}
	return stats, nil
}

func (s *Store) CountViolations(_ context.Context, violator entities.ViolatorRef) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, record := range s.violations {
		if record.ViolatorType == violator.Type && record.ViolatorID == violator.ID {
			count++
		}
	}
	return count, nil
}

func (s *Store) ListViolations(
	_ context.Context,
	violator entities.ViolatorRef,
	limit int,
	offset int,
) ([]entities.ViolationRecord, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]entities.ViolationRecord, 0)
	for _, record := range s.violations {
		if record.ViolatorType == violator.Type && record.ViolatorID == violator.ID {
			matched = append(matched, record)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	if offset >= total {
		return []entities.ViolationRecord{}, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (s *Store) AddNote(_ context.Context, note entities.ModeratorNote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.notes {
		if existing.NoteID == note.NoteID {
			return domainerrors.ErrRepositoryInvariantBroke
		}
	}
	s.notes = append(s.notes, note)
	return nil
}

func (s *Store) ListNotes(
	_ context.Context,
	subjectType entities.NoteSubjectType,
	subjectID string,
) ([]entities.ModeratorNote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]entities.ModeratorNote, 0)
	for _, note := range s.notes {
		if note.SubjectType == subjectType && note.SubjectID == subjectID {
			matched = append(matched, note)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})
	return matched, nil
}

func (s *Store) Get(_ context.Context, key string, now time.Time) (ports.IdempotencyRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.idempotency[key]
	if !ok {
		return ports.IdempotencyRecord{}, false, nil
	}
	// Expired keys are lazily evicted on read.
	if !record.ExpiresAt.IsZero() && now.After(record.ExpiresAt) {
		delete(s.idempotency, key)
		return ports.IdempotencyRecord{}, false, nil
	}
	return record, true, nil
}

func (s *Store) Put(_ context.Context, record ports.IdempotencyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.idempotency[record.Key]; ok {
		if existing.RequestHash != record.RequestHash {
			return domainerrors.ErrIdempotencyKeyConflict
		}
		return nil
	}
	s.idempotency[record.Key] = record
	return nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 100
	}
	messages := make([]ports.OutboxMessage, 0, limit)
	for _, id := range s.outboxOrder {
		if _, sent := s.outboxSent[id]; sent {
			continue
		}
		if msg, ok := s.outbox[id]; ok {
			messages = append(messages, msg)
		}
		if len(messages) >= limit {
			break
		}
	}
	return messages, nil
}

func (s *Store) MarkOutboxSent(_ context.Context, outboxID string, sentAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.outbox[outboxID]; !ok {
		return domainerrors.ErrRepositoryInvariantBroke
	}
	s.outboxSent[outboxID] = sentAt.UTC()
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	value := atomic.AddUint64(&s.sequence, 1)
	return fmt.Sprintf("modq-%d", value), nil
}

// OutboxEvents exposes the full outbox stream for test inspection.
func (s *Store) OutboxEvents() []ports.OutboxMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]ports.OutboxMessage, 0, len(s.outboxOrder))
	for _, id := range s.outboxOrder {
		if evt, ok := s.outbox[id]; ok {
			events = append(events, evt)
		}
	}
	return events
}

// ContendNextClaims makes the next n ClaimNext calls lose their candidate to
// a simulated concurrent claimer. Exposed for retry-path tests.
func (s *Store) ContendNextClaims(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contendNext = n
}

func (s *Store) applyClaimLocked(
	item entities.QueueItem,
	moderatorID string,
	audit ports.AuditInput,
	now time.Time,
) (entities.QueueItem, error) {
	previous := entities.SnapshotOf(item)
	at := now.UTC()
	item.Status = entities.StatusInReview
	item.AssignedTo = moderatorID
	item.AssignedAt = &at
	item.UpdatedAt = at

	if err := s.appendActionLocked(item, audit, previous, at); err != nil {
		return entities.QueueItem{}, err
	}
	s.items[item.ID] = copyItem(item)
	return copyItem(item), nil
}

func (s *Store) appendActionLocked(
	item entities.QueueItem,
	audit ports.AuditInput,
	previous entities.StateSnapshot,
	at time.Time,
) error {
	value := atomic.AddUint64(&s.sequence, 1)
	action, err := entities.NewModerationAction(
		fmt.Sprintf("modq-act-%d", value),
		item,
		audit.Action,
		audit.ActionBy,
		audit.Reason,
		audit.Notes,
		previous,
		entities.SnapshotOf(item),
		at,
	)
	if err != nil {
		return err
	}
	action.ViolationType = audit.ViolationType
	action.GuidelineRef = audit.GuidelineRef
	s.actions[item.ID] = append(s.actions[item.ID], action)
	return nil
}

func (s *Store) appendOutboxLocked(event ports.EventEnvelope) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	s.outbox[event.EventID] = ports.OutboxMessage{
		OutboxID:     event.EventID,
		EventType:    event.EventType,
		PartitionKey: event.PartitionKey,
		Payload:      payload,
		CreatedAt:    event.OccurredAt,
	}
	s.outboxOrder = append(s.outboxOrder, event.EventID)
	return nil
}

func claimConflict(item entities.QueueItem) error {
	if item.Status == entities.StatusInReview && item.AssignedTo != "" {
		return stateConflictOf(item, domainerrors.ErrAlreadyClaimed)
	}
	return stateConflictOf(item, domainerrors.ErrInvalidStateTransition)
}

func stateConflictOf(item entities.QueueItem, kind error) error {
	return &domainerrors.StateConflict{
		Kind:       kind,
		Status:     string(item.Status),
		AssignedTo: item.AssignedTo,
		AssignedAt: item.AssignedAt,
	}
}

func copyItem(item entities.QueueItem) entities.QueueItem {
	out := item
	out.PriorityReasons = append([]string(nil), item.PriorityReasons...)
	return out
}

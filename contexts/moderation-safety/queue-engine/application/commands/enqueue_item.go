package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	application "vigil/contexts/moderation-safety/queue-engine/application"
	"vigil/contexts/moderation-safety/queue-engine/domain/entities"
	domainerrors "vigil/contexts/moderation-safety/queue-engine/domain/errors"
	"vigil/contexts/moderation-safety/queue-engine/domain/services"
	"vigil/contexts/moderation-safety/queue-engine/ports"
)

type EnqueueItemCommand struct {
	ContentType     string
	ContentID       string
	Source          string
	AIConfidence    *float64
	AIFlags         json.RawMessage
	ReportCount     int
	ContentSnapshot entities.ContentSnapshot
	IdempotencyKey  string
}

type EnqueueItemResult struct {
	Item     entities.QueueItem
	Created  bool
	Replayed bool
}

type EnqueueItemUseCase struct {
	Queue             ports.QueueRepository
	Violations        ports.ViolationRepository
	ViolationCache    ports.ViolationCountCache
	Idempotency       ports.IdempotencyStore
	Clock             ports.Clock
	IDGenerator       ports.IDGenerator
	IdempotencyTTL    time.Duration
	ViolationCacheTTL time.Duration
	Logger            *slog.Logger
}

// Execute runs the enqueue workflow in this order:
// 1) idempotency lookup/replay
// 2) violator history lookup (cache-aside over the violation ledger)
// 3) deterministic priority scoring
// 4) atomic item + outbox persistence
// 5) idempotency record write.
func (u EnqueueItemUseCase) Execute(ctx context.Context, cmd EnqueueItemCommand) (EnqueueItemResult, error) {
	logger := application.ResolveLogger(u.Logger)

	contentType := entities.ContentType(cmd.ContentType)
	source := entities.Source(cmd.Source)
	if strings.TrimSpace(cmd.ContentID) == "" || !contentType.Valid() || !source.Valid() {
		return EnqueueItemResult{}, domainerrors.ErrInvalidEnqueueRequest
	}
	if cmd.ReportCount < 0 {
		return EnqueueItemResult{}, domainerrors.ErrInvalidEnqueueRequest
	}
	if cmd.AIConfidence != nil && (*cmd.AIConfidence < 0 || *cmd.AIConfidence > 1) {
		return EnqueueItemResult{}, domainerrors.ErrInvalidEnqueueRequest
	}

	now := u.now()
	idempotencyKey := resolveEnqueueIdempotencyKey(cmd)
	requestHash := hashEnqueueRequest(cmd)

	logger.Info("enqueue item started",
		"event", "enqueue_item_started",
		"module", "moderation-safety/queue-engine",
		"layer", "application",
		"content_type", contentType,
		"content_id", cmd.ContentID,
		"source", source,
		"idempotency_key", idempotencyKey,
	)

	record, found, err := u.Idempotency.Get(ctx, idempotencyKey, now)
	if err != nil {
		logger.Error("idempotency get failed",
			"event", "enqueue_item_idempotency_get_failed",
			"module", "moderation-safety/queue-engine",
			"layer", "application",
			"content_id", cmd.ContentID,
			"error", err.Error(),
		)
		return EnqueueItemResult{}, err
	}
	if found {
		// A reused idempotency key must map to an identical request payload.
		if record.RequestHash != requestHash {
			logger.Warn("idempotency key conflict",
				"event", "enqueue_item_idempotency_conflict",
				"module", "moderation-safety/queue-engine",
				"layer", "application",
				"content_id", cmd.ContentID,
			)
			return EnqueueItemResult{}, domainerrors.ErrIdempotencyKeyConflict
		}
		item, err := u.Queue.GetItem(ctx, record.ItemID)
		if err != nil {
			logger.Error("idempotency replay failed to load item",
				"event", "enqueue_item_idempotency_replay_load_failed",
				"module", "moderation-safety/queue-engine",
				"layer", "application",
				"item_id", record.ItemID,
				"error", err.Error(),
			)
			return EnqueueItemResult{}, err
		}

		logger.Info("enqueue item replayed from idempotency",
			"event", "enqueue_item_replayed",
			"module", "moderation-safety/queue-engine",
			"layer", "application",
			"item_id", item.ID,
			"content_id", item.ContentID,
		)
		return EnqueueItemResult{Item: item, Replayed: true}, nil
	}

	historyCount := u.violatorHistoryCount(ctx, contentType, cmd.ContentID, cmd.ContentSnapshot, logger)

	var contentAge time.Duration
	if created := cmd.ContentSnapshot.ContentCreatedAt; created != nil && created.Before(now) {
		contentAge = now.Sub(*created)
	}

	scored := services.ScorePriority(services.ScoreInput{
		ContentType:          contentType,
		Source:               source,
		ReportCount:          cmd.ReportCount,
		AIConfidence:         cmd.AIConfidence,
		ViolatorHistoryCount: historyCount,
		ContentAge:           contentAge,
		VerifiedBusiness:     cmd.ContentSnapshot.Verified,
	})

	itemID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return EnqueueItemResult{}, err
	}
	item, err := entities.NewQueueItem(
		itemID,
		contentType,
		cmd.ContentID,
		source,
		cmd.ReportCount,
		cmd.AIConfidence,
		cmd.AIFlags,
		cmd.ContentSnapshot,
		scored.Score,
		scored.Reasons,
		now,
	)
	if err != nil {
		return EnqueueItemResult{}, err
	}

	eventID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return EnqueueItemResult{}, err
	}
	event, err := newQueueEnvelope(eventID, itemEnqueuedEventType, item.ID, now, map[string]any{
		"queue_item_id":  item.ID,
		"content_type":   string(item.ContentType),
		"content_id":     item.ContentID,
		"source":         string(item.Source),
		"priority_score": item.PriorityScore,
		"report_count":   item.ReportCount,
	})
	if err != nil {
		return EnqueueItemResult{}, err
	}

	// Queue row and enqueued outbox message are committed together by the
	// repository adapter.
	if err := u.Queue.CreateItem(ctx, item, event); err != nil {
		logger.Error("enqueue item failed on write transaction",
			"event", "enqueue_item_write_failed",
			"module", "moderation-safety/queue-engine",
			"layer", "application",
			"content_id", cmd.ContentID,
			"error", err.Error(),
		)
		return EnqueueItemResult{}, err
	}

	if err := u.Idempotency.Put(ctx, ports.IdempotencyRecord{
		Key:         idempotencyKey,
		RequestHash: requestHash,
		ItemID:      item.ID,
		ExpiresAt:   now.Add(u.idempotencyTTL()),
	}); err != nil {
		return EnqueueItemResult{}, err
	}

	logger.Info("enqueue item created",
		"event", "moderation_queue_item_enqueued",
		"module", "moderation-safety/queue-engine",
		"layer", "application",
		"item_id", item.ID,
		"content_type", item.ContentType,
		"content_id", item.ContentID,
		"priority_score", item.PriorityScore,
		"violator_history", historyCount,
	)

	return EnqueueItemResult{Item: item, Created: true}, nil
}

// violatorHistoryCount returns prior confirmed violations for the derivable
// violator, consulting the cache first. Cache failures degrade to a ledger
// read; they never fail the enqueue.
func (u EnqueueItemUseCase) violatorHistoryCount(
	ctx context.Context,
	contentType entities.ContentType,
	contentID string,
	snapshot entities.ContentSnapshot,
	logger *slog.Logger,
) int {
	violator, ok := services.DeriveViolator(contentType, contentID, snapshot)
	if !ok {
		return 0
	}

	if u.ViolationCache != nil {
		count, hit, err := u.ViolationCache.GetCount(ctx, violator)
		if err != nil {
			logger.Warn("violation count cache read failed",
				"event", "enqueue_item_cache_read_failed",
				"module", "moderation-safety/queue-engine",
				"layer", "application",
				"violator_id", violator.ID,
				"error", err.Error(),
			)
		} else if hit {
			return count
		}
	}

	count, err := u.Violations.CountViolations(ctx, violator)
	if err != nil {
		logger.Warn("violation ledger count failed",
			"event", "enqueue_item_history_count_failed",
			"module", "moderation-safety/queue-engine",
			"layer", "application",
			"violator_id", violator.ID,
			"error", err.Error(),
		)
		return 0
	}

	if u.ViolationCache != nil {
		if err := u.ViolationCache.SetCount(ctx, violator, count, u.violationCacheTTL()); err != nil {
			logger.Warn("violation count cache write failed",
				"event", "enqueue_item_cache_write_failed",
				"module", "moderation-safety/queue-engine",
				"layer", "application",
				"violator_id", violator.ID,
				"error", err.Error(),
			)
		}
	}
	return count
}

func (u EnqueueItemUseCase) idempotencyTTL() time.Duration {
	if u.IdempotencyTTL <= 0 {
		return 7 * 24 * time.Hour
	}
	return u.IdempotencyTTL
}

func (u EnqueueItemUseCase) violationCacheTTL() time.Duration {
	if u.ViolationCacheTTL <= 0 {
		return 5 * time.Minute
	}
	return u.ViolationCacheTTL
}

func (u EnqueueItemUseCase) now() time.Time {
	if u.Clock == nil {
		return time.Now().UTC()
	}
	return u.Clock.Now().UTC()
}

func resolveEnqueueIdempotencyKey(cmd EnqueueItemCommand) string {
	if strings.TrimSpace(cmd.IdempotencyKey) != "" {
		return cmd.IdempotencyKey
	}
	// Canonical fallback pattern for enqueue operations.
	return fmt.Sprintf("modq:%s:%s:enqueue", cmd.ContentType, cmd.ContentID)
}

func hashEnqueueRequest(cmd EnqueueItemCommand) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%s|%d",
		cmd.ContentType, cmd.ContentID, cmd.Source, cmd.ReportCount)))
	return hex.EncodeToString(sum[:])
}

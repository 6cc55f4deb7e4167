package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	application "vigil/contexts/moderation-safety/queue-engine/application"
	"vigil/contexts/moderation-safety/queue-engine/domain/entities"
	domainerrors "vigil/contexts/moderation-safety/queue-engine/domain/errors"
	"vigil/contexts/moderation-safety/queue-engine/domain/services"
	"vigil/contexts/moderation-safety/queue-engine/ports"
)

type ResolveItemCommand struct {
	ItemID        string
	ModeratorID   string
	Action        string
	ViolationType string
	GuidelineCode string
	Notes         string
	NotifyUser    bool
}

type ResolveItemResult struct {
	Item      entities.QueueItem
	Violation *entities.ViolationRecord
}

type ResolveItemUseCase struct {
	Queue          ports.QueueRepository
	ViolationCache ports.ViolationCountCache
	Clock          ports.Clock
	IDGenerator    ports.IDGenerator
	Logger         *slog.Logger
}

// Execute applies a terminal decision to an item the moderator currently
// holds. A reject/delete decision with a named violation type also writes a
// violation ledger entry when the snapshot yields an accountable party; the
// ledger row, audit row, item update, and outbox event commit together.
func (u ResolveItemUseCase) Execute(ctx context.Context, cmd ResolveItemCommand) (ResolveItemResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if strings.TrimSpace(cmd.ItemID) == "" || strings.TrimSpace(cmd.ModeratorID) == "" {
		return ResolveItemResult{}, domainerrors.ErrInvalidModerationRequest
	}
	action := entities.ResolutionAction(cmd.Action)
	if !action.Valid() {
		return ResolveItemResult{}, domainerrors.ErrInvalidModerationRequest
	}

	now := u.now()

	// The snapshot and content reference are immutable after enqueue, so the
	// violator derived from this read stays correct even if the claim state
	// changes before the guarded write below.
	item, err := u.Queue.GetItem(ctx, cmd.ItemID)
	if err != nil {
		return ResolveItemResult{}, err
	}

	var violation *entities.ViolationRecord
	if (action == entities.ResolutionRejected || action == entities.ResolutionDeleted) &&
		strings.TrimSpace(cmd.ViolationType) != "" {
		if violator, ok := services.DeriveViolator(item.ContentType, item.ContentID, item.ContentSnapshot); ok {
			violationID, err := u.IDGenerator.NewID(ctx)
			if err != nil {
				return ResolveItemResult{}, err
			}
			record, err := entities.NewViolationRecord(
				violationID,
				violator,
				cmd.ViolationType,
				cmd.GuidelineCode,
				services.SeverityForGuideline(cmd.GuidelineCode),
				item,
				services.ConsequenceForAction(action),
				cmd.Notes,
				cmd.ModeratorID,
				now,
			)
			if err != nil {
				return ResolveItemResult{}, err
			}
			violation = &record
		} else {
			logger.Info("resolve item has no derivable violator",
				"event", "resolve_item_violator_underivable",
				"module", "moderation-safety/queue-engine",
				"layer", "application",
				"item_id", item.ID,
				"content_type", item.ContentType,
			)
		}
	}

	eventID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return ResolveItemResult{}, err
	}
	event, err := newQueueEnvelope(eventID, itemResolvedEventType, item.ID, now, map[string]any{
		"queue_item_id":      item.ID,
		"content_type":       string(item.ContentType),
		"content_id":         item.ContentID,
		"resolution_action":  string(action),
		"resolved_by":        cmd.ModeratorID,
		"notify_user":        cmd.NotifyUser,
		"violation_recorded": violation != nil,
	})
	if err != nil {
		return ResolveItemResult{}, err
	}

	updated, err := u.Queue.ResolveItem(ctx,
		ports.ResolveRequest{
			ItemID:      cmd.ItemID,
			ModeratorID: cmd.ModeratorID,
			Action:      action,
			Notes:       cmd.Notes,
			Violation:   violation,
			Event:       event,
			Now:         now,
		},
		ports.AuditInput{
			Action:        entities.AuditActionFor(action),
			ActionBy:      cmd.ModeratorID,
			Reason:        cmd.ViolationType,
			Notes:         cmd.Notes,
			ViolationType: cmd.ViolationType,
			GuidelineRef:  cmd.GuidelineCode,
		},
	)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotAssignee) || errors.Is(err, domainerrors.ErrInvalidStateTransition) {
			logger.Warn("resolve item rejected",
				"event", "resolve_item_rejected",
				"module", "moderation-safety/queue-engine",
				"layer", "application",
				"item_id", cmd.ItemID,
				"moderator_id", cmd.ModeratorID,
				"error", err.Error(),
			)
			return ResolveItemResult{}, err
		}
		logger.Error("resolve item failed",
			"event", "resolve_item_failed",
			"module", "moderation-safety/queue-engine",
			"layer", "application",
			"item_id", cmd.ItemID,
			"moderator_id", cmd.ModeratorID,
			"error", err.Error(),
		)
		return ResolveItemResult{}, err
	}

	if violation != nil && u.ViolationCache != nil {
		violator := entities.ViolatorRef{Type: violation.ViolatorType, ID: violation.ViolatorID}
		// Stale cached counts self-heal on TTL; invalidation failure is not
		// allowed to fail a committed resolution.
		if err := u.ViolationCache.InvalidateCount(ctx, violator); err != nil {
			logger.Warn("violation count cache invalidation failed",
				"event", "resolve_item_cache_invalidate_failed",
				"module", "moderation-safety/queue-engine",
				"layer", "application",
				"violator_id", violator.ID,
				"error", err.Error(),
			)
		}
	}

	logger.Info("resolve item succeeded",
		"event", "resolve_item_succeeded",
		"module", "moderation-safety/queue-engine",
		"layer", "application",
		"item_id", updated.ID,
		"moderator_id", cmd.ModeratorID,
		"resolution_action", action,
		"violation_recorded", violation != nil,
	)
	return ResolveItemResult{Item: updated, Violation: violation}, nil
}

func (u ResolveItemUseCase) now() time.Time {
	if u.Clock == nil {
		return time.Now().UTC()
	}
	return u.Clock.Now().UTC()
}

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
	"vigil/contexts/moderation-safety/queue-engine/ports"
)

type EscalateItemCommand struct {
	ItemID      string
	ModeratorID string
	Reason      string
	TargetLevel *int
}

type EscalateItemResult struct {
	Item          entities.QueueItem
	PreviousLevel int
	NewLevel      int
}

type EscalateItemUseCase struct {
	Queue       ports.QueueRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// Execute raises an item toward senior review. The escalator does not need to
// hold the item; escalation unassigns it so a senior reviewer, not the current
// claimant, picks it up. Levels only climb, capped at MaxEscalationLevel.
func (u EscalateItemUseCase) Execute(ctx context.Context, cmd EscalateItemCommand) (EscalateItemResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if strings.TrimSpace(cmd.ItemID) == "" ||
		strings.TrimSpace(cmd.ModeratorID) == "" ||
		strings.TrimSpace(cmd.Reason) == "" {
		return EscalateItemResult{}, domainerrors.ErrInvalidModerationRequest
	}

	now := u.now()
	item, err := u.Queue.GetItem(ctx, cmd.ItemID)
	if err != nil {
		return EscalateItemResult{}, err
	}

	currentLevel := item.EscalationLevel
	targetLevel := currentLevel + 1
	if cmd.TargetLevel != nil {
		targetLevel = *cmd.TargetLevel
	}
	if currentLevel >= entities.MaxEscalationLevel || targetLevel > entities.MaxEscalationLevel {
		return EscalateItemResult{}, domainerrors.ErrMaxEscalation
	}
	if targetLevel <= currentLevel {
		return EscalateItemResult{}, domainerrors.ErrInvalidEscalationLevel
	}

	eventID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return EscalateItemResult{}, err
	}
	event, err := newQueueEnvelope(eventID, itemEscalatedEventType, item.ID, now, map[string]any{
		"queue_item_id":  item.ID,
		"content_type":   string(item.ContentType),
		"content_id":     item.ContentID,
		"previous_level": currentLevel,
		"new_level":      targetLevel,
		"reason":         cmd.Reason,
		"escalated_by":   cmd.ModeratorID,
	})
	if err != nil {
		return EscalateItemResult{}, err
	}

	updated, err := u.Queue.EscalateItem(ctx,
		ports.EscalateRequest{
			ItemID:      cmd.ItemID,
			ModeratorID: cmd.ModeratorID,
			Reason:      cmd.Reason,
			TargetLevel: targetLevel,
			Event:       event,
			Now:         now,
		},
		ports.AuditInput{Action: entities.AuditActionEscalate, ActionBy: cmd.ModeratorID, Reason: cmd.Reason},
	)
	if err != nil {
		if errors.Is(err, domainerrors.ErrMaxEscalation) ||
			errors.Is(err, domainerrors.ErrInvalidEscalationLevel) ||
			errors.Is(err, domainerrors.ErrInvalidStateTransition) {
			logger.Warn("escalate item rejected",
				"event", "escalate_item_rejected",
				"module", "moderation-safety/queue-engine",
				"layer", "application",
				"item_id", cmd.ItemID,
				"moderator_id", cmd.ModeratorID,
				"target_level", targetLevel,
				"error", err.Error(),
			)
			return EscalateItemResult{}, err
		}
		logger.Error("escalate item failed",
			"event", "escalate_item_failed",
			"module", "moderation-safety/queue-engine",
			"layer", "application",
			"item_id", cmd.ItemID,
			"moderator_id", cmd.ModeratorID,
			"error", err.Error(),
		)
		return EscalateItemResult{}, err
	}

	logger.Info("escalate item succeeded",
		"event", "escalate_item_succeeded",
		"module", "moderation-safety/queue-engine",
		"layer", "application",
		"item_id", updated.ID,
		"moderator_id", cmd.ModeratorID,
		"previous_level", currentLevel,
		"new_level", updated.EscalationLevel,
		"priority_score", updated.PriorityScore,
	)
	return EscalateItemResult{
		Item:          updated,
		PreviousLevel: currentLevel,
		NewLevel:      updated.EscalationLevel,
	}, nil
}

func (u EscalateItemUseCase) now() time.Time {
	if u.Clock == nil {
		return time.Now().UTC()
	}
	return u.Clock.Now().UTC()
}

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

type ClaimItemCommand struct {
	ItemID      string
	ModeratorID string
}

type ClaimItemResult struct {
	Item entities.QueueItem
}

type ClaimItemUseCase struct {
	Queue  ports.QueueRepository
	Clock  ports.Clock
	Logger *slog.Logger
}

func (u ClaimItemUseCase) Execute(ctx context.Context, cmd ClaimItemCommand) (ClaimItemResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if strings.TrimSpace(cmd.ItemID) == "" || strings.TrimSpace(cmd.ModeratorID) == "" {
		return ClaimItemResult{}, domainerrors.ErrInvalidModerationRequest
	}

	now := u.now()
	item, err := u.Queue.ClaimItem(ctx,
		ports.ClaimRequest{ItemID: cmd.ItemID, ModeratorID: cmd.ModeratorID, Now: now},
		ports.AuditInput{Action: entities.AuditActionAssign, ActionBy: cmd.ModeratorID},
	)
	if err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyClaimed) || errors.Is(err, domainerrors.ErrInvalidStateTransition) {
			logger.Warn("claim item rejected",
				"event", "claim_item_rejected",
				"module", "moderation-safety/queue-engine",
				"layer", "application",
				"item_id", cmd.ItemID,
				"moderator_id", cmd.ModeratorID,
				"error", err.Error(),
			)
			return ClaimItemResult{}, err
		}
		logger.Error("claim item failed",
			"event", "claim_item_failed",
			"module", "moderation-safety/queue-engine",
			"layer", "application",
			"item_id", cmd.ItemID,
			"moderator_id", cmd.ModeratorID,
			"error", err.Error(),
		)
		return ClaimItemResult{}, err
	}

	logger.Info("claim item succeeded",
		"event", "claim_item_succeeded",
		"module", "moderation-safety/queue-engine",
		"layer", "application",
		"item_id", item.ID,
		"moderator_id", cmd.ModeratorID,
		"priority_score", item.PriorityScore,
	)
	return ClaimItemResult{Item: item}, nil
}

func (u ClaimItemUseCase) now() time.Time {
	if u.Clock == nil {
		return time.Now().UTC()
	}
	return u.Clock.Now().UTC()
}

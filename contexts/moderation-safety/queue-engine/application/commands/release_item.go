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

type ReleaseItemCommand struct {
	ItemID      string
	ModeratorID string
	Reason      string
}

type ReleaseItemResult struct {
	Item entities.QueueItem
}

type ReleaseItemUseCase struct {
	Queue  ports.QueueRepository
	Clock  ports.Clock
	Logger *slog.Logger
}

func (u ReleaseItemUseCase) Execute(ctx context.Context, cmd ReleaseItemCommand) (ReleaseItemResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if strings.TrimSpace(cmd.ItemID) == "" || strings.TrimSpace(cmd.ModeratorID) == "" {
		return ReleaseItemResult{}, domainerrors.ErrInvalidModerationRequest
	}

	now := u.now()
	item, err := u.Queue.ReleaseItem(ctx,
		ports.ReleaseRequest{ItemID: cmd.ItemID, ModeratorID: cmd.ModeratorID, Reason: cmd.Reason, Now: now},
		ports.AuditInput{Action: entities.AuditActionUnassign, ActionBy: cmd.ModeratorID, Reason: cmd.Reason},
	)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotAssignee) || errors.Is(err, domainerrors.ErrInvalidStateTransition) {
			logger.Warn("release item rejected",
				"event", "release_item_rejected",
				"module", "moderation-safety/queue-engine",
				"layer", "application",
				"item_id", cmd.ItemID,
				"moderator_id", cmd.ModeratorID,
				"error", err.Error(),
			)
			return ReleaseItemResult{}, err
		}
		logger.Error("release item failed",
			"event", "release_item_failed",
			"module", "moderation-safety/queue-engine",
			"layer", "application",
			"item_id", cmd.ItemID,
			"moderator_id", cmd.ModeratorID,
			"error", err.Error(),
		)
		return ReleaseItemResult{}, err
	}

	logger.Info("release item succeeded",
		"event", "release_item_succeeded",
		"module", "moderation-safety/queue-engine",
		"layer", "application",
		"item_id", item.ID,
		"moderator_id", cmd.ModeratorID,
	)
	return ReleaseItemResult{Item: item}, nil
}

func (u ReleaseItemUseCase) now() time.Time {
	if u.Clock == nil {
		return time.Now().UTC()
	}
	return u.Clock.Now().UTC()
}

package queries

import (
	"context"
	"log/slog"
	"strings"

	application "vigil/contexts/moderation-safety/queue-engine/application"
	"vigil/contexts/moderation-safety/queue-engine/domain/entities"
	domainerrors "vigil/contexts/moderation-safety/queue-engine/domain/errors"
	"vigil/contexts/moderation-safety/queue-engine/ports"
)

type GetItemQuery struct {
	ItemID string
}

type GetItemResult struct {
	Item entities.QueueItem
}

type GetItemUseCase struct {
	Queue  ports.QueueRepository
	Logger *slog.Logger
}

func (u GetItemUseCase) Execute(ctx context.Context, query GetItemQuery) (GetItemResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if strings.TrimSpace(query.ItemID) == "" {
		return GetItemResult{}, domainerrors.ErrInvalidModerationRequest
	}

	item, err := u.Queue.GetItem(ctx, query.ItemID)
	if err != nil {
		logger.Warn("get item failed",
			"event", "get_item_failed",
			"module", "moderation-safety/queue-engine",
			"layer", "application",
			"item_id", query.ItemID,
			"error", err.Error(),
		)
		return GetItemResult{}, err
	}
	return GetItemResult{Item: item}, nil
}

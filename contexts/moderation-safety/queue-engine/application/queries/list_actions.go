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

type ListActionsQuery struct {
	ItemID string
}

type ListActionsResult struct {
	Items []entities.ModerationAction
}

type ListActionsUseCase struct {
	Queue  ports.QueueRepository
	Logger *slog.Logger
}

// Execute returns the full audit trail for one item in transition order.
func (u ListActionsUseCase) Execute(ctx context.Context, query ListActionsQuery) (ListActionsResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if strings.TrimSpace(query.ItemID) == "" {
		return ListActionsResult{}, domainerrors.ErrInvalidModerationRequest
	}

	// Existence is checked first so an unknown item reads as not_found rather
	// than an empty history.
	if _, err := u.Queue.GetItem(ctx, query.ItemID); err != nil {
		return ListActionsResult{}, err
	}

	items, err := u.Queue.ListActions(ctx, query.ItemID)
	if err != nil {
		logger.Error("list actions failed",
			"event", "list_actions_failed",
			"module", "moderation-safety/queue-engine",
			"layer", "application",
			"item_id", query.ItemID,
			"error", err.Error(),
		)
		return ListActionsResult{}, err
	}
	return ListActionsResult{Items: items}, nil
}

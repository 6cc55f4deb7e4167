package queries

import (
	"context"
	"log/slog"

	application "vigil/contexts/moderation-safety/queue-engine/application"
	"vigil/contexts/moderation-safety/queue-engine/domain/entities"
	domainerrors "vigil/contexts/moderation-safety/queue-engine/domain/errors"
	"vigil/contexts/moderation-safety/queue-engine/ports"
)

type ListQueueQuery struct {
	Status      string
	ContentType string
	Source      string
	MinPriority int
	OrderBy     string
	Limit       int
	Offset      int
}

type ListQueueResult struct {
	Items  []entities.QueueItem
	Total  int
	Limit  int
	Offset int
}

type ListQueueUseCase struct {
	Queue  ports.QueueRepository
	Logger *slog.Logger
}

func (u ListQueueUseCase) Execute(ctx context.Context, query ListQueueQuery) (ListQueueResult, error) {
	logger := application.ResolveLogger(u.Logger)

	limit := query.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := query.Offset
	if offset < 0 {
		offset = 0
	}

	status := entities.Status(query.Status)
	if query.Status != "" && !status.Valid() {
		return ListQueueResult{}, domainerrors.ErrInvalidListFilter
	}
	contentType := entities.ContentType(query.ContentType)
	if query.ContentType != "" && !contentType.Valid() {
		return ListQueueResult{}, domainerrors.ErrInvalidListFilter
	}
	source := entities.Source(query.Source)
	if query.Source != "" && !source.Valid() {
		return ListQueueResult{}, domainerrors.ErrInvalidListFilter
	}
	if query.MinPriority < 0 || query.MinPriority > 100 {
		return ListQueueResult{}, domainerrors.ErrInvalidListFilter
	}
	orderBy := query.OrderBy
	if orderBy == "" {
		orderBy = "priority"
	}
	if orderBy != "priority" && orderBy != "created_at" {
		return ListQueueResult{}, domainerrors.ErrInvalidListFilter
	}

	items, total, err := u.Queue.ListItems(ctx, ports.QueueFilter{
		Status:      status,
		ContentType: contentType,
		Source:      source,
		MinPriority: query.MinPriority,
		OrderBy:     orderBy,
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		logger.Error("list queue failed",
			"event", "list_queue_failed",
			"module", "moderation-safety/queue-engine",
			"layer", "application",
			"error", err.Error(),
		)
		return ListQueueResult{}, err
	}

	logger.Info("list queue completed",
		"event", "list_queue_completed",
		"module", "moderation-safety/queue-engine",
		"layer", "application",
		"items_count", len(items),
		"total", total,
	)
	return ListQueueResult{Items: items, Total: total, Limit: limit, Offset: offset}, nil
}

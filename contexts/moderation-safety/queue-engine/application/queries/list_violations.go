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

type ListViolationsQuery struct {
	ViolatorType string
	ViolatorID   string
	Limit        int
	Offset       int
}

type ListViolationsResult struct {
	Items []entities.ViolationRecord
	Total int
}

type ListViolationsUseCase struct {
	Violations ports.ViolationRepository
	Logger     *slog.Logger
}

// Execute lists the confirmed violation history for one violator, newest
// first. An unknown violator yields an empty page, not an error.
func (u ListViolationsUseCase) Execute(ctx context.Context, query ListViolationsQuery) (ListViolationsResult, error) {
	logger := application.ResolveLogger(u.Logger)
	violatorType := entities.ViolatorType(query.ViolatorType)
	if !violatorType.Valid() || strings.TrimSpace(query.ViolatorID) == "" {
		return ListViolationsResult{}, domainerrors.ErrInvalidListFilter
	}

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

	violator := entities.ViolatorRef{Type: violatorType, ID: query.ViolatorID}
	items, total, err := u.Violations.ListViolations(ctx, violator, limit, offset)
	if err != nil {
		logger.Error("list violations failed",
			"event", "list_violations_failed",
			"module", "moderation-safety/queue-engine",
			"layer", "application",
			"violator_id", query.ViolatorID,
			"error", err.Error(),
		)
		return ListViolationsResult{}, err
	}
	return ListViolationsResult{Items: items, Total: total}, nil
}

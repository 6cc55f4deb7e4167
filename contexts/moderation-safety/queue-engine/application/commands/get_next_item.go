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

type GetNextItemCommand struct {
	ModeratorID   string
	ContentType   string
	MinEscalation int
	MaxEscalation int
}

type GetNextItemResult struct {
	Found bool
	Item  entities.QueueItem
}

type GetNextItemUseCase struct {
	Queue       ports.QueueRepository
	Clock       ports.Clock
	MaxAttempts int
	RetryDelay  time.Duration
	Logger      *slog.Logger
}

// Execute claims the best open candidate for the moderator. A candidate lost
// to a concurrent claimer is contention, not failure: selection is retried a
// bounded number of times before reporting the pool as empty.
func (u GetNextItemUseCase) Execute(ctx context.Context, cmd GetNextItemCommand) (GetNextItemResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if strings.TrimSpace(cmd.ModeratorID) == "" {
		return GetNextItemResult{}, domainerrors.ErrInvalidModerationRequest
	}
	if cmd.ContentType != "" && !entities.ContentType(cmd.ContentType).Valid() {
		return GetNextItemResult{}, domainerrors.ErrInvalidModerationRequest
	}
	if cmd.MinEscalation < 0 || cmd.MaxEscalation > entities.MaxEscalationLevel ||
		cmd.MinEscalation > cmd.MaxEscalation {
		return GetNextItemResult{}, domainerrors.ErrInvalidModerationRequest
	}

	now := u.now()
	request := ports.NextRequest{
		ModeratorID:   cmd.ModeratorID,
		ContentType:   entities.ContentType(cmd.ContentType),
		MinEscalation: cmd.MinEscalation,
		MaxEscalation: cmd.MaxEscalation,
		Now:           now,
	}
	audit := ports.AuditInput{Action: entities.AuditActionAssign, ActionBy: cmd.ModeratorID}

	attempts := u.maxAttempts()
	for attempt := 1; attempt <= attempts; attempt++ {
		item, err := u.Queue.ClaimNext(ctx, request, audit)
		if err == nil {
			logger.Info("get next item claimed",
				"event", "get_next_item_claimed",
				"module", "moderation-safety/queue-engine",
				"layer", "application",
				"item_id", item.ID,
				"moderator_id", cmd.ModeratorID,
				"attempt", attempt,
			)
			return GetNextItemResult{Found: true, Item: item}, nil
		}
		if errors.Is(err, domainerrors.ErrNoItemsAvailable) {
			logger.Info("get next item found no candidates",
				"event", "get_next_item_empty",
				"module", "moderation-safety/queue-engine",
				"layer", "application",
				"moderator_id", cmd.ModeratorID,
				"min_escalation", cmd.MinEscalation,
				"max_escalation", cmd.MaxEscalation,
			)
			return GetNextItemResult{}, nil
		}
		if errors.Is(err, domainerrors.ErrClaimContention) {
			logger.Warn("get next item lost candidate race",
				"event", "get_next_item_contention",
				"module", "moderation-safety/queue-engine",
				"layer", "application",
				"moderator_id", cmd.ModeratorID,
				"attempt", attempt,
			)
			if attempt < attempts {
				select {
				case <-ctx.Done():
					return GetNextItemResult{}, ctx.Err()
				case <-time.After(u.retryDelay()):
				}
			}
			continue
		}
		logger.Error("get next item failed",
			"event", "get_next_item_failed",
			"module", "moderation-safety/queue-engine",
			"layer", "application",
			"moderator_id", cmd.ModeratorID,
			"error", err.Error(),
		)
		return GetNextItemResult{}, err
	}

	// Persistent contention exhausts the retry budget and lands as the same
	// definitive outcome a drained pool would produce.
	logger.Warn("get next item exhausted retries",
		"event", "get_next_item_retries_exhausted",
		"module", "moderation-safety/queue-engine",
		"layer", "application",
		"moderator_id", cmd.ModeratorID,
		"attempts", attempts,
	)
	return GetNextItemResult{}, nil
}

func (u GetNextItemUseCase) maxAttempts() int {
	if u.MaxAttempts <= 0 {
		return 3
	}
	return u.MaxAttempts
}

func (u GetNextItemUseCase) retryDelay() time.Duration {
	if u.RetryDelay <= 0 {
		return 25 * time.Millisecond
	}
	return u.RetryDelay
}

func (u GetNextItemUseCase) now() time.Time {
	if u.Clock == nil {
		return time.Now().UTC()
	}
	return u.Clock.Now().UTC()
}

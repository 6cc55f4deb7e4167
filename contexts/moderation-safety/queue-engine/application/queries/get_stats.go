package queries

import (
	"context"
	"log/slog"
	"time"

	application "vigil/contexts/moderation-safety/queue-engine/application"
	"vigil/contexts/moderation-safety/queue-engine/ports"
)

type GetStatsResult struct {
	Stats ports.QueueStats
}

type GetStatsUseCase struct {
	Queue  ports.QueueRepository
	Clock  ports.Clock
	Logger *slog.Logger
}

// Execute computes the aggregate view on demand. Nothing is incrementally
// maintained, so the numbers cannot drift from the queue rows they summarize.
func (u GetStatsUseCase) Execute(ctx context.Context) (GetStatsResult, error) {
	logger := application.ResolveLogger(u.Logger)

	stats, err := u.Queue.Stats(ctx, u.now())
	if err != nil {
		logger.Error("get stats failed",
			"event", "get_stats_failed",
			"module", "moderation-safety/queue-engine",
			"layer", "application",
			"error", err.Error(),
		)
		return GetStatsResult{}, err
	}
	return GetStatsResult{Stats: stats}, nil
}

func (u GetStatsUseCase) now() time.Time {
	if u.Clock == nil {
		return time.Now().UTC()
	}
	return u.Clock.Now().UTC()
}

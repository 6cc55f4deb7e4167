package workers

import (
	"context"
	"log/slog"
	"time"

	application "vigil/contexts/moderation-safety/queue-engine/application"
	"vigil/contexts/moderation-safety/queue-engine/ports"
)

// StatsProbe periodically computes queue aggregates and hands them to an
// external recorder for export. Read-only; never mutates queue state.
type StatsProbe struct {
	Queue    ports.QueueRepository
	Clock    ports.Clock
	Recorder ports.StatsRecorder
	Logger   *slog.Logger
}

func (p StatsProbe) RunOnce(ctx context.Context) error {
	if p.Recorder == nil {
		return nil
	}
	logger := application.ResolveLogger(p.Logger)
	now := time.Now().UTC()
	if p.Clock != nil {
		now = p.Clock.Now().UTC()
	}

	stats, err := p.Queue.Stats(ctx, now)
	if err != nil {
		logger.Error("stats probe failed",
			"event", "queue_engine_stats_probe_failed",
			"module", "moderation-safety/queue-engine",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}

	p.Recorder.RecordQueueStats(stats)
	return nil
}

package workers

import (
	"context"
	"log/slog"
	"time"

	application "vigil/contexts/moderation-safety/queue-engine/application"
	"vigil/contexts/moderation-safety/queue-engine/domain/entities"
	"vigil/contexts/moderation-safety/queue-engine/ports"
)

// StaleClaimActor is the audit identity for SLA sweeps.
const StaleClaimActor = "system"

// StaleClaimReleaser sweeps in_review items whose claim outlived the review
// SLA back to pending. The queue core deliberately owns no timeout policy;
// this worker is the operational tooling that exercises the release primitive.
type StaleClaimReleaser struct {
	Queue    ports.QueueRepository
	Clock    ports.Clock
	ClaimSLA time.Duration
	Logger   *slog.Logger
}

func (s StaleClaimReleaser) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(s.Logger)
	now := time.Now().UTC()
	if s.Clock != nil {
		now = s.Clock.Now().UTC()
	}
	sla := s.ClaimSLA
	if sla <= 0 {
		sla = 30 * time.Minute
	}

	released, err := s.Queue.ReleaseStaleClaims(ctx, now.Add(-sla),
		ports.AuditInput{
			Action:   entities.AuditActionUnassign,
			ActionBy: StaleClaimActor,
			Reason:   "sla_expired",
		}, now)
	if err != nil {
		logger.Error("stale claim sweep failed",
			"event", "queue_engine_stale_claim_sweep_failed",
			"module", "moderation-safety/queue-engine",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}
	if released > 0 {
		logger.Info("stale claim sweep completed",
			"event", "queue_engine_stale_claim_sweep_completed",
			"module", "moderation-safety/queue-engine",
			"layer", "worker",
			"released_count", released,
		)
	}
	return nil
}

package unit

import (
	"context"
	"errors"
	"testing"
	"time"

	queueengine "vigil/contexts/moderation-safety/queue-engine"
	"vigil/contexts/moderation-safety/queue-engine/application/workers"
	"vigil/contexts/moderation-safety/queue-engine/ports"
	httptransport "vigil/contexts/moderation-safety/queue-engine/transport/http"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now.UTC()
}

type capturingPublisher struct {
	topics    []string
	envelopes []ports.EventEnvelope
	failFirst bool
	calls     int
}

func (p *capturingPublisher) Publish(_ context.Context, topic string, event ports.EventEnvelope) error {
	p.calls++
	if p.failFirst && p.calls == 1 {
		return errors.New("broker unavailable")
	}
	p.topics = append(p.topics, topic)
	p.envelopes = append(p.envelopes, event)
	return nil
}

type capturingStatsRecorder struct {
	recorded []ports.QueueStats
}

func (r *capturingStatsRecorder) RecordQueueStats(stats ports.QueueStats) {
	r.recorded = append(r.recorded, stats)
}

func TestQueueOutboxRelayPublishesAndAcks(t *testing.T) {
	module := queueengine.NewInMemoryModule(nil)
	ctx := context.Background()

	if _, err := module.Handler.EnqueueHandler(ctx, "", httptransport.EnqueueRequest{
		ContentType: "review", ContentID: "review-relay", Source: "user_report",
	}); err != nil {
		t.Fatalf("enqueue failed: %v", err)
	}

	publisher := &capturingPublisher{}
	relay := workers.OutboxRelay{
		Outbox:    module.Store,
		Publisher: publisher,
		Clock:     fixedClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)},
	}
	if err := relay.RunOnce(ctx); err != nil {
		t.Fatalf("relay run failed: %v", err)
	}

	if len(publisher.envelopes) != 1 {
		t.Fatalf("expected 1 published envelope, got %d", len(publisher.envelopes))
	}
	if publisher.topics[0] != "moderation.queue.events" {
		t.Fatalf("expected default topic, got %s", publisher.topics[0])
	}
	if publisher.envelopes[0].EventType != "moderation.queue.item.enqueued" {
		t.Fatalf("unexpected event type %s", publisher.envelopes[0].EventType)
	}

	pending, err := module.Store.ListPendingOutbox(ctx, 10)
	if err != nil {
		t.Fatalf("list pending outbox failed: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("expected outbox drained after relay, got %d pending", len(pending))
	}

	if err := relay.RunOnce(ctx); err != nil {
		t.Fatalf("idle relay run failed: %v", err)
	}
	if len(publisher.envelopes) != 1 {
		t.Fatalf("idle relay run must not republish, got %d envelopes", len(publisher.envelopes))
	}
}

func TestQueueOutboxRelayKeepsMessagesOnPublishFailure(t *testing.T) {
	module := queueengine.NewInMemoryModule(nil)
	ctx := context.Background()

	if _, err := module.Handler.EnqueueHandler(ctx, "", httptransport.EnqueueRequest{
		ContentType: "post", ContentID: "post-relay-fail", Source: "auto_flag",
	}); err != nil {
		t.Fatalf("enqueue failed: %v", err)
	}

	publisher := &capturingPublisher{failFirst: true}
	relay := workers.OutboxRelay{
		Outbox:    module.Store,
		Publisher: publisher,
		Topic:     "moderation.queue.events",
	}
	if err := relay.RunOnce(ctx); err == nil {
		t.Fatalf("expected relay error on publish failure")
	}

	pending, err := module.Store.ListPendingOutbox(ctx, 10)
	if err != nil {
		t.Fatalf("list pending outbox failed: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("failed publish must leave the message pending, got %d", len(pending))
	}

	// The broker recovers; the same message relays on the next cycle.
	if err := relay.RunOnce(ctx); err != nil {
		t.Fatalf("retry relay run failed: %v", err)
	}
	if len(publisher.envelopes) != 1 {
		t.Fatalf("expected 1 envelope after recovery, got %d", len(publisher.envelopes))
	}
}

func TestQueueStaleClaimReleaserSweepsExpiredClaims(t *testing.T) {
	module := queueengine.NewInMemoryModule(nil)
	ctx := context.Background()
	claimedAt := time.Now().UTC()

	created, err := module.Handler.EnqueueHandler(ctx, "", httptransport.EnqueueRequest{
		ContentType: "document", ContentID: "doc-stale", Source: "user_report",
	})
	if err != nil {
		t.Fatalf("enqueue failed: %v", err)
	}
	itemID := created.Data.Item.ItemID
	if _, err := module.Handler.ClaimHandler(ctx, "mod-1", itemID); err != nil {
		t.Fatalf("claim failed: %v", err)
	}

	releaser := workers.StaleClaimReleaser{
		Queue:    module.Store,
		ClaimSLA: 30 * time.Minute,
	}

	// Within the SLA the claim stays.
	releaser.Clock = fixedClock{now: claimedAt.Add(29 * time.Minute)}
	if err := releaser.RunOnce(ctx); err != nil {
		t.Fatalf("early sweep failed: %v", err)
	}
	held, err := module.Handler.GetItemHandler(ctx, itemID)
	if err != nil {
		t.Fatalf("get item failed: %v", err)
	}
	if held.Data.Item.Status != "in_review" {
		t.Fatalf("claim released before SLA expiry: %+v", held.Data.Item)
	}

	// Past the SLA the sweep returns the item to the pool under the system
	// identity.
	releaser.Clock = fixedClock{now: claimedAt.Add(31 * time.Minute)}
	if err := releaser.RunOnce(ctx); err != nil {
		t.Fatalf("expiry sweep failed: %v", err)
	}
	released, err := module.Handler.GetItemHandler(ctx, itemID)
	if err != nil {
		t.Fatalf("get item after sweep failed: %v", err)
	}
	if released.Data.Item.Status != "pending" || released.Data.Item.AssignedTo != "" {
		t.Fatalf("expected item back in pool, got %+v", released.Data.Item)
	}

	history, err := module.Handler.ListActionsHandler(ctx, itemID)
	if err != nil {
		t.Fatalf("list actions failed: %v", err)
	}
	last := history.Data.Items[len(history.Data.Items)-1]
	if last.Action != "unassign" || last.ActionBy != "system" || last.Reason != "sla_expired" {
		t.Fatalf("unexpected sweep audit row: %+v", last)
	}
}

func TestQueueStatsProbeRecordsAggregates(t *testing.T) {
	module := queueengine.NewInMemoryModule(nil)
	ctx := context.Background()

	for _, contentID := range []string{"probe-1", "probe-2", "probe-3"} {
		if _, err := module.Handler.EnqueueHandler(ctx, "", httptransport.EnqueueRequest{
			ContentType: "review", ContentID: contentID, Source: "auto_flag",
		}); err != nil {
			t.Fatalf("enqueue %s failed: %v", contentID, err)
		}
	}

	recorder := &capturingStatsRecorder{}
	probe := workers.StatsProbe{
		Queue:    module.Store,
		Recorder: recorder,
		Clock:    fixedClock{now: time.Now().UTC()},
	}
	if err := probe.RunOnce(ctx); err != nil {
		t.Fatalf("stats probe failed: %v", err)
	}
	if len(recorder.recorded) != 1 {
		t.Fatalf("expected 1 recorded snapshot, got %d", len(recorder.recorded))
	}
	if got := recorder.recorded[0].StatusCounts["pending"]; got != 3 {
		t.Fatalf("expected 3 pending in snapshot, got %d", got)
	}

	// A probe without a recorder is inert.
	idle := workers.StatsProbe{Queue: module.Store}
	if err := idle.RunOnce(ctx); err != nil {
		t.Fatalf("recorderless probe must be a no-op, got %v", err)
	}
}

package unit

import (
	"context"
	"errors"
	"testing"

	queueengine "vigil/contexts/moderation-safety/queue-engine"
	domainerrors "vigil/contexts/moderation-safety/queue-engine/domain/errors"
	httptransport "vigil/contexts/moderation-safety/queue-engine/transport/http"
)

func floatRef(v float64) *float64 {
	return &v
}

func TestQueueEnqueueScoresReportedReview(t *testing.T) {
	module := queueengine.NewInMemoryModule(nil)
	ctx := context.Background()

	first, err := module.Handler.EnqueueHandler(ctx, "idem-enqueue-1", httptransport.EnqueueRequest{
		ContentType:       "review",
		ContentID:         "review-101",
		Source:            "user_report",
		ReportCount:       3,
		AIConfidenceScore: floatRef(0.6),
		ContentSnapshot: httptransport.SnapshotDTO{
			OwnerType: "user",
			OwnerID:   "user-7",
		},
	})
	if err != nil {
		t.Fatalf("enqueue failed: %v", err)
	}
	if first.Data.Item.PriorityScore != 94 {
		t.Fatalf("expected priority score 94, got %d", first.Data.Item.PriorityScore)
	}
	if first.Data.Item.Status != "pending" {
		t.Fatalf("expected status pending, got %s", first.Data.Item.Status)
	}
	if first.Data.Replayed {
		t.Fatalf("first enqueue must not be a replay")
	}

	second, err := module.Handler.EnqueueHandler(ctx, "idem-enqueue-1", httptransport.EnqueueRequest{
		ContentType:       "review",
		ContentID:         "review-101",
		Source:            "user_report",
		ReportCount:       3,
		AIConfidenceScore: floatRef(0.6),
		ContentSnapshot: httptransport.SnapshotDTO{
			OwnerType: "user",
			OwnerID:   "user-7",
		},
	})
	if err != nil {
		t.Fatalf("replay enqueue failed: %v", err)
	}
	if !second.Data.Replayed {
		t.Fatalf("expected replayed enqueue on reused idempotency key")
	}
	if first.Data.Item.ItemID != second.Data.Item.ItemID {
		t.Fatalf("expected same item id, got %s and %s", first.Data.Item.ItemID, second.Data.Item.ItemID)
	}

	_, err = module.Handler.EnqueueHandler(ctx, "idem-enqueue-1", httptransport.EnqueueRequest{
		ContentType: "review",
		ContentID:   "review-101",
		Source:      "user_report",
		ReportCount: 9,
	})
	if !errors.Is(err, domainerrors.ErrIdempotencyKeyConflict) {
		t.Fatalf("expected idempotency key conflict on divergent payload, got %v", err)
	}
}

func TestQueueEnqueueRejectsInvalidPayloads(t *testing.T) {
	module := queueengine.NewInMemoryModule(nil)
	ctx := context.Background()

	cases := []struct {
		name string
		req  httptransport.EnqueueRequest
	}{
		{"unknown content type", httptransport.EnqueueRequest{ContentType: "livestream", ContentID: "c-1", Source: "auto_flag"}},
		{"unknown source", httptransport.EnqueueRequest{ContentType: "review", ContentID: "c-2", Source: "carrier_pigeon"}},
		{"missing content id", httptransport.EnqueueRequest{ContentType: "review", Source: "auto_flag"}},
		{"negative report count", httptransport.EnqueueRequest{ContentType: "review", ContentID: "c-3", Source: "user_report", ReportCount: -1}},
		{"ai confidence above one", httptransport.EnqueueRequest{ContentType: "review", ContentID: "c-4", Source: "auto_flag", AIConfidenceScore: floatRef(1.2)}},
	}
	for _, tc := range cases {
		if _, err := module.Handler.EnqueueHandler(ctx, "", tc.req); !errors.Is(err, domainerrors.ErrInvalidEnqueueRequest) {
			t.Fatalf("%s: expected invalid enqueue request, got %v", tc.name, err)
		}
	}
}

func TestQueueGetNextPrefersEscalatedOverHigherPriority(t *testing.T) {
	module := queueengine.NewInMemoryModule(nil)
	ctx := context.Background()

	// 50+5+15 = 70
	if _, err := module.Handler.EnqueueHandler(ctx, "", httptransport.EnqueueRequest{
		ContentType: "review", ContentID: "review-a", Source: "user_report",
	}); err != nil {
		t.Fatalf("enqueue review failed: %v", err)
	}
	// 50+25+8 = 83
	if _, err := module.Handler.EnqueueHandler(ctx, "", httptransport.EnqueueRequest{
		ContentType: "certification", ContentID: "cert-b", Source: "auto_flag",
	}); err != nil {
		t.Fatalf("enqueue certification failed: %v", err)
	}
	// 50+3+3 = 56
	post, err := module.Handler.EnqueueHandler(ctx, "", httptransport.EnqueueRequest{
		ContentType: "post", ContentID: "post-c", Source: "scheduled_review",
	})
	if err != nil {
		t.Fatalf("enqueue post failed: %v", err)
	}

	escalated, err := module.Handler.EscalateHandler(ctx, "mod-1", post.Data.Item.ItemID, httptransport.EscalateRequest{
		Reason: "needs senior review",
	})
	if err != nil {
		t.Fatalf("escalate post failed: %v", err)
	}
	if escalated.Data.NewLevel != 1 {
		t.Fatalf("expected escalation level 1, got %d", escalated.Data.NewLevel)
	}

	// Escalated wins over the 83-point certification despite its lower score.
	next, err := module.Handler.GetNextHandler(ctx, "mod-2", httptransport.GetNextRequest{})
	if err != nil {
		t.Fatalf("get next failed: %v", err)
	}
	if !next.Data.Found || next.Data.Item == nil {
		t.Fatalf("expected a claimed item from get next")
	}
	if next.Data.Item.ContentID != "post-c" {
		t.Fatalf("expected escalated post first, got %s", next.Data.Item.ContentID)
	}
	if next.Data.Item.AssignedTo != "mod-2" {
		t.Fatalf("expected item assigned to mod-2, got %q", next.Data.Item.AssignedTo)
	}

	next, err = module.Handler.GetNextHandler(ctx, "mod-3", httptransport.GetNextRequest{})
	if err != nil {
		t.Fatalf("second get next failed: %v", err)
	}
	if !next.Data.Found || next.Data.Item.ContentID != "cert-b" {
		t.Fatalf("expected certification second, got %+v", next.Data)
	}

	next, err = module.Handler.GetNextHandler(ctx, "mod-4", httptransport.GetNextRequest{})
	if err != nil {
		t.Fatalf("third get next failed: %v", err)
	}
	if !next.Data.Found || next.Data.Item.ContentID != "review-a" {
		t.Fatalf("expected review third, got %+v", next.Data)
	}

	next, err = module.Handler.GetNextHandler(ctx, "mod-5", httptransport.GetNextRequest{})
	if err != nil {
		t.Fatalf("get next on drained pool failed: %v", err)
	}
	if next.Data.Found {
		t.Fatalf("expected found=false on drained pool")
	}
}

func TestQueueClaimIsExclusiveUntilReleased(t *testing.T) {
	module := queueengine.NewInMemoryModule(nil)
	ctx := context.Background()

	created, err := module.Handler.EnqueueHandler(ctx, "", httptransport.EnqueueRequest{
		ContentType: "product", ContentID: "product-1", Source: "auto_flag",
	})
	if err != nil {
		t.Fatalf("enqueue failed: %v", err)
	}
	itemID := created.Data.Item.ItemID

	claimed, err := module.Handler.ClaimHandler(ctx, "mod-1", itemID)
	if err != nil {
		t.Fatalf("claim failed: %v", err)
	}
	if claimed.Data.Item.Status != "in_review" || claimed.Data.Item.AssignedTo != "mod-1" {
		t.Fatalf("unexpected claim state: %+v", claimed.Data.Item)
	}

	if _, err := module.Handler.ClaimHandler(ctx, "mod-2", itemID); !errors.Is(err, domainerrors.ErrAlreadyClaimed) {
		t.Fatalf("expected already claimed for second claimer, got %v", err)
	}
	if _, err := module.Handler.ReleaseHandler(ctx, "mod-2", itemID, httptransport.ReleaseRequest{}); !errors.Is(err, domainerrors.ErrNotAssignee) {
		t.Fatalf("expected not assignee on foreign release, got %v", err)
	}

	released, err := module.Handler.ReleaseHandler(ctx, "mod-1", itemID, httptransport.ReleaseRequest{Reason: "handing off"})
	if err != nil {
		t.Fatalf("release failed: %v", err)
	}
	if released.Data.Item.Status != "pending" || released.Data.Item.AssignedTo != "" {
		t.Fatalf("expected item back in pool, got %+v", released.Data.Item)
	}

	if _, err := module.Handler.ClaimHandler(ctx, "mod-2", itemID); err != nil {
		t.Fatalf("reclaim after release failed: %v", err)
	}

	history, err := module.Handler.ListActionsHandler(ctx, itemID)
	if err != nil {
		t.Fatalf("list actions failed: %v", err)
	}
	expected := []string{"assign", "unassign", "assign"}
	if len(history.Data.Items) != len(expected) {
		t.Fatalf("expected %d audit actions, got %d", len(expected), len(history.Data.Items))
	}
	for i, action := range history.Data.Items {
		if action.Action != expected[i] {
			t.Fatalf("audit action %d: expected %s, got %s", i, expected[i], action.Action)
		}
	}
	if history.Data.Items[0].PreviousState.Status != "pending" || history.Data.Items[0].NewState.Status != "in_review" {
		t.Fatalf("first audit row has wrong state bracket: %+v", history.Data.Items[0])
	}
}

func TestQueueResolveRecordsViolationAndFeedsHistory(t *testing.T) {
	module := queueengine.NewInMemoryModule(nil)
	ctx := context.Background()

	created, err := module.Handler.EnqueueHandler(ctx, "", httptransport.EnqueueRequest{
		ContentType: "review",
		ContentID:   "review-bad",
		Source:      "user_report",
		ContentSnapshot: httptransport.SnapshotDTO{
			OwnerType: "user",
			OwnerID:   "user-9",
		},
	})
	if err != nil {
		t.Fatalf("enqueue failed: %v", err)
	}
	itemID := created.Data.Item.ItemID

	if _, err := module.Handler.ResolveHandler(ctx, "mod-1", itemID, httptransport.ResolveRequest{Action: "rejected"}); !errors.Is(err, domainerrors.ErrInvalidStateTransition) {
		t.Fatalf("expected invalid state transition for unclaimed resolve, got %v", err)
	}

	if _, err := module.Handler.ClaimHandler(ctx, "mod-1", itemID); err != nil {
		t.Fatalf("claim failed: %v", err)
	}
	if _, err := module.Handler.ResolveHandler(ctx, "mod-2", itemID, httptransport.ResolveRequest{Action: "rejected"}); !errors.Is(err, domainerrors.ErrNotAssignee) {
		t.Fatalf("expected not assignee for foreign resolve, got %v", err)
	}

	resolved, err := module.Handler.ResolveHandler(ctx, "mod-1", itemID, httptransport.ResolveRequest{
		Action:        "rejected",
		ViolationType: "spam",
		GuidelineCode: "content.spam",
		Notes:         "recycled review text",
		NotifyUser:    true,
	})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if resolved.Data.Item.Status != "resolved" || resolved.Data.Item.ResolutionAction != "rejected" {
		t.Fatalf("unexpected resolved state: %+v", resolved.Data.Item)
	}
	if resolved.Data.Violation == nil {
		t.Fatalf("expected a violation record on rejected resolution")
	}
	if resolved.Data.Violation.ViolatorType != "user" || resolved.Data.Violation.ViolatorID != "user-9" {
		t.Fatalf("violation attributed to wrong violator: %+v", resolved.Data.Violation)
	}
	if resolved.Data.Violation.Severity != "medium" {
		t.Fatalf("expected medium severity for content.spam, got %s", resolved.Data.Violation.Severity)
	}
	if resolved.Data.Violation.Consequence != "warning" {
		t.Fatalf("expected warning consequence for rejection, got %s", resolved.Data.Violation.Consequence)
	}

	if _, err := module.Handler.ResolveHandler(ctx, "mod-1", itemID, httptransport.ResolveRequest{Action: "approved"}); !errors.Is(err, domainerrors.ErrInvalidStateTransition) {
		t.Fatalf("expected invalid state transition on double resolve, got %v", err)
	}

	ledger, err := module.Handler.ListViolationsHandler(ctx, "user", "user-9", 10, 0)
	if err != nil {
		t.Fatalf("list violations failed: %v", err)
	}
	if ledger.Data.Total != 1 || len(ledger.Data.Items) != 1 {
		t.Fatalf("expected one ledger entry, got total=%d items=%d", ledger.Data.Total, len(ledger.Data.Items))
	}
	if ledger.Data.Items[0].QueueItemID != itemID {
		t.Fatalf("ledger entry points at wrong item: %s", ledger.Data.Items[0].QueueItemID)
	}

	// The confirmed violation now raises priority for the same owner's next
	// enqueue: 50+5+15+12 = 82.
	repeat, err := module.Handler.EnqueueHandler(ctx, "", httptransport.EnqueueRequest{
		ContentType: "review",
		ContentID:   "review-bad-2",
		Source:      "user_report",
		ContentSnapshot: httptransport.SnapshotDTO{
			OwnerType: "user",
			OwnerID:   "user-9",
		},
	})
	if err != nil {
		t.Fatalf("repeat enqueue failed: %v", err)
	}
	if repeat.Data.Item.PriorityScore != 82 {
		t.Fatalf("expected history-weighted score 82, got %d", repeat.Data.Item.PriorityScore)
	}
}

func TestQueueApprovedResolutionWritesNoViolation(t *testing.T) {
	module := queueengine.NewInMemoryModule(nil)
	ctx := context.Background()

	created, err := module.Handler.EnqueueHandler(ctx, "", httptransport.EnqueueRequest{
		ContentType: "review",
		ContentID:   "review-fine",
		Source:      "auto_flag",
		ContentSnapshot: httptransport.SnapshotDTO{
			OwnerType: "user",
			OwnerID:   "user-11",
		},
	})
	if err != nil {
		t.Fatalf("enqueue failed: %v", err)
	}
	if _, err := module.Handler.ClaimHandler(ctx, "mod-1", created.Data.Item.ItemID); err != nil {
		t.Fatalf("claim failed: %v", err)
	}

	// Violation type present but the decision clears the content.
	resolved, err := module.Handler.ResolveHandler(ctx, "mod-1", created.Data.Item.ItemID, httptransport.ResolveRequest{
		Action:        "approved",
		ViolationType: "spam",
	})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if resolved.Data.Violation != nil {
		t.Fatalf("approved resolution must not record a violation")
	}

	ledger, err := module.Handler.ListViolationsHandler(ctx, "user", "user-11", 10, 0)
	if err != nil {
		t.Fatalf("list violations failed: %v", err)
	}
	if ledger.Data.Total != 0 {
		t.Fatalf("expected empty ledger, got %d", ledger.Data.Total)
	}
}

func TestQueueEscalationClimbsToCap(t *testing.T) {
	module := queueengine.NewInMemoryModule(nil)
	ctx := context.Background()

	created, err := module.Handler.EnqueueHandler(ctx, "", httptransport.EnqueueRequest{
		ContentType: "organization", ContentID: "org-5", Source: "appeal",
	})
	if err != nil {
		t.Fatalf("enqueue failed: %v", err)
	}
	itemID := created.Data.Item.ItemID
	baseScore := created.Data.Item.PriorityScore

	for level := 1; level <= 3; level++ {
		resp, err := module.Handler.EscalateHandler(ctx, "mod-1", itemID, httptransport.EscalateRequest{
			Reason: "pattern of abuse",
		})
		if err != nil {
			t.Fatalf("escalate to level %d failed: %v", level, err)
		}
		if resp.Data.PreviousLevel != level-1 || resp.Data.NewLevel != level {
			t.Fatalf("expected transition %d->%d, got %d->%d", level-1, level, resp.Data.PreviousLevel, resp.Data.NewLevel)
		}
		if resp.Data.Item.Status != "escalated" || resp.Data.Item.AssignedTo != "" {
			t.Fatalf("escalated item must return to the pool: %+v", resp.Data.Item)
		}
	}

	item, err := module.Handler.GetItemHandler(ctx, itemID)
	if err != nil {
		t.Fatalf("get item failed: %v", err)
	}
	wantScore := baseScore + 45
	if wantScore > 100 {
		wantScore = 100
	}
	if item.Data.Item.PriorityScore != wantScore {
		t.Fatalf("expected boosted score %d, got %d", wantScore, item.Data.Item.PriorityScore)
	}

	if _, err := module.Handler.EscalateHandler(ctx, "mod-1", itemID, httptransport.EscalateRequest{
		Reason: "again",
	}); !errors.Is(err, domainerrors.ErrMaxEscalation) {
		t.Fatalf("expected max escalation at the cap, got %v", err)
	}
}

func TestQueueEscalateValidatesTargetLevel(t *testing.T) {
	module := queueengine.NewInMemoryModule(nil)
	ctx := context.Background()

	created, err := module.Handler.EnqueueHandler(ctx, "", httptransport.EnqueueRequest{
		ContentType: "media", ContentID: "media-3", Source: "auto_flag",
	})
	if err != nil {
		t.Fatalf("enqueue failed: %v", err)
	}
	itemID := created.Data.Item.ItemID

	two := 2
	resp, err := module.Handler.EscalateHandler(ctx, "mod-1", itemID, httptransport.EscalateRequest{
		Reason:      "skip to level two",
		TargetLevel: &two,
	})
	if err != nil {
		t.Fatalf("targeted escalate failed: %v", err)
	}
	if resp.Data.NewLevel != 2 {
		t.Fatalf("expected level 2, got %d", resp.Data.NewLevel)
	}

	one := 1
	if _, err := module.Handler.EscalateHandler(ctx, "mod-1", itemID, httptransport.EscalateRequest{
		Reason:      "backwards",
		TargetLevel: &one,
	}); !errors.Is(err, domainerrors.ErrInvalidEscalationLevel) {
		t.Fatalf("expected invalid escalation level going backwards, got %v", err)
	}

	five := 5
	if _, err := module.Handler.EscalateHandler(ctx, "mod-1", itemID, httptransport.EscalateRequest{
		Reason:      "too far",
		TargetLevel: &five,
	}); !errors.Is(err, domainerrors.ErrMaxEscalation) {
		t.Fatalf("expected max escalation above cap, got %v", err)
	}

	if _, err := module.Handler.EscalateHandler(ctx, "mod-1", itemID, httptransport.EscalateRequest{}); !errors.Is(err, domainerrors.ErrInvalidModerationRequest) {
		t.Fatalf("expected invalid request without reason, got %v", err)
	}
}

func TestQueueGetNextHonorsEscalationWindow(t *testing.T) {
	module := queueengine.NewInMemoryModule(nil)
	ctx := context.Background()

	plain, err := module.Handler.EnqueueHandler(ctx, "", httptransport.EnqueueRequest{
		ContentType: "post", ContentID: "post-plain", Source: "new_content",
	})
	if err != nil {
		t.Fatalf("enqueue plain failed: %v", err)
	}
	raised, err := module.Handler.EnqueueHandler(ctx, "", httptransport.EnqueueRequest{
		ContentType: "post", ContentID: "post-raised", Source: "new_content",
	})
	if err != nil {
		t.Fatalf("enqueue raised failed: %v", err)
	}
	if _, err := module.Handler.EscalateHandler(ctx, "mod-0", raised.Data.Item.ItemID, httptransport.EscalateRequest{
		Reason: "second opinion",
	}); err != nil {
		t.Fatalf("escalate failed: %v", err)
	}

	// Senior window excludes unescalated work entirely.
	senior, err := module.Handler.GetNextHandler(ctx, "mod-senior", httptransport.GetNextRequest{MinEscalation: 1})
	if err != nil {
		t.Fatalf("senior get next failed: %v", err)
	}
	if !senior.Data.Found || senior.Data.Item.ContentID != "post-raised" {
		t.Fatalf("expected escalated item in senior window, got %+v", senior.Data)
	}

	// An explicit zero cap keeps escalated work away from frontline moderators.
	zero := 0
	frontline, err := module.Handler.GetNextHandler(ctx, "mod-frontline", httptransport.GetNextRequest{MaxEscalation: &zero})
	if err != nil {
		t.Fatalf("frontline get next failed: %v", err)
	}
	if !frontline.Data.Found || frontline.Data.Item.ContentID != "post-plain" {
		t.Fatalf("expected unescalated item in frontline window, got %+v", frontline.Data)
	}
	if frontline.Data.Item.ItemID != plain.Data.Item.ItemID {
		t.Fatalf("frontline window claimed the wrong item")
	}

	if _, err := module.Handler.GetNextHandler(ctx, "mod-x", httptransport.GetNextRequest{MinEscalation: -1}); !errors.Is(err, domainerrors.ErrInvalidModerationRequest) {
		t.Fatalf("expected invalid request for negative min escalation, got %v", err)
	}
	four := 4
	if _, err := module.Handler.GetNextHandler(ctx, "mod-x", httptransport.GetNextRequest{MaxEscalation: &four}); !errors.Is(err, domainerrors.ErrInvalidModerationRequest) {
		t.Fatalf("expected invalid request for max escalation above cap, got %v", err)
	}
}

func TestQueueListFiltersAndPaginates(t *testing.T) {
	module := queueengine.NewInMemoryModule(nil)
	ctx := context.Background()

	// Scores: 70, 80, 90 via report count.
	for i, reports := range []int{0, 2, 4} {
		if _, err := module.Handler.EnqueueHandler(ctx, "", httptransport.EnqueueRequest{
			ContentType: "review",
			ContentID:   []string{"review-lo", "review-mid", "review-hi"}[i],
			Source:      "user_report",
			ReportCount: reports,
		}); err != nil {
			t.Fatalf("enqueue %d failed: %v", i, err)
		}
	}

	all, err := module.Handler.ListQueueHandler(ctx, httptransport.ListQueueRequest{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if all.Data.Total != 3 || len(all.Data.Items) != 3 {
		t.Fatalf("expected 3 items, got total=%d items=%d", all.Data.Total, len(all.Data.Items))
	}
	if all.Data.Items[0].ContentID != "review-hi" {
		t.Fatalf("expected priority order, first item %s", all.Data.Items[0].ContentID)
	}
	if all.Data.Limit != 20 {
		t.Fatalf("expected default limit 20, got %d", all.Data.Limit)
	}

	strong, err := module.Handler.ListQueueHandler(ctx, httptransport.ListQueueRequest{MinPriority: 75})
	if err != nil {
		t.Fatalf("filtered list failed: %v", err)
	}
	if strong.Data.Total != 2 {
		t.Fatalf("expected 2 items above priority 75, got %d", strong.Data.Total)
	}

	page, err := module.Handler.ListQueueHandler(ctx, httptransport.ListQueueRequest{Limit: 1, Offset: 1})
	if err != nil {
		t.Fatalf("paged list failed: %v", err)
	}
	if page.Data.Total != 3 || len(page.Data.Items) != 1 {
		t.Fatalf("expected page of 1 with total 3, got total=%d items=%d", page.Data.Total, len(page.Data.Items))
	}
	if page.Data.Items[0].ContentID != "review-mid" {
		t.Fatalf("expected second-ranked item on page, got %s", page.Data.Items[0].ContentID)
	}

	if _, err := module.Handler.ListQueueHandler(ctx, httptransport.ListQueueRequest{Status: "limbo"}); !errors.Is(err, domainerrors.ErrInvalidListFilter) {
		t.Fatalf("expected invalid list filter for unknown status, got %v", err)
	}
	if _, err := module.Handler.ListQueueHandler(ctx, httptransport.ListQueueRequest{OrderBy: "velocity"}); !errors.Is(err, domainerrors.ErrInvalidListFilter) {
		t.Fatalf("expected invalid list filter for unknown order, got %v", err)
	}
}

func TestQueueStatsTrackLifecycle(t *testing.T) {
	module := queueengine.NewInMemoryModule(nil)
	ctx := context.Background()

	for _, contentID := range []string{"doc-1", "doc-2"} {
		if _, err := module.Handler.EnqueueHandler(ctx, "", httptransport.EnqueueRequest{
			ContentType: "document", ContentID: contentID, Source: "new_content",
		}); err != nil {
			t.Fatalf("enqueue %s failed: %v", contentID, err)
		}
	}
	created, err := module.Handler.EnqueueHandler(ctx, "", httptransport.EnqueueRequest{
		ContentType: "review", ContentID: "review-resolved", Source: "user_report",
	})
	if err != nil {
		t.Fatalf("enqueue review failed: %v", err)
	}
	if _, err := module.Handler.ClaimHandler(ctx, "mod-1", created.Data.Item.ItemID); err != nil {
		t.Fatalf("claim failed: %v", err)
	}
	if _, err := module.Handler.ResolveHandler(ctx, "mod-1", created.Data.Item.ItemID, httptransport.ResolveRequest{
		Action: "no_action",
	}); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	raised, err := module.Handler.EnqueueHandler(ctx, "", httptransport.EnqueueRequest{
		ContentType: "post", ContentID: "post-raised-stats", Source: "auto_flag",
	})
	if err != nil {
		t.Fatalf("enqueue post failed: %v", err)
	}
	two := 2
	if _, err := module.Handler.EscalateHandler(ctx, "mod-1", raised.Data.Item.ItemID, httptransport.EscalateRequest{
		Reason:      "coordinated reports",
		TargetLevel: &two,
	}); err != nil {
		t.Fatalf("escalate failed: %v", err)
	}

	stats, err := module.Handler.StatsHandler(ctx)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.Data.StatusCounts["pending"] != 2 {
		t.Fatalf("expected 2 pending, got %d", stats.Data.StatusCounts["pending"])
	}
	if stats.Data.StatusCounts["resolved"] != 1 {
		t.Fatalf("expected 1 resolved, got %d", stats.Data.StatusCounts["resolved"])
	}
	if stats.Data.StatusCounts["escalated"] != 1 {
		t.Fatalf("expected 1 escalated, got %d", stats.Data.StatusCounts["escalated"])
	}
	if stats.Data.ResolvedLast24h != 1 {
		t.Fatalf("expected 1 resolved in last 24h, got %d", stats.Data.ResolvedLast24h)
	}
	if stats.Data.HighEscalation != 1 {
		t.Fatalf("expected 1 high escalation item, got %d", stats.Data.HighEscalation)
	}
	if stats.Data.Overdue != 0 {
		t.Fatalf("expected no overdue items, got %d", stats.Data.Overdue)
	}
	if stats.Data.PendingByContentType["document"] != 2 {
		t.Fatalf("expected 2 pending documents, got %d", stats.Data.PendingByContentType["document"])
	}
}

func TestQueueNotesAttachToSubjects(t *testing.T) {
	module := queueengine.NewInMemoryModule(nil)
	ctx := context.Background()

	if _, err := module.Handler.AddNoteHandler(ctx, "mod-1", httptransport.AddNoteRequest{
		SubjectType: "queue_item",
		SubjectID:   "missing-item",
		Body:        "orphan note",
	}); !errors.Is(err, domainerrors.ErrItemNotFound) {
		t.Fatalf("expected item not found for missing queue item subject, got %v", err)
	}

	created, err := module.Handler.EnqueueHandler(ctx, "", httptransport.EnqueueRequest{
		ContentType: "review", ContentID: "review-noted", Source: "auto_flag",
	})
	if err != nil {
		t.Fatalf("enqueue failed: %v", err)
	}
	itemID := created.Data.Item.ItemID

	first, err := module.Handler.AddNoteHandler(ctx, "mod-1", httptransport.AddNoteRequest{
		SubjectType: "queue_item",
		SubjectID:   itemID,
		Body:        "checked against prior reports",
	})
	if err != nil {
		t.Fatalf("add note failed: %v", err)
	}
	if first.Data.Note.AuthorID != "mod-1" || first.Data.Note.SubjectID != itemID {
		t.Fatalf("unexpected note: %+v", first.Data.Note)
	}
	if _, err := module.Handler.AddNoteHandler(ctx, "mod-2", httptransport.AddNoteRequest{
		SubjectType: "queue_item",
		SubjectID:   itemID,
		Body:        "agree, borderline",
	}); err != nil {
		t.Fatalf("second note failed: %v", err)
	}
	if _, err := module.Handler.AddNoteHandler(ctx, "mod-1", httptransport.AddNoteRequest{
		SubjectType: "user",
		SubjectID:   "user-77",
		Body:        "repeat pattern across accounts",
	}); err != nil {
		t.Fatalf("user note failed: %v", err)
	}

	notes, err := module.Handler.ListNotesHandler(ctx, "queue_item", itemID)
	if err != nil {
		t.Fatalf("list notes failed: %v", err)
	}
	if len(notes.Data.Items) != 2 {
		t.Fatalf("expected 2 item notes, got %d", len(notes.Data.Items))
	}
	if notes.Data.Items[0].Body != "checked against prior reports" {
		t.Fatalf("expected oldest-first ordering, got %q", notes.Data.Items[0].Body)
	}

	userNotes, err := module.Handler.ListNotesHandler(ctx, "user", "user-77")
	if err != nil {
		t.Fatalf("list user notes failed: %v", err)
	}
	if len(userNotes.Data.Items) != 1 {
		t.Fatalf("expected 1 user note, got %d", len(userNotes.Data.Items))
	}

	if _, err := module.Handler.AddNoteHandler(ctx, "mod-1", httptransport.AddNoteRequest{
		SubjectType: "campaign",
		SubjectID:   "c-1",
		Body:        "wrong subject",
	}); !errors.Is(err, domainerrors.ErrInvalidModerationRequest) {
		t.Fatalf("expected invalid request for unknown subject type, got %v", err)
	}

	if _, err := module.Handler.ListNotesHandler(ctx, "campaign", "c-1"); !errors.Is(err, domainerrors.ErrInvalidListFilter) {
		t.Fatalf("expected invalid list filter for unknown subject type, got %v", err)
	}
}

func TestQueueGetItemAndUnknownLookups(t *testing.T) {
	module := queueengine.NewInMemoryModule(nil)
	ctx := context.Background()

	if _, err := module.Handler.GetItemHandler(ctx, "nope"); !errors.Is(err, domainerrors.ErrItemNotFound) {
		t.Fatalf("expected item not found, got %v", err)
	}
	if _, err := module.Handler.ClaimHandler(ctx, "mod-1", "nope"); !errors.Is(err, domainerrors.ErrItemNotFound) {
		t.Fatalf("expected item not found on claim, got %v", err)
	}

	created, err := module.Handler.EnqueueHandler(ctx, "", httptransport.EnqueueRequest{
		ContentType: "certification",
		ContentID:   "cert-77",
		Source:      "edit",
		ContentSnapshot: httptransport.SnapshotDTO{
			OwnerType: "organization",
			OwnerID:   "org-12",
			Verified:  true,
		},
	})
	if err != nil {
		t.Fatalf("enqueue failed: %v", err)
	}

	// 50+25+8 = 83 for a verified certification edit.
	if created.Data.Item.PriorityScore != 83 {
		t.Fatalf("expected score 83, got %d", created.Data.Item.PriorityScore)
	}

	fetched, err := module.Handler.GetItemHandler(ctx, created.Data.Item.ItemID)
	if err != nil {
		t.Fatalf("get item failed: %v", err)
	}
	if fetched.Data.Item.ContentSnapshot.OwnerID != "org-12" || !fetched.Data.Item.ContentSnapshot.Verified {
		t.Fatalf("snapshot not preserved: %+v", fetched.Data.Item.ContentSnapshot)
	}
}

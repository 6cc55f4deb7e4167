package services

import (
	"testing"
	"time"

	"vigil/contexts/moderation-safety/queue-engine/domain/entities"
)

func TestNextBeforeEscalatedBeatsHigherPriorityPending(t *testing.T) {
	now := time.Date(2026, time.March, 3, 10, 0, 0, 0, time.UTC)
	escalated := entities.QueueItem{
		ID:            "item-escalated",
		Status:        entities.StatusEscalated,
		PriorityScore: 40,
		CreatedAt:     now,
	}
	pending := entities.QueueItem{
		ID:            "item-pending",
		Status:        entities.StatusPending,
		PriorityScore: 99,
		CreatedAt:     now.Add(-time.Hour),
	}

	if !NextBefore(escalated, pending) {
		t.Fatalf("expected escalated item to sort before pending regardless of score")
	}
	if NextBefore(pending, escalated) {
		t.Fatalf("expected pending item to sort after escalated")
	}
}

func TestNextBeforeSamePriorityFallsBackToOldestFirst(t *testing.T) {
	now := time.Date(2026, time.March, 3, 10, 0, 0, 0, time.UTC)
	older := entities.QueueItem{
		ID:            "item-older",
		Status:        entities.StatusPending,
		PriorityScore: 70,
		CreatedAt:     now.Add(-3 * time.Hour),
	}
	newer := entities.QueueItem{
		ID:            "item-newer",
		Status:        entities.StatusPending,
		PriorityScore: 70,
		CreatedAt:     now,
	}

	if !NextBefore(older, newer) {
		t.Fatalf("expected older item to win the tie")
	}
}

func TestSortCandidatesFullOrdering(t *testing.T) {
	now := time.Date(2026, time.March, 3, 10, 0, 0, 0, time.UTC)
	items := []entities.QueueItem{
		{ID: "pending-low", Status: entities.StatusPending, PriorityScore: 55, CreatedAt: now},
		{ID: "escalated-low", Status: entities.StatusEscalated, PriorityScore: 45, CreatedAt: now},
		{ID: "pending-high-new", Status: entities.StatusPending, PriorityScore: 90, CreatedAt: now},
		{ID: "pending-high-old", Status: entities.StatusPending, PriorityScore: 90, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "escalated-high", Status: entities.StatusEscalated, PriorityScore: 80, CreatedAt: now},
	}

	SortCandidates(items)

	expected := []string{"escalated-high", "escalated-low", "pending-high-old", "pending-high-new", "pending-low"}
	for i, id := range expected {
		if items[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, items[i].ID)
		}
	}
}

func TestMatchesNextFilterExcludesHeldAndClosedItems(t *testing.T) {
	filter := NextFilter{MinEscalation: 0, MaxEscalation: entities.MaxEscalationLevel}

	if MatchesNextFilter(entities.QueueItem{Status: entities.StatusInReview, AssignedTo: "mod-1"}, filter) {
		t.Fatalf("in_review item must not be a get-next candidate")
	}
	if MatchesNextFilter(entities.QueueItem{Status: entities.StatusResolved}, filter) {
		t.Fatalf("resolved item must not be a get-next candidate")
	}
	if MatchesNextFilter(entities.QueueItem{Status: entities.StatusPending, AssignedTo: "mod-1"}, filter) {
		t.Fatalf("assigned item must not be a get-next candidate")
	}
	if !MatchesNextFilter(entities.QueueItem{Status: entities.StatusPending}, filter) {
		t.Fatalf("unassigned pending item should be a candidate")
	}
	if !MatchesNextFilter(entities.QueueItem{Status: entities.StatusEscalated, EscalationLevel: 2}, filter) {
		t.Fatalf("escalated item within the window should be a candidate")
	}
}

func TestMatchesNextFilterEscalationWindow(t *testing.T) {
	levelOne := entities.QueueItem{Status: entities.StatusEscalated, EscalationLevel: 1}

	if MatchesNextFilter(levelOne, NextFilter{MinEscalation: 0, MaxEscalation: 0}) {
		t.Fatalf("max_escalation=0 must exclude escalated items")
	}
	if !MatchesNextFilter(levelOne, NextFilter{MinEscalation: 1, MaxEscalation: 3}) {
		t.Fatalf("level 1 item should match a 1..3 window")
	}
	if MatchesNextFilter(entities.QueueItem{Status: entities.StatusPending}, NextFilter{MinEscalation: 1, MaxEscalation: 3}) {
		t.Fatalf("min_escalation=1 must exclude level 0 items")
	}
}

func TestMatchesNextFilterContentType(t *testing.T) {
	review := entities.QueueItem{Status: entities.StatusPending, ContentType: entities.ContentTypeReview}
	filter := NextFilter{ContentType: entities.ContentTypeMedia, MaxEscalation: entities.MaxEscalationLevel}

	if MatchesNextFilter(review, filter) {
		t.Fatalf("content type filter must exclude non-matching items")
	}
	filter.ContentType = entities.ContentTypeReview
	if !MatchesNextFilter(review, filter) {
		t.Fatalf("content type filter should admit matching items")
	}
}

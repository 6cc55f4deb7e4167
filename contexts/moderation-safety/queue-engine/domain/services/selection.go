package services

import (
	"sort"

	"vigil/contexts/moderation-safety/queue-engine/domain/entities"
)

// NextFilter narrows the candidate pool for get-next selection.
type NextFilter struct {
	ContentType   entities.ContentType
	MinEscalation int
	MaxEscalation int
}

// MatchesNextFilter reports whether an item belongs to the open, unassigned
// candidate pool described by the filter.
func MatchesNextFilter(item entities.QueueItem, filter NextFilter) bool {
	if item.Status != entities.StatusPending && item.Status != entities.StatusEscalated {
		return false
	}
	if item.AssignedTo != "" {
		return false
	}
	if item.EscalationLevel < filter.MinEscalation || item.EscalationLevel > filter.MaxEscalation {
		return false
	}
	if filter.ContentType != "" && item.ContentType != filter.ContentType {
		return false
	}
	return true
}

// NextBefore is the selection order for get-next: escalated items first, then
// priority score descending, then created_at ascending so old items cannot
// starve behind a stream of same-priority arrivals. Storage adapters mirror
// this exact order in their native query language.
func NextBefore(a, b entities.QueueItem) bool {
	aEscalated := a.Status == entities.StatusEscalated
	bEscalated := b.Status == entities.StatusEscalated
	if aEscalated != bEscalated {
		return aEscalated
	}
	if a.PriorityScore != b.PriorityScore {
		return a.PriorityScore > b.PriorityScore
	}
	return a.CreatedAt.Before(b.CreatedAt)
}

// SortCandidates orders a candidate slice in place by the get-next policy.
func SortCandidates(items []entities.QueueItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return NextBefore(items[i], items[j])
	})
}

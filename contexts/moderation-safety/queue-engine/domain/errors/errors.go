package errors

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrItemNotFound             = errors.New("queue item not found")
	ErrInvalidEnqueueRequest    = errors.New("invalid enqueue request")
	ErrInvalidListFilter        = errors.New("invalid list filter")
	ErrInvalidModerationRequest = errors.New("invalid moderation request")
	ErrAlreadyClaimed           = errors.New("queue item is already claimed")
	ErrNotAssignee              = errors.New("queue item is held by another moderator")
	ErrInvalidStateTransition   = errors.New("operation not allowed in current item state")
	ErrNoItemsAvailable         = errors.New("no queue items match the selection window")
	ErrClaimContention          = errors.New("queue item claim lost to a concurrent writer")
	ErrMaxEscalation            = errors.New("queue item is at the maximum escalation level")
	ErrInvalidEscalationLevel   = errors.New("escalation target must exceed the current level")
	ErrIdempotencyKeyConflict   = errors.New("idempotency key reused with different request")
	ErrRepositoryInvariantBroke = errors.New("repository invariant violated")
)

// StateConflict carries the live row state that rejected a guarded write, so
// callers can report who holds an item and since when. It unwraps to one of
// the sentinel errors above for errors.Is dispatch.
type StateConflict struct {
	Kind       error
	Status     string
	AssignedTo string
	AssignedAt *time.Time
}

func (e *StateConflict) Error() string {
	if e.AssignedTo != "" {
		return fmt.Sprintf("%v (status=%s assigned_to=%s)", e.Kind, e.Status, e.AssignedTo)
	}
	return fmt.Sprintf("%v (status=%s)", e.Kind, e.Status)
}

func (e *StateConflict) Unwrap() error {
	return e.Kind
}

package entities

import (
	"strings"
	"time"

	domainerrors "vigil/contexts/moderation-safety/queue-engine/domain/errors"
)

type AuditAction string

const (
	AuditActionAssign   AuditAction = "assign"
	AuditActionUnassign AuditAction = "unassign"
	AuditActionApprove  AuditAction = "approve"
	AuditActionReject   AuditAction = "reject"
	AuditActionDelete   AuditAction = "delete"
	AuditActionEscalate AuditAction = "escalate"
	AuditActionResolve  AuditAction = "resolve"
)

// AuditActionFor maps a terminal decision onto the audit verb recorded for it.
// Modified and no-action decisions are logged under the generic resolve verb.
func AuditActionFor(action ResolutionAction) AuditAction {
	switch action {
	case ResolutionApproved:
		return AuditActionApprove
	case ResolutionRejected:
		return AuditActionReject
	case ResolutionDeleted:
		return AuditActionDelete
	default:
		return AuditActionResolve
	}
}

// StateSnapshot freezes the mutable portion of a queue item around one
// transition. Replaying the new_state of the latest action for an item must
// reproduce the live row.
type StateSnapshot struct {
	Status           Status           `json:"status"`
	AssignedTo       string           `json:"assigned_to,omitempty"`
	AssignedAt       *time.Time       `json:"assigned_at,omitempty"`
	EscalationLevel  int              `json:"escalation_level"`
	EscalationReason string           `json:"escalation_reason,omitempty"`
	PriorityScore    int              `json:"priority_score"`
	PriorityReasons  []string         `json:"priority_reasons,omitempty"`
	ResolutionAction ResolutionAction `json:"resolution_action,omitempty"`
	ResolutionNotes  string           `json:"resolution_notes,omitempty"`
	ResolvedAt       *time.Time       `json:"resolved_at,omitempty"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// SnapshotOf captures the item's mutable state for audit bracketing.
func SnapshotOf(item QueueItem) StateSnapshot {
	return StateSnapshot{
		Status:           item.Status,
		AssignedTo:       item.AssignedTo,
		AssignedAt:       item.AssignedAt,
		EscalationLevel:  item.EscalationLevel,
		EscalationReason: item.EscalationReason,
		PriorityScore:    item.PriorityScore,
		PriorityReasons:  append([]string(nil), item.PriorityReasons...),
		ResolutionAction: item.ResolutionAction,
		ResolutionNotes:  item.ResolutionNotes,
		ResolvedAt:       item.ResolvedAt,
		UpdatedAt:        item.UpdatedAt,
	}
}

// ModerationAction is one immutable audit entry. Exactly one is written per
// successful state transition.
type ModerationAction struct {
	ActionID      string
	QueueItemID   string
	ContentType   ContentType
	ContentID     string
	Action        AuditAction
	ActionBy      string
	Reason        string
	Notes         string
	PreviousState StateSnapshot
	NewState      StateSnapshot
	ViolationType string
	GuidelineRef  string
	CreatedAt     time.Time
}

func NewModerationAction(
	actionID string,
	item QueueItem,
	action AuditAction,
	actionBy string,
	reason string,
	notes string,
	previous StateSnapshot,
	next StateSnapshot,
	createdAt time.Time,
) (ModerationAction, error) {
	if strings.TrimSpace(actionID) == "" ||
		strings.TrimSpace(item.ID) == "" ||
		strings.TrimSpace(actionBy) == "" {
		return ModerationAction{}, domainerrors.ErrInvalidModerationRequest
	}

	return ModerationAction{
		ActionID:      actionID,
		QueueItemID:   item.ID,
		ContentType:   item.ContentType,
		ContentID:     item.ContentID,
		Action:        action,
		ActionBy:      actionBy,
		Reason:        reason,
		Notes:         notes,
		PreviousState: previous,
		NewState:      next,
		CreatedAt:     createdAt.UTC(),
	}, nil
}

package entities

import (
	"encoding/json"
	"strings"
	"time"

	domainerrors "vigil/contexts/moderation-safety/queue-engine/domain/errors"
)

type ContentType string

const (
	ContentTypeOrganization  ContentType = "organization"
	ContentTypeProduct       ContentType = "product"
	ContentTypeReview        ContentType = "review"
	ContentTypePost          ContentType = "post"
	ContentTypeMedia         ContentType = "media"
	ContentTypeDocument      ContentType = "document"
	ContentTypeCertification ContentType = "certification"
)

func (t ContentType) Valid() bool {
	switch t {
	case ContentTypeOrganization, ContentTypeProduct, ContentTypeReview,
		ContentTypePost, ContentTypeMedia, ContentTypeDocument, ContentTypeCertification:
		return true
	default:
		return false
	}
}

type Source string

const (
	SourceAutoFlag        Source = "auto_flag"
	SourceUserReport      Source = "user_report"
	SourceNewContent      Source = "new_content"
	SourceEdit            Source = "edit"
	SourceAppeal          Source = "appeal"
	SourceScheduledReview Source = "scheduled_review"
)

func (s Source) Valid() bool {
	switch s {
	case SourceAutoFlag, SourceUserReport, SourceNewContent,
		SourceEdit, SourceAppeal, SourceScheduledReview:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusInReview  Status = "in_review"
	StatusEscalated Status = "escalated"
	StatusAppealed  Status = "appealed"
	StatusResolved  Status = "resolved"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInReview, StatusEscalated, StatusAppealed, StatusResolved:
		return true
	default:
		return false
	}
}

// Open reports whether the item still needs moderator attention.
func (s Status) Open() bool {
	return s == StatusPending || s == StatusInReview || s == StatusEscalated
}

type ResolutionAction string

const (
	ResolutionApproved ResolutionAction = "approved"
	ResolutionRejected ResolutionAction = "rejected"
	ResolutionModified ResolutionAction = "modified"
	ResolutionDeleted  ResolutionAction = "deleted"
	ResolutionNoAction ResolutionAction = "no_action"
)

func (a ResolutionAction) Valid() bool {
	switch a {
	case ResolutionApproved, ResolutionRejected, ResolutionModified,
		ResolutionDeleted, ResolutionNoAction:
		return true
	default:
		return false
	}
}

// MaxEscalationLevel caps how far an item can climb before senior review is
// the only remaining path.
const MaxEscalationLevel = 3

// QueueItem is one unit of content awaiting a moderation decision. Rows are
// never physically deleted; resolved items remain for audit and analytics.
type QueueItem struct {
	ID                string
	ContentType       ContentType
	ContentID         string
	Source            Source
	Status            Status
	PriorityScore     int
	PriorityReasons   []string
	EscalationLevel   int
	EscalationReason  string
	ReportCount       int
	AIConfidenceScore *float64
	AIFlags           json.RawMessage
	ContentSnapshot   ContentSnapshot
	AssignedTo        string
	AssignedAt        *time.Time
	ResolvedAt        *time.Time
	ResolutionAction  ResolutionAction
	ResolutionNotes   string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewQueueItem(
	id string,
	contentType ContentType,
	contentID string,
	source Source,
	reportCount int,
	aiConfidence *float64,
	aiFlags json.RawMessage,
	snapshot ContentSnapshot,
	priorityScore int,
	priorityReasons []string,
	createdAt time.Time,
) (QueueItem, error) {
	if strings.TrimSpace(id) == "" || strings.TrimSpace(contentID) == "" {
		return QueueItem{}, domainerrors.ErrInvalidEnqueueRequest
	}
	if !contentType.Valid() || !source.Valid() {
		return QueueItem{}, domainerrors.ErrInvalidEnqueueRequest
	}
	if reportCount < 0 {
		return QueueItem{}, domainerrors.ErrInvalidEnqueueRequest
	}
	if aiConfidence != nil && (*aiConfidence < 0 || *aiConfidence > 1) {
		return QueueItem{}, domainerrors.ErrInvalidEnqueueRequest
	}
	if priorityScore < 0 || priorityScore > 100 {
		return QueueItem{}, domainerrors.ErrInvalidEnqueueRequest
	}

	return QueueItem{
		ID:                id,
		ContentType:       contentType,
		ContentID:         contentID,
		Source:            source,
		Status:            StatusPending,
		PriorityScore:     priorityScore,
		PriorityReasons:   append([]string(nil), priorityReasons...),
		EscalationLevel:   0,
		ReportCount:       reportCount,
		AIConfidenceScore: aiConfidence,
		AIFlags:           aiFlags,
		ContentSnapshot:   snapshot,
		CreatedAt:         createdAt.UTC(),
		UpdatedAt:         createdAt.UTC(),
	}, nil
}

// Claimable reports whether a claim attempt may transition the item to
// in_review. An in_review row with no assignee is claimable so that a repaired
// inconsistency never wedges an item.
func (q QueueItem) Claimable() bool {
	if q.Status == StatusPending || q.Status == StatusEscalated {
		return true
	}
	return q.Status == StatusInReview && q.AssignedTo == ""
}

// HeldBy reports whether the item is currently under review by the given
// moderator.
func (q QueueItem) HeldBy(moderatorID string) bool {
	return q.Status == StatusInReview && q.AssignedTo != "" && q.AssignedTo == moderatorID
}

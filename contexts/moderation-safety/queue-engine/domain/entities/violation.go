package entities

import (
	"strings"
	"time"

	domainerrors "vigil/contexts/moderation-safety/queue-engine/domain/errors"
)

type ViolatorType string

const (
	ViolatorTypeUser         ViolatorType = "user"
	ViolatorTypeOrganization ViolatorType = "organization"
)

func (t ViolatorType) Valid() bool {
	return t == ViolatorTypeUser || t == ViolatorTypeOrganization
}

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

type Consequence string

const (
	ConsequenceWarning        Consequence = "warning"
	ConsequenceContentRemoved Consequence = "content_removed"
)

// ViolatorRef identifies the external party held accountable for a violation.
type ViolatorRef struct {
	Type ViolatorType
	ID   string
}

// ViolationRecord is one confirmed violation in the append-only ledger. The
// scorer reads the ledger as a count of prior violations per violator.
type ViolationRecord struct {
	ViolationID   string
	ViolatorType  ViolatorType
	ViolatorID    string
	ViolationType string
	GuidelineCode string
	Severity      Severity
	ContentType   ContentType
	ContentID     string
	QueueItemID   string
	Consequence   Consequence
	Notes         string
	CreatedBy     string
	CreatedAt     time.Time
}

func NewViolationRecord(
	violationID string,
	violator ViolatorRef,
	violationType string,
	guidelineCode string,
	severity Severity,
	item QueueItem,
	consequence Consequence,
	notes string,
	createdBy string,
	createdAt time.Time,
) (ViolationRecord, error) {
	if strings.TrimSpace(violationID) == "" ||
		strings.TrimSpace(violator.ID) == "" ||
		strings.TrimSpace(violationType) == "" ||
		strings.TrimSpace(createdBy) == "" {
		return ViolationRecord{}, domainerrors.ErrInvalidModerationRequest
	}
	if !violator.Type.Valid() {
		return ViolationRecord{}, domainerrors.ErrInvalidModerationRequest
	}

	return ViolationRecord{
		ViolationID:   violationID,
		ViolatorType:  violator.Type,
		ViolatorID:    violator.ID,
		ViolationType: violationType,
		GuidelineCode: guidelineCode,
		Severity:      severity,
		ContentType:   item.ContentType,
		ContentID:     item.ContentID,
		QueueItemID:   item.ID,
		Consequence:   consequence,
		Notes:         notes,
		CreatedBy:     createdBy,
		CreatedAt:     createdAt.UTC(),
	}, nil
}

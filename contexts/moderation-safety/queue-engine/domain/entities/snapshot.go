package entities

import (
	"encoding/json"
	"time"
)

// SnapshotSchemaVersion is the current shape of ContentSnapshot payloads.
// Bump it when the envelope fields change so stored snapshots stay readable.
const SnapshotSchemaVersion = 1

// ContentSnapshot captures the content under review at enqueue time so that
// moderators judge what was flagged, not what the content later mutated into.
// Owner fields identify the accountable party when the content itself is not
// the violator (a review belongs to a user, a product to an organization).
// ContentCreatedAt feeds the age weight of the priority score when known.
type ContentSnapshot struct {
	SchemaVersion    int             `json:"schema_version"`
	OwnerType        string          `json:"owner_type,omitempty"`
	OwnerID          string          `json:"owner_id,omitempty"`
	Verified         bool            `json:"verified,omitempty"`
	ContentCreatedAt *time.Time      `json:"content_created_at,omitempty"`
	Fields           json.RawMessage `json:"fields,omitempty"`
}

// NewContentSnapshot stamps the current schema version onto a captured payload.
func NewContentSnapshot(
	ownerType string,
	ownerID string,
	verified bool,
	contentCreatedAt *time.Time,
	fields json.RawMessage,
) ContentSnapshot {
	return ContentSnapshot{
		SchemaVersion:    SnapshotSchemaVersion,
		OwnerType:        ownerType,
		OwnerID:          ownerID,
		Verified:         verified,
		ContentCreatedAt: contentCreatedAt,
		Fields:           fields,
	}
}

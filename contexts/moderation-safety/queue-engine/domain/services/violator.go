package services

import (
	"strings"

	"vigil/contexts/moderation-safety/queue-engine/domain/entities"
)

// DeriveViolator resolves the accountable party for a piece of content from
// its snapshot. An explicit owner recorded in the snapshot wins; organization
// content without one is accountable as itself. The boolean is false when no
// identity can be derived, in which case no violation ledger entry is written
// and no history weight applies.
func DeriveViolator(
	contentType entities.ContentType,
	contentID string,
	snapshot entities.ContentSnapshot,
) (entities.ViolatorRef, bool) {
	ownerType := entities.ViolatorType(strings.TrimSpace(snapshot.OwnerType))
	ownerID := strings.TrimSpace(snapshot.OwnerID)
	if ownerType.Valid() && ownerID != "" {
		return entities.ViolatorRef{Type: ownerType, ID: ownerID}, true
	}

	if contentType == entities.ContentTypeOrganization && strings.TrimSpace(contentID) != "" {
		return entities.ViolatorRef{Type: entities.ViolatorTypeOrganization, ID: contentID}, true
	}

	return entities.ViolatorRef{}, false
}

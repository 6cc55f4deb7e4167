package services

import (
	"strings"

	"vigil/contexts/moderation-safety/queue-engine/domain/entities"
)

var guidelineSeverities = map[string]entities.Severity{
	"safety.threats":        entities.SeverityCritical,
	"safety.hate":           entities.SeverityCritical,
	"safety.self_harm":      entities.SeverityCritical,
	"safety.harassment":     entities.SeverityHigh,
	"integrity.fraud":       entities.SeverityHigh,
	"integrity.impersonate": entities.SeverityHigh,
	"ip.counterfeit":        entities.SeverityHigh,
	"ip.copyright":          entities.SeverityMedium,
	"content.adult":         entities.SeverityMedium,
	"content.spam":          entities.SeverityMedium,
	"content.misinfo":       entities.SeverityMedium,
	"quality.profanity":     entities.SeverityLow,
	"quality.off_topic":     entities.SeverityLow,
}

// SeverityForGuideline looks up the severity attached to a community
// guideline code. Unknown or absent codes fall back to medium so a missing
// mapping never blocks a resolution.
func SeverityForGuideline(code string) entities.Severity {
	if severity, ok := guidelineSeverities[strings.ToLower(strings.TrimSpace(code))]; ok {
		return severity
	}
	return entities.SeverityMedium
}

// ConsequenceForAction derives the ledger consequence from the decision:
// deleted content was removed, anything else lands as a warning.
func ConsequenceForAction(action entities.ResolutionAction) entities.Consequence {
	if action == entities.ResolutionDeleted {
		return entities.ConsequenceContentRemoved
	}
	return entities.ConsequenceWarning
}

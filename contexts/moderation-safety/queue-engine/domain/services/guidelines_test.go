package services

import (
	"testing"

	"vigil/contexts/moderation-safety/queue-engine/domain/entities"
)

func TestSeverityForGuidelineKnownCodes(t *testing.T) {
	if got := SeverityForGuideline("safety.threats"); got != entities.SeverityCritical {
		t.Fatalf("expected critical for safety.threats, got %s", got)
	}
	if got := SeverityForGuideline("  Integrity.Fraud "); got != entities.SeverityHigh {
		t.Fatalf("expected lookup to normalize case and whitespace, got %s", got)
	}
	if got := SeverityForGuideline("quality.profanity"); got != entities.SeverityLow {
		t.Fatalf("expected low for quality.profanity, got %s", got)
	}
}

func TestSeverityForGuidelineUnknownFallsBackToMedium(t *testing.T) {
	if got := SeverityForGuideline("made.up.code"); got != entities.SeverityMedium {
		t.Fatalf("expected medium fallback, got %s", got)
	}
	if got := SeverityForGuideline(""); got != entities.SeverityMedium {
		t.Fatalf("expected medium fallback for empty code, got %s", got)
	}
}

func TestConsequenceForActionFollowsDecision(t *testing.T) {
	if got := ConsequenceForAction(entities.ResolutionDeleted); got != entities.ConsequenceContentRemoved {
		t.Fatalf("expected content_removed for deleted, got %s", got)
	}
	if got := ConsequenceForAction(entities.ResolutionRejected); got != entities.ConsequenceWarning {
		t.Fatalf("expected warning for rejected, got %s", got)
	}
}

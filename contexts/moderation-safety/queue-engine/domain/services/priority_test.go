package services

import (
	"testing"
	"time"

	"vigil/contexts/moderation-safety/queue-engine/domain/entities"
)

func floatPtr(v float64) *float64 { return &v }

func TestScorePriorityUserReportedReviewWithAISignal(t *testing.T) {
	result := ScorePriority(ScoreInput{
		ContentType:  entities.ContentTypeReview,
		Source:       entities.SourceUserReport,
		ReportCount:  3,
		AIConfidence: floatPtr(0.6),
	})

	// 50 base + 5 review + 15 user_report + 15 reports + 9 ai.
	if result.Score != 94 {
		t.Fatalf("expected score 94, got %d", result.Score)
	}

	expectedReasons := map[string]bool{
		"content_type_review":  false,
		"source_user_report":   false,
		"reports_x3":           false,
		"ai_confidence_60_pct": false,
	}
	for _, reason := range result.Reasons {
		if _, tracked := expectedReasons[reason]; tracked {
			expectedReasons[reason] = true
		}
	}
	for reason, seen := range expectedReasons {
		if !seen {
			t.Fatalf("expected reason %q in %v", reason, result.Reasons)
		}
	}
}

func TestScorePriorityClampsToUpperBound(t *testing.T) {
	result := ScorePriority(ScoreInput{
		ContentType:          entities.ContentTypeCertification,
		Source:               entities.SourceUserReport,
		ReportCount:          20,
		AIConfidence:         floatPtr(1.0),
		ViolatorHistoryCount: 10,
		VerifiedBusiness:     true,
	})
	if result.Score != 100 {
		t.Fatalf("expected clamped score 100, got %d", result.Score)
	}
}

func TestScorePriorityNeverGoesNegative(t *testing.T) {
	result := ScorePriority(ScoreInput{
		ContentType: entities.ContentTypeMedia,
		Source:      entities.SourceNewContent,
		ContentAge:  30 * time.Hour,
	})
	if result.Score < 0 || result.Score > 100 {
		t.Fatalf("score out of bounds: %d", result.Score)
	}
	// 50 base + 2 media + 0 new_content - 5 aging.
	if result.Score != 47 {
		t.Fatalf("expected score 47, got %d", result.Score)
	}
}

func TestScorePriorityCapsReportWeight(t *testing.T) {
	result := ScorePriority(ScoreInput{
		ContentType: entities.ContentTypePost,
		Source:      entities.SourceEdit,
		ReportCount: 12,
	})
	if result.Breakdown.Reports != 30 {
		t.Fatalf("expected report weight capped at 30, got %d", result.Breakdown.Reports)
	}
}

func TestScorePriorityCapsViolatorHistoryWeight(t *testing.T) {
	result := ScorePriority(ScoreInput{
		ContentType:          entities.ContentTypePost,
		Source:               entities.SourceEdit,
		ViolatorHistoryCount: 6,
	})
	if result.Breakdown.ViolatorHistory != 35 {
		t.Fatalf("expected history weight capped at 35, got %d", result.Breakdown.ViolatorHistory)
	}
}

func TestScorePriorityMonotonicInReportCount(t *testing.T) {
	base := ScoreInput{
		ContentType: entities.ContentTypeReview,
		Source:      entities.SourceAutoFlag,
	}
	previous := -1
	for reports := 0; reports <= 10; reports++ {
		input := base
		input.ReportCount = reports
		score := ScorePriority(input).Score
		if score < previous {
			t.Fatalf("score decreased from %d to %d at report_count=%d", previous, score, reports)
		}
		previous = score
	}
}

func TestScorePriorityAgeBands(t *testing.T) {
	cases := []struct {
		name     string
		age      time.Duration
		expected int
	}{
		{name: "fresh content carries no age weight", age: 2 * time.Hour, expected: 0},
		{name: "content between 24h and 72h is deprioritized", age: 30 * time.Hour, expected: -5},
		{name: "content past 72h gets the stale bump", age: 80 * time.Hour, expected: 10},
	}
	for _, tc := range cases {
		result := ScorePriority(ScoreInput{
			ContentType: entities.ContentTypeReview,
			Source:      entities.SourceAutoFlag,
			ContentAge:  tc.age,
		})
		if result.Breakdown.Age != tc.expected {
			t.Fatalf("%s: expected age weight %d, got %d", tc.name, tc.expected, result.Breakdown.Age)
		}
	}
}

func TestScorePriorityZeroAIConfidenceAddsNothing(t *testing.T) {
	result := ScorePriority(ScoreInput{
		ContentType:  entities.ContentTypeReview,
		Source:       entities.SourceAutoFlag,
		AIConfidence: floatPtr(0),
	})
	if result.Breakdown.AIConfidence != 0 {
		t.Fatalf("expected zero ai weight, got %d", result.Breakdown.AIConfidence)
	}
	for _, reason := range result.Reasons {
		if reason == "ai_confidence_0_pct" {
			t.Fatalf("zero confidence must not produce a reason entry")
		}
	}
}

func TestBoostForEscalationAddsFifteenAndClamps(t *testing.T) {
	if got := BoostForEscalation(60); got != 75 {
		t.Fatalf("expected boost to 75, got %d", got)
	}
	if got := BoostForEscalation(95); got != 100 {
		t.Fatalf("expected boost clamped at 100, got %d", got)
	}
}

func TestEscalationReasonTagNamesLevel(t *testing.T) {
	if got := EscalationReasonTag(2); got != "escalated_level_2" {
		t.Fatalf("unexpected escalation reason tag %q", got)
	}
}

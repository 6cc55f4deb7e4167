package services

import (
	"fmt"
	"math"
	"time"

	"vigil/contexts/moderation-safety/queue-engine/domain/entities"
)

const (
	basePriority       = 50
	reportWeightPer    = 5
	reportWeightCap    = 30
	aiWeightScale      = 15
	violatorWeightPer  = 12
	violatorWeightCap  = 35
	staleAgeBonus      = 10
	recentAgePenalty   = -5
	verifiedBonus      = 8
	escalationBoost    = 15
	staleAgeThreshold  = 72 * time.Hour
	recentAgeThreshold = 24 * time.Hour
)

var contentTypeWeights = map[entities.ContentType]int{
	entities.ContentTypeCertification: 25,
	entities.ContentTypeDocument:      20,
	entities.ContentTypeOrganization:  15,
	entities.ContentTypeProduct:       10,
	entities.ContentTypeReview:        5,
	entities.ContentTypePost:          3,
	entities.ContentTypeMedia:         2,
}

var sourceWeights = map[entities.Source]int{
	entities.SourceUserReport:      15,
	entities.SourceAppeal:          12,
	entities.SourceAutoFlag:        8,
	entities.SourceScheduledReview: 3,
}

// ScoreInput carries every signal the scorer weighs. ContentAge is measured
// from the content's own creation time, not enqueue time.
type ScoreInput struct {
	ContentType          entities.ContentType
	Source               entities.Source
	ReportCount          int
	AIConfidence         *float64
	ViolatorHistoryCount int
	ContentAge           time.Duration
	VerifiedBusiness     bool
}

// ScoreBreakdown itemizes each additive weight for observability. The final
// score is derived from the sum, clamped, never from re-adding the parts.
type ScoreBreakdown struct {
	Base            int `json:"base"`
	ContentType     int `json:"content_type"`
	Source          int `json:"source"`
	Reports         int `json:"reports"`
	AIConfidence    int `json:"ai_confidence"`
	ViolatorHistory int `json:"violator_history"`
	Age             int `json:"age"`
	Verified        int `json:"verified"`
}

type ScoreResult struct {
	Score     int
	Reasons   []string
	Breakdown ScoreBreakdown
}

// ScorePriority computes the deterministic additive priority for a new queue
// item. No I/O, no side effects; every nonzero weight contributes one reason
// string for reviewer context.
func ScorePriority(input ScoreInput) ScoreResult {
	breakdown := ScoreBreakdown{Base: basePriority}
	reasons := make([]string, 0, 7)

	if w := contentTypeWeights[input.ContentType]; w != 0 {
		breakdown.ContentType = w
		reasons = append(reasons, fmt.Sprintf("content_type_%s", input.ContentType))
	}

	if w := sourceWeights[input.Source]; w != 0 {
		breakdown.Source = w
		reasons = append(reasons, fmt.Sprintf("source_%s", input.Source))
	}

	if input.ReportCount > 0 {
		w := input.ReportCount * reportWeightPer
		if w > reportWeightCap {
			w = reportWeightCap
		}
		breakdown.Reports = w
		reasons = append(reasons, fmt.Sprintf("reports_x%d", input.ReportCount))
	}

	if input.AIConfidence != nil {
		w := int(math.Round(*input.AIConfidence * aiWeightScale))
		if w != 0 {
			breakdown.AIConfidence = w
			reasons = append(reasons, fmt.Sprintf("ai_confidence_%d_pct", int(math.Round(*input.AIConfidence*100))))
		}
	}

	if input.ViolatorHistoryCount > 0 {
		w := input.ViolatorHistoryCount * violatorWeightPer
		if w > violatorWeightCap {
			w = violatorWeightCap
		}
		breakdown.ViolatorHistory = w
		reasons = append(reasons, fmt.Sprintf("prior_violations_x%d", input.ViolatorHistoryCount))
	}

	if input.ContentAge > staleAgeThreshold {
		breakdown.Age = staleAgeBonus
		reasons = append(reasons, "stale_over_72h")
	} else if input.ContentAge >= recentAgeThreshold {
		breakdown.Age = recentAgePenalty
		reasons = append(reasons, "aging_24_to_72h")
	}

	if input.VerifiedBusiness {
		breakdown.Verified = verifiedBonus
		reasons = append(reasons, "verified_business")
	}

	score := breakdown.Base + breakdown.ContentType + breakdown.Source +
		breakdown.Reports + breakdown.AIConfidence + breakdown.ViolatorHistory +
		breakdown.Age + breakdown.Verified
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return ScoreResult{Score: score, Reasons: reasons, Breakdown: breakdown}
}

// BoostForEscalation bumps an escalated item's score so it jumps the queue.
func BoostForEscalation(score int) int {
	boosted := score + escalationBoost
	if boosted > 100 {
		boosted = 100
	}
	return boosted
}

// EscalationReasonTag names the reason entry appended at each escalation.
func EscalationReasonTag(level int) string {
	return fmt.Sprintf("escalated_level_%d", level)
}

package httptransport

import "encoding/json"

type ErrorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Status    string    `json:"status"`
	Error     ErrorBody `json:"error"`
	Timestamp string    `json:"timestamp"`
}

type SnapshotDTO struct {
	SchemaVersion    int             `json:"schema_version,omitempty"`
	OwnerType        string          `json:"owner_type,omitempty"`
	OwnerID          string          `json:"owner_id,omitempty"`
	Verified         bool            `json:"verified,omitempty"`
	ContentCreatedAt string          `json:"content_created_at,omitempty"`
	Fields           json.RawMessage `json:"fields,omitempty"`
}

type QueueItemDTO struct {
	ItemID            string          `json:"item_id"`
	ContentType       string          `json:"content_type"`
	ContentID         string          `json:"content_id"`
	Source            string          `json:"source"`
	Status            string          `json:"status"`
	PriorityScore     int             `json:"priority_score"`
	PriorityReasons   []string        `json:"priority_reasons,omitempty"`
	EscalationLevel   int             `json:"escalation_level"`
	EscalationReason  string          `json:"escalation_reason,omitempty"`
	ReportCount       int             `json:"report_count"`
	AIConfidenceScore *float64        `json:"ai_confidence_score,omitempty"`
	AIFlags           json.RawMessage `json:"ai_flags,omitempty"`
	ContentSnapshot   SnapshotDTO     `json:"content_snapshot"`
	AssignedTo        string          `json:"assigned_to,omitempty"`
	AssignedAt        string          `json:"assigned_at,omitempty"`
	ResolvedAt        string          `json:"resolved_at,omitempty"`
	ResolutionAction  string          `json:"resolution_action,omitempty"`
	ResolutionNotes   string          `json:"resolution_notes,omitempty"`
	CreatedAt         string          `json:"created_at"`
	UpdatedAt         string          `json:"updated_at"`
}

type StateDTO struct {
	Status           string   `json:"status"`
	AssignedTo       string   `json:"assigned_to,omitempty"`
	AssignedAt       string   `json:"assigned_at,omitempty"`
	EscalationLevel  int      `json:"escalation_level"`
	EscalationReason string   `json:"escalation_reason,omitempty"`
	PriorityScore    int      `json:"priority_score"`
	PriorityReasons  []string `json:"priority_reasons,omitempty"`
	ResolutionAction string   `json:"resolution_action,omitempty"`
	ResolutionNotes  string   `json:"resolution_notes,omitempty"`
	ResolvedAt       string   `json:"resolved_at,omitempty"`
	UpdatedAt        string   `json:"updated_at"`
}

type ActionDTO struct {
	ActionID      string   `json:"action_id"`
	QueueItemID   string   `json:"queue_item_id"`
	ContentType   string   `json:"content_type"`
	ContentID     string   `json:"content_id"`
	Action        string   `json:"action"`
	ActionBy      string   `json:"action_by"`
	Reason        string   `json:"reason,omitempty"`
	Notes         string   `json:"notes,omitempty"`
	PreviousState StateDTO `json:"previous_state"`
	NewState      StateDTO `json:"new_state"`
	ViolationType string   `json:"violation_type,omitempty"`
	GuidelineRef  string   `json:"guideline_ref,omitempty"`
	CreatedAt     string   `json:"created_at"`
}

type ViolationDTO struct {
	ViolationID   string `json:"violation_id"`
	ViolatorType  string `json:"violator_type"`
	ViolatorID    string `json:"violator_id"`
	ViolationType string `json:"violation_type"`
	GuidelineCode string `json:"guideline_code,omitempty"`
	Severity      string `json:"severity"`
	ContentType   string `json:"content_type"`
	ContentID     string `json:"content_id"`
	QueueItemID   string `json:"queue_item_id"`
	Consequence   string `json:"consequence"`
	Notes         string `json:"notes,omitempty"`
	CreatedBy     string `json:"created_by"`
	CreatedAt     string `json:"created_at"`
}

type NoteDTO struct {
	NoteID      string `json:"note_id"`
	SubjectType string `json:"subject_type"`
	SubjectID   string `json:"subject_id"`
	AuthorID    string `json:"author_id"`
	Body        string `json:"body"`
	CreatedAt   string `json:"created_at"`
}

type EnqueueRequest struct {
	ContentType       string          `json:"content_type"`
	ContentID         string          `json:"content_id"`
	Source            string          `json:"source"`
	ReportCount       int             `json:"report_count,omitempty"`
	AIConfidenceScore *float64        `json:"ai_confidence_score,omitempty"`
	AIFlags           json.RawMessage `json:"ai_flags,omitempty"`
	ContentSnapshot   SnapshotDTO     `json:"content_snapshot"`
}

type ListQueueRequest struct {
	Status      string `json:"status,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	Source      string `json:"source,omitempty"`
	MinPriority int    `json:"min_priority,omitempty"`
	OrderBy     string `json:"order_by,omitempty"`
	Limit       int    `json:"limit,omitempty"`
	Offset      int    `json:"offset,omitempty"`
}

type EnqueueData struct {
	Item     QueueItemDTO `json:"item"`
	Replayed bool         `json:"replayed,omitempty"`
}

type EnqueueResponse struct {
	Status    string      `json:"status"`
	Data      EnqueueData `json:"data"`
	Timestamp string      `json:"timestamp"`
}

type ListQueueData struct {
	Items  []QueueItemDTO `json:"items"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

type ListQueueResponse struct {
	Status    string        `json:"status"`
	Data      ListQueueData `json:"data"`
	Timestamp string        `json:"timestamp"`
}

type GetItemData struct {
	Item QueueItemDTO `json:"item"`
}

type GetItemResponse struct {
	Status    string      `json:"status"`
	Data      GetItemData `json:"data"`
	Timestamp string      `json:"timestamp"`
}

type GetNextRequest struct {
	ContentType   string `json:"content_type,omitempty"`
	MinEscalation int    `json:"min_escalation,omitempty"`
	MaxEscalation *int   `json:"max_escalation,omitempty"`
}

type GetNextData struct {
	Found bool          `json:"found"`
	Item  *QueueItemDTO `json:"item,omitempty"`
}

type GetNextResponse struct {
	Status    string      `json:"status"`
	Data      GetNextData `json:"data"`
	Timestamp string      `json:"timestamp"`
}

type ClaimData struct {
	Item QueueItemDTO `json:"item"`
}

type ClaimResponse struct {
	Status    string    `json:"status"`
	Data      ClaimData `json:"data"`
	Timestamp string    `json:"timestamp"`
}

type ReleaseRequest struct {
	Reason string `json:"reason,omitempty"`
}

type ReleaseData struct {
	Item QueueItemDTO `json:"item"`
}

type ReleaseResponse struct {
	Status    string      `json:"status"`
	Data      ReleaseData `json:"data"`
	Timestamp string      `json:"timestamp"`
}

type ResolveRequest struct {
	Action        string `json:"action"`
	ViolationType string `json:"violation_type,omitempty"`
	GuidelineCode string `json:"guideline_code,omitempty"`
	Notes         string `json:"notes,omitempty"`
	NotifyUser    bool   `json:"notify_user,omitempty"`
}

type ResolveData struct {
	Item      QueueItemDTO  `json:"item"`
	Violation *ViolationDTO `json:"violation,omitempty"`
}

type ResolveResponse struct {
	Status    string      `json:"status"`
	Data      ResolveData `json:"data"`
	Timestamp string      `json:"timestamp"`
}

type EscalateRequest struct {
	Reason      string `json:"reason"`
	TargetLevel *int   `json:"target_level,omitempty"`
}

type EscalateData struct {
	Item          QueueItemDTO `json:"item"`
	PreviousLevel int          `json:"previous_level"`
	NewLevel      int          `json:"new_level"`
}

type EscalateResponse struct {
	Status    string       `json:"status"`
	Data      EscalateData `json:"data"`
	Timestamp string       `json:"timestamp"`
}

type ListActionsData struct {
	Items []ActionDTO `json:"items"`
}

type ListActionsResponse struct {
	Status    string          `json:"status"`
	Data      ListActionsData `json:"data"`
	Timestamp string          `json:"timestamp"`
}

type StatsData struct {
	StatusCounts          map[string]int `json:"status_counts"`
	PendingByContentType  map[string]int `json:"pending_by_content_type"`
	ResolvedLast24h       int            `json:"resolved_last_24h"`
	Overdue               int            `json:"overdue"`
	MeanResolutionSeconds float64        `json:"mean_resolution_seconds"`
	HighEscalation        int            `json:"high_escalation"`
}

type StatsResponse struct {
	Status    string    `json:"status"`
	Data      StatsData `json:"data"`
	Timestamp string    `json:"timestamp"`
}

type ListViolationsData struct {
	Items []ViolationDTO `json:"items"`
	Total int            `json:"total"`
}

type ListViolationsResponse struct {
	Status    string             `json:"status"`
	Data      ListViolationsData `json:"data"`
	Timestamp string             `json:"timestamp"`
}

type AddNoteRequest struct {
	SubjectType string `json:"subject_type"`
	SubjectID   string `json:"subject_id"`
	Body        string `json:"body"`
}

type AddNoteData struct {
	Note NoteDTO `json:"note"`
}

type AddNoteResponse struct {
	Status    string      `json:"status"`
	Data      AddNoteData `json:"data"`
	Timestamp string      `json:"timestamp"`
}

type ListNotesData struct {
	Items []NoteDTO `json:"items"`
}

type ListNotesResponse struct {
	Status    string        `json:"status"`
	Data      ListNotesData `json:"data"`
	Timestamp string        `json:"timestamp"`
}

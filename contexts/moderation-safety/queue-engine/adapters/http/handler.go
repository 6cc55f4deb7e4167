package httpadapter

import (
	"context"
	"log/slog"
	"time"

	application "vigil/contexts/moderation-safety/queue-engine/application"
	"vigil/contexts/moderation-safety/queue-engine/application/commands"
	"vigil/contexts/moderation-safety/queue-engine/application/queries"
	"vigil/contexts/moderation-safety/queue-engine/domain/entities"
	domainerrors "vigil/contexts/moderation-safety/queue-engine/domain/errors"
	httptransport "vigil/contexts/moderation-safety/queue-engine/transport/http"
)

type Handler struct {
	EnqueueItem    commands.EnqueueItemUseCase
	GetNextItem    commands.GetNextItemUseCase
	ClaimItem      commands.ClaimItemUseCase
	ReleaseItem    commands.ReleaseItemUseCase
	ResolveItem    commands.ResolveItemUseCase
	EscalateItem   commands.EscalateItemUseCase
	AddNote        commands.AddNoteUseCase
	GetItem        queries.GetItemUseCase
	ListQueue      queries.ListQueueUseCase
	GetStats       queries.GetStatsUseCase
	ListActions    queries.ListActionsUseCase
	ListViolations queries.ListViolationsUseCase
	ListNotes      queries.ListNotesUseCase
	Logger         *slog.Logger
}

// EnqueueHandler godoc
// @Summary Enqueue content for moderation
// @Description Scores and inserts a content item into the moderation queue. Idempotent per Idempotency-Key.
// @Tags moderation-queue
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Request-Id header string true "Request correlation id"
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body httptransport.EnqueueRequest true "Enqueue payload"
// @Success 201 {object} httptransport.EnqueueResponse
// @Failure 400 {object} httptransport.ErrorEnvelope
// @Failure 401 {object} httptransport.ErrorEnvelope
// @Failure 409 {object} httptransport.ErrorEnvelope
// @Failure 500 {object} httptransport.ErrorEnvelope
// @Router /api/v1/moderation/queue [post]
func (h Handler) EnqueueHandler(
	ctx context.Context,
	idempotencyKey string,
	req httptransport.EnqueueRequest,
) (httptransport.EnqueueResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Info("enqueue request received",
		"event", "http_enqueue_received",
		"module", "moderation-safety/queue-engine",
		"layer", "transport",
		"content_type", req.ContentType,
		"content_id", req.ContentID,
	)

	snapshot, err := snapshotFromDTO(req.ContentSnapshot)
	if err != nil {
		return httptransport.EnqueueResponse{}, err
	}

	result, err := h.EnqueueItem.Execute(ctx, commands.EnqueueItemCommand{
		ContentType:     req.ContentType,
		ContentID:       req.ContentID,
		Source:          req.Source,
		AIConfidence:    req.AIConfidenceScore,
		AIFlags:         req.AIFlags,
		ReportCount:     req.ReportCount,
		ContentSnapshot: snapshot,
		IdempotencyKey:  idempotencyKey,
	})
	if err != nil {
		logger.Error("enqueue request failed",
			"event", "http_enqueue_failed",
			"module", "moderation-safety/queue-engine",
			"layer", "transport",
			"content_id", req.ContentID,
			"error", err.Error(),
		)
		return httptransport.EnqueueResponse{}, err
	}

	return httptransport.EnqueueResponse{
		Status: "success",
		Data: httptransport.EnqueueData{
			Item:     mapItem(result.Item),
			Replayed: result.Replayed,
		},
		Timestamp: nowStamp(),
	}, nil
}

// ListQueueHandler godoc
// @Summary List queue items
// @Description Returns queue items with filters and offset pagination.
// @Tags moderation-queue
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Request-Id header string true "Request correlation id"
// @Param status query string false "Status filter"
// @Param content_type query string false "Content type filter"
// @Param source query string false "Source filter"
// @Param min_priority query int false "Minimum priority score"
// @Param order_by query string false "Sort: priority,created_at"
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} httptransport.ListQueueResponse
// @Failure 400 {object} httptransport.ErrorEnvelope
// @Failure 401 {object} httptransport.ErrorEnvelope
// @Failure 500 {object} httptransport.ErrorEnvelope
// @Router /api/v1/moderation/queue [get]
func (h Handler) ListQueueHandler(
	ctx context.Context,
	req httptransport.ListQueueRequest,
) (httptransport.ListQueueResponse, error) {
	result, err := h.ListQueue.Execute(ctx, queries.ListQueueQuery{
		Status:      req.Status,
		ContentType: req.ContentType,
		Source:      req.Source,
		MinPriority: req.MinPriority,
		OrderBy:     req.OrderBy,
		Limit:       req.Limit,
		Offset:      req.Offset,
	})
	if err != nil {
		return httptransport.ListQueueResponse{}, err
	}

	return httptransport.ListQueueResponse{
		Status: "success",
		Data: httptransport.ListQueueData{
			Items:  mapItems(result.Items),
			Total:  result.Total,
			Limit:  result.Limit,
			Offset: result.Offset,
		},
		Timestamp: nowStamp(),
	}, nil
}

// GetItemHandler godoc
// @Summary Get queue item
// @Description Returns one queue item by id.
// @Tags moderation-queue
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Request-Id header string true "Request correlation id"
// @Param item_id path string true "Queue item id"
// @Success 200 {object} httptransport.GetItemResponse
// @Failure 401 {object} httptransport.ErrorEnvelope
// @Failure 404 {object} httptransport.ErrorEnvelope
// @Failure 500 {object} httptransport.ErrorEnvelope
// @Router /api/v1/moderation/queue/{item_id} [get]
func (h Handler) GetItemHandler(ctx context.Context, itemID string) (httptransport.GetItemResponse, error) {
	result, err := h.GetItem.Execute(ctx, queries.GetItemQuery{ItemID: itemID})
	if err != nil {
		return httptransport.GetItemResponse{}, err
	}
	return httptransport.GetItemResponse{
		Status:    "success",
		Data:      httptransport.GetItemData{Item: mapItem(result.Item)},
		Timestamp: nowStamp(),
	}, nil
}

// GetNextHandler godoc
// @Summary Claim the next best queue item
// @Description Atomically selects and claims the highest-ranked open item for the caller.
// @Tags moderation-queue
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Request-Id header string true "Request correlation id"
// @Param request body httptransport.GetNextRequest false "Selection filters"
// @Success 200 {object} httptransport.GetNextResponse
// @Failure 400 {object} httptransport.ErrorEnvelope
// @Failure 401 {object} httptransport.ErrorEnvelope
// @Failure 500 {object} httptransport.ErrorEnvelope
// @Router /api/v1/moderation/queue/next [post]
func (h Handler) GetNextHandler(
	ctx context.Context,
	moderatorID string,
	req httptransport.GetNextRequest,
) (httptransport.GetNextResponse, error) {
	// An omitted max_escalation opens the window to the cap; an explicit 0
	// restricts selection to unescalated items.
	maxEscalation := entities.MaxEscalationLevel
	if req.MaxEscalation != nil {
		maxEscalation = *req.MaxEscalation
	}
	result, err := h.GetNextItem.Execute(ctx, commands.GetNextItemCommand{
		ModeratorID:   moderatorID,
		ContentType:   req.ContentType,
		MinEscalation: req.MinEscalation,
		MaxEscalation: maxEscalation,
	})
	if err != nil {
		return httptransport.GetNextResponse{}, err
	}

	data := httptransport.GetNextData{Found: result.Found}
	if result.Found {
		item := mapItem(result.Item)
		data.Item = &item
	}
	return httptransport.GetNextResponse{
		Status:    "success",
		Data:      data,
		Timestamp: nowStamp(),
	}, nil
}

// ClaimHandler godoc
// @Summary Claim a queue item
// @Description Assigns the item exclusively to the calling moderator.
// @Tags moderation-queue
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Request-Id header string true "Request correlation id"
// @Param item_id path string true "Queue item id"
// @Success 200 {object} httptransport.ClaimResponse
// @Failure 401 {object} httptransport.ErrorEnvelope
// @Failure 404 {object} httptransport.ErrorEnvelope
// @Failure 409 {object} httptransport.ErrorEnvelope
// @Failure 500 {object} httptransport.ErrorEnvelope
// @Router /api/v1/moderation/queue/{item_id}/claim [post]
func (h Handler) ClaimHandler(ctx context.Context, moderatorID string, itemID string) (httptransport.ClaimResponse, error) {
	result, err := h.ClaimItem.Execute(ctx, commands.ClaimItemCommand{
		ItemID:      itemID,
		ModeratorID: moderatorID,
	})
	if err != nil {
		return httptransport.ClaimResponse{}, err
	}
	return httptransport.ClaimResponse{
		Status:    "success",
		Data:      httptransport.ClaimData{Item: mapItem(result.Item)},
		Timestamp: nowStamp(),
	}, nil
}

// ReleaseHandler godoc
// @Summary Release a claimed queue item
// @Description Returns the item to the open pool. Only the current assignee may release.
// @Tags moderation-queue
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Request-Id header string true "Request correlation id"
// @Param item_id path string true "Queue item id"
// @Param request body httptransport.ReleaseRequest false "Release payload"
// @Success 200 {object} httptransport.ReleaseResponse
// @Failure 401 {object} httptransport.ErrorEnvelope
// @Failure 403 {object} httptransport.ErrorEnvelope
// @Failure 404 {object} httptransport.ErrorEnvelope
// @Failure 409 {object} httptransport.ErrorEnvelope
// @Failure 500 {object} httptransport.ErrorEnvelope
// @Router /api/v1/moderation/queue/{item_id}/release [post]
func (h Handler) ReleaseHandler(
	ctx context.Context,
	moderatorID string,
	itemID string,
	req httptransport.ReleaseRequest,
) (httptransport.ReleaseResponse, error) {
	result, err := h.ReleaseItem.Execute(ctx, commands.ReleaseItemCommand{
		ItemID:      itemID,
		ModeratorID: moderatorID,
		Reason:      req.Reason,
	})
	if err != nil {
		return httptransport.ReleaseResponse{}, err
	}
	return httptransport.ReleaseResponse{
		Status:    "success",
		Data:      httptransport.ReleaseData{Item: mapItem(result.Item)},
		Timestamp: nowStamp(),
	}, nil
}

// ResolveHandler godoc
// @Summary Resolve a queue item
// @Description Applies a terminal decision and records a violation when applicable.
// @Tags moderation-queue
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Request-Id header string true "Request correlation id"
// @Param item_id path string true "Queue item id"
// @Param request body httptransport.ResolveRequest true "Resolution payload"
// @Success 200 {object} httptransport.ResolveResponse
// @Failure 400 {object} httptransport.ErrorEnvelope
// @Failure 401 {object} httptransport.ErrorEnvelope
// @Failure 403 {object} httptransport.ErrorEnvelope
// @Failure 404 {object} httptransport.ErrorEnvelope
// @Failure 409 {object} httptransport.ErrorEnvelope
// @Failure 500 {object} httptransport.ErrorEnvelope
// @Router /api/v1/moderation/queue/{item_id}/resolve [post]
func (h Handler) ResolveHandler(
	ctx context.Context,
	moderatorID string,
	itemID string,
	req httptransport.ResolveRequest,
) (httptransport.ResolveResponse, error) {
	result, err := h.ResolveItem.Execute(ctx, commands.ResolveItemCommand{
		ItemID:        itemID,
		ModeratorID:   moderatorID,
		Action:        req.Action,
		ViolationType: req.ViolationType,
		GuidelineCode: req.GuidelineCode,
		Notes:         req.Notes,
		NotifyUser:    req.NotifyUser,
	})
	if err != nil {
		return httptransport.ResolveResponse{}, err
	}

	data := httptransport.ResolveData{Item: mapItem(result.Item)}
	if result.Violation != nil {
		violation := mapViolation(*result.Violation)
		data.Violation = &violation
	}
	return httptransport.ResolveResponse{
		Status:    "success",
		Data:      data,
		Timestamp: nowStamp(),
	}, nil
}

// EscalateHandler godoc
// @Summary Escalate a queue item
// @Description Raises the escalation level and returns the item to the open pool.
// @Tags moderation-queue
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Request-Id header string true "Request correlation id"
// @Param item_id path string true "Queue item id"
// @Param request body httptransport.EscalateRequest true "Escalation payload"
// @Success 200 {object} httptransport.EscalateResponse
// @Failure 400 {object} httptransport.ErrorEnvelope
// @Failure 401 {object} httptransport.ErrorEnvelope
// @Failure 404 {object} httptransport.ErrorEnvelope
// @Failure 409 {object} httptransport.ErrorEnvelope
// @Failure 422 {object} httptransport.ErrorEnvelope
// @Failure 500 {object} httptransport.ErrorEnvelope
// @Router /api/v1/moderation/queue/{item_id}/escalate [post]
func (h Handler) EscalateHandler(
	ctx context.Context,
	moderatorID string,
	itemID string,
	req httptransport.EscalateRequest,
) (httptransport.EscalateResponse, error) {
	result, err := h.EscalateItem.Execute(ctx, commands.EscalateItemCommand{
		ItemID:      itemID,
		ModeratorID: moderatorID,
		Reason:      req.Reason,
		TargetLevel: req.TargetLevel,
	})
	if err != nil {
		return httptransport.EscalateResponse{}, err
	}
	return httptransport.EscalateResponse{
		Status: "success",
		Data: httptransport.EscalateData{
			Item:          mapItem(result.Item),
			PreviousLevel: result.PreviousLevel,
			NewLevel:      result.NewLevel,
		},
		Timestamp: nowStamp(),
	}, nil
}

// ListActionsHandler godoc
// @Summary List item audit history
// @Description Returns the moderation action trail for one item, oldest first.
// @Tags moderation-queue
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Request-Id header string true "Request correlation id"
// @Param item_id path string true "Queue item id"
// @Success 200 {object} httptransport.ListActionsResponse
// @Failure 401 {object} httptransport.ErrorEnvelope
// @Failure 404 {object} httptransport.ErrorEnvelope
// @Failure 500 {object} httptransport.ErrorEnvelope
// @Router /api/v1/moderation/queue/{item_id}/history [get]
func (h Handler) ListActionsHandler(ctx context.Context, itemID string) (httptransport.ListActionsResponse, error) {
	result, err := h.ListActions.Execute(ctx, queries.ListActionsQuery{ItemID: itemID})
	if err != nil {
		return httptransport.ListActionsResponse{}, err
	}

	items := make([]httptransport.ActionDTO, 0, len(result.Items))
	for _, action := range result.Items {
		items = append(items, mapAction(action))
	}
	return httptransport.ListActionsResponse{
		Status:    "success",
		Data:      httptransport.ListActionsData{Items: items},
		Timestamp: nowStamp(),
	}, nil
}

// StatsHandler godoc
// @Summary Queue statistics
// @Description Returns live queue aggregates for dashboards.
// @Tags moderation-queue
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Request-Id header string true "Request correlation id"
// @Success 200 {object} httptransport.StatsResponse
// @Failure 401 {object} httptransport.ErrorEnvelope
// @Failure 500 {object} httptransport.ErrorEnvelope
// @Router /api/v1/moderation/queue/stats [get]
func (h Handler) StatsHandler(ctx context.Context) (httptransport.StatsResponse, error) {
	result, err := h.GetStats.Execute(ctx)
	if err != nil {
		return httptransport.StatsResponse{}, err
	}

	statusCounts := make(map[string]int, len(result.Stats.StatusCounts))
	for status, count := range result.Stats.StatusCounts {
		statusCounts[string(status)] = count
	}
	pendingByType := make(map[string]int, len(result.Stats.PendingByContentType))
	for contentType, count := range result.Stats.PendingByContentType {
		pendingByType[string(contentType)] = count
	}

	return httptransport.StatsResponse{
		Status: "success",
		Data: httptransport.StatsData{
			StatusCounts:          statusCounts,
			PendingByContentType:  pendingByType,
			ResolvedLast24h:       result.Stats.ResolvedLast24h,
			Overdue:               result.Stats.Overdue,
			MeanResolutionSeconds: result.Stats.MeanResolutionSeconds,
			HighEscalation:        result.Stats.HighEscalation,
		},
		Timestamp: nowStamp(),
	}, nil
}

// ListViolationsHandler godoc
// @Summary List violator history
// @Description Returns the violation ledger for one violator, newest first.
// @Tags moderation-queue
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Request-Id header string true "Request correlation id"
// @Param violator_type path string true "Violator type: user,organization"
// @Param violator_id path string true "Violator id"
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} httptransport.ListViolationsResponse
// @Failure 400 {object} httptransport.ErrorEnvelope
// @Failure 401 {object} httptransport.ErrorEnvelope
// @Failure 500 {object} httptransport.ErrorEnvelope
// @Router /api/v1/moderation/violators/{violator_type}/{violator_id}/violations [get]
func (h Handler) ListViolationsHandler(
	ctx context.Context,
	violatorType string,
	violatorID string,
	limit int,
	offset int,
) (httptransport.ListViolationsResponse, error) {
	result, err := h.ListViolations.Execute(ctx, queries.ListViolationsQuery{
		ViolatorType: violatorType,
		ViolatorID:   violatorID,
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		return httptransport.ListViolationsResponse{}, err
	}

	items := make([]httptransport.ViolationDTO, 0, len(result.Items))
	for _, record := range result.Items {
		items = append(items, mapViolation(record))
	}
	return httptransport.ListViolationsResponse{
		Status:    "success",
		Data:      httptransport.ListViolationsData{Items: items, Total: result.Total},
		Timestamp: nowStamp(),
	}, nil
}

// AddNoteHandler godoc
// @Summary Add a moderator note
// @Description Attaches a free-form note to a queue item, user, or content id.
// @Tags moderation-queue
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Request-Id header string true "Request correlation id"
// @Param request body httptransport.AddNoteRequest true "Note payload"
// @Success 201 {object} httptransport.AddNoteResponse
// @Failure 400 {object} httptransport.ErrorEnvelope
// @Failure 401 {object} httptransport.ErrorEnvelope
// @Failure 404 {object} httptransport.ErrorEnvelope
// @Failure 500 {object} httptransport.ErrorEnvelope
// @Router /api/v1/moderation/notes [post]
func (h Handler) AddNoteHandler(
	ctx context.Context,
	authorID string,
	req httptransport.AddNoteRequest,
) (httptransport.AddNoteResponse, error) {
	result, err := h.AddNote.Execute(ctx, commands.AddNoteCommand{
		SubjectType: req.SubjectType,
		SubjectID:   req.SubjectID,
		AuthorID:    authorID,
		Body:        req.Body,
	})
	if err != nil {
		return httptransport.AddNoteResponse{}, err
	}
	return httptransport.AddNoteResponse{
		Status:    "success",
		Data:      httptransport.AddNoteData{Note: mapNote(result.Note)},
		Timestamp: nowStamp(),
	}, nil
}

// ListNotesHandler godoc
// @Summary List moderator notes
// @Description Returns notes for one subject, oldest first.
// @Tags moderation-queue
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Request-Id header string true "Request correlation id"
// @Param subject_type query string true "Subject type: queue_item,user,content"
// @Param subject_id query string true "Subject id"
// @Success 200 {object} httptransport.ListNotesResponse
// @Failure 400 {object} httptransport.ErrorEnvelope
// @Failure 401 {object} httptransport.ErrorEnvelope
// @Failure 500 {object} httptransport.ErrorEnvelope
// @Router /api/v1/moderation/notes [get]
func (h Handler) ListNotesHandler(
	ctx context.Context,
	subjectType string,
	subjectID string,
) (httptransport.ListNotesResponse, error) {
	result, err := h.ListNotes.Execute(ctx, queries.ListNotesQuery{
		SubjectType: subjectType,
		SubjectID:   subjectID,
	})
	if err != nil {
		return httptransport.ListNotesResponse{}, err
	}

	items := make([]httptransport.NoteDTO, 0, len(result.Items))
	for _, note := range result.Items {
		items = append(items, mapNote(note))
	}
	return httptransport.ListNotesResponse{
		Status:    "success",
		Data:      httptransport.ListNotesData{Items: items},
		Timestamp: nowStamp(),
	}, nil
}

func snapshotFromDTO(dto httptransport.SnapshotDTO) (entities.ContentSnapshot, error) {
	var contentCreatedAt *time.Time
	if dto.ContentCreatedAt != "" {
		parsed, err := time.Parse(time.RFC3339, dto.ContentCreatedAt)
		if err != nil {
			return entities.ContentSnapshot{}, domainerrors.ErrInvalidEnqueueRequest
		}
		utc := parsed.UTC()
		contentCreatedAt = &utc
	}
	return entities.NewContentSnapshot(dto.OwnerType, dto.OwnerID, dto.Verified, contentCreatedAt, dto.Fields), nil
}

func mapItems(items []entities.QueueItem) []httptransport.QueueItemDTO {
	out := make([]httptransport.QueueItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, mapItem(item))
	}
	return out
}

func mapItem(item entities.QueueItem) httptransport.QueueItemDTO {
	return httptransport.QueueItemDTO{
		ItemID:            item.ID,
		ContentType:       string(item.ContentType),
		ContentID:         item.ContentID,
		Source:            string(item.Source),
		Status:            string(item.Status),
		PriorityScore:     item.PriorityScore,
		PriorityReasons:   item.PriorityReasons,
		EscalationLevel:   item.EscalationLevel,
		EscalationReason:  item.EscalationReason,
		ReportCount:       item.ReportCount,
		AIConfidenceScore: item.AIConfidenceScore,
		AIFlags:           item.AIFlags,
		ContentSnapshot:   mapSnapshot(item.ContentSnapshot),
		AssignedTo:        item.AssignedTo,
		AssignedAt:        formatTimePtr(item.AssignedAt),
		ResolvedAt:        formatTimePtr(item.ResolvedAt),
		ResolutionAction:  string(item.ResolutionAction),
		ResolutionNotes:   item.ResolutionNotes,
		CreatedAt:         formatTime(item.CreatedAt),
		UpdatedAt:         formatTime(item.UpdatedAt),
	}
}

func mapSnapshot(snapshot entities.ContentSnapshot) httptransport.SnapshotDTO {
	return httptransport.SnapshotDTO{
		SchemaVersion:    snapshot.SchemaVersion,
		OwnerType:        snapshot.OwnerType,
		OwnerID:          snapshot.OwnerID,
		Verified:         snapshot.Verified,
		ContentCreatedAt: formatTimePtr(snapshot.ContentCreatedAt),
		Fields:           snapshot.Fields,
	}
}

func mapAction(action entities.ModerationAction) httptransport.ActionDTO {
	return httptransport.ActionDTO{
		ActionID:      action.ActionID,
		QueueItemID:   action.QueueItemID,
		ContentType:   string(action.ContentType),
		ContentID:     action.ContentID,
		Action:        string(action.Action),
		ActionBy:      action.ActionBy,
		Reason:        action.Reason,
		Notes:         action.Notes,
		PreviousState: mapState(action.PreviousState),
		NewState:      mapState(action.NewState),
		ViolationType: action.ViolationType,
		GuidelineRef:  action.GuidelineRef,
		CreatedAt:     formatTime(action.CreatedAt),
	}
}

func mapState(state entities.StateSnapshot) httptransport.StateDTO {
	return httptransport.StateDTO{
		Status:           string(state.Status),
		AssignedTo:       state.AssignedTo,
		AssignedAt:       formatTimePtr(state.AssignedAt),
		EscalationLevel:  state.EscalationLevel,
		EscalationReason: state.EscalationReason,
		PriorityScore:    state.PriorityScore,
		PriorityReasons:  state.PriorityReasons,
		ResolutionAction: string(state.ResolutionAction),
		ResolutionNotes:  state.ResolutionNotes,
		ResolvedAt:       formatTimePtr(state.ResolvedAt),
		UpdatedAt:        formatTime(state.UpdatedAt),
	}
}

func mapViolation(record entities.ViolationRecord) httptransport.ViolationDTO {
	return httptransport.ViolationDTO{
		ViolationID:   record.ViolationID,
		ViolatorType:  string(record.ViolatorType),
		ViolatorID:    record.ViolatorID,
		ViolationType: record.ViolationType,
		GuidelineCode: record.GuidelineCode,
		Severity:      string(record.Severity),
		ContentType:   string(record.ContentType),
		ContentID:     record.ContentID,
		QueueItemID:   record.QueueItemID,
		Consequence:   string(record.Consequence),
		Notes:         record.Notes,
		CreatedBy:     record.CreatedBy,
		CreatedAt:     formatTime(record.CreatedAt),
	}
}

func mapNote(note entities.ModeratorNote) httptransport.NoteDTO {
	return httptransport.NoteDTO{
		NoteID:      note.NoteID,
		SubjectType: string(note.SubjectType),
		SubjectID:   note.SubjectID,
		AuthorID:    note.AuthorID,
		Body:        note.Body,
		CreatedAt:   formatTime(note.CreatedAt),
	}
}

func formatTime(value time.Time) string {
	return value.UTC().Format(time.RFC3339)
}

func formatTimePtr(value *time.Time) string {
	if value == nil {
		return ""
	}
	return formatTime(*value)
}

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

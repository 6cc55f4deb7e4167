package httpserver

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	queueerrors "vigil/contexts/moderation-safety/queue-engine/domain/errors"
	queuehttp "vigil/contexts/moderation-safety/queue-engine/transport/http"
)

func writeQueueError(w http.ResponseWriter, status int, code string, message string, details map[string]any) {
	writeJSON(w, status, queuehttp.ErrorEnvelope{
		Status: "error",
		Error: queuehttp.ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func writeQueueDomainError(w http.ResponseWriter, err error) {
	details := stateConflictDetails(err)
	switch {
	case errors.Is(err, queueerrors.ErrInvalidEnqueueRequest):
		writeQueueError(w, http.StatusBadRequest, "INVALID_ENQUEUE_REQUEST", err.Error(), details)
	case errors.Is(err, queueerrors.ErrInvalidListFilter):
		writeQueueError(w, http.StatusBadRequest, "INVALID_LIST_FILTER", err.Error(), details)
	case errors.Is(err, queueerrors.ErrInvalidModerationRequest):
		writeQueueError(w, http.StatusBadRequest, "INVALID_MODERATION_REQUEST", err.Error(), details)
	case errors.Is(err, queueerrors.ErrItemNotFound):
		writeQueueError(w, http.StatusNotFound, "ITEM_NOT_FOUND", err.Error(), details)
	case errors.Is(err, queueerrors.ErrNotAssignee):
		writeQueueError(w, http.StatusForbidden, "NOT_ASSIGNEE", err.Error(), details)
	case errors.Is(err, queueerrors.ErrAlreadyClaimed):
		writeQueueError(w, http.StatusConflict, "ALREADY_CLAIMED", err.Error(), details)
	case errors.Is(err, queueerrors.ErrInvalidStateTransition):
		writeQueueError(w, http.StatusConflict, "INVALID_STATE_TRANSITION", err.Error(), details)
	case errors.Is(err, queueerrors.ErrClaimContention):
		writeQueueError(w, http.StatusConflict, "CLAIM_CONTENTION", err.Error(), details)
	case errors.Is(err, queueerrors.ErrIdempotencyKeyConflict):
		writeQueueError(w, http.StatusConflict, "IDEMPOTENCY_CONFLICT", err.Error(), details)
	case errors.Is(err, queueerrors.ErrMaxEscalation):
		writeQueueError(w, http.StatusUnprocessableEntity, "MAX_ESCALATION_REACHED", err.Error(), details)
	case errors.Is(err, queueerrors.ErrInvalidEscalationLevel):
		writeQueueError(w, http.StatusUnprocessableEntity, "INVALID_ESCALATION_LEVEL", err.Error(), details)
	default:
		writeQueueError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error", nil)
	}
}

// stateConflictDetails surfaces the live row state behind a guarded-write
// rejection so clients can see who holds an item without a second read.
func stateConflictDetails(err error) map[string]any {
	var conflict *queueerrors.StateConflict
	if !errors.As(err, &conflict) {
		return nil
	}
	details := map[string]any{"current_status": conflict.Status}
	if conflict.AssignedTo != "" {
		details["assigned_to"] = conflict.AssignedTo
	}
	if conflict.AssignedAt != nil {
		details["assigned_at"] = conflict.AssignedAt.UTC().Format(time.RFC3339)
	}
	return details
}

func requireQueueAuthorization(w http.ResponseWriter, r *http.Request) bool {
	authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		writeQueueError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authorization bearer token is required", nil)
		return false
	}
	return true
}

func requireQueueRequestID(w http.ResponseWriter, r *http.Request) bool {
	if strings.TrimSpace(r.Header.Get("X-Request-Id")) == "" {
		writeQueueError(w, http.StatusBadRequest, "REQUEST_ID_REQUIRED", "X-Request-Id header is required", nil)
		return false
	}
	return true
}

func requireQueueUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := strings.TrimSpace(r.Header.Get("X-User-Id"))
	if userID == "" {
		writeQueueError(w, http.StatusUnauthorized, "USER_REQUIRED", "X-User-Id header is required", nil)
		return "", false
	}
	return userID, true
}

func (s *Server) handleQueueEnqueue(w http.ResponseWriter, r *http.Request) {
	if !requireQueueAuthorization(w, r) || !requireQueueRequestID(w, r) {
		return
	}
	var req queuehttp.EnqueueRequest
	if !s.decodeJSON(w, r, &req, func(w http.ResponseWriter, status int, code string, message string) {
		writeQueueError(w, status, strings.ToUpper(code), message, nil)
	}) {
		return
	}

	resp, err := s.queue.Handler.EnqueueHandler(
		r.Context(),
		strings.TrimSpace(r.Header.Get("Idempotency-Key")),
		req,
	)
	if err != nil {
		writeQueueDomainError(w, err)
		return
	}

	status := http.StatusCreated
	if resp.Data.Replayed {
		status = http.StatusOK
	}
	writeJSON(w, status, resp)
}

func (s *Server) handleQueueList(w http.ResponseWriter, r *http.Request) {
	if !requireQueueAuthorization(w, r) || !requireQueueRequestID(w, r) {
		return
	}
	if _, ok := requireQueueUser(w, r); !ok {
		return
	}

	query := r.URL.Query() // gorm-postgres-enforcer: allow-raw-sql parses HTTP query parameters only
	req := queuehttp.ListQueueRequest{
		Status:      query.Get("status"),
		ContentType: query.Get("content_type"),
		Source:      query.Get("source"),
		OrderBy:     query.Get("order_by"),
	}

	if minPriorityRaw := query.Get("min_priority"); minPriorityRaw != "" {
		minPriority, err := strconv.Atoi(minPriorityRaw)
		if err != nil {
			writeQueueError(w, http.StatusBadRequest, "INVALID_MIN_PRIORITY", "min_priority must be an integer", nil)
			return
		}
		req.MinPriority = minPriority
	}
	if limitRaw := query.Get("limit"); limitRaw != "" {
		limit, err := strconv.Atoi(limitRaw)
		if err != nil {
			writeQueueError(w, http.StatusBadRequest, "INVALID_LIMIT", "limit must be an integer", nil)
			return
		}
		req.Limit = limit
	}
	if offsetRaw := query.Get("offset"); offsetRaw != "" {
		offset, err := strconv.Atoi(offsetRaw)
		if err != nil {
			writeQueueError(w, http.StatusBadRequest, "INVALID_OFFSET", "offset must be an integer", nil)
			return
		}
		req.Offset = offset
	}

	resp, err := s.queue.Handler.ListQueueHandler(r.Context(), req)
	if err != nil {
		writeQueueDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleQueueStats(w http.ResponseWriter, r *http.Request) {
	if !requireQueueAuthorization(w, r) || !requireQueueRequestID(w, r) {
		return
	}
	resp, err := s.queue.Handler.StatsHandler(r.Context())
	if err != nil {
		writeQueueDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleQueueGetItem(w http.ResponseWriter, r *http.Request) {
	if !requireQueueAuthorization(w, r) || !requireQueueRequestID(w, r) {
		return
	}
	resp, err := s.queue.Handler.GetItemHandler(r.Context(), r.PathValue("item_id"))
	if err != nil {
		writeQueueDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleQueueNext(w http.ResponseWriter, r *http.Request) {
	if !requireQueueAuthorization(w, r) || !requireQueueRequestID(w, r) {
		return
	}
	moderatorID, ok := requireQueueUser(w, r)
	if !ok {
		return
	}

	// An empty body selects from the full window.
	var req queuehttp.GetNextRequest
	if r.ContentLength != 0 {
		if !s.decodeJSON(w, r, &req, func(w http.ResponseWriter, status int, code string, message string) {
			writeQueueError(w, status, strings.ToUpper(code), message, nil)
		}) {
			return
		}
	}

	resp, err := s.queue.Handler.GetNextHandler(r.Context(), moderatorID, req)
	if err != nil {
		writeQueueDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleQueueClaim(w http.ResponseWriter, r *http.Request) {
	if !requireQueueAuthorization(w, r) || !requireQueueRequestID(w, r) {
		return
	}
	moderatorID, ok := requireQueueUser(w, r)
	if !ok {
		return
	}

	resp, err := s.queue.Handler.ClaimHandler(r.Context(), moderatorID, r.PathValue("item_id"))
	if err != nil {
		writeQueueDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleQueueRelease(w http.ResponseWriter, r *http.Request) {
	if !requireQueueAuthorization(w, r) || !requireQueueRequestID(w, r) {
		return
	}
	moderatorID, ok := requireQueueUser(w, r)
	if !ok {
		return
	}
	var req queuehttp.ReleaseRequest
	if !s.decodeJSON(w, r, &req, func(w http.ResponseWriter, status int, code string, message string) {
		writeQueueError(w, status, strings.ToUpper(code), message, nil)
	}) {
		return
	}

	resp, err := s.queue.Handler.ReleaseHandler(r.Context(), moderatorID, r.PathValue("item_id"), req)
	if err != nil {
		writeQueueDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleQueueResolve(w http.ResponseWriter, r *http.Request) {
	if !requireQueueAuthorization(w, r) || !requireQueueRequestID(w, r) {
		return
	}
	moderatorID, ok := requireQueueUser(w, r)
	if !ok {
		return
	}
	var req queuehttp.ResolveRequest
	if !s.decodeJSON(w, r, &req, func(w http.ResponseWriter, status int, code string, message string) {
		writeQueueError(w, status, strings.ToUpper(code), message, nil)
	}) {
		return
	}

	resp, err := s.queue.Handler.ResolveHandler(r.Context(), moderatorID, r.PathValue("item_id"), req)
	if err != nil {
		writeQueueDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleQueueEscalate(w http.ResponseWriter, r *http.Request) {
	if !requireQueueAuthorization(w, r) || !requireQueueRequestID(w, r) {
		return
	}
	moderatorID, ok := requireQueueUser(w, r)
	if !ok {
		return
	}
	var req queuehttp.EscalateRequest
	if !s.decodeJSON(w, r, &req, func(w http.ResponseWriter, status int, code string, message string) {
		writeQueueError(w, status, strings.ToUpper(code), message, nil)
	}) {
		return
	}

	resp, err := s.queue.Handler.EscalateHandler(r.Context(), moderatorID, r.PathValue("item_id"), req)
	if err != nil {
		writeQueueDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleQueueHistory(w http.ResponseWriter, r *http.Request) {
	if !requireQueueAuthorization(w, r) || !requireQueueRequestID(w, r) {
		return
	}
	resp, err := s.queue.Handler.ListActionsHandler(r.Context(), r.PathValue("item_id"))
	if err != nil {
		writeQueueDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleQueueViolations(w http.ResponseWriter, r *http.Request) {
	if !requireQueueAuthorization(w, r) || !requireQueueRequestID(w, r) {
		return
	}

	query := r.URL.Query() // gorm-postgres-enforcer: allow-raw-sql parses HTTP query parameters only
	limit := 0
	offset := 0
	if limitRaw := query.Get("limit"); limitRaw != "" {
		parsed, err := strconv.Atoi(limitRaw)
		if err != nil {
			writeQueueError(w, http.StatusBadRequest, "INVALID_LIMIT", "limit must be an integer", nil)
			return
		}
		limit = parsed
	}
	if offsetRaw := query.Get("offset"); offsetRaw != "" {
		parsed, err := strconv.Atoi(offsetRaw)
		if err != nil {
			writeQueueError(w, http.StatusBadRequest, "INVALID_OFFSET", "offset must be an integer", nil)
			return
		}
		offset = parsed
	}

	resp, err := s.queue.Handler.ListViolationsHandler(
		r.Context(),
		r.PathValue("violator_type"),
		r.PathValue("violator_id"),
		limit,
		offset,
	)
	if err != nil {
		writeQueueDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleQueueAddNote(w http.ResponseWriter, r *http.Request) {
	if !requireQueueAuthorization(w, r) || !requireQueueRequestID(w, r) {
		return
	}
	authorID, ok := requireQueueUser(w, r)
	if !ok {
		return
	}
	var req queuehttp.AddNoteRequest
	if !s.decodeJSON(w, r, &req, func(w http.ResponseWriter, status int, code string, message string) {
		writeQueueError(w, status, strings.ToUpper(code), message, nil)
	}) {
		return
	}

	resp, err := s.queue.Handler.AddNoteHandler(r.Context(), authorID, req)
	if err != nil {
		writeQueueDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleQueueListNotes(w http.ResponseWriter, r *http.Request) {
	if !requireQueueAuthorization(w, r) || !requireQueueRequestID(w, r) {
		return
	}

	query := r.URL.Query() // gorm-postgres-enforcer: allow-raw-sql parses HTTP query parameters only
	resp, err := s.queue.Handler.ListNotesHandler(
		r.Context(),
		query.Get("subject_type"),
		query.Get("subject_id"),
	)
	if err != nil {
		writeQueueDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"vigil/contexts/moderation-safety/queue-engine/domain/entities"
	domainerrors "vigil/contexts/moderation-safety/queue-engine/domain/errors"
	"vigil/contexts/moderation-safety/queue-engine/domain/services"
	"vigil/contexts/moderation-safety/queue-engine/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	outboxStatusPending = "pending"
	outboxStatusSent    = "sent"
)

// candidateOrder ranks open items the way moderators drain the queue:
// escalated before pending, then highest priority, then oldest first.
const candidateOrder = "(status = 'escalated') DESC, priority_score DESC, created_at ASC"

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) CreateItem(ctx context.Context, item entities.QueueItem, event ports.EventEnvelope) error {
	row, err := queueItemModelFromEntity(item)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrRepositoryInvariantBroke
			}
			return err
		}
		return insertOutboxEnvelopeTx(tx, event)
	})
}

func (r *Repository) GetItem(ctx context.Context, itemID string) (entities.QueueItem, error) {
	var row queueItemModel
	err := r.db.WithContext(ctx).
		Where("item_id = ?", strings.TrimSpace(itemID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.QueueItem{}, domainerrors.ErrItemNotFound
		}
		return entities.QueueItem{}, err
	}
	return row.toEntity()
}

func (r *Repository) ListItems(ctx context.Context, filter ports.QueueFilter) ([]entities.QueueItem, int, error) {
	var total int64
	if err := r.listQuery(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "priority_score DESC, created_at ASC"
	if filter.OrderBy == "created_at" {
		order = "created_at ASC"
	}

	query := r.listQuery(ctx, filter).Order(order)
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var rows []queueItemModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	items := make([]entities.QueueItem, 0, len(rows))
	for _, row := range rows {
		item, err := row.toEntity()
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	return items, int(total), nil
}

func (r *Repository) listQuery(ctx context.Context, filter ports.QueueFilter) *gorm.DB {
	tx := r.db.WithContext(ctx).Model(&queueItemModel{})
	if filter.Status != "" {
		tx = tx.Where("status = ?", string(filter.Status))
	}
	if filter.ContentType != "" {
		tx = tx.Where("content_type = ?", string(filter.ContentType))
	}
	if filter.Source != "" {
		tx = tx.Where("source = ?", string(filter.Source))
	}
	if filter.MinPriority > 0 {
		tx = tx.Where("priority_score >= ?", filter.MinPriority)
	}
	return tx
}

func (r *Repository) ClaimItem(ctx context.Context, req ports.ClaimRequest, audit ports.AuditInput) (entities.QueueItem, error) {
	var claimed entities.QueueItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row queueItemModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("item_id = ?", strings.TrimSpace(req.ItemID)).
			First(&row).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrItemNotFound
			}
			return err
		}

		item, err := row.toEntity()
		if err != nil {
			return err
		}
		if !item.Claimable() {
			return claimConflict(item)
		}

		claimed, err = r.applyClaimTx(tx, item, req.ModeratorID, audit, req.Now)
		return err
	})
	if err != nil {
		return entities.QueueItem{}, err
	}
	return claimed, nil
}

func (r *Repository) ClaimNext(ctx context.Context, req ports.NextRequest, audit ports.AuditInput) (entities.QueueItem, error) {
	var claimed entities.QueueItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// SKIP LOCKED keeps concurrent moderators from queueing on the same
		// head-of-line row; each transaction locks a distinct candidate.
		query := tx.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
			Where("status IN ?", []string{string(entities.StatusPending), string(entities.StatusEscalated)}).
			Where("assigned_to = ''").
			Where("escalation_level BETWEEN ? AND ?", req.MinEscalation, req.MaxEscalation)
		if req.ContentType != "" {
			query = query.Where("content_type = ?", string(req.ContentType))
		}

		var row queueItemModel
		if err := query.Order(candidateOrder).Limit(1).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrNoItemsAvailable
			}
			return err
		}

		item, err := row.toEntity()
		if err != nil {
			return err
		}
		if !item.Claimable() {
			return domainerrors.ErrClaimContention
		}

		claimed, err = r.applyClaimTx(tx, item, req.ModeratorID, audit, req.Now)
		return err
	})
	if err != nil {
		return entities.QueueItem{}, err
	}
	return claimed, nil
}

func (r *Repository) ReleaseItem(ctx context.Context, req ports.ReleaseRequest, audit ports.AuditInput) (entities.QueueItem, error) {
	var released entities.QueueItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := r.lockItemTx(tx, req.ItemID)
		if err != nil {
			return err
		}
		if item.Status != entities.StatusInReview {
			return stateConflictOf(item, domainerrors.ErrInvalidStateTransition)
		}
		if item.AssignedTo != req.ModeratorID {
			return stateConflictOf(item, domainerrors.ErrNotAssignee)
		}

		previous := entities.SnapshotOf(item)
		now := req.Now.UTC()
		item.Status = entities.StatusPending
		item.AssignedTo = ""
		item.AssignedAt = nil
		item.UpdatedAt = now

		if err := tx.Model(&queueItemModel{}).
			Where("item_id = ?", item.ID).
			Updates(map[string]any{
				"status":      string(item.Status),
				"assigned_to": "",
				"assigned_at": nil,
				"updated_at":  now,
			}).
			Error; err != nil {
			return err
		}
		if err := appendActionTx(tx, item, audit, previous, now); err != nil {
			return err
		}
		released = item
		return nil
	})
	if err != nil {
		return entities.QueueItem{}, err
	}
	return released, nil
}

func (r *Repository) ResolveItem(ctx context.Context, req ports.ResolveRequest, audit ports.AuditInput) (entities.QueueItem, error) {
	var resolved entities.QueueItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := r.lockItemTx(tx, req.ItemID)
		if err != nil {
			return err
		}
		if item.Status != entities.StatusInReview {
			return stateConflictOf(item, domainerrors.ErrInvalidStateTransition)
		}
		if item.AssignedTo != req.ModeratorID {
			return stateConflictOf(item, domainerrors.ErrNotAssignee)
		}

		previous := entities.SnapshotOf(item)
		now := req.Now.UTC()
		item.Status = entities.StatusResolved
		item.ResolutionAction = req.Action
		item.ResolutionNotes = req.Notes
		item.ResolvedAt = &now
		item.AssignedTo = ""
		item.AssignedAt = nil
		item.UpdatedAt = now

		if err := tx.Model(&queueItemModel{}).
			Where("item_id = ?", item.ID).
			Updates(map[string]any{
				"status":            string(item.Status),
				"resolution_action": string(item.ResolutionAction),
				"resolution_notes":  item.ResolutionNotes,
				"resolved_at":       now,
				"assigned_to":       "",
				"assigned_at":       nil,
				"updated_at":        now,
			}).
			Error; err != nil {
			return err
		}
		if err := appendActionTx(tx, item, audit, previous, now); err != nil {
			return err
		}
		if req.Violation != nil {
			violationRow := violationModelFromEntity(*req.Violation)
			if err := tx.Create(&violationRow).Error; err != nil {
				if isUniqueViolation(err) {
					return domainerrors.ErrRepositoryInvariantBroke
				}
				return err
			}
		}
		if err := insertOutboxEnvelopeTx(tx, req.Event); err != nil {
			return err
		}
		resolved = item
		return nil
	})
	if err != nil {
		return entities.QueueItem{}, err
	}
	return resolved, nil
}

func (r *Repository) EscalateItem(ctx context.Context, req ports.EscalateRequest, audit ports.AuditInput) (entities.QueueItem, error) {
	var escalated entities.QueueItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := r.lockItemTx(tx, req.ItemID)
		if err != nil {
			return err
		}
		if !item.Status.Open() {
			return stateConflictOf(item, domainerrors.ErrInvalidStateTransition)
		}
		// Level guards re-run against the locked row: the use-case pre-read
		// may be stale by the time the lock is acquired.
		if item.EscalationLevel >= entities.MaxEscalationLevel || req.TargetLevel > entities.MaxEscalationLevel {
			return domainerrors.ErrMaxEscalation
		}
		if req.TargetLevel <= item.EscalationLevel {
			return domainerrors.ErrInvalidEscalationLevel
		}

		previous := entities.SnapshotOf(item)
		now := req.Now.UTC()
		item.Status = entities.StatusEscalated
		item.EscalationLevel = req.TargetLevel
		item.EscalationReason = req.Reason
		item.AssignedTo = ""
		item.AssignedAt = nil
		item.PriorityScore = services.BoostForEscalation(item.PriorityScore)
		item.PriorityReasons = append(item.PriorityReasons, services.EscalationReasonTag(req.TargetLevel))
		item.UpdatedAt = now

		if err := tx.Model(&queueItemModel{}).
			Where("item_id = ?", item.ID).
			Updates(map[string]any{
				"status":            string(item.Status),
				"escalation_level":  item.EscalationLevel,
				"escalation_reason": item.EscalationReason,
				"assigned_to":       "",
				"assigned_at":       nil,
				"priority_score":    item.PriorityScore,
				"priority_reasons":  copyOrEmpty(item.PriorityReasons),
				"updated_at":        now,
			}).
			Error; err != nil {
			return err
		}
		if err := appendActionTx(tx, item, audit, previous, now); err != nil {
			return err
		}
		if err := insertOutboxEnvelopeTx(tx, req.Event); err != nil {
			return err
		}
		escalated = item
		return nil
	})
	if err != nil {
		return entities.QueueItem{}, err
	}
	return escalated, nil
}

func (r *Repository) ListActions(ctx context.Context, itemID string) ([]entities.ModerationAction, error) {
	var rows []moderationActionModel
	if err := r.db.WithContext(ctx).
		Where("queue_item_id = ?", strings.TrimSpace(itemID)).
		Order("created_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	actions := make([]entities.ModerationAction, 0, len(rows))
	for _, row := range rows {
		action, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		actions = append(actions, action)
	}
	return actions, nil
}

func (r *Repository) ReleaseStaleClaims(
	ctx context.Context,
	cutoff time.Time,
	audit ports.AuditInput,
	now time.Time,
) (int, error) {
	released := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rows []queueItemModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
			Where("status = ? AND assigned_at IS NOT NULL AND assigned_at < ?",
				string(entities.StatusInReview), cutoff.UTC()).
			Order("assigned_at ASC").
			Find(&rows).
			Error; err != nil {
			return err
		}

		at := now.UTC()
		for _, row := range rows {
			item, err := row.toEntity()
			if err != nil {
				return err
			}

			previous := entities.SnapshotOf(item)
			item.Status = entities.StatusPending
			item.AssignedTo = ""
			item.AssignedAt = nil
			item.UpdatedAt = at

			if err := tx.Model(&queueItemModel{}).
				Where("item_id = ?", item.ID).
				Updates(map[string]any{
					"status":      string(entities.StatusPending),
					"assigned_to": "",
					"assigned_at": nil,
					"updated_at":  at,
				}).
				Error; err != nil {
				return err
			}
			if err := appendActionTx(tx, item, audit, previous, at); err != nil {
				return err
			}
			released++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return released, nil
}

func (r *Repository) Stats(ctx context.Context, now time.Time) (ports.QueueStats, error) {
	stats := ports.QueueStats{
		StatusCounts:         make(map[entities.Status]int),
		PendingByContentType: make(map[entities.ContentType]int),
	}
	dayAgo := now.UTC().Add(-24 * time.Hour)
	weekAgo := now.UTC().Add(-7 * 24 * time.Hour)

	var statusRows []groupCountRow
	if err := r.db.WithContext(ctx).
		Model(&queueItemModel{}).
		Select("status AS label, COUNT(*) AS total").
		Group("status").
		Find(&statusRows).
		Error; err != nil {
		return ports.QueueStats{}, err
	}
	for _, row := range statusRows {
		stats.StatusCounts[entities.Status(row.Label)] = int(row.Total)
	}

	var pendingRows []groupCountRow
	if err := r.db.WithContext(ctx).
		Model(&queueItemModel{}).
		Select("content_type AS label, COUNT(*) AS total").
		Where("status = ?", string(entities.StatusPending)).
		Group("content_type").
		Find(&pendingRows).
		Error; err != nil {
		return ports.QueueStats{}, err
	}
	for _, row := range pendingRows {
		stats.PendingByContentType[entities.ContentType(row.Label)] = int(row.Total)
	}

	var resolved24h int64
	if err := r.db.WithContext(ctx).
		Model(&queueItemModel{}).
		Where("resolved_at IS NOT NULL AND resolved_at > ?", dayAgo).
		Count(&resolved24h).
		Error; err != nil {
		return ports.QueueStats{}, err
	}
	stats.ResolvedLast24h = int(resolved24h)

	var overdue int64
	if err := r.db.WithContext(ctx).
		Model(&queueItemModel{}).
		Where("status IN ? AND created_at < ?",
			[]string{string(entities.StatusPending), string(entities.StatusEscalated)}, dayAgo).
		Count(&overdue).
		Error; err != nil {
		return ports.QueueStats{}, err
	}
	stats.Overdue = int(overdue)

	var highEscalation int64
	if err := r.db.WithContext(ctx).
		Model(&queueItemModel{}).
		Where("escalation_level >= ?", 2).
		Count(&highEscalation).
		Error; err != nil {
		return ports.QueueStats{}, err
	}
	stats.HighEscalation = int(highEscalation)

	var meanSeconds float64
	if err := r.db.WithContext(ctx).
		Model(&queueItemModel{}).
		Select("COALESCE(AVG(EXTRACT(EPOCH FROM (resolved_at - created_at))), 0)").
		Where("resolved_at IS NOT NULL AND resolved_at > ?", weekAgo).
		Scan(&meanSeconds).
		Error; err != nil {
		return ports.QueueStats{}, err
	}
	stats.MeanResolutionSeconds = meanSeconds

	return stats, nil
}

func (r *Repository) CountViolations(ctx context.Context, violator entities.ViolatorRef) (int, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&violationModel{}).
		Where("violator_type = ? AND violator_id = ?", string(violator.Type), strings.TrimSpace(violator.ID)).
		Count(&total).
		Error; err != nil {
		return 0, err
	}
	return int(total), nil
}

func (r *Repository) ListViolations(
	ctx context.Context,
	violator entities.ViolatorRef,
	limit int,
	offset int,
) ([]entities.ViolationRecord, int, error) {
	base := r.db.WithContext(ctx).
		Model(&violationModel{}).
		Where("violator_type = ? AND violator_id = ?", string(violator.Type), strings.TrimSpace(violator.ID))

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.db.WithContext(ctx).
		Model(&violationModel{}).
		Where("violator_type = ? AND violator_id = ?", string(violator.Type), strings.TrimSpace(violator.ID)).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var rows []violationModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	records := make([]entities.ViolationRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toEntity())
	}
	return records, int(total), nil
}

func (r *Repository) AddNote(ctx context.Context, note entities.ModeratorNote) error {
	row := noteModelFromEntity(note)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrRepositoryInvariantBroke
		}
		return err
	}
	return nil
}

func (r *Repository) ListNotes(
	ctx context.Context,
	subjectType entities.NoteSubjectType,
	subjectID string,
) ([]entities.ModeratorNote, error) {
	var rows []noteModel
	if err := r.db.WithContext(ctx).
		Where("subject_type = ? AND subject_id = ?", string(subjectType), strings.TrimSpace(subjectID)).
		Order("created_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	notes := make([]entities.ModeratorNote, 0, len(rows))
	for _, row := range rows {
		notes = append(notes, row.toEntity())
	}
	return notes, nil
}

func (r *Repository) Get(ctx context.Context, key string, now time.Time) (ports.IdempotencyRecord, bool, error) {
	var row idempotencyModel
	err := r.db.WithContext(ctx).
		Where("key = ?", strings.TrimSpace(key)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.IdempotencyRecord{}, false, nil
		}
		return ports.IdempotencyRecord{}, false, err
	}

	if !row.ExpiresAt.IsZero() && now.UTC().After(row.ExpiresAt.UTC()) {
		if err := r.db.WithContext(ctx).
			Where("key = ?", strings.TrimSpace(key)).
			Delete(&idempotencyModel{}).
			Error; err != nil {
			return ports.IdempotencyRecord{}, false, err
		}
		return ports.IdempotencyRecord{}, false, nil
	}

	return ports.IdempotencyRecord{
		Key:         row.Key,
		RequestHash: row.RequestHash,
		ItemID:      row.ItemID,
		ExpiresAt:   row.ExpiresAt.UTC(),
	}, true, nil
}

func (r *Repository) Put(ctx context.Context, record ports.IdempotencyRecord) error {
	row := idempotencyModel{
		Key:         strings.TrimSpace(record.Key),
		RequestHash: record.RequestHash,
		ItemID:      strings.TrimSpace(record.ItemID),
		ExpiresAt:   record.ExpiresAt.UTC(),
	}
	createResult := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoNothing: true,
		}).
		Create(&row)
	if createResult.Error != nil {
		return createResult.Error
	}
	if createResult.RowsAffected > 0 {
		return nil
	}

	var existing idempotencyModel
	if err := r.db.WithContext(ctx).
		Where("key = ?", row.Key).
		First(&existing).
		Error; err != nil {
		return err
	}
	if existing.RequestHash != row.RequestHash {
		return domainerrors.ErrIdempotencyKeyConflict
	}
	return nil
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}

	var rows []outboxModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", outboxStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, ports.OutboxMessage{
			OutboxID:     row.OutboxID,
			EventType:    row.EventType,
			PartitionKey: row.PartitionKey,
			Payload:      append([]byte(nil), row.Payload...),
			CreatedAt:    row.CreatedAt.UTC(),
		})
	}
	return messages, nil
}

func (r *Repository) MarkOutboxSent(ctx context.Context, outboxID string, sentAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("outbox_id = ?", strings.TrimSpace(outboxID)).
		Updates(map[string]any{
			"status":  outboxStatusSent,
			"sent_at": sentAt.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrRepositoryInvariantBroke
	}
	return nil
}

func (r *Repository) lockItemTx(tx *gorm.DB, itemID string) (entities.QueueItem, error) {
	var row queueItemModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("item_id = ?", strings.TrimSpace(itemID)).
		First(&row).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.QueueItem{}, domainerrors.ErrItemNotFound
		}
		return entities.QueueItem{}, err
	}
	return row.toEntity()
}

func (r *Repository) applyClaimTx(
	tx *gorm.DB,
	item entities.QueueItem,
	moderatorID string,
	audit ports.AuditInput,
	now time.Time,
) (entities.QueueItem, error) {
	previous := entities.SnapshotOf(item)
	at := now.UTC()
	item.Status = entities.StatusInReview
	item.AssignedTo = moderatorID
	item.AssignedAt = &at
	item.UpdatedAt = at

	if err := tx.Model(&queueItemModel{}).
		Where("item_id = ?", item.ID).
		Updates(map[string]any{
			"status":      string(entities.StatusInReview),
			"assigned_to": moderatorID,
			"assigned_at": at,
			"updated_at":  at,
		}).
		Error; err != nil {
		return entities.QueueItem{}, err
	}
	if err := appendActionTx(tx, item, audit, previous, at); err != nil {
		return entities.QueueItem{}, err
	}
	return item, nil
}

func appendActionTx(
	tx *gorm.DB,
	item entities.QueueItem,
	audit ports.AuditInput,
	previous entities.StateSnapshot,
	at time.Time,
) error {
	action, err := entities.NewModerationAction(
		uuid.NewString(),
		item,
		audit.Action,
		audit.ActionBy,
		audit.Reason,
		audit.Notes,
		previous,
		entities.SnapshotOf(item),
		at,
	)
	if err != nil {
		return err
	}
	action.ViolationType = audit.ViolationType
	action.GuidelineRef = audit.GuidelineRef

	row, err := moderationActionModelFromEntity(action)
	if err != nil {
		return err
	}
	if err := tx.Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrRepositoryInvariantBroke
		}
		return err
	}
	return nil
}

func insertOutboxEnvelopeTx(tx *gorm.DB, envelope ports.EventEnvelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	row := outboxModel{
		OutboxID:     strings.TrimSpace(envelope.EventID),
		EventType:    strings.TrimSpace(envelope.EventType),
		PartitionKey: strings.TrimSpace(envelope.PartitionKey),
		Payload:      payload,
		Status:       outboxStatusPending,
		CreatedAt:    envelope.OccurredAt.UTC(),
	}
	if row.OutboxID == "" {
		row.OutboxID = uuid.NewString()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}

	createResult := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "outbox_id"}},
		DoNothing: true,
	}).Create(&row)
	if createResult.Error != nil {
		return createResult.Error
	}
	if createResult.RowsAffected == 0 {
		var existing outboxModel
		if err := tx.Select("payload").Where("outbox_id = ?", row.OutboxID).First(&existing).Error; err != nil {
			return err
		}
		if string(existing.Payload) != string(row.Payload) {
			return domainerrors.ErrIdempotencyKeyConflict
		}
	}
	return nil
}

func claimConflict(item entities.QueueItem) error {
	if item.Status == entities.StatusInReview && item.AssignedTo != "" {
		return stateConflictOf(item, domainerrors.ErrAlreadyClaimed)
	}
	return stateConflictOf(item, domainerrors.ErrInvalidStateTransition)
}

func stateConflictOf(item entities.QueueItem, kind error) error {
	return &domainerrors.StateConflict{
		Kind:       kind,
		Status:     string(item.Status),
		AssignedTo: item.AssignedTo,
		AssignedAt: item.AssignedAt,
	}
}

type groupCountRow struct {
	Label string
	Total int64
}

type queueItemModel struct {
	ItemID            string     `gorm:"column:item_id;primaryKey"`
	ContentType       string     `gorm:"column:content_type"`
	ContentID         string     `gorm:"column:content_id"`
	Source            string     `gorm:"column:source"`
	Status            string     `gorm:"column:status"`
	PriorityScore     int        `gorm:"column:priority_score"`
	PriorityReasons   []string   `gorm:"column:priority_reasons;type:text[]"`
	EscalationLevel   int        `gorm:"column:escalation_level"`
	EscalationReason  string     `gorm:"column:escalation_reason"`
	ReportCount       int        `gorm:"column:report_count"`
	AIConfidenceScore *float64   `gorm:"column:ai_confidence_score"`
	AIFlags           []byte     `gorm:"column:ai_flags;type:jsonb"`
	ContentSnapshot   []byte     `gorm:"column:content_snapshot;type:jsonb"`
	AssignedTo        string     `gorm:"column:assigned_to"`
	AssignedAt        *time.Time `gorm:"column:assigned_at"`
	ResolvedAt        *time.Time `gorm:"column:resolved_at"`
	ResolutionAction  string     `gorm:"column:resolution_action"`
	ResolutionNotes   string     `gorm:"column:resolution_notes"`
	CreatedAt         time.Time  `gorm:"column:created_at"`
	UpdatedAt         time.Time  `gorm:"column:updated_at"`
}

func (queueItemModel) TableName() string {
	return "moderation_queue"
}

func queueItemModelFromEntity(item entities.QueueItem) (queueItemModel, error) {
	snapshot, err := json.Marshal(item.ContentSnapshot)
	if err != nil {
		return queueItemModel{}, err
	}
	return queueItemModel{
		ItemID:            strings.TrimSpace(item.ID),
		ContentType:       string(item.ContentType),
		ContentID:         strings.TrimSpace(item.ContentID),
		Source:            string(item.Source),
		Status:            string(item.Status),
		PriorityScore:     item.PriorityScore,
		PriorityReasons:   copyOrEmpty(item.PriorityReasons),
		EscalationLevel:   item.EscalationLevel,
		EscalationReason:  strings.TrimSpace(item.EscalationReason),
		ReportCount:       item.ReportCount,
		AIConfidenceScore: item.AIConfidenceScore,
		AIFlags:           append([]byte(nil), item.AIFlags...),
		ContentSnapshot:   snapshot,
		AssignedTo:        strings.TrimSpace(item.AssignedTo),
		AssignedAt:        normalizeOptionalTime(item.AssignedAt),
		ResolvedAt:        normalizeOptionalTime(item.ResolvedAt),
		ResolutionAction:  string(item.ResolutionAction),
		ResolutionNotes:   item.ResolutionNotes,
		CreatedAt:         item.CreatedAt.UTC(),
		UpdatedAt:         item.UpdatedAt.UTC(),
	}, nil
}

func (m queueItemModel) toEntity() (entities.QueueItem, error) {
	var snapshot entities.ContentSnapshot
	if len(m.ContentSnapshot) > 0 {
		if err := json.Unmarshal(m.ContentSnapshot, &snapshot); err != nil {
			return entities.QueueItem{}, err
		}
	}
	return entities.QueueItem{
		ID:                m.ItemID,
		ContentType:       entities.ContentType(m.ContentType),
		ContentID:         m.ContentID,
		Source:            entities.Source(m.Source),
		Status:            entities.Status(m.Status),
		PriorityScore:     m.PriorityScore,
		PriorityReasons:   copyOrEmpty(m.PriorityReasons),
		EscalationLevel:   m.EscalationLevel,
		EscalationReason:  m.EscalationReason,
		ReportCount:       m.ReportCount,
		AIConfidenceScore: m.AIConfidenceScore,
		AIFlags:           append(json.RawMessage(nil), m.AIFlags...),
		ContentSnapshot:   snapshot,
		AssignedTo:        m.AssignedTo,
		AssignedAt:        normalizeOptionalTime(m.AssignedAt),
		ResolvedAt:        normalizeOptionalTime(m.ResolvedAt),
		ResolutionAction:  entities.ResolutionAction(m.ResolutionAction),
		ResolutionNotes:   m.ResolutionNotes,
		CreatedAt:         m.CreatedAt.UTC(),
		UpdatedAt:         m.UpdatedAt.UTC(),
	}, nil
}

type moderationActionModel struct {
	ActionID      string    `gorm:"column:action_id;primaryKey"`
	QueueItemID   string    `gorm:"column:queue_item_id"`
	ContentType   string    `gorm:"column:content_type"`
	ContentID     string    `gorm:"column:content_id"`
	Action        string    `gorm:"column:action"`
	ActionBy      string    `gorm:"column:action_by"`
	Reason        string    `gorm:"column:reason"`
	Notes         string    `gorm:"column:notes"`
	PreviousState []byte    `gorm:"column:previous_state;type:jsonb"`
	NewState      []byte    `gorm:"column:new_state;type:jsonb"`
	ViolationType string    `gorm:"column:violation_type"`
	GuidelineRef  string    `gorm:"column:guideline_ref"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (moderationActionModel) TableName() string {
	return "moderation_actions"
}

func moderationActionModelFromEntity(action entities.ModerationAction) (moderationActionModel, error) {
	previous, err := json.Marshal(action.PreviousState)
	if err != nil {
		return moderationActionModel{}, err
	}
	next, err := json.Marshal(action.NewState)
	if err != nil {
		return moderationActionModel{}, err
	}
	return moderationActionModel{
		ActionID:      strings.TrimSpace(action.ActionID),
		QueueItemID:   strings.TrimSpace(action.QueueItemID),
		ContentType:   string(action.ContentType),
		ContentID:     strings.TrimSpace(action.ContentID),
		Action:        string(action.Action),
		ActionBy:      strings.TrimSpace(action.ActionBy),
		Reason:        action.Reason,
		Notes:         action.Notes,
		PreviousState: previous,
		NewState:      next,
		ViolationType: strings.TrimSpace(action.ViolationType),
		GuidelineRef:  strings.TrimSpace(action.GuidelineRef),
		CreatedAt:     action.CreatedAt.UTC(),
	}, nil
}

func (m moderationActionModel) toEntity() (entities.ModerationAction, error) {
	var previous entities.StateSnapshot
	if len(m.PreviousState) > 0 {
		if err := json.Unmarshal(m.PreviousState, &previous); err != nil {
			return entities.ModerationAction{}, err
		}
	}
	var next entities.StateSnapshot
	if len(m.NewState) > 0 {
		if err := json.Unmarshal(m.NewState, &next); err != nil {
			return entities.ModerationAction{}, err
		}
	}
	return entities.ModerationAction{
		ActionID:      m.ActionID,
		QueueItemID:   m.QueueItemID,
		ContentType:   entities.ContentType(m.ContentType),
		ContentID:     m.ContentID,
		Action:        entities.AuditAction(m.Action),
		ActionBy:      m.ActionBy,
		Reason:        m.Reason,
		Notes:         m.Notes,
		PreviousState: previous,
		NewState:      next,
		ViolationType: m.ViolationType,
		GuidelineRef:  m.GuidelineRef,
		CreatedAt:     m.CreatedAt.UTC(),
	}, nil
}

type violationModel struct {
	ViolationID   string    `gorm:"column:violation_id;primaryKey"`
	ViolatorType  string    `gorm:"column:violator_type"`
	ViolatorID    string    `gorm:"column:violator_id"`
	ViolationType string    `gorm:"column:violation_type"`
	GuidelineCode string    `gorm:"column:guideline_code"`
	Severity      string    `gorm:"column:severity"`
	ContentType   string    `gorm:"column:content_type"`
	ContentID     string    `gorm:"column:content_id"`
	QueueItemID   string    `gorm:"column:queue_item_id"`
	Consequence   string    `gorm:"column:consequence"`
	Notes         string    `gorm:"column:notes"`
	CreatedBy     string    `gorm:"column:created_by"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (violationModel) TableName() string {
	return "violation_records"
}

func violationModelFromEntity(record entities.ViolationRecord) violationModel {
	return violationModel{
		ViolationID:   strings.TrimSpace(record.ViolationID),
		ViolatorType:  string(record.ViolatorType),
		ViolatorID:    strings.TrimSpace(record.ViolatorID),
		ViolationType: strings.TrimSpace(record.ViolationType),
		GuidelineCode: strings.TrimSpace(record.GuidelineCode),
		Severity:      string(record.Severity),
		ContentType:   string(record.ContentType),
		ContentID:     strings.TrimSpace(record.ContentID),
		QueueItemID:   strings.TrimSpace(record.QueueItemID),
		Consequence:   string(record.Consequence),
		Notes:         record.Notes,
		CreatedBy:     strings.TrimSpace(record.CreatedBy),
		CreatedAt:     record.CreatedAt.UTC(),
	}
}

func (m violationModel) toEntity() entities.ViolationRecord {
	return entities.ViolationRecord{
		ViolationID:   m.ViolationID,
		ViolatorType:  entities.ViolatorType(m.ViolatorType),
		ViolatorID:    m.ViolatorID,
		ViolationType: m.ViolationType,
		GuidelineCode: m.GuidelineCode,
		Severity:      entities.Severity(m.Severity),
		ContentType:   entities.ContentType(m.ContentType),
		ContentID:     m.ContentID,
		QueueItemID:   m.QueueItemID,
		Consequence:   entities.Consequence(m.Consequence),
		Notes:         m.Notes,
		CreatedBy:     m.CreatedBy,
		CreatedAt:     m.CreatedAt.UTC(),
	}
}

type noteModel struct {
	NoteID      string    `gorm:"column:note_id;primaryKey"`
	SubjectType string    `gorm:"column:subject_type"`
	SubjectID   string    `gorm:"column:subject_id"`
	AuthorID    string    `gorm:"column:author_id"`
	Body        string    `gorm:"column:body"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (noteModel) TableName() string {
	return "moderator_notes"
}

func noteModelFromEntity(note entities.ModeratorNote) noteModel {
	return noteModel{
		NoteID:      strings.TrimSpace(note.NoteID),
		SubjectType: string(note.SubjectType),
		SubjectID:   strings.TrimSpace(note.SubjectID),
		AuthorID:    strings.TrimSpace(note.AuthorID),
		Body:        note.Body,
		CreatedAt:   note.CreatedAt.UTC(),
	}
}

func (m noteModel) toEntity() entities.ModeratorNote {
	return entities.ModeratorNote{
		NoteID:      m.NoteID,
		SubjectType: entities.NoteSubjectType(m.SubjectType),
		SubjectID:   m.SubjectID,
		AuthorID:    m.AuthorID,
		Body:        m.Body,
		CreatedAt:   m.CreatedAt.UTC(),
	}
}

type idempotencyModel struct {
	Key         string    `gorm:"column:key;primaryKey"`
	RequestHash string    `gorm:"column:request_hash"`
	ItemID      string    `gorm:"column:item_id"`
	ExpiresAt   time.Time `gorm:"column:expires_at"`
}

func (idempotencyModel) TableName() string {
	return "moderation_idempotency"
}

type outboxModel struct {
	OutboxID     string     `gorm:"column:outbox_id;primaryKey"`
	EventType    string     `gorm:"column:event_type"`
	PartitionKey string     `gorm:"column:partition_key"`
	Payload      []byte     `gorm:"column:payload"`
	Status       string     `gorm:"column:status"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	SentAt       *time.Time `gorm:"column:sent_at"`
}

func (outboxModel) TableName() string {
	return "moderation_outbox"
}

func copyOrEmpty(items []string) []string {
	if len(items) == 0 {
		return []string{}
	}
	return append([]string(nil), items...)
}

func normalizeOptionalTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	timestamp := value.UTC()
	return &timestamp
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

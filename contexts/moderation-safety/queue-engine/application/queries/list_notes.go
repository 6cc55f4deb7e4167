package queries

import (
	"context"
	"log/slog"
	"strings"

	application "vigil/contexts/moderation-safety/queue-engine/application"
	"vigil/contexts/moderation-safety/queue-engine/domain/entities"
	domainerrors "vigil/contexts/moderation-safety/queue-engine/domain/errors"
	"vigil/contexts/moderation-safety/queue-engine/ports"
)

type ListNotesQuery struct {
	SubjectType string
	SubjectID   string
}

type ListNotesResult struct {
	Items []entities.ModeratorNote
}

type ListNotesUseCase struct {
	Notes  ports.NoteRepository
	Logger *slog.Logger
}

func (u ListNotesUseCase) Execute(ctx context.Context, query ListNotesQuery) (ListNotesResult, error) {
	logger := application.ResolveLogger(u.Logger)
	subjectType := entities.NoteSubjectType(query.SubjectType)
	if !subjectType.Valid() || strings.TrimSpace(query.SubjectID) == "" {
		return ListNotesResult{}, domainerrors.ErrInvalidListFilter
	}

	items, err := u.Notes.ListNotes(ctx, subjectType, query.SubjectID)
	if err != nil {
		logger.Error("list notes failed",
			"event", "list_notes_failed",
			"module", "moderation-safety/queue-engine",
			"layer", "application",
			"subject_type", subjectType,
			"subject_id", query.SubjectID,
			"error", err.Error(),
		)
		return ListNotesResult{}, err
	}
	return ListNotesResult{Items: items}, nil
}

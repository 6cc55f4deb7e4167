package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "vigil/contexts/moderation-safety/queue-engine/application"
	"vigil/contexts/moderation-safety/queue-engine/domain/entities"
	domainerrors "vigil/contexts/moderation-safety/queue-engine/domain/errors"
	"vigil/contexts/moderation-safety/queue-engine/ports"
)

type AddNoteCommand struct {
	SubjectType string
	SubjectID   string
	AuthorID    string
	Body        string
}

type AddNoteResult struct {
	Note entities.ModeratorNote
}

type AddNoteUseCase struct {
	Notes       ports.NoteRepository
	Queue       ports.QueueRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u AddNoteUseCase) Execute(ctx context.Context, cmd AddNoteCommand) (AddNoteResult, error) {
	logger := application.ResolveLogger(u.Logger)
	subjectType := entities.NoteSubjectType(cmd.SubjectType)
	if !subjectType.Valid() || strings.TrimSpace(cmd.SubjectID) == "" ||
		strings.TrimSpace(cmd.AuthorID) == "" || strings.TrimSpace(cmd.Body) == "" {
		return AddNoteResult{}, domainerrors.ErrInvalidModerationRequest
	}

	// Queue item subjects must exist; user/content subjects are external
	// identities this module cannot verify.
	if subjectType == entities.NoteSubjectQueueItem {
		if _, err := u.Queue.GetItem(ctx, cmd.SubjectID); err != nil {
			return AddNoteResult{}, err
		}
	}

	noteID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return AddNoteResult{}, err
	}
	note, err := entities.NewModeratorNote(noteID, subjectType, cmd.SubjectID, cmd.AuthorID, cmd.Body, u.now())
	if err != nil {
		return AddNoteResult{}, err
	}

	if err := u.Notes.AddNote(ctx, note); err != nil {
		logger.Error("add note failed",
			"event", "add_note_failed",
			"module", "moderation-safety/queue-engine",
			"layer", "application",
			"subject_type", subjectType,
			"subject_id", cmd.SubjectID,
			"error", err.Error(),
		)
		return AddNoteResult{}, err
	}

	logger.Info("add note succeeded",
		"event", "add_note_succeeded",
		"module", "moderation-safety/queue-engine",
		"layer", "application",
		"note_id", note.NoteID,
		"subject_type", subjectType,
		"subject_id", cmd.SubjectID,
	)
	return AddNoteResult{Note: note}, nil
}

func (u AddNoteUseCase) now() time.Time {
	if u.Clock == nil {
		return time.Now().UTC()
	}
	return u.Clock.Now().UTC()
}

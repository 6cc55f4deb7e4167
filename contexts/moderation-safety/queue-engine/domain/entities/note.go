package entities

import (
	"strings"
	"time"

	domainerrors "vigil/contexts/moderation-safety/queue-engine/domain/errors"
)

type NoteSubjectType string

const (
	NoteSubjectQueueItem NoteSubjectType = "queue_item"
	NoteSubjectUser      NoteSubjectType = "user"
	NoteSubjectContent   NoteSubjectType = "content"
)

func (t NoteSubjectType) Valid() bool {
	switch t {
	case NoteSubjectQueueItem, NoteSubjectUser, NoteSubjectContent:
		return true
	default:
		return false
	}
}

// ModeratorNote is a free-form annotation shared between moderators. Notes
// never gate queue state.
type ModeratorNote struct {
	NoteID      string
	SubjectType NoteSubjectType
	SubjectID   string
	AuthorID    string
	Body        string
	CreatedAt   time.Time
}

func NewModeratorNote(
	noteID string,
	subjectType NoteSubjectType,
	subjectID string,
	authorID string,
	body string,
	createdAt time.Time,
) (ModeratorNote, error) {
	if strings.TrimSpace(noteID) == "" ||
		strings.TrimSpace(subjectID) == "" ||
		strings.TrimSpace(authorID) == "" ||
		strings.TrimSpace(body) == "" {
		return ModeratorNote{}, domainerrors.ErrInvalidModerationRequest
	}
	if !subjectType.Valid() {
		return ModeratorNote{}, domainerrors.ErrInvalidModerationRequest
	}

	return ModeratorNote{
		NoteID:      noteID,
		SubjectType: subjectType,
		SubjectID:   subjectID,
		AuthorID:    authorID,
		Body:        body,
		CreatedAt:   createdAt.UTC(),
	}, nil
}

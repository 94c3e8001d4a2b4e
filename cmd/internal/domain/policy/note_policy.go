package policy

import (
	"smartnotes/cmd/internal/domain/entity"
	"smartnotes/cmd/internal/utils/apierror"
)

// NotePolicy encapsulates the ownership rules for notes.
// It returns apierror.ErrorResponse directly for seamless integration with handlers.
type NotePolicy struct{}

func NewNotePolicy() *NotePolicy {
	return &NotePolicy{}
}

// RequireActor rejects anonymous callers. It must run before any data access.
func (p *NotePolicy) RequireActor(actor *entity.User) apierror.ErrorResponse {
	if actor == nil {
		return apierror.UnauthorizedError
	}
	return nil
}

// CanAccess allows only the owner. A missing note and a note of somebody
// else both answer NotFoundError.
func (p *NotePolicy) CanAccess(note *entity.Note, actor *entity.User) apierror.ErrorResponse {
	if apierr := p.RequireActor(actor); apierr != nil {
		return apierr
	}

	if note == nil || note.OwnerID != actor.ID {
		return apierror.NotFoundError
	}
	return nil
}

package service

import (
	"smartnotes/cmd/internal/config"
	"smartnotes/cmd/internal/contract"
	"smartnotes/cmd/internal/domain/entity"
	"smartnotes/cmd/internal/domain/policy"
	"smartnotes/cmd/internal/domain/sqlite/repository"
	"smartnotes/cmd/internal/utils"
	"smartnotes/cmd/internal/utils/apierror"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

type NoteRepository interface {
	Search(q *repository.NoteQuery) ([]*entity.Note, error)
	FindTexts(ownerID int64, limit int) ([]*entity.Note, error)
	FindDeleted(ownerID int64, limit int) ([]*entity.Note, error)
	FindActiveByID(ownerID int64, id string) (*entity.Note, error)
	FindByID(ownerID int64, id string) (*entity.Note, error)
	Save(note *entity.Note) error
	SoftDelete(note *entity.Note, at int64) error
	Restore(note *entity.Note) error
}

type TagRepository interface {
	FindByNote(noteID string) ([]*entity.Tag, error)
	FindOwned(ownerID, tagID int64) (*entity.Tag, error)
	ReplaceForNote(noteID string, names []string, now int64) ([]*entity.Tag, error)
	Delete(tag *entity.Tag) error
	CountByOwner(ownerID int64, limit int) ([]*entity.TagCount, error)
	DistinctByOwner(ownerID int64) ([]string, error)
}

type DefaultNoteService struct {
	NoteRepo   NoteRepository
	TagRepo    TagRepository
	NotePolicy *policy.NotePolicy
	Validate   *validator.Validate
	Limits     *config.Search
}

func NewNoteService(
	noteRepo NoteRepository,
	tagRepo TagRepository,
	notePolicy *policy.NotePolicy,
	validate *validator.Validate,
	limits *config.Search,
) *DefaultNoteService {
	return &DefaultNoteService{
		NoteRepo:   noteRepo,
		TagRepo:    tagRepo,
		NotePolicy: notePolicy,
		Validate:   validate,
		Limits:     limits,
	}
}

// GetNotes lists the active notes of the actor, most recently updated first.
func (n *DefaultNoteService) GetNotes(actor *entity.User, limit int) ([]*contract.NoteResponse, apierror.ErrorResponse) {
	if apierr := n.NotePolicy.RequireActor(actor); apierr != nil {
		return nil, apierr
	}

	query := repository.NewNoteQuery(actor.ID).
		Limit(n.Limits.Clamp(limit, n.Limits.DefaultLimit))
	notes, err := n.NoteRepo.Search(query)
	if err != nil {
		log.Errorf("failed to list notes of user %d: %v", actor.ID, err)
		return nil, apierror.InternalServerError
	}
	return toNoteResponses(notes), nil
}

// GetDeletedNotes lists the soft-deleted notes of the actor, most recently deleted first.
func (n *DefaultNoteService) GetDeletedNotes(actor *entity.User, limit int) ([]*contract.NoteResponse, apierror.ErrorResponse) {
	if apierr := n.NotePolicy.RequireActor(actor); apierr != nil {
		return nil, apierr
	}

	notes, err := n.NoteRepo.FindDeleted(actor.ID, n.Limits.Clamp(limit, n.Limits.DefaultLimit))
	if err != nil {
		log.Errorf("failed to list deleted notes of user %d: %v", actor.ID, err)
		return nil, apierror.InternalServerError
	}
	return toNoteResponses(notes), nil
}

func (n *DefaultNoteService) GetNoteByID(actor *entity.User, noteID string) (*contract.NoteResponse, apierror.ErrorResponse) {
	note, apierr := n.fetchActive(actor, noteID)
	if apierr != nil {
		return nil, apierr
	}
	return toNoteResponse(note), nil
}

func (n *DefaultNoteService) CreateNote(actor *entity.User, req *contract.NoteRequest) (*contract.NoteResponse, apierror.ErrorResponse) {
	if apierr := n.NotePolicy.RequireActor(actor); apierr != nil {
		return nil, apierr
	}

	// Content is stored as-is, only the title gets trimmed
	req.Title = strings.TrimSpace(req.Title)
	if valerr := n.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	now := utils.NowUTC()
	note := &entity.Note{
		ID:        uuid.NewString(),
		OwnerID:   actor.ID,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := n.NoteRepo.Save(note); err != nil {
		log.Errorf("failed to save note for user %d: %v", actor.ID, err)
		return nil, apierror.InternalServerError
	}
	return toNoteResponse(note), nil
}

func (n *DefaultNoteService) UpdateNote(actor *entity.User, noteID string, req *contract.UpdateNoteRequest) (*contract.NoteResponse, apierror.ErrorResponse) {
	if apierr := n.NotePolicy.RequireActor(actor); apierr != nil {
		return nil, apierr
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		req.Title = &title
	}
	if valerr := n.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	note, apierr := n.fetchActive(actor, noteID)
	if apierr != nil {
		return nil, apierr
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}

	note.UpdatedAt = utils.NowUTC()
	if err := n.NoteRepo.Save(note); err != nil {
		log.Errorf("failed to update note %s: %v", noteID, err)
		return nil, apierror.InternalServerError
	}
	return toNoteResponse(note), nil
}

// DeleteNote soft-deletes the note, it stays restorable.
func (n *DefaultNoteService) DeleteNote(actor *entity.User, noteID string) apierror.ErrorResponse {
	note, apierr := n.fetchActive(actor, noteID)
	if apierr != nil {
		return apierr
	}

	if err := n.NoteRepo.SoftDelete(note, utils.NowUTC()); err != nil {
		log.Errorf("failed to delete note %s: %v", noteID, err)
		return apierror.InternalServerError
	}
	return nil
}

// RestoreNote clears the deleted marker. Restoring an active note is a no-op.
func (n *DefaultNoteService) RestoreNote(actor *entity.User, noteID string) (*contract.NoteResponse, apierror.ErrorResponse) {
	if apierr := n.NotePolicy.RequireActor(actor); apierr != nil {
		return nil, apierr
	}

	note, err := n.NoteRepo.FindByID(actor.ID, noteID)
	if err != nil {
		log.Errorf("failed to fetch note %s: %v", noteID, err)
		return nil, apierror.InternalServerError
	}

	if apierr := n.NotePolicy.CanAccess(note, actor); apierr != nil {
		return nil, apierr
	}

	if note.IsActive() {
		return toNoteResponse(note), nil
	}

	if err = n.NoteRepo.Restore(note); err != nil {
		log.Errorf("failed to restore note %s: %v", noteID, err)
		return nil, apierror.InternalServerError
	}
	return toNoteResponse(note), nil
}

func (n *DefaultNoteService) GetNoteTags(actor *entity.User, noteID string) ([]*contract.TagResponse, apierror.ErrorResponse) {
	if _, apierr := n.fetchActive(actor, noteID); apierr != nil {
		return nil, apierr
	}

	tags, err := n.TagRepo.FindByNote(noteID)
	if err != nil {
		log.Errorf("failed to fetch tags of note %s: %v", noteID, err)
		return nil, apierror.InternalServerError
	}
	return toTagResponses(tags), nil
}

func (n *DefaultNoteService) DeleteTag(actor *entity.User, tagID int64) apierror.ErrorResponse {
	if apierr := n.NotePolicy.RequireActor(actor); apierr != nil {
		return apierr
	}

	tag, err := n.TagRepo.FindOwned(actor.ID, tagID)
	if err != nil {
		log.Errorf("failed to fetch tag %d: %v", tagID, err)
		return apierror.InternalServerError
	}

	if tag == nil {
		return apierror.NotFoundError
	}

	if err = n.TagRepo.Delete(tag); err != nil {
		log.Errorf("failed to delete tag %d: %v", tagID, err)
		return apierror.InternalServerError
	}
	return nil
}

// fetchActive resolves an active note of the actor or the error to answer with.
func (n *DefaultNoteService) fetchActive(actor *entity.User, noteID string) (*entity.Note, apierror.ErrorResponse) {
	if apierr := n.NotePolicy.RequireActor(actor); apierr != nil {
		return nil, apierr
	}

	note, err := n.NoteRepo.FindActiveByID(actor.ID, noteID)
	if err != nil {
		log.Errorf("failed to fetch note %s: %v", noteID, err)
		return nil, apierror.InternalServerError
	}

	if apierr := n.NotePolicy.CanAccess(note, actor); apierr != nil {
		return nil, apierr
	}
	return note, nil
}

func toNoteResponse(note *entity.Note) *contract.NoteResponse {
	tags := make([]string, len(note.Tags))
	for i, tag := range note.Tags {
		tags[i] = tag.Name
	}

	return &contract.NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		Tags:      tags,
		CreatedAt: utils.FormatEpoch(note.CreatedAt),
		UpdatedAt: utils.FormatEpoch(note.UpdatedAt),
		DeletedAt: utils.FormatEpochPtr(note.DeletedAt),
	}
}

func toNoteResponses(notes []*entity.Note) []*contract.NoteResponse {
	resp := make([]*contract.NoteResponse, len(notes))
	for i, note := range notes {
		resp[i] = toNoteResponse(note)
	}
	return resp
}

func toTagResponses(tags []*entity.Tag) []*contract.TagResponse {
	resp := make([]*contract.TagResponse, len(tags))
	for i, tag := range tags {
		resp[i] = &contract.TagResponse{
			ID:        tag.ID,
			NoteID:    tag.NoteID,
			Name:      tag.Name,
			CreatedAt: utils.FormatEpoch(tag.CreatedAt),
		}
	}
	return resp
}

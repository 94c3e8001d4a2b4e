package service

import (
	"smartnotes/cmd/internal/contract"
	"smartnotes/cmd/internal/domain/entity"
	"smartnotes/cmd/internal/domain/policy"
	"smartnotes/cmd/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

// TagService aggregates the tags attached to the actor's active notes.
type TagService struct {
	TagRepo    TagRepository
	NotePolicy *policy.NotePolicy
}

func NewTagService(tagRepo TagRepository, notePolicy *policy.NotePolicy) *TagService {
	return &TagService{
		TagRepo:    tagRepo,
		NotePolicy: notePolicy,
	}
}

// UserTags lists every distinct tag name of the actor, alphabetically.
func (t *TagService) UserTags(actor *entity.User) ([]string, apierror.ErrorResponse) {
	if apierr := t.NotePolicy.RequireActor(actor); apierr != nil {
		return nil, apierr
	}

	names, err := t.TagRepo.DistinctByOwner(actor.ID)
	if err != nil {
		log.Errorf("failed to list tags of user %d: %v", actor.ID, err)
		return nil, apierror.InternalServerError
	}

	if names == nil {
		names = []string{}
	}
	return names, nil
}

// TagStats counts the usages of every tag of the actor, most used first.
func (t *TagService) TagStats(actor *entity.User) ([]*contract.TagCountResponse, apierror.ErrorResponse) {
	if apierr := t.NotePolicy.RequireActor(actor); apierr != nil {
		return nil, apierr
	}

	counts, err := t.TagRepo.CountByOwner(actor.ID, 0)
	if err != nil {
		log.Errorf("failed to count tags of user %d: %v", actor.ID, err)
		return nil, apierror.InternalServerError
	}
	return toTagCountResponses(counts), nil
}

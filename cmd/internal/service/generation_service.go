package service

import (
	"context"
	"smartnotes/cmd/internal/contract"
	"smartnotes/cmd/internal/domain/entity"
	"smartnotes/cmd/internal/domain/policy"
	"smartnotes/cmd/internal/infrastructure/textgen"
	"smartnotes/cmd/internal/utils"
	"smartnotes/cmd/internal/utils/apierror"
	"smartnotes/cmd/internal/utils/uid"
	"strings"

	"github.com/labstack/gommon/log"
)

type SummaryRepository interface {
	FindByNote(noteID string) ([]*entity.Summary, error)
	Save(summary *entity.Summary) error
}

// GenerationService derives summaries and tags from note content
// through a text generation provider.
type GenerationService struct {
	NoteRepo    NoteRepository
	TagRepo     TagRepository
	SummaryRepo SummaryRepository
	NotePolicy  *policy.NotePolicy
	Generator   textgen.Generator
}

func NewGenerationService(
	noteRepo NoteRepository,
	tagRepo TagRepository,
	summaryRepo SummaryRepository,
	notePolicy *policy.NotePolicy,
	generator textgen.Generator,
) *GenerationService {
	return &GenerationService{
		NoteRepo:    noteRepo,
		TagRepo:     tagRepo,
		SummaryRepo: summaryRepo,
		NotePolicy:  notePolicy,
		Generator:   generator,
	}
}

func (g *GenerationService) GetSummaries(actor *entity.User, noteID string) ([]*contract.SummaryResponse, apierror.ErrorResponse) {
	if _, apierr := g.fetchGenerable(actor, noteID, false); apierr != nil {
		return nil, apierr
	}

	summaries, err := g.SummaryRepo.FindByNote(noteID)
	if err != nil {
		log.Errorf("failed to fetch summaries of note %s: %v", noteID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.SummaryResponse, len(summaries))
	for i, s := range summaries {
		resp[i] = toSummaryResponse(s)
	}
	return resp, nil
}

// GenerateSummary stores a new summary of the note. Older summaries are kept.
func (g *GenerationService) GenerateSummary(ctx context.Context, actor *entity.User, noteID string) (*contract.SummaryResponse, apierror.ErrorResponse) {
	note, apierr := g.fetchGenerable(actor, noteID, true)
	if apierr != nil {
		return nil, apierr
	}

	text, err := g.Generator.Generate(ctx, textgen.SummaryPrompt(note.Title, note.Content))
	if err != nil {
		log.Errorf("failed to generate summary of note %s: %v", noteID, err)
		return nil, apierror.GenerationFailedError
	}

	summary := &entity.Summary{
		ID:        uid.Generate(),
		NoteID:    note.ID,
		Content:   strings.TrimSpace(text),
		CreatedAt: utils.NowUTC(),
	}

	if err = g.SummaryRepo.Save(summary); err != nil {
		log.Errorf("failed to save summary of note %s: %v", noteID, err)
		return nil, apierror.InternalServerError
	}
	return toSummaryResponse(summary), nil
}

// GenerateTags replaces the tags of the note with freshly generated ones.
func (g *GenerationService) GenerateTags(ctx context.Context, actor *entity.User, noteID string) ([]*contract.TagResponse, apierror.ErrorResponse) {
	note, apierr := g.fetchGenerable(actor, noteID, true)
	if apierr != nil {
		return nil, apierr
	}

	prompt := textgen.TagsPrompt(note.Title, note.Content, entity.TagsPerGenerated)
	text, err := g.Generator.Generate(ctx, prompt)
	if err != nil {
		log.Errorf("failed to generate tags of note %s: %v", noteID, err)
		return nil, apierror.GenerationFailedError
	}

	names := utils.NormalizeTags(textgen.SplitTags(text), entity.TagMaxLength, entity.TagsPerGenerated)
	if len(names) == 0 {
		log.Warnf("text generation produced no usable tags for note %s: %q", noteID, text)
		return nil, apierror.GenerationFailedError
	}

	tags, err := g.TagRepo.ReplaceForNote(note.ID, names, utils.NowUTC())
	if err != nil {
		log.Errorf("failed to replace tags of note %s: %v", noteID, err)
		return nil, apierror.InternalServerError
	}
	return toTagResponses(tags), nil
}

func (g *GenerationService) fetchGenerable(actor *entity.User, noteID string, needsContent bool) (*entity.Note, apierror.ErrorResponse) {
	if apierr := g.NotePolicy.RequireActor(actor); apierr != nil {
		return nil, apierr
	}

	note, err := g.NoteRepo.FindActiveByID(actor.ID, noteID)
	if err != nil {
		log.Errorf("failed to fetch note %s: %v", noteID, err)
		return nil, apierror.InternalServerError
	}

	if apierr := g.NotePolicy.CanAccess(note, actor); apierr != nil {
		return nil, apierr
	}

	if needsContent && strings.TrimSpace(note.Content) == "" {
		return nil, apierror.EmptyNoteContentError
	}
	return note, nil
}

func toSummaryResponse(s *entity.Summary) *contract.SummaryResponse {
	return &contract.SummaryResponse{
		ID:        s.ID,
		NoteID:    s.NoteID,
		Content:   s.Content,
		CreatedAt: utils.FormatEpoch(s.CreatedAt),
	}
}

package service

import (
	"smartnotes/cmd/internal/config"
	"smartnotes/cmd/internal/contract"
	"smartnotes/cmd/internal/domain/entity"
	"smartnotes/cmd/internal/domain/policy"
	"smartnotes/cmd/internal/domain/sqlite/repository"
	"smartnotes/cmd/internal/infrastructure/metrics"
	"smartnotes/cmd/internal/utils"
	"smartnotes/cmd/internal/utils/apierror"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/labstack/gommon/log"
)

const (
	contentPreviewLength = 100
	minCompletionLength  = 2

	titleMatchScore   = 10
	contentMatchScore = 5
	recencyWindowDays = 10
)

// SuggestionService powers autocomplete. Suggestions are advisory: apart
// from a missing actor, failures are logged and answered with empty lists.
type SuggestionService struct {
	NoteRepo   NoteRepository
	TagRepo    TagRepository
	NotePolicy *policy.NotePolicy
	Limits     *config.Search

	// Now is swappable so relevance scores can be pinned in tests.
	Now func() time.Time
}

func NewSuggestionService(
	noteRepo NoteRepository,
	tagRepo TagRepository,
	notePolicy *policy.NotePolicy,
	limits *config.Search,
) *SuggestionService {
	return &SuggestionService{
		NoteRepo:   noteRepo,
		TagRepo:    tagRepo,
		NotePolicy: notePolicy,
		Limits:     limits,
		Now:        time.Now,
	}
}

// SuggestForQuery ranks the notes matching partial by relevance.
func (s *SuggestionService) SuggestForQuery(actor *entity.User, partial string, limit int) ([]*contract.SuggestionResponse, apierror.ErrorResponse) {
	if apierr := s.NotePolicy.RequireActor(actor); apierr != nil {
		return nil, apierr
	}

	partial = strings.TrimSpace(partial)
	if utf8.RuneCountInString(partial) < s.Limits.MinQueryLength {
		return []*contract.SuggestionResponse{}, nil
	}

	start := time.Now()
	defer metrics.ObserveSearch("suggest", start)

	q := repository.NewNoteQuery(actor.ID).
		MatchText(partial).
		Limit(s.Limits.Clamp(limit, s.Limits.SuggestLimit))
	notes, err := s.NoteRepo.Search(q)
	if err != nil {
		s.failed("suggest", actor, err)
		return []*contract.SuggestionResponse{}, nil
	}

	now := s.Now().UnixMilli()
	resp := make([]*contract.SuggestionResponse, len(notes))
	for i, note := range notes {
		resp[i] = &contract.SuggestionResponse{
			ID:             note.ID,
			Title:          note.Title,
			ContentPreview: contentPreview(note.Content),
			RelevanceScore: relevanceScore(note, partial, now),
			CreatedAt:      utils.FormatEpoch(note.CreatedAt),
			UpdatedAt:      utils.FormatEpoch(note.UpdatedAt),
		}
	}

	// Ties keep the store order (most recently updated first)
	sort.SliceStable(resp, func(i, j int) bool {
		return resp[i].RelevanceScore > resp[j].RelevanceScore
	})
	return resp, nil
}

// SuggestQueryCompletions proposes words from the actor's notes that contain
// partial, closest spelling first.
func (s *SuggestionService) SuggestQueryCompletions(actor *entity.User, partial string) ([]string, apierror.ErrorResponse) {
	if apierr := s.NotePolicy.RequireActor(actor); apierr != nil {
		return nil, apierr
	}

	partial = entity.FoldText(strings.TrimSpace(partial))
	if utf8.RuneCountInString(partial) < s.Limits.MinQueryLength {
		return []string{}, nil
	}

	start := time.Now()
	defer metrics.ObserveSearch("completions", start)

	notes, err := s.NoteRepo.FindTexts(actor.ID, s.Limits.CompletionScanLimit)
	if err != nil {
		s.failed("completions", actor, err)
		return []string{}, nil
	}

	candidates := completionCandidates(notes, partial)
	scores := make(map[string]float64, len(candidates))
	for _, c := range candidates {
		scores[c] = utils.Similarity(partial, c)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return scores[candidates[i]] > scores[candidates[j]]
	})

	if len(candidates) > s.Limits.CompletionLimit {
		candidates = candidates[:s.Limits.CompletionLimit]
	}
	return candidates, nil
}

// PopularTags returns the actor's most used tags. Ties have no defined order.
func (s *SuggestionService) PopularTags(actor *entity.User, limit int) ([]*contract.TagCountResponse, apierror.ErrorResponse) {
	if apierr := s.NotePolicy.RequireActor(actor); apierr != nil {
		return nil, apierr
	}

	counts, err := s.TagRepo.CountByOwner(actor.ID, s.Limits.Clamp(limit, s.Limits.PopularTagsLimit))
	if err != nil {
		s.failed("popular_tags", actor, err)
		return []*contract.TagCountResponse{}, nil
	}
	return toTagCountResponses(counts), nil
}

func (s *SuggestionService) failed(operation string, actor *entity.User, err error) {
	metrics.SuggestionFailuresTotal.WithLabelValues(operation).Inc()
	log.Errorf("suggestion %s failed for user %d, answering empty: %v", operation, actor.ID, err)
}

// relevanceScore adds 10 for a title match, 5 for a content match and up to
// 10 more for notes created in the last ten days.
func relevanceScore(note *entity.Note, query string, nowMillis int64) int {
	query = entity.FoldText(query)

	score := 0
	if strings.Contains(entity.FoldText(note.Title), query) {
		score += titleMatchScore
	}
	if strings.Contains(entity.FoldText(note.Content), query) {
		score += contentMatchScore
	}

	days := int((nowMillis - note.CreatedAt) / utils.MillisPerDay)
	return score + max(0, recencyWindowDays-days)
}

func contentPreview(content string) string {
	if utf8.RuneCountInString(content) <= contentPreviewLength {
		return content
	}
	return string([]rune(content)[:contentPreviewLength]) + "..."
}

// completionCandidates collects, in first-seen order, the distinct lower-cased
// words of the notes that contain partial without being equal to it.
func completionCandidates(notes []*entity.Note, partial string) []string {
	seen := make(map[string]struct{})
	var out []string

	collect := func(text string) {
		for _, word := range strings.Fields(text) {
			word = entity.FoldText(word)
			if utf8.RuneCountInString(word) < minCompletionLength || word == partial {
				continue
			}
			if !strings.Contains(word, partial) {
				continue
			}
			if _, ok := seen[word]; ok {
				continue
			}
			seen[word] = struct{}{}
			out = append(out, word)
		}
	}

	for _, note := range notes {
		collect(note.Title)
		collect(note.Content)
	}

	if out == nil {
		return []string{}
	}
	return out
}

func toTagCountResponses(counts []*entity.TagCount) []*contract.TagCountResponse {
	resp := make([]*contract.TagCountResponse, len(counts))
	for i, c := range counts {
		resp[i] = &contract.TagCountResponse{Tag: c.Name, Count: c.Count}
	}
	return resp
}

package service

import (
	"errors"
	"smartnotes/cmd/internal/config"
	"smartnotes/cmd/internal/contract"
	"smartnotes/cmd/internal/domain/entity"
	"smartnotes/cmd/internal/domain/policy"
	"smartnotes/cmd/internal/domain/sqlite/repository"
	"smartnotes/cmd/internal/infrastructure/metrics"
	"smartnotes/cmd/internal/utils"
	"smartnotes/cmd/internal/utils/apierror"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
)

// SearchService runs the read-side filters over the actor's active notes.
// Every result list is ordered by most recently updated first.
type SearchService struct {
	NoteRepo   NoteRepository
	NotePolicy *policy.NotePolicy
	Limits     *config.Search
}

func NewSearchService(noteRepo NoteRepository, notePolicy *policy.NotePolicy, limits *config.Search) *SearchService {
	return &SearchService{
		NoteRepo:   noteRepo,
		NotePolicy: notePolicy,
		Limits:     limits,
	}
}

// SearchByText matches query against title and content, ignoring case.
// Single characters are accepted, blank queries are not.
func (s *SearchService) SearchByText(actor *entity.User, query string, limit int) (*contract.SearchResponse, apierror.ErrorResponse) {
	if apierr := s.NotePolicy.RequireActor(actor); apierr != nil {
		return nil, apierr
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apierror.QueryRequiredError
	}

	q := repository.NewNoteQuery(actor.ID).
		MatchText(query).
		Limit(s.Limits.Clamp(limit, s.Limits.DefaultLimit))
	return s.run("text", q, query)
}

// FilterByTags keeps notes carrying every requested tag, optionally narrowed by text.
func (s *SearchService) FilterByTags(actor *entity.User, tags []string, query string, limit int) (*contract.SearchResponse, apierror.ErrorResponse) {
	if apierr := s.NotePolicy.RequireActor(actor); apierr != nil {
		return nil, apierr
	}

	tags = normalizeRequestedTags(tags)
	if len(tags) == 0 {
		return nil, apierror.TagsRequiredError
	}

	query = strings.TrimSpace(query)
	q := repository.NewNoteQuery(actor.ID).
		WithTags(tags).
		MatchText(query).
		Limit(s.Limits.Clamp(limit, s.Limits.DefaultLimit))
	return s.run("tags", q, query)
}

// FilterByDateRange keeps notes created between the start of start's day and
// the end of end's day, optionally narrowed by text and tags.
func (s *SearchService) FilterByDateRange(actor *entity.User, start, end time.Time, query string, tags []string, limit int) (*contract.SearchResponse, apierror.ErrorResponse) {
	if apierr := s.NotePolicy.RequireActor(actor); apierr != nil {
		return nil, apierr
	}

	from, to, err := repository.DayRange(start, end)
	switch {
	case errors.Is(err, repository.ErrMissingDateBound):
		return nil, apierror.DateBoundsMissingError
	case errors.Is(err, repository.ErrInvalidDateRange):
		return nil, apierror.InvalidDateRangeError
	}

	query = strings.TrimSpace(query)
	q := repository.NewNoteQuery(actor.ID).
		CreatedBetween(from, to).
		WithTags(normalizeRequestedTags(tags)).
		MatchText(query).
		Limit(s.Limits.Clamp(limit, s.Limits.DefaultLimit))
	return s.run("dates", q, query)
}

func (s *SearchService) run(operation string, q *repository.NoteQuery, query string) (*contract.SearchResponse, apierror.ErrorResponse) {
	start := time.Now()
	defer metrics.ObserveSearch(operation, start)

	notes, err := s.NoteRepo.Search(q)
	if err != nil {
		log.Errorf("search %s failed for user %d (query=%q, tags=%v): %v",
			operation, q.OwnerID(), query, q.Tags(), err)
		return nil, apierror.InternalServerError
	}

	return &contract.SearchResponse{
		Notes: toNoteResponses(notes),
		Meta: &contract.SearchMeta{
			Query:     query,
			Count:     len(notes),
			ElapsedMs: time.Since(start).Milliseconds(),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}, nil
}

// normalizeRequestedTags applies the same normalization used when storing
// tags, so "JavaScript" finds notes tagged "javascript".
func normalizeRequestedTags(tags []string) []string {
	return utils.NormalizeTags(tags, entity.TagMaxLength, 0)
}

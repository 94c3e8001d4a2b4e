package repository

import (
	"errors"
	"smartnotes/cmd/internal/domain/entity"
	"strings"
	"time"

	"gorm.io/gorm"
)

var (
	ErrMissingDateBound = errors.New("both date bounds are required")
	ErrInvalidDateRange = errors.New("start date is after end date")
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// NoteQuery composes the read predicates for notes. The owner scope and the
// "not deleted" filter are always applied; the other predicates are optional
// and combine with AND.
type NoteQuery struct {
	ownerID  int64
	text     string
	tags     []string
	from, to int64
	hasRange bool
	limit    int
}

func NewNoteQuery(ownerID int64) *NoteQuery {
	return &NoteQuery{ownerID: ownerID}
}

// MatchText narrows to notes whose title or content contains text,
// ignoring case. Blank text is ignored.
func (q *NoteQuery) MatchText(text string) *NoteQuery {
	q.text = strings.TrimSpace(text)
	return q
}

// WithTags narrows to notes carrying every one of the given tags.
// Duplicates and blanks are dropped.
func (q *NoteQuery) WithTags(tags []string) *NoteQuery {
	seen := make(map[string]struct{}, len(tags))
	q.tags = make([]string, 0, len(tags))
	for _, t := range tags {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		q.tags = append(q.tags, t)
	}
	return q
}

// CreatedBetween narrows to notes created within [from, to], both in epoch millis.
func (q *NoteQuery) CreatedBetween(from, to int64) *NoteQuery {
	q.from, q.to, q.hasRange = from, to, true
	return q
}

func (q *NoteQuery) Limit(limit int) *NoteQuery {
	q.limit = limit
	return q
}

func (q *NoteQuery) OwnerID() int64 {
	return q.ownerID
}

func (q *NoteQuery) Tags() []string {
	return q.tags
}

// Scope applies the query predicates to a statement over the notes table.
func (q *NoteQuery) Scope(db *gorm.DB) *gorm.DB {
	db = db.Where("notes.owner_id = ? AND notes.deleted_at IS NULL", q.ownerID)

	if q.text != "" {
		pattern := "%" + likeEscaper.Replace(entity.FoldText(q.text)) + "%"
		db = db.Where(`(notes.title_folded LIKE ? ESCAPE '\' OR notes.content_folded LIKE ? ESCAPE '\')`, pattern, pattern)
	}

	if len(q.tags) > 0 {
		// A plain join on tags gives "any of" semantics. Counting the distinct
		// requested names per note keeps only notes that carry all of them.
		sub := db.Session(&gorm.Session{NewDB: true}).
			Model(&entity.Tag{}).
			Select("note_id").
			Where("name IN ?", q.tags).
			Group("note_id").
			Having("COUNT(DISTINCT name) = ?", len(q.tags))
		db = db.Where("notes.id IN (?)", sub)
	}

	if q.hasRange {
		db = db.Where("notes.created_at >= ? AND notes.created_at <= ?", q.from, q.to)
	}

	db = db.Order("notes.updated_at DESC")
	if q.limit > 0 {
		db = db.Limit(q.limit)
	}
	return db
}

// DayRange widens [start, end] to whole local days and returns the bounds in
// epoch millis: start floors to 00:00:00.000 and end ceils to 23:59:59.999.
func DayRange(start, end time.Time) (int64, int64, error) {
	if start.IsZero() || end.IsZero() {
		return 0, 0, ErrMissingDateBound
	}

	if start.After(end) {
		return 0, 0, ErrInvalidDateRange
	}

	from := startOfDay(start)
	to := startOfDay(end).AddDate(0, 0, 1).Add(-time.Millisecond)
	return from.UnixMilli(), to.UnixMilli(), nil
}

func startOfDay(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

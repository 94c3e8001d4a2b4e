package service

import (
	"context"
	"errors"
	"smartnotes/cmd/internal/config"
	"smartnotes/cmd/internal/domain/entity"
	"smartnotes/cmd/internal/domain/policy"
	"smartnotes/cmd/internal/domain/sqlite"
	"smartnotes/cmd/internal/domain/sqlite/repository"
	"smartnotes/cmd/internal/utils/uid"
	"smartnotes/cmd/internal/utils/validators"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var errStore = errors.New("store unavailable")

type testEnv struct {
	db          *gorm.DB
	noteRepo    *repository.DefaultNoteRepository
	tagRepo     *repository.DefaultTagRepository
	summaryRepo *repository.DefaultSummaryRepository
	userRepo    *repository.DefaultUserRepository
	policy      *policy.NotePolicy
	validate    *validator.Validate
	limits      *config.Search
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	validate := validator.New()
	validators.Register(validate)

	return &testEnv{
		db:          db,
		noteRepo:    repository.NewNoteRepository(db),
		tagRepo:     repository.NewTagRepository(db),
		summaryRepo: repository.NewSummaryRepository(db),
		userRepo:    repository.NewUserRepository(db),
		policy:      policy.NewNotePolicy(),
		validate:    validate,
		limits:      config.DefaultSearch(),
	}
}

func (e *testEnv) noteService() *DefaultNoteService {
	return NewNoteService(e.noteRepo, e.tagRepo, e.policy, e.validate, e.limits)
}

func (e *testEnv) seedNote(t *testing.T, owner int64, id, title, content string, createdAt int64, tags ...string) *entity.Note {
	t.Helper()

	note := &entity.Note{
		ID:        id,
		OwnerID:   owner,
		Title:     title,
		Content:   content,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, e.noteRepo.Save(note))

	if len(tags) > 0 {
		_, err := e.tagRepo.ReplaceForNote(id, tags, createdAt)
		require.NoError(t, err)
	}
	return note
}

func actor(id int64) *entity.User {
	return &entity.User{ID: id, SubUUID: "sub", Username: "tester", Active: true}
}

// untouchableNoteRepo panics on any call, proving a code path never reaches the store.
type untouchableNoteRepo struct {
	NoteRepository
}

type failingNoteRepo struct {
	NoteRepository
}

func (failingNoteRepo) Search(*repository.NoteQuery) ([]*entity.Note, error) {
	return nil, errStore
}

func (failingNoteRepo) FindTexts(int64, int) ([]*entity.Note, error) {
	return nil, errStore
}

type failingTagRepo struct {
	TagRepository
}

func (failingTagRepo) CountByOwner(int64, int) ([]*entity.TagCount, error) {
	return nil, errStore
}

func (failingTagRepo) DistinctByOwner(int64) ([]string, error) {
	return nil, errStore
}

type fakeGenerator struct {
	text    string
	err     error
	prompts []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

func init() {
	uid.Init(uid.DefaultMachineID)
}

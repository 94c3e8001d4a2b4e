package repository

import (
	"smartnotes/cmd/internal/domain/entity"
	"smartnotes/cmd/internal/domain/sqlite"
	"smartnotes/cmd/internal/utils/uid"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

type noteSeed struct {
	id        string
	owner     int64
	title     string
	content   string
	createdAt int64
	updatedAt int64
	tags      []string
}

func seedNote(t *testing.T, db *gorm.DB, s noteSeed) *entity.Note {
	t.Helper()

	if s.updatedAt == 0 {
		s.updatedAt = s.createdAt
	}

	note := &entity.Note{
		ID:        s.id,
		OwnerID:   s.owner,
		Title:     s.title,
		Content:   s.content,
		CreatedAt: s.createdAt,
		UpdatedAt: s.updatedAt,
	}
	require.NoError(t, db.Omit("Tags").Create(note).Error)

	for _, name := range s.tags {
		tag := &entity.Tag{ID: uid.Generate(), NoteID: s.id, Name: name, CreatedAt: s.createdAt}
		require.NoError(t, db.Create(tag).Error)
	}
	return note
}

func noteIDs(notes []*entity.Note) []string {
	ids := make([]string, len(notes))
	for i, n := range notes {
		ids[i] = n.ID
	}
	return ids
}

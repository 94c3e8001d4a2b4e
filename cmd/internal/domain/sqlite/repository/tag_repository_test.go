package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountByOwner(t *testing.T) {
	db := newTestDB(t)
	repo := NewTagRepository(db)

	seedNote(t, db, noteSeed{id: "a", owner: 1, title: "a", createdAt: 1, tags: []string{"js", "react"}})
	seedNote(t, db, noteSeed{id: "b", owner: 1, title: "b", createdAt: 1, tags: []string{"js", "programming"}})
	seedNote(t, db, noteSeed{id: "c", owner: 2, title: "c", createdAt: 1, tags: []string{"react", "react", "react"}})

	counts, err := repo.CountByOwner(1, 5)
	require.NoError(t, err)
	require.Len(t, counts, 3)
	assert.Equal(t, "js", counts[0].Name)
	assert.Equal(t, int64(2), counts[0].Count)

	rest := map[string]int64{counts[1].Name: counts[1].Count, counts[2].Name: counts[2].Count}
	assert.Equal(t, map[string]int64{"react": 1, "programming": 1}, rest)

	counts, err = repo.CountByOwner(1, 1)
	require.NoError(t, err)
	assert.Len(t, counts, 1)
}

func TestCountByOwnerSkipsDeletedNotes(t *testing.T) {
	db := newTestDB(t)
	repo := NewTagRepository(db)
	notes := NewNoteRepository(db)

	seedNote(t, db, noteSeed{id: "a", owner: 1, title: "a", createdAt: 1, tags: []string{"go"}})
	gone := seedNote(t, db, noteSeed{id: "b", owner: 1, title: "b", createdAt: 1, tags: []string{"go", "rust"}})
	require.NoError(t, notes.SoftDelete(gone, 10))

	counts, err := repo.CountByOwner(1, 0)
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, "go", counts[0].Name)
	assert.Equal(t, int64(1), counts[0].Count)

	names, err := repo.DistinctByOwner(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, names)
}

func TestDistinctByOwner(t *testing.T) {
	db := newTestDB(t)
	repo := NewTagRepository(db)

	seedNote(t, db, noteSeed{id: "a", owner: 1, title: "a", createdAt: 1, tags: []string{"react", "js"}})
	seedNote(t, db, noteSeed{id: "b", owner: 1, title: "b", createdAt: 1, tags: []string{"js", "programming"}})
	seedNote(t, db, noteSeed{id: "c", owner: 2, title: "c", createdAt: 1, tags: []string{"zig"}})

	names, err := repo.DistinctByOwner(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"js", "programming", "react"}, names)

	names, err = repo.DistinctByOwner(3)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestReplaceForNote(t *testing.T) {
	db := newTestDB(t)
	repo := NewTagRepository(db)

	seedNote(t, db, noteSeed{id: "a", owner: 1, title: "a", createdAt: 1, tags: []string{"old", "stale"}})

	created, err := repo.ReplaceForNote("a", []string{"go", "web"}, 100)
	require.NoError(t, err)
	require.Len(t, created, 2)

	tags, err := repo.FindByNote("a")
	require.NoError(t, err)

	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = tag.Name
		assert.Equal(t, int64(100), tag.CreatedAt)
		assert.NotZero(t, tag.ID)
	}
	assert.ElementsMatch(t, []string{"go", "web"}, names)
}

func TestFindOwnedAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewTagRepository(db)

	seedNote(t, db, noteSeed{id: "a", owner: 1, title: "a", createdAt: 1, tags: []string{"go"}})
	tags, err := repo.FindByNote("a")
	require.NoError(t, err)
	require.Len(t, tags, 1)

	foreign, err := repo.FindOwned(2, tags[0].ID)
	require.NoError(t, err)
	assert.Nil(t, foreign)

	owned, err := repo.FindOwned(1, tags[0].ID)
	require.NoError(t, err)
	require.NotNil(t, owned)

	require.NoError(t, repo.Delete(owned))

	tags, err = repo.FindByNote("a")
	require.NoError(t, err)
	assert.Empty(t, tags)
}

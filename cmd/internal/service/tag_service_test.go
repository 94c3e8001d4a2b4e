package service

import (
	"smartnotes/cmd/internal/utils/apierror"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserTags(t *testing.T) {
	env := newTestEnv(t)
	svc := NewTagService(env.tagRepo, env.policy)

	env.seedNote(t, 1, "a", "a", "", 1, "react", "js")
	env.seedNote(t, 1, "b", "b", "", 2, "js", "programming")
	env.seedNote(t, 2, "c", "c", "", 3, "zig")

	tags, apierr := svc.UserTags(actor(1))
	require.Nil(t, apierr)
	assert.Equal(t, []string{"js", "programming", "react"}, tags)

	tags, apierr = svc.UserTags(actor(3))
	require.Nil(t, apierr)
	assert.NotNil(t, tags)
	assert.Empty(t, tags)
}

func TestTagStats(t *testing.T) {
	env := newTestEnv(t)
	svc := NewTagService(env.tagRepo, env.policy)

	env.seedNote(t, 1, "a", "a", "", 1, "js", "react")
	env.seedNote(t, 1, "b", "b", "", 2, "js", "programming")
	env.seedNote(t, 1, "c", "c", "", 3, "js", "go", "rust", "zig", "lua", "nim")

	stats, apierr := svc.TagStats(actor(1))
	require.Nil(t, apierr)
	require.Len(t, stats, 8, "stats are not capped")
	assert.Equal(t, "js", stats[0].Tag)
	assert.Equal(t, int64(3), stats[0].Count)
}

func TestTagServiceFailures(t *testing.T) {
	env := newTestEnv(t)
	svc := NewTagService(failingTagRepo{}, env.policy)

	_, apierr := svc.UserTags(actor(1))
	assert.Equal(t, apierror.InternalServerError, apierr)

	_, apierr = svc.TagStats(actor(1))
	assert.Equal(t, apierror.InternalServerError, apierr)

	_, apierr = svc.UserTags(nil)
	assert.Equal(t, apierror.UnauthorizedError, apierr)
}

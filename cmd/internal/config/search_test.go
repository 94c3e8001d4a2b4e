package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSearch(t *testing.T) {
	s := DefaultSearch()

	assert.Equal(t, 20, s.DefaultLimit)
	assert.Equal(t, 10, s.SuggestLimit)
	assert.Equal(t, 5, s.PopularTagsLimit)
	assert.Equal(t, 2, s.MinQueryLength)
	assert.Equal(t, 50, s.CompletionScanLimit)
	assert.Equal(t, 5, s.CompletionLimit)
	assert.Equal(t, 100, s.MaxLimit)
}

func TestLoadSearchOverrides(t *testing.T) {
	t.Setenv("SEARCH_DEFAULT_LIMIT", "30")
	t.Setenv("SUGGEST_LIMIT", "abc")
	t.Setenv("POPULAR_TAGS_LIMIT", "-1")

	s := LoadSearch()

	assert.Equal(t, 30, s.DefaultLimit)
	assert.Equal(t, 10, s.SuggestLimit, "invalid values keep the default")
	assert.Equal(t, 5, s.PopularTagsLimit, "non-positive values keep the default")
}

func TestClamp(t *testing.T) {
	s := DefaultSearch()

	assert.Equal(t, 20, s.Clamp(0, 20))
	assert.Equal(t, 10, s.Clamp(-5, 10))
	assert.Equal(t, 7, s.Clamp(7, 20))
	assert.Equal(t, 100, s.Clamp(5000, 20))
}

package config

import (
	"os"
	"strconv"

	"github.com/creasty/defaults"
	"github.com/labstack/gommon/log"
)

// Search holds the limits shared by search, suggestion and tag operations.
type Search struct {
	// DefaultLimit caps searchByText, filterByTags and filterByDateRange.
	DefaultLimit int `default:"20"`
	// SuggestLimit caps suggestForQuery.
	SuggestLimit int `default:"10"`
	// PopularTagsLimit caps popularTags.
	PopularTagsLimit int `default:"5"`
	// MinQueryLength gates suggestion and completion lookups.
	MinQueryLength int `default:"2"`
	// CompletionScanLimit is how many notes completions tokenize.
	CompletionScanLimit int `default:"50"`
	CompletionLimit     int `default:"5"`
	// MaxLimit bounds any caller supplied limit.
	MaxLimit int `default:"100"`
}

// DefaultSearch returns the built-in limits.
func DefaultSearch() *Search {
	s := &Search{}
	if err := defaults.Set(s); err != nil {
		// only reachable with a malformed default tag
		panic(err)
	}
	return s
}

// LoadSearch returns the built-in limits overridden by any positive integer
// found in the matching environment variables.
func LoadSearch() *Search {
	s := DefaultSearch()
	override(&s.DefaultLimit, "SEARCH_DEFAULT_LIMIT")
	override(&s.SuggestLimit, "SUGGEST_LIMIT")
	override(&s.PopularTagsLimit, "POPULAR_TAGS_LIMIT")
	override(&s.MinQueryLength, "MIN_QUERY_LENGTH")
	override(&s.CompletionScanLimit, "COMPLETION_SCAN_LIMIT")
	override(&s.CompletionLimit, "COMPLETION_LIMIT")
	override(&s.MaxLimit, "SEARCH_MAX_LIMIT")
	return s
}

// Clamp resolves a caller supplied limit: non-positive means fallback,
// anything above MaxLimit is cut down.
func (s *Search) Clamp(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	return min(limit, s.MaxLimit)
}

func override(dst *int, key string) {
	raw := os.Getenv(key)
	if raw == "" {
		return
	}

	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		log.Warnf("ignoring invalid value %q for %s", raw, key)
		return
	}
	*dst = val
}

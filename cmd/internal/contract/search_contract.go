package contract

// SearchMeta is informational only, it never affects which notes are returned.
type SearchMeta struct {
	Query     string `json:"query"`
	Count     int    `json:"count"`
	ElapsedMs int64  `json:"elapsed_ms"`
	Timestamp string `json:"timestamp"`
}

type SearchResponse struct {
	Notes []*NoteResponse `json:"notes"`
	Meta  *SearchMeta     `json:"meta"`
}

type SuggestionResponse struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	ContentPreview string `json:"content_preview"`
	RelevanceScore int    `json:"relevance_score"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

type TagCountResponse struct {
	Tag   string `json:"tag"`
	Count int64  `json:"count"`
}

type SearchRequest struct {
	Query string `query:"q"`
	Limit int    `query:"limit"`
}

type TagFilterRequest struct {
	Tags  string `query:"tags"` // comma separated
	Query string `query:"q"`
	Limit int    `query:"limit"`
}

type DateFilterRequest struct {
	Start string `query:"start"` // YYYY-MM-DD or RFC3339
	End   string `query:"end"`
	Query string `query:"q"`
	Tags  string `query:"tags"`
	Limit int    `query:"limit"`
}

package textgen

import (
	"fmt"
	"strings"
)

type generateRequest struct {
	Model  string `json:"model,omitempty"`
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// SummaryPrompt asks for a short summary of a note.
func SummaryPrompt(title, content string) string {
	return fmt.Sprintf("Summarize the following note in three sentences or less.\n\nTitle: %s\n\n%s", title, content)
}

// TagsPrompt asks for up to max comma separated keywords.
func TagsPrompt(title, content string, max int) string {
	return fmt.Sprintf("List at most %d short keywords describing the following note, separated by commas. "+
		"Answer with the keywords only.\n\nTitle: %s\n\n%s", max, title, content)
}

// SplitTags breaks a generated keyword list on commas and newlines.
func SplitTags(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})
}

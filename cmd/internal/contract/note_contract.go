package contract

type NoteRequest struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"max=1000000"`
}

type UpdateNoteRequest struct {
	Title   *string `json:"title" validate:"omitempty,min=1,max=255"`
	Content *string `json:"content" validate:"omitempty,max=1000000"`
}

type NoteResponse struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
	DeletedAt *string  `json:"deleted_at,omitempty"`
}

type TagResponse struct {
	ID        int64  `json:"id,string"`
	NoteID    string `json:"note_id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

type SummaryResponse struct {
	ID        int64  `json:"id,string"`
	NoteID    string `json:"note_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

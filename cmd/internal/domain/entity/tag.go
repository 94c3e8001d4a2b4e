package entity

const (
	TagMaxLength     = 20
	TagsPerGenerated = 6
)

// Tag is a single label attached to a note. The store does not deduplicate,
// the same name may appear more than once on one note.
type Tag struct {
	ID        int64  `gorm:"primaryKey;autoIncrement:false"`
	NoteID    string `gorm:"not null;index;size:36"`
	Name      string `gorm:"not null;index;size:20"`
	CreatedAt int64  `gorm:"not null;autoCreateTime:false"`
}

// TagCount is the projection used by the tag aggregation queries.
type TagCount struct {
	Name  string
	Count int64
}

package entity

import (
	"strings"

	"gorm.io/gorm"
)

// Note is owned by exactly one user. A nil DeletedAt marks the note as active;
// soft-deleted notes keep their data and can be restored.
type Note struct {
	ID        string `gorm:"primaryKey;size:36"`
	OwnerID   int64  `gorm:"not null;index"` // References: users(id)
	Title     string `gorm:"not null;size:255"`
	Content   string `gorm:"not null"`
	CreatedAt int64  `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt int64  `gorm:"not null;index;autoUpdateTime:false"`
	DeletedAt *int64 `gorm:"index"`

	// Case-folded copies used for text matching. SQLite's LOWER only folds ASCII.
	TitleFolded   string `gorm:"not null;default:''"`
	ContentFolded string `gorm:"not null;default:''"`

	// Relations
	Tags []*Tag `gorm:"foreignKey:NoteID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (n *Note) IsActive() bool {
	return n.DeletedAt == nil
}

// BeforeSave keeps the folded columns in step with title and content.
func (n *Note) BeforeSave(*gorm.DB) error {
	n.Fold()
	return nil
}

func (n *Note) Fold() {
	n.TitleFolded = FoldText(n.Title)
	n.ContentFolded = FoldText(n.Content)
}

// FoldText is the case folding shared by stored notes and search input.
func FoldText(s string) string {
	return strings.ToLower(s)
}

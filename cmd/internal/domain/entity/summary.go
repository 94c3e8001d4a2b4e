package entity

type Summary struct {
	ID        int64  `gorm:"primaryKey;autoIncrement:false"`
	NoteID    string `gorm:"not null;index;size:36"`
	Content   string `gorm:"not null"`
	CreatedAt int64  `gorm:"not null;index;autoCreateTime:false"`
}
